package runlog

import (
	"path/filepath"
	"strings"
)

// DeriveLabel turns a run-log path into a display label: the base name without
// its extension and without the run-identifier prefix up to the first
// underscore. "trial3_run.state" yields "run", "summary.state" yields "summary".
// Only the first prefix is dropped, so "t1_stoch_adam.state" yields "stoch_adam".
func DeriveLabel(path string) string {
	if path == "" {
		return ""
	}
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if i := strings.Index(name, "_"); i >= 0 {
		return name[i+1:]
	}
	return name
}
