package server

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/runplot/pkg/config/env"
	"github.com/DjordjeVuckovic/runplot/pkg/utils"
)

const defaultBodyLimit = "1M"

type Config struct {
	Port        string
	UseHttp2    bool
	CorsOrigins []string
	// ReportDir holds per-request render directories; empty uses the OS temp dir.
	ReportDir string
	// LogRoot is the only directory tree request paths may point into.
	LogRoot   string
	BodyLimit string
}

func LoadConfig() (*Config, error) {
	if err := env.LoadDotEnv("cmd/runplot_api/.env"); err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	origins := utils.RemoveEmptyStrings(strings.Split(os.Getenv("CORS_ORIGINS"), ","))
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	bodyLimit := os.Getenv("BODY_LIMIT")
	if bodyLimit == "" {
		bodyLimit = defaultBodyLimit
	}

	reportDir := os.Getenv("REPORT_DIR")
	if reportDir != "" {
		if info, err := os.Stat(reportDir); err != nil || !info.IsDir() {
			return nil, fmt.Errorf("REPORT_DIR %q is not a directory", reportDir)
		}
	}

	logRoot := os.Getenv("LOG_ROOT")
	if logRoot == "" {
		logRoot = "."
	}
	logRoot, err := filepath.Abs(logRoot)
	if err != nil {
		return nil, fmt.Errorf("resolve LOG_ROOT: %w", err)
	}
	if info, err := os.Stat(logRoot); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("LOG_ROOT %q is not a directory", logRoot)
	}

	return &Config{
		Port:        port,
		UseHttp2:    os.Getenv("USE_HTTP2") == "true",
		CorsOrigins: origins,
		ReportDir:   reportDir,
		LogRoot:     logRoot,
		BodyLimit:   bodyLimit,
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return errors.New("port must be a number")
	}
	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	return nil
}
