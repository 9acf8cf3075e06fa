package utils

import "strings"

// RemoveEmptyStrings trims every element and drops the ones left blank.
// Useful after splitting comma separated env values.
func RemoveEmptyStrings(slice []string) []string {
	result := make([]string, 0, len(slice))
	for _, s := range slice {
		if s = strings.TrimSpace(s); s != "" {
			result = append(result, s)
		}
	}
	return result
}
