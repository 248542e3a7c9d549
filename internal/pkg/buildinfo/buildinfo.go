// Package buildinfo prints the version stamp every binary announces on
// startup. The values are injected via -ldflags into each command's own
// variables and passed in here.
package buildinfo

import "fmt"

func normalize(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// Print writes the build information to stdout.
func Print(version, date, commit string) {
	fmt.Printf("Build version: %s\n", normalize(version))
	fmt.Printf("Build date: %s\n", normalize(date))
	fmt.Printf("Build commit: %s\n", normalize(commit))
}
