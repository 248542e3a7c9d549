// Package testutil holds small helpers shared by tests.
package testutil

import (
	"io"
	"os"
)

// CaptureStdout redirects os.Stdout for the duration of fn and returns
// everything fn wrote to it. Not safe for concurrent use.
func CaptureStdout(fn func()) string {
	orig := os.Stdout
	defer func() { os.Stdout = orig }()

	r, w, err := os.Pipe()
	if err != nil {
		return ""
	}
	os.Stdout = w

	fn()
	_ = w.Close()

	out, _ := io.ReadAll(r)
	return string(out)
}
