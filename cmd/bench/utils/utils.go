package utils

import (
	"os"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// SessionId tags every log entry of one benchmark invocation so interleaved
// debug output from repeated sessions stays attributable.
var SessionId = gonanoid.MustGenerate("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ", 12)

// Returns true if the specified file exists and is actually a file (not a directory)
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return !info.IsDir()
}
