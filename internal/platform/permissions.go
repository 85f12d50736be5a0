package platform

import (
	"os"
	"runtime"
)

// IsExecutable reports whether path is a regular file with an execute bit set.
// On Windows permission bits are not meaningful, so any regular file counts.
func IsExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0111 != 0
}
