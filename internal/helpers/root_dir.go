package helpers

import (
	"path/filepath"
	"runtime"
)

// RootDir is the module root, used for profile output under data/.
func RootDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..")
}
