// Package safefile reads operator-supplied files (config, seed overrides)
// without following symlinks and with a hard size cap.
package safefile

import (
	"errors"
	"fmt"
	"os"
)

// ErrSymlink is returned when the path is a symbolic link.
var ErrSymlink = errors.New("symbolic link rejected")

// ErrTooLarge is returned when the file exceeds the caller's size cap.
var ErrTooLarge = errors.New("file too large")

// ReadFile reads path after checking, via Lstat, that it is a regular file no
// larger than maxBytes. A maxBytes of zero or less disables the size check.
func ReadFile(path string, maxBytes int64) ([]byte, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrSymlink)
	}
	if maxBytes > 0 && info.Size() > maxBytes {
		return nil, fmt.Errorf("%s is %d bytes, max %d: %w", path, info.Size(), maxBytes, ErrTooLarge)
	}
	return os.ReadFile(path)
}
