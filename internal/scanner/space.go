package scanner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// ErrInsufficientSpace is returned when free space at a target path is below
// the configured floor. Per-item: the caller skips the item and keeps going.
var ErrInsufficientSpace = errors.New("insufficient disk space")

var statfs = syscall.Statfs

// EnsureSpace fails when free bytes at path (or its nearest existing
// ancestor) fall below floorGB gigabytes.
func EnsureSpace(path string, floorGB float64) error {
	target := path
	for {
		if _, err := os.Stat(target); err == nil {
			break
		}
		parent := filepath.Dir(target)
		if parent == target {
			break
		}
		target = parent
	}

	var fs syscall.Statfs_t
	if err := statfs(target, &fs); err != nil {
		return fmt.Errorf("statfs %s: %w", target, err)
	}

	freeGB := float64(fs.Bavail) * float64(fs.Bsize) / (1 << 30)
	if freeGB < floorGB {
		return fmt.Errorf("%w: %s has %.1f GB free, floor is %.1f GB",
			ErrInsufficientSpace, path, freeGB, floorGB)
	}
	return nil
}
