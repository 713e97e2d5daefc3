package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

func CreateDirectoryIfNotExists(path string) error {
	return os.MkdirAll(path, 0o755)
}

func IsDirectory(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.IsDir()
}

func FileModifiedTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}

	return info.ModTime(), nil
}

// FullSubtreeModifiedDate is the latest modification time of path and of
// anything below it. Directories count so that removing a post is noticed.
// Hidden entries such as editor swap files are skipped.
func FullSubtreeModifiedDate(path string) (time.Time, error) {
	if !IsDirectory(path) {
		return time.Time{}, fmt.Errorf("path '%s' is not a directory", path)
	}

	var latest time.Time
	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if p != path && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("query file info: %w", err)
		}

		if info.ModTime().After(latest) {
			latest = info.ModTime()
		}

		return nil
	})

	return latest, err
}
