package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"go.uber.org/zap"
)

// InstallFS copies the tree below root in fsys into targetDirectory.
func InstallFS(fsys fs.FS, root string, targetDirectory string, logger *zap.Logger) error {
	return installFSDirectory(fsys, root, targetDirectory, logger)
}

func installFSDirectory(fsys fs.FS, sourceDirectory string, targetDirectory string, logger *zap.Logger) error {
	if err := CreateDirectoryIfNotExists(targetDirectory); err != nil {
		return fmt.Errorf("creating root directory '%s' failed: %w", targetDirectory, err)
	}

	entries, err := fs.ReadDir(fsys, sourceDirectory)
	if err != nil {
		return fmt.Errorf("could not read embedded FS: %w", err)
	}

	for _, entry := range entries {
		sourcePath := path.Join(sourceDirectory, entry.Name())
		targetPath := filepath.Join(targetDirectory, entry.Name())

		if entry.IsDir() {
			if err = installFSDirectory(fsys, sourcePath, targetPath, logger); err != nil {
				return fmt.Errorf("could not install subdirectory: %w", err)
			}
			continue
		}

		logger.Debug("installing", zap.String("file", sourcePath))

		content, err := fs.ReadFile(fsys, sourcePath)
		if err != nil {
			return fmt.Errorf("could not read embedded file '%s': %w", sourcePath, err)
		}

		if err := os.WriteFile(targetPath, content, 0o666); err != nil {
			return fmt.Errorf("could not write file '%s': %w", targetPath, err)
		}
	}

	return nil
}

// WriteFile writes content to name below root, creating missing parent
// directories.
func WriteFile(root, name string, content []byte) error {
	if filepath.IsAbs(name) {
		return fmt.Errorf("absolute path '%s'", name)
	}

	p := filepath.Join(root, filepath.FromSlash(name))
	if err := CreateDirectoryIfNotExists(filepath.Dir(p)); err != nil {
		return fmt.Errorf("could not create directory for '%s': %w", name, err)
	}

	return os.WriteFile(p, content, 0o666)
}
