package data

import (
	"errors"
	"io/fs"
	"os"
	"path"

	"github.com/hyperion-dev/hyperion-site/res"
)

// NewDefaultStore loads the posts embedded in the binary, or those below
// contentDirectory/posts when it is set.
func NewDefaultStore(contentDirectory string) (*Store, error) {
	if contentDirectory == "" {
		return NewStore(res.Content, res.PostsDirectory)
	}

	return NewStore(os.DirFS(contentDirectory), path.Base(res.PostsDirectory))
}

// NewDefaultStudio loads contentDirectory/studio.yaml, falling back to the
// embedded copy when the directory is unset or holds no studio file.
func NewDefaultStudio(contentDirectory string) (*Studio, error) {
	if contentDirectory == "" {
		return DefaultStudio()
	}

	fsys := os.DirFS(contentDirectory)
	name := path.Base(res.StudioFile)
	if _, err := fs.Stat(fsys, name); errors.Is(err, fs.ErrNotExist) {
		return DefaultStudio()
	}

	return LoadStudio(fsys, name)
}
