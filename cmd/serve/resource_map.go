package serve

import (
	"bytes"
	"net/http"
	"path"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hyperion-dev/hyperion-site/images"
)

// assetMap holds static files generated at startup, keyed by file name.
type assetMap struct {
	byName   map[string][]byte
	modified time.Time
}

func newAssetMap(logoPath string) (*assetMap, error) {
	logo, err := images.LoadLogo(logoPath)
	if err != nil {
		return nil, err
	}

	icons, err := images.RenderIcons(logo, images.DefaultIcons())
	if err != nil {
		return nil, err
	}

	return &assetMap{
		byName:   icons,
		modified: time.Now(),
	}, nil
}

func (m *assetMap) Lookup(name string) ([]byte, bool) {
	if m == nil {
		return nil, false
	}

	content, ok := m.byName[name]
	return content, ok
}

// serveStatic answers from the generated assets first and falls back to
// the embedded static files.
func serveStatic(assets *assetMap, static http.FileSystem) gin.HandlerFunc {
	fileServer := http.StripPrefix("/static", http.FileServer(static))

	return func(c *gin.Context) {
		name := path.Clean(c.Param("filepath"))
		if content, ok := assets.Lookup(path.Base(name)); ok && path.Dir(name) == "/" {
			http.ServeContent(c.Writer, c.Request, name, assets.modified, bytes.NewReader(content))
			return
		}

		fileServer.ServeHTTP(c.Writer, c.Request)
	}
}
