package serve

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hyperion-dev/hyperion-site/data/tagfilter"
	"github.com/hyperion-dev/hyperion-site/route"
	"github.com/hyperion-dev/hyperion-site/site"
	"go.uber.org/zap"
)

const htmlContentType = "text/html; charset=utf-8"

func (api *serveAPI) ServeShell(c *gin.Context) {
	var buf bytes.Buffer
	if err := site.RenderShell(&buf, api.content, site.ServerMode); err != nil {
		api.fail(c, err)
		return
	}

	c.Data(http.StatusOK, htmlContentType, buf.Bytes())
}

// ServeView renders the view fragment for the hash forwarded by the shell.
// Each request mounts its own page on a location holding that hash.
func (api *serveAPI) ServeView(c *gin.Context) {
	loc := route.NewMemoryLocation(c.Query("hash"))

	page := site.NewPage(api.content)
	if err := page.Mount(loc); err != nil {
		api.fail(c, err)
		return
	}
	defer page.Unmount()

	if page.Route().Name() == route.BlogIndex {
		page.SetSelection(tagfilter.ParseSelection(c.QueryArray("tag")))
	}

	view := page.View()

	var buf bytes.Buffer
	if err := site.RenderView(&buf, api.content.Templates, view); err != nil {
		api.fail(c, err)
		return
	}

	status := http.StatusOK
	if view.NotFound() {
		status = http.StatusNotFound
	}

	api.logger.Debug("rendered view",
		zap.Stringer("route", view.Route),
		zap.Int("selected", view.Selection.Len()),
	)

	c.Data(status, htmlContentType, buf.Bytes())
}

func (api *serveAPI) fail(c *gin.Context, err error) {
	api.logger.Error("request failed",
		zap.String("path", c.Request.URL.Path),
		zap.String("requestID", c.GetString(requestIDKey)),
		zap.Error(err),
	)
	c.String(http.StatusInternalServerError, "error")
}
