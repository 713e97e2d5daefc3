package serve

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hyperion-dev/hyperion-site/mailto"
	"go.uber.org/zap"
)

// ServeContact hands a project inquiry off to the visitor's mail client.
func (api *serveAPI) ServeContact(c *gin.Context) {
	var inquiry mailto.Inquiry
	if err := c.ShouldBind(&inquiry); err != nil {
		c.String(http.StatusBadRequest, "name, email and message are required")
		return
	}

	api.redirectToMail(c, "inquiry", inquiry.Compose(api.content.Studio.ContactEmail))
}

func (api *serveAPI) ServeBeta(c *gin.Context) {
	var request mailto.BetaRequest
	if err := c.ShouldBind(&request); err != nil {
		c.String(http.StatusBadRequest, "name and email are required")
		return
	}

	studio := api.content.Studio
	api.redirectToMail(c, "beta", request.Compose(studio.ContactEmail, studio.Product.Name))
}

func (api *serveAPI) redirectToMail(c *gin.Context, kind string, msg mailto.Message) {
	api.logger.Info("mail handoff",
		zap.String("kind", kind),
		zap.String("requestID", c.GetString(requestIDKey)),
	)

	c.Redirect(http.StatusSeeOther, msg.URI())
}
