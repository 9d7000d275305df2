package httpx

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID is echoed back on every response for correlation.
	HeaderRequestID = "X-Request-ID"

	// HeaderActor carries the identity recorded in the audit trail.
	// There is no authentication; absent the header, the configured
	// default actor is used.
	HeaderActor = "X-Actor"
)

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

func (h *Handler) actor(c *gin.Context) string {
	if a := c.GetHeader(HeaderActor); a != "" {
		return a
	}
	return h.defaultActor
}

// Flash-style status messages survive the redirect as query params.
func redirectMsg(c *gin.Context, path, msg string) {
	c.Redirect(http.StatusFound, path+"?msg="+url.QueryEscape(msg))
}

func redirectError(c *gin.Context, path, msg string) {
	c.Redirect(http.StatusFound, path+"?error="+url.QueryEscape(msg))
}
