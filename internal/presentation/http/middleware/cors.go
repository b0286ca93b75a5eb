package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Headers attached to every response so the invoice page can be embedded
// from any origin. The allow-list covers the headers the frontend client
// sends on its fetches.
const (
	allowOrigin  = "*"
	allowHeaders = "authorization, x-client-info, apikey, content-type"
)

// InvoiceCORS attaches the permissive CORS headers to every response and
// answers preflight requests directly with a bare "ok" body, before any
// handler or data access runs.
func InvoiceCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", allowOrigin)
		c.Header("Access-Control-Allow-Headers", allowHeaders)

		if c.Request.Method == http.MethodOptions {
			c.String(http.StatusOK, "ok")
			c.Abort()
			return
		}

		c.Next()
	}
}
