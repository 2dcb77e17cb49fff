package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jexlaindia/app/internal/normalize"
)

var corsMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodHead,
	http.MethodOptions,
}

// CORSMiddleware allows credentials, every method and every requested header
// for the given origins. A "*" entry allows any origin; the request origin is
// echoed back because browsers refuse a literal "*" on credentialed requests.
func CORSMiddleware(origins []string) gin.HandlerFunc {
	allowed := originMatcher(origins)

	handler := cors.New(cors.Config{
		AllowOriginFunc:  allowed,
		AllowMethods:     corsMethods,
		ExposeHeaders:    []string{"Content-Length", RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})

	return func(c *gin.Context) {
		// cors sets no Allow-Headers when AllowHeaders is empty, so the
		// preflight's own request list is mirrored instead
		if c.Request.Method == http.MethodOptions && allowed(c.GetHeader("Origin")) {
			if h := c.GetHeader("Access-Control-Request-Headers"); h != "" {
				c.Header("Access-Control-Allow-Headers", h)
			}
		}
		handler(c)
	}
}

func originMatcher(origins []string) func(string) bool {
	if normalize.AllowsAny(origins) {
		return func(string) bool { return true }
	}
	set := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		set[o] = struct{}{}
	}
	return func(origin string) bool {
		_, ok := set[origin]
		return ok
	}
}
