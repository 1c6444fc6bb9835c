// logging.go - Request logging used in development

package middleware // Declares the package name

import ( // Import required packages
	"log"
	"time"

	"github.com/gin-gonic/gin" // Gin web framework
)

// RequestLogger writes "<timestamp> - METHOD /path" for each request, followed by
// the status and latency once the handler returns.
func RequestLogger(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		logger.Printf("%s - %s %s", start.UTC().Format(time.RFC3339), c.Request.Method, c.Request.URL.Path)
		c.Next()
		logger.Printf("%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
