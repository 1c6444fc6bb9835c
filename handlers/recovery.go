// recovery.go - Turns handler panics into the JSON error envelope

package handlers // Declares the package name

import ( // Import required packages
	"fmt"      // Formats the recovered value
	"log"      // Logging
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// Recovery replaces gin.Recovery so a panic still answers with the error envelope.
// The panic value is only shown in development.
func Recovery(env string) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		detail := fmt.Sprint(recovered) // Panic value as text
		log.Printf("panic in %s %s: %s", c.Request.Method, c.Request.URL.Path, detail)
		ErrorJSON(c, http.StatusInternalServerError, internalMessage(env, detail))
	})
}
