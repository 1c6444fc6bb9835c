// handler.go - Shared HTTP plumbing: routes, error envelope, health check

package handlers // Declares the package name

import ( // Import required packages
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"recipe-cart-backend/credentials" // Password hashing
	"recipe-cart-backend/database"    // Schema layer

	"github.com/gin-gonic/gin" // Gin web framework
)

// Handler exposes Store operations over JSON. Each route maps onto one Store call.
type Handler struct {
	store   *database.Store
	hasher  *credentials.Hasher
	env     string
	started time.Time
}

func New(store *database.Store, hasher *credentials.Hasher, env string) *Handler {
	return &Handler{store: store, hasher: hasher, env: env, started: time.Now()}
}

// SetupRoutes registers every endpoint on r.
func (h *Handler) SetupRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	users := r.Group("/users")
	{
		users.POST("", h.CreateUser)
		users.GET("", h.ListUsers)
		users.GET("/:id", h.GetUser)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
		users.GET("/:id/cart", h.GetUserCart)
	}

	recipes := r.Group("/recipes")
	{
		recipes.POST("", h.CreateRecipe)
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.PUT("/:id", h.UpdateRecipe)
		recipes.DELETE("/:id", h.DeleteRecipe)
	}

	carts := r.Group("/carts")
	{
		carts.POST("", h.CreateCart)
		carts.GET("", h.ListCarts)
		carts.GET("/:id", h.GetCart)
		carts.DELETE("/:id", h.DeleteCart)
	}

	items := r.Group("/cart-items")
	{
		items.POST("", h.CreateCartItem)
		items.GET("", h.ListCartItems)
		items.GET("/:id", h.GetCartItem)
		items.PUT("/:id", h.UpdateCartItem)
		items.DELETE("/:id", h.DeleteCartItem)
	}

	r.NoRoute(h.NotFound)
}

// Health reports liveness and whether the database answers.
func (h *Handler) Health(c *gin.Context) {
	if err := h.store.Ping(); err != nil {
		log.Printf("health: database ping failed: %v", err)
		ErrorJSON(c, http.StatusServiceUnavailable, "Database unavailable")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"message":     "Server is running",
		"timestamp":   timestamp(),
		"uptime":      time.Since(h.started).Seconds(),
		"environment": h.env,
	})
}

// NotFound answers unknown routes with the error envelope.
func (h *Handler) NotFound(c *gin.Context) {
	ErrorJSON(c, http.StatusNotFound, fmt.Sprintf("Route %s %s not found", c.Request.Method, c.Request.URL.Path))
}

// respondError maps store errors onto HTTP statuses. Internal errors are only
// spelled out in development.
func (h *Handler) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, database.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, database.ErrUniquenessViolation):
		status = http.StatusConflict
	case errors.Is(err, database.ErrForeignKeyViolation):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, database.ErrMissingRequiredField), errors.Is(err, database.ErrInvalidField),
		errors.Is(err, credentials.ErrPasswordTooLong):
		status = http.StatusBadRequest
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		message = internalMessage(h.env, message)
	}
	ErrorJSON(c, status, message)
}

// ErrorJSON aborts the request with the {status, message, timestamp} error envelope.
func ErrorJSON(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"status": "error", "message": message, "timestamp": timestamp()})
}

// internalMessage hides the detail of a 500 outside development.
func internalMessage(env, detail string) string {
	if env != "development" {
		return "Internal Server Error"
	}
	return detail
}

// badRequest reports malformed input that never reached the store. A body cut
// off by http.MaxBytesReader is reported as 413.
func badRequest(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		ErrorJSON(c, http.StatusRequestEntityTooLarge, fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit))
		return
	}
	ErrorJSON(c, http.StatusBadRequest, err.Error())
}

// pathID reads the :id parameter; it writes a 400 and returns false when malformed.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		badRequest(c, fmt.Errorf("invalid id %q", c.Param("id")))
		return 0, false
	}
	return uint(id), true
}

// queryID reads an optional numeric query parameter; absent means 0.
func queryID(c *gin.Context, key string) (uint, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		badRequest(c, fmt.Errorf("invalid %s %q", key, raw))
		return 0, false
	}
	return uint(id), true
}

// isoMillis is RFC 3339 in UTC with millisecond precision, e.g. 2026-10-19T07:10:00.123Z.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

func timestamp() string {
	return time.Now().UTC().Format(isoMillis)
}
