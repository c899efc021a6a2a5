package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/chayachobi/summercamp-backend/internal/config"
	"github.com/chayachobi/summercamp-backend/internal/handler"
	"github.com/chayachobi/summercamp-backend/internal/middleware"
	"github.com/chayachobi/summercamp-backend/internal/model"
	"github.com/chayachobi/summercamp-backend/internal/response"
	"github.com/chayachobi/summercamp-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	User       *handler.UserHandler
	Class      *handler.ClassHandler
	Enrollment *handler.EnrollmentHandler
	Payment    *handler.PaymentHandler
}

// SetupRouter configures all routes with their guard chains. Guards compose
// in order: authentication first, then the role gate; the first failure
// short-circuits the request.
func SetupRouter(
	authService *service.AuthService,
	userService *service.UserService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	requireAuth := middleware.RequireAuth(authService)
	requireAdmin := middleware.RequireRole(userService, model.RoleAdmin)
	requireInstructor := middleware.RequireRole(userService, model.RoleInstructor)

	// Rate limiter for the public token and registration routes
	// (30 requests per minute per IP).
	publicLimiter := middleware.NewRateLimiter(30, time.Minute)

	router.GET("/", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"message": "Summer Camp Server is running"})
	})
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// ─── Token & Registration (Public, Rate Limited) ───────────────────
	router.POST("/jwt", publicLimiter.Middleware(), handlers.Auth.IssueToken)
	router.POST("/users", publicLimiter.Middleware(), handlers.User.Register)

	// ─── Public Directory & Catalog ────────────────────────────────────
	router.GET("/allinstructors", handlers.User.ListInstructors)
	router.GET("/popularinstructors", handlers.User.PopularInstructors)
	router.GET("/approvedclasses", handlers.Class.ListApproved)
	router.GET("/popularclasses", handlers.Class.ListPopular)

	// ─── Authenticated ─────────────────────────────────────────────────
	router.GET("/users/:role/:email", requireAuth, handlers.User.CheckRole)
	router.GET("/selectedclasses/:email", requireAuth, handlers.Enrollment.ListSelections)
	router.POST("/selectedclasses", requireAuth, handlers.Enrollment.Select)
	router.DELETE("/selectedclass/:id", requireAuth, handlers.Enrollment.DeleteSelection)
	router.GET("/enrolledclasses/:email", requireAuth, handlers.Enrollment.ListEnrollments)
	router.GET("/payhistory/:email", requireAuth, handlers.Enrollment.PayHistory)
	router.POST("/enrolledclasses", requireAuth, handlers.Enrollment.Enroll)
	router.POST("/create-payment-intent", requireAuth, handlers.Payment.CreatePaymentIntent)

	// ─── Instructor ────────────────────────────────────────────────────
	router.GET("/myclasses/:email", requireAuth, requireInstructor, handlers.Class.MyClasses)
	router.POST("/addclass", requireAuth, requireInstructor, handlers.Class.AddClass)

	// ─── Admin ─────────────────────────────────────────────────────────
	router.GET("/allusers", requireAuth, requireAdmin, handlers.User.ListUsers)
	router.PATCH("/user/:role/:email", requireAuth, requireAdmin, handlers.User.Promote)
	router.GET("/allclasses", requireAuth, requireAdmin, handlers.Class.ListClasses)
	router.PATCH("/class/approve/:id", requireAuth, requireAdmin, handlers.Class.Approve)
	router.PATCH("/class/deny/:id", requireAuth, requireAdmin, handlers.Class.Deny)
	router.PATCH("/classes/feedback/:id", requireAuth, requireAdmin, handlers.Class.Feedback)

	return router
}
