package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"peso-backend/internal/applications"
	googleauth "peso-backend/internal/auth"
	"peso-backend/internal/compliance"
	"peso-backend/internal/documents"
	"peso-backend/internal/jobs"
	"peso-backend/internal/locations"
	"peso-backend/internal/resumes"
	"peso-backend/internal/shared/config"
	"peso-backend/internal/shared/metrics"
	"peso-backend/internal/shared/server/middleware"
	"peso-backend/internal/shared/server/respond"
	"peso-backend/internal/users"
)

const parseRateLimitGroup = "PARSE"

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config              config.Config
	UsersHandler        *users.Handler
	GoogleAuth          *googleauth.GoogleService
	LocationsHandler    *locations.Handler
	JobsHandler         *jobs.Handler
	ResumesHandler      *resumes.Handler
	DocumentsHandler    *documents.Handler
	ApplicationsHandler *applications.Handler
	ComplianceHandler   *compliance.Handler
	RateLimiter         *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())

	deps.UsersHandler.RegisterPublicRoutes(api)
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	deps.JobsHandler.RegisterPublicRoutes(api)
	deps.LocationsHandler.RegisterRoutes(api)

	authed := api.Group("", middleware.Auth(), middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT":           {Rate: 10, Burst: 20},
			parseRateLimitGroup: {Rate: 0.2, Burst: 3},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && strings.HasSuffix(c.FullPath(), "/resumes/parse") {
				return parseRateLimitGroup
			}
			return ""
		},
		Limiter: deps.RateLimiter,
	}))

	deps.UsersHandler.RegisterRoutes(authed)

	jobseeker := authed.Group("", middleware.RequireRoles(middleware.RoleJobseeker))
	deps.ResumesHandler.RegisterRoutes(jobseeker)
	deps.DocumentsHandler.RegisterRoutes(jobseeker)
	deps.ApplicationsHandler.RegisterJobseekerRoutes(jobseeker)

	employer := authed.Group("", middleware.RequireRoles(middleware.RoleEmployer))
	deps.JobsHandler.RegisterEmployerRoutes(employer)
	deps.ApplicationsHandler.RegisterEmployerRoutes(employer)
	deps.ComplianceHandler.RegisterEmployerRoutes(employer)

	admin := authed.Group("", middleware.RequireRoles(middleware.RoleAdmin))
	deps.JobsHandler.RegisterAdminRoutes(admin)
	deps.UsersHandler.RegisterAdminRoutes(admin)
	deps.ComplianceHandler.RegisterAdminRoutes(admin)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
