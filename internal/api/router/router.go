package router

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spandan012/HRMS-liteApp/config"
	"github.com/spandan012/HRMS-liteApp/internal/api/handler"
	"github.com/spandan012/HRMS-liteApp/internal/api/middleware"
	"github.com/spandan012/HRMS-liteApp/pkg/response"
)

// Setup builds the Gin engine with all middleware and routes.
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ interface{}) {
		response.InternalError(c)
	}))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))
	r.Use(middleware.SecurityHeaders())

	// ── API ──
	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		api.GET("/employees", h.Employee.List)
		api.POST("/employees", h.Employee.Create)
		api.DELETE("/employees/:employeeId", h.Employee.Delete)
		api.GET("/employees/:employeeId/attendance", h.Attendance.ListByEmployee)
		api.GET("/employees/:employeeId/attendance/calendar", h.Export.EmployeeCalendar)

		api.POST("/attendance", h.Attendance.Record)

		api.GET("/summary", h.Summary.Get)
		api.GET("/summary/export", h.Export.Summary)
	}

	// static frontend at the root; everything else is a JSON 404
	r.NoRoute(serveStaticOr404(cfg.Server.StaticDir))

	return r
}

// serveStaticOr404 serves frontend assets for non-API GET paths and answers
// every other unmatched route with the fixed 404 body.
func serveStaticOr404(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			p := c.Request.URL.Path
			if p != "/api" && !strings.HasPrefix(p, "/api/") {
				rel := path.Clean("/" + p) // pins the lookup under staticDir
				if rel == "/" {
					rel = "/index.html"
				}
				full := filepath.Join(staticDir, filepath.FromSlash(rel))
				if st, err := os.Stat(full); err == nil && !st.IsDir() {
					c.File(full)
					return
				}
			}
		}

		response.RouteNotFound(c)
	}
}
