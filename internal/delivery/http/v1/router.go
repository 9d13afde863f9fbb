package v1

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go-prodigy-backend/config"
	"go-prodigy-backend/internal/delivery/http/middleware"
	"go-prodigy-backend/internal/domain"
	"go-prodigy-backend/internal/usecase"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	HealthUC  usecase.HealthUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler(deps.Config))
	r.Use(middleware.LocaleRedirect())

	// Public API
	api := r.Group("/api")
	api.Use(middleware.CORSMiddleware())

	NewHealthHandler(api, deps.HealthUC)
	NewContactHandler(api, deps.ContactUC, middleware.ContactRateLimit(deps.Config))

	// Swagger
	api.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Static site (the marketing pages themselves)
	registerStaticSite(r, deps.Config.StaticDir)

	return r
}

// registerStaticSite serves the built site bundle. Unknown non-API paths fall
// back to the bundle's index so client-side routing keeps working; the
// Bulgarian variant gets its own index when the bundle ships one.
func registerStaticSite(r *gin.Engine, staticDir string) {
	r.Static("/assets", filepath.Join(staticDir, "assets"))
	r.StaticFile("/favicon.ico", filepath.Join(staticDir, "favicon.ico"))

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Not found"})
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Status(http.StatusMethodNotAllowed)
			return
		}

		index := filepath.Join(staticDir, "index.html")
		if strings.HasPrefix(c.Request.URL.Path, "/bg") {
			if bgIndex := filepath.Join(staticDir, "bg", "index.html"); fileExists(bgIndex) {
				index = bgIndex
			}
		}
		c.File(index)
	})
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
