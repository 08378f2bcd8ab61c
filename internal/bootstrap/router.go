package bootstrap

import (
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	httpapi "github.com/atogato/portfolio-backend/internal/api/http"
	"github.com/atogato/portfolio-backend/internal/api/http/middleware"
	"github.com/atogato/portfolio-backend/internal/auth"
	authmw "github.com/atogato/portfolio-backend/internal/auth/middleware"
	"github.com/atogato/portfolio-backend/internal/likes"
	projhttp "github.com/atogato/portfolio-backend/internal/projects/http"
	"github.com/atogato/portfolio-backend/internal/projects/repository"
	"github.com/atogato/portfolio-backend/internal/projects/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *pgxpool.Pool
	Redis       *redis.Client
	AuthClient  *fbauth.Client // nil outside production: OptionalUser is used instead
	Attachments service.AttachmentStore
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")
	api.Use(middleware.RequestIDMiddleware())
	api.Use(middleware.RateLimitMiddleware(rate.Limit(20), 40))

	if dep.AuthClient != nil {
		api.Use(authmw.FirebaseAuthMiddleware(dep.AuthClient))
	} else {
		api.Use(auth.OptionalUser())
	}

	projectRepo := repository.NewRepo(dep.DB)
	projectSvc := service.NewProjectService(projectRepo, dep.Attachments)

	projectsGroup := api.Group("/projects")
	projhttp.New(projectSvc).Register(projectsGroup)

	if dep.Redis != nil {
		likes.RegisterProjectsSubroutes(projectsGroup, likes.NewService(dep.Redis, projectRepo))
	}

	return r
}
