package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"openlaunch/internal/delivery/http/controllers"
	"openlaunch/internal/delivery/http/middleware"
	"openlaunch/internal/domain"
)

// RouterDeps bundles what NewRouter needs to mount every route.
type RouterDeps struct {
	Logger            *slog.Logger
	TokenVerifier     domain.TokenVerifier
	CORSOrigins       []string
	ProjectController *controllers.ProjectController
	ArticleController *controllers.ArticleController
	CommentController *controllers.CommentController
}

// NewRouter initializes the HTTP router with all application routes, wrapped in
// request logging and CORS.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(deps.TokenVerifier, deps.Logger)

	// Projects
	mux.HandleFunc("GET /projects", deps.ProjectController.ListProjects)
	mux.HandleFunc("GET /projects/leaderboard", deps.ProjectController.Leaderboard)
	mux.HandleFunc("GET /projects/{slug}", deps.ProjectController.GetProject)
	mux.HandleFunc("POST /projects", auth(deps.ProjectController.CreateProject))
	mux.HandleFunc("POST /projects/{projectID}/upvote", auth(deps.ProjectController.Upvote))

	// Comments
	mux.HandleFunc("GET /projects/{projectID}/comments", deps.CommentController.ListComments)
	mux.HandleFunc("POST /projects/{projectID}/comments", auth(deps.CommentController.CreateComment))

	// Articles
	mux.HandleFunc("GET /articles", deps.ArticleController.ListArticles)
	mux.HandleFunc("GET /articles/{slug}", deps.ArticleController.GetArticle)
	mux.HandleFunc("POST /articles", auth(deps.ArticleController.CreateArticle))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return middleware.LoggingMiddleware(deps.Logger, middleware.CORS(deps.CORSOrigins, mux))
}
