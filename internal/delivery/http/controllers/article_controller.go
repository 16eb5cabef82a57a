package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"openlaunch/internal/delivery/http/helpers"
	"openlaunch/internal/domain"
	"openlaunch/internal/pagination"
)

// CreateArticleRequest is the request body for POST /articles.
type CreateArticleRequest struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Body    string `json:"body"`
}

// Validate implements Validator.
func (c CreateArticleRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, "title is required")
	}
	if strings.TrimSpace(c.Body) == "" {
		errs = append(errs, "body is required")
	}
	return errs
}

// ListArticlesSuccessResponse is the success response envelope for GET /articles (200).
// data.next_cursor is opaque; pass it back unchanged as ?cursor=.
type ListArticlesSuccessResponse struct {
	Data  pagination.CursorResult[*domain.Article] `json:"data"`
	Error *helpers.APIError                        `json:"error"`
}

// ArticleSuccessResponse is the success response envelope for single-article endpoints.
type ArticleSuccessResponse struct {
	Data  *domain.Article   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type ArticleController struct {
	Logger  *slog.Logger
	Service domain.ArticleService
}

func NewArticleController(logger *slog.Logger, svc domain.ArticleService) *ArticleController {
	return &ArticleController{
		Logger:  logger,
		Service: svc,
	}
}

// ListArticles godoc
// @Summary Article feed
// @Description Newest-first article feed with cursor pagination. An unknown or stale cursor restarts from the newest article.
// @Tags articles
// @Produce json
// @Param cursor query string false "Opaque next_cursor from the previous page. Standard base64 (may contain + / =); URL-encode it"
// @Param limit query int false "Page size (1-100)" default(20)
// @Success 200 {object} controllers.ListArticlesSuccessResponse "data contains items, next_cursor and has_more"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /articles [get]
func (c *ArticleController) ListArticles(w http.ResponseWriter, r *http.Request) {
	result, err := c.Service.ListFeed(r.Context(), helpers.ParseCursorParams(r))
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "article not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}

// GetArticle godoc
// @Summary Get an article by slug
// @Tags articles
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} controllers.ArticleSuccessResponse "data contains the article"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /articles/{slug} [get]
func (c *ArticleController) GetArticle(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing slug")
		return
	}
	article, err := c.Service.GetArticleBySlug(r.Context(), slug)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "article not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, article)
}

// CreateArticle godoc
// @Summary Publish an article
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param article body CreateArticleRequest true "Article data"
// @Success 201 {object} controllers.ArticleSuccessResponse "data contains the created article"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /articles [post]
func (c *ArticleController) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var req CreateArticleRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	article := &domain.Article{
		AuthorID: userID,
		Title:    strings.TrimSpace(req.Title),
		Summary:  strings.TrimSpace(req.Summary),
		Body:     req.Body,
	}
	if err := c.Service.CreateArticle(r.Context(), article); err != nil {
		writeServiceError(w, r, c.Logger, err, "article not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, article)
}
