package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"openlaunch/internal/delivery/http/helpers"
	"openlaunch/internal/domain"
	"openlaunch/internal/pagination"
)

const maxCommentLength = 5000

// CreateCommentRequest is the request body for POST /projects/{projectID}/comments.
type CreateCommentRequest struct {
	Body string `json:"body"`
}

// Validate implements Validator.
func (c CreateCommentRequest) Validate() []string {
	body := strings.TrimSpace(c.Body)
	if body == "" {
		return []string{"body is required"}
	}
	if utf8.RuneCountInString(body) > maxCommentLength {
		return []string{"body must be at most 5000 characters"}
	}
	return nil
}

// ListCommentsSuccessResponse is the success response envelope for GET /projects/{projectID}/comments (200).
type ListCommentsSuccessResponse struct {
	Data  pagination.CursorResult[*domain.Comment] `json:"data"`
	Error *helpers.APIError                        `json:"error"`
}

// CommentSuccessResponse is the success response envelope for POST /projects/{projectID}/comments (201).
type CommentSuccessResponse struct {
	Data  *domain.Comment   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type CommentController struct {
	Logger  *slog.Logger
	Service domain.CommentService
}

func NewCommentController(logger *slog.Logger, svc domain.CommentService) *CommentController {
	return &CommentController{
		Logger:  logger,
		Service: svc,
	}
}

// ListComments godoc
// @Summary List a project's comments
// @Description Newest-first, cursor-paginated. The cursor is the ID of the last comment on the previous page.
// @Tags comments
// @Produce json
// @Param projectID path string true "Project ID (UUID)"
// @Param cursor query string false "next_cursor from the previous page, URL-encoded"
// @Param limit query int false "Page size (1-100)" default(20)
// @Success 200 {object} controllers.ListCommentsSuccessResponse "data contains items, next_cursor and has_more"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /projects/{projectID}/comments [get]
func (c *CommentController) ListComments(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathUUID(w, r, "projectID")
	if !ok {
		return
	}
	result, err := c.Service.ListComments(r.Context(), projectID, helpers.ParseCursorParams(r))
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "project not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}

// CreateComment godoc
// @Summary Comment on a project
// @Description The project owner is notified by email unless they wrote the comment.
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectID path string true "Project ID (UUID)"
// @Param comment body CreateCommentRequest true "Comment body"
// @Success 201 {object} controllers.CommentSuccessResponse "data contains the created comment"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /projects/{projectID}/comments [post]
func (c *CommentController) CreateComment(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathUUID(w, r, "projectID")
	if !ok {
		return
	}
	var req CreateCommentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	comment := &domain.Comment{ProjectID: projectID, AuthorID: userID, Body: req.Body}
	if err := c.Service.CreateComment(r.Context(), comment); err != nil {
		writeServiceError(w, r, c.Logger, err, "project not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, comment)
}
