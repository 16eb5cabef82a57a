package controllers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"openlaunch/internal/delivery/http/helpers"
	"openlaunch/internal/domain"
	"openlaunch/internal/pagination"
)

const (
	maxProjectNameLength    = 100
	maxProjectTaglineLength = 160
)

// CreateProjectRequest is the request body for POST /projects.
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	WebsiteURL  string `json:"website_url"`
}

// Validate implements Validator.
func (c CreateProjectRequest) Validate() []string {
	var errs []string
	name := strings.TrimSpace(c.Name)
	if name == "" {
		errs = append(errs, "name is required")
	} else if utf8.RuneCountInString(name) > maxProjectNameLength {
		errs = append(errs, "name must be at most 100 characters")
	}
	if utf8.RuneCountInString(c.Tagline) > maxProjectTaglineLength {
		errs = append(errs, "tagline must be at most 160 characters")
	}
	if c.WebsiteURL != "" {
		u, err := url.Parse(c.WebsiteURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, "website_url must be an absolute http(s) URL")
		}
	}
	return errs
}

// ListProjectsResponse is one page of projects plus display metadata for a pager.
// Pages is the page-number strip; collapsed ranges are the string "ellipsis".
type ListProjectsResponse struct {
	pagination.OffsetResult[*domain.Project]
	Pagination pagination.Info       `json:"pagination"`
	Pages      []pagination.PageItem `json:"pages"`
}

// ListProjectsSuccessResponse is the success response envelope for GET /projects (200).
type ListProjectsSuccessResponse struct {
	Data  ListProjectsResponse `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// ProjectSuccessResponse is the success response envelope for single-project endpoints.
type ProjectSuccessResponse struct {
	Data  *domain.Project   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type ProjectController struct {
	Logger  *slog.Logger
	Service domain.ProjectService
}

func NewProjectController(logger *slog.Logger, svc domain.ProjectService) *ProjectController {
	return &ProjectController{
		Logger:  logger,
		Service: svc,
	}
}

// ListProjects godoc
// @Summary List projects
// @Description Offset-paginated project listing. Out-of-range or non-numeric page/limit values are normalized, never rejected.
// @Tags projects
// @Produce json
// @Param page query int false "1-based page number" default(1)
// @Param limit query int false "Page size (1-100)" default(20)
// @Param page_size query int false "Alias of limit"
// @Param sort query string false "newest or top" Enums(newest, top) default(newest)
// @Success 200 {object} controllers.ListProjectsSuccessResponse "data contains items, totals, pagination info and the page strip"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /projects [get]
func (c *ProjectController) ListProjects(w http.ResponseWriter, r *http.Request) {
	c.list(w, r, domain.ParseProjectSort(r.URL.Query().Get("sort")))
}

// Leaderboard godoc
// @Summary Project leaderboard
// @Description Projects ordered by upvotes, then newest. Same pagination as GET /projects.
// @Tags projects
// @Produce json
// @Param page query int false "1-based page number" default(1)
// @Param limit query int false "Page size (1-100)" default(20)
// @Success 200 {object} controllers.ListProjectsSuccessResponse "data contains items, totals, pagination info and the page strip"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /projects/leaderboard [get]
func (c *ProjectController) Leaderboard(w http.ResponseWriter, r *http.Request) {
	c.list(w, r, domain.ProjectSortTop)
}

func (c *ProjectController) list(w http.ResponseWriter, r *http.Request, sort domain.ProjectSort) {
	params := helpers.ParseOffsetParams(r)
	result, err := c.Service.ListProjects(r.Context(), sort, params)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "project not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListProjectsResponse{
		OffsetResult: result,
		Pagination:   pagination.GetPaginationInfo(result.Total, params.Page, params.Limit),
		Pages:        pagination.GeneratePageNumbers(params.Page, result.TotalPages, pagination.DefaultMaxVisiblePages),
	})
}

// GetProject godoc
// @Summary Get a project by slug
// @Tags projects
// @Produce json
// @Param slug path string true "Project slug"
// @Success 200 {object} controllers.ProjectSuccessResponse "data contains the project"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /projects/{slug} [get]
func (c *ProjectController) GetProject(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing slug")
		return
	}
	project, err := c.Service.GetProjectBySlug(r.Context(), slug)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "project not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, project)
}

// CreateProject godoc
// @Summary Launch a project
// @Description Creates a project owned by the authenticated user. The slug is derived from the name.
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param project body CreateProjectRequest true "Project data"
// @Success 201 {object} controllers.ProjectSuccessResponse "data contains the created project"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /projects [post]
func (c *ProjectController) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	now := time.Now()
	project := domain.NewProject(userID, strings.TrimSpace(req.Name), strings.TrimSpace(req.Tagline), req.Description, req.WebsiteURL, now, now)
	if err := c.Service.CreateProject(r.Context(), project); err != nil {
		writeServiceError(w, r, c.Logger, err, "project not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, project)
}

// Upvote godoc
// @Summary Upvote a project
// @Description Records one upvote per user and project. A repeat upvote is a conflict.
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param projectID path string true "Project ID (UUID)"
// @Success 200 {object} controllers.ProjectSuccessResponse "data contains the project with its new upvote count"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /projects/{projectID}/upvote [post]
func (c *ProjectController) Upvote(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathUUID(w, r, "projectID")
	if !ok {
		return
	}
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	project, err := c.Service.Upvote(r.Context(), projectID, userID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "project not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, project)
}
