package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"openlaunch/internal/delivery/http/helpers"
	"openlaunch/internal/delivery/http/middleware"
	"openlaunch/internal/domain"
	"openlaunch/internal/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCommentService struct {
	listErr       error
	list          pagination.CursorResult[*domain.Comment]
	lastProjectID string
	lastParams    pagination.NormalizedCursorParams
	createErr     error
	lastCreate    *domain.Comment
}

func (f *fakeCommentService) CreateComment(ctx context.Context, c *domain.Comment) error {
	f.lastCreate = c
	if f.createErr != nil {
		return f.createErr
	}
	c.ID = "c-1"
	return nil
}

func (f *fakeCommentService) ListComments(ctx context.Context, projectID string, params pagination.NormalizedCursorParams) (pagination.CursorResult[*domain.Comment], error) {
	f.lastProjectID, f.lastParams = projectID, params
	return f.list, f.listErr
}

func TestCommentController_ListComments(t *testing.T) {
	tests := []struct {
		name       string
		projectID  string
		query      string
		fake       *fakeCommentService
		wantStatus int
		wantCode   string
	}{
		{name: "success", projectID: testProjectID, query: "?cursor=c-9&limit=10", fake: &fakeCommentService{list: pagination.CursorResult[*domain.Comment]{Items: []*domain.Comment{}}}, wantStatus: http.StatusOK},
		{name: "invalid project id", projectID: "not-a-uuid", fake: &fakeCommentService{}, wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeBadRequest},
		{name: "missing project", projectID: testProjectID, fake: &fakeCommentService{listErr: domain.ErrNotFound}, wantStatus: http.StatusNotFound, wantCode: helpers.ErrCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewCommentController(testLogger, tt.fake)
			req := httptest.NewRequest(http.MethodGet, "http://test/projects/"+tt.projectID+"/comments"+tt.query, nil)
			req.SetPathValue("projectID", tt.projectID)
			rr := httptest.NewRecorder()
			ctrl.ListComments(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantCode != "" {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantCode, envelope.Error.Code)
				return
			}
			assert.Equal(t, testProjectID, tt.fake.lastProjectID)
			assert.Equal(t, pagination.NormalizedCursorParams{Cursor: "c-9", Limit: 10}, tt.fake.lastParams)
		})
	}
}

func TestCommentController_CreateComment(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		noUserContext bool
		fake          *fakeCommentService
		wantStatus    int
		wantCode      string
	}{
		{name: "success", body: `{"body":"Great launch"}`, fake: &fakeCommentService{}, wantStatus: http.StatusCreated},
		{name: "blank body", body: `{"body":"   "}`, fake: &fakeCommentService{}, wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeBadRequest},
		{name: "too long", body: `{"body":"` + strings.Repeat("a", 5001) + `"}`, fake: &fakeCommentService{}, wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeBadRequest},
		{name: "no user", body: `{"body":"hi"}`, noUserContext: true, fake: &fakeCommentService{}, wantStatus: http.StatusUnauthorized, wantCode: helpers.ErrCodeUnauthorized},
		{name: "project gone", body: `{"body":"hi"}`, fake: &fakeCommentService{createErr: domain.ErrNotFound}, wantStatus: http.StatusNotFound, wantCode: helpers.ErrCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewCommentController(testLogger, tt.fake)
			req := httptest.NewRequest(http.MethodPost, "http://test/projects/"+testProjectID+"/comments", bytes.NewBufferString(tt.body))
			req.SetPathValue("projectID", testProjectID)
			if !tt.noUserContext {
				req = req.WithContext(middleware.SetUserID(req.Context(), "user-123"))
			}
			rr := httptest.NewRecorder()
			ctrl.CreateComment(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantCode != "" {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantCode, envelope.Error.Code)
				return
			}
			require.NotNil(t, tt.fake.lastCreate)
			assert.Equal(t, testProjectID, tt.fake.lastCreate.ProjectID)
			assert.Equal(t, "user-123", tt.fake.lastCreate.AuthorID)
		})
	}
}
