package domain

import (
	"context"
	"time"

	"openlaunch/internal/pagination"
)

// Project is a launched software project.
// swagger:model Project
type Project struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Tagline     string    `json:"tagline"`
	Description string    `json:"description"`
	WebsiteURL  string    `json:"website_url"`
	UpvoteCount int       `json:"upvote_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewProject returns a new Project. ID and Slug are set on create.
func NewProject(ownerID, name, tagline, description, websiteURL string, createdAt, updatedAt time.Time) *Project {
	return &Project{
		OwnerID:     ownerID,
		Name:        name,
		Tagline:     tagline,
		Description: description,
		WebsiteURL:  websiteURL,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

func (p *Project) GetID() string { return p.ID }

// ProjectSort selects the ordering of project listings.
type ProjectSort string

const (
	ProjectSortNewest ProjectSort = "newest"
	// ProjectSortTop orders by upvotes and backs the leaderboard.
	ProjectSortTop ProjectSort = "top"
)

// ParseProjectSort returns the sort for s, falling back to newest for unknown values.
func ParseProjectSort(s string) ProjectSort {
	if ProjectSort(s) == ProjectSortTop {
		return ProjectSortTop
	}
	return ProjectSortNewest
}

// ProjectRepository defines the interface for project storage.
type ProjectRepository interface {
	Create(ctx context.Context, project *Project) error
	GetByID(ctx context.Context, id string) (*Project, error)
	GetBySlug(ctx context.Context, slug string) (*Project, error)
	// List returns at most limit projects starting at offset, in sort order.
	List(ctx context.Context, sort ProjectSort, limit, offset int) ([]*Project, error)
	Count(ctx context.Context) (int, error)
	// Upvote records userID's upvote and bumps the counter. Returns ErrAlreadyUpvoted on repeat.
	Upvote(ctx context.Context, projectID, userID string) (upvoteCount int, err error)
}

// ProjectService defines the business logic for projects.
type ProjectService interface {
	CreateProject(ctx context.Context, project *Project) error
	GetProjectBySlug(ctx context.Context, slug string) (*Project, error)
	ListProjects(ctx context.Context, sort ProjectSort, params pagination.NormalizedOffsetParams) (pagination.OffsetResult[*Project], error)
	Upvote(ctx context.Context, projectID, userID string) (*Project, error)
}
