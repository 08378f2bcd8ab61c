package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/atogato/portfolio-backend/internal/projects/domain"
)

// CreateInput carries the raw creation fields. Empty strings and nil
// pointers mean "not supplied"; documented defaults are applied here.
type CreateInput struct {
	Name                string
	Category            string
	Location            string
	ProjectDeadline     time.Time
	ApplicationDeadline time.Time
	RequiredCategories  []string
	SwipeAlgorithm      *bool
	Description         string
	OngoingStatus       *bool
	RemoteStatus        string
}

// UploadFile is one image file attached to a create request.
type UploadFile struct {
	Name string
	Data []byte
}

// UploadResult reports the outcome of one image upload. A failed upload is
// omitted from the project's image set but never aborts the create.
type UploadResult struct {
	Filename string `json:"filename"`
	URL      string `json:"url,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Create validates the input, uploads the image files, and persists a new
// project owned by the principal. RequiredPeople is always derived from the
// required-category list; any value the caller sends for it is ignored.
func (s *ProjectService) Create(ctx context.Context, principalID string, in CreateInput, files []UploadFile) (*domain.Project, []UploadResult, error) {
	if principalID == "" {
		return nil, nil, domain.ErrUnauthenticated
	}

	p, err := s.buildProject(principalID, in)
	if err != nil {
		return nil, nil, err
	}

	results := make([]UploadResult, 0, len(files))
	for _, f := range files {
		url, err := s.store.Upload(ctx, f.Name, f.Data)
		if err != nil {
			log.Printf("[projects] image upload failed file=%s err=%v", f.Name, err)
			results = append(results, UploadResult{Filename: f.Name, Error: err.Error()})
			continue
		}
		p.Images = append(p.Images, domain.ProjectImage{URL: url, Position: len(p.Images)})
		results = append(results, UploadResult{Filename: f.Name, URL: url})
	}

	saved, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, nil, err
	}
	return saved, results, nil
}

func (s *ProjectService) buildProject(principalID string, in CreateInput) (*domain.Project, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Invalid("name", "required")
	}
	if in.Category == "" {
		return nil, domain.Invalid("category", "required")
	}
	category, err := domain.ParseCategory(in.Category)
	if err != nil {
		return nil, domain.Invalid("category", err.Error())
	}
	if in.ProjectDeadline.IsZero() {
		return nil, domain.Invalid("project_deadline", "required")
	}
	if in.ApplicationDeadline.IsZero() {
		return nil, domain.Invalid("application_deadline", "required")
	}
	if len(in.RequiredCategories) == 0 {
		return nil, domain.Invalid("required_category", "required")
	}
	roles, err := domain.ParseRequiredCategories(in.RequiredCategories)
	if err != nil {
		return nil, domain.Invalid("required_category", err.Error())
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, domain.Invalid("description", "required")
	}

	location := in.Location
	if strings.TrimSpace(location) == "" {
		location = domain.DefaultLocation
	}

	remote := domain.RemoteBoth
	if in.RemoteStatus != "" {
		remote, err = domain.ParseRemoteStatus(in.RemoteStatus)
		if err != nil {
			return nil, domain.Invalid("remote_status", err.Error())
		}
	}

	p := &domain.Project{
		OwnerID:             principalID,
		Name:                name,
		Category:            category,
		Location:            location,
		CreatedDate:         domain.Day(s.now()),
		ProjectDeadline:     domain.Day(in.ProjectDeadline),
		ApplicationDeadline: domain.Day(in.ApplicationDeadline),
		RequiredCategories:  roles,
		RequiredPeople:      len(roles),
		SwipeAlgorithm:      true,
		Description:         in.Description,
		OngoingStatus:       true,
		RemoteStatus:        remote,
		Images:              []domain.ProjectImage{},
	}
	if in.SwipeAlgorithm != nil {
		p.SwipeAlgorithm = *in.SwipeAlgorithm
	}
	if in.OngoingStatus != nil {
		p.OngoingStatus = *in.OngoingStatus
	}

	if err := checkDeadlines(p); err != nil {
		return nil, err
	}
	return p, nil
}
