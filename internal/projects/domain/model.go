package domain

import "time"

// Project is a creative-collaboration listing owned by a user.
// It is intentionally storage-agnostic and used across repository and HTTP layers.
type Project struct {
	ID                  string             `json:"id"`
	OwnerID             string             `json:"owner_id"`
	Name                string             `json:"name"`
	Category            Category           `json:"category"`
	Location            string             `json:"location"`
	CreatedDate         time.Time          `json:"created_date"`
	ProjectDeadline     time.Time          `json:"project_deadline"`
	ApplicationDeadline time.Time          `json:"application_deadline"`
	RequiredCategories  []RequiredCategory `json:"required_category"`
	RequiredPeople      int                `json:"required_people"`
	SwipeAlgorithm      bool               `json:"swipe_algorithm"`
	Description         string             `json:"description"`
	OngoingStatus       bool               `json:"ongoing_status"`
	RemoteStatus        RemoteStatus       `json:"remote_status"`
	Liked               int64              `json:"liked"`
	Images              []ProjectImage     `json:"images"`
}

// ProjectImage is a value record owned by its Project. Position preserves
// the order files arrived in at create time.
type ProjectImage struct {
	URL      string `json:"url"`
	Position int    `json:"position"`
}

// Defaults applied by Create when the caller omits an optional field.
const DefaultLocation = "Unknown"

// OwnedBy reports whether the given principal owns the project.
// Authorization for update and delete is exactly this comparison.
func (p *Project) OwnedBy(principalID string) bool {
	return p.OwnerID != "" && p.OwnerID == principalID
}

// Day truncates t to date granularity. Deadlines and created_date are
// stored and compared at day precision.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
