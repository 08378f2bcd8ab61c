package domain

import "time"

// Patch is a sparse-merge update: one optional slot per mutable field.
// A nil slot leaves the target field untouched. ID, owner, created date,
// images and the liked counter have no slot on purpose.
type Patch struct {
	Name                *string
	Category            *Category
	Location            *string
	ProjectDeadline     *time.Time
	ApplicationDeadline *time.Time
	RequiredCategories  []RequiredCategory // nil = untouched, empty = clear
	RequiredPeople      *int
	SwipeAlgorithm      *bool
	Description         *string
	OngoingStatus       *bool
	RemoteStatus        *RemoteStatus
}

// Empty reports whether the patch names no field at all.
func (pt *Patch) Empty() bool {
	return pt.Name == nil && pt.Category == nil && pt.Location == nil &&
		pt.ProjectDeadline == nil && pt.ApplicationDeadline == nil &&
		pt.RequiredCategories == nil && pt.RequiredPeople == nil &&
		pt.SwipeAlgorithm == nil && pt.Description == nil &&
		pt.OngoingStatus == nil && pt.RemoteStatus == nil
}

// Apply assigns every populated slot into p. When the patch carries a
// required-category list its length is authoritative for RequiredPeople,
// even if the patch also carries a RequiredPeople value.
func (pt *Patch) Apply(p *Project) {
	if pt.Name != nil {
		p.Name = *pt.Name
	}
	if pt.Category != nil {
		p.Category = *pt.Category
	}
	if pt.Location != nil {
		p.Location = *pt.Location
	}
	if pt.ProjectDeadline != nil {
		p.ProjectDeadline = Day(*pt.ProjectDeadline)
	}
	if pt.ApplicationDeadline != nil {
		p.ApplicationDeadline = Day(*pt.ApplicationDeadline)
	}
	if pt.RequiredPeople != nil {
		p.RequiredPeople = *pt.RequiredPeople
	}
	if pt.RequiredCategories != nil {
		p.RequiredCategories = pt.RequiredCategories
		p.RequiredPeople = len(pt.RequiredCategories)
	}
	if pt.SwipeAlgorithm != nil {
		p.SwipeAlgorithm = *pt.SwipeAlgorithm
	}
	if pt.Description != nil {
		p.Description = *pt.Description
	}
	if pt.OngoingStatus != nil {
		p.OngoingStatus = *pt.OngoingStatus
	}
	if pt.RemoteStatus != nil {
		p.RemoteStatus = *pt.RemoteStatus
	}
}

// Replacement is a full-replace update: the complete desired state of every
// mutable field. RequiredPeople is always recomputed from the category list.
type Replacement struct {
	Name                string
	Category            Category
	Location            string
	ProjectDeadline     time.Time
	ApplicationDeadline time.Time
	RequiredCategories  []RequiredCategory
	SwipeAlgorithm      bool
	Description         string
	OngoingStatus       bool
	RemoteStatus        RemoteStatus
}

// Apply overwrites every mutable field of p from the replacement.
func (rp *Replacement) Apply(p *Project) {
	p.Name = rp.Name
	p.Category = rp.Category
	p.Location = rp.Location
	p.ProjectDeadline = Day(rp.ProjectDeadline)
	p.ApplicationDeadline = Day(rp.ApplicationDeadline)
	p.RequiredCategories = rp.RequiredCategories
	p.RequiredPeople = len(rp.RequiredCategories)
	p.SwipeAlgorithm = rp.SwipeAlgorithm
	p.Description = rp.Description
	p.OngoingStatus = rp.OngoingStatus
	p.RemoteStatus = rp.RemoteStatus
}
