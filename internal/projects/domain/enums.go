package domain

import "fmt"

// Category is the art category a project belongs to.
type Category string

const (
	CategoryPainting    Category = "PAINTING"
	CategoryMusic       Category = "MUSIC"
	CategoryDance       Category = "DANCE"
	CategoryPhotography Category = "PHOTOGRAPHY"
	CategoryFilm        Category = "FILM"
	CategoryDesign      Category = "DESIGN"
	CategoryCraft       Category = "CRAFT"
	CategoryWriting     Category = "WRITING"
	CategoryTheatre     Category = "THEATRE"
	CategoryEtc         Category = "ETC"
)

var categories = map[Category]bool{
	CategoryPainting:    true,
	CategoryMusic:       true,
	CategoryDance:       true,
	CategoryPhotography: true,
	CategoryFilm:        true,
	CategoryDesign:      true,
	CategoryCraft:       true,
	CategoryWriting:     true,
	CategoryTheatre:     true,
	CategoryEtc:         true,
}

// ParseCategory validates a serialized category value.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !categories[c] {
		return "", fmt.Errorf("unknown project category %q", s)
	}
	return c, nil
}

// RequiredCategory is a role tag a project is recruiting for.
type RequiredCategory string

const (
	RolePainter      RequiredCategory = "PAINTER"
	RoleMusician     RequiredCategory = "MUSICIAN"
	RoleDancer       RequiredCategory = "DANCER"
	RolePhotographer RequiredCategory = "PHOTOGRAPHER"
	RoleFilmmaker    RequiredCategory = "FILMMAKER"
	RoleDesigner     RequiredCategory = "DESIGNER"
	RoleCraftsman    RequiredCategory = "CRAFTSMAN"
	RoleWriter       RequiredCategory = "WRITER"
	RoleActor        RequiredCategory = "ACTOR"
	RoleEtc          RequiredCategory = "ETC"
)

var requiredCategories = map[RequiredCategory]bool{
	RolePainter:      true,
	RoleMusician:     true,
	RoleDancer:       true,
	RolePhotographer: true,
	RoleFilmmaker:    true,
	RoleDesigner:     true,
	RoleCraftsman:    true,
	RoleWriter:       true,
	RoleActor:        true,
	RoleEtc:          true,
}

// ParseRequiredCategory validates a serialized role tag.
func ParseRequiredCategory(s string) (RequiredCategory, error) {
	rc := RequiredCategory(s)
	if !requiredCategories[rc] {
		return "", fmt.Errorf("unknown required category %q", s)
	}
	return rc, nil
}

// ParseRequiredCategories validates a whole list, preserving order.
func ParseRequiredCategories(ss []string) ([]RequiredCategory, error) {
	out := make([]RequiredCategory, 0, len(ss))
	for _, s := range ss {
		rc, err := ParseRequiredCategory(s)
		if err != nil {
			return nil, err
		}
		out = append(out, rc)
	}
	return out, nil
}

// RemoteStatus says where the collaboration happens.
type RemoteStatus string

const (
	RemoteRemote RemoteStatus = "remote"
	RemoteOnsite RemoteStatus = "onsite"
	RemoteBoth   RemoteStatus = "both"
)

// ParseRemoteStatus validates a serialized remote status.
func ParseRemoteStatus(s string) (RemoteStatus, error) {
	switch RemoteStatus(s) {
	case RemoteRemote, RemoteOnsite, RemoteBoth:
		return RemoteStatus(s), nil
	}
	return "", fmt.Errorf("unknown remote status %q", s)
}
