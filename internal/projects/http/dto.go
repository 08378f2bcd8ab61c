package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/atogato/portfolio-backend/internal/projects/domain"
	"github.com/atogato/portfolio-backend/internal/projects/service"
)

// Request field names follow the persisted vocabulary the frontend already
// speaks (projectName, projectArtCategory, ...).

const dateLayout = "2006-01-02"

func createInputFromForm(c *gin.Context) (service.CreateInput, error) {
	var in service.CreateInput

	in.Name = c.PostForm("projectName")
	in.Category = c.PostForm("projectArtCategory")
	in.Location = c.PostForm("location")
	in.Description = c.PostForm("description")
	in.RemoteStatus = c.PostForm("remoteStatus")
	in.RequiredCategories = c.PostFormArray("requiredCategory")

	var err error
	if in.ProjectDeadline, err = formDate(c, "projectDeadline"); err != nil {
		return in, err
	}
	if in.ApplicationDeadline, err = formDate(c, "applicationDeadline"); err != nil {
		return in, err
	}
	if in.SwipeAlgorithm, err = formBool(c, "swipeAlgorithm"); err != nil {
		return in, err
	}
	if in.OngoingStatus, err = formBool(c, "ongoingStatus"); err != nil {
		return in, err
	}
	return in, nil
}

func formDate(c *gin.Context, key string) (time.Time, error) {
	v := c.PostForm(key)
	if v == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, domain.Invalid(key, "must be a YYYY-MM-DD date")
	}
	return t, nil
}

func formBool(c *gin.Context, key string) (*bool, error) {
	v := c.PostForm(key)
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, domain.Invalid(key, "must be a boolean")
	}
	return &b, nil
}

type replaceReq struct {
	Name                string   `json:"projectName"`
	Category            string   `json:"projectArtCategory"`
	Location            string   `json:"location"`
	ProjectDeadline     string   `json:"projectDeadline"`
	ApplicationDeadline string   `json:"applicationDeadline"`
	RequiredCategories  []string `json:"requiredCategory"`
	SwipeAlgorithm      bool     `json:"swipeAlgorithm"`
	Description         string   `json:"description"`
	OngoingStatus       bool     `json:"ongoingStatus"`
	RemoteStatus        string   `json:"remoteStatus"`
}

func replacementFromJSON(c *gin.Context) (domain.Replacement, error) {
	var req replaceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return domain.Replacement{}, domain.Invalid("body", "invalid json")
	}

	var rp domain.Replacement
	rp.Name = req.Name
	rp.Category = domain.Category(req.Category)
	rp.Location = req.Location
	rp.Description = req.Description
	rp.RemoteStatus = domain.RemoteStatus(req.RemoteStatus)
	rp.SwipeAlgorithm = req.SwipeAlgorithm
	rp.OngoingStatus = req.OngoingStatus
	rp.RequiredCategories = make([]domain.RequiredCategory, len(req.RequiredCategories))
	for i, s := range req.RequiredCategories {
		rp.RequiredCategories[i] = domain.RequiredCategory(s)
	}

	var err error
	if rp.ProjectDeadline, err = jsonDate("projectDeadline", req.ProjectDeadline); err != nil {
		return rp, err
	}
	if rp.ApplicationDeadline, err = jsonDate("applicationDeadline", req.ApplicationDeadline); err != nil {
		return rp, err
	}
	return rp, nil
}

// patchReq has one optional slot per mutable field. Keys not listed here
// are silently ignored, as the patch contract requires.
type patchReq struct {
	Name                *string  `json:"projectName"`
	Category            *string  `json:"projectArtCategory"`
	Location            *string  `json:"location"`
	ProjectDeadline     *string  `json:"projectDeadline"`
	ApplicationDeadline *string  `json:"applicationDeadline"`
	RequiredCategories  []string `json:"requiredCategory"`
	RequiredPeople      *int     `json:"requiredPeople"`
	SwipeAlgorithm      *bool    `json:"swipeAlgorithm"`
	Description         *string  `json:"description"`
	OngoingStatus       *bool    `json:"ongoingStatus"`
	RemoteStatus        *string  `json:"remoteStatus"`
}

func patchFromJSON(c *gin.Context) (domain.Patch, error) {
	var req patchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return domain.Patch{}, domain.Invalid("body", "invalid json")
	}

	var pt domain.Patch
	pt.Name = req.Name
	pt.Location = req.Location
	pt.RequiredPeople = req.RequiredPeople
	pt.SwipeAlgorithm = req.SwipeAlgorithm
	pt.Description = req.Description
	pt.OngoingStatus = req.OngoingStatus

	if req.Category != nil {
		cat := domain.Category(*req.Category)
		pt.Category = &cat
	}
	if req.RemoteStatus != nil {
		rs := domain.RemoteStatus(*req.RemoteStatus)
		pt.RemoteStatus = &rs
	}
	if req.RequiredCategories != nil {
		pt.RequiredCategories = make([]domain.RequiredCategory, len(req.RequiredCategories))
		for i, s := range req.RequiredCategories {
			pt.RequiredCategories[i] = domain.RequiredCategory(s)
		}
	}
	if req.ProjectDeadline != nil {
		t, err := jsonDate("projectDeadline", *req.ProjectDeadline)
		if err != nil {
			return pt, err
		}
		pt.ProjectDeadline = &t
	}
	if req.ApplicationDeadline != nil {
		t, err := jsonDate("applicationDeadline", *req.ApplicationDeadline)
		if err != nil {
			return pt, err
		}
		pt.ApplicationDeadline = &t
	}
	return pt, nil
}

func jsonDate(key, v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, domain.Invalid(key, "must be a YYYY-MM-DD date")
	}
	return t, nil
}
