package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atogato/portfolio-backend/internal/auth"
	"github.com/atogato/portfolio-backend/internal/projects/domain"
	"github.com/atogato/portfolio-backend/internal/projects/service"
)

func (h *Handler) get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) listRecent(c *gin.Context) {
	items, err := h.svc.ListRecent(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

func (h *Handler) listUpcoming(c *gin.Context) {
	items, err := h.svc.ListUpcoming(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

func (h *Handler) create(c *gin.Context) {
	in, err := createInputFromForm(c)
	if err != nil {
		writeError(c, err)
		return
	}

	files, err := imageFiles(c)
	if err != nil {
		writeError(c, err)
		return
	}

	userID := auth.UserFirebaseUID(c)
	p, uploads, err := h.svc.Create(c.Request.Context(), userID, in, files)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p, "uploads": uploads})
}

func (h *Handler) replace(c *gin.Context) {
	rp, err := replacementFromJSON(c)
	if err != nil {
		writeError(c, err)
		return
	}

	userID := auth.UserFirebaseUID(c)
	p, err := h.svc.Replace(c.Request.Context(), userID, c.Param("id"), rp)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) patch(c *gin.Context) {
	pt, err := patchFromJSON(c)
	if err != nil {
		writeError(c, err)
		return
	}

	userID := auth.UserFirebaseUID(c)
	p, err := h.svc.Patch(c.Request.Context(), userID, c.Param("id"), pt)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) delete(c *gin.Context) {
	userID := auth.UserFirebaseUID(c)
	if err := h.svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// imageFiles reads every uploaded "image" part into memory.
// A non-multipart request simply has no files.
func imageFiles(c *gin.Context) ([]service.UploadFile, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, domain.Invalid("image", "invalid multipart form")
	}

	out := make([]service.UploadFile, 0, len(form.File["image"]))
	for _, fh := range form.File["image"] {
		f, err := fh.Open()
		if err != nil {
			return nil, domain.Invalid("image", "cannot open "+fh.Filename)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, domain.Invalid("image", "cannot read "+fh.Filename)
		}
		out = append(out, service.UploadFile{Name: fh.Filename, Data: data})
	}
	return out, nil
}

func writeError(c *gin.Context, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": ve.Error(), "field": ve.Field})
	case errors.Is(err, domain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "authentication required"})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "not the project owner"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
	}
}
