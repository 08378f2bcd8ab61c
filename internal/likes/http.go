package likes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atogato/portfolio-backend/internal/auth"
	"github.com/atogato/portfolio-backend/internal/projects/domain"
)

// RegisterProjectsSubroutes attaches like endpoints under the projects group.
func RegisterProjectsSubroutes(rg *gin.RouterGroup, svc *Service) {
	h := &handler{svc: svc}
	rg.POST("/:id/like", h.like)
	rg.DELETE("/:id/like", h.unlike)
}

type handler struct {
	svc *Service
}

func (h *handler) like(c *gin.Context) {
	userID := auth.UserFirebaseUID(c)
	liked, changed, err := h.svc.Like(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "liked": liked, "changed": changed})
}

func (h *handler) unlike(c *gin.Context) {
	userID := auth.UserFirebaseUID(c)
	liked, changed, err := h.svc.Unlike(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "liked": liked, "changed": changed})
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "authentication required"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
	}
}
