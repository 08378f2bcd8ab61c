package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.listRecent)
	rg.GET("/sorted", h.listUpcoming)
	rg.GET("/:id", h.get)
	rg.POST("", h.create)
	rg.PUT("/:id", h.replace)
	rg.PATCH("/:id", h.patch)
	rg.DELETE("/:id", h.delete)
}
