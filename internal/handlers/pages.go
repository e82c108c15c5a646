package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Page serves the view model of one console page. Filters are read from
// the query string.
func (h *Handler) Page(page string) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := h.backoffice.View(c.Request.Context(), page, c.Request.URL.Query())
		if err != nil {
			h.fail(c, http.StatusInternalServerError, "failed to load "+page, err)
			return
		}
		render(c, http.StatusOK, view)
	}
}
