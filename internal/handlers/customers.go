package handlers

import (
	"net/http"

	"lull-backoffice/internal/database"
	"lull-backoffice/internal/pages"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateCustomer(c *gin.Context) {
	var draft pages.CustomerDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		h.fail(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	ctx := c.Request.Context()
	customer, err := h.backoffice.CreateCustomer(ctx, draft)
	if err != nil {
		h.fail(c, http.StatusInternalServerError, "failed to save customer", err)
		return
	}

	database.RecordAudit(ctx, h.store, h.logger, sessionUserID(c), "customer", customer.ID, "create", "顧客を登録: "+customer.Name)

	render(c, http.StatusCreated, customer)
}
