package handlers

import (
	"lull-backoffice/internal/database"
	"lull-backoffice/internal/service"

	"go.uber.org/zap"
)

// Handler serves the console's JSON API.
type Handler struct {
	store      database.Store
	backoffice *service.Backoffice
	logger     *zap.Logger
}

func New(store database.Store, backoffice *service.Backoffice, logger *zap.Logger) *Handler {
	return &Handler{
		store:      store,
		backoffice: backoffice,
		logger:     logger,
	}
}
