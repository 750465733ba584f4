package handlers

import (
	"net/http"

	"euroasia/internal/app"
	"euroasia/internal/domain/application"
	"euroasia/internal/http/response"
)

type ApplicationHandler struct {
	applications *app.ApplicationService
}

func NewApplicationHandler(applications *app.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

func (h *ApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var form application.Application
	if err := decodeJSON(r, &form); err != nil {
		response.Error(w, err)
		return
	}
	if err := h.applications.Submit(r.Context(), form); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, statusResponse{Success: true, Message: "application submitted"})
}
