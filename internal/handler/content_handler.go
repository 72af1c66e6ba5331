package handlers

import (
	"context"
	"net/http"
	"time"
)

type MessageResponse struct {
	Result  bool   `json:"result"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string         `json:"status"`
	Tables map[string]int `json:"tables,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (h *Handlers) CreateContent(w http.ResponseWriter, r *http.Request) {
	if err := h.ContentService.Seed(r.Context()); err != nil {
		WriteError(w, err)
		return
	}

	writeSuccess(w, ResultResponse{Result: true}, http.StatusOK)
}

func (h *Handlers) DeleteContent(w http.ResponseWriter, r *http.Request) {
	if err := h.ContentService.Reset(r.Context()); err != nil {
		WriteError(w, err)
		return
	}

	writeSuccess(w, MessageResponse{Result: true, Message: "all content deleted"}, http.StatusOK)
}

// Health pings the database and reports row counts per table.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.DB.HealthCheck(ctx); err != nil {
		writeSuccess(w, HealthResponse{Status: "unavailable", Error: err.Error()}, http.StatusServiceUnavailable)
		return
	}

	counts, err := h.StatsService.CountRows(ctx)
	if err != nil {
		writeSuccess(w, HealthResponse{Status: "degraded", Error: err.Error()}, http.StatusServiceUnavailable)
		return
	}

	writeSuccess(w, HealthResponse{Status: "ok", Tables: counts}, http.StatusOK)
}
