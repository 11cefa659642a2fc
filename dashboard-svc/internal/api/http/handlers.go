package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"bistro/dashboard-svc/internal/service"
)

type Handler struct {
	Analytics service.AnalyticsInterface
}

func NewHandler(svc service.AnalyticsInterface) *Handler {
	return &Handler{Analytics: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok", "service": "dashboard-svc"})
	}).Methods("GET")
	r.HandleFunc("/api/dashboard/summary", h.getSummary).Methods("GET")
	r.HandleFunc("/api/dashboard/top-items", h.getTopItems).Methods("GET")
	r.HandleFunc("/api/dashboard/trends", h.getTrends).Methods("GET")
}

func (h *Handler) getSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Analytics.Summary(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

func (h *Handler) getTopItems(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	items, err := h.Analytics.TopItems(r.Context(), r.URL.Query().Get("period"), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

func (h *Handler) getTrends(w http.ResponseWriter, r *http.Request) {
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))
	points, err := h.Analytics.Trend(r.Context(), days, time.Now())
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(points)
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrInvalidDate) || errors.Is(err, service.ErrInvalidPeriod) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Printf("[dashboard-svc] %v", err)
	http.Error(w, "dashboard data unavailable", http.StatusInternalServerError)
}
