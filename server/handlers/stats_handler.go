package handlers

import (
	services "cinemap/service"
	"cinemap/util"
	"log"
	"net/http"
)

const TOP_QUERY_ARG = "top"

type StatsHandler struct {
	stats *services.StatsService
}

func NewStatsHandler(stats *services.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// GetStats handles GET /v1/stats?top={n}
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	top, err := parseOptionalInt(r.URL.Query(), TOP_QUERY_ARG)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.stats.Compute(top))
}

// GetStatsCharts handles GET /v1/stats/charts
func (h *StatsHandler) GetStatsCharts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.RenderStatsPage(w, h.stats.Compute(0)); err != nil {
		log.Println("Error rendering stats charts:", err)
	}
}
