package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sweepstats/sweepstats/internal/api/apierr"
	"github.com/sweepstats/sweepstats/internal/api/middleware"
	"github.com/sweepstats/sweepstats/internal/api/request"
	"github.com/sweepstats/sweepstats/internal/api/response"
	"github.com/sweepstats/sweepstats/internal/model"
	"github.com/sweepstats/sweepstats/internal/services/stats"
	"github.com/sweepstats/sweepstats/internal/services/summary"
)

// StatsHandler handles game record endpoints
type StatsHandler struct {
	statsService   *stats.Service
	summaryService *summary.Service
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *stats.Service, summaryService *summary.Service) *StatsHandler {
	return &StatsHandler{
		statsService:   statsService,
		summaryService: summaryService,
	}
}

// Save handles POST /api/v1/game-stats
func (h *StatsHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID := middleware.MustGetUserID(r.Context())

	var req request.SaveStatsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Difficulty == "" || req.TimeTaken == nil || req.IsWin == nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("difficulty, time_taken and is_win are required"))
		return
	}

	record, err := h.statsService.Append(r.Context(), userID,
		model.Difficulty(req.Difficulty), *req.TimeTaken, *req.IsWin,
		req.MinesFlagged, req.CellsOpened)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameRecordFromModel(record))
}

// List handles GET /api/v1/game-stats
func (h *StatsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.MustGetUserID(r.Context())

	records, err := h.statsService.ListForUser(r.Context(), userID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameRecordListFromModel(records))
}

// Summary handles GET /api/v1/game-stats/summary
func (h *StatsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID := middleware.MustGetUserID(r.Context())

	result, err := h.summaryService.Summarize(r.Context(), userID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.StatsSummaryFromModel(result))
}
