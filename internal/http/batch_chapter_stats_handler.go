package http

import (
	"encoding/json"
	"net/http"

	"engagement-analytics/internal/aggregators"
	"engagement-analytics/internal/models"
)

// BatchChapterStatsRequest is the payload for POST /time-trackings/stats/batch.
type BatchChapterStatsRequest struct {
	CourseID   string   `json:"courseId"`
	ChapterIDs []string `json:"chapterIds"`
}

type batchChapterStatsHandler struct {
	statsService aggregators.StatsService
}

func NewBatchChapterStatsHandler(statsService aggregators.StatsService) AppHttpHandler {
	return &batchChapterStatsHandler{
		statsService: statsService,
	}
}

// Handle processes POST /time-trackings/stats/batch requests.
func (h *batchChapterStatsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	var req BatchChapterStatsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return errMalformedRequestBody(err)
	}

	batch, err := h.statsService.BatchChapterStats(r.Context(), req.CourseID, req.ChapterIDs)
	if err != nil {
		return err
	}

	writeDataResponse(w, http.StatusOK, "Batch chapter statistics retrieved successfully", batch)
	return nil
}

func (h *batchChapterStatsHandler) EmptyData() any {
	return models.NewBatchChapterStats()
}
