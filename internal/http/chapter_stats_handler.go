package http

import (
	"net/http"
	"strings"

	"engagement-analytics/internal/aggregators"
	"engagement-analytics/internal/models"
)

type chapterStatsHandler struct {
	statsService aggregators.StatsService
}

func NewChapterStatsHandler(statsService aggregators.StatsService) AppHttpHandler {
	return &chapterStatsHandler{
		statsService: statsService,
	}
}

// Handle processes GET /time-trackings/stats/chapter requests.
func (h *chapterStatsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	courseID := strings.TrimSpace(r.URL.Query().Get("courseId"))
	chapterID := strings.TrimSpace(r.URL.Query().Get("chapterId"))

	stats, err := h.statsService.ChapterStats(r.Context(), courseID, chapterID)
	if err != nil {
		return err
	}

	writeDataResponse(w, http.StatusOK, "Chapter statistics retrieved successfully", stats)
	return nil
}

func (h *chapterStatsHandler) EmptyData() any {
	return models.NewEmptyChapterStats()
}
