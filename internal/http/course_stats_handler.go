package http

import (
	"net/http"
	"strings"

	"engagement-analytics/internal/aggregators"
	"engagement-analytics/internal/models"
)

type courseStatsHandler struct {
	statsService aggregators.StatsService
}

func NewCourseStatsHandler(statsService aggregators.StatsService) AppHttpHandler {
	return &courseStatsHandler{
		statsService: statsService,
	}
}

// Handle processes GET /time-trackings/stats/course requests.
func (h *courseStatsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	courseID := strings.TrimSpace(r.URL.Query().Get("courseId"))

	stats, err := h.statsService.CourseStats(r.Context(), courseID)
	if err != nil {
		return err
	}

	writeDataResponse(w, http.StatusOK, "Course statistics retrieved successfully", stats)
	return nil
}

func (h *courseStatsHandler) EmptyData() any {
	return models.NewEmptyCourseStats()
}
