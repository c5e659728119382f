package http

import (
	"net/http"

	"engagement-analytics/internal/ingestors"
	"engagement-analytics/internal/models"

	"github.com/go-chi/chi/v5"
)

type chapterRecordsHandler struct {
	trackingService ingestors.TrackingService
}

func NewChapterRecordsHandler(trackingService ingestors.TrackingService) AppHttpHandler {
	return &chapterRecordsHandler{
		trackingService: trackingService,
	}
}

// Handle processes GET /time-trackings/chapter/{chapterId} requests.
func (h *chapterRecordsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	chapterID := chi.URLParam(r, "chapterId")

	records, err := h.trackingService.ChapterRecords(r.Context(), chapterID)
	if err != nil {
		return err
	}
	if records == nil {
		records = []*models.TimeTrackingRecord{}
	}

	writeDataResponse(w, http.StatusOK, "Time tracking data retrieved successfully", records)
	return nil
}

func (h *chapterRecordsHandler) EmptyData() any {
	return []*models.TimeTrackingRecord{}
}
