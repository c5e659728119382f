package http

import (
	"net/http"

	"engagement-analytics/internal/ingestors"
	"engagement-analytics/internal/models"

	"github.com/go-chi/chi/v5"
)

type userCourseRecordsHandler struct {
	trackingService ingestors.TrackingService
}

func NewUserCourseRecordsHandler(trackingService ingestors.TrackingService) AppHttpHandler {
	return &userCourseRecordsHandler{
		trackingService: trackingService,
	}
}

// Handle processes GET /time-trackings/user/{userId}/course/{courseId} requests.
func (h *userCourseRecordsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	userID := chi.URLParam(r, "userId")
	courseID := chi.URLParam(r, "courseId")

	records, err := h.trackingService.UserCourseRecords(r.Context(), userID, courseID)
	if err != nil {
		return err
	}
	if records == nil {
		records = []*models.UserCourseRecord{}
	}

	writeDataResponse(w, http.StatusOK, "Time tracking data retrieved successfully", records)
	return nil
}

func (h *userCourseRecordsHandler) EmptyData() any {
	return []*models.UserCourseRecord{}
}
