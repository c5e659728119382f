package http

import (
	"encoding/json"
	"net/http"

	"engagement-analytics/internal/ingestors"
)

type trackTimeHandler struct {
	trackingService ingestors.TrackingService
}

func NewTrackTimeHandler(trackingService ingestors.TrackingService) AppHttpHandler {
	return &trackTimeHandler{
		trackingService: trackingService,
	}
}

// Handle processes POST /time-trackings requests.
func (h *trackTimeHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	var req ingestors.TrackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return errMalformedRequestBody(err)
	}

	record, err := h.trackingService.Track(r.Context(), &req)
	if err != nil {
		return err
	}

	writeDataResponse(w, http.StatusCreated, "Time tracking created successfully", record)
	return nil
}

func (h *trackTimeHandler) EmptyData() any {
	return struct{}{}
}
