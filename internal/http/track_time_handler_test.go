package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"engagement-analytics/internal/ingestors"
	ingestormocks "engagement-analytics/internal/ingestors/mocks"
	"engagement-analytics/internal/models"
	"engagement-analytics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTrackTimeHandler_Handle_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTrackingService := ingestormocks.NewMockTrackingService(ctrl)
	handler := NewTrackTimeHandler(mockTrackingService)

	body := `{"userId":"userA","courseId":"CS1","sectionId":"S1","chapterId":"C1","durationMs":5000}`
	req := httptest.NewRequest(http.MethodPost, "/time-trackings", bytes.NewReader([]byte(body)))
	rr := httptest.NewRecorder()

	stored := &models.TimeTrackingRecord{
		ID:         "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		UserID:     "userA",
		CourseID:   "CS1",
		SectionID:  "S1",
		ChapterID:  "C1",
		DurationMs: 5000,
		TrackedAt:  time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		Date:       "2024-01-01",
	}
	mockTrackingService.EXPECT().
		Track(gomock.Any(), &ingestors.TrackRequest{
			UserID:     "userA",
			CourseID:   "CS1",
			SectionID:  "S1",
			ChapterID:  "C1",
			DurationMs: 5000,
		}).
		Return(stored, nil)

	err := handler.Handle(rr, req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{
		"message": "Time tracking created successfully",
		"data": {
			"timeTrackingId": "01ARZ3NDEKTSV4RRFFQ69G5FAV",
			"userId": "userA",
			"courseId": "CS1",
			"sectionId": "S1",
			"chapterId": "C1",
			"durationMs": 5000,
			"trackedAt": "2024-01-01T10:00:00Z",
			"date": "2024-01-01"
		}
	}`, rr.Body.String())
}

func TestTrackTimeHandler_Handle_MalformedBody(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTrackingService := ingestormocks.NewMockTrackingService(ctrl)
	handler := NewTrackTimeHandler(mockTrackingService)

	req := httptest.NewRequest(http.MethodPost, "/time-trackings", bytes.NewReader([]byte(`{not json`)))
	rr := httptest.NewRecorder()

	err := handler.Handle(rr, req)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, codeMalformedRequestBody, svcErr.Code)
}

func TestTrackTimeHandler_Handle_ServiceError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTrackingService := ingestormocks.NewMockTrackingService(ctrl)
	handler := NewTrackTimeHandler(mockTrackingService)

	req := httptest.NewRequest(http.MethodPost, "/time-trackings", bytes.NewReader([]byte(`{"userId":"userA"}`)))
	rr := httptest.NewRecorder()

	expectedErr := svcerrors.NewInvalidArgumentError("TRK_1000", "invalid request", nil)
	mockTrackingService.EXPECT().
		Track(gomock.Any(), gomock.Any()).
		Return(nil, expectedErr)

	err := handler.Handle(rr, req)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "TRK_1000", svcErr.Code)
	// Status should not be set when error occurs
	assert.Equal(t, http.StatusOK, rr.Code)
}
