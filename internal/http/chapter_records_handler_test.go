package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	ingestormocks "engagement-analytics/internal/ingestors/mocks"
	"engagement-analytics/internal/models"
	"engagement-analytics/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func jsonUnmarshalBody(rr *httptest.ResponseRecorder, v any) error {
	return json.Unmarshal(rr.Body.Bytes(), v)
}

// withURLParams attaches chi URL params to the request the way the router
// would when dispatching.
func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestChapterRecordsHandler_Handle_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTrackingService := ingestormocks.NewMockTrackingService(ctrl)
	handler := NewChapterRecordsHandler(mockTrackingService)

	req := httptest.NewRequest(http.MethodGet, "/time-trackings/chapter/C1", nil)
	req = withURLParams(req, map[string]string{"chapterId": "C1"})
	rr := httptest.NewRecorder()

	records := []*models.TimeTrackingRecord{
		{ID: "r1", UserID: "userA", CourseID: "CS1", SectionID: "S1", ChapterID: "C1", DurationMs: 5000, Date: "2024-01-01"},
	}
	mockTrackingService.EXPECT().
		ChapterRecords(gomock.Any(), "C1").
		Return(records, nil)

	err := handler.Handle(rr, req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)

	var response DataResponse
	require.NoError(t, jsonUnmarshalBody(rr, &response))
	assert.Equal(t, "Time tracking data retrieved successfully", response.Message)
	assert.Len(t, response.Data, 1)
}

func TestChapterRecordsHandler_Handle_EmptyResultIsArray(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTrackingService := ingestormocks.NewMockTrackingService(ctrl)
	handler := NewChapterRecordsHandler(mockTrackingService)

	req := httptest.NewRequest(http.MethodGet, "/time-trackings/chapter/C-none", nil)
	req = withURLParams(req, map[string]string{"chapterId": "C-none"})
	rr := httptest.NewRecorder()

	mockTrackingService.EXPECT().
		ChapterRecords(gomock.Any(), "C-none").
		Return(nil, nil)

	err := handler.Handle(rr, req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message": "Time tracking data retrieved successfully", "data": []}`, rr.Body.String())
}

func TestChapterRecordsHandler_Handle_ServiceError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTrackingService := ingestormocks.NewMockTrackingService(ctrl)
	handler := NewChapterRecordsHandler(mockTrackingService)

	req := httptest.NewRequest(http.MethodGet, "/time-trackings/chapter/C1", nil)
	req = withURLParams(req, map[string]string{"chapterId": "C1"})
	rr := httptest.NewRecorder()

	expectedErr := svcerrors.NewInternalError("TRK_9001", assert.AnError)
	mockTrackingService.EXPECT().
		ChapterRecords(gomock.Any(), "C1").
		Return(nil, expectedErr)

	err := handler.Handle(rr, req)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "TRK_9001", svcErr.Code)
}
