package http

import (
	"net/http"

	"engagement-analytics/internal/aggregators"
	"engagement-analytics/internal/ingestors"
	"engagement-analytics/internal/shared/loggers"
	"engagement-analytics/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(trackingService ingestors.TrackingService, statsService aggregators.StatsService, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	trackTimeHandler := NewTrackTimeHandler(trackingService)
	chapterRecordsHandler := NewChapterRecordsHandler(trackingService)
	userCourseRecordsHandler := NewUserCourseRecordsHandler(trackingService)
	chapterStatsHandler := NewChapterStatsHandler(statsService)
	courseStatsHandler := NewCourseStatsHandler(statsService)
	batchChapterStatsHandler := NewBatchChapterStatsHandler(statsService)

	// Routes
	router.Route("/time-trackings", func(r chi.Router) {
		r.Post("/", errorHandlingAdapter(trackTimeHandler))
		r.Get("/chapter/{chapterId}", errorHandlingAdapter(chapterRecordsHandler))
		r.Get("/user/{userId}/course/{courseId}", errorHandlingAdapter(userCourseRecordsHandler))
		r.Get("/stats/chapter", errorHandlingAdapter(chapterStatsHandler))
		r.Get("/stats/course", errorHandlingAdapter(courseStatsHandler))
		r.Post("/stats/batch", errorHandlingAdapter(batchChapterStatsHandler))
	})
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
