package aggregators

import (
	"math"

	"engagement-analytics/internal/models"
)

// FormatChapterStats converts a millisecond-precision chapter aggregate to
// the second-precision response shape. This is the only place chapter
// durations get rounded: each total and each daily bucket rounds its own
// millisecond sum independently.
func FormatChapterStats(agg *models.ChapterAggregate) *models.ChapterStats {
	dataPoints := make([]models.DataPoint, 0, len(agg.DataPoints))
	for _, point := range agg.DataPoints {
		dataPoints = append(dataPoints, models.DataPoint{
			Date:     point.Date,
			Duration: models.RoundMsToSeconds(point.DurationMs),
		})
	}

	return &models.ChapterStats{
		TotalUsers:      agg.TotalUsers,
		AverageDuration: roundFloatMsToSeconds(agg.AverageDurationMs),
		TotalDuration:   models.RoundMsToSeconds(agg.TotalDurationMs),
		DataPoints:      dataPoints,
	}
}

// FormatCourseStats converts a millisecond-precision course aggregate to the
// second-precision response shape.
func FormatCourseStats(agg *models.CourseAggregate) *models.CourseStats {
	dailyData := make([]models.DailyData, 0, len(agg.DailyData))
	for _, day := range agg.DailyData {
		dailyData = append(dailyData, models.DailyData{
			Date:        day.Date,
			Duration:    models.RoundMsToSeconds(day.DurationMs),
			ActiveUsers: day.ActiveUsers,
		})
	}

	return &models.CourseStats{
		TotalUsers:             agg.TotalUsers,
		TotalDuration:          models.RoundMsToSeconds(agg.TotalDurationMs),
		AverageDurationPerUser: roundFloatMsToSeconds(agg.AverageDurationPerUserMs),
		DailyData:              dailyData,
	}
}

func roundFloatMsToSeconds(ms float64) int64 {
	return int64(math.Round(ms / 1000.0))
}
