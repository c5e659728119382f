package aggregators

import (
	"sort"

	"engagement-analytics/internal/models"
)

// EngagementRolluper computes millisecond-precision aggregates from raw
// records. Rollups are pure functions of their input: the same records always
// produce the same aggregate, and nothing is cached between calls.
//
//go:generate mockgen -source=engagement_rolluper.go -destination=./mocks/engagement_rolluper_mock.go -package=mocks
type EngagementRolluper interface {
	// RollupChapter aggregates records belonging to one (courseId, chapterId)
	// pair: distinct users, per-user duration sums, and a per-day time series
	// sorted ascending by date.
	RollupChapter(records []*models.TimeTrackingRecord) *models.ChapterAggregate
	// RollupCourse aggregates records across all chapters of one course,
	// counting distinct active users per day.
	RollupCourse(records []*models.TimeTrackingRecord) *models.CourseAggregate
}

type engagementRolluper struct{}

func NewEngagementRolluper() EngagementRolluper {
	return &engagementRolluper{}
}

func (a *engagementRolluper) RollupChapter(records []*models.TimeTrackingRecord) *models.ChapterAggregate {
	if len(records) == 0 {
		return models.NewEmptyChapterAggregate()
	}

	durationByUser := make(map[string]int64)
	durationByDate := make(map[string]int64)
	for _, record := range records {
		durationByUser[record.UserID] += record.DurationMs
		durationByDate[record.Date] += record.DurationMs
	}

	var totalDurationMs int64
	for _, durationMs := range durationByUser {
		totalDurationMs += durationMs
	}

	totalUsers := len(durationByUser)
	averageDurationMs := 0.0
	if totalUsers > 0 {
		averageDurationMs = float64(totalDurationMs) / float64(totalUsers)
	}

	return &models.ChapterAggregate{
		TotalUsers:        totalUsers,
		TotalDurationMs:   totalDurationMs,
		AverageDurationMs: averageDurationMs,
		DataPoints:        sortedDataPoints(durationByDate),
	}
}

func (a *engagementRolluper) RollupCourse(records []*models.TimeTrackingRecord) *models.CourseAggregate {
	if len(records) == 0 {
		return models.NewEmptyCourseAggregate()
	}

	type dayCounts struct {
		durationMs int64
		users      map[string]struct{}
	}

	users := make(map[string]struct{})
	byDate := make(map[string]*dayCounts)
	var totalDurationMs int64

	for _, record := range records {
		users[record.UserID] = struct{}{}
		totalDurationMs += record.DurationMs

		day, exists := byDate[record.Date]
		if !exists {
			day = &dayCounts{users: make(map[string]struct{})}
			byDate[record.Date] = day
		}
		day.durationMs += record.DurationMs
		// A user with several sessions the same day counts once.
		day.users[record.UserID] = struct{}{}
	}

	totalUsers := len(users)
	averagePerUserMs := 0.0
	if totalUsers > 0 {
		averagePerUserMs = float64(totalDurationMs) / float64(totalUsers)
	}

	// ISO dates sort chronologically as plain strings.
	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	dailyData := make([]models.DailyDataMs, 0, len(dates))
	for _, date := range dates {
		day := byDate[date]
		dailyData = append(dailyData, models.DailyDataMs{
			Date:        date,
			DurationMs:  day.durationMs,
			ActiveUsers: len(day.users),
		})
	}

	return &models.CourseAggregate{
		TotalUsers:               totalUsers,
		TotalDurationMs:          totalDurationMs,
		AverageDurationPerUserMs: averagePerUserMs,
		DailyData:                dailyData,
	}
}

func sortedDataPoints(durationByDate map[string]int64) []models.DataPointMs {
	dates := make([]string, 0, len(durationByDate))
	for date := range durationByDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	dataPoints := make([]models.DataPointMs, 0, len(dates))
	for _, date := range dates {
		dataPoints = append(dataPoints, models.DataPointMs{
			Date:       date,
			DurationMs: durationByDate[date],
		})
	}
	return dataPoints
}
