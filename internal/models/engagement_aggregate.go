package models

// ChapterAggregate is the millisecond-precision engagement rollup for one
// (courseId, chapterId) pair. All sums stay in milliseconds until the
// response formatter converts them; rounding before summing would compound
// the error across records.
type ChapterAggregate struct {
	TotalUsers        int
	TotalDurationMs   int64
	AverageDurationMs float64
	DataPoints        []DataPointMs
}

// DataPointMs is one day of summed engagement, in milliseconds.
type DataPointMs struct {
	Date       string
	DurationMs int64
}

// CourseAggregate is the millisecond-precision engagement rollup across all
// chapters of one course.
type CourseAggregate struct {
	TotalUsers               int
	TotalDurationMs          int64
	AverageDurationPerUserMs float64
	DailyData                []DailyDataMs
}

// DailyDataMs is one day of summed engagement across a course. ActiveUsers
// counts distinct users seen that day, not record count.
type DailyDataMs struct {
	Date        string
	DurationMs  int64
	ActiveUsers int
}

func NewEmptyChapterAggregate() *ChapterAggregate {
	return &ChapterAggregate{DataPoints: []DataPointMs{}}
}

func NewEmptyCourseAggregate() *CourseAggregate {
	return &CourseAggregate{DailyData: []DailyDataMs{}}
}
