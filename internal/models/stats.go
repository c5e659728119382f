package models

import (
	"bytes"
	"encoding/json"
	"math"
)

// RoundMsToSeconds converts a millisecond duration to whole seconds, rounding
// half away from zero. Conversion happens once at the response boundary;
// internal aggregation stays in milliseconds.
func RoundMsToSeconds(ms int64) int64 {
	return int64(math.Round(float64(ms) / 1000.0))
}

// ChapterStats is the second-precision chapter rollup exposed to callers.
// Durations are whole seconds, rounded once at the response boundary.
//
// Example JSON:
//
//	{
//	  "totalUsers": 2,
//	  "averageDuration": 9,
//	  "totalDuration": 18,
//	  "dataPoints": [
//	    {"date": "2024-01-01", "duration": 15},
//	    {"date": "2024-01-02", "duration": 3}
//	  ]
//	}
type ChapterStats struct {
	TotalUsers      int         `json:"totalUsers"`
	AverageDuration int64       `json:"averageDuration"`
	TotalDuration   int64       `json:"totalDuration"`
	DataPoints      []DataPoint `json:"dataPoints"`
}

// DataPoint is one day of summed engagement, in seconds.
type DataPoint struct {
	Date     string `json:"date"`
	Duration int64  `json:"duration"`
}

// CourseStats is the second-precision course rollup exposed to callers.
type CourseStats struct {
	TotalUsers             int         `json:"totalUsers"`
	TotalDuration          int64       `json:"totalDuration"`
	AverageDurationPerUser int64       `json:"averageDurationPerUser"`
	DailyData              []DailyData `json:"dailyData"`
}

// DailyData is one day of summed engagement across a course, in seconds.
type DailyData struct {
	Date        string `json:"date"`
	Duration    int64  `json:"duration"`
	ActiveUsers int    `json:"activeUsers"`
}

// NewEmptyChapterStats returns the zero-valued chapter shape. Slices are
// non-nil so the JSON body always carries [] rather than null.
func NewEmptyChapterStats() *ChapterStats {
	return &ChapterStats{DataPoints: []DataPoint{}}
}

// NewEmptyCourseStats returns the zero-valued course shape.
func NewEmptyCourseStats() *CourseStats {
	return &CourseStats{DailyData: []DailyData{}}
}

// BatchChapterStats maps chapterId -> ChapterStats while preserving the order
// in which chapters were requested. encoding/json serializes Go maps in
// sorted-key order, so a plain map would lose the request ordering the batch
// contract guarantees; MarshalJSON emits entries in insertion order instead.
type BatchChapterStats struct {
	chapterIDs []string
	stats      map[string]*ChapterStats
}

func NewBatchChapterStats() *BatchChapterStats {
	return &BatchChapterStats{stats: make(map[string]*ChapterStats)}
}

// Set stores stats for chapterID, appending it to the ordering on first
// insert. A repeated chapterID keeps its original position.
func (b *BatchChapterStats) Set(chapterID string, stats *ChapterStats) {
	if _, exists := b.stats[chapterID]; !exists {
		b.chapterIDs = append(b.chapterIDs, chapterID)
	}
	b.stats[chapterID] = stats
}

// Get returns the stats stored for chapterID.
func (b *BatchChapterStats) Get(chapterID string) (*ChapterStats, bool) {
	stats, ok := b.stats[chapterID]
	return stats, ok
}

// ChapterIDs returns the chapter ids in insertion order.
func (b *BatchChapterStats) ChapterIDs() []string {
	ids := make([]string, len(b.chapterIDs))
	copy(ids, b.chapterIDs)
	return ids
}

// Len returns the number of entries.
func (b *BatchChapterStats) Len() int {
	return len(b.chapterIDs)
}

// MarshalJSON implements json.Marshaler, writing a JSON object whose keys
// appear in insertion order.
func (b *BatchChapterStats) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, chapterID := range b.chapterIDs {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(chapterID)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(b.stats[chapterID])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
