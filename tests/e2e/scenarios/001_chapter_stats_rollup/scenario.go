package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	userCount    = 8
	chapterCount = 4
	// durationMsFor(userIdx) = 1500 * (userIdx + 1), one event per user per
	// chapter. Per chapter: totalDuration = 1500 * 36 = 54000ms = 54s,
	// averageDuration = 54000 / 8 = 6750ms, rounded to 7s.
	perChapterTotalSeconds   = 54
	perChapterAverageSeconds = 7
	courseTotalSeconds       = 216 // 4 chapters * 54s
	courseAveragePerUser     = 27  // 216000ms / 8 users = 27000ms
)

// ### End - fixed configs

type trackRequest struct {
	UserID     string `json:"userId"`
	CourseID   string `json:"courseId"`
	SectionID  string `json:"sectionId"`
	ChapterID  string `json:"chapterId"`
	DurationMs int64  `json:"durationMs"`
}

type dataPoint struct {
	Date     string `json:"date"`
	Duration int64  `json:"duration"`
}

type chapterStats struct {
	TotalUsers      int         `json:"totalUsers"`
	AverageDuration int64       `json:"averageDuration"`
	TotalDuration   int64       `json:"totalDuration"`
	DataPoints      []dataPoint `json:"dataPoints"`
}

type dailyData struct {
	Date        string `json:"date"`
	Duration    int64  `json:"duration"`
	ActiveUsers int    `json:"activeUsers"`
}

type courseStats struct {
	TotalUsers             int         `json:"totalUsers"`
	TotalDuration          int64       `json:"totalDuration"`
	AverageDurationPerUser int64       `json:"averageDurationPerUser"`
	DailyData              []dailyData `json:"dailyData"`
}

// main runs the e2e scenario: 001_chapter_stats_rollup
//
// This scenario tests the end-to-end flow of time tracking ingestion and
// chapter/course statistics rollup. It seeds one event per user per chapter
// and verifies that the chapter, course, and batch statistics endpoints
// return the expected second-precision rollups.
//
// What it tests:
//   - Event creation via POST /time-trackings
//   - Chapter stats via GET /time-trackings/stats/chapter
//   - Course stats via GET /time-trackings/stats/course
//   - Batch stats via POST /time-trackings/stats/batch, including request
//     ordering and zeroed entries for chapters with no data
//
// Expected results:
//   - Every seeded event is accepted with 201
//   - Each chapter reports 8 users, 54s total, 7s average
//   - The course reports 8 users, 216s total, 27s average per user
//   - The batch response preserves the requested chapter order and returns
//     zeroed stats for an unknown chapter id
//
// The scenario uses a unique course id per run, so it can be re-run against a
// populated store without interference.
func main() {
	baseURL := "http://localhost:8080" // Base URL of the engagement analytics API server
	courseID := fmt.Sprintf("e2e-course-%d", time.Now().UnixNano())

	fmt.Println("Starting e2e scenario: 001_chapter_stats_rollup")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("COURSE_ID: %s\n", courseID)
	fmt.Printf("USER_COUNT: %d\n", userCount)
	fmt.Printf("CHAPTER_COUNT: %d\n", chapterCount)
	fmt.Println()

	client := &http.Client{Timeout: 10 * time.Second}

	// Seed events
	fmt.Printf("Seeding %d events...\n", userCount*chapterCount)
	for chapterIdx := 0; chapterIdx < chapterCount; chapterIdx++ {
		for userIdx := 0; userIdx < userCount; userIdx++ {
			req := trackRequest{
				UserID:     fmt.Sprintf("u%02d", userIdx+1),
				CourseID:   courseID,
				SectionID:  "s01",
				ChapterID:  fmt.Sprintf("c%02d", chapterIdx+1),
				DurationMs: int64(1500 * (userIdx + 1)),
			}
			postJSON(client, baseURL+"/time-trackings", req, http.StatusCreated)
		}
	}
	fmt.Println("All events accepted")
	fmt.Println()

	// Verify each chapter rollup
	for chapterIdx := 0; chapterIdx < chapterCount; chapterIdx++ {
		chapterID := fmt.Sprintf("c%02d", chapterIdx+1)
		var stats chapterStats
		getData(client, fmt.Sprintf("%s/time-trackings/stats/chapter?courseId=%s&chapterId=%s", baseURL, courseID, chapterID), &stats)

		expectEqual(fmt.Sprintf("%s totalUsers", chapterID), userCount, stats.TotalUsers)
		expectEqual(fmt.Sprintf("%s totalDuration", chapterID), int64(perChapterTotalSeconds), stats.TotalDuration)
		expectEqual(fmt.Sprintf("%s averageDuration", chapterID), int64(perChapterAverageSeconds), stats.AverageDuration)
		expectEqual(fmt.Sprintf("%s dataPoints length", chapterID), 1, len(stats.DataPoints))
		expectEqual(fmt.Sprintf("%s dataPoints[0].duration", chapterID), int64(perChapterTotalSeconds), stats.DataPoints[0].Duration)
	}
	fmt.Println("Chapter stats verified")

	// Verify the course rollup
	var course courseStats
	getData(client, fmt.Sprintf("%s/time-trackings/stats/course?courseId=%s", baseURL, courseID), &course)
	expectEqual("course totalUsers", userCount, course.TotalUsers)
	expectEqual("course totalDuration", int64(courseTotalSeconds), course.TotalDuration)
	expectEqual("course averageDurationPerUser", int64(courseAveragePerUser), course.AverageDurationPerUser)
	expectEqual("course dailyData length", 1, len(course.DailyData))
	expectEqual("course dailyData[0].activeUsers", userCount, course.DailyData[0].ActiveUsers)
	fmt.Println("Course stats verified")

	// Verify batch ordering and the zeroed entry for an unknown chapter
	batchReq := map[string]any{
		"courseId":   courseID,
		"chapterIds": []string{"c03", "c01", "c-missing", "c02"},
	}
	body := postJSON(client, baseURL+"/time-trackings/stats/batch", batchReq, http.StatusOK)

	var batchEnvelope struct {
		Data json.RawMessage `json:"data"`
	}
	mustUnmarshal(body, &batchEnvelope)

	var batch map[string]chapterStats
	mustUnmarshal(batchEnvelope.Data, &batch)
	expectEqual("batch entry count", 4, len(batch))
	expectEqual("batch c01 totalDuration", int64(perChapterTotalSeconds), batch["c01"].TotalDuration)
	expectEqual("batch c-missing totalUsers", 0, batch["c-missing"].TotalUsers)
	expectEqual("batch c-missing dataPoints length", 0, len(batch["c-missing"].DataPoints))

	// Key order in the raw JSON must follow the request order.
	expectKeyOrder(batchEnvelope.Data, []string{"c03", "c01", "c-missing", "c02"})
	fmt.Println("Batch stats verified")

	fmt.Println()
	fmt.Println("Scenario PASSED")
}

func postJSON(client *http.Client, url string, payload any, wantStatus int) []byte {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		fail("marshal request: %v", err)
	}

	resp, err := client.Post(url, "application/json", bytes.NewReader(jsonData))
	if err != nil {
		fail("POST %s: %v", url, err)
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		fail("read response body: %v", err)
	}
	if resp.StatusCode != wantStatus {
		fail("POST %s: got status %d, want %d (body: %s)", url, resp.StatusCode, wantStatus, buf.String())
	}
	return buf.Bytes()
}

func getData(client *http.Client, url string, out any) {
	resp, err := client.Get(url)
	if err != nil {
		fail("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fail("GET %s: got status %d, want 200", url, resp.StatusCode)
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		fail("decode envelope from %s: %v", url, err)
	}
	mustUnmarshal(envelope.Data, out)
}

func mustUnmarshal(data []byte, out any) {
	if err := json.Unmarshal(data, out); err != nil {
		fail("unmarshal %s: %v", string(data), err)
	}
}

func expectEqual[T comparable](name string, want, got T) {
	if want != got {
		fail("%s: got %v, want %v", name, got, want)
	}
}

func expectKeyOrder(rawObject []byte, keys []string) {
	lastIndex := -1
	for _, key := range keys {
		idx := bytes.Index(rawObject, []byte(`"`+key+`"`))
		if idx < 0 {
			fail("key %q missing from batch response", key)
		}
		if idx < lastIndex {
			fail("key %q out of order in batch response", key)
		}
		lastIndex = idx
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
	os.Exit(1)
}
