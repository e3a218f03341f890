package filter

import (
	"math"

	"github.com/cloudprep/cloudprep-client/internal/model"
)

// PassThreshold is the display-only pass mark in percent. It is a
// presentation heuristic, not an intrinsic exam property: the session
// engine never classifies pass/fail.
const PassThreshold = 70

// Passed applies the display heuristic to a percentage score.
func Passed(percent int) bool {
	return percent >= PassThreshold
}

// RoundPercent rounds a server-supplied ratio score to a whole percent.
func RoundPercent(score float64) int {
	return int(math.Round(score))
}

// StatsSummary is the display form of the server's aggregate statistics.
type StatsSummary struct {
	ExamsTaken     int
	AveragePercent int
	AveragePassed  bool
	CorrectAnswers int
	TotalQuestions int
	PassedExams    int
	FailedExams    int
}

// Summarize formats server aggregates for display. Nothing is recomputed
// from raw history; only rounding and the pass heuristic are applied.
func Summarize(s model.UserStats) StatsSummary {
	avg := RoundPercent(s.AverageScore)
	return StatsSummary{
		ExamsTaken:     s.TotalExamsTaken,
		AveragePercent: avg,
		AveragePassed:  Passed(avg),
		CorrectAnswers: s.TotalCorrectAnswers,
		TotalQuestions: s.TotalQuestions,
		PassedExams:    s.PassedExams,
		FailedExams:    s.FailedExams,
	}
}
