package progress_test

import (
	"testing"
	"time"

	"github.com/2beens/deskmotion/internal/profile"
	"github.com/2beens/deskmotion/internal/progress"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeEntry(dayOffset, score, sessions, minutes int, areas ...profile.FocusArea) progress.DailyScoreEntry {
	return progress.DailyScoreEntry{
		Date:              day0.AddDate(0, 0, dayOffset),
		Score:             score,
		SessionsCompleted: sessions,
		MinutesCompleted:  minutes,
		FocusAreas:        areas,
	}
}

func TestSummarize_EmptyHistory(t *testing.T) {
	summary := progress.Summarize(nil, 0)

	assert.False(t, summary.HasEnoughData)
	assert.Zero(t, summary.WeeklyAverageScore)
	assert.Zero(t, summary.ActiveDays)
	assert.Equal(t, progress.TrendNeutral, summary.Trend)
	assert.Empty(t, summary.Wins)
	require.NotNil(t, summary.Wins, "wins marshal as [], never null")
}

func TestSummarize_OnlyIdleDays(t *testing.T) {
	entries := []progress.DailyScoreEntry{
		{Date: day0},
		{Date: day0.AddDate(0, 0, 1)},
	}

	summary := progress.Summarize(entries, 0)
	assert.False(t, summary.HasEnoughData)
	assert.Equal(t, progress.TrendNeutral, summary.Trend)
}

func TestSummarize_Totals(t *testing.T) {
	entries := []progress.DailyScoreEntry{
		activeEntry(0, 40, 2, 6, profile.FocusNeck),
		{Date: day0.AddDate(0, 0, 1)}, // rest day
		activeEntry(2, 60, 3, 9, profile.FocusNeck, profile.FocusShoulders),
	}

	summary := progress.Summarize(entries, 2)

	assert.True(t, summary.HasEnoughData)
	assert.Equal(t, 2, summary.ActiveDays)
	assert.Equal(t, 5, summary.TotalSessions)
	assert.Equal(t, 15, summary.TotalMinutes)
	assert.Equal(t, 2, summary.StreakDays)

	// the average spans ALL days, rest days drag it down
	assert.Equal(t, (40+0+60)/3, summary.WeeklyAverageScore)
}

func TestSummarize_TrendImproving(t *testing.T) {
	entries := []progress.DailyScoreEntry{
		activeEntry(0, 30, 1, 3),
		activeEntry(1, 35, 1, 3),
		activeEntry(2, 60, 2, 6),
		activeEntry(3, 70, 2, 6),
	}

	summary := progress.Summarize(entries, 4)
	assert.Equal(t, progress.TrendImproving, summary.Trend)
}

func TestSummarize_TrendDeclining(t *testing.T) {
	entries := []progress.DailyScoreEntry{
		activeEntry(0, 70, 2, 6),
		activeEntry(1, 65, 2, 6),
		activeEntry(2, 35, 1, 3),
		activeEntry(3, 30, 1, 3),
	}

	summary := progress.Summarize(entries, 4)
	assert.Equal(t, progress.TrendDeclining, summary.Trend)
}

func TestSummarize_TrendDeadband(t *testing.T) {
	// halves differ by exactly the deadband, still neutral
	entries := []progress.DailyScoreEntry{
		activeEntry(0, 50, 1, 3),
		activeEntry(1, 55, 1, 3),
	}

	summary := progress.Summarize(entries, 2)
	assert.Equal(t, progress.TrendNeutral, summary.Trend)
}

func TestSummarize_TrendSingleActiveDay(t *testing.T) {
	summary := progress.Summarize([]progress.DailyScoreEntry{
		activeEntry(0, 80, 3, 9),
	}, 1)
	assert.Equal(t, progress.TrendNeutral, summary.Trend)
}

func TestSummarize_Wins(t *testing.T) {
	// a strong week earns every badge at once
	entries := []progress.DailyScoreEntry{
		activeEntry(0, 60, 2, 6, profile.FocusNeck),
		activeEntry(1, 65, 2, 6, profile.FocusShoulders),
		activeEntry(2, 70, 2, 6, profile.FocusUpperBack),
		activeEntry(3, 75, 2, 6, profile.FocusLowerBack),
		activeEntry(4, 80, 2, 6, profile.FocusNeck),
		activeEntry(5, 85, 2, 6, profile.FocusShoulders),
		activeEntry(6, 90, 2, 6, profile.FocusNeck),
	}

	summary := progress.Summarize(entries, 7)
	require.True(t, summary.HasEnoughData)

	badges := make([]string, 0, len(summary.Wins))
	for _, win := range summary.Wins {
		assert.NotEmpty(t, win.Title)
		badges = append(badges, win.Badge)
	}
	assert.Equal(t, []string{"streak", "consistency", "score", "trend", "coverage"}, badges)
}

func TestSummarize_NoWinsForModestWeek(t *testing.T) {
	entries := []progress.DailyScoreEntry{
		activeEntry(0, 21, 1, 3, profile.FocusNeck),
		activeEntry(1, 24, 1, 3, profile.FocusNeck),
	}

	summary := progress.Summarize(entries, 2)
	require.True(t, summary.HasEnoughData)
	assert.Empty(t, summary.Wins)
}

func TestSummarize_EntryActive(t *testing.T) {
	assert.False(t, progress.DailyScoreEntry{Date: time.Now()}.Active())
	assert.True(t, progress.DailyScoreEntry{SessionsCompleted: 1}.Active())
}
