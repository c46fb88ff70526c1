package progress_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/deskmotion/internal/profile"
	"github.com/2beens/deskmotion/internal/progress"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_HandleSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockprogressRepo(ctrl)
	handler := progress.NewHandler(progress.NewService(repoMock, nil))

	repoMock.EXPECT().
		LastEntries(gomock.Any(), 7).
		Return([]progress.DailyScoreEntry{
			activeEntry(0, 40, 2, 6, profile.FocusNeck),
			activeEntry(1, 60, 3, 9, profile.FocusShoulders),
		}, nil)
	repoMock.EXPECT().
		GetStreak(gomock.Any()).
		Return(progress.StreakState{
			Current:       2,
			Longest:       2,
			LastActiveDay: day0.AddDate(0, 0, 1),
		}, nil)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/progress/summary?date=2026-03-04", nil)
	require.NoError(t, err)

	handler.HandleSummary(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var summary progress.ProgressSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.True(t, summary.HasEnoughData)
	assert.Equal(t, 2, summary.ActiveDays)
	assert.Equal(t, 2, summary.StreakDays)
}

func TestHandler_HandleSummary_RepoFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockprogressRepo(ctrl)
	handler := progress.NewHandler(progress.NewService(repoMock, nil))

	repoMock.EXPECT().
		LastEntries(gomock.Any(), 7).
		Return(nil, assert.AnError)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/progress/summary?date=2026-03-04", nil)
	require.NoError(t, err)

	handler.HandleSummary(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandler_HandleForeground(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockprogressRepo(ctrl)
	handler := progress.NewHandler(progress.NewService(repoMock, nil))

	repoMock.EXPECT().
		GetStreak(gomock.Any()).
		Return(progress.StreakState{
			Current:       3,
			Longest:       3,
			LastActiveDay: day0,
		}, nil)
	repoMock.EXPECT().
		SaveStreak(gomock.Any(), gomock.Any()).
		Return(nil)

	// ten days later, the streak is stale and gets zeroed
	rec := httptest.NewRecorder()
	req, err := http.NewRequest("POST", "/progress/foreground?date=2026-03-12", nil)
	require.NoError(t, err)

	handler.HandleForeground(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var streak progress.StreakState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &streak))
	assert.Zero(t, streak.Current)
	assert.Equal(t, 3, streak.Longest)
}
