package progress_test

import (
	"context"
	"testing"
	"time"

	"github.com/2beens/deskmotion/internal/profile"
	"github.com/2beens/deskmotion/internal/progress"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// milestoneSink collects analytics events for assertions.
type milestoneSink struct {
	fired []int
}

func (s *milestoneSink) StreakMilestone(days int) {
	s.fired = append(s.fired, days)
}

func TestService_RecordCompletedSession_FirstEver(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockprogressRepo(ctrl)
	sink := &milestoneSink{}
	service := progress.NewService(repoMock, sink)

	repoMock.EXPECT().
		GetStreak(gomock.Any()).
		Return(progress.StreakState{}, nil)
	repoMock.EXPECT().
		SaveStreak(gomock.Any(), progress.StreakState{
			Current:       1,
			Longest:       1,
			LastActiveDay: day0,
		}).
		Return(nil)
	repoMock.EXPECT().
		GetEntry(gomock.Any(), day0).
		Return(nil, progress.ErrEntryNotFound)
	repoMock.EXPECT().
		UpsertEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, entry progress.DailyScoreEntry) error {
			assert.Equal(t, day0, entry.Date)
			assert.Equal(t, 1, entry.SessionsCompleted)
			assert.Equal(t, 4, entry.MinutesCompleted)
			assert.Equal(t, progress.Score(1, 4, 1), entry.Score)
			assert.Equal(t, []profile.FocusArea{profile.FocusNeck}, entry.FocusAreas)
			return nil
		})

	// time of day is stripped before anything else happens
	entry, err := service.RecordCompletedSession(
		context.Background(),
		day0.Add(9*time.Hour),
		4,
		[]profile.FocusArea{profile.FocusNeck},
	)
	require.NoError(t, err)
	assert.Equal(t, day0, entry.Date)
	assert.Empty(t, sink.fired)
}

func TestService_RecordCompletedSession_MergesSameDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockprogressRepo(ctrl)
	service := progress.NewService(repoMock, &milestoneSink{})

	existingStreak := progress.StreakState{
		Current:       1,
		Longest:       1,
		LastActiveDay: day0,
	}
	existingEntry := progress.DailyScoreEntry{
		Date:              day0,
		Score:             progress.Score(1, 4, 1),
		SessionsCompleted: 1,
		MinutesCompleted:  4,
		FocusAreas:        []profile.FocusArea{profile.FocusNeck},
	}

	repoMock.EXPECT().
		GetStreak(gomock.Any()).
		Return(existingStreak, nil)
	repoMock.EXPECT().
		SaveStreak(gomock.Any(), existingStreak).
		Return(nil)
	repoMock.EXPECT().
		GetEntry(gomock.Any(), day0).
		Return(&existingEntry, nil)
	repoMock.EXPECT().
		UpsertEntry(gomock.Any(), gomock.Any()).
		Return(nil)

	entry, err := service.RecordCompletedSession(
		context.Background(),
		day0,
		3,
		[]profile.FocusArea{profile.FocusNeck, profile.FocusShoulders},
	)
	require.NoError(t, err)

	assert.Equal(t, 2, entry.SessionsCompleted)
	assert.Equal(t, 7, entry.MinutesCompleted)
	assert.Equal(t, progress.Score(2, 7, 1), entry.Score)
	assert.Equal(
		t,
		[]profile.FocusArea{profile.FocusNeck, profile.FocusShoulders},
		entry.FocusAreas,
	)
}

func TestService_RecordCompletedSession_MilestoneReachesAnalytics(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockprogressRepo(ctrl)
	sink := &milestoneSink{}
	service := progress.NewService(repoMock, sink)

	repoMock.EXPECT().
		GetStreak(gomock.Any()).
		Return(progress.StreakState{
			Current:       2,
			Longest:       2,
			LastActiveDay: day0.AddDate(0, 0, -1),
		}, nil)
	repoMock.EXPECT().
		SaveStreak(gomock.Any(), gomock.Any()).
		Return(nil)
	repoMock.EXPECT().
		GetEntry(gomock.Any(), day0).
		Return(nil, progress.ErrEntryNotFound)
	repoMock.EXPECT().
		UpsertEntry(gomock.Any(), gomock.Any()).
		Return(nil)

	_, err := service.RecordCompletedSession(context.Background(), day0, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, sink.fired)
}

func TestService_RecordCompletedSession_StreakRepoFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockprogressRepo(ctrl)
	service := progress.NewService(repoMock, &milestoneSink{})

	repoMock.EXPECT().
		GetStreak(gomock.Any()).
		Return(progress.StreakState{}, assert.AnError)

	_, err := service.RecordCompletedSession(context.Background(), day0, 3, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockprogressRepo(ctrl)
	service := progress.NewService(repoMock, &milestoneSink{})

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
			Longest:       5,
			LastActiveDay: day0.AddDate(0, 0, 1),
		}, nil)

	summary, err := service.Summary(context.Background(), day0.AddDate(0, 0, 2))
	require.NoError(t, err)

	assert.True(t, summary.HasEnoughData)
	assert.Equal(t, 2, summary.ActiveDays)
	assert.Equal(t, 5, summary.TotalSessions)
	assert.Equal(t, 2, summary.StreakDays)
}

func TestService_Summary_StaleStreakReadsAsZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockprogressRepo(ctrl)
	service := progress.NewService(repoMock, &milestoneSink{})

	// streak went stale; summary shows 0 without persisting anything
	repoMock.EXPECT().
		LastEntries(gomock.Any(), 7).
		Return([]progress.DailyScoreEntry{
			activeEntry(0, 40, 2, 6, profile.FocusNeck),
		}, nil)
	repoMock.EXPECT().
		GetStreak(gomock.Any()).
		Return(progress.StreakState{
			Current:       4,
			Longest:       4,
			LastActiveDay: day0,
		}, nil)

	summary, err := service.Summary(context.Background(), day0.AddDate(0, 0, 5))
	require.NoError(t, err)
	assert.Zero(t, summary.StreakDays)
}

func TestService_Foreground_ResetIsPersisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockprogressRepo(ctrl)
	service := progress.NewService(repoMock, &milestoneSink{})

	stale := progress.StreakState{
		Current:       4,
		Longest:       9,
		LastActiveDay: day0,
	}

	repoMock.EXPECT().
		GetStreak(gomock.Any()).
		Return(stale, nil)
	repoMock.EXPECT().
		SaveStreak(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, state progress.StreakState) error {
			assert.Zero(t, state.Current)
			assert.Equal(t, 9, state.Longest)
			return nil
		})

	checked, err := service.Foreground(context.Background(), day0.AddDate(0, 0, 3))
	require.NoError(t, err)
	assert.Zero(t, checked.Current)
}

func TestService_Foreground_HealthyStreakUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockprogressRepo(ctrl)
	service := progress.NewService(repoMock, &milestoneSink{})

	healthy := progress.StreakState{
		Current:       4,
		Longest:       9,
		LastActiveDay: day0,
	}

	// no save expected
	repoMock.EXPECT().
		GetStreak(gomock.Any()).
		Return(healthy, nil)

	checked, err := service.Foreground(context.Background(), day0.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, healthy, checked)
}
