package workouts_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/gymrest/internal/resttimer"
	"github.com/2beens/gymrest/internal/workouts"
)

func day(yyyy int, mm time.Month, dd int) time.Time {
	return time.Date(yyyy, mm, dd, 0, 0, 0, 0, time.UTC)
}

func restAt(t time.Time, actualSeconds int, completed bool) workouts.RestEntry {
	return workouts.RestEntry{
		SessionHash:    "abcd1234",
		PlannedSeconds: 90,
		ActualSeconds:  actualSeconds,
		Completed:      completed,
		CreatedAt:      t,
	}
}

func TestAnalyzer_AvgRestDuration(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockrestsRepo(ctrl)
	analyzer := workouts.NewAnalyzer(repoMock)

	day1 := day(2025, 3, 14)
	day2 := day(2025, 3, 15)
	repoMock.EXPECT().
		ListAll(gomock.Any(), gomock.Any()).
		Return([]workouts.RestEntry{
			restAt(day1.Add(10*time.Hour), 60, true),
			restAt(day1.Add(10*time.Hour+5*time.Minute), 120, true),
			restAt(day2.Add(18*time.Hour), 30, false),
		}, nil)

	resp, err := analyzer.AvgRestDuration(context.Background(), workouts.RestParams{})
	require.NoError(t, err)

	// overall: (60+120+30)/3 = 70s
	assert.Equal(t, 70*time.Second, resp.Duration)
	assert.Equal(t, 3, resp.Rests)

	// per day: day1 (60+120)/2 = 90s, day2 30s
	require.Len(t, resp.DurationPerDay, 2)
	assert.Equal(t, 90*time.Second, resp.DurationPerDay[day1])
	assert.Equal(t, 30*time.Second, resp.DurationPerDay[day2])
}

func TestAnalyzer_AvgRestDuration_NoEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockrestsRepo(ctrl)
	analyzer := workouts.NewAnalyzer(repoMock)

	repoMock.EXPECT().
		ListAll(gomock.Any(), gomock.Any()).
		Return([]workouts.RestEntry{}, nil)

	resp, err := analyzer.AvgRestDuration(context.Background(), workouts.RestParams{})
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), resp.Duration)
	assert.Equal(t, 0, resp.Rests)
	assert.Empty(t, resp.DurationPerDay)
}

func TestRestsHandler_HandleAvgRestDuration(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockrestsRepo(ctrl)
	router := mux.NewRouter()
	workouts.NewRestsHandler(repoMock).SetupRoutes(router)

	day1 := day(2025, 3, 14)
	repoMock.EXPECT().
		ListAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, params workouts.RestParams) ([]workouts.RestEntry, error) {
			assert.True(t, params.OnlyCompleted)
			return []workouts.RestEntry{
				restAt(day1.Add(9*time.Hour), 90, true),
			}, nil
		})

	req, err := http.NewRequest("GET", "/workouts/rests/avg?only_completed=true", nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp workouts.AvgRestDurationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 90*time.Second, resp.Duration)
	assert.Equal(t, 1, resp.Rests)
}

func TestRestsHandler_HandleAvgRestDuration_BadTimeRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockrestsRepo(ctrl)
	router := mux.NewRouter()
	workouts.NewRestsHandler(repoMock).SetupRoutes(router)

	req, err := http.NewRequest("GET", "/workouts/rests/avg?from=yesterday-ish", nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRestsHandler_RecordRestResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockrestsRepo(ctrl)
	handler := workouts.NewRestsHandler(repoMock)

	zeroCrossing := time.Date(2025, 3, 14, 10, 0, 30, 0, time.UTC)
	repoMock.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, entry workouts.RestEntry) (*workouts.RestEntry, error) {
			assert.Equal(t, "abcd1234", entry.SessionHash)
			assert.Equal(t, 30, entry.PlannedSeconds)
			assert.Equal(t, 30, entry.ActualSeconds)
			assert.True(t, entry.Completed)
			require.NotNil(t, entry.ZeroCrossingAt)
			assert.Equal(t, zeroCrossing, *entry.ZeroCrossingAt)
			added := entry
			added.ID = 1
			return &added, nil
		})

	handler.RecordRestResult(context.Background(), resttimer.RestResult{
		SessionDigest:  "abcd1234",
		PlannedSeconds: 30,
		ActualSeconds:  30,
		Completed:      true,
		ZeroCrossingAt: zeroCrossing,
	})
}

func TestRestsHandler_RecordRestResult_Skipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockrestsRepo(ctrl)
	handler := workouts.NewRestsHandler(repoMock)

	repoMock.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, entry workouts.RestEntry) (*workouts.RestEntry, error) {
			assert.False(t, entry.Completed)
			assert.Equal(t, 45, entry.ActualSeconds)
			assert.Nil(t, entry.ZeroCrossingAt, "a skipped rest never crossed zero")
			added := entry
			added.ID = 2
			return &added, nil
		})

	handler.RecordRestResult(context.Background(), resttimer.RestResult{
		SessionDigest:  "abcd1234",
		PlannedSeconds: 90,
		ActualSeconds:  45,
		Completed:      false,
	})
}
