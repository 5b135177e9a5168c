package workouts

import (
	"context"
	"time"

	"github.com/2beens/gymrest/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=workouts_test

type restsRepo interface {
	Add(ctx context.Context, entry RestEntry) (*RestEntry, error)
	ListAll(ctx context.Context, params RestParams) ([]RestEntry, error)
}

type Analyzer struct {
	repo restsRepo
}

func NewAnalyzer(repo restsRepo) *Analyzer {
	return &Analyzer{
		repo: repo,
	}
}

type AvgRestDurationResponse struct {
	// Duration is the average actually-rested time over all recorded rests
	Duration time.Duration `json:"duration"`
	// DurationPerDay is the same average per calendar day
	DurationPerDay map[time.Time]time.Duration `json:"durationPerDay"`
	// Rests is the number of entries the averages were computed from
	Rests int `json:"rests"`
}

// AvgRestDuration computes the average rest between sets, overall and per
// day, from the recorded rest entries. Leave params empty to average over
// everything ever recorded.
func (a *Analyzer) AvgRestDuration(
	ctx context.Context,
	params RestParams,
) (_ *AvgRestDurationResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.workouts.avg-rest-duration")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entries, err := a.repo.ListAll(ctx, params)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return &AvgRestDurationResponse{
			DurationPerDay: make(map[time.Time]time.Duration),
		}, nil
	}

	day2entries := make(map[time.Time][]RestEntry)
	for _, e := range entries {
		day := e.CreatedAt.Truncate(24 * time.Hour)
		day2entries[day] = append(day2entries[day], e)
	}

	durationPerDay := make(map[time.Time]time.Duration)
	for day, dayEntries := range day2entries {
		var daySum time.Duration
		for _, e := range dayEntries {
			daySum += time.Duration(e.ActualSeconds) * time.Second
		}
		durationPerDay[day] = daySum / time.Duration(len(dayEntries))
	}

	var sum time.Duration
	for _, e := range entries {
		sum += time.Duration(e.ActualSeconds) * time.Second
	}

	return &AvgRestDurationResponse{
		Duration:       sum / time.Duration(len(entries)),
		DurationPerDay: durationPerDay,
		Rests:          len(entries),
	}, nil
}
