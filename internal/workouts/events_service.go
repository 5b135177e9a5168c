package workouts

import (
	"context"
	"fmt"

	"github.com/2beens/gymrest/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=events_mocks_test.go -package=workouts_test

type eventsRepo interface {
	Add(ctx context.Context, event Event) (*Event, error)
	List(ctx context.Context, params EventListParams) ([]*Event, error)
	Count(ctx context.Context, params EventParams) (int, error)
}

type EventsService struct {
	repo eventsRepo
}

func NewEventsService(repo eventsRepo) *EventsService {
	return &EventsService{
		repo: repo,
	}
}

func (s *EventsService) AddTrainingStart(ctx context.Context, ts TrainingStart) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.events.add.trainingstart")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	event, err := s.repo.Add(ctx, NewTrainingStartEvent(ts))
	if err != nil {
		return 0, fmt.Errorf("add training start event: %w", err)
	}
	return event.ID, nil
}

func (s *EventsService) AddTrainingFinish(ctx context.Context, tf TrainingFinish) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.events.add.trainingfinish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	event, err := s.repo.Add(ctx, NewTrainingFinishEvent(tf))
	if err != nil {
		return 0, fmt.Errorf("add training finish event: %w", err)
	}
	return event.ID, nil
}

func (s *EventsService) List(ctx context.Context, params EventListParams) (_ []*Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.events.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	events, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("list training events: %w", err)
	}
	return events, nil
}
