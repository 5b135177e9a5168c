package workouts

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/gymrest/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type EventParams struct {
	Type *EventType
	From *time.Time
	To   *time.Time
}

type EventListParams struct {
	EventParams
	Page int
	Size int
}

type EventsRepo struct {
	db *pgxpool.Pool
}

func NewEventsRepo(db *pgxpool.Pool) *EventsRepo {
	return &EventsRepo{
		db: db,
	}
}

func (r *EventsRepo) Add(ctx context.Context, event Event) (_ *Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.events.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("type", event.Type.String()))

	err = r.db.QueryRow(ctx, `
		INSERT INTO training_event (type, data, timestamp)
		VALUES ($1, $2, $3)
		RETURNING id
	`,
		event.Type,
		event.Data,
		event.Timestamp,
	).Scan(&event.ID)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventsRepo) Get(ctx context.Context, id int) (_ *Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.events.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	event := &Event{}
	err = r.db.
		QueryRow(ctx, `
			SELECT id, type, data, timestamp
			FROM training_event
			WHERE id = $1
		`, id).
		Scan(&event.ID, &event.Type, &event.Data, &event.Timestamp)
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (r *EventsRepo) List(ctx context.Context, params EventListParams) (_ []*Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.events.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	if params.Type != nil {
		span.SetAttributes(attribute.String("type", string(*params.Type)))
	}

	events := make([]*Event, 0)
	rows, err := r.db.Query(ctx, `
		SELECT id, type, data, timestamp
		FROM training_event
		WHERE ($1::text IS NULL OR type = $1)
		  AND ($2::timestamp IS NULL OR timestamp >= $2)
		  AND ($3::timestamp IS NULL OR timestamp <= $3)
		ORDER BY timestamp DESC
		LIMIT $4 OFFSET $5;
	`,
		params.Type,
		params.From, params.To,
		params.Size, params.Size*params.Page,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	for rows.Next() {
		event := &Event{}
		if err := rows.Scan(&event.ID, &event.Type, &event.Data, &event.Timestamp); err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}

func (r *EventsRepo) Count(ctx context.Context, params EventParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.events.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM training_event
			WHERE ($1::text IS NULL OR type = $1)
			AND ($2::timestamp IS NULL OR timestamp >= $2)
			AND ($3::timestamp IS NULL OR timestamp <= $3);
	`,
		params.Type,
		params.From, params.To,
	).Scan(&count)
	if err != nil {
		return -1, fmt.Errorf("failed to get training events count: %w", err)
	}
	return count, nil
}
