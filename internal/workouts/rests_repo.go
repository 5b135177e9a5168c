package workouts

import (
	"context"
	"time"

	"github.com/2beens/gymrest/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type RestParams struct {
	From          *time.Time
	To            *time.Time
	OnlyCompleted bool
}

type RestsRepo struct {
	db *pgxpool.Pool
}

func NewRestsRepo(db *pgxpool.Pool) *RestsRepo {
	return &RestsRepo{
		db: db,
	}
}

func (r *RestsRepo) Add(ctx context.Context, entry RestEntry) (_ *RestEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.rests.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("planned_seconds", entry.PlannedSeconds))
	span.SetAttributes(attribute.Bool("completed", entry.Completed))

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO rest_entry
			(session_hash, planned_seconds, actual_seconds, completed, zero_crossing_at, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;`,
		entry.SessionHash, entry.PlannedSeconds, entry.ActualSeconds,
		entry.Completed, entry.ZeroCrossingAt, entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListAll returns all recorded rests matching the params, newest first.
func (r *RestsRepo) ListAll(ctx context.Context, params RestParams) (_ []RestEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.rests.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Bool("only-completed", params.OnlyCompleted))

	rows, err := r.db.Query(ctx, `
		SELECT id, session_hash, planned_seconds, actual_seconds, completed, zero_crossing_at, created_at
		FROM rest_entry
		WHERE ($1::timestamp IS NULL OR created_at >= $1)
		  AND ($2::timestamp IS NULL OR created_at <= $2)
		  AND ($3::boolean IS FALSE OR completed IS TRUE)
		ORDER BY created_at DESC;`,
		params.From, params.To, params.OnlyCompleted,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	entries := make([]RestEntry, 0)
	for rows.Next() {
		var e RestEntry
		if err := rows.Scan(
			&e.ID, &e.SessionHash, &e.PlannedSeconds, &e.ActualSeconds,
			&e.Completed, &e.ZeroCrossingAt, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, nil
}
