package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymrest/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrSetNotFound = errors.New("workout set not found")

type SetParams struct {
	ExerciseID  string
	MuscleGroup string
	From        *time.Time
	To          *time.Time
}

type SetListParams struct {
	SetParams
	Page int
	Size int
}

type SetsRepo struct {
	db *pgxpool.Pool
}

func NewSetsRepo(db *pgxpool.Pool) *SetsRepo {
	return &SetsRepo{
		db: db,
	}
}

func (r *SetsRepo) Add(ctx context.Context, set Set) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sets.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	metadataJson, err := json.Marshal(set.Metadata)
	if err != nil {
		return nil, fmt.Errorf("marshal metadata: %w", err)
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workout_set
				(exercise_id, muscle_group, kilos, reps, metadata, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		set.ExerciseID, set.MuscleGroup, set.Kilos, set.Reps, metadataJson, set.CreatedAt,
	).Scan(&set.ID)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("set.id", set.ID))
	return &set, nil
}

func (r *SetsRepo) Get(ctx context.Context, id int) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sets.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, exercise_id, muscle_group, kilos, reps, metadata, created_at
			FROM workout_set
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	sets, err := r.rows2sets(rows)
	if err != nil {
		return nil, err
	}
	if len(sets) != 1 {
		return nil, ErrSetNotFound
	}
	return &sets[0], nil
}

func (r *SetsRepo) Update(ctx context.Context, set *Set) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sets.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", set.ID))

	metadataJson, err := json.Marshal(set.Metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_set
			SET exercise_id = $1, muscle_group = $2, kilos = $3, reps = $4, metadata = $5, created_at = $6
			WHERE id = $7;`,
		set.ExerciseID, set.MuscleGroup, set.Kilos, set.Reps, metadataJson, set.CreatedAt, set.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSetNotFound
	}
	return nil
}

func (r *SetsRepo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sets.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM workout_set WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSetNotFound
	}
	return nil
}

// ListAll returns all sets matching the params, newest first.
func (r *SetsRepo) ListAll(ctx context.Context, params SetParams) (_ []Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sets.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_id", params.ExerciseID))
	span.SetAttributes(attribute.String("muscle_group", params.MuscleGroup))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, exercise_id, muscle_group, kilos, reps, metadata, created_at
			FROM workout_set
			WHERE ($1::text = '' OR exercise_id = $1)
			AND ($2::text = '' OR muscle_group = $2)
			AND ($3::timestamp IS NULL OR created_at >= $3)
			AND ($4::timestamp IS NULL OR created_at <= $4)
			ORDER BY created_at DESC;`,
		params.ExerciseID, params.MuscleGroup,
		params.From, params.To,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2sets(rows)
}

// List returns one page of sets, newest first, plus the total count.
func (r *SetsRepo) List(ctx context.Context, params SetListParams) (_ []Set, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sets.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", params.Page))
	span.SetAttributes(attribute.Int("size", params.Size))

	if params.Page < 1 {
		return nil, -1, errors.New("page must be greater than 0")
	}
	if params.Size < 1 {
		return nil, -1, errors.New("size must be greater than 0")
	}

	total, err = r.Count(ctx, params.SetParams)
	if err != nil {
		return nil, -1, err
	}

	limit := params.Size
	offset := (params.Page - 1) * params.Size
	if offset > total {
		offset = total
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, exercise_id, muscle_group, kilos, reps, metadata, created_at
			FROM workout_set
			WHERE ($1::text = '' OR exercise_id = $1)
			AND ($2::text = '' OR muscle_group = $2)
			ORDER BY created_at DESC
			LIMIT $3
			OFFSET $4;`,
		params.ExerciseID, params.MuscleGroup,
		limit, offset,
	)
	if err != nil {
		return nil, -1, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, -1, err
	}

	sets, err := r.rows2sets(rows)
	if err != nil {
		return nil, -1, err
	}
	return sets, total, nil
}

func (r *SetsRepo) Count(ctx context.Context, params SetParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sets.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM workout_set
			WHERE ($1::text = '' OR exercise_id = $1)
			AND ($2::text = '' OR muscle_group = $2)
			AND ($3::timestamp IS NULL OR created_at >= $3)
			AND ($4::timestamp IS NULL OR created_at <= $4);`,
		params.ExerciseID, params.MuscleGroup,
		params.From, params.To,
	).Scan(&count)
	if err != nil {
		return -1, fmt.Errorf("count workout sets: %w", err)
	}
	return count, nil
}

func (r *SetsRepo) rows2sets(rows pgx.Rows) ([]Set, error) {
	sets := make([]Set, 0)
	for rows.Next() {
		var s Set
		var metadataBytes []byte
		if err := rows.Scan(
			&s.ID, &s.ExerciseID, &s.MuscleGroup,
			&s.Kilos, &s.Reps, &metadataBytes, &s.CreatedAt,
		); err != nil {
			return nil, err
		}

		if len(metadataBytes) > 0 {
			if err := json.Unmarshal(metadataBytes, &s.Metadata); err != nil {
				return nil, fmt.Errorf("unmarshal metadata for set %d: %w", s.ID, err)
			}
		}

		sets = append(sets, s)
	}
	return sets, nil
}
