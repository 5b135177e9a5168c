package resttimer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymrest/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/codes"
)

const (
	snapshotKeyPrefix = "gymrest-timer-snapshot||"
	// a rest countdown abandoned for longer than this is dead weight
	snapshotTTL = 6 * time.Hour
)

// SnapshotStore persists engine snapshots between client remounts.
type SnapshotStore interface {
	Save(ctx context.Context, sessionID string, snap Snapshot) error
	// Load returns found=false when no snapshot is stored; a corrupt
	// stored payload is reported as an error, callers treat both as
	// "start fresh".
	Load(ctx context.Context, sessionID string) (snap Snapshot, found bool, err error)
	Delete(ctx context.Context, sessionID string) error
}

type RedisSnapshotStore struct {
	redisClient *redis.Client
}

var _ SnapshotStore = (*RedisSnapshotStore)(nil)

func NewRedisSnapshotStore(redisClient *redis.Client) *RedisSnapshotStore {
	return &RedisSnapshotStore{
		redisClient: redisClient,
	}
}

func (s *RedisSnapshotStore) Save(ctx context.Context, sessionID string, snap Snapshot) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "resttimer.store.save")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	payload, err := snap.Marshal()
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	cmd := s.redisClient.Set(ctx, snapshotKeyPrefix+sessionID, payload, snapshotTTL)
	if err := cmd.Err(); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (s *RedisSnapshotStore) Load(ctx context.Context, sessionID string) (_ Snapshot, _ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "resttimer.store.load")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	cmd := s.redisClient.Get(ctx, snapshotKeyPrefix+sessionID)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return Snapshot{}, false, nil
		}
		return Snapshot{}, false, fmt.Errorf("load snapshot: %w", err)
	}

	snap, err := ParseSnapshot([]byte(cmd.Val()))
	if err != nil {
		return Snapshot{}, false, err
	}
	return snap, true, nil
}

func (s *RedisSnapshotStore) Delete(ctx context.Context, sessionID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "resttimer.store.delete")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if err := s.redisClient.Del(ctx, snapshotKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	return nil
}
