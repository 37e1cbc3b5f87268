package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/osse101/DoughGuardian_Go/internal/domain"
	"github.com/osse101/DoughGuardian_Go/internal/repository"
	"github.com/osse101/DoughGuardian_Go/internal/savefile"
)

var (
	_ repository.ProgressStore = (*ProgressStore)(nil)
	_ repository.PlayerLister  = (*ProgressStore)(nil)
)

// ProgressStore keeps each player's save record as a JSON string under
// progress:{playerID} and tracks known players in a set.
type ProgressStore struct {
	client goredis.UniversalClient
}

// NewProgressStore wraps an existing client
func NewProgressStore(client goredis.UniversalClient) *ProgressStore {
	return &ProgressStore{client: client}
}

// Connect creates a client and pings it, retrying a bounded number of times
func Connect(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	opts := &goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}

	var lastErr error
	for attempt := 1; attempt <= ConnectMaxAttempts; attempt++ {
		client := goredis.NewClient(opts)

		pingCtx, cancel := context.WithTimeout(ctx, PingTimeout)
		err := client.Ping(pingCtx).Err()
		cancel()
		if err == nil {
			slog.Default().Info(LogMsgConnected, "addr", addr, "db", db, "attempt", attempt)
			return client, nil
		}

		_ = client.Close()
		lastErr = err
		slog.Default().Warn(LogMsgPingRetry, "addr", addr, "attempt", attempt, "error", err)

		if attempt < ConnectMaxAttempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(ConnectRetryDelay):
			}
		}
	}
	return nil, fmt.Errorf(ErrMsgConnectFailed, ConnectMaxAttempts, lastErr)
}

func progressKey(playerID string) string {
	return KeyPrefixProgress + playerID
}

// Load retrieves a player's saved state
func (s *ProgressStore) Load(ctx context.Context, playerID string) (*domain.ProgressionState, error) {
	data, err := s.client.Get(ctx, progressKey(playerID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, domain.ErrSaveNotFound
		}
		return nil, fmt.Errorf("failed to load progress for %s: %w", playerID, err)
	}

	rec, err := savefile.Decode(data)
	if err != nil {
		return nil, err
	}
	state := rec.ProgressionState
	return &state, nil
}

// Save writes the record and registers the player in one MULTI/EXEC
func (s *ProgressStore) Save(ctx context.Context, playerID string, state domain.ProgressionState) error {
	data, err := savefile.Encode(playerID, state)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSaveFailed, err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Set(ctx, progressKey(playerID), data, 0)
		pipe.SAdd(ctx, KeyPlayers, playerID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSaveFailed, err)
	}
	return nil
}

// Delete removes the record and the player's set membership
func (s *ProgressStore) Delete(ctx context.Context, playerID string) error {
	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Del(ctx, progressKey(playerID))
		pipe.SRem(ctx, KeyPlayers, playerID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete progress for %s: %w", playerID, err)
	}
	return nil
}

// ListPlayers returns every saved player, sorted
func (s *ProgressStore) ListPlayers(ctx context.Context) ([]string, error) {
	players, err := s.client.SMembers(ctx, KeyPlayers).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	sort.Strings(players)
	return players, nil
}

// CheckHealth pings the server
func (s *ProgressStore) CheckHealth(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
