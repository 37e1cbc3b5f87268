package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/DoughGuardian_Go/internal/domain"
	"github.com/osse101/DoughGuardian_Go/internal/repository"
)

const (
	queryLoadPlayer = `
		SELECT harmony, essence, current_tier_index, accumulator_since_last_reward, last_saved_at
		FROM players WHERE player_id = $1`
	queryLoadRewards  = `SELECT reward_id FROM player_rewards WHERE player_id = $1 ORDER BY position`
	queryLoadUpgrades = `SELECT upgrade_id FROM player_upgrades WHERE player_id = $1 ORDER BY position`
	queryUpsertPlayer = `
		INSERT INTO players (player_id, harmony, essence, current_tier_index,
			accumulator_since_last_reward, schema_version, last_saved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (player_id) DO UPDATE SET
			harmony = EXCLUDED.harmony,
			essence = EXCLUDED.essence,
			current_tier_index = EXCLUDED.current_tier_index,
			accumulator_since_last_reward = EXCLUDED.accumulator_since_last_reward,
			schema_version = EXCLUDED.schema_version,
			last_saved_at = EXCLUDED.last_saved_at,
			updated_at = NOW()`
	queryClearRewards  = `DELETE FROM player_rewards WHERE player_id = $1`
	queryClearUpgrades = `DELETE FROM player_upgrades WHERE player_id = $1`
	queryInsertReward  = `INSERT INTO player_rewards (player_id, position, reward_id) VALUES ($1, $2, $3)`
	queryInsertUpgrade = `INSERT INTO player_upgrades (player_id, position, upgrade_id) VALUES ($1, $2, $3)`
	queryDeletePlayer  = `DELETE FROM players WHERE player_id = $1`
	queryListPlayers   = `SELECT player_id FROM players ORDER BY player_id`
)

// ProgressRepository stores progression state across the players,
// player_rewards and player_upgrades tables
type ProgressRepository struct {
	db *pgxpool.Pool
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db *pgxpool.Pool) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// Load retrieves a player's saved state
func (r *ProgressRepository) Load(ctx context.Context, playerID string) (*domain.ProgressionState, error) {
	var state domain.ProgressionState
	var savedAt time.Time

	err := r.db.QueryRow(ctx, queryLoadPlayer, playerID).Scan(
		&state.Harmony,
		&state.Essence,
		&state.CurrentTierIndex,
		&state.Accumulator,
		&savedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSaveNotFound
		}
		return nil, fmt.Errorf("failed to load player %s: %w", playerID, err)
	}
	state.LastSavedAt = savedAt.UTC()

	if state.RewardsCollected, err = r.loadIDs(ctx, queryLoadRewards, playerID); err != nil {
		return nil, fmt.Errorf("failed to load rewards: %w", err)
	}
	if state.UpgradesPurchased, err = r.loadIDs(ctx, queryLoadUpgrades, playerID); err != nil {
		return nil, fmt.Errorf("failed to load upgrades: %w", err)
	}

	return &state, nil
}

func (r *ProgressRepository) loadIDs(ctx context.Context, query, playerID string) ([]string, error) {
	rows, err := r.db.Query(ctx, query, playerID)
	if err != nil {
		return nil, err
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// Save replaces a player's state in a single transaction
func (r *ProgressRepository) Save(ctx context.Context, playerID string, state domain.ProgressionState) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrSaveFailed, ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := tx.Exec(ctx, queryUpsertPlayer,
		playerID,
		state.Harmony,
		state.Essence,
		state.CurrentTierIndex,
		state.Accumulator,
		domain.SaveSchemaVersion,
		state.LastSavedAt.UTC(),
	); err != nil {
		return fmt.Errorf("%w: failed to upsert player: %w", domain.ErrSaveFailed, err)
	}

	batch := &pgx.Batch{}
	batch.Queue(queryClearRewards, playerID)
	batch.Queue(queryClearUpgrades, playerID)
	for i, id := range state.RewardsCollected {
		batch.Queue(queryInsertReward, playerID, i, id)
	}
	for i, id := range state.UpgradesPurchased {
		batch.Queue(queryInsertUpgrade, playerID, i, id)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("%w: failed to write collections: %w", domain.ErrSaveFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrSaveFailed, ErrMsgCommitTxFailed, err)
	}
	return nil
}

// Delete removes a player and, by cascade, their rewards and upgrades
func (r *ProgressRepository) Delete(ctx context.Context, playerID string) error {
	if _, err := r.db.Exec(ctx, queryDeletePlayer, playerID); err != nil {
		return fmt.Errorf("failed to delete player %s: %w", playerID, err)
	}
	return nil
}

// ListPlayers returns every player with a save
func (r *ProgressRepository) ListPlayers(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, queryListPlayers)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// CheckHealth pings the database
func (r *ProgressRepository) CheckHealth(ctx context.Context) error {
	return r.db.Ping(ctx)
}
