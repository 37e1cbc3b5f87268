package savefile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/osse101/DoughGuardian_Go/internal/domain"
	"github.com/osse101/DoughGuardian_Go/internal/logger"
)

// FileStore keeps one JSON file per player in a directory.
// Saves go through a temporary file and a rename so a crash mid-write
// leaves the previous save untouched.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates dir if needed and returns a store rooted there
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return nil, fmt.Errorf("failed to create save directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Path returns the file that holds playerID's progress
func (s *FileStore) Path(playerID string) string {
	if playerID == domain.DefaultPlayerID {
		return filepath.Join(s.dir, LegacyFileName)
	}
	return filepath.Join(s.dir, filePrefix+playerID+fileSuffix)
}

// Load reads a player's save
func (s *FileStore) Load(ctx context.Context, playerID string) (*domain.ProgressionState, error) {
	if err := domain.ValidatePlayerID(playerID); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Path(playerID))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrSaveNotFound
		}
		return nil, fmt.Errorf("failed to read save: %w", err)
	}

	rec, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return &rec.ProgressionState, nil
}

// Save writes a player's state atomically
func (s *FileStore) Save(ctx context.Context, playerID string, state domain.ProgressionState) error {
	if err := domain.ValidatePlayerID(playerID); err != nil {
		return err
	}

	data, err := Encode(playerID, state)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.Path(playerID)
	if err := writeAtomic(target, data); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSaveFailed, err)
	}

	logger.ForPlayer(ctx, playerID).Debug(LogMsgProgressSaved, "path", target)
	return nil
}

// Delete removes a player's save. Missing files are not an error.
func (s *FileStore) Delete(ctx context.Context, playerID string) error {
	if err := domain.ValidatePlayerID(playerID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.Path(playerID)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete save: %w", err)
	}
	logger.ForPlayer(ctx, playerID).Info(LogMsgProgressDeleted)
	return nil
}

// CheckHealth verifies the save directory is still a writable directory
func (s *FileStore) CheckHealth(ctx context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("save directory unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("save path %s is not a directory", s.dir)
	}
	return nil
}

// ListPlayers returns the ids of every saved player, sorted
func (s *FileStore) ListPlayers(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}

	var players []string
	for _, entry := range entries {
		name := entry.Name()
		switch {
		case entry.IsDir():
		case name == LegacyFileName:
			players = append(players, domain.DefaultPlayerID)
		case strings.HasPrefix(name, filePrefix) && strings.HasSuffix(name, fileSuffix):
			players = append(players, strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileSuffix))
		}
	}
	sort.Strings(players)
	return players, nil
}

func writeAtomic(target string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(target), filepath.Base(target)+".*"+tempSuffix)
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	cleanup := func() {
		if rmErr := os.Remove(tmpName); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			logger.Warn(LogMsgTempCleanup, "path", tmpName, "error", rmErr)
		}
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return err
	}
	if err := os.Chmod(tmpName, filePermissions); err != nil {
		cleanup()
		return err
	}
	if err := os.Rename(tmpName, target); err != nil {
		cleanup()
		return err
	}
	return nil
}
