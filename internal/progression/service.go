package progression

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/DoughGuardian_Go/internal/catalog"
	"github.com/osse101/DoughGuardian_Go/internal/concurrency"
	"github.com/osse101/DoughGuardian_Go/internal/domain"
	"github.com/osse101/DoughGuardian_Go/internal/engine"
	"github.com/osse101/DoughGuardian_Go/internal/event"
	"github.com/osse101/DoughGuardian_Go/internal/logger"
	"github.com/osse101/DoughGuardian_Go/internal/metrics"
	"github.com/osse101/DoughGuardian_Go/internal/repository"
)

// Service runs progression for many players on top of a ProgressStore
type Service interface {
	Catalog() *catalog.Catalog

	// Get loads a player, applying offline catch-up on first load
	Get(ctx context.Context, playerID string) (*Result, error)
	Snapshot(ctx context.Context, playerID string) (domain.ProgressionState, error)

	Tick(ctx context.Context, playerID string, elapsedSeconds float64) (*Result, error)
	Interact(ctx context.Context, playerID string, harmonyGain, essenceGain float64) (*Result, error)
	Tap(ctx context.Context, playerID string) (*Result, error)
	Purchase(ctx context.Context, playerID, upgradeID string) (*Result, error)

	// Restore replaces the player's progress with a client-supplied state,
	// clamped against the catalog. The session stays dirty until saved.
	Restore(ctx context.Context, playerID string, state domain.ProgressionState) (*Result, error)
	Save(ctx context.Context, playerID string) (*SaveResult, error)
	Reset(ctx context.Context, playerID string) error

	// SaveAll persists every dirty session and returns how many were saved
	SaveAll(ctx context.Context, reason string) (int, error)
	// TickAll credits every live session with the wall time it has not yet
	// accrued and returns how many sessions advanced
	TickAll(ctx context.Context) (int, error)

	Shutdown(ctx context.Context) error
}

// CacheConfig sizes the live session cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

type service struct {
	catalog *catalog.Catalog
	store   repository.ProgressStore
	bus     event.Bus
	clock   Clock
	locks   *concurrency.LockManager
	cache   *sessionCache

	wg             sync.WaitGroup
	shutdownCtx    context.Context
	shutdownCancel context.CancelFunc
	shutdownOnce   sync.Once
}

// NewService creates a progression service and starts its eviction flusher
func NewService(cat *catalog.Catalog, store repository.ProgressStore, bus event.Bus, clock Clock, cacheCfg CacheConfig) Service {
	if clock == nil {
		clock = RealClock{}
	}
	if cacheCfg.Size <= 0 {
		cacheCfg.Size = DefaultSessionCacheSize
	}
	if cacheCfg.TTL <= 0 {
		cacheCfg.TTL = DefaultSessionTTL
	}

	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())
	s := &service{
		catalog:        cat,
		store:          store,
		bus:            bus,
		clock:          clock,
		locks:          concurrency.NewLockManager(),
		cache:          newSessionCache(cacheCfg.Size, cacheCfg.TTL),
		shutdownCtx:    shutdownCtx,
		shutdownCancel: shutdownCancel,
	}

	s.wg.Add(1)
	go s.flushEvicted()
	return s
}

func (s *service) Catalog() *catalog.Catalog {
	return s.catalog
}

// withSession validates the id, takes the player lock and resolves the
// session. Catch-up events from a fresh load are passed to fn.
func (s *service) withSession(ctx context.Context, playerID string, fn func(sess *session, loaded []domain.ProgressEvent) error) error {
	if err := domain.ValidatePlayerID(playerID); err != nil {
		return err
	}

	return s.locks.WithLock(playerID, func() error {
		sess, loaded, err := s.session(ctx, playerID)
		if err != nil {
			return err
		}
		return fn(sess, loaded)
	})
}

// session returns the live session, loading it from the store when needed.
// The caller holds the player lock.
func (s *service) session(ctx context.Context, playerID string) (*session, []domain.ProgressEvent, error) {
	if sess, ok := s.cache.get(playerID); ok {
		return sess, nil, nil
	}

	log := logger.ForPlayer(ctx, playerID)
	now := s.clock.Now()
	sess := &session{engine: engine.New(s.catalog), accruedUntil: now}

	state, err := s.store.Load(ctx, playerID)
	switch {
	case errors.Is(err, domain.ErrSaveNotFound):
		log.Info(LogMsgSessionCreated)
		s.cache.add(playerID, sess)
		return sess, nil, nil
	case err != nil:
		return nil, nil, fmt.Errorf("failed to load progress for %s: %w", playerID, err)
	}

	sess.engine.Restore(*state)

	var events []domain.ProgressEvent
	if elapsed := offlineSeconds(state.LastSavedAt, now); elapsed > 0 {
		events, err = sess.engine.Tick(elapsed)
		if err != nil {
			return nil, nil, err
		}
		sess.dirty.Store(true)
		metrics.TicksProcessed.WithLabelValues(metrics.TickSourceCatchUp).Inc()
		log.Info(LogMsgCatchUpApplied, "elapsed_seconds", elapsed, "events", len(events))
		s.publish(ctx, playerID, metrics.TickSourceCatchUp, sess, events)
	}

	s.cache.add(playerID, sess)
	log.Debug(LogMsgSessionLoaded, "tier", sess.engine.CurrentTier().ID)
	return sess, events, nil
}

// offlineSeconds is the time since the last save. A zero or future stamp
// yields no catch-up.
func offlineSeconds(lastSaved, now time.Time) float64 {
	if lastSaved.IsZero() {
		return 0
	}
	elapsed := now.Sub(lastSaved).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return elapsed
}

func (s *service) Get(ctx context.Context, playerID string) (*Result, error) {
	var res *Result
	err := s.withSession(ctx, playerID, func(sess *session, loaded []domain.ProgressEvent) error {
		res = s.result(playerID, sess, loaded, nil)
		return nil
	})
	return res, err
}

func (s *service) Snapshot(ctx context.Context, playerID string) (domain.ProgressionState, error) {
	var state domain.ProgressionState
	err := s.withSession(ctx, playerID, func(sess *session, _ []domain.ProgressEvent) error {
		state = sess.engine.Snapshot()
		return nil
	})
	return state, err
}

func (s *service) Tick(ctx context.Context, playerID string, elapsedSeconds float64) (*Result, error) {
	return s.mutate(ctx, playerID, metrics.TickSourceRequest, func(eng *engine.Engine) ([]domain.ProgressEvent, error) {
		events, err := eng.Tick(elapsedSeconds)
		if err == nil {
			metrics.TicksProcessed.WithLabelValues(metrics.TickSourceRequest).Inc()
		}
		return events, err
	})
}

func (s *service) Interact(ctx context.Context, playerID string, harmonyGain, essenceGain float64) (*Result, error) {
	return s.mutate(ctx, playerID, SourceInteraction, func(eng *engine.Engine) ([]domain.ProgressEvent, error) {
		return eng.ApplyInteraction(harmonyGain, essenceGain)
	})
}

// Tap applies one interaction with the catalog's tap gains
func (s *service) Tap(ctx context.Context, playerID string) (*Result, error) {
	balance := s.catalog.Balance()
	return s.Interact(ctx, playerID, balance.TapHarmonyGain, balance.TapEssenceGain)
}

func (s *service) Purchase(ctx context.Context, playerID, upgradeID string) (*Result, error) {
	res, err := s.mutate(ctx, playerID, SourcePurchase, func(eng *engine.Engine) ([]domain.ProgressEvent, error) {
		return eng.PurchaseUpgrade(upgradeID)
	})
	if err != nil && !errors.Is(err, domain.ErrInvalidPlayerID) {
		metrics.RecordPurchaseFailure(err)
	}
	return res, err
}

// mutate applies op to the player's engine and publishes what it produced.
// A failed op leaves the session untouched.
func (s *service) mutate(ctx context.Context, playerID, source string, op func(*engine.Engine) ([]domain.ProgressEvent, error)) (*Result, error) {
	var res *Result
	err := s.withSession(ctx, playerID, func(sess *session, loaded []domain.ProgressEvent) error {
		events, err := op(sess.engine)
		if err != nil {
			return err
		}
		sess.dirty.Store(true)
		s.publish(ctx, playerID, source, sess, events)
		res = s.result(playerID, sess, loaded, events)
		return nil
	})
	return res, err
}

func (s *service) result(playerID string, sess *session, loaded, events []domain.ProgressEvent) *Result {
	all := make([]domain.ProgressEvent, 0, len(loaded)+len(events))
	all = append(all, loaded...)
	all = append(all, events...)
	return &Result{
		Progress: buildProgress(playerID, sess.engine),
		Events:   all,
	}
}

func (s *service) Restore(ctx context.Context, playerID string, state domain.ProgressionState) (*Result, error) {
	var res *Result
	err := s.withSession(ctx, playerID, func(sess *session, _ []domain.ProgressEvent) error {
		sess.engine.Restore(state)
		sess.accruedUntil = s.clock.Now()
		sess.dirty.Store(true)
		logger.ForPlayer(ctx, playerID).Info(LogMsgProgressRestored,
			"tier", sess.engine.CurrentTier().ID,
			"upgrades", len(sess.engine.Snapshot().UpgradesPurchased))
		res = s.result(playerID, sess, nil, nil)
		return nil
	})
	return res, err
}

func (s *service) Save(ctx context.Context, playerID string) (*SaveResult, error) {
	var res *SaveResult
	err := s.withSession(ctx, playerID, func(sess *session, _ []domain.ProgressEvent) error {
		if err := s.saveLocked(ctx, playerID, sess, SaveReasonManual); err != nil {
			return err
		}
		res = &SaveResult{PlayerID: playerID, State: sess.engine.Snapshot()}
		return nil
	})
	return res, err
}

// saveLocked accrues the session up to now and writes it with that stamp,
// so a later load catches up from exactly where the session left off. The
// caller holds the player lock.
func (s *service) saveLocked(ctx context.Context, playerID string, sess *session, reason string) error {
	now := s.clock.Now().UTC()
	if _, err := s.accrueLocked(ctx, playerID, sess, now); err != nil {
		return err
	}
	state := sess.engine.Snapshot()
	state.LastSavedAt = now

	if err := s.store.Save(ctx, playerID, state); err != nil {
		metrics.ProgressSaveFailures.Inc()
		logger.ForPlayer(ctx, playerID).Error(LogMsgSaveFailed, "reason", reason, "error", err)
		return err
	}

	sess.engine.MarkSaved(now)
	sess.dirty.Store(false)
	logger.ForPlayer(ctx, playerID).Debug(LogMsgProgressSaved, "reason", reason)
	s.emit(ctx, event.NewProgressSavedEvent(playerID, now, reason), reason)
	return nil
}

func (s *service) Reset(ctx context.Context, playerID string) error {
	if err := domain.ValidatePlayerID(playerID); err != nil {
		return err
	}

	return s.locks.WithLock(playerID, func() error {
		s.cache.discard(playerID)
		if err := s.store.Delete(ctx, playerID); err != nil {
			return fmt.Errorf("failed to reset progress for %s: %w", playerID, err)
		}
		logger.ForPlayer(ctx, playerID).Info(LogMsgProgressReset)
		s.emit(ctx, event.NewProgressResetEvent(playerID), SourceReset)
		return nil
	})
}

func (s *service) SaveAll(ctx context.Context, reason string) (int, error) {
	saved := 0
	var errs []error

	for _, playerID := range s.cache.keys() {
		err := s.locks.WithLock(playerID, func() error {
			sess, ok := s.cache.peek(playerID)
			if !ok || !sess.dirty.Load() {
				return nil
			}
			if err := s.saveLocked(ctx, playerID, sess, reason); err != nil {
				return err
			}
			saved++
			return nil
		})
		if err != nil {
			errs = append(errs, err)
		}
	}

	n, err := s.flushPending(ctx)
	saved += n
	if err != nil {
		errs = append(errs, err)
	}

	return saved, errors.Join(errs...)
}

func (s *service) TickAll(ctx context.Context) (int, error) {
	ticked := 0
	for _, playerID := range s.cache.keys() {
		err := s.locks.WithLock(playerID, func() error {
			sess, ok := s.cache.peek(playerID)
			if !ok {
				return nil
			}
			advanced, err := s.accrueLocked(ctx, playerID, sess, s.clock.Now())
			if advanced {
				ticked++
			}
			return err
		})
		if err != nil {
			return ticked, err
		}
	}
	return ticked, nil
}

// accrueLocked credits the session with the wall time between accruedUntil
// and now. A clock that has not moved forward credits nothing. The caller
// holds the player lock.
func (s *service) accrueLocked(ctx context.Context, playerID string, sess *session, now time.Time) (bool, error) {
	elapsed := now.Sub(sess.accruedUntil).Seconds()
	if elapsed <= 0 {
		return false, nil
	}

	events, err := sess.engine.Tick(elapsed)
	if err != nil {
		return false, fmt.Errorf("failed to accrue %s: %w", playerID, err)
	}
	sess.accruedUntil = now
	sess.dirty.Store(true)
	metrics.TicksProcessed.WithLabelValues(metrics.TickSourcePassive).Inc()
	s.publish(ctx, playerID, metrics.TickSourcePassive, sess, events)
	return true, nil
}

// flushEvicted saves parked sessions as the cache evicts them
func (s *service) flushEvicted() {
	defer s.wg.Done()

	for {
		select {
		case <-s.shutdownCtx.Done():
			return
		case <-s.cache.notify:
			if _, err := s.flushPending(s.shutdownCtx); err != nil {
				logger.Error(LogMsgEvictedSaveError, "error", err)
			}
		}
	}
}

func (s *service) flushPending(ctx context.Context) (int, error) {
	saved := 0
	var errs []error

	for playerID, sess := range s.cache.pendingSnapshot() {
		err := s.locks.WithLock(playerID, func() error {
			if !s.cache.takePending(playerID, sess) {
				return nil
			}
			if !sess.dirty.Load() {
				return nil
			}
			if err := s.saveLocked(ctx, playerID, sess, SaveReasonEvicted); err != nil {
				s.cache.park(playerID, sess)
				return err
			}
			saved++
			return nil
		})
		if err != nil {
			errs = append(errs, err)
		}
	}
	return saved, errors.Join(errs...)
}

// Shutdown saves every dirty session and stops the eviction flusher
func (s *service) Shutdown(ctx context.Context) error {
	var saveErr error
	s.shutdownOnce.Do(func() {
		logger.FromContext(ctx).Info(LogMsgShuttingDown, "sessions", s.cache.len())

		s.shutdownCancel()
		done := make(chan struct{})
		go func() {
			s.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
		case <-ctx.Done():
			saveErr = ctx.Err()
			return
		}

		_, saveErr = s.SaveAll(ctx, SaveReasonShutdown)
	})
	return saveErr
}
