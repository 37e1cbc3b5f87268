package worker

import (
	"context"

	"github.com/osse101/DoughGuardian_Go/internal/logger"
	"github.com/osse101/DoughGuardian_Go/internal/progression"
)

// Saver persists dirty sessions
type Saver interface {
	SaveAll(ctx context.Context, reason string) (int, error)
}

// Ticker brings every live session up to the current time
type Ticker interface {
	TickAll(ctx context.Context) (int, error)
}

// AutosaveJob saves every dirty session
type AutosaveJob struct {
	saver Saver
}

func NewAutosaveJob(saver Saver) *AutosaveJob {
	return &AutosaveJob{saver: saver}
}

func (j *AutosaveJob) Name() string { return JobNameAutosave }

func (j *AutosaveJob) Process(ctx context.Context) error {
	saved, err := j.saver.SaveAll(ctx, progression.SaveReasonAutosave)
	if saved > 0 || err != nil {
		logger.FromContext(ctx).Info(LogMsgAutosaveCompleted, "saved", saved, "failed", err != nil)
	}
	return err
}

// PassiveTickJob credits live sessions with the wall time each has not
// yet accrued. Sessions track their own accrual, so runs may be late or
// skipped without losing or double counting time.
type PassiveTickJob struct {
	ticker Ticker
}

func NewPassiveTickJob(ticker Ticker) *PassiveTickJob {
	return &PassiveTickJob{ticker: ticker}
}

func (j *PassiveTickJob) Name() string { return JobNamePassiveTick }

func (j *PassiveTickJob) Process(ctx context.Context) error {
	ticked, err := j.ticker.TickAll(ctx)
	if err != nil {
		return err
	}
	if ticked > 0 {
		logger.FromContext(ctx).Debug(LogMsgPassiveTickCompleted, "sessions", ticked)
	}
	return nil
}
