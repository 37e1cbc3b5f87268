package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/DoughGuardian_Go/internal/catalog"
	"github.com/osse101/DoughGuardian_Go/internal/domain"
	"github.com/osse101/DoughGuardian_Go/internal/progression"
)

// MockProgressionService mocks progression.Service
type MockProgressionService struct {
	mock.Mock
}

func (m *MockProgressionService) Catalog() *catalog.Catalog {
	args := m.Called()
	return args.Get(0).(*catalog.Catalog)
}

func (m *MockProgressionService) Get(ctx context.Context, playerID string) (*progression.Result, error) {
	args := m.Called(ctx, playerID)
	return resultArg(args, 0), args.Error(1)
}

func (m *MockProgressionService) Snapshot(ctx context.Context, playerID string) (domain.ProgressionState, error) {
	args := m.Called(ctx, playerID)
	return args.Get(0).(domain.ProgressionState), args.Error(1)
}

func (m *MockProgressionService) Tick(ctx context.Context, playerID string, elapsedSeconds float64) (*progression.Result, error) {
	args := m.Called(ctx, playerID, elapsedSeconds)
	return resultArg(args, 0), args.Error(1)
}

func (m *MockProgressionService) Interact(ctx context.Context, playerID string, harmonyGain, essenceGain float64) (*progression.Result, error) {
	args := m.Called(ctx, playerID, harmonyGain, essenceGain)
	return resultArg(args, 0), args.Error(1)
}

func (m *MockProgressionService) Tap(ctx context.Context, playerID string) (*progression.Result, error) {
	args := m.Called(ctx, playerID)
	return resultArg(args, 0), args.Error(1)
}

func (m *MockProgressionService) Purchase(ctx context.Context, playerID, upgradeID string) (*progression.Result, error) {
	args := m.Called(ctx, playerID, upgradeID)
	return resultArg(args, 0), args.Error(1)
}

func (m *MockProgressionService) Save(ctx context.Context, playerID string) (*progression.SaveResult, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*progression.SaveResult), args.Error(1)
}

func (m *MockProgressionService) Reset(ctx context.Context, playerID string) error {
	args := m.Called(ctx, playerID)
	return args.Error(0)
}

func (m *MockProgressionService) SaveAll(ctx context.Context, reason string) (int, error) {
	args := m.Called(ctx, reason)
	return args.Int(0), args.Error(1)
}

func (m *MockProgressionService) TickAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockProgressionService) Restore(ctx context.Context, playerID string, state domain.ProgressionState) (*progression.Result, error) {
	args := m.Called(ctx, playerID, state)
	return resultArg(args, 0), args.Error(1)
}

func (m *MockProgressionService) Shutdown(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func resultArg(args mock.Arguments, i int) *progression.Result {
	if args.Get(i) == nil {
		return nil
	}
	return args.Get(i).(*progression.Result)
}

// MockHealthChecker mocks HealthChecker
type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) CheckHealth(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
