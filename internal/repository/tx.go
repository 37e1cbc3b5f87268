package repository

import "context"

// Tx is the minimal transaction contract shared by database-backed stores
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
