package postgres

// Transaction error messages
const (
	ErrMsgBeginTxFailed  = "failed to begin transaction"
	ErrMsgCommitTxFailed = "failed to commit transaction"
)
