package repositories

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrTerminalStatus      = errors.New("transaction already in a terminal status")
	ErrDatabaseOperation   = errors.New("database operation failed")
)
