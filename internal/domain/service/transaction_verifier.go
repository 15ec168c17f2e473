package service

import (
	"context"

	"chaintrace/internal/errors"
)

// ErrTransactionNotConfirmed means no successful receipt exists for the hash.
var ErrTransactionNotConfirmed = errors.New("transaction not confirmed")

// TransactionVerifier checks that a payment transaction was mined successfully.
type TransactionVerifier interface {
	VerifyTransaction(ctx context.Context, txHash string) error
}
