// Package chain checks payment transactions against an Ethereum JSON-RPC node.
package chain

import (
	"context"
	"log/slog"
	"regexp"
	"time"

	"chaintrace/config"
	deliverycontext "chaintrace/internal/delivery/context"
	"chaintrace/internal/domain/service"
	"chaintrace/internal/errors"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/fx"
)

var txHashPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

// receiptFetcher is the part of *ethclient.Client the verifier needs.
type receiptFetcher interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

type receiptVerifier struct {
	client          receiptFetcher
	timeout         time.Duration
	initialInterval time.Duration
	logger          *slog.Logger
}

// VerifierParams holds dependencies for TransactionVerifier, injected by Fx
type VerifierParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewTransactionVerifier dials chain.rpcUrl when chain checks are enabled. Otherwise
// every hash is accepted as-is.
func NewTransactionVerifier(params VerifierParams) (service.TransactionVerifier, error) {
	cfg := params.Config.Chain
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Chain verification disabled, accepting transaction hashes as submitted")

		return acceptAllVerifier{}, nil
	}
	if cfg.RPCURL == "" {
		return nil, errors.New("chain.rpcUrl is required when chain verification is enabled")
	}

	client, err := ethclient.DialContext(params.Ctx, cfg.RPCURL)
	if err != nil {
		return nil, errors.Wrap(err, "dial ethereum rpc")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			client.Close()

			return nil
		},
	})

	return newReceiptVerifier(client, cfg.ReceiptTimeout, params.Logger), nil
}

func newReceiptVerifier(client receiptFetcher, timeout time.Duration, logger *slog.Logger) *receiptVerifier {
	return &receiptVerifier{
		client:          client,
		timeout:         timeout,
		initialInterval: time.Second,
		logger:          logger,
	}
}

// VerifyTransaction waits up to the receipt timeout for a successful receipt.
// Pending transactions are polled; reverted ones fail immediately.
func (v *receiptVerifier) VerifyTransaction(ctx context.Context, txHash string) error {
	if !txHashPattern.MatchString(txHash) {
		return errors.Wrapf(service.ErrTransactionNotConfirmed, "malformed transaction hash %q", txHash)
	}
	hash := common.HexToHash(txHash)

	operation := func() error {
		receipt, err := v.client.TransactionReceipt(ctx, hash)
		if errors.Is(err, ethereum.NotFound) {
			return errors.Wrap(service.ErrTransactionNotConfirmed, "receipt pending")
		}
		if err != nil {
			return errors.Wrap(err, "fetch receipt")
		}
		if receipt.Status != types.ReceiptStatusSuccessful {
			return backoff.Permanent(errors.Wrapf(service.ErrTransactionNotConfirmed, "transaction reverted in block %s", receipt.BlockNumber))
		}

		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = v.initialInterval
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = v.timeout

	notify := func(err error, next time.Duration) {
		deliverycontext.GetLoggerOrDefault(ctx, v.logger).Debug("Waiting for transaction receipt",
			slog.String("tx_hash", txHash),
			slog.String("reason", err.Error()),
			slog.Duration("next_retry_in", next),
		)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notify); err != nil {
		if errors.Is(err, service.ErrTransactionNotConfirmed) {
			return err
		}

		return errors.Wrap(service.ErrTransactionNotConfirmed, err.Error())
	}

	return nil
}

type acceptAllVerifier struct{}

func (acceptAllVerifier) VerifyTransaction(context.Context, string) error {
	return nil
}
