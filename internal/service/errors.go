package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/hance08/tally/internal/store"
)

var (
	ErrAccountNotFound     = errors.New("no such account")
	ErrTransactionNotFound = errors.New("no such transaction")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrInvalidTransfer     = errors.New("invalid transfer")
	ErrInvalidAccount      = errors.New("invalid account")
	ErrTimeout             = errors.New("transfer timed out")
	ErrStorage             = errors.New("storage failure")
)

// ErrorKind tells a caller why an operation failed, so it can branch on the
// reason rather than only on the fact of failure.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindNotFound
	KindInsufficientFunds
	KindInvalid
	KindTimeout
	KindStorage
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNotFound:
		return "not_found"
	case KindInsufficientFunds:
		return "insufficient_funds"
	case KindInvalid:
		return "invalid_transfer"
	case KindTimeout:
		return "timeout"
	default:
		return "storage_failure"
	}
}

// KindOf classifies err. Anything unrecognised is a storage failure.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrAccountNotFound), errors.Is(err, ErrTransactionNotFound):
		return KindNotFound
	case errors.Is(err, ErrInsufficientFunds):
		return KindInsufficientFunds
	case errors.Is(err, ErrInvalidTransfer), errors.Is(err, ErrInvalidAccount), errors.Is(err, store.ErrAccountExists):
		return KindInvalid
	case errors.Is(err, ErrTimeout):
		return KindTimeout
	default:
		return KindStorage
	}
}

// Retryable reports whether repeating the same call may succeed. Only opaque
// storage failures qualify; every other kind follows from the current state.
func Retryable(err error) bool {
	return KindOf(err) == KindStorage
}

// classify turns whatever escaped a store transaction into one of the
// service sentinels.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if KindOf(err) != KindStorage || errors.Is(err, ErrStorage) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %w", ErrStorage, err)
}
