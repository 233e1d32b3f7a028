package wallet

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/shop-ledger/internal/txn"
)

// Sentinel errors for wallet operations.
var (
	ErrInvalidAmount     = errors.New("amount must be greater than 0")
	ErrInvalidUser       = errors.New("user id required")
	ErrSameWallet        = errors.New("cannot transfer to the same wallet")
	ErrNotFound          = errors.New("wallet not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// InsufficientFundsError reports a debit larger than the wallet balance.
type InsufficientFundsError struct {
	UserID    string
	Balance   decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for user %s: balance %s, requested %s",
		e.UserID, e.Balance.String(), e.Requested.String())
}

// Is makes errors.Is(err, ErrInsufficientFunds) hold.
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// Wallet is the balance owned by a single user. Balance is never negative in
// any committed state.
type Wallet struct {
	UserID    string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Repository reads and writes wallets through a single transactional session.
type Repository interface {
	// Get returns ErrNotFound when the user has no wallet.
	Get(ctx context.Context, userID string) (*Wallet, error)
	// Create fails transiently (txn.ErrConflict) when a concurrent unit
	// created the same wallet first.
	Create(ctx context.Context, w *Wallet) error
	Update(ctx context.Context, w *Wallet) error
}

// RepositoryFactory binds a Repository to a session.
type RepositoryFactory func(s txn.Session) Repository

// ValidateAmount rejects zero and negative amounts.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

// Credit returns w with amount added.
func Credit(w Wallet, amount decimal.Decimal, now time.Time) (Wallet, error) {
	if err := ValidateAmount(amount); err != nil {
		return w, err
	}
	w.Balance = w.Balance.Add(amount)
	w.UpdatedAt = now
	return w, nil
}

// Debit returns w with amount subtracted, or an *InsufficientFundsError if
// that would drive the balance negative.
func Debit(w Wallet, amount decimal.Decimal, now time.Time) (Wallet, error) {
	if err := ValidateAmount(amount); err != nil {
		return w, err
	}
	if w.Balance.LessThan(amount) {
		return w, &InsufficientFundsError{
			UserID:    w.UserID,
			Balance:   w.Balance,
			Requested: amount,
		}
	}
	w.Balance = w.Balance.Sub(amount)
	w.UpdatedAt = now
	return w, nil
}
