package wallet

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/shop-ledger/internal/txn"
)

// Transfer is the committed outcome of a transfer between two wallets.
type Transfer struct {
	From Wallet
	To   Wallet
}

// Ledger owns every change to wallet balances.
//
// Each operation comes in two forms: the plain form opens its own unit of
// work, the Tx form joins a session the caller already holds. A caller that
// is inside a unit must use the Tx form; the plain form refuses to nest.
type Ledger struct {
	exec    *txn.Executor
	wallets RepositoryFactory
	now     func() time.Time
}

// NewLedger creates a Ledger running its units on exec.
func NewLedger(exec *txn.Executor, wallets RepositoryFactory) *Ledger {
	return &Ledger{
		exec:    exec,
		wallets: wallets,
		now:     time.Now,
	}
}

// Deposit adds amount to the user's wallet, creating it with amount as the
// initial balance when the user has none yet.
func (l *Ledger) Deposit(ctx context.Context, userID string, amount decimal.Decimal) (*Wallet, error) {
	if err := validate(userID, amount); err != nil {
		return nil, err
	}
	return txn.Run(ctx, l.exec, func(ctx context.Context, s txn.Session) (*Wallet, error) {
		return l.DepositTx(ctx, s, userID, amount)
	})
}

// DepositTx is Deposit within an existing session.
func (l *Ledger) DepositTx(ctx context.Context, s txn.Session, userID string, amount decimal.Decimal) (*Wallet, error) {
	if err := validate(userID, amount); err != nil {
		return nil, err
	}
	repo := l.wallets(s)
	now := l.now()

	current, err := repo.Get(ctx, userID)
	switch {
	case errors.Is(err, ErrNotFound):
		w := &Wallet{
			UserID:    userID,
			Balance:   amount,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := repo.Create(ctx, w); err != nil {
			return nil, errors.Wrap(err, "create wallet")
		}
		return w, nil
	case err != nil:
		return nil, errors.Wrap(err, "get wallet")
	}

	next, err := Credit(*current, amount, now)
	if err != nil {
		return nil, err
	}
	if err := repo.Update(ctx, &next); err != nil {
		return nil, errors.Wrap(err, "update wallet")
	}
	return &next, nil
}

// Withdraw subtracts amount from the user's wallet. It fails with ErrNotFound
// when the wallet does not exist and with *InsufficientFundsError when the
// balance is lower than amount.
func (l *Ledger) Withdraw(ctx context.Context, userID string, amount decimal.Decimal) (*Wallet, error) {
	if err := validate(userID, amount); err != nil {
		return nil, err
	}
	return txn.Run(ctx, l.exec, func(ctx context.Context, s txn.Session) (*Wallet, error) {
		return l.WithdrawTx(ctx, s, userID, amount)
	})
}

// WithdrawTx is Withdraw within an existing session.
func (l *Ledger) WithdrawTx(ctx context.Context, s txn.Session, userID string, amount decimal.Decimal) (*Wallet, error) {
	if err := validate(userID, amount); err != nil {
		return nil, err
	}
	repo := l.wallets(s)

	current, err := repo.Get(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "get wallet")
	}

	next, err := Debit(*current, amount, l.now())
	if err != nil {
		return nil, err
	}
	if err := repo.Update(ctx, &next); err != nil {
		return nil, errors.Wrap(err, "update wallet")
	}
	return &next, nil
}

// Transfer moves amount between two existing wallets. Either both balances
// change or neither does.
func (l *Ledger) Transfer(ctx context.Context, fromUserID, toUserID string, amount decimal.Decimal) (*Transfer, error) {
	if err := validateTransfer(fromUserID, toUserID, amount); err != nil {
		return nil, err
	}
	return txn.Run(ctx, l.exec, func(ctx context.Context, s txn.Session) (*Transfer, error) {
		return l.TransferTx(ctx, s, fromUserID, toUserID, amount)
	})
}

// TransferTx is Transfer within an existing session.
func (l *Ledger) TransferTx(ctx context.Context, s txn.Session, fromUserID, toUserID string, amount decimal.Decimal) (*Transfer, error) {
	if err := validateTransfer(fromUserID, toUserID, amount); err != nil {
		return nil, err
	}
	repo := l.wallets(s)
	now := l.now()

	// Both wallets are read before either is written so a missing receiver
	// fails the transfer without touching the sender.
	from, err := repo.Get(ctx, fromUserID)
	if err != nil {
		return nil, errors.Wrap(err, "get sender wallet")
	}
	to, err := repo.Get(ctx, toUserID)
	if err != nil {
		return nil, errors.Wrap(err, "get receiver wallet")
	}

	debited, err := Debit(*from, amount, now)
	if err != nil {
		return nil, err
	}
	credited, err := Credit(*to, amount, now)
	if err != nil {
		return nil, err
	}

	if err := repo.Update(ctx, &debited); err != nil {
		return nil, errors.Wrap(err, "update sender wallet")
	}
	if err := repo.Update(ctx, &credited); err != nil {
		return nil, errors.Wrap(err, "update receiver wallet")
	}
	return &Transfer{From: debited, To: credited}, nil
}

// Balance returns the user's current balance.
func (l *Ledger) Balance(ctx context.Context, userID string) (decimal.Decimal, error) {
	if userID == "" {
		return decimal.Zero, ErrInvalidUser
	}
	return txn.Run(ctx, l.exec, func(ctx context.Context, s txn.Session) (decimal.Decimal, error) {
		return l.BalanceTx(ctx, s, userID)
	})
}

// BalanceTx is Balance within an existing session.
func (l *Ledger) BalanceTx(ctx context.Context, s txn.Session, userID string) (decimal.Decimal, error) {
	w, err := l.wallets(s).Get(ctx, userID)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "get wallet")
	}
	return w.Balance, nil
}

func validate(userID string, amount decimal.Decimal) error {
	if userID == "" {
		return ErrInvalidUser
	}
	return ValidateAmount(amount)
}

func validateTransfer(fromUserID, toUserID string, amount decimal.Decimal) error {
	if fromUserID == "" || toUserID == "" {
		return ErrInvalidUser
	}
	if fromUserID == toUserID {
		return ErrSameWallet
	}
	return ValidateAmount(amount)
}
