package repository

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"

	"github.com/xenking/shop-ledger/internal/domain/wallet"
	"github.com/xenking/shop-ledger/internal/txn"
)

const (
	getWalletSQL = `SELECT user_id, balance, created_at, updated_at
		FROM wallets WHERE user_id = $1`

	createWalletSQL = `INSERT INTO wallets (user_id, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`

	updateWalletSQL = `UPDATE wallets SET balance = $2, updated_at = $3
		WHERE user_id = $1`
)

var _ wallet.Repository = (*WalletRepository)(nil)

// WalletRepository implements wallet.Repository inside a transaction.
type WalletRepository struct {
	tx pgx.Tx
}

// Wallets binds a WalletRepository to s. It is a wallet.RepositoryFactory.
func Wallets(s txn.Session) wallet.Repository {
	return &WalletRepository{tx: session(s)}
}

// Get returns the user's wallet or wallet.ErrNotFound.
func (r *WalletRepository) Get(ctx context.Context, userID string) (*wallet.Wallet, error) {
	rows, err := r.tx.Query(ctx, getWalletSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("getting wallet %q: %w", userID, err)
	}

	w, err := pgx.CollectExactlyOneRow(rows, scanWallet)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, wallet.ErrNotFound
		}
		return nil, fmt.Errorf("getting wallet %q: %w", userID, err)
	}
	return &w, nil
}

// Create inserts a wallet. Losing an insert race to a concurrent unit is a
// conflict: the retried unit finds the wallet and credits it instead.
func (r *WalletRepository) Create(ctx context.Context, w *wallet.Wallet) error {
	_, err := r.tx.Exec(ctx, createWalletSQL, w.UserID, w.Balance, w.CreatedAt, w.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "") {
			return fmt.Errorf("creating wallet %q: %w", w.UserID, txn.ErrConflict)
		}
		return fmt.Errorf("creating wallet %q: %w", w.UserID, err)
	}
	return nil
}

// Update writes the wallet balance.
func (r *WalletRepository) Update(ctx context.Context, w *wallet.Wallet) error {
	tag, err := r.tx.Exec(ctx, updateWalletSQL, w.UserID, w.Balance, w.UpdatedAt)
	if err != nil {
		return fmt.Errorf("updating wallet %q: %w", w.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return wallet.ErrNotFound
	}
	return nil
}

func scanWallet(row pgx.CollectableRow) (wallet.Wallet, error) {
	var w wallet.Wallet
	err := row.Scan(&w.UserID, &w.Balance, &w.CreatedAt, &w.UpdatedAt)
	return w, err
}
