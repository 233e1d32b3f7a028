package memory

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/xenking/shop-ledger/internal/domain/wallet"
	"github.com/xenking/shop-ledger/internal/txn"
)

var _ wallet.Repository = (*WalletRepository)(nil)

// WalletRepository implements wallet.Repository on a memory Session.
type WalletRepository struct {
	s *Session
}

// Wallets binds a WalletRepository to s. It is a wallet.RepositoryFactory.
func Wallets(s txn.Session) wallet.Repository {
	return &WalletRepository{s: session(s)}
}

// Get returns the user's wallet or wallet.ErrNotFound.
func (r *WalletRepository) Get(_ context.Context, userID string) (*wallet.Wallet, error) {
	v, err := r.s.get(key{tableWallets, userID})
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, wallet.ErrNotFound
	}
	w := v.(wallet.Wallet)
	return &w, nil
}

// Create stores a new wallet. A wallet created by a concurrent session that
// committed first surfaces as a conflict at commit or here.
func (r *WalletRepository) Create(_ context.Context, w *wallet.Wallet) error {
	k := key{tableWallets, w.UserID}
	v, err := r.s.get(k)
	if err != nil {
		return err
	}
	if v != nil {
		return errors.Wrapf(txn.ErrConflict, "wallet %q already exists", w.UserID)
	}
	return r.s.put(k, *w)
}

// Update replaces the stored wallet.
func (r *WalletRepository) Update(_ context.Context, w *wallet.Wallet) error {
	k := key{tableWallets, w.UserID}
	v, err := r.s.get(k)
	if err != nil {
		return err
	}
	if v == nil {
		return wallet.ErrNotFound
	}
	return r.s.put(k, *w)
}
