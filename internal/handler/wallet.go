package handler

import (
	"context"

	"github.com/xenking/shop-ledger/gen/oas"
	"github.com/xenking/shop-ledger/internal/domain/wallet"
)

func walletToOAS(w wallet.Wallet) oas.Wallet {
	return oas.Wallet{UserID: w.UserID, Balance: w.Balance.String()}
}

// GetWallet returns the caller's balance.
func (h *Handler) GetWallet(ctx context.Context) (*oas.Wallet, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	balance, err := h.ledger.Balance(ctx, id.UserID)
	if err != nil {
		return nil, failed("get balance", err)
	}
	resp := walletToOAS(wallet.Wallet{UserID: id.UserID, Balance: balance})
	return &resp, nil
}

// DepositToWallet credits the caller's wallet.
func (h *Handler) DepositToWallet(ctx context.Context, req *oas.AmountReq) (*oas.Wallet, error) {
	const op = "deposit"
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	amount, err := money(req.Amount)
	if err != nil {
		return nil, failed(op, err)
	}
	w, err := h.ledger.Deposit(ctx, id.UserID, amount)
	if err != nil {
		return nil, failed(op, err)
	}
	resp := walletToOAS(*w)
	return &resp, nil
}

// WithdrawFromWallet debits the caller's wallet.
func (h *Handler) WithdrawFromWallet(ctx context.Context, req *oas.AmountReq) (*oas.Wallet, error) {
	const op = "withdraw"
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	amount, err := money(req.Amount)
	if err != nil {
		return nil, failed(op, err)
	}
	w, err := h.ledger.Withdraw(ctx, id.UserID, amount)
	if err != nil {
		return nil, failed(op, err)
	}
	resp := walletToOAS(*w)
	return &resp, nil
}

// TransferBetweenWallets moves funds from the caller to another user. Only
// the sender's balance is returned.
func (h *Handler) TransferBetweenWallets(ctx context.Context, req *oas.TransferReq) (*oas.TransferResult, error) {
	const op = "transfer"
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	amount, err := money(req.Amount)
	if err != nil {
		return nil, failed(op, err)
	}
	t, err := h.ledger.Transfer(ctx, id.UserID, req.To, amount)
	if err != nil {
		return nil, failed(op, err)
	}
	return &oas.TransferResult{
		From:     walletToOAS(t.From),
		ToUserID: t.To.UserID,
		Amount:   amount.String(),
	}, nil
}
