package usecase

import (
	"context"
	"log/slog"

	"github.com/Chidozie222/Hackathon-sub000/internal/domain"
)

// ReconcilePendingEscrows backfills escrow accounts for orders whose
// create-escrow submission returned the pending shape (duplicate raced, or
// confirmation outlasted the bounded wait). An order that reached DELIVERED
// or a resolved dispute while the account was unresolved still owes its
// settlement, so the backfill also triggers the deferred release or refund.
// Runs periodically from main.
func (uc *DefaultOrderUsecase) ReconcilePendingEscrows(ctx context.Context) error {
	orders, err := uc.OrderRepo.FindPendingEscrows()
	if err != nil {
		return err
	}

	for _, order := range orders {
		account, err := uc.Escrow.FindEscrowAccount(ctx, order.SellerAddress, order.Price)
		if err != nil {
			slog.Warn("escrow reconciliation read failed", "order_id", order.ID, "error", err.Error())
			continue
		}

		updated, err := uc.OrderRepo.UpdateOrderFields(order.ID, map[string]any{"escrow_account": account})
		if err != nil {
			slog.Error("failed to backfill escrow account", "order_id", order.ID, "error", err.Error())
			continue
		}

		if uc.Metrics != nil {
			uc.Metrics.EscrowReconciledTotal.Inc()
		}
		slog.Info("escrow account backfilled", "order_id", updated.ID, "escrow_account", account)

		switch {
		case updated.Status == domain.StatusDelivered:
			if err := uc.releaseEscrowOnce(ctx, updated); err != nil {
				slog.Warn("deferred escrow release still failing", "order_id", updated.ID, "error", err.Error())
			}
		case updated.Status == domain.StatusDisputed && updated.Dispute.Resolved():
			if err := uc.settleDispute(ctx, updated, updated.Dispute.Decision); err != nil {
				slog.Warn("deferred dispute settlement still failing", "order_id", updated.ID, "error", err.Error())
			}
		}
	}

	return nil
}
