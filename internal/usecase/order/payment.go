package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/Chidozie222/Hackathon-sub000/internal/domain"
)

// ConfirmPayment moves the order to PAID and submits the create-escrow
// transaction. The PAID transition is authoritative: a ledger failure is
// returned as a warning alongside the updated order, never as a rollback.
func (uc *DefaultOrderUsecase) ConfirmPayment(ctx context.Context, orderID, paymentRef, sellerAddress string) (*domain.Order, error) {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	// Replayed confirmation: the order already went PAID, and an order with
	// an escrow account must never submit a second create transaction.
	if order.Status == domain.StatusPaid {
		return order, nil
	}
	if order.Status != domain.StatusPendingPayment {
		return nil, domain.NewTransitionError(orderID, "payment confirmation", order.Status, domain.StatusPendingPayment)
	}

	now := time.Now()
	order, err = uc.OrderRepo.UpdateOrderFields(orderID, map[string]any{
		"status":         domain.StatusPaid,
		"accepted_at":    &now,
		"payment_ref":    paymentRef,
		"seller_address": sellerAddress,
	})
	if err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.OrdersPaidTotal.Inc()
	}

	var warn error
	if order.EscrowAccount == "" {
		result, escrowErr := uc.Escrow.CreateEscrow(ctx, sellerAddress, order.Price)
		if escrowErr != nil {
			slog.Error("escrow creation failed, order stays PAID", "order_id", orderID, "error", escrowErr.Error())
			warn = escrowErr
		} else {
			fields := map[string]any{"escrow_tx_ref": result.TxRef}
			if !result.Pending {
				fields["escrow_account"] = result.EscrowAccount
			}
			updated, updateErr := uc.OrderRepo.UpdateOrderFields(orderID, fields)
			if updateErr != nil {
				slog.Error("failed to record escrow reference", "order_id", orderID, "error", updateErr.Error())
			} else {
				order = updated
			}
		}
	}

	uc.publishOrderEvent(order, "payment_confirmed")
	uc.notifyCallback(order)

	return order, warn
}
