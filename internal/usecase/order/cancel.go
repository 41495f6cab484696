package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/Chidozie222/Hackathon-sub000/internal/domain"
)

// RequestCancellation opens a dispute on behalf of the buyer. The local
// DISPUTED record is authoritative; mirroring the dispute to the ledger is
// best-effort and a failure there surfaces only as a warning.
func (uc *DefaultOrderUsecase) RequestCancellation(ctx context.Context, orderID, reason string) (*domain.Order, error) {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	if order.Dispute != nil && order.Dispute.Requested {
		return nil, domain.ErrDisputeAlreadyRequested
	}
	switch order.Status {
	case domain.StatusPaid, domain.StatusPickedUp, domain.StatusInTransit:
	default:
		return nil, domain.NewTransitionError(orderID, "cancellation", order.Status,
			domain.StatusPaid, domain.StatusPickedUp, domain.StatusInTransit)
	}

	order, err = uc.OrderRepo.UpdateOrderFields(orderID, map[string]any{
		"status":            domain.StatusDisputed,
		"dispute_requested": true,
		"dispute_reason":    reason,
	})
	if err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.DisputesOpenedTotal.Inc()
	}

	var warn error
	if order.EscrowAccount != "" {
		if _, mirrorErr := uc.Escrow.RaiseDispute(ctx, order.EscrowAccount, reason); mirrorErr != nil {
			slog.Warn("failed to mirror dispute to ledger", "order_id", orderID, "error", mirrorErr.Error())
			warn = mirrorErr
		}
	}

	uc.publishDisputeEvent(order, "opened")

	return order, warn
}

// ResolveDispute runs the adjudication engine and applies its verdict. A
// PAY_SELLER decision on an order whose delivery never started resumes the
// delivery (status returns to PAID); every other combination records the
// settlement and leaves the order in DISPUTED.
func (uc *DefaultOrderUsecase) ResolveDispute(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	if order.Status != domain.StatusDisputed {
		return nil, domain.NewTransitionError(orderID, "dispute resolution", order.Status, domain.StatusDisputed)
	}
	if order.Dispute == nil || !order.Dispute.Requested {
		return nil, domain.ErrNoDispute
	}
	if order.Dispute.Resolved() {
		return nil, domain.ErrDisputeAlreadyResolved
	}

	verdict := uc.Disputes.Decide(ctx, order.Agreement, order.Dispute.Reason)

	resume := verdict.Decision == domain.DecisionPaySeller && !order.DeliveryStarted()

	now := time.Now()
	fields := map[string]any{
		"dispute_decision":    string(verdict.Decision),
		"dispute_explanation": verdict.Explanation,
		"dispute_resolved_at": &now,
	}
	if resume {
		fields["status"] = domain.StatusPaid
	}

	order, err = uc.OrderRepo.UpdateOrderFields(orderID, fields)
	if err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.DisputeDecisionsTotal.WithLabelValues(string(verdict.Decision), verdict.Path).Inc()
	}

	var warn error
	if !resume {
		warn = uc.settleDispute(ctx, order, verdict.Decision)
	}

	uc.publishDisputeEvent(order, "resolved")
	uc.notifyCallback(order)

	return order, warn
}

// settleDispute moves the escrowed funds according to the terminal decision,
// guarded by the SettledAmount marker so a replay never settles twice.
func (uc *DefaultOrderUsecase) settleDispute(ctx context.Context, order *domain.Order, decision domain.Decision) error {
	if order.EscrowAccount == "" || order.SettledAmount != "" {
		return nil
	}

	var txRef string
	var err error
	if decision == domain.DecisionRefundBuyer {
		txRef, err = uc.Escrow.RefundEscrow(ctx, order.EscrowAccount)
	} else {
		txRef, err = uc.Escrow.ReleaseEscrow(ctx, order.EscrowAccount)
	}
	if err != nil {
		slog.Error("dispute settlement failed, resolution recorded locally", "order_id", order.ID, "decision", decision, "error", err.Error())
		return err
	}

	updated, err := uc.OrderRepo.UpdateOrderFields(order.ID, map[string]any{
		"settled_amount": order.Price,
		"escrow_tx_ref":  txRef,
	})
	if err != nil {
		slog.Error("failed to record dispute settlement", "order_id", order.ID, "error", err.Error())
		return nil
	}
	*order = *updated

	return nil
}
