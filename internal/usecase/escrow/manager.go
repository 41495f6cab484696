package escrow

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Chidozie222/Hackathon-sub000/internal/domain"
	"github.com/Chidozie222/Hackathon-sub000/internal/infrastructure/metrics"
)

const (
	fnCreateEscrow = "escrow::create"
	fnRelease      = "escrow::release"
	fnRefund       = "escrow::refund"
	fnRaiseDispute = "escrow::raise_dispute"
)

// Manager owns the single platform signing identity. Every outgoing
// transaction takes a fresh pending sequence number under the manager's
// lock; acquisition and submission happen inside the same critical section
// so two transactions can never race for one sequence slot.
type Manager struct {
	ledger        domain.LedgerClient
	signerAddress string

	confirmWait  time.Duration
	pollInterval time.Duration
	metrics      *metrics.OrderMetrics

	mu sync.Mutex
}

func NewManager(ledger domain.LedgerClient, signerAddress string, confirmWait, pollInterval time.Duration, m *metrics.OrderMetrics) *Manager {
	return &Manager{
		ledger:        ledger,
		signerAddress: signerAddress,
		confirmWait:   confirmWait,
		pollInterval:  pollInterval,
		metrics:       m,
	}
}

// submit acquires the signer lock, reads the pending sequence counter and
// submits in one critical section.
func (m *Manager) submit(ctx context.Context, function string, args ...string) (txRef string, seq uint64, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	seq, err = m.ledger.PendingSequence(ctx, m.signerAddress)
	if err != nil {
		return "", 0, &domain.UpstreamError{Service: "ledger", Err: fmt.Errorf("reading pending sequence: %w", err)}
	}

	txRef, err = m.ledger.SubmitTransaction(ctx, &domain.LedgerTransaction{
		Sender:   m.signerAddress,
		Sequence: seq,
		Function: function,
		Args:     args,
	})
	return txRef, seq, err
}

// CreateEscrow submits a create-escrow transaction naming the seller and the
// settlement amount. A duplicate submission that raced ("transaction already
// known") is waited out for up to confirmWait and then reported as a pending
// success with no address; "sequence number too low" means the transaction
// was already applied and gets the same pending shape. Callers treat Pending
// as success and rely on a later reconciliation read.
func (m *Manager) CreateEscrow(ctx context.Context, sellerAddress, amount string) (*domain.EscrowResult, error) {
	txRef, seq, err := m.submit(ctx, fnCreateEscrow, sellerAddress, amount)

	switch {
	case errors.Is(err, domain.ErrTxAlreadyKnown):
		m.count("create", "already_known")
		return m.awaitInFlight(ctx, seq)
	case errors.Is(err, domain.ErrSequenceTooLow):
		m.count("create", "already_applied")
		return &domain.EscrowResult{Pending: true}, nil
	case err != nil:
		m.count("create", "error")
		return nil, &domain.UpstreamError{Service: "ledger", Err: err}
	}

	waitCtx, cancel := context.WithTimeout(ctx, m.confirmWait)
	defer cancel()
	if err := m.ledger.WaitForTransaction(waitCtx, txRef); err != nil {
		m.count("create", "pending")
		return &domain.EscrowResult{TxRef: txRef, Pending: true}, nil
	}

	account, err := m.ledger.EscrowAccountOf(ctx, txRef)
	if err != nil {
		m.count("create", "pending")
		return &domain.EscrowResult{TxRef: txRef, Pending: true}, nil
	}

	m.count("create", "ok")
	return &domain.EscrowResult{TxRef: txRef, EscrowAccount: account}, nil
}

// awaitInFlight polls the confirmed sequence counter until the in-flight
// duplicate lands or the bounded interval runs out. Either way the result is
// the pending-success shape: the escrow was likely created but no address
// can be resolved from here.
func (m *Manager) awaitInFlight(ctx context.Context, seq uint64) (*domain.EscrowResult, error) {
	waitCtx, cancel := context.WithTimeout(ctx, m.confirmWait)
	defer cancel()

	ticker := time.NewTicker(m.pollInterval)
	defer ticker.Stop()

	for {
		confirmed, err := m.ledger.ConfirmedSequence(waitCtx, m.signerAddress)
		if err == nil && confirmed > seq {
			return &domain.EscrowResult{Pending: true}, nil
		}

		select {
		case <-waitCtx.Done():
			return &domain.EscrowResult{Pending: true}, nil
		case <-ticker.C:
		}
	}
}

// ReleaseEscrow releases the held funds to the seller.
func (m *Manager) ReleaseEscrow(ctx context.Context, escrowAccount string) (string, error) {
	txRef, _, err := m.submit(ctx, fnRelease, escrowAccount)
	if err != nil {
		m.count("release", "error")
		return "", &domain.UpstreamError{Service: "ledger", Err: err}
	}
	m.count("release", "ok")
	return txRef, nil
}

// RefundEscrow returns the held funds to the buyer side.
func (m *Manager) RefundEscrow(ctx context.Context, escrowAccount string) (string, error) {
	txRef, _, err := m.submit(ctx, fnRefund, escrowAccount)
	if err != nil {
		m.count("refund", "error")
		return "", &domain.UpstreamError{Service: "ledger", Err: err}
	}
	m.count("refund", "ok")
	return txRef, nil
}

// RaiseDispute records the dispute on chain and waits for confirmation.
// Dispute recording is not time-critical and callers want certainty.
func (m *Manager) RaiseDispute(ctx context.Context, escrowAccount, reason string) (string, error) {
	txRef, _, err := m.submit(ctx, fnRaiseDispute, escrowAccount, reason)
	if err != nil {
		m.count("raise_dispute", "error")
		return "", &domain.UpstreamError{Service: "ledger", Err: err}
	}

	waitCtx, cancel := context.WithTimeout(ctx, m.confirmWait)
	defer cancel()
	if err := m.ledger.WaitForTransaction(waitCtx, txRef); err != nil {
		m.count("raise_dispute", "error")
		return "", &domain.UpstreamError{Service: "ledger", Err: err}
	}

	m.count("raise_dispute", "ok")
	return txRef, nil
}

// FindEscrowAccount is the reconciliation read for pending creations.
func (m *Manager) FindEscrowAccount(ctx context.Context, sellerAddress, amount string) (string, error) {
	account, err := m.ledger.FindEscrowAccount(ctx, sellerAddress, amount)
	if err != nil {
		return "", &domain.UpstreamError{Service: "ledger", Err: err}
	}
	return account, nil
}

func (m *Manager) count(operation, outcome string) {
	if m.metrics != nil {
		m.metrics.EscrowSubmissionsTotal.WithLabelValues(operation, outcome).Inc()
	}
}
