package escrow

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Chidozie222/Hackathon-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockLedger struct {
	pendingFn   func(ctx context.Context, account string) (uint64, error)
	confirmedFn func(ctx context.Context, account string) (uint64, error)
	submitFn    func(ctx context.Context, tx *domain.LedgerTransaction) (string, error)
	waitFn      func(ctx context.Context, txRef string) error
	accountOfFn func(ctx context.Context, txRef string) (string, error)
	findFn      func(ctx context.Context, sellerAddress, amount string) (string, error)
}

func (m *mockLedger) PendingSequence(ctx context.Context, account string) (uint64, error) {
	return m.pendingFn(ctx, account)
}
func (m *mockLedger) ConfirmedSequence(ctx context.Context, account string) (uint64, error) {
	return m.confirmedFn(ctx, account)
}
func (m *mockLedger) SubmitTransaction(ctx context.Context, tx *domain.LedgerTransaction) (string, error) {
	return m.submitFn(ctx, tx)
}
func (m *mockLedger) WaitForTransaction(ctx context.Context, txRef string) error {
	return m.waitFn(ctx, txRef)
}
func (m *mockLedger) EscrowAccountOf(ctx context.Context, txRef string) (string, error) {
	return m.accountOfFn(ctx, txRef)
}
func (m *mockLedger) FindEscrowAccount(ctx context.Context, sellerAddress, amount string) (string, error) {
	return m.findFn(ctx, sellerAddress, amount)
}

func newTestManager(l domain.LedgerClient) *Manager {
	return NewManager(l, "0xsigner", 200*time.Millisecond, 10*time.Millisecond, nil)
}

func TestCreateEscrowConfirmed(t *testing.T) {
	var submitted *domain.LedgerTransaction
	l := &mockLedger{
		pendingFn: func(ctx context.Context, account string) (uint64, error) { return 7, nil },
		submitFn: func(ctx context.Context, tx *domain.LedgerTransaction) (string, error) {
			submitted = tx
			return "tx-1", nil
		},
		waitFn:      func(ctx context.Context, txRef string) error { return nil },
		accountOfFn: func(ctx context.Context, txRef string) (string, error) { return "0xescrow", nil },
	}

	result, err := newTestManager(l).CreateEscrow(context.Background(), "0xseller", "49.99")
	require.NoError(t, err)
	assert.False(t, result.Pending)
	assert.Equal(t, "tx-1", result.TxRef)
	assert.Equal(t, "0xescrow", result.EscrowAccount)

	require.NotNil(t, submitted)
	assert.Equal(t, uint64(7), submitted.Sequence)
	assert.Equal(t, "0xsigner", submitted.Sender)
	assert.Equal(t, []string{"0xseller", "49.99"}, submitted.Args)
}

func TestCreateEscrowAlreadyKnownWaitsThenPending(t *testing.T) {
	var confirmed uint64 = 4
	var mu sync.Mutex
	l := &mockLedger{
		pendingFn: func(ctx context.Context, account string) (uint64, error) { return 4, nil },
		submitFn: func(ctx context.Context, tx *domain.LedgerTransaction) (string, error) {
			return "", domain.ErrTxAlreadyKnown
		},
		confirmedFn: func(ctx context.Context, account string) (uint64, error) {
			mu.Lock()
			defer mu.Unlock()
			confirmed++
			return confirmed, nil
		},
	}

	result, err := newTestManager(l).CreateEscrow(context.Background(), "0xseller", "10")
	require.NoError(t, err)
	assert.True(t, result.Pending)
	assert.Empty(t, result.EscrowAccount)
}

func TestCreateEscrowAlreadyKnownTimesOutToPending(t *testing.T) {
	l := &mockLedger{
		pendingFn: func(ctx context.Context, account string) (uint64, error) { return 4, nil },
		submitFn: func(ctx context.Context, tx *domain.LedgerTransaction) (string, error) {
			return "", domain.ErrTxAlreadyKnown
		},
		confirmedFn: func(ctx context.Context, account string) (uint64, error) { return 3, nil },
	}

	start := time.Now()
	result, err := newTestManager(l).CreateEscrow(context.Background(), "0xseller", "10")
	require.NoError(t, err)
	assert.True(t, result.Pending)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestCreateEscrowSequenceTooLowIsAlreadyApplied(t *testing.T) {
	l := &mockLedger{
		pendingFn: func(ctx context.Context, account string) (uint64, error) { return 2, nil },
		submitFn: func(ctx context.Context, tx *domain.LedgerTransaction) (string, error) {
			return "", domain.ErrSequenceTooLow
		},
	}

	result, err := newTestManager(l).CreateEscrow(context.Background(), "0xseller", "10")
	require.NoError(t, err)
	assert.True(t, result.Pending)
}

func TestCreateEscrowLedgerDownIsUpstreamError(t *testing.T) {
	l := &mockLedger{
		pendingFn: func(ctx context.Context, account string) (uint64, error) {
			return 0, errors.New("connection refused")
		},
	}

	_, err := newTestManager(l).CreateEscrow(context.Background(), "0xseller", "10")
	var upstream *domain.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "ledger", upstream.Service)
}

func TestConcurrentSubmissionsGetDistinctSequences(t *testing.T) {
	var mu sync.Mutex
	next := uint64(0)
	seen := map[uint64]bool{}

	l := &mockLedger{
		pendingFn: func(ctx context.Context, account string) (uint64, error) {
			mu.Lock()
			defer mu.Unlock()
			return next, nil
		},
		submitFn: func(ctx context.Context, tx *domain.LedgerTransaction) (string, error) {
			mu.Lock()
			defer mu.Unlock()
			if seen[tx.Sequence] {
				return "", domain.ErrTxAlreadyKnown
			}
			seen[tx.Sequence] = true
			next++
			return "tx", nil
		},
		confirmedFn: func(ctx context.Context, account string) (uint64, error) {
			mu.Lock()
			defer mu.Unlock()
			return next, nil
		},
		waitFn:      func(ctx context.Context, txRef string) error { return nil },
		accountOfFn: func(ctx context.Context, txRef string) (string, error) { return "0xescrow", nil },
	}

	m := newTestManager(l)

	const n = 8
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.CreateEscrow(context.Background(), "0xseller", "10")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// Acquire-then-submit under one lock: every submission got its own slot.
	assert.Len(t, seen, n)
}

func TestReleaseEscrowTakesFreshSequence(t *testing.T) {
	var sequences []uint64
	next := uint64(10)
	l := &mockLedger{
		pendingFn: func(ctx context.Context, account string) (uint64, error) { return next, nil },
		submitFn: func(ctx context.Context, tx *domain.LedgerTransaction) (string, error) {
			sequences = append(sequences, tx.Sequence)
			next++
			return "tx-r", nil
		},
	}

	m := newTestManager(l)
	_, err := m.ReleaseEscrow(context.Background(), "0xescrow")
	require.NoError(t, err)
	_, err = m.ReleaseEscrow(context.Background(), "0xescrow")
	require.NoError(t, err)

	assert.Equal(t, []uint64{10, 11}, sequences)
}

func TestRaiseDisputeWaitsForConfirmation(t *testing.T) {
	waited := false
	l := &mockLedger{
		pendingFn: func(ctx context.Context, account string) (uint64, error) { return 1, nil },
		submitFn: func(ctx context.Context, tx *domain.LedgerTransaction) (string, error) {
			return "tx-d", nil
		},
		waitFn: func(ctx context.Context, txRef string) error {
			waited = true
			return nil
		},
	}

	txRef, err := newTestManager(l).RaiseDispute(context.Background(), "0xescrow", "undisclosed damage")
	require.NoError(t, err)
	assert.Equal(t, "tx-d", txRef)
	assert.True(t, waited)
}

func TestRaiseDisputeConfirmationFailure(t *testing.T) {
	l := &mockLedger{
		pendingFn: func(ctx context.Context, account string) (uint64, error) { return 1, nil },
		submitFn: func(ctx context.Context, tx *domain.LedgerTransaction) (string, error) {
			return "tx-d", nil
		},
		waitFn: func(ctx context.Context, txRef string) error {
			return errors.New("timed out")
		},
	}

	_, err := newTestManager(l).RaiseDispute(context.Background(), "0xescrow", "reason")
	var upstream *domain.UpstreamError
	assert.ErrorAs(t, err, &upstream)
}
