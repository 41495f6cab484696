package domain

import "context"

// LedgerTransaction is a value-transfer call signed by the platform identity.
type LedgerTransaction struct {
	Sender   string
	Sequence uint64
	Function string
	Args     []string
}

// LedgerClient talks to the settlement ledger node. SubmitTransaction maps
// the node's duplicate-submission errors to ErrTxAlreadyKnown and
// ErrSequenceTooLow so the escrow manager can recover from races.
type LedgerClient interface {
	PendingSequence(ctx context.Context, account string) (uint64, error)
	ConfirmedSequence(ctx context.Context, account string) (uint64, error)
	SubmitTransaction(ctx context.Context, tx *LedgerTransaction) (string, error)
	WaitForTransaction(ctx context.Context, txRef string) error
	EscrowAccountOf(ctx context.Context, txRef string) (string, error)
	FindEscrowAccount(ctx context.Context, sellerAddress, amount string) (string, error)
}

// EscrowResult is the outcome of a create-escrow submission. Pending means
// the transaction is likely applied but no escrow account could be resolved
// yet; callers treat it as success and rely on a reconciliation read.
type EscrowResult struct {
	TxRef         string
	EscrowAccount string
	Pending       bool
}

// EscrowService is the custody side-effect port used by the order state
// machine.
type EscrowService interface {
	CreateEscrow(ctx context.Context, sellerAddress, amount string) (*EscrowResult, error)
	ReleaseEscrow(ctx context.Context, escrowAccount string) (string, error)
	RefundEscrow(ctx context.Context, escrowAccount string) (string, error)
	RaiseDispute(ctx context.Context, escrowAccount, reason string) (string, error)
	FindEscrowAccount(ctx context.Context, sellerAddress, amount string) (string, error)
}
