package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Chidozie222/Hackathon-sub000/internal/domain"
)

// Client talks to the settlement ledger node over its REST API. Every
// request is bounded by the configured timeout; callers additionally bound
// multi-request operations (WaitForTransaction) through the context.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	pollInterval time.Duration
}

func NewClient(baseURL string, requestTimeout, pollInterval time.Duration) *Client {
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   &http.Client{Timeout: requestTimeout},
		pollInterval: pollInterval,
	}
}

type sequenceResponse struct {
	Sequence uint64 `json:"sequence"`
}

type submitRequest struct {
	Sender   string   `json:"sender"`
	Sequence uint64   `json:"sequence"`
	Function string   `json:"function"`
	Args     []string `json:"args"`
}

type submitResponse struct {
	TxRef string `json:"tx_ref"`
}

type txEvent struct {
	Type    string `json:"type"`
	Account string `json:"account"`
}

type txResponse struct {
	Status string    `json:"status"`
	Events []txEvent `json:"events"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (c *Client) PendingSequence(ctx context.Context, account string) (uint64, error) {
	return c.sequence(ctx, account, "pending")
}

func (c *Client) ConfirmedSequence(ctx context.Context, account string) (uint64, error) {
	return c.sequence(ctx, account, "confirmed")
}

func (c *Client) sequence(ctx context.Context, account, state string) (uint64, error) {
	var resp sequenceResponse
	url := fmt.Sprintf("%s/accounts/%s/sequence?state=%s", c.baseURL, account, state)
	if err := c.getJSON(ctx, url, &resp); err != nil {
		return 0, err
	}
	return resp.Sequence, nil
}

// SubmitTransaction signs and submits one transaction. The node's
// duplicate-submission failures are mapped to the typed errors the escrow
// manager recovers from.
func (c *Client) SubmitTransaction(ctx context.Context, tx *domain.LedgerTransaction) (string, error) {
	body, err := json.Marshal(submitRequest{
		Sender:   tx.Sender,
		Sequence: tx.Sequence,
		Function: tx.Function,
		Args:     tx.Args,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transactions", bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()

	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return "", err
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		var resp submitResponse
		if err := json.Unmarshal(responseBodyBytes, &resp); err != nil {
			return "", err
		}
		return resp.TxRef, nil
	}

	var errResp errorResponse
	if err := json.Unmarshal(responseBodyBytes, &errResp); err != nil {
		return "", fmt.Errorf("ledger returned status %d", response.StatusCode)
	}

	switch {
	case strings.Contains(errResp.Error, "transaction already known"):
		return "", domain.ErrTxAlreadyKnown
	case strings.Contains(errResp.Error, "sequence number too low"):
		return "", domain.ErrSequenceTooLow
	}
	return "", errors.New(errResp.Error)
}

// WaitForTransaction polls until the transaction confirms or the context
// expires.
func (c *Client) WaitForTransaction(ctx context.Context, txRef string) error {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		var resp txResponse
		if err := c.getJSON(ctx, fmt.Sprintf("%s/transactions/%s", c.baseURL, txRef), &resp); err != nil {
			return err
		}

		switch resp.Status {
		case "confirmed":
			return nil
		case "failed":
			return fmt.Errorf("transaction %s failed on chain", txRef)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// EscrowAccountOf resolves the escrow account created by a confirmed
// transaction from its emitted events.
func (c *Client) EscrowAccountOf(ctx context.Context, txRef string) (string, error) {
	var resp txResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/transactions/%s", c.baseURL, txRef), &resp); err != nil {
		return "", err
	}
	if resp.Status != "confirmed" {
		return "", fmt.Errorf("transaction %s is not confirmed yet", txRef)
	}
	for _, ev := range resp.Events {
		if ev.Type == "escrow_created" {
			return ev.Account, nil
		}
	}
	return "", fmt.Errorf("transaction %s has no escrow_created event", txRef)
}

// FindEscrowAccount is the reconciliation read: it asks the node for the
// escrow account the signer holds against a seller and amount, used when the
// original submission landed without a resolvable reference.
func (c *Client) FindEscrowAccount(ctx context.Context, sellerAddress, amount string) (string, error) {
	var resp struct {
		EscrowAccount string `json:"escrow_account"`
	}
	url := fmt.Sprintf("%s/escrows?seller=%s&amount=%s", c.baseURL, sellerAddress, amount)
	if err := c.getJSON(ctx, url, &resp); err != nil {
		return "", err
	}
	if resp.EscrowAccount == "" {
		return "", fmt.Errorf("no escrow found for seller %s", sellerAddress)
	}
	return resp.EscrowAccount, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	response, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		var errResp errorResponse
		if err := json.Unmarshal(responseBodyBytes, &errResp); err != nil {
			return fmt.Errorf("ledger returned status %d", response.StatusCode)
		}
		return errors.New(errResp.Error)
	}

	return json.Unmarshal(responseBodyBytes, out)
}
