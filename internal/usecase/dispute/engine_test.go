package dispute

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Chidozie222/Hackathon-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
)

type mockReasoning struct {
	analyzeFn func(ctx context.Context, agreement, reason string) (string, string, error)
}

func (m *mockReasoning) Analyze(ctx context.Context, agreement, reason string) (string, string, error) {
	return m.analyzeFn(ctx, agreement, reason)
}

func TestFallbackRules(t *testing.T) {
	tests := []struct {
		name      string
		agreement string
		reason    string
		decision  domain.Decision
		path      string
	}{
		{
			name:      "disclaimer covers reported scratch",
			agreement: "Item sold as-is, may have minor scratches",
			reason:    "it has a scratch",
			decision:  domain.DecisionPaySeller,
			path:      "rule3",
		},
		{
			name:      "undisclosed quality issue refunds buyer",
			agreement: "Brand new, sealed box",
			reason:    "item arrived broken",
			decision:  domain.DecisionRefundBuyer,
			path:      "rule4",
		},
		{
			name:      "buyer remorse pays seller regardless of agreement",
			agreement: "Brand new, sealed box",
			reason:    "I changed my mind",
			decision:  domain.DecisionPaySeller,
			path:      "rule1",
		},
		{
			name:      "remorse wins over everything else",
			agreement: "",
			reason:    "too expensive, found it cheaper elsewhere",
			decision:  domain.DecisionPaySeller,
			path:      "rule1",
		},
		{
			name:      "shared term without quality complaint pays seller",
			agreement: "Vintage leather jacket, brown color",
			reason:    "the jacket is not what I expected",
			decision:  domain.DecisionPaySeller,
			path:      "rule2",
		},
		{
			name:      "unrelated complaint defaults to buyer",
			agreement: "Vintage leather jacket",
			reason:    "seller was rude to me",
			decision:  domain.DecisionRefundBuyer,
			path:      "rule6",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := fallbackDecision(tt.agreement, tt.reason)
			assert.Equal(t, tt.decision, v.Decision)
			assert.Equal(t, tt.path, v.Path)
			assert.NotEmpty(t, v.Explanation)
		})
	}
}

func TestDecideUsesReasoningService(t *testing.T) {
	engine := NewEngine(&mockReasoning{
		analyzeFn: func(ctx context.Context, agreement, reason string) (string, string, error) {
			return "REFUND_BUYER", "defect was not disclosed", nil
		},
	}, time.Second)

	v := engine.Decide(context.Background(), "Brand new", "arrived broken")
	assert.Equal(t, domain.DecisionRefundBuyer, v.Decision)
	assert.Equal(t, "reasoning", v.Path)
	assert.Equal(t, "defect was not disclosed", v.Explanation)
}

func TestDecideFallsBackOnError(t *testing.T) {
	engine := NewEngine(&mockReasoning{
		analyzeFn: func(ctx context.Context, agreement, reason string) (string, string, error) {
			return "", "", errors.New("service unavailable")
		},
	}, time.Second)

	v := engine.Decide(context.Background(), "Brand new, sealed box", "item arrived broken")
	assert.Equal(t, domain.DecisionRefundBuyer, v.Decision)
	assert.Equal(t, "rule4", v.Path)
}

func TestDecideFallsBackOnInvalidLiteral(t *testing.T) {
	engine := NewEngine(&mockReasoning{
		analyzeFn: func(ctx context.Context, agreement, reason string) (string, string, error) {
			return "SPLIT_THE_DIFFERENCE", "compromise", nil
		},
	}, time.Second)

	v := engine.Decide(context.Background(), "Brand new", "I changed my mind")
	assert.Equal(t, domain.DecisionPaySeller, v.Decision)
	assert.Equal(t, "rule1", v.Path)
}

func TestDecideWithoutReasoningClient(t *testing.T) {
	engine := NewEngine(nil, time.Second)

	v := engine.Decide(context.Background(), "Item sold as-is", "it has a scratch")
	assert.Equal(t, domain.DecisionPaySeller, v.Decision)
}

func TestSharedTermsIgnoresShortAndStopWords(t *testing.T) {
	shared := sharedTerms("the red bicycle with a bell", "bicycle bell is red")
	assert.Contains(t, shared, "bicycle")
	assert.Contains(t, shared, "bell")
	assert.NotContains(t, shared, "red")
	assert.NotContains(t, shared, "the")
}
