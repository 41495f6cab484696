package dispute

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Chidozie222/Hackathon-sub000/internal/domain"
)

// Verdict is the engine's output: a decision, why, and which path produced
// it ("reasoning" or the deterministic rule number).
type Verdict struct {
	Decision    domain.Decision
	Explanation string
	Path        string
}

// Engine adjudicates a cancellation against the order's agreement text. The
// reasoning service is the primary path; the deterministic rules are the
// correctness backstop and run whenever the service is unavailable, errors,
// or answers with anything but the two allowed literals.
type Engine struct {
	reasoning domain.ReasoningClient
	timeout   time.Duration
}

func NewEngine(reasoning domain.ReasoningClient, timeout time.Duration) *Engine {
	return &Engine{reasoning: reasoning, timeout: timeout}
}

func (e *Engine) Decide(ctx context.Context, agreement, reason string) Verdict {
	if e.reasoning != nil {
		callCtx, cancel := context.WithTimeout(ctx, e.timeout)
		decision, explanation, err := e.reasoning.Analyze(callCtx, agreement, reason)
		cancel()

		if err == nil && domain.ValidDecision(decision) {
			return Verdict{Decision: domain.Decision(decision), Explanation: explanation, Path: "reasoning"}
		}
		if err != nil {
			slog.Warn("reasoning service failed, using deterministic rules", "error", err)
		} else {
			slog.Warn("reasoning service returned invalid decision, using deterministic rules", "decision", decision)
		}
	}

	return fallbackDecision(agreement, reason)
}

var remorsePhrases = []string{
	"changed my mind",
	"change my mind",
	"changed her mind",
	"changed his mind",
	"too expensive",
	"don't want it anymore",
	"do not want it anymore",
	"no longer want",
	"no longer need",
	"found it cheaper",
	"found a better price",
	"regret",
}

var qualityPhrases = []string{
	"broken",
	"damaged",
	"defective",
	"faulty",
	"not working",
	"doesn't work",
	"does not work",
	"stopped working",
	"cracked",
	"scratch",
	"torn",
	"dent",
	"missing part",
	"poor quality",
	"bad quality",
	"fake",
	"counterfeit",
	"wrong item",
	"not as described",
}

var disclaimerPhrases = []string{
	"as-is",
	"as is",
	"defect",
	"used",
	"scratch",
	"worn",
	"wear",
	"refurbished",
	"second-hand",
	"secondhand",
	"no returns",
	"final sale",
	"minor flaw",
}

var stopWords = map[string]bool{
	"this": true, "that": true, "with": true, "have": true, "will": true,
	"from": true, "they": true, "been": true, "were": true, "does": true,
	"item": true, "order": true, "would": true, "should": true, "about": true,
	"there": true, "their": true, "which": true, "when": true, "what": true,
}

// fallbackDecision applies the deterministic precedence rules; the first
// match wins. The tie-breaks in the later rules deliberately favor the
// seller whenever the complaint echoes a term of the agreement.
func fallbackDecision(agreement, reason string) Verdict {
	reasonLower := strings.ToLower(reason)
	agreementLower := strings.ToLower(agreement)

	if phrase := matchAny(reasonLower, remorsePhrases); phrase != "" {
		return Verdict{
			Decision:    domain.DecisionPaySeller,
			Explanation: fmt.Sprintf("cancellation reason indicates buyer's remorse (%q); the agreed sale stands", phrase),
			Path:        "rule1",
		}
	}

	shared := sharedTerms(agreementLower, reasonLower)
	quality := matchAny(reasonLower, qualityPhrases)
	disclaimer := matchAny(agreementLower, disclaimerPhrases)

	if len(shared) > 0 && quality == "" {
		return Verdict{
			Decision:    domain.DecisionPaySeller,
			Explanation: fmt.Sprintf("the complaint refers to %q, a term already stated in the agreement", shared[0]),
			Path:        "rule2",
		}
	}

	if quality != "" && disclaimer != "" {
		return Verdict{
			Decision:    domain.DecisionPaySeller,
			Explanation: fmt.Sprintf("the agreement discloses the item's condition (%q), which covers the reported issue (%q)", disclaimer, quality),
			Path:        "rule3",
		}
	}

	if quality != "" && disclaimer == "" {
		return Verdict{
			Decision:    domain.DecisionRefundBuyer,
			Explanation: fmt.Sprintf("the complaint reports an undisclosed quality issue (%q) and the agreement carries no condition disclaimer", quality),
			Path:        "rule4",
		}
	}

	if len(shared) > 0 && quality != "" {
		return Verdict{
			Decision:    domain.DecisionPaySeller,
			Explanation: fmt.Sprintf("the complaint overlaps the agreement on %q; the disclosed terms prevail", shared[0]),
			Path:        "rule5",
		}
	}

	if len(shared) > 0 {
		return Verdict{
			Decision:    domain.DecisionPaySeller,
			Explanation: fmt.Sprintf("the complaint shares the term %q with the agreement", shared[0]),
			Path:        "rule6",
		}
	}
	return Verdict{
		Decision:    domain.DecisionRefundBuyer,
		Explanation: "the complaint matches nothing in the agreement; ambiguity is resolved in the buyer's favor",
		Path:        "rule6",
	}
}

func matchAny(text string, phrases []string) string {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return p
		}
	}
	return ""
}

// sharedTerms returns the tokens present in both texts, with stop-words
// removed and tokens of three characters or fewer ignored.
func sharedTerms(agreement, reason string) []string {
	agreementTokens := map[string]bool{}
	for _, tok := range tokenize(agreement) {
		agreementTokens[tok] = true
	}

	var shared []string
	seen := map[string]bool{}
	for _, tok := range tokenize(reason) {
		if agreementTokens[tok] && !seen[tok] {
			shared = append(shared, tok)
			seen[tok] = true
		}
	}
	return shared
}

func tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9')
	})

	var tokens []string
	for _, f := range fields {
		if len(f) <= 3 || stopWords[f] {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
