package calculator

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/Knetic/govaluate"

	"github.com/CodeZobac/better.finder/internal/core/domain"
	"github.com/CodeZobac/better.finder/internal/core/ports/driven"
	"github.com/CodeZobac/better.finder/internal/logger"
)

// Ensure Provider implements the interface.
var _ driven.SearchProvider = (*Provider)(nil)

// expressionPattern matches strings made only of digits, whitespace and
// arithmetic punctuation. Anything else is not worth parsing.
var expressionPattern = regexp.MustCompile(`^[\d\s+\-*/().^%]+$`)

// Provider evaluates arithmetic expressions typed into the search field.
type Provider struct {
	platform driven.PlatformServices
	enabled  bool
}

// New creates a calculator provider. Executing a result copies the
// formatted value to the clipboard through platform.
func New(platform driven.PlatformServices) *Provider {
	return &Provider{platform: platform, enabled: true}
}

// Name returns the provider's display name.
func (p *Provider) Name() string { return "Calculator" }

// Priority returns the provider priority.
func (p *Provider) Priority() int { return 90 }

// IsEnabled reports whether the provider is consulted.
func (p *Provider) IsEnabled() bool { return p.enabled }

// Search evaluates the query when it looks like arithmetic. Queries that
// are not expressions, and expressions that fail to evaluate, yield no
// results rather than an error.
func (p *Provider) Search(_ context.Context, query string) ([]domain.SearchResult, error) {
	trimmed := strings.TrimSpace(query)
	if !IsMathExpression(trimmed) {
		return []domain.SearchResult{}, nil
	}

	logger.Debug("Evaluating expression: %q", trimmed)

	value, err := Evaluate(trimmed)
	if err != nil {
		logger.Debug("Expression %q did not evaluate: %v", trimmed, err)
		return []domain.SearchResult{}, nil
	}

	return []domain.SearchResult{p.buildResult(trimmed, value)}, nil
}

// Execute copies the calculated value to the clipboard.
func (p *Provider) Execute(_ context.Context, result *domain.SearchResult) error {
	if result.Type != domain.ResultTypeCalculator {
		return fmt.Errorf("%w: %s", domain.ErrWrongResultType, result.Type)
	}
	if result.Action.Type != domain.ActionCopyToClipboard {
		return fmt.Errorf("%w: calculator results only copy to clipboard", domain.ErrInvalidInput)
	}
	if p.platform == nil {
		return domain.ErrClipboardUnavailable
	}

	logger.Info("Copying calculator result to clipboard: %s", result.Action.Content)
	if err := p.platform.CopyText(result.Action.Content); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// Initialize prepares the provider.
func (p *Provider) Initialize(context.Context) error {
	logger.Debug("Calculator provider initialized")
	return nil
}

// Shutdown releases resources.
func (p *Provider) Shutdown(context.Context) error { return nil }

func (p *Provider) buildResult(expression string, value float64) domain.SearchResult {
	formatted := FormatResult(value)
	return domain.SearchResult{
		ID:       "calculator:" + expression,
		Title:    formatted,
		Subtitle: fmt.Sprintf("%s = %s", expression, formatted),
		Icon:     "calculator",
		Type:     domain.ResultTypeCalculator,
		Score:    100,
		Metadata: map[string]any{
			"expression":       expression,
			"result":           value,
			"formatted_result": formatted,
		},
		Action: domain.CopyToClipboardAction(formatted),
	}
}

// IsMathExpression reports whether query is worth sending to the
// evaluator: only arithmetic characters, and either an operator or a
// plain number.
func IsMathExpression(query string) bool {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return false
	}
	if !expressionPattern.MatchString(trimmed) {
		return false
	}
	if strings.ContainsAny(trimmed, "+-*/^%") {
		return true
	}
	_, err := strconv.ParseFloat(trimmed, 64)
	return err == nil
}

// Evaluate computes the value of an arithmetic expression. The caret is
// the exponent operator; it is translated to govaluate's ** before
// parsing. Results that are not finite numbers are rejected.
func Evaluate(expr string) (float64, error) {
	normalized := strings.ReplaceAll(expr, "^", "**")

	parsed, err := govaluate.NewEvaluableExpression(normalized)
	if err != nil {
		return 0, fmt.Errorf("parse expression: %w", err)
	}

	value, err := parsed.Evaluate(nil)
	if err != nil {
		return 0, fmt.Errorf("evaluate expression: %w", err)
	}

	f, ok := value.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: expression is not numeric", domain.ErrInvalidInput)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: result is not a finite number", domain.ErrInvalidInput)
	}
	return f, nil
}

// FormatResult renders a value the way the result title shows it: whole
// numbers without decimals, everything else with up to ten decimal
// places and trailing zeros trimmed.
func FormatResult(value float64) string {
	if value == math.Trunc(value) && math.Abs(value) < 1e15 {
		return strconv.FormatInt(int64(value), 10)
	}
	formatted := strconv.FormatFloat(value, 'f', 10, 64)
	formatted = strings.TrimRight(formatted, "0")
	formatted = strings.TrimRight(formatted, ".")
	return formatted
}
