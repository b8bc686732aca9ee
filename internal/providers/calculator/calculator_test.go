package calculator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeZobac/better.finder/internal/core/domain"
	"github.com/CodeZobac/better.finder/internal/core/ports/driven"
)

// stubPlatform implements only the clipboard operation the provider uses.
type stubPlatform struct {
	driven.PlatformServices
	copied []string
	err    error
}

func (s *stubPlatform) CopyText(text string) error {
	if s.err != nil {
		return s.err
	}
	s.copied = append(s.copied, text)
	return nil
}

func TestNew(t *testing.T) {
	provider := New(&stubPlatform{})

	require.NotNil(t, provider)
	assert.Equal(t, "Calculator", provider.Name())
	assert.Equal(t, 90, provider.Priority())
	assert.True(t, provider.IsEnabled())
}

func TestIsMathExpression(t *testing.T) {
	valid := []string{
		"2+2",
		"10 * 5",
		"(3 + 4) * 2",
		"100 / 4",
		"2.5 + 3.7",
		"2^10",
		"10%3",
		"42",
	}
	for _, expr := range valid {
		assert.True(t, IsMathExpression(expr), "expected %q to be an expression", expr)
	}

	invalid := []string{
		"hello",
		"2 + abc",
		"",
		"   ",
		"test 123",
		"search query",
	}
	for _, expr := range invalid {
		assert.False(t, IsMathExpression(expr), "expected %q not to be an expression", expr)
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"2+2", 4},
		{"10-5", 5},
		{"3*4", 12},
		{"20/4", 5},
		{"2 + 2", 4},
		{"10   *   5", 50},
		{"(2+3)*4", 20},
		{"2+3*4", 14},
		{"2.5+2.5", 5},
		{"10.5/2", 5.25},
		{"2^10", 1024},
		{"10%3", 1},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Evaluate(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_Invalid(t *testing.T) {
	for _, expr := range []string{"(2+3", "2+3)", "2+"} {
		_, err := Evaluate(expr)
		assert.Error(t, err, "expected %q to fail", expr)
	}
}

func TestEvaluate_RejectsNonFinite(t *testing.T) {
	_, err := Evaluate("1/0")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestFormatResult(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{4, "4"},
		{100, "100"},
		{-5, "-5"},
		{3.14, "3.14"},
		{2.5, "2.5"},
		{10.123456789, "10.123456789"},
		{5.0, "5"},
		{3.10, "3.1"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatResult(tt.value))
		})
	}
}

func TestProvider_Search(t *testing.T) {
	provider := New(&stubPlatform{})

	results, err := provider.Search(context.Background(), "2+2")

	require.NoError(t, err)
	require.Len(t, results, 1)

	result := results[0]
	assert.Equal(t, "calculator:2+2", result.ID)
	assert.Equal(t, "4", result.Title)
	assert.Equal(t, "2+2 = 4", result.Subtitle)
	assert.Equal(t, "calculator", result.Icon)
	assert.Equal(t, domain.ResultTypeCalculator, result.Type)
	assert.Equal(t, float64(100), result.Score)
	assert.Equal(t, "2+2", result.Metadata["expression"])
	assert.Equal(t, float64(4), result.Metadata["result"])
	assert.Equal(t, "4", result.Metadata["formatted_result"])
	assert.Equal(t, domain.ActionCopyToClipboard, result.Action.Type)
	assert.Equal(t, "4", result.Action.Content)
}

func TestProvider_Search_ComplexExpressions(t *testing.T) {
	provider := New(&stubPlatform{})

	tests := []struct {
		query string
		title string
	}{
		{"(2+3)*4", "20"},
		{"2+3*4", "14"},
		{"2.5+2.5", "5"},
		{"10*5", "50"},
	}

	for _, tt := range tests {
		results, err := provider.Search(context.Background(), tt.query)
		require.NoError(t, err)
		require.Len(t, results, 1, "query %q", tt.query)
		assert.Equal(t, tt.title, results[0].Title)
	}
}

func TestProvider_Search_TrimsQuery(t *testing.T) {
	provider := New(&stubPlatform{})

	results, err := provider.Search(context.Background(), "  2 + 2  ")

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "4", results[0].Title)
	assert.Equal(t, "calculator:2 + 2", results[0].ID)
}

func TestProvider_Search_NonMathQuery(t *testing.T) {
	provider := New(&stubPlatform{})

	for _, query := range []string{"hello world", "search query", ""} {
		results, err := provider.Search(context.Background(), query)
		require.NoError(t, err)
		assert.Empty(t, results, "query %q", query)
	}
}

func TestProvider_Search_InvalidExpressionReturnsEmpty(t *testing.T) {
	provider := New(&stubPlatform{})

	for _, query := range []string{"(2+3", "2+3)", "2+", "1/0"} {
		results, err := provider.Search(context.Background(), query)
		require.NoError(t, err, "query %q", query)
		assert.Empty(t, results, "query %q", query)
	}
}

func TestProvider_Execute(t *testing.T) {
	platform := &stubPlatform{}
	provider := New(platform)

	results, err := provider.Search(context.Background(), "6*7")
	require.NoError(t, err)
	require.Len(t, results, 1)

	err = provider.Execute(context.Background(), &results[0])

	require.NoError(t, err)
	assert.Equal(t, []string{"42"}, platform.copied)
}

func TestProvider_Execute_WrongResultType(t *testing.T) {
	provider := New(&stubPlatform{})

	result := domain.SearchResult{
		ID:     "file:/tmp/a.txt",
		Title:  "a.txt",
		Type:   domain.ResultTypeFile,
		Action: domain.CopyToClipboardAction("nope"),
	}
	err := provider.Execute(context.Background(), &result)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrWrongResultType))
}

func TestProvider_Execute_WrongAction(t *testing.T) {
	provider := New(&stubPlatform{})

	result := domain.SearchResult{
		ID:     "calculator:2+2",
		Title:  "4",
		Type:   domain.ResultTypeCalculator,
		Action: domain.OpenFileAction("/tmp/a.txt"),
	}
	err := provider.Execute(context.Background(), &result)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestProvider_Execute_NoPlatform(t *testing.T) {
	provider := New(nil)

	result := domain.SearchResult{
		ID:     "calculator:2+2",
		Title:  "4",
		Type:   domain.ResultTypeCalculator,
		Action: domain.CopyToClipboardAction("4"),
	}
	err := provider.Execute(context.Background(), &result)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrClipboardUnavailable))
}

func TestProvider_Execute_ClipboardError(t *testing.T) {
	platform := &stubPlatform{err: errors.New("no display")}
	provider := New(platform)

	result := domain.SearchResult{
		ID:     "calculator:2+2",
		Title:  "4",
		Type:   domain.ResultTypeCalculator,
		Action: domain.CopyToClipboardAction("4"),
	}
	err := provider.Execute(context.Background(), &result)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no display")
}

func TestProvider_Lifecycle(t *testing.T) {
	provider := New(&stubPlatform{})

	assert.NoError(t, provider.Initialize(context.Background()))
	assert.NoError(t, provider.Shutdown(context.Background()))
}
