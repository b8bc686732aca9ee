package domain

import (
	"encoding/json"
	"fmt"
)

// ResultType classifies a search result by the kind of source that
// produced it. The classification drives which provider's Execute is
// tried first and how the presentation layer groups results.
type ResultType string

// All result types. The set is closed: decoding an unknown value fails.
const (
	ResultTypeFile        ResultType = "file"
	ResultTypeApplication ResultType = "application"
	ResultTypeQuickAction ResultType = "quick_action"
	ResultTypeCalculator  ResultType = "calculator"
	ResultTypeClipboard   ResultType = "clipboard"
	ResultTypeBookmark    ResultType = "bookmark"
	ResultTypeRecentFile  ResultType = "recent_file"
	ResultTypeWebSearch   ResultType = "web_search"
)

// IsValid returns true if the result type is recognised.
func (t ResultType) IsValid() bool {
	switch t {
	case ResultTypeFile, ResultTypeApplication, ResultTypeQuickAction,
		ResultTypeCalculator, ResultTypeClipboard, ResultTypeBookmark,
		ResultTypeRecentFile, ResultTypeWebSearch:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t ResultType) String() string {
	return string(t)
}

// UnmarshalJSON validates the type against the closed set.
func (t *ResultType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	rt := ResultType(s)
	if !rt.IsValid() {
		return fmt.Errorf("%w: result type %q", ErrInvalidInput, s)
	}
	*t = rt
	return nil
}

// SearchResult represents a single hit from any provider.
//
// The wire shape is fixed: `result_type` serialises under the key "type"
// and `action` is an internally tagged variant (see ResultAction).
// Downstream consumers pattern-match on these tags, so the field names
// must not change.
type SearchResult struct {
	// ID uniquely identifies the result, namespaced by the producing
	// provider (e.g. "file:/home/u/notes.txt", "calculator:2+2").
	ID string `json:"id"`

	// Title is the primary display text.
	Title string `json:"title"`

	// Subtitle is the secondary display text (path, URL, timestamp).
	Subtitle string `json:"subtitle"`

	// Icon is an icon name or an encoded image, resolved by the
	// producing provider. Optional.
	Icon string `json:"icon,omitempty"`

	// Type classifies the result.
	Type ResultType `json:"type"`

	// Score is the relevance score; higher is more relevant. Providers
	// set a baseline; the ranking step applies final query bonuses.
	Score float64 `json:"score"`

	// Metadata carries provider-specific execution parameters
	// (file path, expression, command).
	Metadata map[string]any `json:"metadata"`

	// Action describes what executing this result does.
	Action ResultAction `json:"action"`
}

// MetadataString returns the string value stored under key, or "" when
// the key is absent or holds a non-string value.
func (r *SearchResult) MetadataString(key string) string {
	if r.Metadata == nil {
		return ""
	}
	s, _ := r.Metadata[key].(string)
	return s
}

// FilePath resolves the file path of a File-typed result: the OpenFile
// action's path when present, otherwise the "path" metadata entry.
func (r *SearchResult) FilePath() string {
	if r.Action.Type == ActionOpenFile && r.Action.Path != "" {
		return r.Action.Path
	}
	return r.MetadataString("path")
}
