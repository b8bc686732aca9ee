package quickaction

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/CodeZobac/better.finder/internal/core/domain"
	"github.com/CodeZobac/better.finder/internal/core/ports/driven"
	"github.com/CodeZobac/better.finder/internal/logger"
	"github.com/CodeZobac/better.finder/internal/providers"
)

// Ensure Provider implements the interface.
var _ driven.SearchProvider = (*Provider)(nil)

// maxResults caps how many quick actions one query returns.
const maxResults = 10

// Action pairs a system command with its display fields.
type Action struct {
	Name        string
	Description string
	Icon        string
	Command     domain.SystemCommand
}

// AllActions returns the fixed set of quick actions, in display order.
func AllActions() []Action {
	commands := domain.AllSystemCommands()
	actions := make([]Action, len(commands))
	for i, cmd := range commands {
		actions[i] = Action{
			Name:        cmd.DisplayName(),
			Description: cmd.Description(),
			Icon:        cmd.Icon(),
			Command:     cmd,
		}
	}
	return actions
}

// Provider surfaces system commands (shutdown, lock, sleep, ...) as
// search results.
type Provider struct {
	actions  []Action
	platform driven.PlatformServices
	enabled  bool
}

// New creates a quick action provider backed by platform for execution.
func New(platform driven.PlatformServices) *Provider {
	return &Provider{
		actions:  AllActions(),
		platform: platform,
		enabled:  true,
	}
}

// Name returns the provider's display name.
func (p *Provider) Name() string { return "QuickAction" }

// Priority returns the provider priority.
func (p *Provider) Priority() int { return 80 }

// IsEnabled reports whether the provider is consulted.
func (p *Provider) IsEnabled() bool { return p.enabled }

// Search matches the query against action names, best matches first.
func (p *Provider) Search(_ context.Context, query string) ([]domain.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return []domain.SearchResult{}, nil
	}

	results := make([]domain.SearchResult, 0, len(p.actions))
	for _, action := range p.actions {
		score, ok := matchScore(query, action.Name)
		if !ok {
			continue
		}
		results = append(results, p.buildResult(action, score))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > maxResults {
		results = results[:maxResults]
	}

	logger.Debug("Found %d matching quick actions", len(results))
	return results, nil
}

// Execute runs the system command carried by the result.
func (p *Provider) Execute(_ context.Context, result *domain.SearchResult) error {
	if result.Type != domain.ResultTypeQuickAction {
		return fmt.Errorf("%w: %s", domain.ErrWrongResultType, result.Type)
	}
	if result.Action.Type != domain.ActionExecuteCommand {
		return fmt.Errorf("%w: quick actions carry execute_command actions", domain.ErrInvalidInput)
	}

	cmd, ok := domain.ParseSystemCommand(result.Action.Command)
	if !ok {
		return fmt.Errorf("%w: command %q", domain.ErrInvalidInput, result.Action.Command)
	}
	if p.platform == nil {
		return fmt.Errorf("%w: no platform services wired", domain.ErrPlatformUnsupported)
	}

	logger.Info("Executing system command: %s", cmd)
	if err := p.platform.RunSystemCommand(cmd); err != nil {
		return fmt.Errorf("system command %s: %w", cmd, err)
	}
	return nil
}

// Initialize prepares the provider.
func (p *Provider) Initialize(context.Context) error {
	logger.Debug("Quick action provider initialized with %d actions", len(p.actions))
	return nil
}

// Shutdown releases resources.
func (p *Provider) Shutdown(context.Context) error { return nil }

// matchScore scores how well query matches name. Match classes are
// exclusive: the best one wins.
func matchScore(query, name string) (float64, bool) {
	queryLower := strings.ToLower(query)
	nameLower := strings.ToLower(name)

	switch {
	case nameLower == queryLower:
		return 100, true
	case strings.HasPrefix(nameLower, queryLower):
		return 90, true
	case strings.Contains(nameLower, queryLower):
		return 70, true
	case providers.ContainsInOrder(nameLower, queryLower):
		return 50, true
	default:
		return 0, false
	}
}

func (p *Provider) buildResult(action Action, score float64) domain.SearchResult {
	return domain.SearchResult{
		ID:       "quick_action:" + action.Command.String(),
		Title:    action.Name,
		Subtitle: action.Description,
		Icon:     action.Icon,
		Type:     domain.ResultTypeQuickAction,
		Score:    score,
		Metadata: map[string]any{
			"command":               action.Command.String(),
			"requires_confirmation": action.Command.RequiresConfirmation(),
		},
		Action: domain.ExecuteCommandAction(action.Command.CommandString(), nil),
	}
}
