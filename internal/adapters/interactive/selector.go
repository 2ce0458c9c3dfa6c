package interactive

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/divaprotocol/diva-deploy/internal/config"
	"github.com/divaprotocol/diva-deploy/internal/domain"
	"github.com/divaprotocol/diva-deploy/internal/usecase"
	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
)

// SelectorAdapter handles interactive selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

// SelectTarget selects a deployment target from a list
func (s *SelectorAdapter) SelectTarget(ctx context.Context, targets []*domain.DeploymentTarget, prompt string) (*domain.DeploymentTarget, error) {
	if s.config.NonInteractive {
		return nil, fmt.Errorf("interactive selection not available in non-interactive mode")
	}

	if len(targets) == 0 {
		return nil, fmt.Errorf("no deployment targets configured")
	}

	if len(targets) == 1 {
		return targets[0], nil
	}

	options := formatTargetOptions(targets)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:             prompt,
		Items:             options,
		Templates:         templates,
		Size:              10,
		StartInSearchMode: true,
		Searcher:          createFuzzySearchFunc(options),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}

	return targets[index], nil
}

// SelectTargets lets the user pick any number of targets; the result keeps declaration order
func (s *SelectorAdapter) SelectTargets(ctx context.Context, targets []*domain.DeploymentTarget, prompt string) ([]*domain.DeploymentTarget, error) {
	if s.config.NonInteractive {
		return nil, fmt.Errorf("interactive selection not available in non-interactive mode")
	}

	if len(targets) == 0 {
		return nil, fmt.Errorf("no deployment targets configured")
	}

	if len(targets) == 1 {
		return targets, nil
	}

	return runMultiSelect(targets, prompt, tea.WithContext(ctx))
}

// formatTargetOptions creates display strings like "diva-staking  DIVAStaking(0x4565...)"
func formatTargetOptions(targets []*domain.DeploymentTarget) []string {
	options := make([]string, len(targets))
	for i, target := range targets {
		name := color.New(color.FgWhite, color.Bold).Sprint(target.Name)
		artifact := color.New(color.FgBlue).Sprintf("%s(%s)", target.Artifact, strings.Join(target.ConstructorArgs, ", "))
		options[i] = fmt.Sprintf("%s  %s", name, artifact)
	}
	return options
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		pattern := fuzzy.Find(input, []string{item})
		return len(pattern) > 0
	}
}

// Ensure the adapter implements the interface
var _ usecase.TargetSelector = (*SelectorAdapter)(nil)
