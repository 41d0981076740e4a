package output

import (
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title string
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// RunWithSpinner executes action while showing a spinner on a terminal.
// Off a terminal the action runs directly. Returns the action's error.
func RunWithSpinner(action func() error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{title: "Working..."}
	for _, opt := range opts {
		opt(cfg)
	}

	if !IsTTY() {
		return action()
	}

	var actionErr error
	s := spinner.New().Title(cfg.title).Action(func() {
		actionErr = action()
	})
	if err := s.Run(); err != nil {
		return fmt.Errorf("spinner error: %w", err)
	}

	return actionErr
}
