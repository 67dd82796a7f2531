package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// ErrCancelled is returned when the user aborts a prompt (e.g. Ctrl+C).
var ErrCancelled = errors.New("prompt cancelled by user")

// Confirmer asks yes/no questions. The non-interactive flag and test doubles
// both satisfy this contract without a real terminal.
type Confirmer interface {
	// Confirm asks the question and returns the answer. Implementations
	// default to "yes" when no explicit answer is possible.
	Confirm(question string) (bool, error)
}

// NewConfirmer returns the Confirmer appropriate for the session: an
// auto-confirming one when noPrompt is set or no TTY is attached, otherwise
// an interactive huh-based prompt.
func NewConfirmer(noPrompt bool, hm *HeadlessManager) Confirmer {
	if hm == nil {
		hm = NewHeadlessManager()
	}
	if noPrompt || hm.IsHeadless() {
		return &AutoConfirmer{Answer: true}
	}
	return &promptConfirmer{}
}

// AutoConfirmer answers every question with a fixed value. Used for
// --no-prompt sessions and as a test double.
type AutoConfirmer struct {
	Answer bool
}

// Confirm returns the fixed answer without prompting.
func (c *AutoConfirmer) Confirm(_ string) (bool, error) {
	return c.Answer, nil
}

// promptConfirmer renders an interactive yes/no prompt on the terminal.
type promptConfirmer struct{}

// Confirm runs a single huh confirm field as its own form.
func (c *promptConfirmer) Confirm(question string) (bool, error) {
	answer := true

	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(question).
			Affirmative("Yes").
			Negative("No").
			Value(&answer),
	)).WithTheme(newPromptTheme())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, ErrCancelled
		}
		return false, fmt.Errorf("confirm prompt: %w", err)
	}
	return answer, nil
}
