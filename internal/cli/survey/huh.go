package survey

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/pirakansa/wpproject/internal/cli/answer"
)

// HuhPrompter asks questions on a terminal with charmbracelet/huh forms.
type HuhPrompter struct {
	Input      io.Reader
	Output     io.Writer
	Accessible bool
}

// Choose renders a select list with the default option preselected.
func (p *HuhPrompter) Choose(ctx context.Context, q Question) (answer.Answer, error) {
	options := make([]huh.Option[int], 0, len(q.Options))
	for i, opt := range q.Options {
		options = append(options, huh.NewOption(opt.Label, i))
	}
	selected := q.DefaultIndex()
	if selected < 0 {
		selected = 0
	}
	field := huh.NewSelect[int]().
		Key(q.Name).
		Title(q.Label).
		Value(&selected).
		Options(options...)
	if err := p.run(ctx, field); err != nil {
		return answer.Answer{}, err
	}
	if selected < 0 || selected >= len(q.Options) {
		return answer.Answer{}, fmt.Errorf("selection %d out of range for %s", selected, q.Name)
	}
	return q.Options[selected].Value, nil
}

// Check renders the service checklist with default-checked entries selected.
func (p *HuhPrompter) Check(ctx context.Context, q Question) ([]string, error) {
	options := make([]huh.Option[string], 0, len(q.Options))
	var checked []string
	for _, opt := range q.Options {
		options = append(options, huh.NewOption(opt.Label, opt.Label).Selected(opt.Checked))
		if opt.Checked {
			checked = append(checked, opt.Label)
		}
	}
	field := huh.NewMultiSelect[string]().
		Key(q.Name).
		Title(q.Label).
		Value(&checked).
		Options(options...)
	if err := p.run(ctx, field); err != nil {
		return nil, err
	}
	return checked, nil
}

func (p *HuhPrompter) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).WithAccessible(p.Accessible)
	if p.Input != nil {
		form = form.WithInput(p.Input)
	}
	if p.Output != nil {
		form = form.WithOutput(p.Output)
	}
	err := form.RunWithContext(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}
