package survey

import (
	"context"
	"errors"
	"fmt"

	"github.com/pirakansa/wpproject/internal/cli/answer"
	"github.com/pirakansa/wpproject/internal/cli/profile"
)

var (
	ErrAborted       = errors.New("prompt aborted")
	ErrNoPrompter    = errors.New("interactive mode requires a prompter")
	ErrInvalidPreset = errors.New("preset answer is not an offered option")
)

// Prompter asks a single question and returns the user's choice.
type Prompter interface {
	// Choose resolves a choice question to one of its option values.
	Choose(ctx context.Context, q Question) (answer.Answer, error)
	// Check resolves the multi-select question to the checked labels.
	Check(ctx context.Context, q Question) ([]string, error)
}

// CollectOptions controls how questions are resolved.
type CollectOptions struct {
	// AssumeYes resolves every question to its default without prompting.
	AssumeYes bool
	Prompter  Prompter
	// Preset answers replace prompts and defaults for the names they hold.
	Preset  answer.Set
	Profile *profile.Profile
}

// CollectEnv resolves choice questions in order. Each visibility predicate
// sees only the answers gathered before its question. Every name the profile
// gates with a condition ends up in the result, as disabled if it was hidden.
func CollectEnv(ctx context.Context, questions []Question, opts CollectOptions) (answer.Set, error) {
	if !opts.AssumeYes && opts.Prompter == nil {
		return nil, ErrNoPrompter
	}
	answers := answer.Set{}
	for _, q := range questions {
		if !q.Visible(answers) {
			continue
		}
		a, err := resolveChoice(ctx, q, opts)
		if err != nil {
			return nil, err
		}
		answers[q.Name] = a
	}
	if opts.Profile != nil {
		for _, name := range opts.Profile.ConditionalNames() {
			if !answers.Has(name) {
				answers[name] = answer.Disabled()
			}
		}
	}
	return answers, nil
}

func resolveChoice(ctx context.Context, q Question, opts CollectOptions) (answer.Answer, error) {
	if preset, ok := opts.Preset[q.Name]; ok {
		if !q.Accepts(preset) {
			return answer.Answer{}, fmt.Errorf("%w: %s=%s", ErrInvalidPreset, q.Name, preset)
		}
		return preset, nil
	}
	if opts.AssumeYes {
		return q.Default, nil
	}
	a, err := opts.Prompter.Choose(ctx, q)
	if err != nil {
		return answer.Answer{}, err
	}
	if !q.Accepts(a) {
		return answer.Answer{}, fmt.Errorf("prompt returned %s for %s, which is not an option", a, q.Name)
	}
	return a, nil
}

// CollectServices resolves the service checklist to one toggle per offered
// service.
func CollectServices(ctx context.Context, q Question, opts CollectOptions) (answer.Set, error) {
	if q.Kind != KindMultiSelect {
		return nil, fmt.Errorf("question %s is not a multi-select", q.Name)
	}
	q = applyServicePreset(q, opts.Preset)

	var checked []string
	switch {
	case opts.AssumeYes || presetCovers(q, opts.Preset):
		for _, opt := range q.Options {
			if opt.Checked {
				checked = append(checked, opt.Label)
			}
		}
	case opts.Prompter == nil:
		return nil, ErrNoPrompter
	default:
		var err error
		checked, err = opts.Prompter.Check(ctx, q)
		if err != nil {
			return nil, err
		}
	}

	selected := map[string]bool{}
	for _, name := range checked {
		selected[name] = true
	}
	answers := answer.Set{}
	for _, opt := range q.Options {
		answers[opt.Label] = answer.Toggle(selected[opt.Label])
	}
	return answers, nil
}

func applyServicePreset(q Question, preset answer.Set) Question {
	options := make([]Option, len(q.Options))
	for i, opt := range q.Options {
		if a, ok := preset[opt.Label]; ok {
			opt.Checked = a.Truthy()
		}
		options[i] = opt
	}
	q.Options = options
	return q
}

func presetCovers(q Question, preset answer.Set) bool {
	for _, opt := range q.Options {
		if !preset.Has(opt.Label) {
			return false
		}
	}
	return true
}
