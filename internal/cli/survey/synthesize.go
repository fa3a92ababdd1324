package survey

import (
	"strings"

	"github.com/pirakansa/wpproject/internal/cli/answer"
	"github.com/pirakansa/wpproject/internal/cli/compose"
	"github.com/pirakansa/wpproject/internal/cli/dotenv"
	"github.com/pirakansa/wpproject/internal/cli/profile"
)

const disabledLabel = "Disabled"

// EnvQuestions builds one choice question per choosable tag variable, in the
// order the variables first appear in the env file.
func EnvQuestions(env *dotenv.File, p *profile.Profile) []Question {
	names := env.Choosable()
	questions := make([]Question, 0, len(names))
	for _, name := range names {
		questions = append(questions, envQuestion(name, env.Entries(name), p))
	}
	return questions
}

func envQuestion(name string, entries []dotenv.Entry, p *profile.Profile) Question {
	q := Question{
		Kind:  KindChoice,
		Name:  name,
		Label: p.Label(name),
	}
	if !p.IsRequired(name) {
		q.Options = append(q.Options, Option{Label: disabledLabel, Value: answer.Disabled()})
	}
	for _, entry := range entries {
		q.Options = append(q.Options, Option{Label: entry.Value, Value: answer.Version(entry.Value)})
	}
	q.Default = envDefault(name, entries, p)
	if cond, ok := p.When[name]; ok {
		q.VisibleWhen = func(prior answer.Set) bool {
			return cond.Visible(prior.Truthy)
		}
	}
	return q
}

func envDefault(name string, entries []dotenv.Entry, p *profile.Profile) answer.Answer {
	if p.IsOptional(name) {
		return answer.Disabled()
	}
	if p.PrefersLargest(name) {
		values := make([]string, 0, len(entries))
		for _, entry := range entries {
			values = append(values, entry.Value)
		}
		if largest, ok := largestTag(values); ok {
			return answer.Version(largest)
		}
	}
	var marked []dotenv.Entry
	for _, entry := range entries {
		if entry.IsDefault {
			marked = append(marked, entry)
		}
	}
	if len(marked) == 1 {
		return answer.Version(marked[0].Value)
	}
	// Required variables have no disabled option to fall back to.
	if p.IsRequired(name) && len(entries) > 0 {
		return answer.Version(entries[0].Value)
	}
	return answer.Disabled()
}

// ServiceNames lists the compose blocks offered in the service checklist:
// those not already chosen through an env variable and not required.
func ServiceNames(env *dotenv.File, services *compose.File, p *profile.Profile) []string {
	taken := map[string]bool{}
	for _, name := range env.Choosable() {
		taken[strings.ToLower(name)] = true
	}
	var names []string
	for _, name := range services.Names() {
		if taken[name] || p.IsRequired(name) {
			continue
		}
		names = append(names, name)
	}
	return names
}

// ServiceQuestion builds the service checklist. It returns false when no
// service is left to ask about.
func ServiceQuestion(env *dotenv.File, services *compose.File, p *profile.Profile) (Question, bool) {
	names := ServiceNames(env, services, p)
	if len(names) == 0 {
		return Question{}, false
	}
	q := Question{
		Kind:  KindMultiSelect,
		Name:  ServicesName,
		Label: "Check the required services",
	}
	for _, name := range names {
		block, _ := services.Block(name)
		checked := !block.DisabledInSource
		if forced, ok := p.ForceDefault[name]; ok {
			checked = forced
		}
		q.Options = append(q.Options, Option{Label: name, Checked: checked})
	}
	return q, true
}
