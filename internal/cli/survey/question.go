// Package survey turns parsed env tags and compose services into questions
// and resolves them to answers, by prompting or from defaults.
package survey

import "github.com/pirakansa/wpproject/internal/cli/answer"

// Kind distinguishes single-choice questions from the service checklist.
type Kind int

const (
	KindChoice Kind = iota
	KindMultiSelect
)

// ServicesName is the name of the multi-select service question.
const ServicesName = "services"

// Predicate decides visibility from the answers collected so far. It must not
// retain or modify the set it receives.
type Predicate func(prior answer.Set) bool

// Option is one selectable value. For the multi-select question Label is the
// service name and Value is unused.
type Option struct {
	Label   string
	Value   answer.Answer
	Checked bool
}

// Question is one prompt. Choice questions resolve to a single Option value;
// the multi-select question resolves to the service names it checks.
type Question struct {
	Kind        Kind
	Name        string
	Label       string
	Options     []Option
	Default     answer.Answer
	VisibleWhen Predicate
}

// Visible evaluates the question's predicate against prior.
func (q Question) Visible(prior answer.Set) bool {
	if q.VisibleWhen == nil {
		return true
	}
	return q.VisibleWhen(prior.Clone())
}

// DefaultIndex returns the position of the default option, or -1.
func (q Question) DefaultIndex() int {
	for i, opt := range q.Options {
		if opt.Value == q.Default {
			return i
		}
	}
	return -1
}

// Accepts reports whether a is one of the offered option values.
func (q Question) Accepts(a answer.Answer) bool {
	for _, opt := range q.Options {
		if opt.Value == a {
			return true
		}
	}
	return false
}
