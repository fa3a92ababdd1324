// Package answer holds resolved configuration answers shared by the env and
// compose rewriters.
package answer

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Answer is one resolved value: a selected tag version, a disabled marker, or
// a service toggle.
type Answer struct {
	Version string
	On      bool
}

// Disabled is the falsy answer.
func Disabled() Answer {
	return Answer{}
}

// Version selects tag value v. An empty v is treated as disabled.
func Version(v string) Answer {
	return Answer{Version: v, On: v != ""}
}

// Toggle is a plain enabled/disabled answer without a version.
func Toggle(on bool) Answer {
	return Answer{On: on}
}

// Truthy reports whether the answer enables its target.
func (a Answer) Truthy() bool {
	return a.On
}

func (a Answer) String() string {
	if a.Version != "" {
		return a.Version
	}
	if a.On {
		return "true"
	}
	return "false"
}

// MarshalYAML encodes versions as strings and everything else as booleans.
func (a Answer) MarshalYAML() (any, error) {
	if a.On && a.Version != "" {
		return a.Version, nil
	}
	return a.On, nil
}

// UnmarshalYAML accepts a boolean or a scalar version.
func (a *Answer) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: answer must be a scalar", node.Line)
	}
	if node.Tag == "!!bool" {
		var on bool
		if err := node.Decode(&on); err != nil {
			return err
		}
		*a = Toggle(on)
		return nil
	}
	if node.Tag == "!!null" {
		*a = Disabled()
		return nil
	}
	*a = Version(node.Value)
	return nil
}

// Set maps a variable or service name to its answer.
type Set map[string]Answer

// Has reports whether name has an explicit entry.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Truthy reports whether name is present and enabled.
func (s Set) Truthy(name string) bool {
	return s[name].Truthy()
}

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Names returns the keys of s in sorted order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge combines sets; later sets override earlier keys.
func Merge(sets ...Set) Set {
	out := make(Set)
	for _, s := range sets {
		for k, v := range s {
			out[k] = v
		}
	}
	return out
}
