package profile

import (
	"fmt"
	"net/url"
	"slices"
	"sort"
	"strings"
)

const (
	DefaultVersion  = 1
	DefaultFileName = "wpproject.yaml"
)

// Default returns the tables used for a docker4wordpress + Bedrock skeleton.
func Default() *Profile {
	return &Profile{
		Version:  DefaultVersion,
		Required: []string{"PHP", "NGINX", "traefik", "portainer", "docker-sync", "files"},
		Optional: []string{"NODE", "VARNISH", "SOLR", "ELASTICSEARCH", "KIBANA", "POSTGRES"},
		Labels: map[string]string{
			"MARIADB":       "MariaDB",
			"PHP":           "PHP",
			"NGINX":         "Nginx",
			"REDIS":         "Redis",
			"NODE":          "Node.js",
			"VARNISH":       "Varnish",
			"SOLR":          "Apache Solr",
			"ELASTICSEARCH": "Elasticsearch",
			"KIBANA":        "Kibana",
			"POSTGRES":      "PostgreSQL",
		},
		ForceDefault:        map[string]bool{"pma": true},
		ForceDefaultLargest: []string{"MARIADB", "PHP", "NGINX", "REDIS"},
		When: map[string]Condition{
			"POSTGRES": {Unless: []string{"MARIADB"}},
		},
	}
}

func NormalizeProfile(p *Profile) {
	if p.Version == 0 {
		p.Version = DefaultVersion
	}
	if p.Labels == nil {
		p.Labels = map[string]string{}
	}
	if p.ForceDefault == nil {
		p.ForceDefault = map[string]bool{}
	}
	if p.When == nil {
		p.When = map[string]Condition{}
	}
	p.Required = trimNames(p.Required)
	p.Optional = trimNames(p.Optional)
	p.ForceDefaultLargest = trimNames(p.ForceDefaultLargest)
}

func ValidateProfile(p *Profile) error {
	if p.Version != DefaultVersion {
		return fmt.Errorf("unsupported profile version %d", p.Version)
	}
	for _, name := range p.Optional {
		if slices.Contains(p.Required, name) {
			return fmt.Errorf("%q cannot be both required and optional", name)
		}
	}
	for _, name := range sortedKeys(p.When) {
		cond := p.When[name]
		if len(cond.If) == 0 && len(cond.Unless) == 0 {
			return fmt.Errorf("when.%s must list if or unless names", name)
		}
		for _, dep := range append(append([]string{}, cond.If...), cond.Unless...) {
			if strings.TrimSpace(dep) == "" {
				return fmt.Errorf("when.%s contains an empty name", name)
			}
			if dep == name {
				return fmt.Errorf("when.%s depends on itself", name)
			}
		}
	}
	return nil
}

func IsRemoteLocation(value string) bool {
	parsed, err := url.Parse(strings.TrimSpace(value))
	if err != nil {
		return false
	}
	return parsed.Scheme == "http" || parsed.Scheme == "https"
}

func (p *Profile) IsRequired(name string) bool {
	return slices.Contains(p.Required, name)
}

func (p *Profile) IsOptional(name string) bool {
	return slices.Contains(p.Optional, name)
}

func (p *Profile) PrefersLargest(name string) bool {
	return slices.Contains(p.ForceDefaultLargest, name)
}

// Label returns the display name for name, falling back to name itself.
func (p *Profile) Label(name string) string {
	if label := strings.TrimSpace(p.Labels[name]); label != "" {
		return label
	}
	return name
}

// ConditionalNames returns every name with a visibility condition, sorted.
func (p *Profile) ConditionalNames() []string {
	return sortedKeys(p.When)
}

// Visible evaluates c against truthy, which reports whether an earlier answer
// enabled the named option.
func (c Condition) Visible(truthy func(name string) bool) bool {
	for _, name := range c.If {
		if !truthy(name) {
			return false
		}
	}
	for _, name := range c.Unless {
		if truthy(name) {
			return false
		}
	}
	return true
}

func trimNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
