package profile

import (
	"testing"
)

func TestDefaultProfileIsValid(t *testing.T) {
	p := Default()
	NormalizeProfile(p)
	if err := ValidateProfile(p); err != nil {
		t.Fatalf("default profile invalid: %v", err)
	}
	if !p.IsRequired("PHP") || p.IsRequired("MARIADB") {
		t.Fatalf("unexpected required table: %v", p.Required)
	}
	if !p.IsOptional("POSTGRES") || !p.PrefersLargest("REDIS") {
		t.Fatalf("unexpected optional/largest tables")
	}
	if got := p.Label("SOLR"); got != "Apache Solr" {
		t.Fatalf("unexpected label: %s", got)
	}
	if got := p.Label("WEBGRIND"); got != "WEBGRIND" {
		t.Fatalf("expected label fallback to name, got %s", got)
	}
}

func TestNormalizeProfileFillsDefaults(t *testing.T) {
	p := &Profile{Required: []string{" PHP ", ""}}
	NormalizeProfile(p)

	if p.Version != DefaultVersion {
		t.Fatalf("unexpected version: %d", p.Version)
	}
	if len(p.Required) != 1 || p.Required[0] != "PHP" {
		t.Fatalf("unexpected required: %q", p.Required)
	}
	if p.Labels == nil || p.ForceDefault == nil || p.When == nil {
		t.Fatalf("expected maps to be initialized")
	}
}

func TestValidateProfileRejectsInvalidTables(t *testing.T) {
	cases := []struct {
		name string
		p    Profile
	}{
		{name: "version", p: Profile{Version: 7}},
		{name: "required and optional", p: Profile{Version: 1, Required: []string{"PHP"}, Optional: []string{"PHP"}}},
		{name: "empty condition", p: Profile{Version: 1, When: map[string]Condition{"POSTGRES": {}}}},
		{name: "self dependency", p: Profile{Version: 1, When: map[string]Condition{"POSTGRES": {Unless: []string{"POSTGRES"}}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := ValidateProfile(&tc.p); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestConditionVisible(t *testing.T) {
	answers := map[string]bool{"MARIADB": true}
	truthy := func(name string) bool { return answers[name] }

	if (Condition{Unless: []string{"MARIADB"}}).Visible(truthy) {
		t.Fatalf("expected unless MARIADB to hide when MARIADB is truthy")
	}
	if !(Condition{If: []string{"MARIADB"}}).Visible(truthy) {
		t.Fatalf("expected if MARIADB to show when MARIADB is truthy")
	}
	if !(Condition{Unless: []string{"REDIS"}}).Visible(truthy) {
		t.Fatalf("expected unless REDIS to show when REDIS is unanswered")
	}
}

func TestIsRemoteLocation(t *testing.T) {
	if !IsRemoteLocation("https://example.com/wpproject.yaml") {
		t.Fatalf("expected https location to be remote")
	}
	if IsRemoteLocation("./wpproject.yaml") {
		t.Fatalf("expected relative path to be local")
	}
}
