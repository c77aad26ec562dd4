package spc

import (
	"testing"
)

func TestSpecification_EveryRuleIsNamedAndCitesProvisions(t *testing.T) {
	rules := Spec.Rules()
	if len(rules) == 0 {
		t.Fatal("the rule set must not be empty")
	}
	seen := map[string]bool{}
	for _, rule := range rules {
		if rule.Name == "" {
			t.Error("rule without a name")
		}
		if seen[rule.Name] {
			t.Errorf("duplicate rule name %q", rule.Name)
		}
		seen[rule.Name] = true
		if len(rule.Provisions) == 0 {
			t.Errorf("rule %q cites no provisions", rule.Name)
		}
		for _, p := range rule.Provisions {
			if p == "" {
				t.Errorf("rule %q cites an empty provision", rule.Name)
			}
		}
	}
}

func TestSpecification_CoversEveryRuleFamily(t *testing.T) {
	required := []string{
		"sejm_eligibility",
		"senate_eligibility",
		"presidential_eligibility",
		"rights_restriction",
		"extradition",
		"no_confidence",
		"debt_ceiling",
		"referendum",
		"sejm_passes_bill",
		"sejm_overrides_veto",
		"sejm_passes_amendment",
	}
	names := map[string]bool{}
	for _, rule := range Spec.Rules() {
		names[rule.Name] = true
	}
	for _, name := range required {
		if !names[name] {
			t.Errorf("rule set lists no %q", name)
		}
	}
}
