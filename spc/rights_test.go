package spc

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kgluszczyk/polish-constitution-as-code/common"
	"github.com/kgluszczyk/polish-constitution-as-code/st"
)

func lawfulRestriction() st.RightsRestriction {
	return st.RightsRestriction{
		Description:                "assembly permit requirement",
		ByStatute:                  true,
		NecessaryInDemocraticState: true,
		LegitimateAim:              true,
		Proportionate:              true,
		PreservesEssence:           true,
	}
}

func TestRightsRestriction_AllFiveConditionsSatisfied(t *testing.T) {
	if err := ValidateRightsRestriction(lawfulRestriction()); err != nil {
		t.Errorf("unexpected violation: %v", err)
	}
}

func TestRightsRestriction_SingleMissIsReported(t *testing.T) {
	tests := map[string]struct {
		mutate func(*st.RightsRestriction)
		reason string
	}{
		"not by statute": {
			func(r *st.RightsRestriction) { r.ByStatute = false },
			"not established by statute (ustawa)",
		},
		"not necessary": {
			func(r *st.RightsRestriction) { r.NecessaryInDemocraticState = false },
			"not necessary in a democratic state",
		},
		"no legitimate aim": {
			func(r *st.RightsRestriction) { r.LegitimateAim = false },
			"does not pursue a legitimate aim (security, public order, environment, health, public morals, or freedoms of others)",
		},
		"disproportionate": {
			func(r *st.RightsRestriction) { r.Proportionate = false },
			"not proportionate to the aim pursued",
		},
		"essence violated": {
			func(r *st.RightsRestriction) { r.PreservesEssence = false },
			"violates the essence of the freedom or right",
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			r := lawfulRestriction()
			test.mutate(&r)
			err := ValidateRightsRestriction(r)
			v, ok := common.AsViolation(err)
			if !ok {
				t.Fatalf("expected a violation, got %v", err)
			}
			if v.Provision != "31(3)" || v.Kind != common.DisproportionateRestriction {
				t.Errorf("unexpected violation identity: %v", v)
			}
			if diff := cmp.Diff([]string{test.reason}, v.Reasons); diff != "" {
				t.Errorf("unexpected reasons (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRightsRestriction_AllMissesReportedInArticleOrder(t *testing.T) {
	err := ValidateRightsRestriction(st.RightsRestriction{Description: "blanket surveillance"})
	v, ok := common.AsViolation(err)
	if !ok {
		t.Fatal("expected a violation")
	}
	want := []string{
		"not established by statute (ustawa)",
		"not necessary in a democratic state",
		"does not pursue a legitimate aim (security, public order, environment, health, public morals, or freedoms of others)",
		"not proportionate to the aim pursued",
		"violates the essence of the freedom or right",
	}
	if diff := cmp.Diff(want, v.Reasons); diff != "" {
		t.Errorf("unexpected reasons (-want +got):\n%s", diff)
	}
	if got, want := v.Message, `restriction "blanket surveillance" is unconstitutional`; got != want {
		t.Errorf("unexpected headline: %q", got)
	}
}
