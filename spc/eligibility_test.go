package spc

import (
	"strings"
	"testing"
	"time"

	"github.com/kgluszczyk/polish-constitution-as-code/common"
	"github.com/kgluszczyk/polish-constitution-as-code/st"
)

var electionDay = time.Date(2027, time.October, 10, 0, 0, 0, 0, time.UTC)

func candidate(born time.Time, signatures int) st.Candidacy {
	return st.Candidacy{
		Citizen: st.Citizen{
			Name:          "Maria Wiśniewska",
			DateOfBirth:   born,
			PolishCitizen: true,
		},
		ElectionDate: electionDay,
		Signatures:   signatures,
	}
}

func bornYearsBeforeElection(years int) time.Time {
	return electionDay.AddDate(-years, 0, 0)
}

func TestEligibility_AgeBoundaries(t *testing.T) {
	tests := map[string]struct {
		rule     interface{ Check(st.Candidacy) error }
		born     time.Time
		eligible bool
	}{
		"sejm at exactly 21": {
			SejmEligibility, bornYearsBeforeElection(21), true,
		},
		"sejm a day short of 21": {
			SejmEligibility, bornYearsBeforeElection(21).AddDate(0, 0, 1), false,
		},
		"senate at exactly 30": {
			SenateEligibility, bornYearsBeforeElection(30), true,
		},
		"senate a day short of 30": {
			SenateEligibility, bornYearsBeforeElection(30).AddDate(0, 0, 1), false,
		},
		"president at exactly 35": {
			PresidentialEligibility, bornYearsBeforeElection(35), true,
		},
		"president a day short of 35": {
			PresidentialEligibility, bornYearsBeforeElection(35).AddDate(0, 0, 1), false,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			err := test.rule.Check(candidate(test.born, common.MinCandidateSignatures))
			if test.eligible && err != nil {
				t.Errorf("expected eligibility, got %v", err)
			}
			if !test.eligible {
				v, ok := common.AsViolation(err)
				if !ok || v.Kind != common.IneligibleSubject {
					t.Errorf("expected an ineligibility violation, got %v", err)
				}
			}
		})
	}
}

func TestEligibility_ReportsEveryFailureInArticleOrder(t *testing.T) {
	c := candidate(bornYearsBeforeElection(19), 0)
	c.Citizen.PolishCitizen = false
	c.Citizen.FinalConviction = true

	err := SejmEligibility.Check(c)
	v, ok := common.AsViolation(err)
	if !ok {
		t.Fatal("expected a violation")
	}
	if v.Provision != "99(1)" {
		t.Errorf("unexpected provision: %q", v.Provision)
	}
	if len(v.Reasons) != 3 {
		t.Fatalf("expected all three failures to be reported, got %v", v.Reasons)
	}
	if !strings.Contains(v.Reasons[0], "Polish citizen") ||
		!strings.Contains(v.Reasons[1], "at least 21 (is 19)") ||
		!strings.Contains(v.Reasons[2], "final judgment") {
		t.Errorf("failures out of order: %v", v.Reasons)
	}
	if !strings.Contains(v.Message, "ineligible for the Sejm") {
		t.Errorf("unexpected headline: %q", v.Message)
	}
}

func TestPresidentialEligibility_Signatures(t *testing.T) {
	if err := PresidentialEligibility.Check(candidate(bornYearsBeforeElection(50), 100_000)); err != nil {
		t.Errorf("100,000 signatures must suffice, got %v", err)
	}

	err := PresidentialEligibility.Check(candidate(bornYearsBeforeElection(50), 99_999))
	v, ok := common.AsViolation(err)
	if !ok {
		t.Fatal("expected a violation")
	}
	if v.Provision != "127(3)" {
		t.Errorf("unexpected provision: %q", v.Provision)
	}
	if len(v.Reasons) != 1 || !strings.Contains(v.Reasons[0], "(has 99999)") {
		t.Errorf("unexpected reasons: %v", v.Reasons)
	}
}

func TestConvictionBarsParliamentAndPresidency(t *testing.T) {
	c := candidate(bornYearsBeforeElection(50), common.MinCandidateSignatures)
	c.Citizen.FinalConviction = true

	for name, rule := range map[string]interface{ Check(st.Candidacy) error }{
		"sejm":      SejmEligibility,
		"senate":    SenateEligibility,
		"president": PresidentialEligibility,
	} {
		if rule.Check(c) == nil {
			t.Errorf("%s: a final conviction must disqualify", name)
		}
	}
}

func TestCheckPresidentialTerm(t *testing.T) {
	tests := map[string]struct {
		served  int
		allowed bool
	}{
		"first term":         {0, true},
		"one re-election":    {1, true},
		"third consecutive":  {2, false},
		"beyond the maximum": {3, false},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			err := CheckPresidentialTerm(test.served)
			if test.allowed && err != nil {
				t.Errorf("expected the candidacy to be allowed, got %v", err)
			}
			if !test.allowed {
				v, ok := common.AsViolation(err)
				if !ok || v.Provision != "127(2)" {
					t.Errorf("expected an Art. 127(2) violation, got %v", err)
				}
			}
		})
	}
}
