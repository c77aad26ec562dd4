//
// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use
// of this software will be governed by the GNU Lesser General Public Licence v3
//

package spc

import (
	"fmt"

	"github.com/kgluszczyk/polish-constitution-as-code/common"
	"github.com/kgluszczyk/polish-constitution-as-code/rules"
	"github.com/kgluszczyk/polish-constitution-as-code/st"
)

func isPolishCitizen(c st.Candidacy) bool { return c.Citizen.PolishCitizen }

func minAge(office string, years int) rules.Condition[st.Candidacy] {
	return rules.CondF(
		fmt.Sprintf("%s_min_age", office),
		func(c st.Candidacy) string {
			return fmt.Sprintf("must be at least %d (is %d)", years, c.Citizen.AgeAt(c.ElectionDate))
		},
		func(c st.Candidacy) bool { return c.Citizen.AgeAt(c.ElectionDate) >= years },
	)
}

var noFinalConviction = rules.Cond(
	"no_final_conviction",
	"convicted by final judgment for an intentional crime prosecuted ex officio (Art. 99(3), nowelizacja 2009)",
	func(c st.Candidacy) bool { return !c.Citizen.FinalConviction },
)

// SejmEligibility verifies eligibility for election to the Sejm: Polish
// citizenship, 21 years of age attained no later than election day, and no
// Art. 99(3) disqualifying conviction. Art. 99(1), 99(3).
var SejmEligibility = rules.CumulativeRule[st.Candidacy]{
	Name:      "sejm_eligibility",
	Kind:      common.IneligibleSubject,
	Provision: "99(1)",
	Subject: func(c st.Candidacy) string {
		return fmt.Sprintf("%s ineligible for the Sejm", c.Citizen.Name)
	},
	Conditions: []rules.Condition[st.Candidacy]{
		rules.Cond("polish_citizen", "must be a Polish citizen", isPolishCitizen),
		minAge("sejm", common.MinSejmAge),
		noFinalConviction,
	},
}

// SenateEligibility verifies eligibility for election to the Senate; the age
// threshold rises to 30. Art. 99(2), 99(3).
var SenateEligibility = rules.CumulativeRule[st.Candidacy]{
	Name:      "senate_eligibility",
	Kind:      common.IneligibleSubject,
	Provision: "99(2)",
	Subject: func(c st.Candidacy) string {
		return fmt.Sprintf("%s ineligible for the Senate", c.Citizen.Name)
	},
	Conditions: []rules.Condition[st.Candidacy]{
		rules.Cond("polish_citizen", "must be a Polish citizen", isPolishCitizen),
		minAge("senate", common.MinSenateAge),
		noFinalConviction,
	},
}

// PresidentialEligibility verifies eligibility for the presidency: Polish
// citizenship, 35 years of age by election day, full electoral rights to the
// Sejm (which the Art. 99(3) conviction bar removes), and registration by at
// least 100,000 citizen signatures. Art. 127(3).
var PresidentialEligibility = rules.CumulativeRule[st.Candidacy]{
	Name:      "presidential_eligibility",
	Kind:      common.IneligibleSubject,
	Provision: "127(3)",
	Subject: func(c st.Candidacy) string {
		return fmt.Sprintf("%s ineligible for the presidency", c.Citizen.Name)
	},
	Conditions: []rules.Condition[st.Candidacy]{
		rules.Cond("polish_citizen", "must be a Polish citizen", isPolishCitizen),
		minAge("president", common.MinPresidentAge),
		rules.Cond("full_electoral_rights",
			"lacks full electoral rights: convicted by final judgment for an intentional crime prosecuted ex officio (Art. 99(3), nowelizacja 2009)",
			func(c st.Candidacy) bool { return !c.Citizen.FinalConviction }),
		rules.CondF("signatures",
			func(c st.Candidacy) string {
				return fmt.Sprintf("needs at least %d supporting signatures (has %d)",
					common.MinCandidateSignatures, c.Signatures)
			},
			func(c st.Candidacy) bool { return c.Signatures >= common.MinCandidateSignatures }),
	},
}

// CheckPresidentialTerm checks whether a candidate may run given consecutive
// terms already served. The President may be re-elected only once. Art. 127(2).
func CheckPresidentialTerm(consecutiveTermsServed int) error {
	if consecutiveTermsServed >= common.MaxPresidentialTerms {
		return &common.Violation{
			Kind:      common.IneligibleSubject,
			Provision: "127(2)",
			Message: fmt.Sprintf("a President may serve at most %d consecutive terms (already served: %d)",
				common.MaxPresidentialTerms, consecutiveTermsServed),
		}
	}
	return nil
}
