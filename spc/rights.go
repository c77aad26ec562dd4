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

// RightsRestrictionRule is the Art. 31(3) proportionality test: five
// cumulative conditions a restriction of constitutional freedoms and rights
// must satisfy. A failing restriction reports every missed condition, in the
// order the article states them.
var RightsRestrictionRule = rules.CumulativeRule[st.RightsRestriction]{
	Name:      "rights_restriction",
	Kind:      common.DisproportionateRestriction,
	Provision: "31(3)",
	Subject: func(r st.RightsRestriction) string {
		return fmt.Sprintf("restriction %q is unconstitutional", r.Description)
	},
	Conditions: []rules.Condition[st.RightsRestriction]{
		rules.Cond("by_statute",
			"not established by statute (ustawa)",
			func(r st.RightsRestriction) bool { return r.ByStatute }),
		rules.Cond("necessary",
			"not necessary in a democratic state",
			func(r st.RightsRestriction) bool { return r.NecessaryInDemocraticState }),
		rules.Cond("legitimate_aim",
			"does not pursue a legitimate aim (security, public order, environment, health, public morals, or freedoms of others)",
			func(r st.RightsRestriction) bool { return r.LegitimateAim }),
		rules.Cond("proportionate",
			"not proportionate to the aim pursued",
			func(r st.RightsRestriction) bool { return r.Proportionate }),
		rules.Cond("preserves_essence",
			"violates the essence of the freedom or right",
			func(r st.RightsRestriction) bool { return r.PreservesEssence }),
	},
}

// ValidateRightsRestriction evaluates a proposed restriction against
// Art. 31(3).
func ValidateRightsRestriction(r st.RightsRestriction) error {
	return RightsRestrictionRule.Check(r)
}
