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
	"github.com/kgluszczyk/polish-constitution-as-code/common"
	"github.com/kgluszczyk/polish-constitution-as-code/rules"
	"github.com/kgluszczyk/polish-constitution-as-code/st"
)

var basedOnRatifiedTreaty = rules.Cond(
	"based_on_ratified_treaty",
	"request not based on a ratified international treaty",
	func(r st.ExtraditionRequest) bool { return r.BasedOnRatifiedTreaty },
)

// ExtraditionTable encodes Art. 55 (as amended 8 September 2006) as a
// precedence-ordered decision table. Tier order is load-bearing:
//
//  1. Art. 55(4) absolute prohibitions dominate everything, including the
//     Art. 55(3) international-tribunal exception.
//  2. Art. 55(5) judicial admissibility is checked next, for citizens and
//     non-citizens alike.
//  3. Non-citizens face no further constitutional restriction.
//  4. Requests of a treaty-established international judicial body for the
//     gravest crimes bypass the Art. 55(2) conditions.
//  5. Treaty-based requests must satisfy both Art. 55(2) conditions; misses
//     are reported together.
//  6. Otherwise extradition of a Polish citizen is prohibited, Art. 55(1).
//
// Checking the absolute prohibitions before the court gate follows the tested
// behavior of the rule set rather than a provably unique reading of the
// article; the ordering is fixed here as data so it stays visible.
var ExtraditionTable = rules.DecisionTable[st.ExtraditionRequest]{
	Name: "extradition",
	Kind: common.ProhibitedExtradition,
	Tiers: []rules.Tier[st.ExtraditionRequest]{
		{
			Provision: "55(4)",
			Effect:    rules.Deny,
			Message:   "extradition prohibited",
			Conditions: []rules.Condition[st.ExtraditionRequest]{
				rules.Cond("political_nonviolent_offense",
					"concerns a nonviolent political offence (przestępstwo bez użycia przemocy z przyczyn politycznych)",
					func(r st.ExtraditionRequest) bool { return r.PoliticalNonviolentOffense }),
				rules.Cond("violates_human_rights",
					"would violate human rights and freedoms (naruszenie wolności i praw człowieka i obywatela)",
					func(r st.ExtraditionRequest) bool { return r.ViolatesHumanRights }),
			},
		},
		{
			Provision: "55(5)",
			Effect:    rules.Deny,
			Message:   "extradition inadmissible",
			Conditions: []rules.Condition[st.ExtraditionRequest]{
				rules.Cond("court_not_approved",
					"court has not ruled on admissibility (sąd nie orzekł o dopuszczalności ekstradycji)",
					func(r st.ExtraditionRequest) bool { return !r.CourtApproved }),
			},
		},
		{
			Effect: rules.Permit,
			Conditions: []rules.Condition[st.ExtraditionRequest]{
				rules.Cond("not_polish_citizen",
					"subject is not a Polish citizen",
					func(r st.ExtraditionRequest) bool { return !r.SubjectIsPolishCitizen }),
			},
		},
		{
			Effect: rules.Permit,
			Conditions: []rules.Condition[st.ExtraditionRequest]{
				rules.Cond("international_judicial_body",
					"request of an international judicial body",
					func(r st.ExtraditionRequest) bool { return r.InternationalJudicialBody }),
				basedOnRatifiedTreaty,
				rules.Cond("genocide_or_war_crime",
					"concerns genocide, a crime against humanity, a war crime, or aggression",
					func(r st.ExtraditionRequest) bool { return r.GenocideOrWarCrime }),
			},
		},
		{
			Provision: "55(2)",
			Effect:    rules.Require,
			Message:   "extradition of a Polish citizen denied",
			Guard:     &basedOnRatifiedTreaty,
			Conditions: []rules.Condition[st.ExtraditionRequest]{
				rules.Cond("act_committed_abroad",
					"act was not committed outside Polish territory (Art. 55(2)(1))",
					func(r st.ExtraditionRequest) bool { return r.ActCommittedAbroad }),
				rules.Cond("double_criminality",
					"act does not constitute an offence under Polish law (Art. 55(2)(2))",
					func(r st.ExtraditionRequest) bool { return r.DoubleCriminality }),
			},
		},
		{
			Provision: "55(1)",
			Effect:    rules.Default,
			Message:   "extradition of a Polish citizen is prohibited (ekstradycja obywatela polskiego jest zakazana)",
		},
	},
}

// ValidateExtradition evaluates a request against Art. 55. It returns nil when
// the extradition is constitutionally permissible and otherwise the single
// dominant blocking reason of the highest-ranked deciding tier.
func ValidateExtradition(r st.ExtraditionRequest) error {
	return ExtraditionTable.Decide(r)
}
