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

import "github.com/kgluszczyk/polish-constitution-as-code/vote"

// RuleInfo describes one checkable rule and the provisions it can cite.
type RuleInfo struct {
	Name       string
	Provisions []string
}

// Specification defines the interface for enumerating the rule set.
type Specification interface {
	// Rules provides access to every rule within the specification.
	Rules() []RuleInfo
}

// Spec is the full constitutional rule set of this module.
var Spec Specification = specification{}

type specification struct{}

func (specification) Rules() []RuleInfo {
	infos := []RuleInfo{
		{SejmEligibility.Name, SejmEligibility.Provisions()},
		{SenateEligibility.Name, SenateEligibility.Provisions()},
		{PresidentialEligibility.Name, PresidentialEligibility.Provisions()},
		{"presidential_term_limit", []string{"127(2)"}},
		{RightsRestrictionRule.Name, RightsRestrictionRule.Provisions()},
		{ExtraditionTable.Name, ExtraditionTable.Provisions()},
		{"incompatibility", []string{"103"}},
		{"immunity", []string{"105"}},
		{"no_confidence", []string{"158(1)", "158(2)"}},
		{"debt_ceiling", []string{"216(5)"}},
		{"referendum", []string{"125", "125(3)"}},
		{"amendment_referendum", []string{"235(6)"}},
	}
	for _, a := range vote.Actions() {
		infos = append(infos, RuleInfo{a.Name, []string{a.Provision}})
	}
	return infos
}
