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

package rules

import (
	"fmt"

	"github.com/kgluszczyk/polish-constitution-as-code/common"
)

// Effect is what a decision-table tier does when it applies.
type Effect int

const (
	// Deny blocks immediately when any of the tier's conditions holds,
	// reporting every holding condition's description.
	Deny Effect = iota

	// Permit succeeds immediately when all of the tier's conditions hold.
	Permit

	// Require applies only while its guard holds; every condition must then
	// hold, and any misses are reported together (cumulative within the
	// tier). When all hold the tier permits.
	Require

	// Default ends the table with an unconditional violation.
	Default
)

func (e Effect) String() string {
	switch e {
	case Deny:
		return "deny"
	case Permit:
		return "permit"
	case Require:
		return "require"
	case Default:
		return "default"
	default:
		return fmt.Sprintf("Effect(%d)", e)
	}
}

// Tier is one ranked row of a precedence-ordered legal test. Earlier tiers
// short-circuit later ones; a tier that decides reports only its own reasons.
type Tier[E any] struct {
	Provision string
	Effect    Effect
	Message   string // violation headline when the tier denies

	// Guard gates a Require tier. A nil guard means the tier always applies.
	Guard *Condition[E]

	Conditions []Condition[E]
}

// DecisionTable is an explicit ordered list of tiers evaluated top to bottom.
// The ordering invariant lives in the data, not in nested conditionals, so it
// can be inspected and tested independently.
type DecisionTable[E any] struct {
	Name  string
	Kind  common.ViolationKind
	Tiers []Tier[E]
}

// Decide walks the tiers in declared order and returns the first decision: nil
// for a permitting tier, a *common.Violation for a denying one. A table whose
// tiers can all fall through is malformed and panics when exhausted; every
// table must end in a Permit that cannot miss or a Default.
func (t DecisionTable[E]) Decide(entity E) error {
	for _, tier := range t.Tiers {
		switch tier.Effect {
		case Deny:
			var reasons []string
			for _, c := range tier.Conditions {
				if c.Holds(entity) {
					reasons = append(reasons, c.Describe(entity))
				}
			}
			if len(reasons) > 0 {
				return &common.Violation{
					Kind:      t.Kind,
					Provision: tier.Provision,
					Message:   tier.Message,
					Reasons:   reasons,
				}
			}

		case Permit:
			all := len(tier.Conditions) > 0
			for _, c := range tier.Conditions {
				if !c.Holds(entity) {
					all = false
					break
				}
			}
			if all {
				return nil
			}

		case Require:
			if tier.Guard != nil && !tier.Guard.Holds(entity) {
				continue
			}
			var missing []string
			for _, c := range tier.Conditions {
				if !c.Holds(entity) {
					missing = append(missing, c.Describe(entity))
				}
			}
			if len(missing) > 0 {
				return &common.Violation{
					Kind:      t.Kind,
					Provision: tier.Provision,
					Message:   tier.Message,
					Reasons:   missing,
				}
			}
			return nil

		case Default:
			return &common.Violation{
				Kind:      t.Kind,
				Provision: tier.Provision,
				Message:   tier.Message,
			}

		default:
			panic(fmt.Sprintf("decision table %q: unknown effect %v", t.Name, tier.Effect))
		}
	}
	panic(fmt.Sprintf("decision table %q exhausted without a decision", t.Name))
}

// Provisions lists the distinct provision identifiers the table can cite, in
// tier order.
func (t DecisionTable[E]) Provisions() []string {
	var ids []string
	seen := map[string]bool{}
	for _, tier := range t.Tiers {
		if tier.Provision == "" || seen[tier.Provision] {
			continue
		}
		seen[tier.Provision] = true
		ids = append(ids, tier.Provision)
	}
	return ids
}
