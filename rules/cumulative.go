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

import "github.com/kgluszczyk/polish-constitution-as-code/common"

// CumulativeRule evaluates a fixed set of named conditions that must all hold.
// On failure it reports every failing condition's description, in declaration
// order. The order is part of the observable contract; it is never re-sorted.
type CumulativeRule[E any] struct {
	Name      string
	Kind      common.ViolationKind
	Provision string

	// Subject renders the headline of a violation for a concrete entity,
	// e.g. "Jan Kowalski ineligible for the Sejm".
	Subject func(E) string

	Conditions []Condition[E]
}

// Check evaluates every condition against the entity. It returns nil when all
// hold, and otherwise a single *common.Violation listing each failing
// condition's description in declared order.
func (r CumulativeRule[E]) Check(entity E) error {
	var failed []string
	for _, c := range r.Conditions {
		if !c.Holds(entity) {
			failed = append(failed, c.Describe(entity))
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return &common.Violation{
		Kind:      r.Kind,
		Provision: r.Provision,
		Message:   r.Subject(entity),
		Reasons:   failed,
	}
}

// Provisions lists the provision identifiers this rule can cite.
func (r CumulativeRule[E]) Provisions() []string {
	return []string{r.Provision}
}
