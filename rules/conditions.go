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

// Condition is a named predicate over an entity, together with the text
// reported when the condition decides the outcome of a rule. For cumulative
// rules Describe explains why the condition failed; for deny tiers of a
// decision table it explains why the matching condition blocks.
type Condition[E any] struct {
	Name     string
	Describe func(E) string
	Holds    func(E) bool
}

// Cond builds a condition with a fixed description.
func Cond[E any](name, describe string, holds func(E) bool) Condition[E] {
	return Condition[E]{
		Name:     name,
		Describe: func(E) string { return describe },
		Holds:    holds,
	}
}

// CondF builds a condition whose description is derived from the entity, for
// reports that quote the offending value.
func CondF[E any](name string, describe func(E) string, holds func(E) bool) Condition[E] {
	return Condition[E]{Name: name, Describe: describe, Holds: holds}
}

// Not inverts a condition, keeping its name and description.
func Not[E any](c Condition[E]) Condition[E] {
	return Condition[E]{
		Name:     "not_" + c.Name,
		Describe: c.Describe,
		Holds:    func(e E) bool { return !c.Holds(e) },
	}
}
