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

package st

import "fmt"

// RulingOutcome is the outcome of Constitutional Tribunal review. Art. 190.
type RulingOutcome int

const (
	Constitutional RulingOutcome = iota
	Unconstitutional
	PartiallyUnconstitutional
)

func (o RulingOutcome) String() string {
	switch o {
	case Constitutional:
		return "constitutional"
	case Unconstitutional:
		return "unconstitutional"
	case PartiallyUnconstitutional:
		return "partially unconstitutional"
	default:
		return fmt.Sprintf("RulingOutcome(%d)", o)
	}
}

// TribunalRuling is the Tribunal's decision on a bill referred before signing.
// Rulings are universally binding and final. Art. 190(1).
type TribunalRuling struct {
	Outcome   RulingOutcome
	Reasoning string

	// OffendingProvisions names the provisions of the bill found
	// unconstitutional, when the outcome is not Constitutional.
	OffendingProvisions []string
}

// PublicFinances is the public debt position tested by Art. 216(5). Amounts
// are in minor currency units (grosz).
type PublicFinances struct {
	Debt uint64
	GDP  uint64
}
