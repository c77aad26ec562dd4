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

package common

import "fmt"

// Chamber identifies one of the two chambers of the Polish parliament.
type Chamber int

const (
	Sejm Chamber = iota
	Senate
)

func (c Chamber) String() string {
	switch c {
	case Sejm:
		return "Sejm"
	case Senate:
		return "Senate"
	default:
		return fmt.Sprintf("Chamber(%d)", c)
	}
}

// StatutorySize returns the fixed legal size of the chamber, used as the
// denominator for majority thresholds regardless of actual attendance.
// Art. 96(1) and Art. 97(1).
func (c Chamber) StatutorySize() int {
	switch c {
	case Sejm:
		return SejmDeputies
	case Senate:
		return SenateSenators
	}
	panic(fmt.Sprintf("unknown chamber: %v", c))
}
