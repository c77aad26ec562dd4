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

// MajorityKind is the kind of majority a chamber vote must reach. The kind is
// fixed per procedural step by the constitutional text, never chosen by the
// caller.
type MajorityKind int

const (
	// Simple requires more votes for than against; abstentions are excluded
	// from the comparison. Art. 120.
	Simple MajorityKind = iota

	// Absolute requires strictly more than half of the statutory number of
	// members, not of those present. Art. 121(3).
	Absolute

	// TwoThirds requires at least two thirds of the statutory number of
	// members. Art. 235(4).
	TwoThirds

	// ThreeFifths requires at least three fifths of the statutory number of
	// members. Art. 122(5).
	ThreeFifths
)

func (k MajorityKind) String() string {
	switch k {
	case Simple:
		return "simple"
	case Absolute:
		return "absolute"
	case TwoThirds:
		return "two-thirds"
	case ThreeFifths:
		return "three-fifths"
	default:
		return fmt.Sprintf("MajorityKind(%d)", k)
	}
}
