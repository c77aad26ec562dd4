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

package vote

import (
	"fmt"

	"github.com/kgluszczyk/polish-constitution-as-code/common"
	"github.com/kgluszczyk/polish-constitution-as-code/st"
)

// CheckThresholds decides whether a tally clears quorum and the required
// majority. The quorum check always precedes the majority check: a tally
// failing quorum reports QuorumNotMet even if it would also fail the majority.
//
// Quorum requires the presence of at least half of the statutory membership;
// exactly half satisfies it. The majority formulas are:
//
//	Simple:      for > against            (abstentions excluded)
//	Absolute:    2*for > members          (strictly more than half, statutory)
//	TwoThirds:   3*for >= 2*members
//	ThreeFifths: 5*for >= 3*members
//
// This is a boolean gate, not a vote-share computation; success carries no
// numeric value. Negative counts are a programming-contract violation.
func CheckThresholds(tally st.VoteTally, kind common.MajorityKind) error {
	if tally.For < 0 || tally.Against < 0 || tally.Abstain < 0 {
		panic(fmt.Sprintf("negative vote count in tally: %+v", tally))
	}

	members := tally.Members()
	present := tally.TotalPresent()
	if present*2 < members {
		return &common.Violation{
			Kind: common.QuorumNotMet,
			Message: fmt.Sprintf("no quorum: %d of %d members present, at least %d required",
				present, members, (members+1)/2),
		}
	}

	var reached bool
	switch kind {
	case common.Simple:
		reached = tally.For > tally.Against
	case common.Absolute:
		reached = tally.For*2 > members
	case common.TwoThirds:
		reached = tally.For*3 >= members*2
	case common.ThreeFifths:
		reached = tally.For*5 >= members*3
	default:
		panic(fmt.Sprintf("unknown majority kind: %v", kind))
	}
	if !reached {
		return &common.Violation{
			Kind: common.MajorityNotReached,
			Message: fmt.Sprintf("%s majority not reached: %d for, %d against, %d members",
				kind, tally.For, tally.Against, members),
		}
	}
	return nil
}
