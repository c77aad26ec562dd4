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

import "github.com/kgluszczyk/polish-constitution-as-code/common"

// VoteTally is the outcome of a single chamber vote. Tallies are created fresh
// per vote event and never mutated; a re-vote is a new tally. All counts must
// be non-negative.
type VoteTally struct {
	Chamber common.Chamber
	For     int
	Against int
	Abstain int

	// StatutoryMembers overrides the chamber's statutory size when positive.
	// Zero means the constitutional default (460 for the Sejm, 100 for the
	// Senate).
	StatutoryMembers int
}

// TotalPresent is the number of members taking part in the vote.
func (t VoteTally) TotalPresent() int {
	return t.For + t.Against + t.Abstain
}

// Members is the statutory membership used as the denominator for quorum and
// majority thresholds.
func (t VoteTally) Members() int {
	if t.StatutoryMembers > 0 {
		return t.StatutoryMembers
	}
	return t.Chamber.StatutorySize()
}

// Referendum is the outcome of a nationwide referendum. Art. 125.
type Referendum struct {
	For      int
	Against  int
	Eligible int
}

// Cast is the turnout counted for the binding-force threshold. Invalid and
// blank ballots are not modeled; turnout is the number of votes cast.
func (r Referendum) Cast() int {
	return r.For + r.Against
}
