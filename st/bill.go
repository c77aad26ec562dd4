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

// Bill is a legislative bill as introduced. Art. 118.
type Bill struct {
	Title   string
	Sponsor string
	Urgent  bool
}

// NoConfidenceMotion is a constructive vote of no confidence in the Council of
// Ministers. Art. 158.
type NoConfidenceMotion struct {
	// Successor is the candidate for Prime Minister the motion names. A motion
	// naming no successor is invalid; the vote is constructive.
	Successor string

	// Sponsors is the number of Deputies moving the motion. Art. 158(2)
	// requires at least 46.
	Sponsors int

	Tally VoteTally
}
