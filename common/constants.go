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

// Statutory constants of the Constitution of the Republic of Poland. These are
// process-wide configuration values with no lifecycle beyond process start;
// they never change at runtime.
const (
	// SejmDeputies is the statutory number of Deputies. Art. 96(1).
	SejmDeputies = 460

	// SenateSenators is the statutory number of Senators. Art. 97(1).
	SenateSenators = 100

	// SejmTermYears is the length of a parliamentary term. Art. 98(1).
	SejmTermYears = 4

	// PresidentialTermYears is the length of a presidential term. Art. 127(2).
	PresidentialTermYears = 5

	// MaxPresidentialTerms limits a President to one re-election. Art. 127(2).
	MaxPresidentialTerms = 2

	// MinCandidateSignatures is the number of citizen signatures required to
	// register a presidential candidate. Art. 127(3).
	MinCandidateSignatures = 100_000

	// NoConfidenceSponsors is the minimum number of Deputies required to move
	// a constructive vote of no confidence. Art. 158(2).
	NoConfidenceSponsors = 46

	// MinSejmAge, MinSenateAge and MinPresidentAge are the ages a candidate
	// must have attained no later than election day. Art. 99(1), 99(2), 127(3).
	MinSejmAge      = 21
	MinSenateAge    = 30
	MinPresidentAge = 35

	// BillSigningDays and OverrideSigningDays are the presidential signing
	// windows. Wall-clock deadlines are enforced by the caller, never by the
	// evaluators; the constants are exported for reporting only.
	// Art. 122(2) and Art. 122(5).
	BillSigningDays     = 21
	OverrideSigningDays = 7
)
