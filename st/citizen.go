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

import "time"

// Citizen is an immutable record of the facts eligibility rules test.
type Citizen struct {
	Name        string
	DateOfBirth time.Time

	PolishCitizen bool

	// FinalConviction reports a final judgment of imprisonment for an
	// intentional crime prosecuted ex officio. Art. 99(3), added by the
	// amendment of 7 May 2009.
	FinalConviction bool
}

// AgeAt returns the citizen's age in completed years on the given date. A
// citizen whose birthday falls exactly on the date has completed that year.
func (c Citizen) AgeAt(on time.Time) int {
	age := on.Year() - c.DateOfBirth.Year()
	if on.Month() < c.DateOfBirth.Month() ||
		(on.Month() == c.DateOfBirth.Month() && on.Day() < c.DateOfBirth.Day()) {
		age--
	}
	return age
}

// Candidacy binds a citizen to a concrete election. Signatures are the citizen
// signatures supporting a presidential candidacy; they are ignored by the
// parliamentary eligibility rules.
type Candidacy struct {
	Citizen      Citizen
	ElectionDate time.Time
	Signatures   int
}
