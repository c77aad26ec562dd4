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

// RightsRestriction is a proposed limitation of constitutional freedoms and
// rights, carrying the facts of the five cumulative Art. 31(3) conditions.
type RightsRestriction struct {
	Description string

	// ByStatute: the restriction is established by statute (ustawa).
	ByStatute bool

	// NecessaryInDemocraticState: necessary in a democratic state.
	NecessaryInDemocraticState bool

	// LegitimateAim: pursues security, public order, protection of the
	// environment, health, public morals, or the freedoms of others.
	LegitimateAim bool

	// Proportionate: proportionate to the aim pursued.
	Proportionate bool

	// PreservesEssence: does not violate the essence of the freedom or right.
	PreservesEssence bool
}
