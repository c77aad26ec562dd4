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

// ExtraditionRequest carries the facts the Art. 55 decision table evaluates.
// Art. 55 as amended on 8 September 2006.
type ExtraditionRequest struct {
	// RequestingAuthority is the foreign state or international judicial body
	// making the request.
	RequestingAuthority string

	SubjectIsPolishCitizen bool

	// BasedOnRatifiedTreaty: the request rests on an international agreement
	// ratified by the Republic of Poland or a statute implementing an act of
	// an international organization Poland belongs to. Art. 55(2).
	BasedOnRatifiedTreaty bool

	// InternationalJudicialBody: the request originates from a judicial body
	// established under a ratified treaty. Art. 55(3).
	InternationalJudicialBody bool

	// GenocideOrWarCrime: the request concerns genocide, a crime against
	// humanity, a war crime, or a crime of aggression. Art. 55(3).
	GenocideOrWarCrime bool

	// ActCommittedAbroad: the act was committed outside Polish territory.
	// Art. 55(2)(1).
	ActCommittedAbroad bool

	// DoubleCriminality: the act constituted (or would constitute) an offence
	// under Polish law both when committed and when the request was made.
	// Art. 55(2)(2).
	DoubleCriminality bool

	// PoliticalNonviolentOffense: the subject is suspected of an offence
	// committed for political reasons without the use of force. Art. 55(4).
	PoliticalNonviolentOffense bool

	// ViolatesHumanRights: granting the request would violate human and
	// citizen rights and freedoms. Art. 55(4).
	ViolatesHumanRights bool

	// CourtApproved: a court has ruled the extradition admissible. Art. 55(5).
	CourtApproved bool
}
