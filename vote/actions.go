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

// Action binds a chamber vote to the majority kind and provision its
// constitutional step prescribes. The majority is fixed by law, never by
// caller discretion.
type Action struct {
	Name      string
	Chamber   common.Chamber
	Majority  common.MajorityKind
	Provision string
}

// The chamber actions of the legislative, amendment, and government-formation
// procedures.
var (
	// SejmPassesBill: the Sejm passes bills by a simple majority in the
	// presence of at least half the statutory number of Deputies. Art. 120.
	SejmPassesBill = Action{"sejm_passes_bill", common.Sejm, common.Simple, "120"}

	// SenatePassesBill: the Senate adopts its resolution on a bill by a
	// simple majority. Art. 121(2).
	SenatePassesBill = Action{"senate_passes_bill", common.Senate, common.Simple, "121(2)"}

	// SejmOverridesSenate: a Senate resolution rejecting a bill or proposing
	// an amendment stands unless the Sejm rejects it by an absolute majority.
	// Art. 121(3).
	SejmOverridesSenate = Action{"sejm_overrides_senate", common.Sejm, common.Absolute, "121(3)"}

	// SejmOverridesVeto: re-passage over a presidential veto requires a
	// three-fifths majority with quorum. Art. 122(5).
	SejmOverridesVeto = Action{"sejm_overrides_veto", common.Sejm, common.ThreeFifths, "122(5)"}

	// SejmPassesAmendment and SenatePassesAmendment: a bill amending the
	// Constitution needs two thirds in the Sejm and an absolute majority in
	// the Senate. Art. 235(4).
	SejmPassesAmendment   = Action{"sejm_passes_amendment", common.Sejm, common.TwoThirds, "235(4)"}
	SenatePassesAmendment = Action{"senate_passes_amendment", common.Senate, common.Absolute, "235(4)"}

	// ConfidenceVote, SejmElectsPrimeMinister and ConfidenceRetry are the
	// three Sejm votes of the government-formation chain, all simple majority
	// with quorum. Art. 154(2), 154(3), 155(1).
	ConfidenceVote          = Action{"confidence_vote", common.Sejm, common.Simple, "154(2)"}
	SejmElectsPrimeMinister = Action{"sejm_elects_pm", common.Sejm, common.Simple, "154(3)"}
	ConfidenceRetry         = Action{"confidence_retry", common.Sejm, common.Simple, "155(1)"}

	// NoConfidence: a constructive vote of no confidence carries by a
	// majority of the statutory number of Deputies. Art. 158(1).
	NoConfidence = Action{"no_confidence", common.Sejm, common.Absolute, "158(1)"}
)

// Actions lists every predefined chamber action.
func Actions() []Action {
	return []Action{
		SejmPassesBill, SenatePassesBill, SejmOverridesSenate, SejmOverridesVeto,
		SejmPassesAmendment, SenatePassesAmendment,
		ConfidenceVote, SejmElectsPrimeMinister, ConfidenceRetry, NoConfidence,
	}
}

const ErrUnknownAction = common.ConstErr("unknown action")

// ActionByName resolves a predefined action by its name.
func ActionByName(name string) (Action, error) {
	for _, a := range Actions() {
		if a.Name == name {
			return a, nil
		}
	}
	return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// Evaluate checks the tally against the action's thresholds. A tally cast in
// the wrong chamber is a programming-contract violation, not a recoverable
// legal failure, and panics. The threshold result is surfaced unchanged,
// annotated with the action's provision.
func (a Action) Evaluate(tally st.VoteTally) error {
	if tally.Chamber != a.Chamber {
		panic(fmt.Sprintf("%s: tally from %v, expected %v", a.Name, tally.Chamber, a.Chamber))
	}
	err := CheckThresholds(tally, a.Majority)
	if v, ok := common.AsViolation(err); ok && v.Provision == "" {
		v.Provision = a.Provision
	}
	return err
}
