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

package procedure

import (
	"fmt"
	"slices"

	"github.com/kgluszczyk/polish-constitution-as-code/common"
	"github.com/kgluszczyk/polish-constitution-as-code/st"
	"github.com/kgluszczyk/polish-constitution-as-code/vote"
)

// FormationStage is one step of the government-formation chain. Art. 154–155.
type FormationStage int

const (
	FormationInitiated FormationStage = iota
	ConfidenceVote
	SejmElects
	RetryConfidenceVote
	Appointed
	FormationFailed
)

func (s FormationStage) String() string {
	switch s {
	case FormationInitiated:
		return "Initiated"
	case ConfidenceVote:
		return "ConfidenceVote"
	case SejmElects:
		return "SejmElects"
	case RetryConfidenceVote:
		return "RetryConfidenceVote"
	case Appointed:
		return "Appointed"
	case FormationFailed:
		return "Failed"
	default:
		return fmt.Sprintf("FormationStage(%d)", s)
	}
}

// Terminal reports whether no further transition is possible.
func (s FormationStage) Terminal() bool {
	return s == Appointed || s == FormationFailed
}

// FormationProcess is the fixed four-attempt government-formation chain: the
// President designates a Prime Minister and the Sejm votes confidence; on
// failure the Sejm elects a Prime Minister itself; on failure the President
// appoints once more with the Sejm voting again; a final failure exhausts the
// chain and signals that the Sejm must be dissolved. All three votes are
// simple majority with quorum. The machine never retries beyond the fixed
// attempts. Art. 154–155.
type FormationProcess struct {
	candidate string
	stage     FormationStage
	journal   Journal
}

// NewFormationProcess starts a new formation procedure at the Initiated stage.
func NewFormationProcess() *FormationProcess {
	return &FormationProcess{journal: newJournal()}
}

// Candidate is the currently designated Prime Minister candidate.
func (p *FormationProcess) Candidate() string { return p.candidate }
func (p *FormationProcess) Stage() FormationStage { return p.stage }
func (p *FormationProcess) Journal() *Journal { return &p.journal }

func (p *FormationProcess) advance(to FormationStage, event string) {
	p.journal.record(p.stage.String(), to.String(), event)
	p.stage = to
}

func (p *FormationProcess) guard(event, provision string, allowed ...FormationStage) error {
	if p.stage.Terminal() {
		panic(fmt.Sprintf("government formation: %s after terminal stage %v", event, p.stage))
	}
	if !slices.Contains(allowed, p.stage) {
		return &common.Violation{
			Kind:      common.InvalidProcedureTransition,
			Provision: provision,
			Message:   fmt.Sprintf("cannot %s at stage %v", event, p.stage),
		}
	}
	return nil
}

// Designate records the President's designation of a Prime Minister.
// Art. 154(1).
func (p *FormationProcess) Designate(candidate string) error {
	if err := p.guard("designate a Prime Minister", "154(1)", FormationInitiated); err != nil {
		return err
	}
	p.candidate = candidate
	p.advance(ConfidenceVote, fmt.Sprintf("President designates %s", candidate))
	return nil
}

// VoteConfidence records the Sejm's confidence vote in the designated
// government. Art. 154(2). A failed majority moves to the Sejm's own
// election attempt; a failed quorum leaves the vote to be retaken.
func (p *FormationProcess) VoteConfidence(tally st.VoteTally) error {
	if err := p.guard("vote confidence", "154(2)", ConfidenceVote); err != nil {
		return err
	}
	if err := vote.ConfidenceVote.Evaluate(tally); err != nil {
		if v, _ := common.AsViolation(err); v.Kind == common.MajorityNotReached {
			p.advance(SejmElects, "confidence refused: "+v.Message)
		}
		return err
	}
	p.advance(Appointed, fmt.Sprintf("confidence granted, %s appointed", p.candidate))
	return nil
}

// ElectBySejm records the Sejm's own election of a Prime Minister after the
// first attempt failed. Art. 154(3).
func (p *FormationProcess) ElectBySejm(candidate string, tally st.VoteTally) error {
	if err := p.guard("elect a Prime Minister", "154(3)", SejmElects); err != nil {
		return err
	}
	if err := vote.SejmElectsPrimeMinister.Evaluate(tally); err != nil {
		if v, _ := common.AsViolation(err); v.Kind == common.MajorityNotReached {
			p.advance(RetryConfidenceVote, "Sejm failed to elect: "+v.Message)
		}
		return err
	}
	p.candidate = candidate
	p.advance(Appointed, fmt.Sprintf("%s elected by the Sejm and appointed", candidate))
	return nil
}

// RetryConfidence records the final attempt: the President appoints once more
// and the Sejm votes. Art. 155(1). Failure exhausts the chain; the Sejm must
// be dissolved. Art. 155(2).
func (p *FormationProcess) RetryConfidence(candidate string, tally st.VoteTally) error {
	if err := p.guard("retry the confidence vote", "155(1)", RetryConfidenceVote); err != nil {
		return err
	}
	if err := vote.ConfidenceRetry.Evaluate(tally); err != nil {
		if v, _ := common.AsViolation(err); v.Kind == common.MajorityNotReached {
			p.advance(FormationFailed, "confidence refused again, the Sejm must be dissolved (Art. 155(2))")
		}
		return err
	}
	p.candidate = candidate
	p.advance(Appointed, fmt.Sprintf("confidence granted, %s appointed", candidate))
	return nil
}

// FormationProvisions lists the provision identifiers formation transitions
// can cite.
func FormationProvisions() []string {
	return []string{"154(1)", "154(2)", "154(3)", "155(1)", "155(2)"}
}
