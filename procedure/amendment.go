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

// AmendmentStage is one step of the constitutional amendment procedure.
// Art. 235.
type AmendmentStage int

const (
	AmendmentInitiated AmendmentStage = iota
	FirstReadingSejm
	AmendmentSejmPassed
	AmendmentSenatePassed
	ReferendumRequested
	ReferendumPassed
	PresidentSigns
	Adopted
	AmendmentRejected
)

func (s AmendmentStage) String() string {
	switch s {
	case AmendmentInitiated:
		return "Initiated"
	case FirstReadingSejm:
		return "FirstReadingSejm"
	case AmendmentSejmPassed:
		return "SejmPassed"
	case AmendmentSenatePassed:
		return "SenatePassed"
	case ReferendumRequested:
		return "ReferendumRequested"
	case ReferendumPassed:
		return "ReferendumPassed"
	case PresidentSigns:
		return "PresidentSigns"
	case Adopted:
		return "Adopted"
	case AmendmentRejected:
		return "Rejected"
	default:
		return fmt.Sprintf("AmendmentStage(%d)", s)
	}
}

// Terminal reports whether no further transition is possible.
func (s AmendmentStage) Terminal() bool {
	return s == Adopted || s == AmendmentRejected
}

// AmendmentProcess is the stage machine of constitutional amendment. The Sejm
// passes the amending bill by a two-thirds majority, the Senate by an absolute
// majority; amendments to chapters I, II or XII may additionally be put to a
// confirming referendum, which binds at any turnout. The President must sign
// an adopted amendment; there is no veto. Art. 235.
type AmendmentProcess struct {
	title   string
	stage   AmendmentStage
	journal Journal
}

// NewAmendmentProcess starts a new amendment procedure at the Initiated stage.
func NewAmendmentProcess(title string) *AmendmentProcess {
	return &AmendmentProcess{title: title, journal: newJournal()}
}

func (p *AmendmentProcess) Title() string { return p.title }
func (p *AmendmentProcess) Stage() AmendmentStage { return p.stage }
func (p *AmendmentProcess) Journal() *Journal { return &p.journal }

func (p *AmendmentProcess) advance(to AmendmentStage, event string) {
	p.journal.record(p.stage.String(), to.String(), event)
	p.stage = to
}

func (p *AmendmentProcess) guard(event, provision string, allowed ...AmendmentStage) error {
	if p.stage.Terminal() {
		panic(fmt.Sprintf("amendment %q: %s after terminal stage %v", p.title, event, p.stage))
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

// FirstReading opens the first reading in the Sejm, no earlier than 30 days
// after submission. Art. 235(3).
func (p *AmendmentProcess) FirstReading() error {
	if err := p.guard("open the first reading", "235(3)", AmendmentInitiated); err != nil {
		return err
	}
	p.advance(FirstReadingSejm, "first reading in the Sejm")
	return nil
}

// PassSejm records the Sejm's vote, two-thirds majority with quorum.
// Art. 235(4).
func (p *AmendmentProcess) PassSejm(tally st.VoteTally) error {
	if err := p.guard("hold the Sejm vote", "235(4)", FirstReadingSejm); err != nil {
		return err
	}
	if err := vote.SejmPassesAmendment.Evaluate(tally); err != nil {
		if v, _ := common.AsViolation(err); v.Kind == common.MajorityNotReached {
			p.advance(AmendmentRejected, "Sejm vote failed: "+v.Message)
		}
		return err
	}
	p.advance(AmendmentSejmPassed, "passed by the Sejm")
	return nil
}

// PassSenate records the Senate's vote, absolute majority with quorum, within
// 60 days of the Sejm vote. Art. 235(4).
func (p *AmendmentProcess) PassSenate(tally st.VoteTally) error {
	if err := p.guard("hold the Senate vote", "235(4)", AmendmentSejmPassed); err != nil {
		return err
	}
	if err := vote.SenatePassesAmendment.Evaluate(tally); err != nil {
		if v, _ := common.AsViolation(err); v.Kind == common.MajorityNotReached {
			p.advance(AmendmentRejected, "Senate vote failed: "+v.Message)
		}
		return err
	}
	p.advance(AmendmentSenatePassed, "passed by the Senate")
	return nil
}

// RequestReferendum demands a confirming referendum, available when the
// amendment touches chapters I, II or XII. Art. 235(6).
func (p *AmendmentProcess) RequestReferendum() error {
	if err := p.guard("request a referendum", "235(6)", AmendmentSenatePassed); err != nil {
		return err
	}
	p.advance(ReferendumRequested, "confirming referendum requested")
	return nil
}

// Confirm records the referendum result. The amendment is approved when the
// votes for exceed the votes against, regardless of turnout. Art. 235(6).
func (p *AmendmentProcess) Confirm(r st.Referendum) error {
	if err := p.guard("confirm by referendum", "235(6)", ReferendumRequested); err != nil {
		return err
	}
	if err := vote.ValidateAmendmentReferendum(r); err != nil {
		v, _ := common.AsViolation(err)
		p.advance(AmendmentRejected, "referendum failed: "+v.Message)
		return err
	}
	p.advance(ReferendumPassed, "confirmed by referendum")
	return nil
}

// Sign records the President's signature, due within 21 days; the President
// may not refuse. Art. 235(7).
func (p *AmendmentProcess) Sign() error {
	if err := p.guard("sign", "235(7)", AmendmentSenatePassed, ReferendumPassed); err != nil {
		return err
	}
	p.advance(PresidentSigns, "signed by the President")
	return nil
}

// Promulgate orders publication in the Journal of Laws, adopting the
// amendment. Art. 235(7).
func (p *AmendmentProcess) Promulgate() error {
	if err := p.guard("promulgate", "235(7)", PresidentSigns); err != nil {
		return err
	}
	p.advance(Adopted, "promulgated in the Journal of Laws")
	return nil
}

// AmendmentProvisions lists the provision identifiers amendment transitions
// can cite.
func AmendmentProvisions() []string {
	return []string{"235(3)", "235(4)", "235(6)", "235(7)"}
}
