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

// BillStage is one step of the ordinary legislative procedure. Art. 118–122.
type BillStage int

const (
	Initiated BillStage = iota
	SejmDeliberation
	SejmPassed
	SenateDeliberation
	SenatePassed
	SenateAmended
	SenateRejected
	SejmOverrideVote
	PresidentReview
	Signed
	Vetoed
	VetoOverrideVote
	VetoOverridden
	ReferredToTribunal
	PartiallyUnconstitutionalStage
	Enacted
	Rejected
)

func (s BillStage) String() string {
	switch s {
	case Initiated:
		return "Initiated"
	case SejmDeliberation:
		return "SejmDeliberation"
	case SejmPassed:
		return "SejmPassed"
	case SenateDeliberation:
		return "SenateDeliberation"
	case SenatePassed:
		return "SenatePassed"
	case SenateAmended:
		return "SenateAmended"
	case SenateRejected:
		return "SenateRejected"
	case SejmOverrideVote:
		return "SejmOverrideVote"
	case PresidentReview:
		return "PresidentReview"
	case Signed:
		return "Signed"
	case Vetoed:
		return "Vetoed"
	case VetoOverrideVote:
		return "VetoOverrideVote"
	case VetoOverridden:
		return "VetoOverridden"
	case ReferredToTribunal:
		return "ReferredToTribunal"
	case PartiallyUnconstitutionalStage:
		return "PartiallyUnconstitutional"
	case Enacted:
		return "Enacted"
	case Rejected:
		return "Rejected"
	default:
		return fmt.Sprintf("BillStage(%d)", s)
	}
}

// Terminal reports whether no further transition is possible.
func (s BillStage) Terminal() bool {
	return s == Enacted || s == Rejected
}

// SenateResolution is the Senate's decision on a bill. Art. 121(2).
type SenateResolution int

const (
	Approve SenateResolution = iota
	Amend
	Reject
)

func (r SenateResolution) String() string {
	switch r {
	case Approve:
		return "approve"
	case Amend:
		return "amend"
	case Reject:
		return "reject"
	default:
		return fmt.Sprintf("SenateResolution(%d)", r)
	}
}

// PresidentialDecision is the President's choice on a presented bill.
// Art. 122.
type PresidentialDecision int

const (
	SignBill PresidentialDecision = iota
	VetoBill
	ReferToTribunal
)

func (d PresidentialDecision) String() string {
	switch d {
	case SignBill:
		return "sign"
	case VetoBill:
		return "veto"
	case ReferToTribunal:
		return "refer to tribunal"
	default:
		return fmt.Sprintf("PresidentialDecision(%d)", d)
	}
}

// BillProcess is the stage machine of ordinary bill passage. One instance per
// bill; the caller serializes transitions. Transitions advance only on a
// successful vote or external decision; failed majorities on passage votes
// reject the bill, while a failed quorum leaves the stage unchanged (the
// sitting was invalid, the vote can be retaken).
type BillProcess struct {
	bill    st.Bill
	stage   BillStage
	journal Journal

	// resolution is the Senate's last resolution, set by ResolveSenate. It
	// decides the outcome of a failed override even across a retaken vote.
	resolution SenateResolution
}

// NewBillProcess starts a new passage procedure at the Initiated stage.
func NewBillProcess(bill st.Bill) *BillProcess {
	return &BillProcess{bill: bill, journal: newJournal()}
}

func (p *BillProcess) Bill() st.Bill     { return p.bill }
func (p *BillProcess) Stage() BillStage  { return p.stage }
func (p *BillProcess) Journal() *Journal { return &p.journal }

func (p *BillProcess) advance(to BillStage, event string) {
	p.journal.record(p.stage.String(), to.String(), event)
	p.stage = to
}

// guard panics on a transition out of a terminal stage (a programming-contract
// error) and rejects transitions from any stage not in the allowed set.
func (p *BillProcess) guard(event, provision string, allowed ...BillStage) error {
	if p.stage.Terminal() {
		panic(fmt.Sprintf("bill %q: %s after terminal stage %v", p.bill.Title, event, p.stage))
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

// Introduce submits the bill to the Sejm, opening deliberation. Art. 118(1).
func (p *BillProcess) Introduce() error {
	if err := p.guard("introduce", "118(1)", Initiated); err != nil {
		return err
	}
	event := "bill introduced"
	if p.bill.Sponsor != "" {
		event = fmt.Sprintf("bill introduced by %s", p.bill.Sponsor)
	}
	if p.bill.Urgent {
		event += " (urgent)"
	}
	p.advance(SejmDeliberation, event)
	return nil
}

// PassSejm records the Sejm's passage vote, simple majority with quorum.
// Art. 120. A failed majority rejects the bill; a failed quorum invalidates
// the sitting without advancing or rejecting.
func (p *BillProcess) PassSejm(tally st.VoteTally) error {
	if err := p.guard("hold the Sejm vote", "120", SejmDeliberation); err != nil {
		return err
	}
	if err := vote.SejmPassesBill.Evaluate(tally); err != nil {
		if v, _ := common.AsViolation(err); v.Kind == common.MajorityNotReached {
			p.advance(Rejected, "Sejm vote failed: "+v.Message)
		}
		return err
	}
	p.advance(SejmPassed, "passed by the Sejm")
	return nil
}

// ReferToSenate forwards the passed bill to the Senate. Art. 121(1).
func (p *BillProcess) ReferToSenate() error {
	if err := p.guard("refer to the Senate", "121(1)", SejmPassed); err != nil {
		return err
	}
	p.advance(SenateDeliberation, "referred to the Senate")
	return nil
}

// ResolveSenate records the Senate's resolution: approval, an amendment, or
// rejection, each taken by simple majority with quorum. Art. 121(2). A failed
// vote means no resolution was taken; the stage does not move.
func (p *BillProcess) ResolveSenate(res SenateResolution, tally st.VoteTally) error {
	if err := p.guard("resolve in the Senate", "121(2)", SenateDeliberation); err != nil {
		return err
	}
	if err := vote.SenatePassesBill.Evaluate(tally); err != nil {
		return err
	}
	switch res {
	case Approve:
		p.advance(SenatePassed, "approved by the Senate")
	case Amend:
		p.advance(SenateAmended, "Senate proposed amendments")
	case Reject:
		p.advance(SenateRejected, "rejected by the Senate")
	default:
		panic(fmt.Sprintf("unknown senate resolution: %v", res))
	}
	p.resolution = res
	return nil
}

// OverrideSenate records the Sejm's vote on the Senate's rejecting or amending
// resolution. The resolution stands unless the Sejm rejects it by an absolute
// majority. Art. 121(3). When a rejecting resolution stands the bill dies;
// when an amending resolution stands the bill proceeds with the amendments.
func (p *BillProcess) OverrideSenate(tally st.VoteTally) error {
	if err := p.guard("override the Senate", "121(3)", SenateAmended, SenateRejected, SejmOverrideVote); err != nil {
		return err
	}
	if p.stage != SejmOverrideVote {
		p.advance(SejmOverrideVote, "Sejm override vote on the Senate resolution")
	}
	if err := vote.SejmOverridesSenate.Evaluate(tally); err != nil {
		v, _ := common.AsViolation(err)
		if v.Kind != common.MajorityNotReached {
			return err // invalid sitting, vote can be retaken
		}
		if p.resolution == Reject {
			p.advance(Rejected, "Senate rejection stands: "+v.Message)
		} else {
			p.advance(PresidentReview, "Senate amendments stand, bill proceeds as amended")
		}
		return err
	}
	p.advance(PresidentReview, "Senate resolution rejected by the Sejm")
	return nil
}

// Present submits the passed bill to the President. Art. 122(1).
func (p *BillProcess) Present() error {
	if err := p.guard("present to the President", "122(1)", SenatePassed); err != nil {
		return err
	}
	p.advance(PresidentReview, "presented to the President")
	return nil
}

// Review records the President's decision. The signing window is 21 days;
// wall-clock enforcement is the caller's concern. Art. 122(2)–(5).
func (p *BillProcess) Review(d PresidentialDecision) error {
	if err := p.guard("review", "122(2)", PresidentReview); err != nil {
		return err
	}
	switch d {
	case SignBill:
		p.advance(Signed, "signed by the President")
	case VetoBill:
		p.advance(Vetoed, "vetoed, returned to the Sejm for reconsideration")
	case ReferToTribunal:
		p.advance(ReferredToTribunal, "referred to the Constitutional Tribunal")
	default:
		panic(fmt.Sprintf("unknown presidential decision: %v", d))
	}
	return nil
}

// OverrideVeto records the Sejm's re-passage vote over a presidential veto,
// three-fifths majority with quorum. Art. 122(5). A successful override
// obliges the President to sign within 7 days.
func (p *BillProcess) OverrideVeto(tally st.VoteTally) error {
	if err := p.guard("override the veto", "122(5)", Vetoed, VetoOverrideVote); err != nil {
		return err
	}
	if p.stage != VetoOverrideVote {
		p.advance(VetoOverrideVote, "Sejm veto override vote")
	}
	if err := vote.SejmOverridesVeto.Evaluate(tally); err != nil {
		if v, _ := common.AsViolation(err); v.Kind == common.MajorityNotReached {
			p.advance(Rejected, "veto stands: "+v.Message)
		}
		return err
	}
	p.advance(VetoOverridden, "veto overridden")
	return nil
}

// Rule records the Tribunal's ruling on a referred bill. A constitutional
// bill must be signed; an unconstitutional one dies; a partially
// unconstitutional one awaits an explicit return to the Sejm. Art. 122(3)-(4).
func (p *BillProcess) Rule(ruling st.TribunalRuling) error {
	if err := p.guard("apply the Tribunal ruling", "122(3)", ReferredToTribunal); err != nil {
		return err
	}
	switch ruling.Outcome {
	case st.Constitutional:
		p.advance(Signed, "ruled constitutional, President may not refuse signature")
	case st.Unconstitutional:
		p.advance(Rejected, "ruled unconstitutional")
	case st.PartiallyUnconstitutional:
		p.advance(PartiallyUnconstitutionalStage, "ruled partially unconstitutional")
	default:
		panic(fmt.Sprintf("unknown ruling outcome: %v", ruling.Outcome))
	}
	return nil
}

// ReturnToSejm reopens deliberation after a partially unconstitutional
// ruling. The machine never resolves this branch on its own. Art. 122(4).
func (p *BillProcess) ReturnToSejm() error {
	if err := p.guard("return to the Sejm", "122(4)", PartiallyUnconstitutionalStage); err != nil {
		return err
	}
	p.advance(SejmDeliberation, "returned to the Sejm to remove the unconstitutional provisions")
	return nil
}

// Promulgate orders publication in the Journal of Laws, enacting the bill.
// Art. 122(2).
func (p *BillProcess) Promulgate() error {
	if err := p.guard("promulgate", "122(2)", Signed, VetoOverridden); err != nil {
		return err
	}
	p.advance(Enacted, "promulgated in the Journal of Laws")
	return nil
}

// BillProvisions lists the provision identifiers bill-passage transitions can
// cite.
func BillProvisions() []string {
	return []string{"118(1)", "120", "121(1)", "121(2)", "121(3)", "122(1)", "122(2)", "122(3)", "122(4)", "122(5)"}
}
