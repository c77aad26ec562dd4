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

package main

import (
	"fmt"
	"sort"

	"github.com/dsnet/golib/unitconv"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/maps"

	"github.com/kgluszczyk/polish-constitution-as-code/common"
	"github.com/kgluszczyk/polish-constitution-as-code/procedure"
	"github.com/kgluszczyk/polish-constitution-as-code/registry"
	"github.com/kgluszczyk/polish-constitution-as-code/st"
)

var RunCmd = cli.Command{
	Action:    doRun,
	Name:      "run",
	Usage:     "Replay a YAML scenario through a procedure stage machine",
	ArgsUsage: "<scenario.yaml>...",
}

type replayer func(*Scenario, registry.Index) error

var replayers = map[string]replayer{
	"bill":      replayBill,
	"amendment": replayAmendment,
	"formation": replayFormation,
}

func doRun(ctx *cli.Context) error {
	if ctx.Args().Len() == 0 {
		return fmt.Errorf("missing scenario file")
	}
	idx, err := registry.NewIndex()
	if err != nil {
		return err
	}
	loader, err := NewScenarioLoader(scenarioCacheSize)
	if err != nil {
		return err
	}
	failed := 0
	for _, path := range ctx.Args().Slice() {
		scenario, err := loader.Load(path)
		if err != nil {
			return err
		}
		replay, ok := replayers[scenario.Procedure]
		if !ok {
			known := maps.Keys(replayers)
			sort.Strings(known)
			return fmt.Errorf("unknown procedure %q, expected one of %v", scenario.Procedure, known)
		}
		fmt.Printf("== %s (%s)\n", scenario.Title, scenario.Procedure)
		if err := replay(scenario, idx); err != nil {
			failed++
		}
	}
	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d scenarios failed", failed, ctx.Args().Len()), 1)
	}
	return nil
}

func step(idx registry.Index, label string, err error) error {
	if err == nil {
		color.Green("  ok      %s", label)
		return nil
	}
	if v, ok := common.AsViolation(err); ok {
		color.Red("  fail    %s: %s", label, registry.Cite(idx, v))
	}
	return err
}

func (e Event) tally(chamber common.Chamber) st.VoteTally {
	return st.VoteTally{
		Chamber:          chamber,
		For:              e.For,
		Against:          e.Against,
		Abstain:          e.Abstain,
		StatutoryMembers: e.Members,
	}
}

func replayBill(s *Scenario, idx registry.Index) error {
	p := procedure.NewBillProcess(st.Bill{Title: s.Title, Sponsor: s.Sponsor, Urgent: s.Urgent})
	var failure error
	for _, e := range s.Events {
		var err error
		switch e.Step {
		case "introduce":
			err = step(idx, e.Step, p.Introduce())
		case "sejm_vote":
			err = step(idx, e.Step, p.PassSejm(e.tally(common.Sejm)))
		case "refer_to_senate":
			err = step(idx, e.Step, p.ReferToSenate())
		case "senate_resolution":
			res, perr := parseResolution(e.Resolution)
			if perr != nil {
				return perr
			}
			err = step(idx, e.Step, p.ResolveSenate(res, e.tally(common.Senate)))
		case "override_senate":
			err = step(idx, e.Step, p.OverrideSenate(e.tally(common.Sejm)))
		case "present":
			err = step(idx, e.Step, p.Present())
		case "president":
			d, perr := parseDecision(e.Decision)
			if perr != nil {
				return perr
			}
			err = step(idx, e.Step, p.Review(d))
		case "override_veto":
			err = step(idx, e.Step, p.OverrideVeto(e.tally(common.Sejm)))
		case "tribunal_ruling":
			o, perr := parseOutcome(e.Outcome)
			if perr != nil {
				return perr
			}
			err = step(idx, e.Step, p.Rule(st.TribunalRuling{Outcome: o}))
		case "return_to_sejm":
			err = step(idx, e.Step, p.ReturnToSejm())
		case "promulgate":
			err = step(idx, e.Step, p.Promulgate())
		default:
			return fmt.Errorf("unknown bill step %q", e.Step)
		}
		if err != nil && failure == nil {
			failure = err
		}
	}
	fmt.Printf("  final stage: %v (journal of %d transitions, chain intact: %v)\n",
		p.Stage(), len(p.Journal().Entries()), p.Journal().Verify())
	return failure
}

func replayAmendment(s *Scenario, idx registry.Index) error {
	p := procedure.NewAmendmentProcess(s.Title)
	var failure error
	for _, e := range s.Events {
		var err error
		switch e.Step {
		case "first_reading":
			err = step(idx, e.Step, p.FirstReading())
		case "sejm_vote":
			err = step(idx, e.Step, p.PassSejm(e.tally(common.Sejm)))
		case "senate_vote":
			err = step(idx, e.Step, p.PassSenate(e.tally(common.Senate)))
		case "request_referendum":
			err = step(idx, e.Step, p.RequestReferendum())
		case "referendum":
			label := fmt.Sprintf("referendum (%s for, %s against)",
				unitconv.FormatPrefix(float64(e.For), unitconv.SI, 1),
				unitconv.FormatPrefix(float64(e.Against), unitconv.SI, 1))
			err = step(idx, label, p.Confirm(st.Referendum{For: e.For, Against: e.Against, Eligible: e.Eligible}))
		case "sign":
			err = step(idx, e.Step, p.Sign())
		case "promulgate":
			err = step(idx, e.Step, p.Promulgate())
		default:
			return fmt.Errorf("unknown amendment step %q", e.Step)
		}
		if err != nil && failure == nil {
			failure = err
		}
	}
	fmt.Printf("  final stage: %v (journal of %d transitions, chain intact: %v)\n",
		p.Stage(), len(p.Journal().Entries()), p.Journal().Verify())
	return failure
}

func replayFormation(s *Scenario, idx registry.Index) error {
	p := procedure.NewFormationProcess()
	var failure error
	for _, e := range s.Events {
		var err error
		switch e.Step {
		case "designate":
			err = step(idx, e.Step, p.Designate(e.Candidate))
		case "confidence":
			err = step(idx, e.Step, p.VoteConfidence(e.tally(common.Sejm)))
		case "elect":
			err = step(idx, e.Step, p.ElectBySejm(e.Candidate, e.tally(common.Sejm)))
		case "retry":
			err = step(idx, e.Step, p.RetryConfidence(e.Candidate, e.tally(common.Sejm)))
		default:
			return fmt.Errorf("unknown formation step %q", e.Step)
		}
		if err != nil && failure == nil {
			failure = err
		}
	}
	fmt.Printf("  final stage: %v (journal of %d transitions, chain intact: %v)\n",
		p.Stage(), len(p.Journal().Entries()), p.Journal().Verify())
	return failure
}

func parseResolution(s string) (procedure.SenateResolution, error) {
	switch s {
	case "":
		return 0, fmt.Errorf("senate_resolution step omits the resolution")
	case "approve":
		return procedure.Approve, nil
	case "amend":
		return procedure.Amend, nil
	case "reject":
		return procedure.Reject, nil
	}
	return 0, fmt.Errorf("unknown senate resolution %q", s)
}

func parseDecision(s string) (procedure.PresidentialDecision, error) {
	switch s {
	case "":
		return 0, fmt.Errorf("president step omits the decision")
	case "sign":
		return procedure.SignBill, nil
	case "veto":
		return procedure.VetoBill, nil
	case "tribunal":
		return procedure.ReferToTribunal, nil
	}
	return 0, fmt.Errorf("unknown presidential decision %q", s)
}

func parseOutcome(s string) (st.RulingOutcome, error) {
	switch s {
	case "constitutional":
		return st.Constitutional, nil
	case "unconstitutional":
		return st.Unconstitutional, nil
	case "partial":
		return st.PartiallyUnconstitutional, nil
	}
	return 0, fmt.Errorf("unknown tribunal outcome %q", s)
}
