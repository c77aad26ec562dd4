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

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/kgluszczyk/polish-constitution-as-code/common"
	"github.com/kgluszczyk/polish-constitution-as-code/registry"
	"github.com/kgluszczyk/polish-constitution-as-code/st"
	"github.com/kgluszczyk/polish-constitution-as-code/vote"
)

var VoteCmd = cli.Command{
	Action:    doVote,
	Name:      "vote",
	Usage:     "Evaluate a chamber vote tally against a constitutional action",
	ArgsUsage: "<action>",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "for",
			Usage: "votes in favour",
		},
		&cli.IntFlag{
			Name:  "against",
			Usage: "votes against",
		},
		&cli.IntFlag{
			Name:  "abstain",
			Usage: "abstentions",
		},
		&cli.IntFlag{
			Name:  "members",
			Usage: "statutory membership override (0 = constitutional default)",
		},
	},
}

func doVote(ctx *cli.Context) error {
	name := ctx.Args().First()
	if name == "" {
		return fmt.Errorf("missing action name; try 'konst list'")
	}
	action, err := vote.ActionByName(name)
	if err != nil {
		return fmt.Errorf("%w; try 'konst list'", err)
	}
	for _, flag := range []string{"for", "against", "abstain", "members"} {
		if n := ctx.Int(flag); n < 0 {
			return fmt.Errorf("--%s must not be negative, got %d", flag, n)
		}
	}

	tally := st.VoteTally{
		Chamber:          action.Chamber,
		For:              ctx.Int("for"),
		Against:          ctx.Int("against"),
		Abstain:          ctx.Int("abstain"),
		StatutoryMembers: ctx.Int("members"),
	}

	idx, err := registry.NewIndex()
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d for, %d against, %d abstaining (%d of %d present)\n",
		action.Name, tally.For, tally.Against, tally.Abstain,
		tally.TotalPresent(), tally.Members())

	if err := action.Evaluate(tally); err != nil {
		v, _ := common.AsViolation(err)
		color.Red("FAILED  %s", registry.Cite(idx, v))
		return cli.Exit("", 1)
	}
	color.Green("PASSED  %s majority reached, Art. %s", action.Majority, action.Provision)
	return nil
}
