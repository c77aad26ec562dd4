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
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/kgluszczyk/polish-constitution-as-code/common"
	"github.com/kgluszczyk/polish-constitution-as-code/registry"
	"github.com/kgluszczyk/polish-constitution-as-code/spc"
	"github.com/kgluszczyk/polish-constitution-as-code/st"
)

var CheckCmd = cli.Command{
	Name:  "check",
	Usage: "Evaluate a YAML-described record against a constitutional rule",
	Subcommands: []*cli.Command{
		{
			Action:    doCheckRestriction,
			Name:      "restriction",
			Usage:     "Rights-restriction proportionality test, Art. 31(3)",
			ArgsUsage: "<file.yaml>",
		},
		{
			Action:    doCheckExtradition,
			Name:      "extradition",
			Usage:     "Extradition admissibility, Art. 55",
			ArgsUsage: "<file.yaml>",
		},
		{
			Action:    doCheckEligibility,
			Name:      "eligibility",
			Usage:     "Electoral eligibility, Art. 99 and 127",
			ArgsUsage: "<file.yaml>",
		},
	},
}

func loadYAML(ctx *cli.Context, out any) error {
	path := ctx.Args().First()
	if path == "" {
		return fmt.Errorf("missing input file")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, out)
}

func report(verdict string, err error) error {
	if err == nil {
		color.Green("PASSED  %s", verdict)
		return nil
	}
	idx, idxErr := registry.NewIndex()
	if idxErr != nil {
		return idxErr
	}
	if v, ok := common.AsViolation(err); ok {
		color.Red("FAILED  %s", registry.Cite(idx, v))
		return cli.Exit("", 1)
	}
	return err
}

func doCheckRestriction(ctx *cli.Context) error {
	var in struct {
		Description      string `yaml:"description"`
		ByStatute        bool   `yaml:"by_statute"`
		Necessary        bool   `yaml:"necessary_in_democratic_state"`
		LegitimateAim    bool   `yaml:"legitimate_aim"`
		Proportionate    bool   `yaml:"proportionate"`
		PreservesEssence bool   `yaml:"preserves_essence"`
	}
	if err := loadYAML(ctx, &in); err != nil {
		return err
	}
	err := spc.ValidateRightsRestriction(st.RightsRestriction{
		Description:                in.Description,
		ByStatute:                  in.ByStatute,
		NecessaryInDemocraticState: in.Necessary,
		LegitimateAim:              in.LegitimateAim,
		Proportionate:              in.Proportionate,
		PreservesEssence:           in.PreservesEssence,
	})
	return report("restriction satisfies Art. 31(3)", err)
}

func doCheckExtradition(ctx *cli.Context) error {
	var in struct {
		RequestingAuthority       string `yaml:"requesting_authority"`
		PolishCitizen             bool   `yaml:"subject_is_polish_citizen"`
		RatifiedTreaty            bool   `yaml:"based_on_ratified_treaty"`
		InternationalJudicialBody bool   `yaml:"international_judicial_body"`
		GenocideOrWarCrime        bool   `yaml:"genocide_or_war_crime"`
		ActCommittedAbroad        bool   `yaml:"act_committed_abroad"`
		DoubleCriminality         bool   `yaml:"double_criminality"`
		PoliticalNonviolent       bool   `yaml:"political_nonviolent_offense"`
		ViolatesHumanRights       bool   `yaml:"violates_human_rights"`
		CourtApproved             bool   `yaml:"court_approved"`
	}
	if err := loadYAML(ctx, &in); err != nil {
		return err
	}
	err := spc.ValidateExtradition(st.ExtraditionRequest{
		RequestingAuthority:        in.RequestingAuthority,
		SubjectIsPolishCitizen:     in.PolishCitizen,
		BasedOnRatifiedTreaty:      in.RatifiedTreaty,
		InternationalJudicialBody:  in.InternationalJudicialBody,
		GenocideOrWarCrime:         in.GenocideOrWarCrime,
		ActCommittedAbroad:         in.ActCommittedAbroad,
		DoubleCriminality:          in.DoubleCriminality,
		PoliticalNonviolentOffense: in.PoliticalNonviolent,
		ViolatesHumanRights:        in.ViolatesHumanRights,
		CourtApproved:              in.CourtApproved,
	})
	return report("extradition is constitutionally permissible", err)
}

func doCheckEligibility(ctx *cli.Context) error {
	var in struct {
		Office        string `yaml:"office"`
		Name          string `yaml:"name"`
		DateOfBirth   string `yaml:"date_of_birth"`
		PolishCitizen bool   `yaml:"polish_citizen"`
		Convicted     bool   `yaml:"final_conviction"`
		ElectionDate  string `yaml:"election_date"`
		Signatures    int    `yaml:"signatures"`
	}
	if err := loadYAML(ctx, &in); err != nil {
		return err
	}
	dob, err := time.Parse(time.DateOnly, in.DateOfBirth)
	if err != nil {
		return fmt.Errorf("invalid date_of_birth: %w", err)
	}
	election, err := time.Parse(time.DateOnly, in.ElectionDate)
	if err != nil {
		return fmt.Errorf("invalid election_date: %w", err)
	}
	candidacy := st.Candidacy{
		Citizen: st.Citizen{
			Name:            in.Name,
			DateOfBirth:     dob,
			PolishCitizen:   in.PolishCitizen,
			FinalConviction: in.Convicted,
		},
		ElectionDate: election,
		Signatures:   in.Signatures,
	}
	switch in.Office {
	case "sejm":
		err = spc.SejmEligibility.Check(candidacy)
	case "senate":
		err = spc.SenateEligibility.Check(candidacy)
	case "president":
		err = spc.PresidentialEligibility.Check(candidacy)
	default:
		return fmt.Errorf("unknown office %q, expected sejm, senate or president", in.Office)
	}
	return report(fmt.Sprintf("%s is eligible for office %q", in.Name, in.Office), err)
}
