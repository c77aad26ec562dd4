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
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/kgluszczyk/polish-constitution-as-code/procedure"
	"github.com/kgluszczyk/polish-constitution-as-code/registry"
	"github.com/kgluszczyk/polish-constitution-as-code/spc"
)

var ListCmd = cli.Command{
	Action: doList,
	Name:   "list",
	Usage:  "List all rules, procedures, and the provisions they cite",
}

func doList(ctx *cli.Context) error {
	idx, err := registry.NewIndex()
	if err != nil {
		return err
	}

	fmt.Println("Rules:")
	for _, info := range spc.Spec.Rules() {
		fmt.Printf("  %-28s %s\n", info.Name, strings.Join(info.Provisions, ", "))
	}

	fmt.Println("Procedures:")
	fmt.Printf("  %-28s %s\n", "legislative_process", strings.Join(procedure.BillProvisions(), ", "))
	fmt.Printf("  %-28s %s\n", "constitutional_amendment", strings.Join(procedure.AmendmentProvisions(), ", "))
	fmt.Printf("  %-28s %s\n", "government_formation", strings.Join(procedure.FormationProvisions(), ", "))

	fmt.Println("Provisions:")
	for _, p := range idx.All() {
		fmt.Printf("  %-8s %s\n", p.ID, p.Title)
	}
	return nil
}
