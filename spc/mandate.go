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

package spc

import (
	"fmt"
	"slices"

	"github.com/kgluszczyk/polish-constitution-as-code/common"
)

// IncompatibleWithMandate lists the offices a parliamentary mandate may not be
// held jointly with. Members of the Council of Ministers and secretaries of
// state are exempt and deliberately absent from the list. Art. 103.
var IncompatibleWithMandate = []string{
	"Senator",
	"President of the National Bank of Poland",
	"President of the Supreme Chamber of Control",
	"Commissioner for Citizens' Rights",
	"Commissioner for Children's Rights",
	"Member of the Council for Monetary Policy",
	"Member of the National Council of Radio Broadcasting and Television",
	"Ambassador",
	"Civil servant",
	"Soldier on active duty",
	"Police officer",
	"Security services officer",
}

// CheckIncompatibility checks whether an office may be held jointly with a
// parliamentary mandate. Art. 103 for Deputies, applied to Senators through
// Art. 108.
func CheckIncompatibility(office string) error {
	if slices.Contains(IncompatibleWithMandate, office) {
		return &common.Violation{
			Kind:      common.IncompatibleOffice,
			Provision: "103",
			Message:   fmt.Sprintf("a parliamentary mandate cannot be held jointly with the office of %q", office),
		}
	}
	return nil
}

// CheckImmunity checks whether criminal prosecution of a Deputy or Senator is
// permitted. Prosecution requires the consent of the member's chamber from the
// announcement of election results until the mandate expires. Art. 105(2),
// applied to Senators through Art. 108.
func CheckImmunity(chamber common.Chamber, consentGiven bool) error {
	if !consentGiven {
		return &common.Violation{
			Kind:      common.ImmunityNotWaived,
			Provision: "105",
			Message: fmt.Sprintf("criminal prosecution requires consent of the %v; immunity protects the member until consent is granted",
				chamber),
		}
	}
	return nil
}
