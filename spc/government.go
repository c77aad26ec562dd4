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

	"github.com/kgluszczyk/polish-constitution-as-code/common"
	"github.com/kgluszczyk/polish-constitution-as-code/st"
	"github.com/kgluszczyk/polish-constitution-as-code/vote"
)

// CheckNoConfidence validates a constructive vote of no confidence. The motion
// must name a successor Prime Minister, be moved by at least 46 Deputies, and
// carry by a majority of the statutory number of Deputies. Art. 158.
func CheckNoConfidence(m st.NoConfidenceMotion) error {
	if m.Successor == "" {
		return &common.Violation{
			Kind:      common.NoConfidenceInvalid,
			Provision: "158(1)",
			Message:   "motion names no candidate for Prime Minister; the vote is constructive",
		}
	}
	if m.Sponsors < common.NoConfidenceSponsors {
		return &common.Violation{
			Kind:      common.NoConfidenceInvalid,
			Provision: "158(2)",
			Message: fmt.Sprintf("motion moved by %d Deputies, at least %d required",
				m.Sponsors, common.NoConfidenceSponsors),
		}
	}
	return vote.NoConfidence.Evaluate(m.Tally)
}

// CheckPublicDebt enforces the constitutional debt ceiling: no loans or
// guarantees may push public debt beyond three fifths of annual GDP.
// Art. 216(5).
func CheckPublicDebt(f st.PublicFinances) error {
	if f.Debt*5 > f.GDP*3 {
		return &common.Violation{
			Kind:      common.DebtCeilingExceeded,
			Provision: "216(5)",
			Message:   fmt.Sprintf("public debt %d exceeds 3/5 of GDP %d", f.Debt, f.GDP),
		}
	}
	return nil
}
