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

// ValidateReferendum validates a nationwide referendum under Art. 125. The
// result is binding only if more than half of those eligible took part;
// exactly half is not binding. A binding referendum carries when the votes for
// strictly exceed the votes against.
func ValidateReferendum(r st.Referendum) error {
	if r.Eligible <= 0 {
		return &common.Violation{
			Kind:      common.ReferendumNotBinding,
			Provision: "125",
			Message:   "number of eligible voters must be positive",
		}
	}
	if r.Cast()*2 <= r.Eligible {
		return &common.Violation{
			Kind:      common.ReferendumNotBinding,
			Provision: "125(3)",
			Message: fmt.Sprintf("referendum not binding: turnout %d/%d does not exceed 50%%",
				r.Cast(), r.Eligible),
		}
	}
	if r.For <= r.Against {
		return &common.Violation{
			Kind:      common.ReferendumRejected,
			Provision: "125",
			Message:   fmt.Sprintf("referendum rejected: %d for vs %d against", r.For, r.Against),
		}
	}
	return nil
}

// ValidateAmendmentReferendum validates the confirming referendum of the
// constitutional amendment procedure. Art. 235(6) sets no turnout requirement;
// the amendment is approved when the votes for exceed the votes against.
func ValidateAmendmentReferendum(r st.Referendum) error {
	if r.For <= r.Against {
		return &common.Violation{
			Kind:      common.ReferendumRejected,
			Provision: "235(6)",
			Message:   fmt.Sprintf("amendment not approved: %d for vs %d against", r.For, r.Against),
		}
	}
	return nil
}
