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

package common

import (
	"errors"
	"fmt"
	"strings"
)

// ViolationKind classifies a constitutional violation. The set is closed; each
// evaluator emits exactly one kind per failure.
type ViolationKind int

const (
	QuorumNotMet ViolationKind = iota
	MajorityNotReached
	IneligibleSubject
	DisproportionateRestriction
	ProhibitedExtradition
	IncompatibleOffice
	ImmunityNotWaived
	ReferendumNotBinding
	ReferendumRejected
	InvalidProcedureTransition
	DebtCeilingExceeded
	NoConfidenceInvalid
)

func (k ViolationKind) String() string {
	switch k {
	case QuorumNotMet:
		return "quorum not met"
	case MajorityNotReached:
		return "required majority not reached"
	case IneligibleSubject:
		return "subject not eligible"
	case DisproportionateRestriction:
		return "disproportionate rights restriction"
	case ProhibitedExtradition:
		return "prohibited extradition"
	case IncompatibleOffice:
		return "incompatible office"
	case ImmunityNotWaived:
		return "immunity not waived"
	case ReferendumNotBinding:
		return "referendum not binding"
	case ReferendumRejected:
		return "referendum rejected"
	case InvalidProcedureTransition:
		return "invalid procedure transition"
	case DebtCeilingExceeded:
		return "public debt ceiling exceeded"
	case NoConfidenceInvalid:
		return "no-confidence motion invalid"
	default:
		return fmt.Sprintf("ViolationKind(%d)", k)
	}
}

// Violation is the single failure value every evaluator produces. It carries
// the provision being violated, a headline message, and, for cumulative rules,
// the description of every failing condition in declared order. A Violation is
// never silently dropped; it is either returned as an error or surfaced to the
// caller unchanged.
type Violation struct {
	Kind      ViolationKind
	Provision string   // e.g. "31(3)", "55(2)", "122(5)"
	Message   string   // headline, without the article prefix
	Reasons   []string // failing condition descriptions, declared order
}

func (v *Violation) Error() string {
	if v.Provision == "" {
		return v.Detail()
	}
	return fmt.Sprintf("Art. %s: %s", v.Provision, v.Detail())
}

// Detail renders the message and reasons without the article prefix.
func (v *Violation) Detail() string {
	if len(v.Reasons) == 0 {
		return v.Message
	}
	return v.Message + ": " + strings.Join(v.Reasons, "; ")
}

// AsViolation unwraps err into a *Violation if it carries one.
func AsViolation(err error) (*Violation, bool) {
	var v *Violation
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
