package vote

import (
	"testing"

	"pgregory.net/rand"

	"github.com/kgluszczyk/polish-constitution-as-code/common"
	"github.com/kgluszczyk/polish-constitution-as-code/st"
)

func sejmTally(votesFor, against, abstain int) st.VoteTally {
	return st.VoteTally{Chamber: common.Sejm, For: votesFor, Against: against, Abstain: abstain}
}

func TestCheckThresholds_MajorityFormulas(t *testing.T) {
	tests := map[string]struct {
		tally   st.VoteTally
		kind    common.MajorityKind
		reached bool
	}{
		"simple carries on one vote margin": {
			sejmTally(231, 230, 0), common.Simple, true,
		},
		"simple tie fails": {
			sejmTally(230, 230, 0), common.Simple, false,
		},
		"simple ignores abstentions": {
			sejmTally(3, 2, 455), common.Simple, true,
		},
		"absolute needs more than half of 460": {
			sejmTally(231, 100, 129), common.Absolute, true,
		},
		"absolute exactly half fails": {
			sejmTally(230, 0, 230), common.Absolute, false,
		},
		"absolute counts members not present": {
			sejmTally(200, 30, 1), common.Absolute, false,
		},
		"three fifths exactly 276 of 460 carries": {
			sejmTally(276, 160, 24), common.ThreeFifths, true,
		},
		"three fifths 275 of 460 fails": {
			sejmTally(275, 160, 25), common.ThreeFifths, false,
		},
		"two thirds exactly 307 of 460 carries": {
			sejmTally(307, 100, 53), common.TwoThirds, true,
		},
		"two thirds 306 of 460 fails": {
			sejmTally(306, 100, 54), common.TwoThirds, false,
		},
		"senate absolute 51 of 100 carries": {
			st.VoteTally{Chamber: common.Senate, For: 51, Against: 40, Abstain: 9}, common.Absolute, true,
		},
		"senate absolute 50 of 100 fails": {
			st.VoteTally{Chamber: common.Senate, For: 50, Against: 40, Abstain: 10}, common.Absolute, false,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			err := CheckThresholds(test.tally, test.kind)
			if test.reached && err != nil {
				t.Errorf("expected the majority to carry, got %v", err)
			}
			if !test.reached {
				v, ok := common.AsViolation(err)
				if !ok {
					t.Fatalf("expected a violation, got %v", err)
				}
				if v.Kind != common.MajorityNotReached {
					t.Errorf("unexpected kind: %v", v.Kind)
				}
			}
		})
	}
}

func TestCheckThresholds_QuorumPrecedesMajority(t *testing.T) {
	// 100 of 460 present; the tally would also miss every majority, but the
	// quorum failure must be the reported violation.
	tally := sejmTally(90, 10, 0)
	for _, kind := range []common.MajorityKind{
		common.Simple, common.Absolute, common.TwoThirds, common.ThreeFifths,
	} {
		err := CheckThresholds(tally, kind)
		v, ok := common.AsViolation(err)
		if !ok {
			t.Fatalf("expected a violation for %v, got %v", kind, err)
		}
		if v.Kind != common.QuorumNotMet {
			t.Errorf("quorum must be checked before the %v majority, got %v", kind, v.Kind)
		}
	}
}

func TestCheckThresholds_ExactlyHalfPresentIsQuorate(t *testing.T) {
	// 230 of 460 present satisfies the quorum; the simple majority carries.
	if err := CheckThresholds(sejmTally(150, 80, 0), common.Simple); err != nil {
		t.Errorf("exactly half present must be quorate, got %v", err)
	}
	// 229 of 460 is not quorate.
	err := CheckThresholds(sejmTally(150, 79, 0), common.Simple)
	if v, ok := common.AsViolation(err); !ok || v.Kind != common.QuorumNotMet {
		t.Errorf("expected a quorum violation, got %v", err)
	}
	// Senate: 50 of 100 present is quorate.
	if err := CheckThresholds(st.VoteTally{Chamber: common.Senate, For: 30, Against: 20}, common.Simple); err != nil {
		t.Errorf("exactly half of the Senate must be quorate, got %v", err)
	}
}

func TestCheckThresholds_PanicsOnNegativeCounts(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a negative count")
		}
	}()
	_ = CheckThresholds(sejmTally(-1, 0, 0), common.Simple)
}

func TestCheckThresholds_PanicsOnUnknownMajority(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an unknown majority kind")
		}
	}()
	_ = CheckThresholds(sejmTally(230, 100, 0), common.MajorityKind(42))
}

func TestCheckThresholds_MatchesClosedFormForRandomTallies(t *testing.T) {
	const N = 10000

	rnd := rand.New(0)
	kinds := []common.MajorityKind{
		common.Simple, common.Absolute, common.TwoThirds, common.ThreeFifths,
	}
	for i := 0; i < N; i++ {
		members := 1 + rnd.Intn(1000)
		tally := st.VoteTally{
			Chamber:          common.Sejm,
			For:              rnd.Intn(members + 1),
			Against:          rnd.Intn(members + 1),
			Abstain:          rnd.Intn(members + 1),
			StatutoryMembers: members,
		}
		kind := kinds[rnd.Intn(len(kinds))]

		err := CheckThresholds(tally, kind)

		if tally.TotalPresent()*2 < members {
			v, ok := common.AsViolation(err)
			if !ok || v.Kind != common.QuorumNotMet {
				t.Fatalf("tally %+v: expected a quorum violation, got %v", tally, err)
			}
			continue
		}
		var want bool
		switch kind {
		case common.Simple:
			want = tally.For > tally.Against
		case common.Absolute:
			want = 2*tally.For > members
		case common.TwoThirds:
			want = 3*tally.For >= 2*members
		case common.ThreeFifths:
			want = 5*tally.For >= 3*members
		}
		if want != (err == nil) {
			t.Fatalf("tally %+v, kind %v: wanted reached=%v, got %v", tally, kind, want, err)
		}
	}
}
