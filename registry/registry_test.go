package registry

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kgluszczyk/polish-constitution-as-code/common"
	"github.com/kgluszczyk/polish-constitution-as-code/procedure"
	"github.com/kgluszczyk/polish-constitution-as-code/spc"
)

func TestIndex_LookupResolvesKnownProvisions(t *testing.T) {
	idx, err := NewIndex()
	require.NoError(t, err)

	tests := map[string]struct {
		id      string
		article int
	}{
		"proportionality":   {"31(3)", 31},
		"extradition bar":   {"55(1)", 55},
		"veto override":     {"122(5)", 122},
		"debt ceiling":      {"216(5)", 216},
		"amendment signing": {"235(7)", 235},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			p, ok := idx.Lookup(test.id)
			require.True(t, ok, "provision %s must be indexed", test.id)
			require.Equal(t, test.article, p.Article)
			require.NotEmpty(t, p.Title)
		})
	}

	_, ok := idx.Lookup("999")
	require.False(t, ok)
}

func TestIndex_AllIsSortedAndDistinct(t *testing.T) {
	idx, err := NewIndex()
	require.NoError(t, err)

	all := idx.All()
	require.NotEmpty(t, all)
	ids := make([]string, len(all))
	for i, p := range all {
		ids[i] = p.ID
	}
	require.True(t, sort.StringsAreSorted(ids))
	seen := map[string]bool{}
	for _, id := range ids {
		require.False(t, seen[id], "duplicate provision %s", id)
		seen[id] = true
	}
}

// TestIndex_CoversEveryCitableProvision cross-references the register against
// the provisions the rules and procedures actually emit: every citable
// identifier must be indexed, and the index must not carry dead entries.
func TestIndex_CoversEveryCitableProvision(t *testing.T) {
	citable := map[string]bool{}
	for _, rule := range spc.Spec.Rules() {
		for _, id := range rule.Provisions {
			citable[id] = true
		}
	}
	for _, id := range procedure.BillProvisions() {
		citable[id] = true
	}
	for _, id := range procedure.AmendmentProvisions() {
		citable[id] = true
	}
	for _, id := range procedure.FormationProvisions() {
		citable[id] = true
	}

	idx, err := NewIndex()
	require.NoError(t, err)

	indexed := map[string]bool{}
	for _, p := range idx.All() {
		indexed[p.ID] = true
	}

	for id := range citable {
		require.True(t, indexed[id], "emitted provision %s is not indexed", id)
	}
	for id := range indexed {
		require.True(t, citable[id], "indexed provision %s is never emitted", id)
	}
}

func TestCite_RendersTheIndexedTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	idx := NewMockIndex(ctrl)
	idx.EXPECT().Lookup("55(1)").Return(Provision{
		ID: "55(1)", Article: 55, Title: "prohibition of extraditing Polish citizens",
	}, true)

	v := &common.Violation{
		Kind:      common.ProhibitedExtradition,
		Provision: "55(1)",
		Message:   "extradition of a Polish citizen is prohibited",
	}
	got := Cite(idx, v)
	want := "Art. 55(1) (prohibition of extraditing Polish citizens): extradition of a Polish citizen is prohibited"
	require.Equal(t, want, got)
}

func TestCite_FallsBackToThePlainErrorForUnknownProvisions(t *testing.T) {
	ctrl := gomock.NewController(t)
	idx := NewMockIndex(ctrl)
	idx.EXPECT().Lookup("999").Return(Provision{}, false)

	v := &common.Violation{Provision: "999", Message: "mystery"}
	require.Equal(t, "Art. 999: mystery", Cite(idx, v))
}
