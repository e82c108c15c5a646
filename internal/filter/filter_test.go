package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type status string

type record struct {
	ID     string
	Name   string
	Status status
	Dept   string
	Date   string
	Amount decimal.Decimal
}

func byStatus(r record) status { return r.Status }
func byDept(r record) string   { return r.Dept }
func byID(r record) string     { return r.ID }
func byName(r record) string   { return r.Name }
func byDate(r record) string   { return r.Date }

func fixtures() []record {
	return []record{
		{ID: "R-1", Name: "田中 太郎", Status: "pending", Dept: "管理事業部", Date: "2025-09-15", Amount: decimal.NewFromInt(100)},
		{ID: "R-2", Name: "佐藤 花子", Status: "approved", Dept: "DC事業部", Date: "2025-09-20", Amount: decimal.NewFromInt(250)},
		{ID: "R-3", Name: "高橋 健", Status: "rejected", Dept: "管理事業部", Date: "2025-08-31", Amount: decimal.NewFromInt(50)},
	}
}

func ids(rs []record) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.ID
	}
	return out
}

func TestApplySingleStatus(t *testing.T) {
	got := Apply(fixtures(), In(byStatus, []status{"approved"}))
	assert.Equal(t, []string{"R-2"}, ids(got))
}

func TestApplyEmptyFilterPreservesOrder(t *testing.T) {
	in := fixtures()

	got := Apply(in)
	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("Apply() without predicates mismatch (-want +got):\n%s", diff)
	}

	got = Apply(in, In(byStatus, nil), Equals(byDept, All), Equals(byDept, ""), Contains[record](""), HasPrefix(byDate, ""))
	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("Apply() with inactive predicates mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyDoesNotAlias(t *testing.T) {
	in := fixtures()
	got := Apply(in)
	got[0].Name = "changed"
	assert.Equal(t, "田中 太郎", in[0].Name)
}

func TestApplyIsIdempotent(t *testing.T) {
	criteria := [][]Predicate[record]{
		{In(byStatus, []status{"pending", "rejected"})},
		{Equals(byDept, "管理事業部")},
		{Contains("佐藤", byName, byID)},
		{HasPrefix(byDate, "2025-09"), In(byStatus, []status{"approved"})},
		{In(byStatus, []status{"unknown"})},
		{},
	}

	for i, preds := range criteria {
		once := Apply(fixtures(), preds...)
		twice := Apply(once, preds...)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("criteria %d not idempotent (-once +twice):\n%s", i, diff)
		}
	}
}

func TestApplyCombinesWithAnd(t *testing.T) {
	got := Apply(fixtures(),
		In(byStatus, []status{"pending", "rejected"}),
		HasPrefix(byDate, "2025-09"),
	)
	assert.Equal(t, []string{"R-1"}, ids(got))
}

func TestInIsOrWithinField(t *testing.T) {
	got := Apply(fixtures(), In(byStatus, []status{"rejected", "pending"}))
	assert.Equal(t, []string{"R-1", "R-3"}, ids(got))
}

func TestContains(t *testing.T) {
	tests := []struct {
		name   string
		needle string
		want   []string
	}{
		{"matches name", "花子", []string{"R-2"}},
		{"matches id", "R-3", []string{"R-3"}},
		{"matches several", "R-", []string{"R-1", "R-2", "R-3"}},
		{"no match", "鈴木", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(fixtures(), Contains(tt.needle, byName, byID))
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestMember(t *testing.T) {
	set := map[string]struct{}{"高橋 健": {}, "田中 太郎": {}}
	got := Apply(fixtures(), Member(byName, set))
	assert.Equal(t, []string{"R-1", "R-3"}, ids(got))
}

func TestParseList(t *testing.T) {
	tests := []struct {
		raw  string
		want []status
	}{
		{"", nil},
		{"pending", []status{"pending"}},
		{"pending,rejected", []status{"pending", "rejected"}},
		{"pending,,rejected,", []status{"pending", "rejected"}},
		{",", nil},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseList[status](tt.raw))
		})
	}
}

func TestExpandAll(t *testing.T) {
	all := []status{"pending", "approved", "rejected"}

	assert.Equal(t, all, ExpandAll([]status{"all"}, all))
	assert.Equal(t, all, ExpandAll([]status{"pending", "all"}, all))
	assert.Equal(t, []status{"approved"}, ExpandAll([]status{"approved"}, all))
	assert.Nil(t, ExpandAll[status](nil, all))
}

func TestUniqueKeepsFirstSeenOrder(t *testing.T) {
	assert.Equal(t, []string{"管理事業部", "DC事業部"}, Unique(fixtures(), byDept))
	assert.Nil(t, Unique([]record{}, byDept))
}
