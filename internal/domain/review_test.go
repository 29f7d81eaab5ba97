package domain

import "testing"

func TestReviewStatus_CanTransition(t *testing.T) {
	cases := []struct {
		from, to ReviewStatus
		want     bool
	}{
		{ReviewPending, ReviewApproved, true},
		{ReviewPending, ReviewRejected, true},
		{ReviewApproved, ReviewRejected, true},
		{ReviewRejected, ReviewApproved, true},
		{ReviewApproved, ReviewPending, false},
		{ReviewRejected, ReviewPending, false},
		{ReviewPending, ReviewPending, false},
		{ReviewApproved, ReviewApproved, false},
		{"bogus", ReviewApproved, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransition(tc.to); got != tc.want {
			t.Fatalf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestReviewStatus_Valid(t *testing.T) {
	for _, s := range []ReviewStatus{ReviewPending, ReviewApproved, ReviewRejected} {
		if !s.Valid() {
			t.Fatalf("%q should be valid", s)
		}
	}
	if ReviewStatus("").Valid() {
		t.Fatalf("empty status should be invalid")
	}
}

func TestRelationship_Labels(t *testing.T) {
	for _, r := range Relationships() {
		if Relationship(r).Label() == "" {
			t.Fatalf("missing label for %q", r)
		}
	}
	if Relationship("cousin").Label() != "" {
		t.Fatalf("unknown relationship should have no label")
	}
}
