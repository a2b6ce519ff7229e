package engine

import (
	"testing"
	"time"
)

func TestAgeGroupBuckets(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		ageDays float64
		want    string
	}{
		{0, "0–3 Days"},
		{1.5, "0–3 Days"},
		{3, "0–3 Days"},
		{3.01, "3–5 Days"},
		{5, "3–5 Days"},
		{7, "5–10 Days"},
		{10, "5–10 Days"},
		{15, "10–15 Days"},
		{22, "15–30 Days"},
		{30, "15–30 Days"},
		{60, "30–60 Days"},
		{90, "60–90 Days"},
		{90.5, "> 90 Days"},
		{400, "> 90 Days"},
	}

	for _, tc := range tests {
		createdOn := now.Add(-time.Duration(tc.ageDays * 24 * float64(time.Hour)))
		if got := AgeGroup(now, createdOn); got != tc.want {
			t.Fatalf("age %.2f days: expected %q, got %q", tc.ageDays, tc.want, got)
		}
	}
}

func TestAgeGroupFutureTimestampClampsToZero(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	createdOn := now.Add(48 * time.Hour)

	if got := AgeGroup(now, createdOn); got != "0–3 Days" {
		t.Fatalf("expected future case in first bucket, got %q", got)
	}
}

func TestAgeGroupMonotonic(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	order := map[string]int{
		"0–3 Days": 0, "3–5 Days": 1, "5–10 Days": 2, "10–15 Days": 3,
		"15–30 Days": 4, "30–60 Days": 5, "60–90 Days": 6, "> 90 Days": 7,
	}

	prev := -1
	for days := 0; days <= 120; days++ {
		label := AgeGroup(now, now.Add(-time.Duration(days)*24*time.Hour))
		rank, ok := order[label]
		if !ok {
			t.Fatalf("unknown label %q", label)
		}
		if rank < prev {
			t.Fatalf("bucket rank decreased at %d days: %q", days, label)
		}
		prev = rank
	}
}
