package service

import (
	"testing"
	"time"
)

func facts(rows ...resourceFacts) []resourceFacts { return rows }

func TestFoldOverview(t *testing.T) {
	t.Parallel()

	got := foldOverview(facts(
		resourceFacts{Status: "Available", IdleDuration: 3, IsUrgent: true},
		resourceFacts{Status: "Assigned", IdleDuration: 0},
		resourceFacts{Status: "On Hold", IdleDuration: 1},
		resourceFacts{Status: "Available", IdleDuration: 2, IsUrgent: true},
	))

	want := OverviewStats{Total: 4, Urgent: 2, Available: 2, Assigned: 1, AvgIdleDuration: 1.5}
	if got != want {
		t.Fatalf("foldOverview() = %+v, want %+v", got, want)
	}
}

func TestFoldOverview_Empty(t *testing.T) {
	t.Parallel()

	got := foldOverview(nil)
	if got.Total != 0 || got.AvgIdleDuration != 0 {
		t.Fatalf("foldOverview(nil) = %+v, want zero stats", got)
	}
}

func TestFoldOverview_MeanRoundsToOneDecimal(t *testing.T) {
	t.Parallel()

	// (1 + 1 + 2) / 3 = 1.333... rounds to 1.3
	got := foldOverview(facts(
		resourceFacts{Status: "Available", IdleDuration: 1},
		resourceFacts{Status: "Available", IdleDuration: 1},
		resourceFacts{Status: "Available", IdleDuration: 2},
	))
	if got.AvgIdleDuration != 1.3 {
		t.Fatalf("AvgIdleDuration = %v, want 1.3", got.AvgIdleDuration)
	}
}

func TestFoldDepartments(t *testing.T) {
	t.Parallel()

	got := foldDepartments(facts(
		resourceFacts{Department: "IT", Status: "Available", IdleDuration: 2, IsUrgent: true},
		resourceFacts{Department: "IT", Status: "Assigned", IdleDuration: 0},
		resourceFacts{Department: "IT", Status: "Available", IdleDuration: 1},
		resourceFacts{Department: "QA", Status: "Available", IdleDuration: 4, IsUrgent: true},
	))

	if len(got) != 2 {
		t.Fatalf("foldDepartments() returned %d departments, want 2", len(got))
	}
	if got[0].Department != "IT" || got[1].Department != "QA" {
		t.Fatalf("departments not sorted by count desc: %+v", got)
	}
	it := got[0]
	if it.Count != 3 || it.Available != 2 || it.Urgent != 1 || it.AvgIdleDuration != 1.0 {
		t.Errorf("IT stats = %+v", it)
	}
	qa := got[1]
	if qa.Count != 1 || qa.Urgent != 1 || qa.AvgIdleDuration != 4.0 {
		t.Errorf("QA stats = %+v", qa)
	}

	total := 0
	for _, d := range got {
		total += d.Count
	}
	if total != 4 {
		t.Errorf("department counts sum to %d, want 4", total)
	}
}

func TestFoldSkills(t *testing.T) {
	t.Parallel()

	got := foldSkills(facts(
		resourceFacts{Skills: []string{"Go", "SQL"}},
		resourceFacts{Skills: []string{"Go"}},
		resourceFacts{Skills: []string{"SQL", "Go"}},
	), topSkillsLimit)

	if len(got) != 2 {
		t.Fatalf("foldSkills() returned %d skills, want 2", len(got))
	}
	if got[0].Skill != "Go" || got[0].Count != 3 {
		t.Errorf("top skill = %+v, want Go:3", got[0])
	}
	if got[1].Skill != "SQL" || got[1].Count != 2 {
		t.Errorf("second skill = %+v, want SQL:2", got[1])
	}
}

func TestFoldSkills_LimitAndTieBreak(t *testing.T) {
	t.Parallel()

	rows := make([]resourceFacts, 0, 12)
	for _, skill := range []string{"Angular", "C#", "Docker", "Elixir", "Figma", "Go", "Haskell", "Java", "Kotlin", "Lua", "MySQL", "Nginx"} {
		rows = append(rows, resourceFacts{Skills: []string{skill}})
	}

	got := foldSkills(rows, topSkillsLimit)
	if len(got) != topSkillsLimit {
		t.Fatalf("foldSkills() returned %d skills, want %d", len(got), topSkillsLimit)
	}
	// All tied at 1, first-encountered order breaks the tie.
	if got[0].Skill != "Angular" {
		t.Errorf("first skill = %q, want Angular", got[0].Skill)
	}
}

func TestFoldTrends(t *testing.T) {
	t.Parallel()

	got := foldTrends(facts(
		resourceFacts{Status: "Assigned", CreatedAt: date(2026, time.May, 3)},
		resourceFacts{Status: "Available", CreatedAt: date(2026, time.May, 20)},
		resourceFacts{Status: "Assigned", CreatedAt: date(2026, time.March, 9)},
	))

	if len(got) != 2 {
		t.Fatalf("foldTrends() returned %d buckets, want 2", len(got))
	}
	if got[0].Month != "2026-03" || got[0].Total != 1 || got[0].Assigned != 1 {
		t.Errorf("first bucket = %+v", got[0])
	}
	if got[1].Month != "2026-05" || got[1].Total != 2 || got[1].Assigned != 1 {
		t.Errorf("second bucket = %+v", got[1])
	}
}

func TestMonthStart(t *testing.T) {
	t.Parallel()

	got := monthStart(time.Date(2026, time.June, 17, 23, 45, 0, 0, time.UTC))
	want := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("monthStart() = %v, want %v", got, want)
	}
}
