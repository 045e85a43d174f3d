package domain

import "testing"

func TestPruneExperience(t *testing.T) {
	entries := []Experience{
		{Title: "Backend Engineer", Company: "Acme", StartDate: "2021-03"},
		{Title: "Missing company", StartDate: "2020-01"},
		{Company: "No title", StartDate: "2019-05"},
		{Title: "No start date", Company: "Acme"},
		{Title: "Current role", Company: "Beta", StartDate: "2023-01", Current: true},
	}

	kept := PruneExperience(entries)
	if len(kept) != 2 {
		t.Fatalf("kept %d entries, want 2", len(kept))
	}
	if kept[0].Title != "Backend Engineer" || kept[1].Title != "Current role" {
		t.Errorf("wrong entries kept: %+v", kept)
	}
}

func TestPruneEducation(t *testing.T) {
	entries := []Education{
		{Degree: "BSc Computer Science", Institution: "UoN", StartDate: "2016-09"},
		{Degree: "Incomplete", Institution: "UoN"},
		{Institution: "No degree", StartDate: "2018-01"},
	}

	kept := PruneEducation(entries)
	if len(kept) != 1 {
		t.Fatalf("kept %d entries, want 1", len(kept))
	}
	if kept[0].Degree != "BSc Computer Science" {
		t.Errorf("wrong entry kept: %+v", kept[0])
	}
}

func TestPrunePortfolio(t *testing.T) {
	entries := []PortfolioItem{
		{Title: "Side project", URL: "https://example.com"},
		{Title: "No URL"},
		{URL: "https://example.com/untitled"},
	}

	kept := PrunePortfolio(entries)
	if len(kept) != 1 {
		t.Fatalf("kept %d entries, want 1", len(kept))
	}
}

func TestPruneKeepsEmptyNonNil(t *testing.T) {
	kept := PruneExperience(nil)
	if kept == nil {
		t.Error("PruneExperience(nil) returned nil, want empty slice")
	}
	if len(kept) != 0 {
		t.Errorf("PruneExperience(nil) kept %d entries", len(kept))
	}
}

func TestBeforeSaveDefaults(t *testing.T) {
	p := &JobSeekerProfile{
		Experience: []Experience{{Title: "only a title"}},
	}
	p.BeforeSave()

	if p.Availability != AvailabilityImmediate {
		t.Errorf("availability = %q, want %q", p.Availability, AvailabilityImmediate)
	}
	if p.Currency != "USD" {
		t.Errorf("currency = %q, want USD", p.Currency)
	}
	if len(p.Experience) != 0 {
		t.Errorf("incomplete experience survived BeforeSave: %+v", p.Experience)
	}
}

func TestBeforeSavePreservesExplicitValues(t *testing.T) {
	p := &JobSeekerProfile{
		Availability: AvailabilityNotLooking,
		Currency:     "KES",
	}
	p.BeforeSave()

	if p.Availability != AvailabilityNotLooking {
		t.Errorf("availability overwritten to %q", p.Availability)
	}
	if p.Currency != "KES" {
		t.Errorf("currency overwritten to %q", p.Currency)
	}
}

func TestParseAvailability(t *testing.T) {
	for _, valid := range []string{"immediate", "2weeks", "1month", "not-looking"} {
		if _, err := ParseAvailability(valid); err != nil {
			t.Errorf("ParseAvailability(%q) unexpected error: %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "soon", "Immediate", "two-weeks"} {
		if _, err := ParseAvailability(invalid); err == nil {
			t.Errorf("ParseAvailability(%q) expected error", invalid)
		}
	}
}
