package repository

import (
	"strings"
	"testing"

	"github.com/kimthedrew/jobsabroad/internal/domain"
)

func int64p(v int64) *int64 { return &v }

func TestBuildCandidateWhereEmptyFilter(t *testing.T) {
	clauses, args := buildCandidateWhere(domain.CandidateFilter{})

	if len(clauses) != 1 {
		t.Fatalf("got %d clauses, want only the role clause: %v", len(clauses), clauses)
	}
	if clauses[0] != "u.user_type = 'jobseeker'" {
		t.Errorf("first clause = %q, want role clause", clauses[0])
	}
	if len(args) != 0 {
		t.Errorf("empty filter produced %d args", len(args))
	}
}

// The free-text search term must produce two clauses that compose by AND: one
// over account fields and one over profile fields, both bound to the same term.
func TestBuildCandidateWhereSearchProducesBothStages(t *testing.T) {
	clauses, args := buildCandidateWhere(domain.CandidateFilter{Search: "golang"})

	if len(clauses) != 3 {
		t.Fatalf("got %d clauses, want role + account stage + profile stage: %v", len(clauses), clauses)
	}
	if !strings.Contains(clauses[1], "u.first_name ILIKE") || !strings.Contains(clauses[1], "u.email ILIKE") {
		t.Errorf("account stage missing fields: %q", clauses[1])
	}
	if !strings.Contains(clauses[2], "p.bio ILIKE") || !strings.Contains(clauses[2], "jsonb_array_elements(p.experience)") {
		t.Errorf("profile stage missing fields: %q", clauses[2])
	}

	if len(args) != 2 {
		t.Fatalf("got %d args, want 2", len(args))
	}
	for i, arg := range args {
		if arg != "%golang%" {
			t.Errorf("args[%d] = %v, want %%golang%%", i, arg)
		}
	}
}

func TestBuildCandidateWhereSalaryRange(t *testing.T) {
	clauses, args := buildCandidateWhere(domain.CandidateFilter{
		SalaryMin: int64p(50000),
		SalaryMax: int64p(90000),
	})

	if len(clauses) != 3 {
		t.Fatalf("got %d clauses: %v", len(clauses), clauses)
	}
	if clauses[1] != "p.desired_salary >= $1" {
		t.Errorf("min clause = %q", clauses[1])
	}
	if clauses[2] != "p.desired_salary <= $2" {
		t.Errorf("max clause = %q", clauses[2])
	}
	if args[0] != int64(50000) || args[1] != int64(90000) {
		t.Errorf("args = %v", args)
	}
}

func TestBuildCandidateWhereSalaryMinOnly(t *testing.T) {
	clauses, args := buildCandidateWhere(domain.CandidateFilter{SalaryMin: int64p(30000)})

	if len(clauses) != 2 {
		t.Fatalf("got %d clauses: %v", len(clauses), clauses)
	}
	if clauses[1] != "p.desired_salary >= $1" {
		t.Errorf("clause = %q", clauses[1])
	}
	if len(args) != 1 {
		t.Errorf("args = %v", args)
	}
}

func TestBuildCandidateWhereSkills(t *testing.T) {
	clauses, args := buildCandidateWhere(domain.CandidateFilter{
		Skills: []string{"Go", "PostgreSQL"},
	})

	if len(clauses) != 2 {
		t.Fatalf("got %d clauses: %v", len(clauses), clauses)
	}
	clause := clauses[1]
	if !strings.Contains(clause, "unnest(p.skills)") {
		t.Errorf("skills clause missing unnest: %q", clause)
	}
	if !strings.Contains(clause, "s ILIKE $1 OR s ILIKE $2") {
		t.Errorf("skill terms not OR-composed: %q", clause)
	}
	if args[0] != "%Go%" || args[1] != "%PostgreSQL%" {
		t.Errorf("args = %v", args)
	}
}

// Placeholder numbering must stay consistent when several stages contribute
// arguments in order.
func TestBuildCandidateWherePlaceholderNumbering(t *testing.T) {
	clauses, args := buildCandidateWhere(domain.CandidateFilter{
		Search:       "designer",
		Availability: "immediate",
		Location:     "Nairobi",
		SalaryMin:    int64p(1000),
		Skills:       []string{"Figma"},
	})

	// role + account search + availability + location + salary min + skills
	// + profile search
	if len(clauses) != 7 {
		t.Fatalf("got %d clauses: %v", len(clauses), clauses)
	}
	if len(args) != 6 {
		t.Fatalf("got %d args: %v", len(args), args)
	}

	if clauses[2] != "p.availability = $2" {
		t.Errorf("availability clause = %q", clauses[2])
	}
	if !strings.Contains(clauses[3], "$3") {
		t.Errorf("location clause = %q", clauses[3])
	}
	if clauses[4] != "p.desired_salary >= $4" {
		t.Errorf("salary clause = %q", clauses[4])
	}
	if !strings.Contains(clauses[5], "$5") {
		t.Errorf("skills clause = %q", clauses[5])
	}
	if !strings.Contains(clauses[6], "$6") {
		t.Errorf("profile search clause = %q", clauses[6])
	}
}

// EmploymentType is accepted but not bound to any predicate.
func TestBuildCandidateWhereEmploymentTypeInert(t *testing.T) {
	clauses, args := buildCandidateWhere(domain.CandidateFilter{EmploymentType: "full-time"})

	if len(clauses) != 1 || len(args) != 0 {
		t.Errorf("employmentType contributed clauses=%v args=%v", clauses, args)
	}
}

func TestJoinAnd(t *testing.T) {
	got := joinAnd([]string{"a = 1", "b = 2"})
	if got != "a = 1 AND b = 2" {
		t.Errorf("joinAnd = %q", got)
	}
}
