package repository

import (
	"fmt"

	"github.com/kimthedrew/jobsabroad/internal/domain"
)

// The candidate search runs over `users u JOIN jobseeker_profiles p`. The
// inner join is load-bearing: a job seeker who never saved a profile is never
// listed. Filters are built as an ordered list of pure predicate functions,
// each contributing zero or more AND-composed WHERE clauses, so every stage
// can be tested on its own.

// predicate appends WHERE clauses and their arguments for one filter stage.
// Positional placeholders are numbered from the current argument count.
type predicate func(f domain.CandidateFilter, args []interface{}) ([]string, []interface{})

// candidatePredicates is the stage order for candidate search. Both search
// stages fire on the same input and compose by AND: a searched-for candidate
// must match on an account field AND on a profile field. Existing clients
// depend on that composition, so it is kept.
var candidatePredicates = []predicate{
	accountSearchPredicate,
	availabilityPredicate,
	locationPredicate,
	salaryMinPredicate,
	salaryMaxPredicate,
	skillsPredicate,
	profileSearchPredicate,
}

// buildCandidateWhere runs every stage and returns the combined clause list
// and arguments. The role clause is always first.
func buildCandidateWhere(f domain.CandidateFilter) ([]string, []interface{}) {
	clauses := []string{"u.user_type = 'jobseeker'"}
	args := []interface{}{}

	for _, p := range candidatePredicates {
		newClauses, newArgs := p(f, args)
		clauses = append(clauses, newClauses...)
		args = newArgs
	}

	return clauses, args
}

// accountSearchPredicate matches the free-text search against account name
// and email, case-insensitive substring.
func accountSearchPredicate(f domain.CandidateFilter, args []interface{}) ([]string, []interface{}) {
	if f.Search == "" {
		return nil, args
	}
	args = append(args, like(f.Search))
	n := len(args)
	clause := fmt.Sprintf("(u.first_name ILIKE $%d OR u.last_name ILIKE $%d OR u.email ILIKE $%d)", n, n, n)
	return []string{clause}, args
}

func availabilityPredicate(f domain.CandidateFilter, args []interface{}) ([]string, []interface{}) {
	if f.Availability == "" {
		return nil, args
	}
	args = append(args, f.Availability)
	return []string{fmt.Sprintf("p.availability = $%d", len(args))}, args
}

// locationPredicate matches against either the profile location or the
// account country.
func locationPredicate(f domain.CandidateFilter, args []interface{}) ([]string, []interface{}) {
	if f.Location == "" {
		return nil, args
	}
	args = append(args, like(f.Location))
	n := len(args)
	return []string{fmt.Sprintf("(p.location ILIKE $%d OR u.country ILIKE $%d)", n, n)}, args
}

// The salary bounds are independent stages accumulating on the same field, so
// supplying both bounds the desired salary on both sides. A profile without a
// desired salary fails either bound (NULL comparisons are not true).
func salaryMinPredicate(f domain.CandidateFilter, args []interface{}) ([]string, []interface{}) {
	if f.SalaryMin == nil {
		return nil, args
	}
	args = append(args, *f.SalaryMin)
	return []string{fmt.Sprintf("p.desired_salary >= $%d", len(args))}, args
}

func salaryMaxPredicate(f domain.CandidateFilter, args []interface{}) ([]string, []interface{}) {
	if f.SalaryMax == nil {
		return nil, args
	}
	args = append(args, *f.SalaryMax)
	return []string{fmt.Sprintf("p.desired_salary <= $%d", len(args))}, args
}

// skillsPredicate OR-matches each requested term as a case-insensitive
// substring of any skill in the profile.
func skillsPredicate(f domain.CandidateFilter, args []interface{}) ([]string, []interface{}) {
	if len(f.Skills) == 0 {
		return nil, args
	}

	terms := make([]string, 0, len(f.Skills))
	for _, skill := range f.Skills {
		args = append(args, like(skill))
		terms = append(terms, fmt.Sprintf("s ILIKE $%d", len(args)))
	}

	clause := "EXISTS (SELECT 1 FROM unnest(p.skills) AS s WHERE " + joinOr(terms) + ")"
	return []string{clause}, args
}

// profileSearchPredicate is the second free-text stage, over profile fields:
// bio, desired title, skills, and experience title/company.
func profileSearchPredicate(f domain.CandidateFilter, args []interface{}) ([]string, []interface{}) {
	if f.Search == "" {
		return nil, args
	}
	args = append(args, like(f.Search))
	n := len(args)
	clause := fmt.Sprintf(`(p.bio ILIKE $%d
        OR p.desired_job_title ILIKE $%d
        OR EXISTS (SELECT 1 FROM unnest(p.skills) AS s WHERE s ILIKE $%d)
        OR EXISTS (SELECT 1 FROM jsonb_array_elements(p.experience) AS e
                   WHERE e->>'title' ILIKE $%d OR e->>'company' ILIKE $%d))`, n, n, n, n, n)
	return []string{clause}, args
}

func like(term string) string {
	return "%" + term + "%"
}

func joinOr(clauses []string) string {
	out := clauses[0]
	for _, c := range clauses[1:] {
		out += " OR " + c
	}
	return out
}
