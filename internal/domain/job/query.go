package job

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Salary buckets selectable in the listing filter.
const (
	SalaryRangeAll   = "all"
	SalaryRangeLow   = "0-1000"
	SalaryRangeMid   = "1000-2000"
	SalaryRangeUpper = "2000-3000"
	SalaryRangeHigh  = "3000+"
)

const (
	SortNewest     = "newest"
	SortOldest     = "oldest"
	SortSalaryHigh = "salary-high"
	SortSalaryLow  = "salary-low"
)

// Filter is the ephemeral listing state: an empty set or empty string on a
// dimension means that dimension is unrestricted.
type Filter struct {
	Search      string
	Types       []Type
	Categories  []string
	Genders     []Gender
	SalaryRange string
	SortBy      string
}

var salaryPattern = regexp.MustCompile(`[0-9][0-9.,]*`)

// SalaryValue reduces a free-text salary string to the integer value of its
// first number. Commas and periods inside the number are treated as
// separators and stripped; a string with no digits reduces to zero. For
// range strings ("€2,500 - €3,500") only the first number participates.
func SalaryValue(salary string) int {
	match := salaryPattern.FindString(salary)
	if match == "" {
		return 0
	}
	var digits strings.Builder
	for _, r := range match {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	value, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return value
}

// Query returns the postings that pass every active filter dimension,
// ordered by the filter's sort mode. The input slice is never mutated and
// the result is always a fresh slice; ties keep their input order.
func Query(jobs []Job, f Filter) []Job {
	matched := make([]Job, 0, len(jobs))
	for _, posting := range jobs {
		if f.matches(posting) {
			matched = append(matched, posting)
		}
	}
	sortJobs(matched, f.SortBy)
	return matched
}

func (f Filter) matches(posting Job) bool {
	if search := strings.ToLower(strings.TrimSpace(f.Search)); search != "" {
		title := strings.ToLower(posting.Title)
		location := strings.ToLower(posting.Location)
		if !strings.Contains(title, search) && !strings.Contains(location, search) {
			return false
		}
	}
	if len(f.Types) > 0 && !containsType(f.Types, posting.Type) {
		return false
	}
	if len(f.Categories) > 0 && !containsString(f.Categories, posting.Category) {
		return false
	}
	if len(f.Genders) > 0 && !containsGender(f.Genders, posting.PreferredGender) {
		return false
	}
	return matchesSalaryRange(f.SalaryRange, SalaryValue(posting.Salary))
}

func matchesSalaryRange(bucket string, salary int) bool {
	switch bucket {
	case "", SalaryRangeAll:
		return true
	case SalaryRangeLow:
		return salary <= 1000
	case SalaryRangeMid:
		return salary > 1000 && salary <= 2000
	case SalaryRangeUpper:
		return salary > 2000 && salary <= 3000
	case SalaryRangeHigh:
		return salary > 3000
	default:
		return true
	}
}

func sortJobs(jobs []Job, sortBy string) {
	switch sortBy {
	case SortNewest:
		sort.SliceStable(jobs, func(i, j int) bool {
			return jobs[i].Deadline.After(jobs[j].Deadline)
		})
	case SortOldest:
		sort.SliceStable(jobs, func(i, j int) bool {
			return jobs[i].Deadline.Before(jobs[j].Deadline)
		})
	case SortSalaryHigh:
		sort.SliceStable(jobs, func(i, j int) bool {
			return SalaryValue(jobs[i].Salary) > SalaryValue(jobs[j].Salary)
		})
	case SortSalaryLow:
		sort.SliceStable(jobs, func(i, j int) bool {
			return SalaryValue(jobs[i].Salary) < SalaryValue(jobs[j].Salary)
		})
	}
}

func containsType(values []Type, value Type) bool {
	for _, item := range values {
		if item == value {
			return true
		}
	}
	return false
}

func containsGender(values []Gender, value Gender) bool {
	for _, item := range values {
		if item == value {
			return true
		}
	}
	return false
}

func containsString(values []string, value string) bool {
	for _, item := range values {
		if item == value {
			return true
		}
	}
	return false
}
