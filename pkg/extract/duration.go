package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/toyinlola/clausecheck/pkg/interfaces"
)

// Duration patterns. Each field is scanned independently; for every field
// the first match per variant is taken and the maximum across variants kept.
var (
	dayPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\s*(?:calendar\s+)?days?`),
		regexp.MustCompile(`(\d+)\s*(?:-|\s)day`),
	}
	monthPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\s*months?`),
		regexp.MustCompile(`(\d+)\s*(?:-|\s)month`),
	}
	yearPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\s*years?`),
		regexp.MustCompile(`(\d+)\s*(?:-|\s)year`),
	}
	noticePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:upon|with|provide|giving?)\s+(\d+)\s*(?:calendar\s+)?days?\s+(?:prior\s+)?notice`),
		regexp.MustCompile(`notice\s+of\s+(\d+)\s*days?`),
		regexp.MustCompile(`(\d+)\s*(?:-|\s)day\s+notice`),
	}
)

// ExtractDurations pulls time durations from clause text. Fields are
// independent: a clause can report both days and notice_period_days with
// different values.
func ExtractDurations(text string) interfaces.Durations {
	lower := strings.ToLower(text)
	return interfaces.Durations{
		Days:             maxFirstMatch(dayPatterns, lower),
		Months:           maxFirstMatch(monthPatterns, lower),
		Years:            maxFirstMatch(yearPatterns, lower),
		NoticePeriodDays: maxFirstMatch(noticePatterns, lower),
	}
}

// maxFirstMatch takes the first match of each pattern and returns the
// largest integer found, or 0 when nothing matches.
func maxFirstMatch(patterns []*regexp.Regexp, text string) int {
	best := 0
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n > best {
			best = n
		}
	}
	return best
}
