package workhours

import (
	"regexp"
	"strings"

	"github.com/attenda/timeclock-backend-go/internal/domain/workhours"
)

// Suffix patterns are matched in order; first match wins.
var workTypePatterns = []struct {
	re       *regexp.Regexp
	workType workhours.WorkType
}{
	{regexp.MustCompile(`^(\d+)\s*SP$`), workhours.WorkTypeSpecialProject},
	{regexp.MustCompile(`^(\d+)\s*PW$`), workhours.WorkTypePeriodicWork},
	{regexp.MustCompile(`^(\d+)\s*PT$`), workhours.WorkTypePartTime},
}

// Classify splits a raw employee identifier into its base id and work-type
// bucket. The input is trimmed and upper-cased before matching, so
// "1234 sp" and "1234SP" both classify as ("1234", sp). Anything that does
// not match a suffix pattern, including the empty string, is regular work
// under the normalized id.
func Classify(employeeID string) (string, workhours.WorkType) {
	normalized := strings.ToUpper(strings.TrimSpace(employeeID))

	for _, p := range workTypePatterns {
		if m := p.re.FindStringSubmatch(normalized); m != nil {
			return m[1], p.workType
		}
	}

	return normalized, workhours.WorkTypeRegular
}
