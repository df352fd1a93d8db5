package application

import (
	"regexp"
	"strconv"
	"strings"

	"nabaztag/internal/domain"
)

var whitespaceRuns = regexp.MustCompile(`\s{2,}`)

// NormalizeResponse collapses the wide whitespace padding the service puts
// between reply fields into single line breaks.
func NormalizeResponse(text string) string {
	return strings.TrimSpace(whitespaceRuns.ReplaceAllString(text, "\n"))
}

// DecodeEarPositions extracts the ear angles from an ear-query reply,
// matching either language. It reports false when either side is missing,
// which is not an error: a sleeping rabbit reports no readable position.
func DecodeEarPositions(text string) (domain.EarPositions, bool) {
	left, ok := matchPosition(leftPositionPatterns, text)
	if !ok {
		return domain.EarPositions{}, false
	}
	right, ok := matchPosition(rightPositionPatterns, text)
	if !ok {
		return domain.EarPositions{}, false
	}
	return domain.EarPositions{Left: left, Right: right}, true
}

func matchPosition(patterns []*regexp.Regexp, text string) (int, bool) {
	for _, line := range strings.Split(text, "\n") {
		for _, re := range patterns {
			m := re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			return n, true
		}
	}
	return 0, false
}
