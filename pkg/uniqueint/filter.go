package uniqueint

import (
	"slices"
	"strconv"
	"strings"

	"github.com/PoliNetworkOrg/uniqueint/pkg/utils"
)

// ParseLine applies the per-line rules: the trimmed line must be a single
// token, match -?[0-9]+, and fall inside d. Anything else is rejected
// silently.
func ParseLine(line string, d Domain) (int, bool) {
	token, ok := utils.SingleToken(line)
	if !ok || !utils.IsInteger(token) {
		return 0, false
	}

	// digit runs that overflow int are necessarily outside any Domain
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, false
	}

	if !d.Contains(n) {
		return 0, false
	}

	return n, true
}

// Filter returns the unique values of d found on their own line in content,
// sorted ascending. The result is never nil.
func Filter(content string, d Domain) []int {
	index := NewIndex(d)
	values := make([]int, 0)

	for _, line := range strings.Split(content, "\n") {
		n, ok := ParseLine(line, d)
		if !ok {
			continue
		}

		if index.Mark(n) {
			values = append(values, n)
		}
	}

	slices.Sort(values)
	return values
}

// FormatLines renders values one per element, ready for writer.WriteLines.
func FormatLines(values []int) []string {
	lines := make([]string, len(values))
	for i, v := range values {
		lines[i] = strconv.Itoa(v)
	}
	return lines
}
