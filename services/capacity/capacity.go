package capacity

import (
	"regexp"
	"strconv"
)

// DefaultCapacity is assumed when a capacity description carries no
// numbers at all.
const DefaultCapacity = 2

var digitRun = regexp.MustCompile(`\d+`)

// CapacityOf derives a sleeping capacity from a room's free-text
// capacity description by summing every integer token in it, so
// "4 Adults + 1 Kid" yields 5. This is a best-effort heuristic over
// unstructured text, not a guarantee about any phrasing convention;
// descriptions without numbers fall back to DefaultCapacity.
func CapacityOf(description string) int {
	tokens := digitRun.FindAllString(description, -1)
	if len(tokens) == 0 {
		return DefaultCapacity
	}

	total := 0
	for _, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil {
			continue
		}
		total += n
	}
	if total <= 0 {
		return DefaultCapacity
	}
	return total
}
