package schema

import "github.com/xrash/smetrics"

// suggest returns the declared name nearest to the unknown key by edit
// distance. A suggestion is only offered when the best distance is
// strictly smaller than the unknown key's length; anything further away
// would be noise rather than a plausible typo. Ties keep the
// first-declared candidate.
func suggest(unknown string, declared []string) (string, bool) {
	best := -1
	bestName := ""
	for _, name := range declared {
		d := smetrics.WagnerFischer(unknown, name, 1, 1, 1)
		if best == -1 || d < best {
			best = d
			bestName = name
		}
	}
	if best >= 0 && best < len([]rune(unknown)) {
		return bestName, true
	}
	return "", false
}
