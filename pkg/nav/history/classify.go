package history

import (
	"strconv"

	"NavEngine/pkg/nav/api"
)

// Classify maps a (last known key, delivered key) pair to an Action by
// numeric comparison. This comparison is the sole source of action
// classification: the host's own event metadata cannot reliably distinguish
// forward, back and reload across addressing modes.
//
// A delivered key greater than the last known key classifies as PUSH even
// when it revisits an entry minted earlier (forward navigation); consumers
// depend on that mapping.
func Classify(lastKey, deliveredKey string) api.Action {
	last := parseKey(lastKey)
	delivered := parseKey(deliveredKey)
	switch {
	case delivered > last:
		return api.ActionPush
	case delivered < last:
		return api.ActionPop
	default:
		return api.ActionReplace
	}
}

// parseKey reads a numeric-valued key string. Unparseable keys count as zero,
// keeping classification total.
func parseKey(key string) int64 {
	n, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func formatKey(n int64) string {
	return strconv.FormatInt(n, 10)
}
