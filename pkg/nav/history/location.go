package history

import (
	"NavEngine/pkg/nav/api"
	"NavEngine/pkg/nav/pathutil"
)

// CreateLocation builds an immutable Location for a transition. An empty key
// reuses the current location's key, which is exactly the replace case: only
// push mints new keys. The state payload is copied so later mutation by the
// caller cannot leak into the snapshot. Never fails; malformed paths are
// normalized, not rejected.
func CreateLocation(path string, state map[string]any, key string, current api.Location) api.Location {
	if key == "" {
		key = current.Key
	}
	loc := api.Location{
		Path: pathutil.EnsureLeadingSlash(path),
		Key:  key,
	}
	if len(state) > 0 {
		loc.State = make(map[string]any, len(state))
		for k, v := range state {
			loc.State[k] = v
		}
	}
	return loc
}
