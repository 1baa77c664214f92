// Package history implements the navigation history engine: a state machine
// coordinating engine-minted keys, the host's native navigation stack, the
// durable key record and listener notification.
//
// The engine is single-owner and event-driven: all operations and the host
// navigation-changed callback must run on one goroutine. Exactly one engine
// instance should own a host's navigation stack and storage slot at a time.
package history

import (
	"NavEngine/pkg/logger"
	"NavEngine/pkg/nav/api"
	"NavEngine/pkg/nav/pathutil"
)

// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
// Options
// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

// Options configures a History instance.
type Options struct {
	// Mode selects the addressing scheme for CreateHref. Defaults to
	// ModeFragment.
	Mode api.Mode

	// Basename is stripped from incoming paths and re-added to hrefs in path
	// mode. Empty disables basename handling.
	Basename string
}

// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
// History Engine
// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

// History is the navigation history engine. No operation returns an error:
// every anomaly is repaired locally and at most logged as a warning, so the
// navigation experience stays functional when persistence or basename checks
// fail.
type History struct {
	adapter  api.PlatformAdapter
	mode     api.Mode
	basename string

	manager *TransitionManager
	store   *keyStore

	location api.Location
	action   api.Action
	length   int

	// counter is the highest key minted this session; push always mints
	// counter+1, so keys stay strictly increasing even after going back.
	counter int64

	refs        int
	guardActive bool
	cancelSub   func()
}

// New constructs an engine bound to adapter. The current native entry seeds
// the initial location; a keyless entry (fresh host) is silently repaired
// with key "0", so the first push mints "1". The durable record is reconciled
// against the live key immediately.
func New(adapter api.PlatformAdapter, opts Options) *History {
	mode := opts.Mode
	if mode == "" {
		mode = api.ModeFragment
	}

	h := &History{
		adapter:  adapter,
		mode:     mode,
		basename: normalizeBasename(opts.Basename),
		manager:  NewTransitionManager(),
	}

	entry := adapter.CurrentEntry()
	if entry.Key == "" {
		entry.Key = formatKey(0)
		adapter.ReplaceEntry(entry)
	}
	h.counter = parseKey(entry.Key)

	h.location = CreateLocation(h.resolvePath(entry.Path), entry.State, entry.Key, api.Location{})
	h.action = api.ActionPop
	h.store = newKeyStore(adapter, entry.Key)
	h.length = adapter.StackLen()
	return h
}

func normalizeBasename(basename string) string {
	if basename == "" {
		return ""
	}
	return pathutil.StripTrailingSlash(pathutil.EnsureLeadingSlash(basename))
}

// resolvePath maps a host path to a location path: leading slash ensured,
// basename stripped. A path outside the basename is passed through whole
// with a warning rather than rejected.
func (h *History) resolvePath(path string) string {
	path = pathutil.EnsureLeadingSlash(path)
	if h.basename == "" {
		return path
	}
	if !pathutil.HasBasename(path, h.basename) {
		logger.Warn("History", "path outside configured basename, using unstripped",
			map[string]any{"path": path, "basename": h.basename})
		return path
	}
	return pathutil.StripBasename(path, h.basename)
}

// mintKey returns a fresh key strictly greater than every key minted this
// session.
func (h *History) mintKey() string {
	h.counter++
	return formatKey(h.counter)
}

// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
// Snapshot Accessors
// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

// Location returns the current location snapshot.
func (h *History) Location() api.Location { return h.location }

// Action returns how the current location was reached.
func (h *History) Action() api.Action { return h.action }

// Length mirrors the native stack length. Informational only.
func (h *History) Length() int { return h.length }

// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
// Navigation Operations
// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

// Push mints a new key, creates a native entry for path and commits the
// transition as PUSH. Synchronous end to end.
func (h *History) Push(path string) {
	h.push(path, nil)
}

// PushState is Push with a navigation state payload attached.
func (h *History) PushState(path string, state map[string]any) {
	h.push(path, state)
}

func (h *History) push(path string, state map[string]any) {
	path = pathutil.EnsureLeadingSlash(path)
	key := h.mintKey()
	loc := CreateLocation(h.resolvePath(path), state, key, h.location)
	h.adapter.PushEntry(api.Entry{Path: path, Key: key, State: loc.State})
	h.setState(loc, api.ActionPush)
}

// Replace rewrites the current native entry with path, reusing the current
// key: replace never mints.
func (h *History) Replace(path string) {
	h.replace(path, nil)
}

// ReplaceState is Replace with a navigation state payload attached.
func (h *History) ReplaceState(path string, state map[string]any) {
	h.replace(path, state)
}

func (h *History) replace(path string, state map[string]any) {
	path = pathutil.EnsureLeadingSlash(path)
	loc := CreateLocation(h.resolvePath(path), state, "", h.location)
	h.adapter.ReplaceEntry(api.Entry{Path: path, Key: loc.Key, State: loc.State})
	h.setState(loc, api.ActionReplace)
}

// Go forwards delta to the host's relative navigation and returns
// immediately. The resulting transition, if any, is resolved later through
// the navigation-changed callback: the native stack is the source of truth
// for relative moves, and predicting the outcome here would desync key
// bookkeeping. Past the stack edge the host delivers nothing and this call
// is a silent no-op.
func (h *History) Go(delta int) {
	h.adapter.GoDelta(delta)
}

// Back is Go(-1).
func (h *History) Back() { h.Go(-1) }

// Forward is Go(1).
func (h *History) Forward() { h.Go(1) }

// CreateHref renders a displayable href for loc. Fragment mode prefixes the
// fragment marker; path mode re-adds the basename.
func (h *History) CreateHref(loc api.Location) string {
	path := pathutil.EnsureLeadingSlash(loc.Path)
	if h.mode == api.ModeFragment {
		return "#" + path
	}
	return pathutil.AddBasename(path, h.basename)
}

// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
// Listeners and Guard
// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

// Listen registers a transition listener and returns its unsubscribe
// function. The host navigation-changed subscription is held exactly while
// at least one listener or guard is active.
func (h *History) Listen(fn func(api.Transition)) func() {
	remove := h.manager.AppendListener(fn)
	h.retain()
	released := false
	return func() {
		if released {
			return
		}
		released = true
		remove()
		h.release()
	}
}

// Block arms prompt as the navigation guard, replacing any previous guard,
// and returns its unblock function. An unblock from an earlier Block has no
// effect once a newer guard is armed. An active guard keeps the host
// subscription alive even with zero listeners.
func (h *History) Block(prompt Prompt) func() {
	disarm := h.manager.SetPrompt(prompt)
	if !h.guardActive {
		h.guardActive = true
		h.retain()
	}
	return func() {
		if disarm() {
			h.guardActive = false
			h.release()
		}
	}
}

// PromptMessage evaluates the active guard against a prospective transition.
// Hosts use it to arm their native confirmation dialog; the engine itself
// never blocks a navigation.
func (h *History) PromptMessage(to api.Location, action api.Action) (string, bool) {
	prompt, ok := h.manager.Prompt()
	if !ok {
		return "", false
	}
	return prompt(to, action), true
}

func (h *History) retain() {
	h.refs++
	if h.refs == 1 {
		h.cancelSub = h.adapter.Subscribe(h.handleHostChange)
	}
}

func (h *History) release() {
	if h.refs == 0 {
		return
	}
	h.refs--
	if h.refs == 0 && h.cancelSub != nil {
		h.cancelSub()
		h.cancelSub = nil
	}
}

// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
// State Machine Core
// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

// setState atomically replaces the current {action, location} snapshot,
// persists the durable key and notifies listeners. Shared by push/replace
// and the async resolution path. Listeners always observe the durable write
// and the in-memory swap already done.
func (h *History) setState(to api.Location, action api.Action) {
	from := h.location
	h.location = to
	h.action = action
	if k := parseKey(to.Key); k > h.counter {
		h.counter = k
	}
	h.store.save(to.Key)
	h.length = h.adapter.StackLen()
	h.manager.Notify(api.Transition{From: from, To: to, Action: action})
}

// handleHostChange is the async resolution path, driven by the host's
// navigation-changed notification. An entry without an engine key is a
// transition triggered outside the engine: expected, so it is repaired by
// minting a key and rewriting the entry, without a warning. The delivered
// key alone classifies the action.
func (h *History) handleHostChange(entry api.Entry) {
	if entry.Key == "" {
		entry.Key = h.mintKey()
		h.adapter.ReplaceEntry(entry)
	}
	action := Classify(h.location.Key, entry.Key)
	loc := CreateLocation(h.resolvePath(entry.Path), entry.State, entry.Key, h.location)
	h.setState(loc, action)
}
