package history

import (
	"errors"
	"testing"

	"NavEngine/pkg/nav/api"
	"NavEngine/pkg/nav/hostsim"
	"NavEngine/pkg/nav/store"
)

func newTestEngine(t *testing.T, opts Options) (*History, *hostsim.Host, store.RecordStore) {
	t.Helper()
	records := store.NewMemoryRecordStore()
	host := hostsim.NewHost("/", records)
	return New(host, opts), host, records
}

func TestPush_BasenameScenario(t *testing.T) {
	h, _, _ := newTestEngine(t, Options{Mode: api.ModePath, Basename: "/app"})

	h.Push("/app/a")
	if got := h.Location(); got.Path != "/a" || got.Key != "1" {
		t.Fatalf("after push: %+v, want path=/a key=1", got)
	}
	if h.Action() != api.ActionPush {
		t.Fatalf("action = %s, want PUSH", h.Action())
	}

	h.Replace("/app/b")
	if got := h.Location(); got.Path != "/b" || got.Key != "1" {
		t.Fatalf("after replace: %+v, want path=/b key=1", got)
	}
	if h.Action() != api.ActionReplace {
		t.Fatalf("action = %s, want REPLACE", h.Action())
	}
}

func TestPush_KeysStrictlyIncrease(t *testing.T) {
	h, host, _ := newTestEngine(t, Options{})
	unlisten := h.Listen(func(api.Transition) {})
	defer unlisten()

	minted := []string{}
	for _, p := range []string{"/a", "/b", "/c"} {
		h.Push(p)
		minted = append(minted, h.Location().Key)
	}

	// Go back two entries, then push again: the new key must still exceed
	// every key minted so far.
	host.GoDelta(-2)
	h.Push("/d")
	minted = append(minted, h.Location().Key)

	last := int64(0)
	for _, k := range minted {
		n := parseKey(k)
		if n <= last {
			t.Fatalf("keys not strictly increasing: %v", minted)
		}
		last = n
	}
}

func TestReplace_NeverMints(t *testing.T) {
	h, _, _ := newTestEngine(t, Options{})

	h.Push("/a")
	key := h.Location().Key

	h.Replace("/b")
	h.ReplaceState("/c", map[string]any{"scroll": 10})
	if got := h.Location().Key; got != key {
		t.Fatalf("replace changed key %q -> %q", key, got)
	}
}

func TestStoreRecord_TracksCurrentKey(t *testing.T) {
	h, host, records := newTestEngine(t, Options{})
	unlisten := h.Listen(func(api.Transition) {})
	defer unlisten()

	check := func(step string) {
		t.Helper()
		rec, err := records.Load()
		if err != nil {
			t.Fatalf("%s: load record: %v", step, err)
		}
		if rec.Key != h.Location().Key {
			t.Fatalf("%s: record key %q != location key %q", step, rec.Key, h.Location().Key)
		}
	}

	check("initial")
	h.Push("/a")
	check("push")
	h.Replace("/b")
	check("replace")
	h.Push("/c")
	host.GoDelta(-1)
	check("pop")
}

func TestGo_ResolvesAsPop(t *testing.T) {
	h, _, _ := newTestEngine(t, Options{})

	var got []api.Transition
	unlisten := h.Listen(func(tr api.Transition) { got = append(got, tr) })
	defer unlisten()

	h.Push("/a") // key 1
	h.Push("/b") // key 2
	got = nil

	// hostsim delivers synchronously; in a real host this lands on a later
	// event-loop turn.
	h.Back()

	if len(got) == 0 {
		t.Fatal("expected a transition from Back")
	}
	first := got[0]
	if first.Action != api.ActionPop {
		t.Fatalf("action = %s, want POP", first.Action)
	}
	if first.To.Path != "/a" || first.To.Key != "1" {
		t.Fatalf("toLocation = %+v, want first pushed location", first.To)
	}
	if first.From.Path != "/b" {
		t.Fatalf("fromLocation = %+v, want /b", first.From)
	}
}

func TestGo_ForwardThroughExistingClassifiesAsPush(t *testing.T) {
	h, host, _ := newTestEngine(t, Options{})
	unlisten := h.Listen(func(api.Transition) {})
	defer unlisten()

	h.Push("/a")
	h.Push("/b")
	host.GoDelta(-1)

	h.Forward()
	if h.Action() != api.ActionPush {
		t.Fatalf("forward replay action = %s, want PUSH (label preserved)", h.Action())
	}
	if h.Location().Path != "/b" {
		t.Fatalf("location = %+v, want /b", h.Location())
	}
}

func TestGo_PastStackEdgeIsSilentNoop(t *testing.T) {
	h, _, _ := newTestEngine(t, Options{})

	var fired int
	unlisten := h.Listen(func(api.Transition) { fired++ })
	defer unlisten()

	h.Push("/a")
	fired = 0

	h.Back()    // to initial entry
	h.Back()    // past the edge: nothing delivered
	h.Forward() // back to /a
	h.Forward() // past the edge again

	if fired != 2 {
		t.Fatalf("expected 2 transitions, got %d", fired)
	}
	if h.Location().Path != "/a" {
		t.Fatalf("location = %+v, want /a", h.Location())
	}
}

func TestHostChange_KeylessEntryIsRepaired(t *testing.T) {
	h, host, _ := newTestEngine(t, Options{})
	unlisten := h.Listen(func(api.Transition) {})
	defer unlisten()

	h.Push("/a") // key 1
	host.NavigateKeyless("/external")

	loc := h.Location()
	if loc.Path != "/external" {
		t.Fatalf("location = %+v, want /external", loc)
	}
	if loc.Key != "2" {
		t.Fatalf("repaired key = %q, want freshly minted 2", loc.Key)
	}
	if h.Action() != api.ActionPush {
		t.Fatalf("action = %s, want PUSH", h.Action())
	}
	if host.CurrentEntry().Key != "2" {
		t.Fatalf("native entry not rewritten: %+v", host.CurrentEntry())
	}
}

func TestListenBlock_ReferenceCounting(t *testing.T) {
	h, host, _ := newTestEngine(t, Options{})

	if host.SubscriberCount() != 0 {
		t.Fatal("fresh engine should not be subscribed")
	}

	unlisten1 := h.Listen(func(api.Transition) {})
	unlisten2 := h.Listen(func(api.Transition) {})
	if host.SubscriberCount() != 1 {
		t.Fatalf("expected a single host subscription, got %d", host.SubscriberCount())
	}

	unblock := h.Block(MessagePrompt("leave?"))
	unlisten1()
	unlisten2()
	if host.SubscriberCount() != 1 {
		t.Fatal("active guard must keep the subscription alive")
	}

	unblock()
	if host.SubscriberCount() != 0 {
		t.Fatal("subscription should drop with the last listener and guard gone")
	}

	unlisten2() // already released: must not underflow
	if host.SubscriberCount() != 0 {
		t.Fatal("double unlisten affected the subscription")
	}
}

func TestBlock_StaleUnblockKeepsNewGuard(t *testing.T) {
	h, host, _ := newTestEngine(t, Options{})

	unblockOld := h.Block(MessagePrompt("old"))
	unblockNew := h.Block(MessagePrompt("new"))

	unblockOld()
	msg, ok := h.PromptMessage(api.Location{Path: "/x"}, api.ActionPop)
	if !ok || msg != "new" {
		t.Fatalf("expected new guard active, got %q ok=%v", msg, ok)
	}
	if host.SubscriberCount() != 1 {
		t.Fatal("stale unblock must not release the subscription")
	}

	unblockNew()
	if _, ok := h.PromptMessage(api.Location{}, api.ActionPop); ok {
		t.Fatal("guard still armed after current unblock")
	}
	if host.SubscriberCount() != 0 {
		t.Fatal("subscription should be gone")
	}
}

func TestCreateHref_Modes(t *testing.T) {
	loc := api.Location{Path: "/a", Key: "1"}

	fragment, _, _ := newTestEngine(t, Options{Mode: api.ModeFragment})
	if got := fragment.CreateHref(loc); got != "#/a" {
		t.Fatalf("fragment href = %q, want #/a", got)
	}

	path, _, _ := newTestEngine(t, Options{Mode: api.ModePath, Basename: "/app"})
	if got := path.CreateHref(loc); got != "/app/a" {
		t.Fatalf("path href = %q, want /app/a", got)
	}
}

func TestPushState_CarriesPayload(t *testing.T) {
	h, host, _ := newTestEngine(t, Options{})

	h.PushState("/a", map[string]any{"from": "menu"})
	if h.Location().State["from"] != "menu" {
		t.Fatalf("state payload lost: %+v", h.Location())
	}
	if host.CurrentEntry().State["from"] != "menu" {
		t.Fatalf("native entry missing payload: %+v", host.CurrentEntry())
	}
}

func TestStaleRecord_ResetToLiveKey(t *testing.T) {
	records := store.NewMemoryRecordStore()
	if err := records.Save(api.StoreRecord{Key: "99"}); err != nil {
		t.Fatal(err)
	}

	host := hostsim.NewHost("/", records)
	New(host, Options{})

	rec, err := records.Load()
	if err != nil {
		t.Fatalf("load after reconcile: %v", err)
	}
	if rec.Key != "0" {
		t.Fatalf("stale record not reset: %+v", rec)
	}
}

// deniedRecords simulates a restricted storage context.
type deniedRecords struct{}

func (deniedRecords) Load() (api.StoreRecord, error) {
	return api.StoreRecord{}, errors.New("storage access denied")
}

func (deniedRecords) Save(api.StoreRecord) error {
	return errors.New("storage access denied")
}

func TestRestrictedStorage_DegradesToInMemory(t *testing.T) {
	host := hostsim.NewHost("/", deniedRecords{})
	h := New(host, Options{})

	// Navigation keeps working with persistence degraded.
	h.Push("/a")
	h.Push("/b")
	if h.Location().Path != "/b" || h.Location().Key != "2" {
		t.Fatalf("navigation broken under restricted storage: %+v", h.Location())
	}
}

func TestLength_MirrorsNativeStack(t *testing.T) {
	h, host, _ := newTestEngine(t, Options{})
	unlisten := h.Listen(func(api.Transition) {})
	defer unlisten()

	h.Push("/a")
	h.Push("/b")
	if h.Length() != 3 {
		t.Fatalf("length = %d, want 3", h.Length())
	}

	// Pushing after going back truncates the forward entries.
	host.GoDelta(-1)
	h.Push("/c")
	if h.Length() != 3 {
		t.Fatalf("length after truncating push = %d, want 3", h.Length())
	}
}

func TestListener_SeesStateAlreadySwapped(t *testing.T) {
	h, _, records := newTestEngine(t, Options{})

	var seen api.Location
	var recAtNotify api.StoreRecord
	unlisten := h.Listen(func(api.Transition) {
		seen = h.Location()
		recAtNotify, _ = records.Load()
	})
	defer unlisten()

	h.Push("/a")
	if seen.Path != "/a" {
		t.Fatalf("listener observed stale location: %+v", seen)
	}
	if recAtNotify.Key != "1" {
		t.Fatalf("durable write must precede notification, record=%+v", recAtNotify)
	}
}
