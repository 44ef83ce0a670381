package dispatch

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

const fakeRoot = xproto.Window(1)

type fakeSource struct {
	mu     sync.Mutex
	events []xgb.Event
}

func (s *fakeSource) Poll() (xgb.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.events) == 0 {
		return nil, nil
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev, nil
}

func (s *fakeSource) RootWindow() xproto.Window { return fakeRoot }

func (s *fakeSource) push(ev xgb.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

// recordingHandler counts deliveries; the callbacks run on the dispatch
// goroutine, so reads go through the mutex.
type recordingHandler struct {
	types []int
	mask  uint32

	mu    sync.Mutex
	count int
}

func (h *recordingHandler) Types() []int  { return h.types }
func (h *recordingHandler) Masks() uint32 { return h.mask }

func (h *recordingHandler) HandleEvent(ev xgb.Event) {
	h.mu.Lock()
	h.count++
	h.mu.Unlock()
}

func (h *recordingHandler) delivered() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.count
}

func newTestDispatcher(source *fakeSource) *Dispatcher {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(source, logger, WithPollInterval(2*time.Millisecond))
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestLoopLifecycle(t *testing.T) {
	source := &fakeSource{}
	d := newTestDispatcher(source)
	if d.Running() {
		t.Fatalf("dispatcher must start idle")
	}

	first := &recordingHandler{types: []int{xproto.PropertyNotify}, mask: xproto.EventMaskPropertyChange}
	second := &recordingHandler{types: []int{xproto.PropertyNotify}, mask: xproto.EventMaskPropertyChange}
	d.Register(5, first)
	if !d.Running() {
		t.Fatalf("first registration must start the loop")
	}
	d.Register(5, second)

	d.Unregister(5, first)
	if !d.Running() {
		t.Fatalf("loop must keep running while a handler remains")
	}

	d.Unregister(5, second)
	waitFor(t, "loop to stop", func() bool { return !d.Running() })

	// Re-registering restarts it.
	d.Register(5, first)
	if !d.Running() {
		t.Fatalf("re-registration must restart the loop")
	}
	d.UnregisterAll()
	waitFor(t, "loop to stop after UnregisterAll", func() bool { return !d.Running() })
}

func TestDeliveryByWindow(t *testing.T) {
	source := &fakeSource{}
	d := newTestDispatcher(source)
	defer d.UnregisterAll()

	target := &recordingHandler{types: []int{xproto.PropertyNotify}, mask: xproto.EventMaskPropertyChange}
	other := &recordingHandler{types: []int{xproto.PropertyNotify}, mask: xproto.EventMaskPropertyChange}
	d.Register(5, target)
	d.Register(6, other)

	source.push(xproto.PropertyNotifyEvent{Window: 5, Atom: 300})
	waitFor(t, "delivery to target", func() bool { return target.delivered() == 1 })
	if other.delivered() != 0 {
		t.Fatalf("handler for another window must not receive the event")
	}
}

func TestParentAddressing(t *testing.T) {
	source := &fakeSource{}
	d := newTestDispatcher(source)
	defer d.UnregisterAll()

	parent := &recordingHandler{types: []int{xproto.CreateNotify}, mask: xproto.EventMaskSubstructureNotify}
	child := &recordingHandler{types: []int{xproto.CreateNotify}, mask: xproto.EventMaskSubstructureNotify}
	d.Register(10, parent)
	d.Register(20, child)

	// CreateNotify addresses the parent, not the created window.
	source.push(xproto.CreateNotifyEvent{Parent: 10, Window: 20})
	waitFor(t, "delivery to parent", func() bool { return parent.delivered() == 1 })
	if child.delivered() != 0 {
		t.Fatalf("created window's handler must not receive the parent's event")
	}
}

func TestRootHandlerSeesEverything(t *testing.T) {
	source := &fakeSource{}
	d := newTestDispatcher(source)
	defer d.UnregisterAll()

	global := &recordingHandler{types: []int{xproto.PropertyNotify}, mask: xproto.EventMaskPropertyChange}
	d.Register(fakeRoot, global)

	source.push(xproto.PropertyNotifyEvent{Window: 5})
	source.push(xproto.PropertyNotifyEvent{Window: 6})
	source.push(xproto.PropertyNotifyEvent{Window: fakeRoot})
	waitFor(t, "global delivery", func() bool { return global.delivered() == 3 })
}

type panickyHandler struct{}

func (panickyHandler) Types() []int           { return []int{xproto.PropertyNotify} }
func (panickyHandler) Masks() uint32          { return xproto.EventMaskPropertyChange }
func (panickyHandler) HandleEvent(_ xgb.Event) { panic("boom") }

func TestHandlerPanicIsContained(t *testing.T) {
	source := &fakeSource{}
	d := newTestDispatcher(source)
	defer d.UnregisterAll()

	survivor := &recordingHandler{types: []int{xproto.PropertyNotify}, mask: xproto.EventMaskPropertyChange}
	d.Register(5, panickyHandler{})
	d.Register(5, survivor)

	source.push(xproto.PropertyNotifyEvent{Window: 5})
	source.push(xproto.PropertyNotifyEvent{Window: 5})
	waitFor(t, "delivery past the panicking handler", func() bool { return survivor.delivered() == 2 })
	if !d.Running() {
		t.Fatalf("a panicking handler must not kill the loop")
	}
}

func TestMaskUnion(t *testing.T) {
	source := &fakeSource{}
	d := newTestDispatcher(source)
	defer d.UnregisterAll()

	props := &recordingHandler{types: []int{xproto.PropertyNotify}, mask: xproto.EventMaskPropertyChange}
	structure := &recordingHandler{types: []int{xproto.CreateNotify}, mask: xproto.EventMaskSubstructureNotify}

	if mask := d.Register(5, props); mask != xproto.EventMaskPropertyChange {
		t.Fatalf("mask = %#x, want property change only", mask)
	}
	mask := d.Register(5, structure)
	if mask != xproto.EventMaskPropertyChange|xproto.EventMaskSubstructureNotify {
		t.Fatalf("mask = %#x, want union of both handlers", mask)
	}
	if mask := d.Unregister(5, props); mask != xproto.EventMaskSubstructureNotify {
		t.Fatalf("mask = %#x, want substructure only after unregister", mask)
	}
	if mask := d.UnregisterWindow(5); mask != 0 {
		t.Fatalf("mask = %#x, want 0 after window unregister", mask)
	}
}
