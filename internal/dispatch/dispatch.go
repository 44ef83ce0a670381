// Package dispatch listens for events generated by the X server and routes
// them to registered handlers.
package dispatch

import (
	"log/slog"
	"sync"
	"time"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// DefaultPollInterval is how often the dispatch loop checks the event
// queue. Polling trades up to this much delivery latency for a loop that
// can notice an empty handler set and stop itself.
const DefaultPollInterval = 100 * time.Millisecond

// Handler receives raw X events. Types lists the event codes the handler
// wants; Masks is the event mask the window must be listening with for
// those events to arrive at all.
type Handler interface {
	Types() []int
	Masks() uint32
	HandleEvent(ev xgb.Event)
}

// EventSource is the slice of the display connection the dispatcher polls.
// Poll returns (nil, nil) when the queue is empty.
type EventSource interface {
	Poll() (xgb.Event, error)
	RootWindow() xproto.Window
}

// Dispatcher multiplexes raw X events to registered handlers.
//
// The background loop starts on the first registration and stops itself
// when it finds the handler set empty at the start of a poll cycle, so
// shutdown lags by up to one poll interval. Handlers registered against
// the root window receive every event of their types regardless of which
// window the event addresses.
type Dispatcher struct {
	source   EventSource
	logger   *slog.Logger
	interval time.Duration

	mu       sync.Mutex
	handlers map[int]map[xproto.Window]map[Handler]struct{}
	running  bool
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithPollInterval overrides the poll interval, mainly for tests.
func WithPollInterval(interval time.Duration) Option {
	return func(d *Dispatcher) { d.interval = interval }
}

// New builds a dispatcher over the given event source. The loop is not
// started; it runs only while handlers are registered.
func New(source EventSource, logger *slog.Logger, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		source:   source,
		logger:   logger,
		interval: DefaultPollInterval,
		handlers: make(map[int]map[xproto.Window]map[Handler]struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Register adds a handler for a window and returns the window's new
// effective event mask: the union of all its handlers' masks. The caller
// applies the mask to the protocol layer. The background loop starts with
// the first registration.
func (d *Dispatcher) Register(win xproto.Window, handler Handler) uint32 {
	d.mu.Lock()
	for _, eventType := range handler.Types() {
		typeHandlers := d.handlers[eventType]
		if typeHandlers == nil {
			typeHandlers = make(map[xproto.Window]map[Handler]struct{})
			d.handlers[eventType] = typeHandlers
		}
		winHandlers := typeHandlers[win]
		if winHandlers == nil {
			winHandlers = make(map[Handler]struct{})
			typeHandlers[win] = winHandlers
		}
		winHandlers[handler] = struct{}{}
	}
	mask := d.maskLocked(win)
	start := !d.running
	if start {
		d.running = true
	}
	d.mu.Unlock()

	d.logger.Debug("registered handler", "window", win, "mask", mask)
	if start {
		go d.run()
	}
	return mask
}

// Unregister removes one handler/window pair and returns the window's
// recomputed mask, zero when no handlers remain for it.
func (d *Dispatcher) Unregister(win xproto.Window, handler Handler) uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	for eventType, typeHandlers := range d.handlers {
		winHandlers, ok := typeHandlers[win]
		if !ok {
			continue
		}
		delete(winHandlers, handler)
		if len(winHandlers) == 0 {
			delete(typeHandlers, win)
		}
		if len(typeHandlers) == 0 {
			delete(d.handlers, eventType)
		}
	}
	d.logger.Debug("unregistered handler", "window", win)
	return d.maskLocked(win)
}

// UnregisterWindow removes all handlers for a window and returns its
// recomputed (zero) mask.
func (d *Dispatcher) UnregisterWindow(win xproto.Window) uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	for eventType, typeHandlers := range d.handlers {
		delete(typeHandlers, win)
		if len(typeHandlers) == 0 {
			delete(d.handlers, eventType)
		}
	}
	d.logger.Debug("unregistered window", "window", win)
	return d.maskLocked(win)
}

// UnregisterAll removes every handler for every window. The loop notices
// within one poll interval and stops. Used at shutdown.
func (d *Dispatcher) UnregisterAll() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = make(map[int]map[xproto.Window]map[Handler]struct{})
	d.logger.Debug("unregistered all handlers")
}

// Running reports whether the background loop is active.
func (d *Dispatcher) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.running
}

// maskLocked unions the masks of every handler registered for the window.
func (d *Dispatcher) maskLocked(win xproto.Window) uint32 {
	var mask uint32
	for _, typeHandlers := range d.handlers {
		for handler := range typeHandlers[win] {
			mask |= handler.Masks()
		}
	}
	return mask
}

// run is the dispatch loop. Each cycle drains the event queue, then sleeps
// one poll interval; an empty handler set at the start of a cycle ends the
// loop.
func (d *Dispatcher) run() {
	d.logger.Debug("event dispatcher started")
	for {
		d.mu.Lock()
		if len(d.handlers) == 0 {
			d.running = false
			d.mu.Unlock()
			d.logger.Debug("event dispatcher stopped")
			return
		}
		d.mu.Unlock()

		for {
			ev, err := d.source.Poll()
			if err != nil {
				d.logger.Error("failed to poll event queue", "error", err)
				break
			}
			if ev == nil {
				break
			}
			d.dispatch(ev)
		}
		time.Sleep(d.interval)
	}
}

// dispatch routes one event: handlers keyed on the event's most specific
// addressing window, plus every root-registered handler of that type.
func (d *Dispatcher) dispatch(ev xgb.Event) {
	eventType, target, ok := identify(ev)
	if !ok {
		return
	}

	d.mu.Lock()
	typeHandlers := d.handlers[eventType]
	if typeHandlers == nil {
		d.mu.Unlock()
		return
	}
	var selected []Handler
	for handler := range typeHandlers[target] {
		selected = append(selected, handler)
	}
	if root := d.source.RootWindow(); root != target {
		for handler := range typeHandlers[root] {
			selected = append(selected, handler)
		}
	}
	d.mu.Unlock()

	for _, handler := range selected {
		d.invoke(handler, ev)
	}
}

// invoke calls one handler, containing panics so a faulty handler can
// neither kill the loop nor block delivery to the remaining handlers.
func (d *Dispatcher) invoke(handler Handler, ev xgb.Event) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("event handler panicked", "event", ev.String(), "panic", r)
		}
	}()
	handler.HandleEvent(ev)
}

// identify extracts an event's type code and its most specific addressing
// window: a new-parent field first, then the window the event is reported
// on, then the target window itself.
func identify(ev xgb.Event) (eventType int, target xproto.Window, ok bool) {
	switch e := ev.(type) {
	case xproto.KeyPressEvent:
		return xproto.KeyPress, e.Event, true
	case xproto.KeyReleaseEvent:
		return xproto.KeyRelease, e.Event, true
	case xproto.ButtonPressEvent:
		return xproto.ButtonPress, e.Event, true
	case xproto.ButtonReleaseEvent:
		return xproto.ButtonRelease, e.Event, true
	case xproto.CreateNotifyEvent:
		return xproto.CreateNotify, e.Parent, true
	case xproto.DestroyNotifyEvent:
		return xproto.DestroyNotify, e.Event, true
	case xproto.UnmapNotifyEvent:
		return xproto.UnmapNotify, e.Event, true
	case xproto.MapNotifyEvent:
		return xproto.MapNotify, e.Event, true
	case xproto.ReparentNotifyEvent:
		return xproto.ReparentNotify, e.Parent, true
	case xproto.ConfigureNotifyEvent:
		return xproto.ConfigureNotify, e.Event, true
	case xproto.PropertyNotifyEvent:
		return xproto.PropertyNotify, e.Window, true
	case xproto.ClientMessageEvent:
		return xproto.ClientMessage, e.Window, true
	default:
		// Unhandled event families are skipped, not errors.
		return 0, 0, false
	}
}
