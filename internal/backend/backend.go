// Package backend abstracts the host windowing system for the Nova shell.
// The Terminal implementation drives a real terminal through tcell; the Null
// implementation scripts events for tests.
package backend

import "sync"

// EventType identifies the type of host event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventError
)

// Key represents a keyboard key. The shell only routes the keys it acts on;
// everything else arrives as KeyRune or KeyNone.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyCtrlQ
)

// Event represents a host windowing event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune

	// Resize event fields
	Width, Height int

	// Error event field: a host error that ends the event loop.
	Err error
}

// Backend is the host windowing surface the runtime drives.
// Init must be called before any other method; Shutdown restores the host.
type Backend interface {
	// Init initializes the backend. Failure here means the event loop
	// cannot start.
	Init() error

	// Shutdown releases backend resources and restores host state.
	Shutdown()

	// Size returns the current surface dimensions.
	Size() (width, height int)

	// Clear clears the surface.
	Clear()

	// SetCell places a rune at the given position. Out-of-range positions
	// are silently ignored.
	SetCell(x, y int, r rune)

	// Show flushes pending changes to the host surface.
	Show()

	// PollEvent blocks until the next host event.
	PollEvent() Event

	// PostEvent injects a synthetic event into the queue. Used to wake a
	// blocked PollEvent during shutdown.
	PostEvent(ev Event)
}

// Null is an in-memory backend for tests. Events are scripted with
// PostEvent; drawn cells can be inspected afterwards. Shutdown unblocks a
// pending PollEvent, like Fini does on a real screen.
type Null struct {
	width, height int
	cells         map[[2]int]rune
	events        chan Event
	quit          chan struct{}
	quitOnce      sync.Once

	// InitErr, when set, is returned by Init to simulate a host
	// windowing failure.
	InitErr error

	initCalled     bool
	shutdownCalled bool
}

// NewNull creates a null backend with the given dimensions.
func NewNull(width, height int) *Null {
	return &Null{
		width:  width,
		height: height,
		cells:  make(map[[2]int]rune),
		events: make(chan Event, 100),
		quit:   make(chan struct{}),
	}
}

func (b *Null) Init() error {
	if b.InitErr != nil {
		return b.InitErr
	}
	b.initCalled = true
	return nil
}

func (b *Null) Shutdown() {
	b.shutdownCalled = true
	b.quitOnce.Do(func() { close(b.quit) })
}

func (b *Null) Size() (int, int) {
	return b.width, b.height
}

func (b *Null) Clear() {
	b.cells = make(map[[2]int]rune)
}

func (b *Null) SetCell(x, y int, r rune) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[[2]int{x, y}] = r
	}
}

func (b *Null) Show() {}

func (b *Null) PollEvent() Event {
	select {
	case ev := <-b.events:
		return ev
	case <-b.quit:
		return Event{Type: EventNone}
	}
}

func (b *Null) PostEvent(ev Event) {
	select {
	case b.events <- ev:
	default:
		// Queue full; drop rather than block a test.
	}
}

// Row returns the text drawn on a row, for assertions.
func (b *Null) Row(y int) string {
	row := make([]rune, 0, b.width)
	for x := 0; x < b.width; x++ {
		if r, ok := b.cells[[2]int{x, y}]; ok {
			row = append(row, r)
		} else {
			row = append(row, ' ')
		}
	}
	return string(row)
}

// InitCalled reports whether Init ran successfully.
func (b *Null) InitCalled() bool { return b.initCalled }

// ShutdownCalled reports whether Shutdown ran.
func (b *Null) ShutdownCalled() bool { return b.shutdownCalled }
