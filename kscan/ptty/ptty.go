package ptty

import (
	"errors"
	"github.com/allape/gogger"
	"github.com/ecstatic-morse/zmk/kscan"
	"github.com/ecstatic-morse/zmk/kscan/source"
	"github.com/ecstatic-morse/zmk/kscan/work"
	"os"
	"sync"
	"time"
)

var l = gogger.New("kscan.ptty")

const DefaultEventPeriod = 30 * time.Millisecond

type Config struct {
	// EventPeriod is the default delay between two synthesized events.
	EventPeriod time.Duration
	// ExitAfter exits the process with code 0 once the command stream is
	// exhausted. When unset the driver simply stops scanning.
	ExitAfter bool
	// Exit replaces os.Exit. The driver is the only component that may
	// terminate the process; tests hook this.
	Exit func(code int)
}

// Driver replays a scripted command stream as key matrix events, standing in
// for a real row/column scanner on a host build.
//
// Each tick reads one line from the source, decodes it, emits at most one
// event through the registered callback and schedules the next tick. Ticks
// never overlap.
type Driver struct {
	kscan.Driver

	config Config
	src    source.Source

	locker   sync.Locker
	callback kscan.Callback

	work   *work.Delayed
	cmdIdx int
}

func New(src source.Source, config Config) *Driver {
	if config.EventPeriod <= 0 {
		config.EventPeriod = DefaultEventPeriod
	}
	if config.Exit == nil {
		config.Exit = os.Exit
	}

	d := &Driver{
		config: config,
		src:    src,
		locker: &sync.Mutex{},
	}
	d.work = work.NewDelayed(d.tick)

	return d
}

func (d *Driver) Open() error {
	return d.src.Open()
}

func (d *Driver) Close() error {
	d.work.Cancel()
	return d.src.Close()
}

// Configure registers the event callback and arms the driver: the first tick
// fires after one event period.
func (d *Driver) Configure(callback kscan.Callback) error {
	if callback == nil {
		return errors.New("nil callback")
	}

	d.locker.Lock()
	d.callback = callback
	d.locker.Unlock()

	d.work.Schedule(d.config.EventPeriod)
	return nil
}

// Enable (re)schedules the next tick after one event period. Replay resumes
// from the next unread line of the stream.
func (d *Driver) Enable() error {
	d.locker.Lock()
	callback := d.callback
	d.locker.Unlock()

	if callback == nil {
		return errors.New("driver not configured")
	}

	d.work.Schedule(d.config.EventPeriod)
	return nil
}

// Disable cancels the pending tick. A tick already running completes.
func (d *Driver) Disable() error {
	d.work.Cancel()
	return nil
}

func (d *Driver) tick() {
	line, err := readLine(d.src)
	switch {
	case errors.Is(err, source.ErrNoData):
		l.Info().Println("all commands processed, stopping replay")
		if d.config.ExitAfter {
			d.config.Exit(0)
		}
		return
	case errors.Is(err, ErrOverflow):
		l.Error().Printf("command too long: %q...", line)
		d.config.Exit(1)
		return
	case err != nil:
		l.Error().Println("reading command:", err)
		d.config.Exit(1)
		return
	}

	cmd, err := parseCommand(line)
	if err != nil {
		// No reschedule: replay halts until Enable is called again.
		l.Error().Println("invalid command:", line)
		return
	}

	if cmd.op == opWait {
		l.Verbose().Printf("cmd[%d] wait %dms", d.cmdIdx, cmd.wait)
		d.cmdIdx++
		d.work.Schedule(time.Duration(cmd.wait) * time.Millisecond)
		return
	}

	pressed := cmd.op == opPress
	action := "release"
	if pressed {
		action = "press"
	}
	l.Verbose().Printf("cmd[%d] %s row %d col %d", d.cmdIdx, action, cmd.row, cmd.col)
	d.cmdIdx++

	d.locker.Lock()
	callback := d.callback
	d.locker.Unlock()

	callback(cmd.row, cmd.col, pressed)
	d.work.Schedule(d.config.EventPeriod)
}
