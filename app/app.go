package app

import (
	"time"

	"serialterm/console"
	"serialterm/hal"
	"serialterm/services/lcd"
)

// StepInterval is the polling period of Run.
const StepInterval = 10 * time.Millisecond

type Config struct {
	Console console.Config
	// Mirror renders console output on the display as well.
	Mirror bool
}

type session struct {
	h      hal.HAL
	con    *console.Console
	out    console.Transport
	feeder interface{ Feed(p []byte) }
	keys   <-chan hal.KeyEvent
	start  time.Time
}

// New builds the console on h and returns the step function the host loop
// drives.
func New(h hal.HAL, cfg Config) func() error {
	return newSession(h, cfg).step
}

// Run builds the console and steps it forever (TinyGo entrypoint).
func Run(h hal.HAL, cfg Config) {
	defer func() {
		if r := recover(); r != nil {
			reportFatal(h, r, stack())
			select {}
		}
	}()

	step := New(h, cfg)
	t := time.NewTicker(StepInterval)
	defer t.Stop()
	for range t.C {
		if err := step(); err != nil {
			if l := h.Logger(); l != nil {
				l.WriteLineString("serialterm: " + err.Error())
			}
		}
	}
}

func newSession(h hal.HAL, cfg Config) *session {
	ser := h.Serial()
	s := &session{h: h, out: ser, start: time.Now()}

	if cfg.Mirror {
		if m := newMirror(h); m != nil {
			s.out = console.Mirror(ser, m)
		}
	}
	if f, ok := ser.(interface{ Feed(p []byte) }); ok {
		s.feeder = f
		if in := h.Input(); in != nil {
			if kbd := in.Keyboard(); kbd != nil {
				s.keys = kbd.Events()
			}
		}
	}

	ccfg := cfg.Console
	if ccfg.Logger == nil {
		if l := h.Logger(); l != nil {
			ccfg.Logger = l
		}
	}
	if ccfg.Memory == nil && !ccfg.NoBuiltin {
		if fl := h.Flash(); fl != nil {
			ccfg.Memory = fl
		}
	}

	s.con = console.New(s.out, ccfg)
	s.registerCommands()
	return s
}

func newMirror(h hal.HAL) *lcd.Mirror {
	d := h.Display()
	if d == nil {
		return nil
	}
	return lcd.New(d.Framebuffer())
}

func (s *session) step() error {
	s.drainKeys()
	s.con.Step()
	if s.out.Available() > 0 {
		return nil
	}
	if e, ok := s.h.Serial().(interface{ Err() error }); ok {
		return e.Err()
	}
	return nil
}

func (s *session) drainKeys() {
	if s.keys == nil {
		return
	}
	for {
		select {
		case ev := <-s.keys:
			if b := keyBytes(ev); len(b) > 0 {
				s.feeder.Feed(b)
			}
		default:
			return
		}
	}
}
