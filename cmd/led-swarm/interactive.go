package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/led-swarm/audio"
	"github.com/lixenwraith/led-swarm/config"
	"github.com/lixenwraith/led-swarm/core"
	"github.com/lixenwraith/led-swarm/engine"
	"github.com/lixenwraith/led-swarm/render"
	"github.com/lixenwraith/led-swarm/status"
)

// session owns the terminal and restarts runs on request
type session struct {
	cfg    *config.Config
	target core.PointSet
	sound  *audio.SoundManager

	term    *render.TerminalDisplay
	display render.Display
	gifRec  *render.GIFRecorder
	clock   *engine.PausableClock

	current *run
}

func runInteractive(cfg *config.Config, target core.PointSet, sound *audio.SoundManager, seed uint64) error {
	term, err := render.OpenTerminalDisplay(cfg.Matrix.Width, cfg.Matrix.Height)
	if err != nil {
		return err
	}
	defer term.Fini()

	s := newSession(cfg, target, sound, term, engine.NewPausableClock(engine.NewMonotonicTimeProvider()))
	started := s.clock.RealTime()
	if err := s.restart(seed); err != nil {
		return err
	}
	err = s.loop()
	if cerr := s.current.close(); err == nil {
		err = cerr
	}
	log.Printf("session: wall=%s paused=%s", s.clock.RealTime().Sub(started).Round(time.Millisecond), s.clock.TotalPauseDuration().Round(time.Millisecond))

	if s.gifRec != nil {
		s.gifRec.Flush()
		if gerr := s.gifRec.Save(cfg.Output.GIF); err == nil {
			err = gerr
		}
	}
	return err
}

// newSession wires the display chain and status line; the first run starts on restart
func newSession(cfg *config.Config, target core.PointSet, sound *audio.SoundManager, term *render.TerminalDisplay, clock *engine.PausableClock) *session {
	s := &session{
		cfg:     cfg,
		target:  target,
		sound:   sound,
		term:    term,
		display: term,
		clock:   clock,
	}
	if cfg.Output.GIF != "" {
		s.gifRec = render.NewGIFRecorder(cfg.Matrix.Width, cfg.Matrix.Height, cfg.Output.GIFScale, cfg.Output.GIFEvery, cfg.TickInterval())
		s.display = render.Tee{term, s.gifRec}
	}
	term.SetStatus(s.statusLine)
	return s
}

func (s *session) restart(seed uint64) error {
	if s.current != nil {
		if err := s.current.close(); err != nil {
			return err
		}
	}
	s.clock.Resume()
	r, err := newRun(s.cfg, s.target, s.display, s.sound, seed, s.clock.Now())
	if err != nil {
		return err
	}
	s.current = r
	return r.adapter.Draw(r.sim.State())
}

func (s *session) loop() error {
	screen := s.term.Screen()
	events := make(chan tcell.Event, 64)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	frames := time.NewTicker(s.cfg.FrameInterval())
	defer frames.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			quit, err := s.handle(ev)
			if err != nil || quit {
				return err
			}

		case <-frames.C:
			if _, err := s.current.step(s.clock.Now()); err != nil {
				return err
			}
		}
	}
}

// handle processes one terminal event; q, Esc and Ctrl-C quit
func (s *session) handle(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return true, nil
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return true, nil
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			paused := s.clock.Toggle()
			s.current.sim.Status().Bools.Get(status.KeyPaused).Store(paused)
			log.Printf("paused=%t", paused)
			return false, s.redraw()
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
			return false, s.restart(newSeed())
		}
	case *tcell.EventResize:
		s.term.Screen().Sync()
		return false, s.redraw()
	}
	return false, nil
}

func (s *session) redraw() error {
	st := s.current.sim.State()
	if st.Phase == engine.PhaseDone {
		return s.current.adapter.Blank()
	}
	return s.current.adapter.Draw(st)
}

func (s *session) statusLine() string {
	reg := s.current.sim.Status()
	line := fmt.Sprintf("%d/%d lit  units %d  wave %d  %.1fs  %s  seed %d",
		reg.Ints.Get(status.KeyCaptured).Load(),
		reg.Ints.Get(status.KeyTarget).Load(),
		reg.Ints.Get(status.KeyActive).Load(),
		reg.Ints.Get(status.KeyWaves).Load(),
		reg.Floats.Get(status.KeyElapsed).Get(),
		reg.Strings.Get(status.KeyPhase).Load(),
		s.current.seed,
	)
	if reg.Bools.Get(status.KeyPaused).Load() {
		line += "  [paused]"
	}
	return line + "  (space pause, r restart, q quit)"
}
