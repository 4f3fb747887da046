package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/lixenwraith/led-swarm/audio"
	"github.com/lixenwraith/led-swarm/config"
	"github.com/lixenwraith/led-swarm/core"
	"github.com/lixenwraith/led-swarm/engine"
	"github.com/lixenwraith/led-swarm/event"
	"github.com/lixenwraith/led-swarm/record"
	"github.com/lixenwraith/led-swarm/render"
	"github.com/lixenwraith/led-swarm/report"
	"github.com/lixenwraith/led-swarm/system"
)

// captureSoundGap throttles capture blips
const captureSoundGap = 30 * time.Millisecond

// run is one simulation from spawn to Done together with its outputs
type run struct {
	seed     uint64
	sim      *engine.Simulation
	adapter  *render.Adapter
	tracker  *report.Tracker
	recorder record.Recorder
}

// newRun builds the simulation pipeline and wires every event consumer
func newRun(cfg *config.Config, target core.PointSet, display render.Display, sound *audio.SoundManager, seed uint64, start time.Time) (*run, error) {
	opts, err := cfg.SystemOptions()
	if err != nil {
		return nil, err
	}

	settings := cfg.EngineSettings()
	settings.Seed = seed
	sim := engine.NewSimulation(settings, target, start)
	system.Register(sim, opts)

	r := &run{
		seed:    seed,
		sim:     sim,
		adapter: render.NewAdapter(display),
		tracker: report.NewTracker(seed),
	}
	r.adapter.Quantize565 = cfg.Matrix.Quantize565

	router := sim.Router()
	router.Register(event.NewLogHandler())
	router.Register(r.tracker)
	if sound != nil && sound.Active() {
		router.Register(audio.NewHandler(sound, captureSoundGap))
	}

	if cfg.Output.Record != "" {
		rec, err := record.New(cfg.Output.Record, record.Meta{
			Seed:     seed,
			Width:    cfg.Matrix.Width,
			Height:   cfg.Matrix.Height,
			MaxUnits: cfg.Spawn.MaxUnits,
			TickMs:   cfg.Timing.TickMs,
			Entry:    cfg.Spawn.Entry,
			Homing:   cfg.Flock.Homing,
		})
		if err != nil {
			return nil, fmt.Errorf("record: %w", err)
		}
		r.recorder = rec
	}

	log.Printf("run: seed=%d target=%d entry=%s homing=%t capture_handlers=%d", seed, sim.State().Target.Len(), opts.Entry.Name(), opts.Homing, router.HandlerCount(event.EventCapture))
	return r, nil
}

// step ticks the simulation and fans the result out to the outputs
func (r *run) step(now time.Time) (engine.TickResult, error) {
	res := r.sim.Tick(now)
	if !res.Updated {
		return res, nil
	}
	if err := r.adapter.Render(res, r.sim.State()); err != nil {
		return res, err
	}
	r.tracker.Sample(r.sim.Status())
	if r.recorder != nil {
		if err := r.recorder.Record(r.sim.State()); err != nil {
			return res, fmt.Errorf("record: %w", err)
		}
	}
	return res, nil
}

// close logs the final metrics and flushes the recorder
func (r *run) close() error {
	log.Printf("run %d: %s", r.seed, strings.Join(r.sim.Status().Lines(), " "))
	if r.recorder == nil {
		return nil
	}
	err := r.recorder.Close()
	r.recorder = nil
	return err
}

// runHeadless drives a virtual clock as fast as possible until Done or the time limit
func runHeadless(cfg *config.Config, target core.PointSet, sound *audio.SoundManager, seed uint64, out io.Writer) (err error) {
	start := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := engine.NewMockTimeProvider(start)

	var gifRec *render.GIFRecorder
	var display render.Display = render.NewFrameBuffer(cfg.Matrix.Width, cfg.Matrix.Height)
	if cfg.Output.GIF != "" {
		gifRec = render.NewGIFRecorder(cfg.Matrix.Width, cfg.Matrix.Height, cfg.Output.GIFScale, cfg.Output.GIFEvery, cfg.TickInterval())
		display = render.Tee{display, gifRec}
	}

	r, err := newRun(cfg, target, display, sound, seed, start)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := r.close(); err == nil {
			err = cerr
		}
	}()

	limit := cfg.MaxDuration()
	for {
		now := clock.Advance(cfg.TickInterval())
		res, err := r.step(now)
		if err != nil {
			return err
		}
		if res.Phase == engine.PhaseDone || now.Sub(start) >= limit {
			break
		}
	}

	if gifRec != nil {
		gifRec.Flush()
		if err := gifRec.Save(cfg.Output.GIF); err != nil {
			return err
		}
		log.Printf("gif: %d frames written to %s", gifRec.Frames(), cfg.Output.GIF)
	}

	fmt.Fprintln(out, r.tracker.Summary(r.sim.Status()))
	if _, ok := r.tracker.Completed(); !ok {
		return errIncomplete
	}
	return nil
}

var errIncomplete = errors.New("time limit reached before the text was complete")
