package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/lixenwraith/led-swarm/config"
)

// options are the command-line switches; only flags actually given override the config file
type options struct {
	configPath string
	debug      bool

	seed      uint64
	headless  bool
	gif       string
	record    string
	sound     bool
	homing    bool
	entry     string
	maskImage string
	rgb565    bool

	set map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("led-swarm", flag.ContinueOnError)
	fs.SetOutput(stderr)

	o := &options{}
	fs.StringVar(&o.configPath, "config", "", "TOML config file")
	fs.BoolVar(&o.debug, "debug", false, "write logs to logs/led-swarm.log")
	fs.Uint64Var(&o.seed, "seed", 0, "random seed (0 picks one from the clock)")
	fs.BoolVar(&o.headless, "headless", false, "run on a virtual clock without a terminal and print a summary")
	fs.StringVar(&o.gif, "gif", "", "write an animated GIF of the run")
	fs.StringVar(&o.record, "record", "", "write unit positions to an HDF5 file (needs -tags hdf5)")
	fs.BoolVar(&o.sound, "sound", false, "enable sound effects")
	fs.BoolVar(&o.homing, "homing", false, "attract the flock toward the largest unlit clump")
	fs.StringVar(&o.entry, "entry", "", "entry policy: fixed or targeted")
	fs.StringVar(&o.maskImage, "mask-image", "", "use an image as the target mask")
	fs.BoolVar(&o.rgb565, "565", false, "quantize colors to RGB565")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	o.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

// loadConfig reads the optional config file and layers the given flags over it
func (o *options) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return nil, err
		}
	}

	if o.set["seed"] {
		cfg.Seed = o.seed
	}
	if o.set["headless"] && o.headless {
		cfg.Display.Mode = config.DisplayHeadless
	}
	if o.set["gif"] {
		cfg.Output.GIF = o.gif
	}
	if o.set["record"] {
		cfg.Output.Record = o.record
	}
	if o.set["sound"] {
		cfg.Sound.Enabled = o.sound
	}
	if o.set["homing"] {
		cfg.Flock.Homing = o.homing
	}
	if o.set["entry"] {
		cfg.Spawn.Entry = o.entry
	}
	if o.set["mask-image"] {
		cfg.Mask.Source = config.MaskImage
		cfg.Mask.Image = o.maskImage
	}
	if o.set["565"] {
		cfg.Matrix.Quantize565 = o.rgb565
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
