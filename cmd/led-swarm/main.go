package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/lixenwraith/led-swarm/audio"
	"github.com/lixenwraith/led-swarm/config"
)

func main() {
	// Panic recovery: print the crash after the terminal has been released
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mLED-SWARM CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "led-swarm: %v\n", err)
		}
		os.Exit(1)
	}
}

func execute(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}

	provider, err := cfg.MaskProvider()
	if err != nil {
		return err
	}
	target := provider.TargetPixels()

	sound := audio.NewSoundManager(cfg.AudioConfig())
	if err := sound.Initialize(); err != nil {
		fmt.Fprintf(stderr, "Audio initialization failed: %v (continuing without audio)\n", err)
	}
	defer sound.Cleanup()

	seed := cfg.Seed
	if seed == 0 {
		seed = newSeed()
	}

	if cfg.Display.Mode == config.DisplayHeadless {
		return runHeadless(cfg, target, sound, seed, stdout)
	}
	return runInteractive(cfg, target, sound, seed)
}

func newSeed() uint64 {
	return uint64(time.Now().UnixNano()) | 1
}
