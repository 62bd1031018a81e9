//go:build !tinygo

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"blocks/app"
	"blocks/hal"
	"blocks/internal/buildinfo"
	"blocks/internal/config"
	"blocks/tinyboy/input"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fl := pflag.NewFlagSet("blocks", pflag.ContinueOnError)
	cfgPath := fl.StringP("config", "c", "", "YAML config file.")
	mode := fl.StringP("mode", "m", "", "Sequencer mode: linear or looping.")
	headless := fl.Bool("headless", false, "Run without a window.")
	hz := fl.Int("hz", 0, "Tick rate in headless mode.")
	ticks := fl.Uint64("ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	script := fl.String("script", "", "Pulse sequence to play in headless mode, e.g. _D_R_U.")
	pulseReads := fl.Int("pulse-reads", 0, "Button reads per script pulse.")
	scale := fl.Int("scale", 0, "Window scale factor.")
	port := fl.String("serial", "", "Mirror frames to the serial port whose name contains this.")
	baud := fl.Int("baud", 0, "Serial mirror baud rate.")
	trace := fl.Bool("trace", false, "Log state changes and branches.")
	version := fl.Bool("version", false, "Print the build and exit.")
	if err := fl.Parse(args); err != nil {
		return err
	}
	if *version {
		fmt.Println(buildinfo.String())
		return nil
	}

	cfg, err := config.Load(afero.NewOsFs(), *cfgPath)
	if err != nil {
		return err
	}
	if fl.Changed("mode") {
		cfg.Mode = *mode
	}
	if fl.Changed("headless") {
		cfg.Headless.Enabled = *headless
	}
	if fl.Changed("hz") {
		cfg.Headless.Hz = *hz
	}
	if fl.Changed("ticks") {
		cfg.Headless.Ticks = *ticks
	}
	if fl.Changed("script") {
		cfg.Headless.Script = *script
	}
	if fl.Changed("pulse-reads") {
		cfg.Headless.PulseReads = *pulseReads
	}
	if fl.Changed("scale") {
		cfg.Scale = *scale
	}
	if fl.Changed("serial") {
		cfg.Serial.Port = *port
	}
	if fl.Changed("baud") {
		cfg.Serial.Baud = *baud
	}
	if fl.Changed("trace") {
		cfg.Trace = *trace
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	host := hal.HostConfig{Log: log}
	if cfg.Serial.Port != "" {
		m, err := hal.OpenSerialMirror(cfg.Serial.Port, cfg.Serial.Baud)
		if err != nil {
			return err
		}
		defer m.Close()
		host.Mirror = m
		log.Info("mirroring frames", zap.String("port", cfg.Serial.Port), zap.Int("baud", cfg.Serial.Baud))
	}

	appCfg := app.Config{Mode: cfg.ModeValue(), Trace: cfg.Trace}

	if cfg.Headless.Enabled {
		return runHeadless(log, host, cfg, appCfg)
	}

	return hal.RunWindow(hal.WindowConfig{Host: host, Scale: cfg.Scale}, func(h hal.HAL) func() error {
		return app.NewWithConfig(context.Background(), h, appCfg)
	})
}

func runHeadless(log *zap.Logger, host hal.HostConfig, cfg config.Config, appCfg app.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Without a script the unpolled keyboard reads as idle until ticks run
	// out or ^C.
	if s := cfg.Sequence(); len(s) > 0 {
		host.Buttons = input.NewScript(s, cfg.Headless.PulseReads, func() {
			log.Info("script finished", zap.Stringer("script", s))
			cancel()
		})
	}

	err := hal.RunHeadless(ctx, func(h hal.HAL) func() error {
		cfg := appCfg
		cfg.ExitOnHalt = true
		return app.NewWithConfig(ctx, h, cfg)
	}, hal.HeadlessConfig{Host: host, Hz: cfg.Headless.Hz, Ticks: cfg.Headless.Ticks})
	if errors.Is(err, context.Canceled) || errors.Is(err, app.ErrHalted) {
		return nil
	}
	return err
}
