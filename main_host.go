//go:build !tinygo

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"serialterm/app"
	"serialterm/console"
	"serialterm/hal"
	"serialterm/internal/buildinfo"
	"serialterm/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type flags struct {
	configPath string
	port       string
	baud       int
	window     bool
	hz         int
	ticks      uint64
	listPorts  bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("serialterm")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var fl flags
	cmd := &cobra.Command{
		Use:           "serialterm",
		Short:         "Line console over a serial link or the local terminal",
		Version:       buildinfo.String(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if fl.listPorts {
				return listPorts(cmd.OutOrStdout())
			}
			cfg, err := config.Load(fl.configPath)
			if err != nil {
				return err
			}
			applyFlags(cmd, fl, cfg)
			return run(cmd.Context(), fl, cfg)
		},
	}
	f := cmd.Flags()
	f.StringVar(&fl.configPath, "config", "", "Config file (default ~/.config/serialterm/config.yaml).")
	f.StringVar(&fl.port, "port", "", "Serial device; empty uses stdin/stdout.")
	f.IntVar(&fl.baud, "baud", config.DefaultBaud, "Serial baud rate.")
	f.BoolVar(&fl.window, "window", false, "Open a window with the LCD mirror and keyboard input.")
	f.IntVar(&fl.hz, "hz", config.DefaultHz, "Console step rate without a window.")
	f.Uint64Var(&fl.ticks, "ticks", 0, "Stop after N steps without a window (0 = run forever).")
	f.BoolVar(&fl.listPorts, "list-ports", false, "Print the available serial ports and exit.")
	return cmd
}

// applyFlags lets explicitly set flags win over the config file.
func applyFlags(cmd *cobra.Command, fl flags, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("port") {
		cfg.Port = fl.port
	}
	if f.Changed("baud") {
		cfg.Baud = fl.baud
	}
	if f.Changed("hz") {
		cfg.Hz = fl.hz
	}
	if fl.window {
		cfg.Mirror = true
	}
}

func hostConfig(cfg *config.Config) hal.HostConfig {
	return hal.HostConfig{
		Port:       cfg.Port,
		Baud:       cfg.Baud,
		EEPROMPath: cfg.EEPROMPath,
		EEPROMSize: cfg.EEPROMSize,
		LogLevel:   cfg.LogLevel,
	}
}

func appConfig(cfg *config.Config) app.Config {
	return app.Config{
		Console: console.Config{
			NoHelp:     cfg.NoHelp,
			NoBuiltin:  cfg.NoBuiltin,
			NoPrompt:   cfg.NoPrompt,
			Prompt:     cfg.Prompt,
			MemorySize: cfg.EEPROMSize,
		},
		Mirror: cfg.Mirror,
	}
}

func run(ctx context.Context, fl flags, cfg *config.Config) error {
	newApp := func(h hal.HAL) func() error {
		return app.New(h, appConfig(cfg))
	}

	if fl.window {
		return hal.RunWindow(hostConfig(cfg), newApp)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	err := hal.RunHeadless(ctx, hostConfig(cfg), newApp, hal.HeadlessConfig{Hz: cfg.Hz, Ticks: fl.ticks})
	if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func listPorts(w io.Writer) error {
	ports, err := hal.SerialPorts()
	if err != nil {
		return err
	}
	for _, p := range ports {
		fmt.Fprintln(w, p)
	}
	return nil
}
