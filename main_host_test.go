//go:build !tinygo

package main

import (
	"testing"

	"serialterm/internal/config"
)

func TestApplyFlags_OnlyChangedFlagsWin(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"--port", "/dev/ttyUSB1", "--window"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	fl := flags{port: "/dev/ttyUSB1", baud: config.DefaultBaud, hz: config.DefaultHz, window: true}
	cfg := &config.Config{Port: "/dev/ttyS0", Baud: 9600, Hz: 30}

	applyFlags(cmd, fl, cfg)
	if cfg.Port != "/dev/ttyUSB1" {
		t.Fatalf("Port=%q; want flag value", cfg.Port)
	}
	if cfg.Baud != 9600 || cfg.Hz != 30 {
		t.Fatalf("unset flags overrode config: baud=%d hz=%d", cfg.Baud, cfg.Hz)
	}
	if !cfg.Mirror {
		t.Fatalf("--window did not enable the mirror")
	}
}

func TestConfigMapping(t *testing.T) {
	cfg := &config.Config{
		Port:       "/dev/ttyACM0",
		Baud:       57600,
		Prompt:     "> ",
		NoHelp:     true,
		NoPrompt:   true,
		EEPROMPath: "x.bin",
		EEPROMSize: 512,
		LogLevel:   "debug",
	}
	hc := hostConfig(cfg)
	if hc.Port != cfg.Port || hc.Baud != cfg.Baud || hc.EEPROMPath != "x.bin" || hc.EEPROMSize != 512 || hc.LogLevel != "debug" {
		t.Fatalf("hostConfig=%+v", hc)
	}
	ac := appConfig(cfg)
	if ac.Console.Prompt != "> " || !ac.Console.NoHelp || !ac.Console.NoPrompt || ac.Console.MemorySize != 512 {
		t.Fatalf("appConfig=%+v", ac.Console)
	}
}
