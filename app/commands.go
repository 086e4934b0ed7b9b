package app

import (
	"fmt"
	"strings"
	"time"

	"serialterm/console"
	"serialterm/internal/buildinfo"
)

func (s *session) registerCommands() {
	_ = s.con.Add("led", s.cmdLED, "led on|off")
	_ = s.con.Add("echo", s.cmdEcho, "echo \"text\"")
	_ = s.con.Add("args", s.cmdArgs, "splits its arguments")
	_ = s.con.Add("uptime", s.cmdUptime, "time since start")
	_ = s.con.Add("version", s.cmdVersion, "build information")
}

func (s *session) print(str string) {
	_, _ = s.out.Write([]byte(str))
}

func (s *session) cmdLED(args string) {
	led := s.h.LED()
	if led == nil {
		s.print("led: unavailable")
		return
	}
	switch args {
	case "on":
		led.High()
	case "off":
		led.Low()
	default:
		s.print("usage: led on|off")
		return
	}
	s.print("led: " + args)
}

func (s *session) cmdEcho(args string) {
	text, err := console.ParseArgument(args)
	if err != nil {
		s.print("echo: " + err.Error())
		return
	}
	s.print(text)
}

func (s *session) cmdArgs(args string) {
	words, err := console.SplitArguments(args)
	if err != nil {
		s.print("args: " + err.Error())
		return
	}
	lines := make([]string, 0, len(words)+1)
	lines = append(lines, fmt.Sprintf("%d args", len(words)))
	for i, w := range words {
		lines = append(lines, fmt.Sprintf("[%d] %s", i, w))
	}
	s.print(strings.Join(lines, "\r\n"))
}

func (s *session) cmdUptime(string) {
	s.print(time.Since(s.start).Truncate(time.Second).String())
}

func (s *session) cmdVersion(string) {
	s.print("serialterm " + buildinfo.String())
}
