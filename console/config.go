package console

import "serialterm/services/memdump"

const (
	DefaultName      = "SerialTerm"
	DefaultVersion   = "1.0.2"
	DefaultCopyright = "(C) 2019, MikO"
	DefaultPrompt    = "st> "

	// DefaultMemorySize is the dumped region when Config.MemorySize is zero.
	DefaultMemorySize = 1024
)

// Config is fixed at construction.
type Config struct {
	// NoHelp suppresses the startup banner, the command listing and the
	// built-in help command. "help" then dispatches like any other keyword.
	NoHelp bool
	// NoBuiltin skips registering the eeprom memory dump.
	NoBuiltin bool
	// NoPrompt suppresses the prompt and the "command not found" message.
	NoPrompt bool

	Prompt    string
	Name      string
	Version   string
	Copyright string

	Capacity       int
	UniqueKeywords bool
	// MaxLineBytes caps the input buffer; further bytes are dropped unechoed.
	// Zero means no limit.
	MaxLineBytes int

	// Memory is dumped by the eeprom built-in. Nil disables the built-in.
	Memory     memdump.Region
	MemorySize uint32

	Logger Logger
}

// Logger receives diagnostic lines. hal.Logger satisfies it.
type Logger interface {
	WriteLineString(s string)
}

func (c Config) withDefaults() Config {
	if c.Prompt == "" {
		c.Prompt = DefaultPrompt
	}
	if c.Name == "" {
		c.Name = DefaultName
	}
	if c.Version == "" {
		c.Version = DefaultVersion
	}
	if c.Copyright == "" {
		c.Copyright = DefaultCopyright
	}
	if c.Capacity <= 0 {
		c.Capacity = DefaultCapacity
	}
	if c.MemorySize == 0 {
		c.MemorySize = DefaultMemorySize
	}
	return c
}
