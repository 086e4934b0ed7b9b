package console

import (
	"fmt"

	"serialterm/services/memdump"
)

const (
	keyDelete = 0x7f
	keyEnter  = '\r'
	keyLF     = '\n'

	crlf     = "\r\n"
	eraseSeq = "\b \b"

	helpKeyword   = "help"
	memoryKeyword = "eeprom"
)

// Console assembles input lines from a transport and dispatches them to
// registered commands. It is not safe for concurrent use; the host loop calls
// Step from a single goroutine.
type Console struct {
	t   Transport
	cfg Config
	reg *Registry

	line     []byte
	firstRun bool
	// skipLF is set when a CR ended the previous step with no byte behind it,
	// so an LF arriving next completes the CRLF pair instead of starting a line.
	skipLF bool

	one [1]byte
}

// New returns a console on t. The eeprom built-in is registered first unless
// cfg.NoBuiltin is set or cfg.Memory is nil.
func New(t Transport, cfg Config) *Console {
	cfg = cfg.withDefaults()
	c := &Console{
		t:        t,
		cfg:      cfg,
		reg:      newRegistry(cfg.Capacity, cfg.UniqueKeywords),
		firstRun: true,
	}
	if !cfg.NoBuiltin && cfg.Memory != nil {
		_ = c.Add(memoryKeyword, memdump.Command(t, cfg.Memory, cfg.MemorySize), "prints the contents of EEPROM")
	}
	return c
}

// Add registers a command. A failed registration leaves the console unchanged
// and is logged.
func (c *Console) Add(keyword string, cb Callback, description string) error {
	if err := c.reg.Register(keyword, cb, description); err != nil {
		c.logf("console: add %q: %v", keyword, err)
		return err
	}
	return nil
}

// Registry exposes the registered commands.
func (c *Console) Registry() *Registry { return c.reg }

// Step runs one iteration: it prints the banner on the first call, consumes
// the pending input and dispatches a completed line.
func (c *Console) Step() {
	if c.firstRun {
		c.firstRun = false
		c.greet()
	}
	if c.t.Available() <= 0 {
		return
	}
	if !c.consume() {
		return
	}
	if len(c.line) == 0 {
		c.prompt()
		return
	}

	keyword, args := ParseCommand(string(c.line))
	c.line = c.line[:0]
	if keyword == "" {
		c.prompt()
		return
	}

	if keyword == helpKeyword && !c.cfg.NoHelp {
		c.printCommands()
		return
	}

	if c.dispatch(keyword, args) == 0 && !c.cfg.NoPrompt {
		c.writeString(keyword + ": command not found")
	}
	c.writeString(crlf)
	c.prompt()
}

// consume reads pending bytes until a line is complete or input runs out.
// It reports whether a CR was seen.
func (c *Console) consume() bool {
	for c.t.Available() > 0 {
		b, err := c.t.ReadByte()
		if err != nil {
			return false
		}
		if c.skipLF {
			c.skipLF = false
			if b == keyLF {
				continue
			}
		}

		switch b {
		case keyDelete:
			c.erase()
		case keyEnter:
			c.writeString(crlf)
			c.absorbLF()
			return true
		default:
			if c.cfg.MaxLineBytes > 0 && len(c.line) >= c.cfg.MaxLineBytes {
				continue
			}
			c.one[0] = b
			_, _ = c.t.Write(c.one[:])
			c.line = append(c.line, b)
		}
	}
	return false
}

func (c *Console) absorbLF() {
	if c.t.Available() <= 0 {
		c.skipLF = true
		return
	}
	if b, err := c.t.PeekByte(); err == nil && b == keyLF {
		_, _ = c.t.ReadByte()
	}
}

func (c *Console) erase() {
	if len(c.line) == 0 {
		return
	}
	c.line = c.line[:len(c.line)-1]
	c.writeString(eraseSeq)
}

func (c *Console) dispatch(keyword, args string) int {
	fired := 0
	for _, cb := range c.reg.LookupAll(keyword) {
		c.invoke(keyword, cb, args)
		fired++
	}
	return fired
}

func (c *Console) invoke(keyword string, cb Callback, args string) {
	defer func() {
		if r := recover(); r != nil {
			c.logf("console: %s: recovered panic: %v", keyword, r)
			c.writeString(fmt.Sprintf("%s: %v", keyword, r) + crlf)
		}
	}()
	cb(args)
}

func (c *Console) greet() {
	if !c.cfg.NoHelp {
		c.writeString(c.cfg.Name + " v" + c.cfg.Version + crlf)
		c.writeString(c.cfg.Copyright + crlf)
		c.writeString("  available commands:" + crlf)
		c.printCommands()
	}
	c.prompt()
}

func (c *Console) printCommands() {
	c.reg.ForEach(func(e Entry) {
		c.writeString("\t" + e.Keyword + "\t" + e.Description + crlf)
	})
}

func (c *Console) prompt() {
	if c.cfg.NoPrompt {
		return
	}
	c.writeString(c.cfg.Prompt)
}

func (c *Console) writeString(s string) {
	_, _ = c.t.Write([]byte(s))
}

func (c *Console) logf(format string, args ...any) {
	if c.cfg.Logger == nil {
		return
	}
	c.cfg.Logger.WriteLineString(fmt.Sprintf(format, args...))
}
