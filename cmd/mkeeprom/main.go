//go:build !tinygo

// Command mkeeprom writes an EEPROM image for the host build of serialterm.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"serialterm/hal"
	"serialterm/services/memdump"

	"github.com/spf13/cobra"
)

const (
	defaultImagePath = "serialterm.eeprom"
	defaultImageSize = 1024
)

type options struct {
	out    string
	size   uint32
	in     string
	text   string
	offset uint32
	force  bool
	dump   bool
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:           "mkeeprom",
		Short:         "Write an erased EEPROM image, optionally seeded with data",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(o, stdout)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.out, "out", defaultImagePath, "Output image path.")
	f.Uint32Var(&o.size, "size", defaultImageSize, "Image size in bytes.")
	f.StringVar(&o.in, "in", "", "File whose contents are written into the image.")
	f.StringVar(&o.text, "text", "", "Text written into the image (ignored with --in).")
	f.Uint32Var(&o.offset, "offset", 0, "Offset of the written data.")
	f.BoolVar(&o.force, "force", false, "Replace an existing image.")
	f.BoolVar(&o.dump, "dump", false, "Print the resulting image as a hex table.")
	return cmd
}

func run(o options, stdout io.Writer) (err error) {
	if o.out == "" {
		return errors.New("--out is required")
	}
	if o.size == 0 {
		return errors.New("--size must be positive")
	}

	data := []byte(o.text)
	if o.in != "" {
		data, err = os.ReadFile(o.in)
		if err != nil {
			return fmt.Errorf("read %q: %w", o.in, err)
		}
	}
	if uint64(o.offset)+uint64(len(data)) > uint64(o.size) {
		return fmt.Errorf("%d bytes at offset %d do not fit in %d", len(data), o.offset, o.size)
	}

	if _, err := os.Stat(o.out); err == nil {
		if !o.force {
			return fmt.Errorf("%q exists (use --force)", o.out)
		}
		if err := os.Remove(o.out); err != nil {
			return fmt.Errorf("remove %q: %w", o.out, err)
		}
	}

	img, err := hal.OpenEEPROM(o.out, o.size)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := img.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if len(data) > 0 {
		if _, err := img.WriteAt(data, o.offset); err != nil {
			return fmt.Errorf("write image: %w", err)
		}
	}
	if o.dump {
		return memdump.Write(stdout, img, o.size)
	}
	return nil
}
