// Package console implements a line-oriented command console for a serial
// byte stream.
//
// A Console is driven by the host loop: every call to Step drains the bytes
// the transport has pending, echoes them, applies backspace editing and, once
// a carriage return arrives, splits the line into a keyword and a remainder and
// hands the remainder to every callback registered under the keyword.
//
//	c := console.New(uart, console.Config{})
//	_ = c.Add("led", func(args string) { ... }, "switch the LED on|off")
//	for {
//		c.Step()
//	}
package console
