//go:build tinygo && baremetal

package main

import (
	"serialterm/app"
	"serialterm/hal"
)

func main() {
	app.Run(hal.New(), app.Config{Mirror: true})
}
