//go:build tinygo

package main

import (
	"blocks/app"
	"blocks/hal"
	"blocks/tinyboy/seq"
)

// mode selects the firmware script: -ldflags "-X main.mode=looping".
var mode = "linear"

func main() {
	h := hal.New()
	m, err := seq.ParseMode(mode)
	if err != nil {
		h.Logger().WriteLineString(err.Error())
		m = seq.Linear
	}
	app.Run(h, app.Config{Mode: m})
}
