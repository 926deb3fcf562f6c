// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"time"
)

// NewTime creates a new time service
func NewTime(cfg TimeConfiguration) *Time {
	var interval time.Duration
	if cfg.FramesPerSecond <= 0 {
		interval = time.Nanosecond
	} else {
		interval = time.Second / (time.Duration)(cfg.FramesPerSecond)
	}

	return &Time{
		fps:       cfg.FramesPerSecond,
		fpsTicker: time.NewTicker(interval),
		now:       time.Now,
		lastFrame: time.Now(),
	}
}

// Time contains the frame ticker and keeps track of frame durations
type Time struct {
	fps       int
	fpsTicker *time.Ticker

	now       func() time.Time
	lastFrame time.Time
}

// Fps gets the set frames per second
func (t *Time) Fps() int {
	return t.fps
}

// FpsTicker gets the initialized fps ticker
func (t *Time) FpsTicker() *time.Ticker {
	return t.fpsTicker
}

// Delta returns the seconds passed since the previous call,
// or since the service was created on the first call.
func (t *Time) Delta() float32 {
	current := t.now()
	delta := current.Sub(t.lastFrame)
	t.lastFrame = current
	return float32(delta.Seconds())
}

// Stop stops the tickers
func (t *Time) Stop() {
	t.fpsTicker.Stop()
}
