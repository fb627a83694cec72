/*
 * mock.go, part of chemovie.
 *
 * Copyright 2026 Raul Mera rauldotmeraatusachdotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package play

import (
	"sync"
	"time"
)

//SimClock is a Clock whose tickers never fire on their own: each call
//to Tick delivers exactly one tick. It is exported so the tests of any
//package driving a Player can run playback deterministically, with no
//real time involved.
type SimClock struct {
	mu       sync.Mutex
	ch       chan time.Time
	interval time.Duration
	resets   int
}

//NewSimClock returns a ready-to-use simulated clock.
func NewSimClock() *SimClock {
	return &SimClock{ch: make(chan time.Time)}
}

//NewTicker implements the Clock interface. All tickers from the same
//SimClock share its tick channel.
func (c *SimClock) NewTicker(d time.Duration) Ticker {
	c.mu.Lock()
	c.interval = d
	c.mu.Unlock()
	return simTicker{c}
}

//Tick delivers one tick, blocking until the playback goroutine has
//picked it up. On return the tick is being processed; a subsequent
//synchronous Player call (State, Current) is therefore serialized
//after it.
func (c *SimClock) Tick() {
	c.ch <- time.Now()
}

//Interval returns the period the last ticker was created or reset
//with. Zero means no ticker was ever requested.
func (c *SimClock) Interval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.interval
}

//Resets returns how many times a ticker was retuned in place.
func (c *SimClock) Resets() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resets
}

type simTicker struct{ c *SimClock }

func (t simTicker) C() <-chan time.Time { return t.c.ch }

func (t simTicker) Reset(d time.Duration) {
	t.c.mu.Lock()
	t.c.interval = d
	t.c.resets++
	t.c.mu.Unlock()
}

func (t simTicker) Stop() {}
