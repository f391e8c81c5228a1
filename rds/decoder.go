// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package rds

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/rob-gra/go-rds/clog"
)

// Config configures a Decoder. The zero value is valid; Valid applies
// defaults in the style of cs104.Config / cs104.DefaultConfig.
type Config struct {
	// Log enables operational warnings (malformed input, clock-time
	// formatting failures) on the decoder's log channel.
	Log bool

	// Debug enables verbose per-group diagnostic tracing.
	Debug bool

	// MalformedWarnTTL bounds how often a repeated "malformed input"
	// warning with the same reason is re-logged; zero selects the
	// default. Not part of spec.md §6 (which only fixes the two
	// booleans) but required so a stuck upstream producer cannot flood
	// the log sink.
	MalformedWarnTTL time.Duration
}

const defaultMalformedWarnTTL = 10 * time.Second

// Valid applies the default for any unset field. Mirrors
// cs104.Config.Valid's shape; there is nothing here that can be out of
// range, so this never returns an error, but the signature matches the
// teacher's pattern for forward compatibility with future fields.
func (c *Config) Valid() error {
	if c == nil {
		return errors.New("invalid pointer")
	}
	if c.MalformedWarnTTL == 0 {
		c.MalformedWarnTTL = defaultMalformedWarnTTL
	}
	return nil
}

// DefaultConfig returns a Config with logging and debug tracing both
// off, matching spec.md §6's "both default off".
func DefaultConfig() Config {
	return Config{
		Log:              false,
		Debug:            false,
		MalformedWarnTTL: defaultMalformedWarnTTL,
	}
}

// Decoder is the RDS group parser of spec.md §2. It owns the parser
// state (§3) and is safe for a single Run goroutine plus concurrent
// calls to Reset.
type Decoder struct {
	mu    sync.Mutex
	state parserState

	log   clog.Clog
	debug clog.Clog

	malformed *cache.Cache

	inbound  <-chan []byte
	outbound chan<- Record
}

// NewDecoder builds a Decoder reading groups from inbound and writing
// records to outbound. Both channels are owned by the caller; Decoder
// never closes them.
func NewDecoder(cfg Config, inbound <-chan []byte, outbound chan<- Record) (*Decoder, error) {
	if err := cfg.Valid(); err != nil {
		return nil, err
	}

	d := &Decoder{
		state:     newParserState(),
		log:       clog.NewLogger("rds: "),
		debug:     clog.NewLogger("rds: "),
		malformed: cache.New(cfg.MalformedWarnTTL, 2*cfg.MalformedWarnTTL),
		inbound:   inbound,
		outbound:  outbound,
	}
	d.log.LogMode(cfg.Log)
	d.debug.LogMode(cfg.Debug)
	return d, nil
}

// SetLogProvider overrides the LogProvider backing both the log and
// debug channels, exactly as clog.Clog.SetLogProvider allows on the
// teacher's types. Useful for tests that want to capture output.
func (d *Decoder) SetLogProvider(p clog.LogProvider) {
	d.log.SetLogProvider(p)
	d.debug.SetLogProvider(p)
}

// Run drains inbound sequentially until ctx is cancelled or inbound is
// closed, decoding one group per iteration. There is exactly one
// consumer of inbound (spec.md §5); Run must not be called
// concurrently from more than one goroutine.
func (d *Decoder) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case blob, ok := <-d.inbound:
			if !ok {
				return nil
			}
			d.decode(blob)
		}
	}
}

// decode processes exactly one inbound blob, holding the decoder mutex
// for the duration of processing (spec.md §5: the mutex is held for a
// single group's processing and released before the next dequeue).
func (d *Decoder) decode(blob []byte) {
	g, ok := parseGroup(blob)
	if !ok {
		d.warnMalformed(fmt.Sprintf("wrong size: got %d bytes, want %d", len(blob), groupBlobSize))
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.dispatch(g)
}

// warnMalformed logs a malformed-input warning, de-duplicating
// repeats of the same reason within the configured TTL so a stuck
// upstream producer cannot flood the log sink.
func (d *Decoder) warnMalformed(reason string) {
	if _, found := d.malformed.Get(reason); found {
		return
	}
	d.malformed.SetDefault(reason, struct{}{})
	d.log.Warn("malformed input dropped: %s", reason)
}

// Reset re-initialises the parser state to its initial values,
// atomically with respect to any in-flight group decode (spec.md
// §4.12): the mutex it takes is the same one decode holds for the
// duration of a group, so no decoder ever observes a partially reset
// state.
func (d *Decoder) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.reset()
}
