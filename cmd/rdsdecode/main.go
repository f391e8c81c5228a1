// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

// Command rdsdecode reads hex-encoded RDS groups from stdin, one group
// per line (16 hex characters = 8 bytes = B0..B3), and prints the
// records the core decoder emits. Console I/O and flag parsing are
// explicitly out of the core's scope (spec.md §1); this is the thin
// external collaborator that owns them.
package main

import (
	"bufio"
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/rob-gra/go-rds/rds"
)

func main() {
	log := pflag.Bool("log", false, "enable operational warning logging")
	debug := pflag.Bool("debug", false, "enable verbose per-group diagnostic tracing")
	pflag.Parse()

	cfg := rds.DefaultConfig()
	cfg.Log = *log
	cfg.Debug = *debug

	inbound := make(chan []byte)
	outbound := make(chan rds.Record, 64)

	decoder, err := rds.NewDecoder(cfg, inbound, outbound)
	if err != nil {
		fmt.Fprintln(os.Stderr, "rdsdecode:", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		cancel()
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for rec := range outbound {
			fmt.Printf("%-10s %s\n", rec.Kind, rec.Text)
		}
	}()

	go func() {
		defer close(inbound)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			blob, err := hex.DecodeString(line)
			if err != nil {
				fmt.Fprintln(os.Stderr, "rdsdecode: skipping invalid hex line:", line)
				continue
			}
			select {
			case inbound <- blob:
			case <-ctx.Done():
				return
			}
		}
	}()

	if err := decoder.Run(ctx); err != nil && err != context.Canceled {
		fmt.Fprintln(os.Stderr, "rdsdecode:", err)
	}
	close(outbound)
	<-done
}
