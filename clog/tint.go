// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package clog

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// tintLogger is a LogProvider backed by log/slog, using tint for
// human-readable, colorized output. Critical and Error both map to
// slog's Error level since slog has no dedicated critical level;
// the message is prefixed so the two remain distinguishable in
// output.
type tintLogger struct {
	logger *slog.Logger
}

var _ LogProvider = tintLogger{}

// NewTintLogger creates a LogProvider writing to w, prefixing every
// line with prefix (mirroring NewLogger's prefix argument).
func NewTintLogger(w *os.File, prefix string) LogProvider {
	return tintLogger{
		logger: slog.New(tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
		})).With("component", prefix),
	}
}

func (sf tintLogger) Critical(format string, v ...interface{}) {
	sf.logger.Error("[CRITICAL] " + fmt.Sprintf(format, v...))
}

func (sf tintLogger) Error(format string, v ...interface{}) {
	sf.logger.Error(fmt.Sprintf(format, v...))
}

func (sf tintLogger) Warn(format string, v ...interface{}) {
	sf.logger.Warn(fmt.Sprintf(format, v...))
}

func (sf tintLogger) Debug(format string, v ...interface{}) {
	sf.logger.Debug(fmt.Sprintf(format, v...))
}
