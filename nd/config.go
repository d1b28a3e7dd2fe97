// Copyright 2025 go-ndarray Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package nd

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// Environment variables read once at init.
const (
	EnvBlockSizeBytes = "ND_BLOCK_SIZE_BYTES"
	EnvNoBlocked      = "ND_NO_BLOCKED"
	EnvDebug          = "ND_DEBUG"
)

// defaultBlockSizeBytes is used when the cache line size is unknown.
const defaultBlockSizeBytes = 64

// CacheLineSize is the CPU cache line size in bytes, as reported by
// golang.org/x/sys/cpu, or 64 on platforms where it is unknown.
var CacheLineSize = cacheLineSize()

var (
	blockSizeBytes int
	blockedEnabled bool
	logger         atomic.Pointer[slog.Logger]
)

func init() {
	blockSizeBytes = Uint(EnvBlockSizeBytes, CacheLineSize)
	blockedEnabled = !EnvBool(EnvNoBlocked)
	logger.Store(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: LogLevel()})))
}

func cacheLineSize() int {
	if n := int(unsafe.Sizeof(cpu.CacheLinePad{})); n > 0 {
		return n
	}
	return defaultBlockSizeBytes
}

// BlockSizeBytes returns the tile size, in bytes, used by blocked traversal.
func BlockSizeBytes() int { return blockSizeBytes }

// BlockedEnabled reports whether the blocked traversal strategy may be
// selected. Setting ND_NO_BLOCKED forces nested loops instead, which is
// useful to compare the two strategies.
func BlockedEnabled() bool { return blockedEnabled }

// SetBlockSizeBytes overrides the tile size and returns the previous value.
// Values below 1 are ignored. It is not safe to call concurrently with
// traversals; tests use it to force small tiles.
func SetBlockSizeBytes(n int) int {
	prev := blockSizeBytes
	if n >= 1 {
		blockSizeBytes = n
	}
	return prev
}

// SetBlockedEnabled overrides ND_NO_BLOCKED and returns the previous value.
// Same caveats as SetBlockSizeBytes.
func SetBlockedEnabled(on bool) bool {
	prev := blockedEnabled
	blockedEnabled = on
	return prev
}

// Var returns the trimmed value of an environment variable, with
// surrounding quotes removed.
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// EnvBool reports whether an environment variable is set to a true value. Any
// non-empty value that does not parse as a boolean counts as true.
func EnvBool(key string) bool {
	s := Var(key)
	if s == "" {
		return false
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return true
}

// Uint returns a positive integer environment variable, or defaultValue
// when it is unset or invalid.
func Uint(key string, defaultValue int) int {
	s := Var(key)
	if s == "" {
		return defaultValue
	}
	n, err := strconv.ParseUint(s, 10, 31)
	if err != nil || n == 0 {
		slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
		return defaultValue
	}
	return int(n)
}

// LogLevel returns the log level selected by ND_DEBUG: unset or false is
// Info, true is Debug, and an integer n is slog.Level(-4*n).
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var(EnvDebug); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}
	return level
}

// EnvVar describes one configuration variable.
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// EnvVars returns the effective configuration.
func EnvVars() map[string]EnvVar {
	return map[string]EnvVar{
		EnvBlockSizeBytes: {EnvBlockSizeBytes, BlockSizeBytes(), "Tile size in bytes for blocked traversal (default: cache line size)"},
		EnvNoBlocked:      {EnvNoBlocked, !BlockedEnabled(), "Disable the blocked traversal strategy"},
		EnvDebug:          {EnvDebug, LogLevel(), "Show debug logging (true, or an integer verbosity)"},
	}
}

// Logger returns the package logger.
func Logger() *slog.Logger { return logger.Load() }

// SetLogger replaces the package logger. A nil logger restores the default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: LogLevel()}))
	}
	logger.Store(l)
}

// DebugEnabled reports whether debug records would be emitted. Hot paths
// check it before building log attributes.
func DebugEnabled() bool {
	return Logger().Enabled(context.Background(), slog.LevelDebug)
}
