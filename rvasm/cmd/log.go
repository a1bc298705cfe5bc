package cmd

import (
	"fmt"
	"io"
	"strings"

	"log/slog"

	"github.com/ethereum/go-ethereum/log"
)

func Logger(w io.Writer, lvl slog.Level) log.Logger {
	return log.NewLogger(log.LogfmtHandlerWithLevel(w, lvl))
}

// ParseLevel maps a level name, in any case, to a log level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "trace":
		return log.LevelTrace, nil
	case "debug":
		return log.LevelDebug, nil
	case "info", "":
		return log.LevelInfo, nil
	case "warn":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	case "crit":
		return log.LevelCrit, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", name)
	}
}

// HexU32 to lazy-format instruction words for logging
type HexU32 uint32

func (v HexU32) String() string {
	return fmt.Sprintf("%08x", uint32(v))
}

func (v HexU32) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
