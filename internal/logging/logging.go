// Package logging builds the zerolog logger used by the nwgerr CLI.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/oops"
	"go.elastic.co/ecszerolog"

	"github.com/nwg-io/nwg-error/internal/config"
)

// New returns a logger writing to w at the configured level. Pretty output
// uses zerolog's console writer; otherwise entries are JSON lines, using the
// Elastic Common Schema field names when the format is "ecs".
func New(cfg config.LogConfig, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), oops.
			In("logging").
			With("level", cfg.Level).
			Wrapf(err, "error parsing level '%s'", cfg.Level)
	}

	var logContext zerolog.Context
	switch {
	case cfg.Pretty:
		logContext = zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    true,
			TimeFormat: time.RFC3339,
			PartsOrder: []string{
				zerolog.TimestampFieldName,
				zerolog.LevelFieldName,
				"logger",
				zerolog.MessageFieldName,
			},
			FieldsExclude: []string{"logger"},
		}).
			With().
			Timestamp()
	case cfg.Format == "ecs":
		// ecszerolog stamps entries itself.
		logContext = ecszerolog.New(w).With()
	default:
		logContext = zerolog.New(w).With().Timestamp()
	}

	return logContext.
		Str("logger", "nwgerr").
		Logger().
		Level(level), nil
}
