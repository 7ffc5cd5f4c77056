package log

import (
	"context"

	"github.com/rs/zerolog"
)

// GooseLogger routes goose migration output through the ambient zerolog
// logger so migration lines land in the same stream as everything else.
type GooseLogger struct {
	logger *zerolog.Logger
}

func (g *GooseLogger) Fatalf(format string, v ...interface{}) {
	g.logger.Fatal().Msgf(format, v...)
}

func (g *GooseLogger) Printf(format string, v ...interface{}) {
	g.logger.Info().Msgf(format, v...)
}

// NewGooseLoggerFromCtx builds a goose logger on top of the context's
// logger.
func NewGooseLoggerFromCtx(ctx context.Context) *GooseLogger {
	return &GooseLogger{
		logger: FromCtx(ctx),
	}
}
