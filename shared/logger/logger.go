package logger

import (
	"io"
	"os"
	"summit/config"
	"summit/shared/constant"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultLevel = zerolog.InfoLevel

// Init configures the global zerolog logger for the process.
// Production writes JSON lines to stdout; every other environment gets the console writer.
func Init(config *config.Config) {
	InitWithWriter(config, os.Stdout)
}

func InitWithWriter(config *config.Config, out io.Writer) {
	zerolog.TimeFieldFormat = time.RFC3339

	if config.Server.Env != constant.ServerEnvProduction {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(out).With().Timestamp()
	if config.App.Name != "" {
		ctx = ctx.Str("app", config.App.Name)
	}

	log.Logger = ctx.Str("env", config.Server.Env).Logger()

	zerolog.SetGlobalLevel(Level(config.Server.LogLevel))
}

// Level parses a LOG_LEVEL value. Unknown or empty values fall back to info.
func Level(value string) zerolog.Level {
	level, err := zerolog.ParseLevel(value)
	if err != nil || value == "" {
		return defaultLevel
	}

	return level
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}
