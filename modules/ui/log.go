package ui

import (
	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
)

var logger = zerolog.New(zerolog.ConsoleWriter{
	Out:        colorable.NewColorableStdout(),
	TimeFormat: "15:04:05.000",
}).With().Timestamp().Logger().Level(zerolog.InfoLevel)

func SetLoglevel(level zerolog.Level) {
	logger = logger.Level(level)
}

// SetLoglevelString accepts the textual levels zerolog understands
// ("trace", "debug", "info", "warn", "error" ...)
func SetLoglevelString(level string) error {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	SetLoglevel(parsed)
	return nil
}

func Trace() *zerolog.Event {
	return logger.Trace()
}

func Debug() *zerolog.Event {
	return logger.Debug()
}

func Info() *zerolog.Event {
	return logger.Info()
}

func Warn() *zerolog.Event {
	return logger.Warn()
}

func Error() *zerolog.Event {
	return logger.Error()
}

func Fatal() *zerolog.Event {
	return logger.Fatal()
}
