package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New construit le logger du service : console lisible en développement,
// JSON partout ailleurs.
func New(dev bool) zerolog.Logger {
	if dev {
		return zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger()
	}

	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
