package util

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var ZerologLevelIds = map[zerolog.Level][]string{
	zerolog.TraceLevel: {"trace"},
	zerolog.DebugLevel: {"debug"},
	zerolog.InfoLevel:  {"info"},
	zerolog.WarnLevel:  {"warning", "warn"},
	zerolog.ErrorLevel: {"error"},
	zerolog.FatalLevel: {"fatal"},
	zerolog.PanicLevel: {"panic"},
}

// SetupZerolog configures the global logger. The daemon's stdout may be
// redirected into the background log file, so the console writer keeps
// plain RFC3339 timestamps there.
func SetupZerolog(noLogTime bool, level zerolog.Level) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.ErrorFieldName = "Error"
	if noLogTime {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, FormatTimestamp: func(a interface{}) string { return "" }})
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}
	zerolog.SetGlobalLevel(level)
}
