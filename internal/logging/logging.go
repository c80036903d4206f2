// Package logging sets up the process-wide diagnostic log: human-readable
// timestamped lines appended to a file, mirrored to stderr. It is written as
// a side effect of every controller operation and never read back.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var once sync.Once

// Setup configures the global logger. It is init-once: repeated calls keep
// the first configuration. With an empty path only stderr is written.
func Setup(path string, verbose bool) error {
	var err error
	once.Do(func() {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}

		writers := []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr}}
		if path != "" {
			var f *os.File
			f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return
			}
			writers = append(writers, zerolog.ConsoleWriter{Out: f, NoColor: true})
		}

		log.Logger = log.Output(zerolog.MultiLevelWriter(writers...))
	})
	return err
}
