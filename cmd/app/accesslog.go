package main

import (
	"encoding/json"
	"log/slog"
	"os"
	"sync"
	"time"
)

type accessEntry struct {
	Time     time.Time       `json:"time"`
	Endpoint string          `json:"endpoint"`
	Method   string          `json:"method"`
	Payload  json.RawMessage `json:"payload"`
	Response int             `json:"response"`
}

// accessLogger appends one JSON object per line to a file. All writes funnel
// through a single goroutine so concurrent requests never interleave within a
// line.
type accessLogger struct {
	logger    *slog.Logger
	f         *os.File
	entries   chan accessEntry
	done      chan struct{}
	closeOnce sync.Once
}

func newAccessLogger(path string, logger *slog.Logger) (*accessLogger, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	al := &accessLogger{
		logger:  logger,
		f:       f,
		entries: make(chan accessEntry, 256),
		done:    make(chan struct{}),
	}

	go al.run()

	return al, nil
}

func (al *accessLogger) run() {
	defer close(al.done)

	for e := range al.entries {
		line, err := json.Marshal(e)
		if err != nil {
			al.logger.Error("could not marshal access log entry", slog.String("error", err.Error()))
			continue
		}

		if _, err := al.f.Write(append(line, '\n')); err != nil {
			al.logger.Error("could not write access log entry", slog.String("error", err.Error()))
		}
	}
}

// record never blocks the caller. If the buffer is full the entry is dropped
// and the drop is reported to the diagnostic log.
func (al *accessLogger) record(e accessEntry) {
	select {
	case al.entries <- e:
	default:
		al.logger.Warn("access log buffer full, dropping entry", slog.String("endpoint", e.Endpoint))
	}
}

// Close drains pending entries and closes the file. Must not be called while
// requests are still in flight.
func (al *accessLogger) Close() error {
	var err error

	al.closeOnce.Do(func() {
		close(al.entries)
		<-al.done
		err = al.f.Close()
	})

	return err
}
