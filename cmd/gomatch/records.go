package main

import (
	"encoding/json"
	"io"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/build/pargzip"
)

// recordWriter streams one JSON line per game, optionally gzipped
type recordWriter struct {
	mu  sync.Mutex
	enc *json.Encoder
	gz  *pargzip.Writer
}

func newRecordWriter(w io.Writer, compress bool, workers int) *recordWriter {
	rw := &recordWriter{}
	if compress {
		rw.gz = pargzip.NewWriter(w)
		rw.gz.Parallel = workers
		w = rw.gz
	}
	rw.enc = json.NewEncoder(w)
	return rw
}

func (rw *recordWriter) Write(rec *GameRecord) error {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	return errors.Wrap(rw.enc.Encode(rec), "records")
}

// Close flushes the gzip stream, the writer underneath stays open
func (rw *recordWriter) Close() error {
	if rw.gz == nil {
		return nil
	}
	return errors.Wrap(rw.gz.Close(), "records")
}
