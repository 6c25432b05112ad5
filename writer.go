// Copyright 2025 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package osmxml

import (
	"io"
	"log/slog"
	"sync"

	"github.com/destel/rill"

	"m4o.io/osmxml/internal/compress"
	"m4o.io/osmxml/internal/encoder"
	"m4o.io/osmxml/model"
)

// task is one element of the ordered output queue: either a pre-rendered
// literal string, such as the prologue, or a buffer of entities still to be
// formatted.
type task struct {
	literal  string
	entities []model.Entity
}

// Writer serializes OSM entities as XML to an output stream.  Buffers handed
// to WriteBuffer are formatted in parallel and written in submission order.
//
// A Writer is driven by a single producer: call WriteHeader once, then
// WriteBuffer any number of times, then WriteEnd, then Close.
type Writer struct {
	cfg  *writerOptions
	sink io.WriteCloser

	tasks chan<- task
	done  bool

	mu  sync.Mutex
	err error

	close     sync.Once
	completed sync.WaitGroup
}

// NewWriter returns a new writer, configured with options, that emits XML to
// wrtr.  The background formatting pipeline runs until Close is called.
func NewWriter(wrtr io.Writer, opts ...WriterOption) (*Writer, error) {
	cfg := defaultWriterConfig

	for _, opt := range opts {
		opt(&cfg)
	}

	cfg.encoding = cfg.encoding.Normalize()
	cfg.nCPU = max(cfg.nCPU, 1)

	sink, err := compress.NewWriter(wrtr, cfg.compression)
	if err != nil {
		return nil, err
	}

	w := &Writer{
		cfg:  &cfg,
		sink: sink,
	}

	tasks := make(chan task)
	w.tasks = tasks

	submitted := streamTasks(tasks)
	rendered := rill.OrderedMap(submitted, int(cfg.nCPU), w.render)
	statuses := saveRendered(sink, rendered)

	w.completed.Add(1)
	go w.consumeStatuses(statuses)

	return w, nil
}

// WriteHeader emits the document prologue.  It must precede any buffers.
func (w *Writer) WriteHeader(hdr model.Header) error {
	return w.push(task{literal: encoder.EncodeHeader(hdr, w.cfg.encoding)})
}

// WriteBuffer submits one buffer of entities for formatting and returns
// without waiting for the result.  The buffer is owned by the pipeline from
// here on.
func (w *Writer) WriteBuffer(entities []model.Entity) error {
	return w.push(task{entities: entities})
}

// WriteEnd emits the document epilogue.  No more buffers can be written
// afterwards.
func (w *Writer) WriteEnd() error {
	if err := w.push(task{literal: encoder.EncodeTrailer(w.cfg.encoding)}); err != nil {
		return err
	}

	w.done = true

	return nil
}

// Close drains the background pipeline, flushes the output stream, and
// returns the first error the pipeline encountered, if any.
func (w *Writer) Close() error {
	w.done = true
	w.close.Do(func() {
		close(w.tasks)
	})

	w.completed.Wait()

	if err := w.sink.Close(); err != nil {
		w.setErr(err)
	}

	return w.Err()
}

// Err returns the first error encountered by the background pipeline.
func (w *Writer) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.err
}

func (w *Writer) push(t task) error {
	if w.done {
		return ErrWriterClosed
	}

	w.tasks <- t

	return nil
}

// render materializes one queue element.  Literals pass through untouched;
// entity buffers are formatted with the immutable dialect configuration.
func (w *Writer) render(t task) (string, error) {
	if t.entities == nil {
		return t.literal, nil
	}

	return encoder.EncodeBlock(t.entities, w.cfg.encoding)
}

func (w *Writer) setErr(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.err == nil {
		w.err = err
	}
}

func (w *Writer) consumeStatuses(statuses <-chan rill.Try[struct{}]) {
	defer w.completed.Done()

	for status := range statuses {
		if status.Error != nil {
			slog.Error("block failed", "error", status.Error)
			w.setErr(status.Error)
		}
	}
}

func streamTasks(in <-chan task) <-chan rill.Try[task] {
	out := make(chan rill.Try[task])

	go func() {
		defer close(out)

		for t := range in {
			out <- rill.Try[task]{Value: t}
		}
	}()

	return out
}

// saveRendered writes the formatted strings to the sink in queue order.  On
// the first failure the document is truncated at the last successful block;
// later blocks are still drained so the producer never stalls, but nothing
// more is written.
func saveRendered(wrtr io.Writer, in <-chan rill.Try[string]) <-chan rill.Try[struct{}] {
	out := make(chan rill.Try[struct{}])

	go func() {
		defer close(out)

		var failed bool

		for blk := range in {
			if blk.Error != nil {
				failed = true
				out <- rill.Try[struct{}]{Error: blk.Error}

				continue
			}

			if failed {
				continue
			}

			_, err := io.WriteString(wrtr, blk.Value)
			if err != nil {
				failed = true
			}

			out <- rill.Wrap(struct{}{}, err)
		}
	}()

	return out
}
