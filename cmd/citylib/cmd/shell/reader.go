package shell

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"
)

// maxLineSize bounds a single reply.
const maxLineSize = 1 << 20

// lineReader delivers input lines while staying responsive to context
// cancellation. A single goroutine owns the underlying reader; it stops
// after close once its current read returns.
type lineReader struct {
	lines   chan string
	errs    chan error
	done    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

func newLineReader(r io.Reader) *lineReader {
	lr := &lineReader{
		lines:   make(chan string),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go lr.pump(r)
	return lr
}

func (lr *lineReader) pump(r io.Reader) {
	defer close(lr.stopped)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	for scanner.Scan() {
		select {
		case lr.lines <- strings.TrimSuffix(scanner.Text(), "\r"):
		case <-lr.done:
			return
		}
	}

	err := scanner.Err()
	if err == nil {
		err = errEOF
	}
	lr.errs <- err
	close(lr.lines)
}

// readLine blocks until a line arrives, input ends or ctx is done.
func (lr *lineReader) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-lr.lines:
		if ok {
			return line, nil
		}
		return "", <-lr.errs
	}
}

// close releases the pump goroutine; unread lines are dropped.
func (lr *lineReader) close() {
	lr.once.Do(func() { close(lr.done) })
}
