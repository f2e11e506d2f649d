package lumber

import (
	"bytes"
	"sync"
)

// Writer adapts a Logger to an io.Writer, emitting one log entry per line.
// gin writes its route table and request lines through it.
type Writer struct {
	log   func(format string, args ...interface{})
	mu    sync.Mutex
	buff  bytes.Buffer
	trims []byte
}

// NewWriter returns a Writer logging every line at debug level.
func NewWriter(logger Logger) *Writer {
	return &Writer{log: logger.Debugf, trims: []byte("\r")}
}

// NewLevelWriter returns a Writer logging every line at the given level.
func NewLevelWriter(logger Logger, level string) *Writer {
	w := NewWriter(logger)
	switch level {
	case Info:
		w.log = logger.Infof
	case Warn:
		w.log = logger.Warnf
	case Error:
		w.log = logger.Errorf
	}
	return w
}

// Write splits bs on newlines and logs each complete line. A trailing
// partial line stays buffered until the next Write or Close.
func (w *Writer) Write(bs []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	n := len(bs)
	for len(bs) > 0 {
		idx := bytes.IndexByte(bs, '\n')
		if idx < 0 {
			w.buff.Write(bs)
			break
		}
		w.buff.Write(bs[:idx])
		w.flush(true)
		bs = bs[idx+1:]
	}
	return n, nil
}

// Close flushes any buffered partial line.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.flush(false)
	return nil
}

// flush logs the buffer, empty lines only when allowEmpty is set.
func (w *Writer) flush(allowEmpty bool) {
	line := bytes.TrimRight(w.buff.Bytes(), string(w.trims))
	if allowEmpty || len(line) > 0 {
		w.log("%s", string(line))
	}
	w.buff.Reset()
}
