package bar

import (
	"bufio"
	"io"
	"sync"

	"codeberg.org/mutker/barstatus/internal/errors"
	jsoniter "github.com/json-iterator/go"
)

// header opens the stream: protocol version line followed by the start of
// the unbounded array of frames.
const header = "{\"version\": 1}\n[\n"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Writer serializes frames onto the bar's input stream. The array opened
// by the header is never closed; every frame line ends with a comma.
type Writer struct {
	mu         sync.Mutex
	w          *bufio.Writer
	headerSent bool
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteHeader emits the protocol header once. Further calls are no-ops.
func (w *Writer) WriteHeader() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.writeHeader(); err != nil {
		return err
	}
	return w.flush()
}

// WriteFrame emits one frame line and flushes it.
func (w *Writer) WriteFrame(frame Frame) error {
	errFactory := errors.New()

	if frame == nil {
		frame = Frame{}
	}
	data, err := json.Marshal(frame)
	if err != nil {
		return errFactory.Wrap(ErrEncodeFrame, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.writeHeader(); err != nil {
		return err
	}
	if _, err := w.w.Write(data); err != nil {
		return errFactory.Wrap(ErrOutputFailed, err)
	}
	if _, err := w.w.WriteString(",\n"); err != nil {
		return errFactory.Wrap(ErrOutputFailed, err)
	}

	return w.flush()
}

func (w *Writer) writeHeader() error {
	if w.headerSent {
		return nil
	}
	if _, err := w.w.WriteString(header); err != nil {
		return errors.New().Wrap(ErrOutputFailed, err)
	}
	w.headerSent = true
	return nil
}

func (w *Writer) flush() error {
	if err := w.w.Flush(); err != nil {
		return errors.New().Wrap(ErrOutputFailed, err)
	}
	return nil
}
