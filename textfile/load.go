package textfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/guiguan/caster"
	"github.com/npillmayer/snailfish"
)

// ErrNotRegular is returned when loading from something which is not a
// regular file.
var ErrNotRegular = errors.New("textfile: not a regular file")

// LineError reports a line which could not be loaded.
type LineError struct {
	Name string // file name, may be empty
	Line int    // 1-based line number
	Err  error  // underlying error, usually a *number.ParseError
}

func (e *LineError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: %v", e.Name, e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Progress is broadcast by a Loader for every number loaded and once more
// when a file is done. The final message has Done set and carries the error
// which stopped loading, if any.
type Progress struct {
	Name   string
	Line   int
	Number *snailfish.Number
	Done   bool
	Err    error
}

// Loader loads homework files. A Loader may be used for more than one file,
// but not concurrently.
type Loader struct {
	cast *caster.Caster // broadcaster for progress messages
}

// NewLoader creates a loader. Clients have to call Close when done.
func NewLoader() *Loader {
	return &Loader{cast: caster.New(context.Background())}
}

// progressBuffer is the channel capacity of a progress subscription.
// A slow subscriber with a full buffer slows down loading.
const progressBuffer = 64

// Subscribe returns a channel of progress messages of type Progress.
// The channel is closed when the loader is closed or ctx is done.
func (l *Loader) Subscribe(ctx context.Context) (<-chan interface{}, bool) {
	return l.cast.Sub(ctx, progressBuffer)
}

// Close stops broadcasting and closes all subscriptions.
func (l *Loader) Close() {
	l.cast.Close()
}

// Load reads the snailfish numbers of file name.
func (l *Loader) Load(name string) ([]*snailfish.Number, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	f, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return l.read(f, name)
}

// Read reads snailfish numbers from r.
func (l *Loader) Read(r io.Reader) ([]*snailfish.Number, error) {
	return l.read(r, "")
}

func (l *Loader) read(r io.Reader, name string) (nums []*snailfish.Number, err error) {
	lineno := 0
	defer func() {
		l.cast.Pub(Progress{Name: name, Line: lineno, Done: true, Err: err})
	}()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		n, perr := snailfish.Parse(line)
		if perr != nil {
			return nil, &LineError{Name: name, Line: lineno, Err: perr}
		}
		nums = append(nums, n)
		l.cast.Pub(Progress{Name: name, Line: lineno, Number: n})
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	tracer().Debugf("textfile: loaded %d numbers from %d lines", len(nums), lineno)
	return nums, nil
}

// Load reads the snailfish numbers of file name, without progress
// broadcasting.
func Load(name string) ([]*snailfish.Number, error) {
	l := NewLoader()
	defer l.Close()
	return l.Load(name)
}
