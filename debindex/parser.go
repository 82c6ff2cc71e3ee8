package debindex

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/joshyorko/debsbom/common"
)

const (
	packagePrefix = `Package: `
	separator     = `: `
)

var ErrInvalidEncoding = errors.New("package index is not valid UTF-8")

// state is the fold over input lines: the record being accumulated, the
// field that continuation lines extend, and the records finished so far.
type state struct {
	current *Record
	last    string
	records []*Record
}

func initial() state {
	return state{
		current: NewRecord(),
		records: make([]*Record, 0, 64),
	}
}

func (it state) step(raw string) state {
	line := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(line, packagePrefix):
		it = it.finish()
		name, value := splitField(line)
		it.current.Set(name, value)
		it.last = name
	case len(line) == 0:
		// blank lines neither end a record nor break continuation
	case strings.Contains(line, separator):
		name, value := splitField(line)
		it.current.Set(name, value)
		it.last = name
	case !it.current.IsEmpty() && len(it.last) > 0:
		it.current.Append(it.last, line)
	default:
		common.Trace("Dropping line that continues no field: %q", line)
	}
	return it
}

// finish appends a copy of a non-empty accumulator to the finished records
// and empties the accumulator.
func (it state) finish() state {
	if !it.current.IsEmpty() {
		common.Trace("Package record %q with %d fields.", it.current.Package(), it.current.Len())
		it.records = append(it.records, it.current.Clone())
		it.current.Reset()
	}
	return it
}

// splitField splits on the first ": " only; values may contain ": " themselves.
func splitField(line string) (string, string) {
	name, value, _ := strings.Cut(line, separator)
	return strings.TrimSpace(name), strings.TrimSpace(value)
}

// Parse reads a Debian style package index and returns its records in input
// order. Fields seen before the first "Package: " line form a leading record
// without a Package field.
func Parse(reader io.Reader) ([]*Record, error) {
	fold := initial()
	number, err := eachLine(reader, func(line string) error {
		if !utf8.ValidString(line) {
			return ErrInvalidEncoding
		}
		fold = fold.step(line)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading package index at line %d: %w", number, err)
	}
	fold = fold.finish()
	common.Debug("Parsed %d package index records from %d lines.", len(fold.records), number)
	return fold.records, nil
}

// ReadFile parses the package index at filename. The file is closed before
// returning on every path.
func ReadFile(filename string) ([]*Record, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open package index: %w", err)
	}
	defer func() {
		common.Error("closing package index", file.Close())
	}()

	records, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return records, nil
}

// eachLine calls todo for every line of reader without a length limit.
// "\n", "\r\n" and a lone "\r" all end a line.
func eachLine(reader io.Reader, todo func(string) error) (int, error) {
	buffered := bufio.NewReader(reader)
	number := 0
	for {
		chunk, err := buffered.ReadString('\n')
		if len(chunk) > 0 {
			chunk = strings.TrimSuffix(strings.TrimSuffix(chunk, "\n"), "\r")
			for _, line := range strings.Split(chunk, "\r") {
				number += 1
				if failure := todo(line); failure != nil {
					return number, failure
				}
			}
		}
		if errors.Is(err, io.EOF) {
			return number, nil
		}
		if err != nil {
			return number, err
		}
	}
}
