package patterns

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-sparse-gol/model"
)

// Life106Header opens every Life 1.06 file
const Life106Header = "#Life 1.06"

// ErrMissingHeader is returned when the input does not start with Life106Header
var ErrMissingHeader = errors.New("missing " + Life106Header + " header")

// ReadLife106 parses a Life 1.06 document: a header line, optional '#'
// comment lines, then one "x y" pair per line.
func ReadLife106(r io.Reader) (model.Generation, error) {
	var (
		cells       []model.Cell
		headerFound bool
		lineNo      int
		scanner     = bufio.NewScanner(r)
	)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			if line == Life106Header && len(cells) == 0 {
				headerFound = true
			}
			continue
		}
		if !headerFound {
			return model.Generation{}, errors.Wrapf(ErrMissingHeader, "[ReadLife106] line %d", lineNo)
		}

		var c model.Cell
		if _, err := fmt.Sscanf(line, "%d %d", &c.X, &c.Y); err != nil {
			return model.Generation{}, errors.Wrapf(err, "[ReadLife106] failed to parse line %d: %q", lineNo, line)
		}
		cells = append(cells, c)
	}
	if err := scanner.Err(); err != nil {
		return model.Generation{}, errors.Wrap(err, "[ReadLife106] failed to read input")
	}
	if !headerFound {
		return model.Generation{}, errors.WithStack(ErrMissingHeader)
	}

	g := model.NewGeneration(cells...)
	if err := g.Validate(); err != nil {
		return model.Generation{}, errors.Wrap(err, "[ReadLife106] invalid pattern")
	}
	return g, nil
}

// WriteLife106 writes g in Life 1.06 format, cells sorted row-major
func WriteLife106(w io.Writer, g model.Generation) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\n", Life106Header); err != nil {
		return errors.Wrap(err, "[WriteLife106] failed to write header")
	}
	for _, c := range g.Cells() {
		if _, err := fmt.Fprintf(bw, "%d %d\n", c.X, c.Y); err != nil {
			return errors.Wrapf(err, "[WriteLife106] failed to write cell: %v", c)
		}
	}
	return errors.Wrap(bw.Flush(), "[WriteLife106] failed to flush")
}

// LoadFile reads a Life 1.06 pattern from disk
func LoadFile(filename string) (model.Generation, error) {
	f, err := os.Open(filename)
	if err != nil {
		return model.Generation{}, errors.Wrapf(err, "[LoadFile] failed to open file: %+v", filename)
	}
	defer f.Close()

	g, err := ReadLife106(f)
	if err != nil {
		return model.Generation{}, errors.Wrapf(err, "[LoadFile] failed to parse file: %+v", filename)
	}
	return g, nil
}
