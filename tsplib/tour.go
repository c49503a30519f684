package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/tourbench/tsp"
)

// tourExt replaces the input extension on output files.
const tourExt = ".tour"

// TourPath derives the output location from an instance path: everything
// from the first '.' of the file name on is replaced by ".tour"
// ("data/sample.tsp" → "data/sample.tour", "a.b.tsp" → "a.tour").
// A name without a dot gets ".tour" appended.
func TourPath(instancePath string) string {
	dir, base := filepath.Split(instancePath)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}

	return dir + base + tourExt
}

// WriteTourFile creates path and writes t to it, using path as the NAME.
func WriteTourFile(path string, t tsp.Tour) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("tsplib: create tour: %w", err)
	}
	if err = WriteTour(f, path, t); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// WriteTour writes t as a tour file. DIMENSION is len(t)-1; every id goes
// on its own line and the final (closing) id is written negated.
func WriteTour(w io.Writer, name string, t tsp.Tour) error {
	if len(t) < 2 {
		return tsp.ErrInvalidTour
	}

	var (
		bw   = bufio.NewWriter(w)
		last = len(t) - 1
	)
	fmt.Fprintf(bw, "%s: %s\n", keyName, name)
	fmt.Fprintf(bw, "%s: TOUR\n", keyType)
	fmt.Fprintf(bw, "%s: %d\n", keyDimension, t.Len())
	fmt.Fprintln(bw, keyTourSection)
	for k, id := range t {
		if k == last {
			id = -id
		}
		fmt.Fprintln(bw, id)
	}

	return bw.Flush()
}

// ReadTourFile opens path and parses it with ReadTour.
func ReadTourFile(path string) (tsp.Tour, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tsplib: open tour: %w", err)
	}
	defer f.Close()

	t, err := ReadTour(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// ReadTour parses a tour file written by WriteTour. Ids are read after
// TOUR_SECTION until the first negative entry, whose absolute value closes
// the tour. The result has DIMENSION+1 entries; it is not validated against
// an instance (see tsp.Tour.Validate).
func ReadTour(r io.Reader) (tsp.Tour, error) {
	var (
		sc     = bufio.NewScanner(r)
		dim    int
		inBody bool
		lineNo int
		err    error
	)
	for !inBody && sc.Scan() {
		lineNo++
		key, value := splitHeader(sc.Text())
		switch key {
		case keyDimension:
			if dim, err = parseDimension(value); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		case keyTourSection:
			inBody = true
		}
	}
	if err = sc.Err(); err != nil {
		return nil, err
	}
	if dim == 0 {
		return nil, ErrMissingDimension
	}
	if !inBody {
		return nil, ErrMissingSection
	}

	var tour = make(tsp.Tour, 0, dim+1)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, keyEOF) {
			break
		}
		id, perr := strconv.Atoi(line)
		if perr != nil {
			return nil, fmt.Errorf("line %d: %w: %q", lineNo, ErrBadTourLine, line)
		}
		if id < 0 {
			tour = append(tour, -id)
			break
		}
		tour = append(tour, id)
	}
	if err = sc.Err(); err != nil {
		return nil, err
	}
	if len(tour) != dim+1 {
		return nil, fmt.Errorf("%w: got %d of %d", ErrShortSection, len(tour), dim+1)
	}

	return tour, nil
}
