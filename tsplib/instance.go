package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/tourbench/tsp"
)

// Header keywords and section markers.
const (
	keyName           = "NAME"
	keyComment        = "COMMENT"
	keyType           = "TYPE"
	keyDimension      = "DIMENSION"
	keyEdgeWeightType = "EDGE_WEIGHT_TYPE"
	keyNodeSection    = "NODE_COORD_SECTION"
	keyTourSection    = "TOUR_SECTION"
	keyEOF            = "EOF"

	weightEuclid2D = "EUC_2D"
)

// Instance is a parsed coordinate file.
type Instance struct {
	Name           string
	Comment        string
	Type           string
	EdgeWeightType string
	Dimension      int
	Cities         []tsp.City
}

// Registry validates the cities and returns the solver input.
func (in *Instance) Registry() (*tsp.Registry, error) {
	return tsp.NewRegistry(in.Cities)
}

// ReadInstanceFile opens path and parses it with ReadInstance.
func ReadInstanceFile(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tsplib: open instance: %w", err)
	}
	defer f.Close()

	in, err := ReadInstance(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return in, nil
}

// ReadInstance parses a TSPLIB-style coordinate file.
//
// Header lines are "KEY: value", "KEY : value" or "KEY value"; unknown
// keys are ignored. After NODE_COORD_SECTION exactly DIMENSION lines
// "id x y" are read (blank lines skipped); anything after them is ignored.
//
// Errors: ErrMissingDimension, ErrBadDimension, ErrMissingSection,
// ErrShortSection, ErrBadNodeLine, ErrUnsupportedWeightType, or the
// reader's own error.
func ReadInstance(r io.Reader) (*Instance, error) {
	var (
		sc     = bufio.NewScanner(r)
		in     = &Instance{}
		lineNo int
		inBody bool
		err    error
	)

	for !inBody && sc.Scan() {
		lineNo++
		key, value := splitHeader(sc.Text())
		switch key {
		case "":
			continue
		case keyName:
			in.Name = value
		case keyComment:
			in.Comment = value
		case keyType:
			in.Type = value
		case keyEdgeWeightType:
			in.EdgeWeightType = value
		case keyDimension:
			if in.Dimension, err = parseDimension(value); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		case keyNodeSection:
			inBody = true
		case keyEOF:
			return nil, ErrMissingSection
		}
	}
	if err = sc.Err(); err != nil {
		return nil, err
	}
	if in.Dimension == 0 {
		return nil, ErrMissingDimension
	}
	if !inBody {
		return nil, ErrMissingSection
	}
	if in.EdgeWeightType != "" && !strings.EqualFold(in.EdgeWeightType, weightEuclid2D) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedWeightType, in.EdgeWeightType)
	}

	in.Cities = make([]tsp.City, 0, in.Dimension)
	for len(in.Cities) < in.Dimension && sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, keyEOF) {
			break
		}
		c, perr := parseNode(line)
		if perr != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, perr)
		}
		in.Cities = append(in.Cities, c)
	}
	if err = sc.Err(); err != nil {
		return nil, err
	}
	if len(in.Cities) < in.Dimension {
		return nil, fmt.Errorf("%w: got %d of %d", ErrShortSection, len(in.Cities), in.Dimension)
	}

	return in, nil
}

// WriteInstanceFile creates path and writes in to it.
func WriteInstanceFile(path string, in *Instance) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("tsplib: create instance: %w", err)
	}
	if err = WriteInstance(f, in); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// WriteInstance writes in as a TSPLIB EUC_2D coordinate file.
// DIMENSION is always len(in.Cities).
func WriteInstance(w io.Writer, in *Instance) error {
	var (
		bw  = bufio.NewWriter(w)
		typ = in.Type
	)
	if typ == "" {
		typ = "TSP"
	}

	fmt.Fprintf(bw, "%s: %s\n", keyName, in.Name)
	fmt.Fprintf(bw, "%s: %s\n", keyComment, in.Comment)
	fmt.Fprintf(bw, "%s: %s\n", keyType, typ)
	fmt.Fprintf(bw, "%s: %d\n", keyDimension, len(in.Cities))
	fmt.Fprintf(bw, "%s: %s\n", keyEdgeWeightType, weightEuclid2D)
	fmt.Fprintln(bw, keyNodeSection)
	for _, c := range in.Cities {
		fmt.Fprintf(bw, "%d %s %s\n", c.ID, formatCoord(c.X), formatCoord(c.Y))
	}
	fmt.Fprintln(bw, keyEOF)

	return bw.Flush()
}

// splitHeader returns the upper-cased keyword of a header line and its value.
func splitHeader(line string) (string, string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", ""
	}
	if i := strings.IndexByte(line, ':'); i >= 0 {
		return strings.ToUpper(strings.TrimSpace(line[:i])), strings.TrimSpace(line[i+1:])
	}
	fields := strings.Fields(line)

	return strings.ToUpper(fields[0]), strings.TrimSpace(strings.TrimPrefix(line, fields[0]))
}

func parseDimension(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadDimension, value)
	}

	return n, nil
}

func parseNode(line string) (tsp.City, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return tsp.City{}, fmt.Errorf("%w: %q", ErrBadNodeLine, line)
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return tsp.City{}, fmt.Errorf("%w: id %q", ErrBadNodeLine, fields[0])
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return tsp.City{}, fmt.Errorf("%w: x %q", ErrBadNodeLine, fields[1])
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return tsp.City{}, fmt.Errorf("%w: y %q", ErrBadNodeLine, fields[2])
	}

	return tsp.City{ID: id, X: x, Y: y}, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
