package tsplib_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/tourbench/tsp"
	"github.com/katalvlaran/tourbench/tsplib"
	"github.com/stretchr/testify/require"
)

func TestTourPath(t *testing.T) {
	cases := map[string]string{
		"sample.tsp":           "sample.tour",
		"data/sample.tsp":      "data/sample.tour",
		"./data/sample.tsp":    "./data/sample.tour",
		"archive.v2.tsp":       "archive.tour",
		"noext":                "noext.tour",
		"dir.with.dots/cities": "dir.with.dots/cities.tour",
	}
	for in, want := range cases {
		require.Equal(t, filepath.FromSlash(want), tsplib.TourPath(filepath.FromSlash(in)), in)
	}
}

func TestWriteTour_Format(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, tsplib.WriteTour(&buf, "sample.tour", tsp.Tour{1, 3, 12, 2, 1}))
	want := strings.Join([]string{
		"NAME: sample.tour",
		"TYPE: TOUR",
		"DIMENSION: 4",
		"TOUR_SECTION",
		"1",
		"3",
		"12",
		"2",
		"-1",
		"",
	}, "\n")
	require.Equal(t, want, buf.String())

	require.ErrorIs(t, tsplib.WriteTour(&buf, "x", tsp.Tour{1}), tsp.ErrInvalidTour)
}

func TestTourFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.tour")
	tour := tsp.Tour{1, 4, 2, 5, 3, 1}
	require.NoError(t, tsplib.WriteTourFile(path, tour))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(raw), "NAME: "+path+"\n"))

	got, err := tsplib.ReadTourFile(path)
	require.NoError(t, err)
	require.Equal(t, tour, got)
}

func TestReadTour_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"no dimension", "TOUR_SECTION\n1\n-1\n", tsplib.ErrMissingDimension},
		{"no section", "DIMENSION: 2\n1\n2\n-1\n", tsplib.ErrMissingSection},
		{"bad id", "DIMENSION: 2\nTOUR_SECTION\n1\ntwo\n-1\n", tsplib.ErrBadTourLine},
		{"short", "DIMENSION: 3\nTOUR_SECTION\n1\n2\n-1\n", tsplib.ErrShortSection},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tsplib.ReadTour(strings.NewReader(tc.src))
			require.ErrorIs(t, err, tc.want)
		})
	}
}
