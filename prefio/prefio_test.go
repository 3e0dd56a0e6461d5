package prefio_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatch/galeshapley"
	"github.com/katalvlaran/lvmatch/prefio"
)

const sampleText = `3
0 1 2
0 1 2
0 1 2
2 1 0
1 2 0
0 1 2
`

func TestReadText_Sample(t *testing.T) {
	in, err := prefio.ReadText(strings.NewReader(sampleText))
	require.NoError(t, err)
	require.Equal(t, 3, in.N)
	require.Equal(t, [][]int{{0, 1, 2}, {0, 1, 2}, {0, 1, 2}}, in.Proposers)
	require.Equal(t, [][]int{{2, 1, 0}, {1, 2, 0}, {0, 1, 2}}, in.Receivers)

	e, err := in.Engine()
	require.NoError(t, err)
	require.Equal(t, galeshapley.Matching{2, 1, 0}, e.Run().Matching)
}

func TestReadText_LayoutIsFree(t *testing.T) {
	in, err := prefio.ReadText(strings.NewReader("2 0 1\t1 0\n\n 1 0 0 1"))
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1}, {1, 0}}, in.Proposers)
	require.Equal(t, [][]int{{1, 0}, {0, 1}}, in.Receivers)
}

func TestReadText_Malformed(t *testing.T) {
	cases := []struct {
		name  string
		input string
		frag  string
	}{
		{"empty", "", "end of input reading size"},
		{"non-integer size", "three", `"three" is not an integer`},
		{"negative size", "-2", "negative size"},
		{"short proposer table", "2 0 1 1", "proposer 1 rank 1"},
		{"short receiver table", "2 0 1 1 0 1 0", "receiver 1 rank 0"},
		{"letter in table", "2 0 1 x 0 1 0 0 1", `token 4 "x"`},
		{"trailing data", "1 0 0 5", "trailing token"},
		{"huge size", "9223372036854775807", "exceeds limit"},
		{"oversized size", "100000000 0 1", "exceeds limit"},
		{"limit plus one", "32769", "size 32769 exceeds limit 32768"},
		{"large size short body", "32768 0 1 2", "proposer 0 rank 3"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var (
				in  *prefio.Instance
				err error
			)
			require.NotPanics(t, func() {
				in, err = prefio.ReadText(strings.NewReader(tc.input))
			})
			require.Nil(t, in)
			require.ErrorIs(t, err, prefio.ErrMalformedInput)
			require.Contains(t, err.Error(), tc.frag)
		})
	}
}

// A shape-valid file with a bad row passes the loader and fails in the engine.
func TestReadText_PermutationCheckedByEngine(t *testing.T) {
	in, err := prefio.ReadText(strings.NewReader("3 0 0 2 0 1 2 0 1 2 0 1 2 0 1 2 0 1 2"))
	require.NoError(t, err)
	_, err = in.Engine()
	require.ErrorIs(t, err, galeshapley.ErrInvalidPreferenceTable)
}

func TestReadYAML(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		doc := "n: 2\nproposers: [[0, 1], [0, 1]]\nreceivers:\n  - [1, 0]\n  - [0, 1]\n"
		in, err := prefio.ReadYAML(strings.NewReader(doc))
		require.NoError(t, err)
		require.Equal(t, &prefio.Instance{
			N:         2,
			Proposers: [][]int{{0, 1}, {0, 1}},
			Receivers: [][]int{{1, 0}, {0, 1}},
		}, in)
	})

	t.Run("declared size disagrees", func(t *testing.T) {
		doc := "n: 3\nproposers: [[0, 1], [0, 1]]\nreceivers: [[1, 0], [0, 1]]\n"
		_, err := prefio.ReadYAML(strings.NewReader(doc))
		require.ErrorIs(t, err, galeshapley.ErrInvalidDimension)
	})

	t.Run("ragged row", func(t *testing.T) {
		doc := "n: 2\nproposers: [[0, 1], [0]]\nreceivers: [[1, 0], [0, 1]]\n"
		_, err := prefio.ReadYAML(strings.NewReader(doc))
		require.ErrorIs(t, err, galeshapley.ErrInvalidDimension)
		require.Contains(t, err.Error(), "proposer row 1")
	})

	t.Run("not yaml integers", func(t *testing.T) {
		doc := "n: 2\nproposers: [[a, b], [0, 1]]\nreceivers: [[1, 0], [0, 1]]\n"
		_, err := prefio.ReadYAML(strings.NewReader(doc))
		require.ErrorIs(t, err, prefio.ErrMalformedInput)
	})

	t.Run("unknown key", func(t *testing.T) {
		doc := "n: 1\nproposers: [[0]]\nreceivers: [[0]]\nwomen: [[0]]\n"
		_, err := prefio.ReadYAML(strings.NewReader(doc))
		require.ErrorIs(t, err, prefio.ErrMalformedInput)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := prefio.ReadYAML(strings.NewReader(""))
		require.ErrorIs(t, err, prefio.ErrMalformedInput)
	})

	t.Run("size over limit", func(t *testing.T) {
		doc := "n: 9223372036854775807\nproposers: [[0]]\nreceivers: [[0]]\n"
		_, err := prefio.ReadYAML(strings.NewReader(doc))
		require.ErrorIs(t, err, prefio.ErrMalformedInput)
		require.Contains(t, err.Error(), "exceeds limit")
	})
}

func TestRoundTrip(t *testing.T) {
	pp, rp, err := galeshapley.RandomInstance(9, 31)
	require.NoError(t, err)
	want := prefio.NewInstance(pp, rp)

	for _, f := range []prefio.Format{prefio.FormatText, prefio.FormatYAML} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, prefio.Write(&buf, want, f))
			got, err := prefio.Read(&buf, f)
			require.NoError(t, err)
			require.Equal(t, want, got)
		})
	}
}

func TestWriteText_Layout(t *testing.T) {
	in := prefio.NewInstance([][]int{{0, 1}, {1, 0}}, [][]int{{1, 0}, {0, 1}})
	var buf bytes.Buffer
	require.NoError(t, prefio.WriteText(&buf, in))
	require.Equal(t, "2\n0 1\n1 0\n1 0\n0 1\n", buf.String())
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]prefio.Format{
		"":     prefio.FormatText,
		"text": prefio.FormatText,
		"TXT":  prefio.FormatText,
		"yaml": prefio.FormatYAML,
		" yml": prefio.FormatYAML,
	} {
		got, err := prefio.ParseFormat(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := prefio.ParseFormat("json")
	require.True(t, errors.Is(err, prefio.ErrUnknownFormat))

	_, err = prefio.Read(strings.NewReader(""), prefio.Format(7))
	require.ErrorIs(t, err, prefio.ErrUnknownFormat)
	require.Equal(t, "format(7)", prefio.Format(7).String())
}
