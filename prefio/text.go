package prefio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// tokenReader yields whitespace-separated integers and remembers the position
// of the last token for error messages.
type tokenReader struct {
	sc  *bufio.Scanner
	pos int // 1-based index of the last token read
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokenReader{sc: sc}
}

// next returns the next integer; what names the expected value.
func (t *tokenReader) next(what string) (int, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, fmt.Errorf("prefio: reading %s: %w", what, err)
		}
		return 0, fmt.Errorf("%w: unexpected end of input reading %s (after %d tokens)",
			ErrMalformedInput, what, t.pos)
	}
	t.pos++
	tok := t.sc.Text()
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: token %d %q is not an integer (%s)", ErrMalformedInput, t.pos, tok, what)
	}
	return v, nil
}

// ReadText decodes the whitespace format described in the package doc.
func ReadText(r io.Reader) (*Instance, error) {
	t := newTokenReader(r)

	n, err := t.next("size")
	if err != nil {
		return nil, err
	}
	if err = checkSize(n); err != nil {
		return nil, err
	}

	in := &Instance{N: n}
	if in.Proposers, err = readTable(t, n, "proposer"); err != nil {
		return nil, err
	}
	if in.Receivers, err = readTable(t, n, "receiver"); err != nil {
		return nil, err
	}

	if t.sc.Scan() {
		return nil, fmt.Errorf("%w: trailing token %q after %d tokens", ErrMalformedInput, t.sc.Text(), t.pos)
	}
	if err = t.sc.Err(); err != nil {
		return nil, fmt.Errorf("prefio: reading trailer: %w", err)
	}

	return in, nil
}

// readTable grows the table as tokens arrive, so a short input never costs
// more memory than it supplies.
func readTable(t *tokenReader, n int, side string) ([][]int, error) {
	var (
		table [][]int
		row   []int
		i, j  int
		v     int
		err   error
	)
	for i = 0; i < n; i++ {
		row = nil
		for j = 0; j < n; j++ {
			if v, err = t.next(fmt.Sprintf("%s %d rank %d", side, i, j)); err != nil {
				return nil, err
			}
			row = append(row, v)
		}
		table = append(table, row)
	}
	if table == nil {
		table = [][]int{}
	}
	return table, nil
}

// WriteText encodes in the whitespace format, one table row per line.
func WriteText(w io.Writer, in *Instance) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, in.N)
	writeRows(bw, in.Proposers)
	writeRows(bw, in.Receivers)
	return bw.Flush()
}

func writeRows(bw *bufio.Writer, rows [][]int) {
	var sb strings.Builder
	for _, row := range rows {
		sb.Reset()
		for j, v := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(v))
		}
		sb.WriteByte('\n')
		bw.WriteString(sb.String())
	}
}
