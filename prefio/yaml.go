package prefio

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmatch/galeshapley"
)

// ReadYAML decodes
//
//	n: 2
//	proposers: [[0, 1], [0, 1]]
//	receivers: [[1, 0], [0, 1]]
//
// Unknown keys are rejected. A declared n that disagrees with the row or
// column counts is reported as galeshapley.ErrInvalidDimension.
func ReadYAML(r io.Reader) (*Instance, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var in Instance
	if err := dec.Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrMalformedInput)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if err := checkSize(in.N); err != nil {
		return nil, err
	}
	if err := checkDeclared(&in); err != nil {
		return nil, err
	}

	return &in, nil
}

// checkDeclared compares the declared size with the supplied tables.
func checkDeclared(in *Instance) error {
	check := func(side string, rows [][]int) error {
		if len(rows) != in.N {
			return fmt.Errorf("%w: declared n=%d but %d %s rows",
				galeshapley.ErrInvalidDimension, in.N, len(rows), side)
		}
		for i, row := range rows {
			if len(row) != in.N {
				return fmt.Errorf("%w: declared n=%d but %s row %d has %d entries",
					galeshapley.ErrInvalidDimension, in.N, side, i, len(row))
			}
		}
		return nil
	}
	if err := check("proposer", in.Proposers); err != nil {
		return err
	}
	return check("receiver", in.Receivers)
}

// WriteYAML encodes in as a YAML document with flow-style rows.
func WriteYAML(w io.Writer, in *Instance) error {
	doc := yamlDoc{N: in.N, Proposers: flowRows(in.Proposers), Receivers: flowRows(in.Receivers)}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("prefio: encode yaml: %w", err)
	}
	return enc.Close()
}

// yamlDoc mirrors Instance but renders each row inline.
type yamlDoc struct {
	N         int          `yaml:"n"`
	Proposers []*yaml.Node `yaml:"proposers"`
	Receivers []*yaml.Node `yaml:"receivers"`
}

func flowRows(rows [][]int) []*yaml.Node {
	out := make([]*yaml.Node, 0, len(rows))
	for _, row := range rows {
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
		for _, v := range row {
			n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(v)})
		}
		out = append(out, n)
	}
	return out
}
