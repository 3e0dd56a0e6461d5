package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmatch/galeshapley"
	"github.com/katalvlaran/lvmatch/prefio"
)

func newGenCmd(stdout io.Writer) *cobra.Command {
	var (
		n      int
		seed   int64
		format string
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Write a random valid instance",
		Long:  `Generates n×n proposer and receiver tables of uniform random permutations. The same seed always yields the same instance.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			f, err := prefio.ParseFormat(format)
			if err != nil {
				return err
			}
			pp, rp, err := galeshapley.RandomInstance(n, seed)
			if err != nil {
				return err
			}
			return prefio.Write(stdout, prefio.NewInstance(pp, rp), f)
		},
	}

	cmd.Flags().IntVar(&n, "n", 0, "agents per side")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 uses a fixed default)")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text or yaml")
	_ = cmd.MarkFlagRequired("n")

	return cmd
}
