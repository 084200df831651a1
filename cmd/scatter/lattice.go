package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ionic-scatter/internal/defs"
	"ionic-scatter/internal/lattice"
	"ionic-scatter/pkg/colorscale"
)

func newLatticeCmd() *cobra.Command {
	var (
		size    int
		spacing float64
		jitter  float64
		seed    int64
	)
	cmd := &cobra.Command{
		Use:   "lattice",
		Short: "Print a rock-salt cluster as JSON",
		Long: `
Print an n x n x n block of a rock-salt lattice centred on the origin, with
alternating +1/-1 charges, in the format the scatter command reads.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := lattice.RockSalt(size, spacing, jitter, seed)
			if err != nil {
				return err
			}
			return defs.EncodeCluster(cmd.OutOrStdout(), c)
		},
	}
	fl := cmd.Flags()
	fl.IntVar(&size, "size", 4, "sites along each edge")
	fl.Float64Var(&spacing, "spacing", lattice.NaClSpacing, "nearest-neighbour distance")
	fl.Float64Var(&jitter, "jitter", 0, "standard deviation of the random displacement")
	fl.Int64Var(&seed, "seed", 0, "jitter seed, 0 picks one from the clock")
	return cmd
}

func newScalesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scales",
		Short: "List the colour scales",
		Long:  `List the colour scale names accepted by --colorscale. Any of them takes an _r suffix to reverse it.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(colorscale.Names(), "\n"))
			return err
		},
	}
}
