package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"commodity-profits/internal/data"
)

func main() {
	if err := newGenCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newGenCmd() *cobra.Command {
	var (
		outDir string
		ext    string
		seed   uint64
	)
	cmd := &cobra.Command{
		Use:   "gen-data",
		Short: "Write twelve deterministic sample month files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Generating sample data in %s (seed %d)\n", outDir, seed)
			paths, err := data.WriteSampleDir(outDir, ext, seed)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintf(out, "  wrote %s\n", p)
			}
			fmt.Fprintf(out, "Saved %d month files\n", len(paths))
			return nil
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVarP(&outDir, "output", "o", data.DefaultDir, "Output directory")
	cmd.Flags().StringVar(&ext, "ext", data.DefaultExt, "File extension appended to each month name")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "Random seed; the same seed always produces the same files")
	return cmd
}
