// Command strq is an interactive driver for the strq string queue,
// useful for poking at the chain operations by hand or from a script.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		file  string
		quiet bool
	)

	cmd := &cobra.Command{
		Use:   "strq",
		Short: "interactive driver for the strq string queue",
		Long: `strq reads queue commands from standard input, or from a script file,
and applies them to a single queue. Enter "help" for the command list.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if file != "" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			it := newInterp(cmd.OutOrStdout(), quiet)
			return it.run(in)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read commands from a script file instead of stdin")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not echo the queue after each command")
	return cmd
}
