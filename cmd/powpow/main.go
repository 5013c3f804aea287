package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dl/powpow/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	exitCode := 0

	root := &cobra.Command{
		Use:           "powpow",
		Short:         "pipe text through literal grep and cat",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var (
		noHighlight bool
		lineNumbers bool
		countOnly   bool
		quiet       bool
		jsonOutput  bool
		colorFlag   string
	)

	grepCmd := &cobra.Command{
		Use:   "grep PATTERN [FILE...]",
		Short: "print lines containing a literal pattern",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			color, err := cli.ParseColorMode(colorFlag)
			if err != nil {
				return err
			}

			cfg := cli.Config{
				Pattern:     args[0],
				Paths:       args[1:],
				Highlight:   !noHighlight,
				LineNumbers: lineNumbers,
				CountOnly:   countOnly,
				Quiet:       quiet,
				JSONOutput:  jsonOutput,
				Color:       color,
			}

			fc, err := cli.LoadFileConfig()
			if err != nil {
				return err
			}
			fc.ApplyTo(&cfg,
				cmd.Flags().Changed("no-highlight"),
				cmd.Flags().Changed("line-number"),
				cmd.Flags().Changed("color"))

			exitCode = cli.RunGrep(cfg)
			return nil
		},
	}
	grepCmd.Flags().BoolVar(&noHighlight, "no-highlight", false, "do not wrap matches in color markers")
	grepCmd.Flags().BoolVarP(&lineNumbers, "line-number", "n", false, "prefix matched lines with line numbers")
	grepCmd.Flags().BoolVarP(&countOnly, "count", "c", false, "print only the match count")
	grepCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "no output, exit status only")
	grepCmd.Flags().BoolVar(&jsonOutput, "json", false, "print matches as JSON lines")
	grepCmd.Flags().StringVar(&colorFlag, "color", "auto", "when to color output: auto, always, never")

	catCmd := &cobra.Command{
		Use:   "cat FILE...",
		Short: "print the joined contents of the named files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exitCode = cli.RunCat(args)
			return nil
		},
	}

	root.AddCommand(grepCmd, catCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	return exitCode
}
