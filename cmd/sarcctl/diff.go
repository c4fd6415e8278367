package main

import (
	"fmt"

	"github.com/packfile/sarckit/sarc"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDiffCmd())
}

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <archive> <archive>",
		Short: "Compare the file sets of two archives",
		Long: `The diff command compares two archives by file-set content: the same
(name, payload) pairs, regardless of table order, byte order, or alignment.
Two archives repacked with different physical layouts compare equal.

Exits 0 when the file sets match and 1 when they differ.

Example:
  sarcctl diff Dungeon119.pack Dungeon119_repacked.pack`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, args)
		},
	}
	return cmd
}

func runDiff(cmd *cobra.Command, args []string) error {
	left, err := sarc.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer left.Close()

	right, err := sarc.Open(args[1])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[1], err)
	}
	defer right.Close()

	equal := left.FilesEqual(right)

	if jsonOut {
		if err := printJSON(map[string]interface{}{
			"left":  args[0],
			"right": args[1],
			"equal": equal,
		}); err != nil {
			return err
		}
	} else if equal {
		printInfo("Archives contain the same files\n")
	} else {
		printInfo("Archives differ\n")
	}

	if !equal {
		cmd.SilenceUsage = true
		return fmt.Errorf("file sets differ")
	}
	return nil
}
