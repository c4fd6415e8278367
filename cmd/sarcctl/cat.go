package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/packfile/sarckit/sarc"
	"github.com/spf13/cobra"
)

var catIndex bool

func init() {
	cmd := newCatCmd()
	cmd.Flags().BoolVar(&catIndex, "index", false, "Treat the argument as a table index instead of a name")
	rootCmd.AddCommand(cmd)
}

func newCatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cat <archive> <name|index>",
		Short: "Write one packed file's payload to stdout",
		Long: `The cat command resolves a file by name (or by table index with --index)
and writes its raw payload bytes to stdout. Payloads are emitted exactly as
stored; compressed payloads are not decompressed.

Example:
  sarcctl cat Dungeon119.pack Model/DgnMrgPrt_Dungeon119.sbfres > model.sbfres
  sarcctl cat Dungeon119.pack --index 3 > file3.bin`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCat(args)
		},
	}
	return cmd
}

func runCat(args []string) error {
	archivePath := args[0]

	printVerbose("Opening archive: %s\n", archivePath)

	a, err := sarc.Open(archivePath)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer a.Close()

	var data []byte
	if catIndex {
		idx, err := strconv.ParseUint(args[1], 10, 16)
		if err != nil {
			return fmt.Errorf("invalid index %q: %w", args[1], err)
		}
		data, err = a.FileDataAt(uint16(idx))
		if err != nil {
			return err
		}
	} else {
		data, err = a.FileData(args[1])
		if err != nil {
			return err
		}
	}

	_, err = os.Stdout.Write(data)
	return err
}
