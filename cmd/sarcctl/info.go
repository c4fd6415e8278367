package main

import (
	"fmt"
	"os"

	"github.com/packfile/sarckit/sarc"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <archive>",
		Short: "Validate an archive and report its metadata",
		Long: `The info command validates a SARC archive and displays its metadata:
byte order, file count, data section offset, inferred payload alignment, and
name hash multiplier.

Example:
  sarcctl info Dungeon119.pack
  sarcctl info Dungeon119.pack --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	archivePath := args[0]

	printVerbose("Opening archive: %s\n", archivePath)

	a, err := sarc.Open(archivePath)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer a.Close()

	if jsonOut {
		return printJSON(map[string]interface{}{
			"archive":        archivePath,
			"byteOrder":      a.Order().String(),
			"fileCount":      a.NumFiles(),
			"dataOffset":     a.DataOffset(),
			"alignment":      a.GuessAlignment(),
			"hashMultiplier": a.HashMultiplier(),
		})
	}

	printInfo("\nArchive Information:\n")
	printInfo("  File: %s\n", archivePath)

	if stat, err := os.Stat(archivePath); err == nil {
		size := stat.Size()
		switch {
		case size < 1024:
			printInfo("  Size: %d bytes\n", size)
		case size < 1024*1024:
			printInfo("  Size: %.1f KB\n", float64(size)/1024)
		default:
			printInfo("  Size: %.1f MB\n", float64(size)/(1024*1024))
		}
	}

	printInfo("  Byte order: %s\n", a.Order())
	printInfo("  Files: %d\n", a.NumFiles())
	printInfo("  Data offset: 0x%X\n", a.DataOffset())
	printInfo("  Alignment: %d\n", a.GuessAlignment())
	printInfo("  Hash multiplier: 0x%X\n", a.HashMultiplier())

	return nil
}
