package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/packfile/sarckit/sarc"
	"github.com/spf13/cobra"
)

var extractOut string

func init() {
	cmd := newExtractCmd()
	cmd.Flags().StringVarP(&extractOut, "out", "o", ".", "Directory to extract into")
	rootCmd.AddCommand(cmd)
}

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <archive> [name...]",
		Short: "Extract packed files to a directory",
		Long: `The extract command writes packed files out to a directory, recreating
the subdirectory structure encoded in their names. With no names given, every
file is extracted. Hash-only entries have no name and are written as their
table index.

Example:
  sarcctl extract Dungeon119.pack
  sarcctl extract Dungeon119.pack -o out Model/DgnMrgPrt_Dungeon119.sbfres`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(args)
		},
	}
	return cmd
}

func runExtract(args []string) error {
	archivePath := args[0]

	printVerbose("Opening archive: %s\n", archivePath)

	a, err := sarc.Open(archivePath)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer a.Close()

	var files []sarc.File
	if len(args) > 1 {
		for _, name := range args[1:] {
			f, ok := a.Get(name)
			if !ok {
				return fmt.Errorf("no file named %q in %s", name, archivePath)
			}
			files = append(files, f)
		}
	} else {
		files = a.Files()
	}

	for _, f := range files {
		rel := f.Name
		if !f.Named {
			rel = fmt.Sprintf("unnamed.%04d", f.Index)
		}
		dest, err := safeJoin(extractOut, rel)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", rel, err)
		}
		if err := os.WriteFile(dest, f.Data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", rel, err)
		}
		printVerbose("extracted %s (%d bytes)\n", rel, len(f.Data))
	}

	printInfo("Extracted %d file(s) to %s\n", len(files), extractOut)
	return nil
}

// safeJoin joins rel under dir, rejecting names that would escape it.
func safeJoin(dir, rel string) (string, error) {
	dest := filepath.Join(dir, filepath.FromSlash(rel))
	cleanDir := filepath.Clean(dir) + string(filepath.Separator)
	if !strings.HasPrefix(dest, cleanDir) && dest != filepath.Clean(dir) {
		return "", fmt.Errorf("refusing to extract outside target directory: %q", rel)
	}
	return dest, nil
}
