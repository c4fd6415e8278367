package main

import (
	"fmt"

	"github.com/packfile/sarckit/sarc"
	"github.com/spf13/cobra"
)

var listHashes bool

func init() {
	cmd := newListCmd()
	cmd.Flags().BoolVar(&listHashes, "hashes", false, "Show the stored name hash of each entry")
	rootCmd.AddCommand(cmd)
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <archive>",
		Short: "List the files packed in an archive",
		Long: `The list command prints every file table entry in table order with its
size. Hash-only entries carry no name and are shown by index and hash.

Example:
  sarcctl list Dungeon119.pack
  sarcctl list Dungeon119.pack --hashes
  sarcctl list Dungeon119.pack --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(args)
		},
	}
	return cmd
}

func runList(args []string) error {
	archivePath := args[0]

	printVerbose("Opening archive: %s\n", archivePath)

	a, err := sarc.Open(archivePath)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer a.Close()

	files := a.Files()

	if jsonOut {
		entries := make([]map[string]interface{}, 0, len(files))
		for _, f := range files {
			e := map[string]interface{}{
				"index": f.Index,
				"size":  len(f.Data),
				"hash":  f.Hash,
			}
			if f.Named {
				e["name"] = f.Name
			}
			entries = append(entries, e)
		}
		return printJSON(map[string]interface{}{
			"archive": archivePath,
			"count":   len(files),
			"files":   entries,
		})
	}

	for _, f := range files {
		name := f.Name
		if !f.Named {
			name = fmt.Sprintf("<unnamed #%d>", f.Index)
		}
		if listHashes {
			printInfo("%08X  %8d  %s\n", f.Hash, len(f.Data), name)
		} else {
			printInfo("%8d  %s\n", len(f.Data), name)
		}
	}

	return nil
}
