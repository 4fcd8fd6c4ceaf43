package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/faves/assets"
	"github.com/MrSnakeDoc/faves/internal/catalog"
	"github.com/MrSnakeDoc/faves/internal/domain"
)

var errCheckFailed = errors.New("catalog check failed")

func checkCmd() *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "check [dir]",
		Short: "Validate categories and report invalid entries",
		Long: `check loads every category (the embedded ones, or those under dir),
projects each of them and prints the entries that would not render.
It exits non-zero on invalid JSON or invalid entries.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := catalog.Source{FS: assets.Categories(), Pattern: catalog.DefaultPattern}
			if len(args) == 1 {
				source = catalog.Source{FS: os.DirFS(args[0]), Pattern: pattern}
			}
			return runCheck(cmd.OutOrStdout(), source)
		},
	}

	cmd.Flags().StringVar(&pattern, "glob", catalog.DefaultPattern, "pattern matched inside dir")
	return cmd
}

// runCheck prints one line per category and one per invalid entry.
func runCheck(out io.Writer, source catalog.Source) error {
	set, err := source.Load()
	if err != nil {
		return err
	}

	failed := 0
	for _, name := range set.Names() {
		content, _ := set.Get(name)
		p := domain.Project(content)

		switch {
		case p.NotAList:
			failed++
			fmt.Fprintf(out, "✗ %s: not a list\n", name)
		case len(p.Errors) > 0:
			failed++
			fmt.Fprintf(out, "✗ %s: %d entries, %d invalid\n", name, len(p.Entries), len(p.Errors))
			for _, e := range p.Errors {
				fmt.Fprintf(out, "    %s\n", e.Error())
			}
		default:
			fmt.Fprintf(out, "✓ %s: %d entries\n", name, len(p.Entries))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d categories", errCheckFailed, failed, set.Len())
	}
	return nil
}
