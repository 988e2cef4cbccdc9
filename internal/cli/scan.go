package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/artifactitems/pkg/repository"
)

// scanCommand creates the command that lists a repository directory in the
// format the root command reads.
func (c *CLI) scanCommand() *cobra.Command {
	var opts repository.Options

	cmd := &cobra.Command{
		Use:   "scan [dir]",
		Short: "List the files of a Maven repository directory",
		Long: `List every artifact file under a Maven repository directory, one
"./"-relative path per line, sorted. The output can be saved as the
listing read by the root command:

  artifactitems scan ~/.m2/repository > files

Checksums, signatures and Maven bookkeeping files are skipped unless
--all is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			prog := newProgress(c.Logger)
			paths, err := repository.Scan(root, opts)
			if err != nil {
				return err
			}
			for _, p := range paths {
				if _, err := fmt.Fprintln(c.Out, p); err != nil {
					return err
				}
			}
			prog.done(fmt.Sprintf("Listed %d files under %s", len(paths), root))
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.All, "all", false, "include checksums, signatures and bookkeeping files")

	return cmd
}
