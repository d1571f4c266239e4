package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/content"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect the content document",
}

var contentCheckCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Validate a content document",
	Long: `Parses the content document and reports repeated titles in the project,
post, experience and news lists. Exits non-zero when the document does not
parse or contains duplicates. Without a path, the configured content.path is
checked, falling back to the built-in document.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		} else {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			path = cfg.Content.Path
		}

		site, err := content.Load(path)
		if err != nil {
			return err
		}

		name := path
		if name == "" {
			name = "built-in content"
		}
		out := cmd.OutOrStdout()
		dups := site.Duplicates()
		if len(dups) == 0 {
			fmt.Fprintf(out, "%s: %d projects, %d posts, %d experience entries, ok\n",
				name, len(site.Projects), len(site.Posts), len(site.Experience))
			return nil
		}
		for _, d := range dups {
			fmt.Fprintln(out, d)
		}
		return fmt.Errorf("%s: %d duplicate titles", name, len(dups))
	},
}

func init() {
	contentCmd.AddCommand(contentCheckCmd)
	rootCmd.AddCommand(contentCmd)
}
