package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/nav"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the navigable views and home page anchors",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ROUTE\tPATH\tTITLE")
		for _, r := range nav.Routes {
			fmt.Fprintf(w, "%s\t%s\t%s\n", r, r.Path(), r.Title())
		}
		for _, a := range nav.Anchors {
			fmt.Fprintf(w, "%s\t%s\t%s\n", nav.Home, nav.Href(nav.ProjectsList, a.ID), a.Label)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
