// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "go-sites-admin",
	Short: "GoSitesAdmin is a web-based toolbox for managing PV sites",
	Long: `GoSitesAdmin is a web-based toolbox for the sites database
that provides an easy-to-use interface for managing sites, site groups,
and the users assigned to those groups.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
