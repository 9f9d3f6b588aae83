package cmd

import (
	configcmd "webdisk/internal/cmd/config"
	"webdisk/internal/cmd/host"
	"webdisk/internal/cmd/run"
	"webdisk/internal/cmd/start"
	"webdisk/internal/cmd/stop"
	versioncmd "webdisk/internal/cmd/version"
	webdavcmd "webdisk/internal/cmd/webdav"
	"webdisk/version"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "webdisk",
	Short:   "Serve a directory tree over HTTP with browsable indexes and WebDAV",
	Version: version.Version,
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// predeclare the version flag so cobra attaches the -v shorthand
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")

	rootCmd.AddCommand(run.RunCmd)
	rootCmd.AddCommand(start.StartCmd)
	rootCmd.AddCommand(stop.StopCmd)
	rootCmd.AddCommand(host.HostCmd)
	rootCmd.AddCommand(configcmd.ConfigCmd)
	rootCmd.AddCommand(webdavcmd.WebdavCmd)
	rootCmd.AddCommand(versioncmd.VersionCmd)
}
