package start

import (
	"fmt"
	"os"
	serverConfig "webdisk/internal/server/config"
	"webdisk/internal/supervisor"

	"github.com/spf13/cobra"
)

var StartCmd = &cobra.Command{
	Use:   "start",
	Short: "Launch the server in the background",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		sup := supervisor.New(serverConfig.DataDir)

		err := sup.Start()
		switch {
		case err == nil:
			fmt.Println("service started in background")
			fmt.Println("log file:", sup.LogPath())
		case err == supervisor.ErrAlreadyRunning:
			fmt.Println("service already running")
			fmt.Println("if it is not, remove the stale PID file with 'webdisk stop'")
		default:
			fmt.Fprintln(os.Stderr, "start failed:", err)
			os.Exit(1)
		}
	},
}
