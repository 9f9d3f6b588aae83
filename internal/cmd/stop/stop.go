package stop

import (
	"errors"
	"fmt"
	"os"
	serverConfig "webdisk/internal/server/config"
	"webdisk/internal/supervisor"

	"github.com/spf13/cobra"
)

var StopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the background server",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		sup := supervisor.New(serverConfig.DataDir)

		err := sup.Stop()
		switch {
		case err == nil:
			fmt.Println("service stopped")
		case errors.Is(err, supervisor.ErrNotRunning):
			fmt.Println("service not running")
		case errors.Is(err, supervisor.ErrProcessNotFound):
			fmt.Println("process already gone, cleaned up PID file")
		default:
			fmt.Fprintln(os.Stderr, "stop failed:", err)
			os.Exit(1)
		}
	},
}
