// Package run holds the internal foreground entry point. The start
// command spawns `webdisk run` in the background; running it directly
// keeps the daemon in the foreground.
package run

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"webdisk/internal/server"
	serverConfig "webdisk/internal/server/config"
	"webdisk/internal/supervisor"
	"webdisk/internal/util"
	"webdisk/version"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/thediveo/enumflag"
)

var (
	noLogTime bool
	logLevel  zerolog.Level = zerolog.InfoLevel
)

var RunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the server in the foreground (used internally by start)",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		util.SetupZerolog(noLogTime, logLevel)

		config, err := serverConfig.LoadActive()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Load config failed")
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		sup := supervisor.New(serverConfig.DataDir)
		if err := sup.WritePID(); err != nil {
			fmt.Fprintln(os.Stderr, "Write PID file failed")
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		srv, err := server.NewServer(config)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Init server failed")
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		printBanner(config, srv.Root())

		util.SetupSignalHandlers(util.SignalHandlers{
			Sigint:  srv.Shutdown,
			Sigterm: srv.Shutdown,
			OnHandlerPanic: func(obj any) {
				log.Error().Any("Error", obj).Msg("Panic during signal handling")
			},
		})

		err = srv.Run(config)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintln(os.Stderr, server.FormatBindError(err))
			os.Exit(1)
		}
	},
}

func printBanner(c *serverConfig.Server, root string) {
	fmt.Printf("webdisk %s\n\n", version.Version)

	fmt.Println("System:")
	fmt.Printf("- PID:  %d\n", os.Getpid())
	fmt.Printf("- IPv4: http://%s:%d\n", c.IPv4, c.Port)
	if c.IPv6 != "" {
		fmt.Printf("- IPv6: http://[%s]:%d\n", c.IPv6, c.Port)
	}
	fmt.Printf("- Root: %s\n", root)

	fmt.Println("WebDAV:")
	if !c.Webdav.Enabled {
		fmt.Println("- Status: disabled")
		return
	}
	fmt.Println("- Status: enabled")
	if c.Webdav.Users.Len() == 0 {
		fmt.Println("- Users: none configured")
		return
	}
	table := util.NewTable("Name", "Permissions").WithLeftPadding(2)
	for _, name := range c.Webdav.Users.Names() {
		user, _ := c.Webdav.Users.Get(name)
		table.AddRow(name, user.Permissions.String())
	}
	table.Print(os.Stdout)
}

func init() {
	RunCmd.Flags().BoolVarP(&noLogTime, "no-log-time", "", false, "Use log format without time")
	RunCmd.Flags().VarP(
		enumflag.New(&logLevel, "LEVEL", util.ZerologLevelIds, enumflag.EnumCaseInsensitive),
		"level", "l",
		"Sets logging level; can be 'trace', 'debug', 'info', 'warning', 'error', 'fatal', 'panic'")
}
