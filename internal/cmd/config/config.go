package config

import (
	"bufio"
	"fmt"
	"os"
	serverConfig "webdisk/internal/server/config"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var ConfigCmd = &cobra.Command{
	Use:   "config {default|PATH}",
	Short: "Recreate the default config, or validate an alternate config file",
	Long: `'config default' (re)creates the default configuration file, asking for
confirmation when one already exists.

'config PATH' validates an alternate configuration file. The server honors
it when the ` + serverConfig.EnvConfigPath + ` environment variable names it.`,
	Args: cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		if args[0] == "default" {
			recreateDefault()
			return
		}

		path := args[0]
		if _, err := serverConfig.LoadFrom(path); err != nil {
			fmt.Fprintln(os.Stderr, "config file invalid:", err)
			os.Exit(1)
		}
		// for any child process started from this invocation
		_ = os.Setenv(serverConfig.EnvConfigPath, path)
		fmt.Println("config file valid:", path)
		fmt.Printf("run the server with %s=%s to use it\n", serverConfig.EnvConfigPath, path)
	},
}

func recreateDefault() {
	if _, err := os.Stat(serverConfig.DefaultPath()); err == nil {
		fmt.Println("warning: a config file already exists and will be overwritten")
		if term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Println("press Enter to continue, Ctrl+C to cancel")
			if _, err := bufio.NewReader(os.Stdin).ReadString('\n'); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}
	}

	if err := serverConfig.WriteDefault(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("default config written to", serverConfig.DefaultPath())
}
