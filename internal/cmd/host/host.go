package host

import (
	"fmt"
	"os"
	"strconv"
	serverConfig "webdisk/internal/server/config"

	"github.com/spf13/cobra"
)

var HostCmd = &cobra.Command{
	Use:   "host {ip|ipv6|port|cwd} VALUE",
	Short: "Validate and persist one listen/serve setting",
	Example: `  webdisk host ip 192.168.1.10
  webdisk host ipv6 no
  webdisk host port 8080
  webdisk host cwd ./data/www`,
	Args: cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		config, err := serverConfig.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		key, value := args[0], args[1]
		if err := applyField(config, key, value); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if err := config.Save(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("updated %s = %s\n", key, value)
	},
}

func applyField(c *serverConfig.Server, key, value string) error {
	switch key {
	case "ip":
		if !serverConfig.IsValidIPv4(value) && !serverConfig.IsValidDomain(value) {
			return fmt.Errorf("ip: %q is not a valid IPv4 address (like 127.0.0.1) or domain (like example.com)", value)
		}
		c.IPv4 = value
	case "ipv6":
		if value == "no" {
			c.IPv6 = ""
		} else if !serverConfig.IsValidIPv6(value) {
			return fmt.Errorf("ipv6: %q is not a valid IPv6 address (like ::1 or 2001:db8::1); use 'no' to disable IPv6", value)
		} else {
			c.IPv6 = value
		}
	case "port":
		port, err := strconv.ParseUint(value, 10, 16)
		if err != nil || port == 0 {
			return fmt.Errorf("port: must be a number between 1 and 65535")
		}
		c.Port = uint16(port)
	case "cwd":
		if !serverConfig.IsValidRootPath(value) {
			return fmt.Errorf("cwd: must be an absolute path or start with ./ or ../")
		}
		c.RootDir = value
	default:
		return fmt.Errorf("unknown setting %q, use ip, ipv6, port or cwd", key)
	}
	return nil
}
