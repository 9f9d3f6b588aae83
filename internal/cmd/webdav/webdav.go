// Package webdav implements the user-management side of the WebDAV
// feature: toggling it, and adding, removing, updating and listing
// accounts in the persisted config. It never talks to a running server;
// the operator restarts the daemon to apply changes.
package webdav

import (
	"fmt"
	"os"
	"strings"
	serverConfig "webdisk/internal/server/config"
	"webdisk/internal/util"

	"github.com/spf13/cobra"
)

const randomPasswordLength = 8

var WebdavCmd = &cobra.Command{
	Use:   "webdav [true|false | add USER[:PERM] [PASSWORD] | del USER | USER[:PERM] [PASSWORD]]",
	Short: "Show or change WebDAV status and user accounts",
	Example: `  webdisk webdav
  webdisk webdav true
  webdisk webdav add alice:rw secret
  webdisk webdav add bob
  webdisk webdav del bob
  webdisk webdav alice:r
  webdisk webdav alice newsecret`,
	Args: cobra.MaximumNArgs(3),
	Run: func(_ *cobra.Command, args []string) {
		config, err := serverConfig.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if len(args) == 0 {
			printStatus(config)
			return
		}

		if err := apply(config, args); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if err := config.Save(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func apply(c *serverConfig.Server, args []string) error {
	switch args[0] {
	case "true":
		c.Webdav.Enabled = true
		fmt.Println("WebDAV enabled")
		return nil
	case "false":
		c.Webdav.Enabled = false
		fmt.Println("WebDAV disabled")
		return nil
	case "add":
		return addUser(c, args[1:])
	case "del":
		return delUser(c, args[1:])
	default:
		return updateUser(c, args)
	}
}

func printStatus(c *serverConfig.Server) {
	if c.Webdav.Enabled {
		fmt.Println("WebDAV status: enabled")
	} else {
		fmt.Println("WebDAV status: disabled")
	}

	if c.Webdav.Users.Len() == 0 {
		fmt.Println("no users configured")
		return
	}

	fmt.Println("users:")
	table := util.NewTable("Name", "Password", "Permissions").WithLeftPadding(2)
	for _, name := range c.Webdav.Users.Names() {
		user, _ := c.Webdav.Users.Get(name)
		table.AddRow(name, user.Password, user.Permissions.String())
	}
	table.Print(os.Stdout)
}

// splitUserPerm splits "name:perms" into its parts; a missing colon
// yields the fallback permission.
func splitUserPerm(arg string, fallback serverConfig.Permission) (string, serverConfig.Permission, error) {
	name, permStr, found := strings.Cut(arg, ":")
	if !found {
		return name, fallback, nil
	}
	perm, err := serverConfig.ParsePermission(permStr)
	if err != nil {
		return "", 0, err
	}
	return name, perm, nil
}

func createUser(c *serverConfig.Server, name, password string, perm serverConfig.Permission) {
	c.Webdav.Users.Set(name, serverConfig.User{Password: password, Permissions: perm})
	fmt.Println("user added:")
	fmt.Println("- name:       ", name)
	fmt.Println("- password:   ", password)
	fmt.Println("- permissions:", perm.String())
}

func addUser(c *serverConfig.Server, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: webdisk webdav add USER[:PERM] [PASSWORD]")
	}

	name, perm, err := splitUserPerm(args[0], serverConfig.PermRead)
	if err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("username can not be empty")
	}
	if _, ok := c.Webdav.Users.Get(name); ok {
		return fmt.Errorf("user %s already exists", name)
	}

	password := ""
	if len(args) > 1 {
		password = args[1]
	} else {
		password = util.RandomString(randomPasswordLength, util.DefaultRandomStringRunes)
	}

	createUser(c, name, password, perm)
	return nil
}

func delUser(c *serverConfig.Server, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: webdisk webdav del USER")
	}

	if !c.Webdav.Users.Delete(args[0]) {
		return fmt.Errorf("user %s not exists", args[0])
	}
	fmt.Println("user removed:", args[0])
	return nil
}

// updateUser handles "USER[:PERM] [PASSWORD]": a colon updates the
// permission set, a trailing argument updates the password, either may
// appear alone. Naming an unknown user with both a permission set and a
// password creates the account instead.
func updateUser(c *serverConfig.Server, args []string) error {
	name, permStr, hasPerm := strings.Cut(args[0], ":")
	hasPassword := len(args) > 1

	if !hasPerm && !hasPassword {
		return fmt.Errorf("usage: webdisk webdav USER[:PERM] [PASSWORD]")
	}

	var perm serverConfig.Permission
	if hasPerm {
		var err error
		if perm, err = serverConfig.ParsePermission(permStr); err != nil {
			return err
		}
	}

	user, ok := c.Webdav.Users.Get(name)
	if !ok {
		if hasPerm && hasPassword {
			if name == "" {
				return fmt.Errorf("username can not be empty")
			}
			createUser(c, name, args[1], perm)
			return nil
		}
		return fmt.Errorf("user %s not exists", name)
	}

	if hasPerm {
		user.Permissions = perm
		fmt.Printf("updated permissions of %s to %s\n", name, perm.String())
	}
	if hasPassword {
		user.Password = args[1]
		fmt.Printf("updated password of %s\n", name)
	}

	c.Webdav.Users.Set(name, user)
	return nil
}
