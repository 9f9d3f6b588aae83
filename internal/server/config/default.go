package config

// Default returns the first-run configuration: listen everywhere on both
// stacks, serve data/www, WebDAV off with a single rwx admin account.
func Default() Server {
	users := UserMap{}
	users.Set("admin", User{
		Password:    "admin",
		Permissions: PermRead | PermWrite | PermExecute,
	})

	return Server{
		IPv4:    "0.0.0.0",
		IPv6:    "::",
		Port:    8080,
		RootDir: "./data/www",
		Webdav: Webdav{
			Enabled: false,
			Users:   users,
		},
	}
}
