package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Server is the whole daemon configuration, persisted as one YAML
// document under the data directory.
type Server struct {
	IPv4    string `yaml:"ip" validate:"required"`
	IPv6    string `yaml:"ipv6"` // empty means IPv6 disabled
	Port    uint16 `yaml:"port" validate:"min=1"`
	RootDir string `yaml:"cwd" validate:"required"`
	Webdav  Webdav `yaml:"webdav"`

	filePath string // internal, path to this config file
}

// FilePath reports where this config was loaded from, or "" for a config
// that was never decoded from disk.
func (c *Server) FilePath() string {
	return c.filePath
}

type Webdav struct {
	Enabled bool    `yaml:"enabled"`
	Users   UserMap `yaml:"users"`
}

type User struct {
	Password    string     `yaml:"password"`
	Permissions Permission `yaml:"permissions"`
}

// UserMap holds WebDAV users keyed by case-sensitive name, preserving
// the order in which they appear in the config document so a load/save
// round trip does not reshuffle the file.
type UserMap struct {
	names []string
	users map[string]User
}

func (m *UserMap) Len() int {
	return len(m.names)
}

// Names returns usernames in document order. The returned slice is a copy.
func (m *UserMap) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

func (m *UserMap) Get(name string) (User, bool) {
	u, ok := m.users[name]
	return u, ok
}

// Set inserts a new user at the end, or updates an existing one in place.
func (m *UserMap) Set(name string, u User) {
	if m.users == nil {
		m.users = map[string]User{}
	}
	if _, ok := m.users[name]; !ok {
		m.names = append(m.names, name)
	}
	m.users[name] = u
}

func (m *UserMap) Delete(name string) bool {
	if _, ok := m.users[name]; !ok {
		return false
	}
	delete(m.users, name)
	for i, n := range m.names {
		if n == name {
			m.names = append(m.names[:i], m.names[i+1:]...)
			break
		}
	}
	return true
}

func (m *UserMap) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		*m = UserMap{}
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("users: expected a mapping, got %s", value.Tag)
	}

	out := UserMap{users: map[string]User{}}
	for i := 0; i < len(value.Content); i += 2 {
		keyNode, valNode := value.Content[i], value.Content[i+1]

		var name string
		if err := keyNode.Decode(&name); err != nil {
			return fmt.Errorf("users: bad username: %w", err)
		}
		if _, ok := out.users[name]; ok {
			return fmt.Errorf("users: duplicate username %q", name)
		}

		var u User
		if err := valNode.Decode(&u); err != nil {
			return fmt.Errorf("users: user %q: %w", name, err)
		}

		out.names = append(out.names, name)
		out.users[name] = u
	}

	*m = out
	return nil
}

func (m UserMap) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, name := range m.names {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(name); err != nil {
			return nil, err
		}
		valNode := &yaml.Node{}
		if err := valNode.Encode(m.users[name]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}
