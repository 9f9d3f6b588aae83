package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Permission is the per-user capability set. It is persisted as a string
// of 'r', 'w' and 'x' characters and validated once at the boundary;
// duplicates in the string are tolerated but meaningless.
type Permission uint8

const (
	PermRead Permission = 1 << iota
	PermWrite
	PermExecute
)

func ParsePermission(s string) (Permission, error) {
	var p Permission
	for _, c := range s {
		switch c {
		case 'r':
			p |= PermRead
		case 'w':
			p |= PermWrite
		case 'x':
			p |= PermExecute
		default:
			return 0, fmt.Errorf("invalid permission character %q, only r, w and x are allowed", c)
		}
	}
	return p, nil
}

func (p Permission) Has(q Permission) bool {
	return p&q == q
}

// String renders the canonical rwx form.
func (p Permission) String() string {
	out := make([]byte, 0, 3)
	if p.Has(PermRead) {
		out = append(out, 'r')
	}
	if p.Has(PermWrite) {
		out = append(out, 'w')
	}
	if p.Has(PermExecute) {
		out = append(out, 'x')
	}
	return string(out)
}

func (p *Permission) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParsePermission(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (p Permission) MarshalYAML() (any, error) {
	return p.String(), nil
}
