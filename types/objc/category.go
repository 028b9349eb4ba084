package objc

import (
	"fmt"
	"strings"
)

// Category represents an Objective-C category.
type Category struct {
	Name            string     `yaml:"name"`
	Class           string     `yaml:"class,omitempty"`
	Protocols       []string   `yaml:"protocols,omitempty"`
	ClassMethods    []Method   `yaml:"class_methods,omitempty"`
	InstanceMethods []Method   `yaml:"instance_methods,omitempty"`
	Properties      []Property `yaml:"properties,omitempty"`
	Address         uint64     `yaml:"address,omitempty"`
}

func (c *Category) dump(verbose, addrs bool) string {
	var protos string
	if len(c.Protocols) > 0 {
		protos = fmt.Sprintf(" <%s>", strings.Join(c.Protocols, ", "))
	}

	var className string
	if c.Class != "" {
		className = c.Class + " "
	}

	cat := fmt.Sprintf("@interface %s(%s)%s", className, c.Name, protos)
	if verbose && addrs {
		cat += fmt.Sprintf(" // %#x", c.Address)
	}
	cat += "\n"

	return fmt.Sprintf(
		"%s\n"+
			"%s"+
			"%s"+
			"%s"+
			"@end\n",
		cat,
		section("", propertyLines(c.Properties, verbose, false)),
		section("class methods", methodLines('+', c.Name, c.ClassMethods, verbose)),
		section("instance methods", methodLines('-', c.Name, c.InstanceMethods, verbose)),
	)
}

func (c *Category) String() string {
	return c.dump(false, false)
}

func (c *Category) Verbose() string {
	return c.dump(true, false)
}

func (c *Category) WithAddrs() string {
	return c.dump(true, true)
}
