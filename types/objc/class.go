package objc

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"
)

type Class struct {
	Name            string     `yaml:"name"`
	SuperClass      string     `yaml:"superclass,omitempty"`
	Root            bool       `yaml:"root,omitempty"`
	Protocols       []string   `yaml:"protocols,omitempty"`
	Ivars           []Ivar     `yaml:"ivars,omitempty"`
	Props           []Property `yaml:"properties,omitempty"`
	ClassMethods    []Method   `yaml:"class_methods,omitempty"`
	InstanceMethods []Method   `yaml:"instance_methods,omitempty"`
	Swift           bool       `yaml:"swift,omitempty"`
	Address         uint64     `yaml:"address,omitempty"`
}

func (c *Class) dump(verbose, addrs bool) string {
	var iVars string

	var subClass string
	if c.Root {
		subClass = "<ROOT>"
	} else if len(c.SuperClass) > 0 {
		subClass = c.SuperClass
	}

	class := fmt.Sprintf("@interface %s : %s", c.Name, subClass)

	if len(c.Protocols) > 0 {
		class += fmt.Sprintf(" <%s>", strings.Join(c.Protocols, ", "))
	}
	if len(c.Ivars) > 0 {
		class += " {"
	}
	if verbose {
		var comment string
		if addrs {
			comment += fmt.Sprintf(" // %#x", c.Address)
		}
		if c.Swift {
			if len(comment) > 0 {
				comment += " (Swift)"
			} else {
				comment += " // (Swift)"
			}
		}
		class += comment
	}
	if len(c.Ivars) > 0 {
		s := bytes.NewBufferString("")
		w := tabwriter.NewWriter(s, 0, 0, 1, ' ', 0)
		if addrs {
			fmt.Fprintf(w, "\n    /* instance variables */\t// +size   offset\n")
		} else {
			fmt.Fprintf(w, "\n    /* instance variables */\n")
		}
		for _, ivar := range c.Ivars {
			switch {
			case addrs:
				fmt.Fprintf(w, "    %s\n", ivar.WithAddrs())
			case verbose:
				fmt.Fprintf(w, "    %s\n", ivar.Verbose())
			default:
				fmt.Fprintf(w, "    %s\n", &ivar)
			}
		}
		w.Flush()
		s.WriteString("}")
		iVars = s.String()
	}

	return fmt.Sprintf(
		"%s"+
			"%s\n\n"+
			"%s"+
			"%s"+
			"%s"+
			"@end\n",
		class,
		iVars,
		section("", propertyLines(c.Props, verbose, false)),
		section("class methods", methodLines('+', c.Name, c.ClassMethods, verbose)),
		section("instance methods", methodLines('-', c.Name, c.InstanceMethods, verbose)),
	)
}

func (c *Class) String() string {
	return c.dump(false, false)
}
func (c *Class) Verbose() string {
	return c.dump(true, false)
}
func (c *Class) WithAddrs() string {
	return c.dump(true, true)
}
