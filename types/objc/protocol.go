package objc

import (
	"fmt"
	"strings"
)

type Protocol struct {
	Name                    string     `yaml:"name"`
	Protocols               []string   `yaml:"protocols,omitempty"`
	InstanceMethods         []Method   `yaml:"instance_methods,omitempty"`
	ClassMethods            []Method   `yaml:"class_methods,omitempty"`
	OptionalInstanceMethods []Method   `yaml:"optional_instance_methods,omitempty"`
	OptionalClassMethods    []Method   `yaml:"optional_class_methods,omitempty"`
	InstanceProperties      []Property `yaml:"properties,omitempty"`
	Address                 uint64     `yaml:"address,omitempty"`
}

func (p *Protocol) dump(verbose, addrs bool) string {
	protocol := fmt.Sprintf("@protocol %s", p.Name)
	if len(p.Protocols) > 0 {
		protocol += fmt.Sprintf(" <%s>", strings.Join(p.Protocols, ", "))
	}
	if addrs {
		protocol += fmt.Sprintf(" // %#x", p.Address)
	}
	return fmt.Sprintf(
		"%s\n\n"+
			"@required\n\n"+
			"%s"+
			"%s"+
			"%s"+
			"@optional\n\n"+
			"%s"+
			"%s"+
			"%s"+
			"@end\n",
		protocol,
		section("", propertyLines(p.InstanceProperties, verbose, false)),
		section("class methods", methodLines('+', p.Name, p.ClassMethods, verbose)),
		section("required instance methods", methodLines('-', p.Name, p.InstanceMethods, verbose)),
		section("", propertyLines(p.InstanceProperties, verbose, true)),
		section("optional class methods", methodLines('+', p.Name, p.OptionalClassMethods, verbose)),
		section("optional instance methods", methodLines('-', p.Name, p.OptionalInstanceMethods, verbose)),
	)
}

func (p *Protocol) String() string {
	return p.dump(false, false)
}
func (p *Protocol) Verbose() string {
	return p.dump(true, false)
}
func (p *Protocol) WithAddrs() string {
	return p.dump(true, true)
}
