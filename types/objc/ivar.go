package objc

import "fmt"

type Ivar struct {
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	Offset uint32 `yaml:"offset,omitempty"`
	Size   uint32 `yaml:"size,omitempty"`
}

// Declaration renders the ivar as a C declaration, e.g. NSString *_name;
func (i *Ivar) Declaration() string {
	return declareEncoded(i.Type, i.Name) + ";"
}

func (i *Ivar) dump(verbose, addrs bool) string {
	var addr string
	if addrs {
		addr = fmt.Sprintf("\t// %-7s %#x", fmt.Sprintf("+%#x", i.Size), i.Offset)
	}
	if verbose {
		return i.Declaration() + addr
	}
	return fmt.Sprintf("%s %s;%s", i.Type, i.Name, addr)
}

func (i *Ivar) String() string {
	return i.dump(false, false)
}
func (i *Ivar) Verbose() string {
	return i.dump(true, false)
}
func (i *Ivar) WithAddrs() string {
	return i.dump(true, true)
}
