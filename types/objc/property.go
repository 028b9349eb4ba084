package objc

import (
	"fmt"
	"strings"
)

const (
	propertyReadOnly  = 'R' // property is read-only.
	propertyBycopy    = 'C' // property is a copy of the value last assigned
	propertyByref     = '&' // property is a reference to the value last assigned
	propertyDynamic   = 'D' // property is dynamic
	propertyGetter    = 'G' // followed by getter selector name
	propertySetter    = 'S' // followed by setter selector name
	propertyIVar      = 'V' // followed by instance variable  name
	propertyType      = 'T' // followed by old-style type encoding.
	propertyWeak      = 'W' // 'weak' property
	propertyStrong    = 'P' // property GC'able
	propertyAtomic    = 'A' // property atomic
	propertyNonAtomic = 'N' // property non-atomic
	propertyOptional  = '?' // property is optional in its protocol
)

// PropertyAttributes is a parsed property attribute string such as
// T@"NSString",C,N,V_name.
type PropertyAttributes struct {
	Type      string // type encoding
	ReadOnly  bool
	Copy      bool
	Retain    bool
	Weak      bool
	Dynamic   bool
	NonAtomic bool
	Atomic    bool
	GC        bool
	Optional  bool
	Getter    string
	Setter    string
	Ivar      string
}

// ParseProperty parses a property attribute string.
func ParseProperty(attrs string) (*PropertyAttributes, error) {
	p := &PropertyAttributes{}
	for rest := attrs; rest != ""; {
		if rest[0] == ',' {
			rest = rest[1:]
			continue
		}
		key := rest[0]
		var val string
		if key == propertyType {
			// the type encoding may itself contain commas
			n := typeLength(rest[1:])
			end := 1 + n
			if i := strings.IndexByte(rest[end:], ','); i >= 0 {
				end += i
			} else {
				end = len(rest)
			}
			val, rest = rest[1:end], rest[end:]
		} else {
			end := strings.IndexByte(rest, ',')
			if end < 0 {
				end = len(rest)
			}
			val, rest = rest[1:end], rest[end:]
		}
		rest = strings.TrimPrefix(rest, ",")

		switch key {
		case propertyType:
			p.Type = val
		case propertyReadOnly:
			p.ReadOnly = true
		case propertyBycopy:
			p.Copy = true
		case propertyByref:
			p.Retain = true
		case propertyWeak:
			p.Weak = true
		case propertyDynamic:
			p.Dynamic = true
		case propertyNonAtomic:
			p.NonAtomic = true
		case propertyAtomic:
			p.Atomic = true
		case propertyStrong:
			p.GC = true
		case propertyOptional:
			p.Optional = true
		case propertyGetter:
			p.Getter = val
		case propertySetter:
			p.Setter = val
		case propertyIVar:
			p.Ivar = val
		default:
			return nil, fmt.Errorf("unknown property attribute %q in %q", key, attrs)
		}
	}
	if p.Type == "" {
		return nil, fmt.Errorf("property attributes %q have no type", attrs)
	}
	return p, nil
}

// List returns the attributes in @property (...) order.
func (p *PropertyAttributes) List() []string {
	var list []string
	if p.NonAtomic {
		list = append(list, "nonatomic")
	} else if p.Atomic {
		list = append(list, "atomic")
	}
	switch {
	case p.Copy:
		list = append(list, "copy")
	case p.Retain:
		list = append(list, "retain")
	case p.Weak:
		list = append(list, "weak")
	}
	if p.ReadOnly {
		list = append(list, "readonly")
	}
	if p.Dynamic {
		list = append(list, "dynamic")
	}
	if p.GC {
		list = append(list, "collectable")
	}
	if p.Getter != "" {
		list = append(list, "getter="+p.Getter)
	}
	if p.Setter != "" {
		list = append(list, "setter="+p.Setter)
	}
	return list
}

type Property struct {
	Name              string `yaml:"name"`
	EncodedAttributes string `yaml:"attributes"`
}

// Attributes parses the property's attribute string.
func (p *Property) Attributes() (*PropertyAttributes, error) {
	return ParseProperty(p.EncodedAttributes)
}

// Declaration renders the property:
//
//	@property (nonatomic, copy) NSString *name;
func (p *Property) Declaration() (string, error) {
	attrs, err := p.Attributes()
	if err != nil {
		return "", err
	}
	var list string
	if l := attrs.List(); len(l) > 0 {
		list = "(" + strings.Join(l, ", ") + ") "
	}
	return fmt.Sprintf("@property %s%s;", list, declareEncoded(attrs.Type, p.Name)), nil
}
