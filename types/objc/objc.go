// Package objc renders Objective-C runtime metadata as header-style
// declarations. Type encodings are decoded with the objctype decoder.
package objc

import (
	"fmt"
	"strings"
)

// methodLines renders one line per method. sign is '-' for instance methods
// and '+' for class methods.
func methodLines(sign byte, owner string, methods []Method, verbose bool) string {
	var sb strings.Builder
	for _, meth := range methods {
		if !verbose {
			fmt.Fprintf(&sb, "%c[%s %s];\n", sign, owner, meth.Name)
			continue
		}
		if strings.HasPrefix(meth.Name, ".cxx_") {
			continue
		}
		fmt.Fprintf(&sb, "%c %s\n", sign, meth.Declaration())
	}
	return sb.String()
}

// propertyLines renders one line per property. In verbose mode only the
// properties whose optional flag matches are kept.
func propertyLines(props []Property, verbose, optional bool) string {
	var sb strings.Builder
	for _, prop := range props {
		if !verbose {
			if !optional {
				fmt.Fprintf(&sb, "@property (%s) %s;\n", prop.EncodedAttributes, prop.Name)
			}
			continue
		}
		attrs, err := prop.Attributes()
		if err != nil {
			if !optional {
				fmt.Fprintf(&sb, "// %s: %v\n", prop.Name, err)
			}
			continue
		}
		if attrs.Optional != optional {
			continue
		}
		decl, _ := prop.Declaration()
		sb.WriteString(decl + "\n")
	}
	return sb.String()
}

// section wraps a non-empty block of lines with a comment header and a
// trailing blank line.
func section(header, body string) string {
	if body == "" {
		return ""
	}
	if header != "" {
		body = "/* " + header + " */\n" + body
	}
	return body + "\n"
}
