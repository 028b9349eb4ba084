package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	objctype "github.com/appsworld/go-objctype"
	"github.com/appsworld/go-objctype/types/objc"
)

func decl(cfg *DeclConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Decl.Parse(cc, args)
	if err != nil {
		cfg.Decl.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: decl requires at least one encoding", cli.ErrUsage)
	}
	defer cfg.syncLogger()
	return writeDecls(cc.Out, args, cfg.decodeOpts(cfg.Strict)...)
}

func writeDecls(w io.Writer, args []string, opts ...objctype.Option) error {
	for _, arg := range args {
		if _, err := fmt.Fprintln(w, objc.DecodeType(arg, opts...)); err != nil {
			return err
		}
	}
	return nil
}

func sig(cfg *SigConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sig.Parse(cc, args)
	if err != nil {
		cfg.Sig.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: sig requires at least one method type encoding", cli.ErrUsage)
	}
	for i, arg := range args {
		if i > 0 {
			fmt.Fprintln(cc.Out)
		}
		if err := writeSignature(cc.Out, arg); err != nil {
			return err
		}
	}
	return nil
}

func writeSignature(w io.Writer, encoded string) error {
	ms, err := objc.ParseMethodTypes(encoded)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\tframe %d\n", encoded, ms.FrameSize)
	fmt.Fprintf(tw, "return\t%s\t%s\n", encodingOf(ms.Return), ms.Return.Type())
	for i, arg := range ms.Args {
		label := fmt.Sprintf("arg%d", i)
		switch i {
		case 0:
			label = "self"
		case 1:
			label = "_cmd"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t@%d\n", label, encodingOf(arg), arg.Type(), arg.Offset)
	}
	return tw.Flush()
}

func encodingOf(a objc.MethodArg) string {
	var sb strings.Builder
	for _, q := range a.Qualifiers {
		sb.WriteByte(byte(q))
	}
	sb.WriteString(a.Encoding)
	return sb.String()
}

func prop(cfg *PropConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Prop.Parse(cc, args)
	if err != nil {
		cfg.Prop.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: prop requires at least one attribute string", cli.ErrUsage)
	}
	for _, arg := range args {
		line, err := propertyDecl(cfg.Name, arg)
		if err != nil {
			return err
		}
		fmt.Fprintln(cc.Out, line)
	}
	return nil
}

// propertyDecl renders attrs as a property named name, or after its ivar
// when name is empty.
func propertyDecl(name, attrs string) (string, error) {
	if name == "" {
		pa, err := objc.ParseProperty(attrs)
		if err != nil {
			return "", err
		}
		name = strings.TrimPrefix(pa.Ivar, "_")
		if name == "" {
			name = "property"
		}
	}
	p := &objc.Property{Name: name, EncodedAttributes: attrs}
	return p.Declaration()
}

// ifaceFile is the yaml description read by the iface command.
type ifaceFile struct {
	Classes    []*objc.Class    `yaml:"classes"`
	Protocols  []*objc.Protocol `yaml:"protocols"`
	Categories []*objc.Category `yaml:"categories"`
}

func iface(cfg *IfaceConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Iface.Parse(cc, args)
	if err != nil {
		cfg.Iface.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		if err := writeIface(cfg, cc.Out, d); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader = cc.In
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

type dumper interface {
	String() string
	Verbose() string
	WithAddrs() string
}

func writeIface(cfg *IfaceConfig, w io.Writer, d []byte) error {
	var f ifaceFile
	if err := yaml.Unmarshal(d, &f); err != nil {
		return err
	}
	var all []dumper
	for _, p := range f.Protocols {
		all = append(all, p)
	}
	for _, c := range f.Classes {
		all = append(all, c)
	}
	for _, c := range f.Categories {
		all = append(all, c)
	}
	var buf bytes.Buffer
	for i, x := range all {
		if i > 0 {
			buf.WriteString("\n")
		}
		switch {
		case cfg.Brief:
			buf.WriteString(x.String())
		case cfg.Addrs:
			buf.WriteString(x.WithAddrs())
		default:
			buf.WriteString(x.Verbose())
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}
