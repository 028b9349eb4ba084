package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	objctype "github.com/appsworld/go-objctype"
	"github.com/appsworld/go-objctype/types"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	model, err := cfg.dataModel()
	if err != nil {
		return err
	}
	differs, err := diffEncodings(cc.Out, args[0], args[1], model, cfg.palette(cc.Out))
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// treeText renders the tree of enc without color, ranges dropped so that
// equal types at different offsets compare equal.
func treeText(enc string, model types.DataModel) string {
	res := objctype.Decode(enc)
	var sb strings.Builder
	res.Root().Walk(func(n *types.Node, depth int) bool {
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(n.Category().String())
		if name, ok := res.Name(n); ok {
			sb.WriteString(" name=" + name)
		}
		switch n.Category() {
		case types.CategoryArray:
			fmt.Fprintf(&sb, " count=%d", n.Count())
		case types.CategoryBitField:
			fmt.Fprintf(&sb, " width=%d", n.Width())
		}
		if size := n.Size(model); size >= 0 {
			fmt.Fprintf(&sb, " size=%d", size)
		}
		sb.WriteByte('\n')
		return true
	})
	if res.Status() == objctype.InvalidInput {
		sb.WriteString("InvalidInput\n")
	}
	return sb.String()
}

// diffEncodings writes a line diff of the trees of a and b and reports
// whether they differ.
func diffEncodings(w io.Writer, a, b string, model types.DataModel, pal *palette) (bool, error) {
	ta, tb := treeText(a, model), treeText(b, model)
	if ta == tb {
		return false, nil
	}
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(ta, tb)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n+++ %s\n", a, b)
	for _, d := range diffs {
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			switch d.Type {
			case diffpatch.DiffDelete:
				buf.WriteString(pal.del.Sprint("-" + line))
			case diffpatch.DiffInsert:
				buf.WriteString(pal.add.Sprint("+" + line))
			default:
				buf.WriteString(" " + line)
			}
		}
	}
	_, err := w.Write(buf.Bytes())
	return true, err
}
