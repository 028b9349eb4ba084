package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	objctype "github.com/appsworld/go-objctype"
	"github.com/appsworld/go-objctype/types"
)

type palette struct {
	category *color.Color
	rng      *color.Color
	name     *color.Color
	diag     *color.Color
	add      *color.Color
	del      *color.Color
}

func newPalette(enabled bool) *palette {
	p := &palette{
		category: color.New(color.FgCyan, color.Bold),
		rng:      color.New(color.Faint),
		name:     color.New(color.FgGreen),
		diag:     color.New(color.FgYellow),
		add:      color.New(color.FgGreen),
		del:      color.New(color.FgRed),
	}
	for _, c := range []*color.Color{p.category, p.rng, p.name, p.diag, p.add, p.del} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// nodeView is the yaml and json shape of a decoded node.
type nodeView struct {
	Category string      `yaml:"category" json:"category"`
	Range    []uint      `yaml:"range,flow" json:"range"`
	Text     string      `yaml:"text" json:"text"`
	Name     string      `yaml:"name,omitempty" json:"name,omitempty"`
	Count    *uint64     `yaml:"count,omitempty" json:"count,omitempty"`
	Width    *uint64     `yaml:"width,omitempty" json:"width,omitempty"`
	Size     *int        `yaml:"size,omitempty" json:"size,omitempty"`
	Elem     *nodeView   `yaml:"elem,omitempty" json:"elem,omitempty"`
	Members  []*nodeView `yaml:"members,omitempty" json:"members,omitempty"`
}

type resultView struct {
	Encoding    string    `yaml:"encoding" json:"encoding"`
	Status      string    `yaml:"status" json:"status"`
	Diagnostics []string  `yaml:"diagnostics,omitempty" json:"diagnostics,omitempty"`
	Root        *nodeView `yaml:"root,omitempty" json:"root,omitempty"`
}

func viewResult(res *objctype.Result, model types.DataModel) *resultView {
	v := &resultView{
		Encoding: res.Source(),
		Status:   res.Status().String(),
		Root:     viewNode(res, res.Root(), model),
	}
	for _, d := range res.Diagnostics() {
		v.Diagnostics = append(v.Diagnostics, d.Error())
	}
	return v
}

func viewNode(res *objctype.Result, n *types.Node, model types.DataModel) *nodeView {
	if n == nil {
		return nil
	}
	r := n.Range()
	v := &nodeView{
		Category: n.Category().String(),
		Range:    []uint{r.Offset, r.Length},
		Text:     res.Text(r),
		Elem:     viewNode(res, n.Referenced(), model),
	}
	if name, ok := res.Name(n); ok {
		v.Name = name
	}
	switch n.Category() {
	case types.CategoryArray:
		count := n.Count()
		v.Count = &count
	case types.CategoryBitField:
		width := n.Width()
		v.Width = &width
	}
	if size := n.Size(model); size >= 0 {
		v.Size = &size
	}
	for _, m := range n.Members() {
		v.Members = append(v.Members, viewNode(res, m, model))
	}
	return v
}

// writeTree prints one line per node, children indented below their parent.
func writeTree(w io.Writer, res *objctype.Result, model types.DataModel, pal *palette) error {
	var err error
	res.Root().Walk(func(n *types.Node, depth int) bool {
		if err != nil {
			return false
		}
		_, err = fmt.Fprintln(w, strings.Repeat("  ", depth)+treeLine(res, n, model, pal))
		return true
	})
	if err != nil {
		return err
	}
	for _, d := range res.Diagnostics() {
		if _, err := fmt.Fprintln(w, pal.diag.Sprint("! "+d.Error())); err != nil {
			return err
		}
	}
	return nil
}

func treeLine(res *objctype.Result, n *types.Node, model types.DataModel, pal *palette) string {
	var sb strings.Builder
	sb.WriteString(pal.category.Sprint(n.Category().String()))
	sb.WriteString(" " + pal.rng.Sprint(n.Range().String()))
	fmt.Fprintf(&sb, " %q", res.Text(n.Range()))
	if name, ok := res.Name(n); ok {
		sb.WriteString(" name=" + pal.name.Sprint(name))
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
	return sb.String()
}
