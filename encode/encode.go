package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/JonMackey/HexLoaderUtility/format"
	"github.com/JonMackey/HexLoaderUtility/ir"

	"github.com/goccy/go-yaml"
)

type EncState struct {
	format format.Format
	indent int
	colors *Colors

	w   io.Writer
	err error
}

func valueColor(t ir.Type) ColorAttr {
	if t == ir.NumberType {
		return NumberColor
	}
	return StringColor
}

func (es *EncState) printf(f string, args ...any) {
	if es.err != nil {
		return
	}
	_, es.err = fmt.Fprintf(es.w, f, args...)
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{w: w, indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.FlatFormat:
		es.flat(node)
		return es.err
	case format.YAMLFormat:
		return es.yaml(node)
	case format.JSONFormat:
		return es.json(node)
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
	}
}

// flat writes each leaf of node as key=value.  Object children get a
// banner naming their key, their own fields, then an empty line.
func (es *EncState) flat(node *ir.Node) {
	if node.Type != ir.ObjectType {
		es.printf("%s\n", es.colors.Color(valueColor(node.Type), node.Text()))
		return
	}
	for k, v := range node.All() {
		if v.Type == ir.ObjectType {
			bar := strings.Repeat("#", len(k)+10)
			es.printf("%s\n%s\n%s\n",
				es.colors.Color(BannerColor, bar),
				es.colors.Color(BannerColor, "#### "+k+" ####"),
				es.colors.Color(BannerColor, bar))
			es.flat(v)
			es.printf("\n")
			continue
		}
		es.printf("%s%s%s\n",
			es.colors.Color(KeyColor, k),
			es.colors.Color(SepColor, "="),
			es.colors.Color(valueColor(v.Type), v.Text()))
	}
}

// yaml keeps key order through MapSlice.
func (es *EncState) yaml(node *ir.Node) error {
	d, err := yaml.MarshalWithOptions(toYAML(node), yaml.Indent(es.indent))
	if err != nil {
		return err
	}
	_, err = es.w.Write(d)
	return err
}

func toYAML(node *ir.Node) any {
	if node.Type != ir.ObjectType {
		return node.Text()
	}
	ms := make(yaml.MapSlice, 0, node.Len())
	for k, v := range node.All() {
		ms = append(ms, yaml.MapItem{Key: k, Value: toYAML(v)})
	}
	return ms
}

func (es *EncState) json(node *ir.Node) error {
	d, err := node.MarshalJSON()
	if err != nil {
		return err
	}
	buf := &bytes.Buffer{}
	if err := json.Indent(buf, d, "", strings.Repeat(" ", es.indent)); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = es.w.Write(buf.Bytes())
	return err
}
