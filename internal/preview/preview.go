// Package preview renders annotated pipeline results as Java model source
// followed by the MyBatis mapper XML, so generated comments can be reviewed
// in place.
package preview

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/Alia5/remarkdoc/dom"
	"github.com/Alia5/remarkdoc/internal/pipeline"
)

type Options struct {
	// Banner prints a separator line naming the table before each result.
	Banner bool
	// SkipMapper omits the mapper XML.
	SkipMapper bool
}

var classTmpl = template.Must(template.New("class").Funcs(template.FuncMap{
	"docs":      docs,
	"params":    params,
	"ret":       returnType,
	"constants": constants,
}).Parse(classTemplate))

// Write renders every result to w.
func Write(w io.Writer, results []pipeline.Result, opts Options) error {
	for i, r := range results {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if opts.Banner {
			if _, err := fmt.Fprintf(w, "// ==== %s ====\n", r.Table.Name); err != nil {
				return err
			}
		}
		if err := WriteClass(w, r.Unit, r.Class); err != nil {
			return fmt.Errorf("render %s: %w", r.Class.Name, err)
		}
		if opts.SkipMapper {
			continue
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		if err := WriteMapper(w, r.Mapper); err != nil {
			return fmt.Errorf("render %s mapper: %w", r.Class.Name, err)
		}
	}
	return nil
}

// WriteClass renders one compilation unit holding class.
func WriteClass(w io.Writer, unit *dom.CompilationUnit, class *dom.Class) error {
	data := struct {
		Unit  *dom.CompilationUnit
		Class *dom.Class
	}{Unit: unit, Class: class}
	return classTmpl.Execute(w, data)
}

// WriteMapper renders the mapper document rooted at root.
func WriteMapper(w io.Writer, root *dom.XmlElement) error {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	sb.WriteString(`<!DOCTYPE mapper PUBLIC "-//mybatis.org//DTD Mapper 3.0//EN" "http://mybatis.org/dtd/mybatis-3-mapper.dtd">` + "\n")
	writeElement(&sb, root, 0)
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeElement(sb *strings.Builder, x *dom.XmlElement, depth int) {
	indent := strings.Repeat("  ", depth)
	sb.WriteString(docs(x, indent))

	sb.WriteString(indent)
	sb.WriteByte('<')
	sb.WriteString(x.Name)
	for _, a := range x.Attributes {
		sb.WriteByte(' ')
		sb.WriteString(a.Name)
		sb.WriteString(`="`)
		_ = xml.EscapeText(sb, []byte(a.Value))
		sb.WriteByte('"')
	}
	if x.Text == "" && len(x.Children) == 0 {
		sb.WriteString(" />\n")
		return
	}
	sb.WriteString(">\n")
	if x.Text != "" {
		sb.WriteString(indent + "  " + x.Text + "\n")
	}
	for _, c := range x.Children {
		writeElement(sb, c, depth+1)
	}
	sb.WriteString(indent + "</" + x.Name + ">\n")
}

// docs renders the element's doc lines, one per line, each prefixed by indent.
func docs(e dom.Element, indent string) string {
	var sb strings.Builder
	for _, line := range e.DocLines() {
		sb.WriteString(indent)
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func params(m *dom.Method) string {
	parts := make([]string, 0, len(m.Params))
	for _, p := range m.Params {
		parts = append(parts, p.Type+" "+p.Name)
	}
	return strings.Join(parts, ", ")
}

func returnType(m *dom.Method) string {
	if m.ReturnType == "" {
		return "void"
	}
	return m.ReturnType
}

func constants(e *dom.Enum) string {
	parts := make([]string, 0, len(e.Constants))
	for _, c := range e.Constants {
		parts = append(parts, "        "+c)
	}
	return strings.Join(parts, ",\n")
}

const classTemplate = `{{docs .Unit ""}}package {{.Unit.Package}};
{{if .Unit.Imports}}
{{range .Unit.Imports}}import {{.}};
{{end}}{{end}}
{{docs .Class ""}}public class {{.Class.Name}} implements Serializable {
{{range .Class.Fields}}{{docs . "    "}}    private {{if .Static}}static {{end}}{{if .Final}}final {{end}}{{.Type}} {{.Name}}{{if .Init}} = {{.Init}}{{end}};

{{end}}{{range .Class.Methods}}{{docs . "    "}}    public {{ret .}} {{.Name}}({{params .}}) {
{{range .Body}}        {{.}}
{{end}}    }

{{end}}{{range .Class.Enums}}{{docs . "    "}}    public enum {{.Name}} {
{{constants .}}
    }
{{end}}}
`
