// Package pipeline walks a schema, builds the generated element model for
// every table and hands each element to a comment.Generator.
package pipeline

import (
	"encoding/xml"
	"log/slog"
	"sort"
	"strings"

	"github.com/Alia5/remarkdoc/comment"
	"github.com/Alia5/remarkdoc/dom"
	"github.com/Alia5/remarkdoc/internal/log"
	"github.com/Alia5/remarkdoc/schema"
)

const DefaultPackage = "com.example.model"

type Options struct {
	// Package is the Java package of generated model classes.
	Package string
	// Lines receives every element's doc lines once the table is annotated.
	Lines  log.LineLogger
	Logger *slog.Logger
}

// Result is the element model built for one table.
type Result struct {
	Table  *schema.IntrospectedTable
	Unit   *dom.CompilationUnit
	Class  *dom.Class
	Mapper *dom.XmlElement
	// Commented counts elements that ended up with at least one doc line.
	Commented int
}

// Run builds and annotates every table of s in order.
func Run(gen comment.Generator, s *schema.Schema, opts Options) []Result {
	opts = withDefaults(opts)
	results := make([]Result, 0, len(s.Tables))
	for i := range s.Tables {
		r := BuildTable(gen, &s.Tables[i], opts)
		opts.Logger.Debug("Annotated table",
			"table", r.Table.Name,
			"class", r.Class.Name,
			"fields", len(r.Class.Fields),
			"commented", r.Commented)
		results = append(results, r)
	}
	return results
}

// BuildTable builds the compilation unit and mapper for one table. Hooks are
// invoked in the order a generator would meet the elements: file, class,
// fields and accessors per column, enum, general methods, then the mapper.
func BuildTable(gen comment.Generator, table *schema.IntrospectedTable, opts Options) Result {
	opts = withDefaults(opts)
	className := toPascalCase(table.Name)

	unit := &dom.CompilationUnit{Package: opts.Package}
	gen.OnFileHeader(unit)

	class := dom.NewClass(className)
	unit.Types = append(unit.Types, class)
	gen.OnClass(class, table)
	gen.OnClassMerge(class, table, false)

	serial := &dom.Field{Name: "serialVersionUID", Type: "long", Static: true, Final: true, Init: "1L"}
	class.AddField(serial)
	gen.OnFieldNoColumn(serial, table)

	var getters, setters []*dom.Method
	constants := make([]string, 0, len(table.Columns))
	for i := range table.Columns {
		col := &table.Columns[i]
		name := toCamelCase(col.Name)
		typ := javaType(col.Type)

		field := dom.NewField(name, typ)
		class.AddField(field)
		gen.OnField(field, table, col)

		getter := dom.NewMethod("get" + toPascalCase(col.Name))
		getter.ReturnType = typ
		getter.Body = []string{"return " + name + ";"}
		gen.OnGetter(getter, table, col)
		getters = append(getters, getter)

		setter := dom.NewMethod("set" + toPascalCase(col.Name))
		setter.AddParameter(name, typ)
		setter.Body = []string{"this." + name + " = " + name + ";"}
		gen.OnSetter(setter, table, col)
		setters = append(setters, setter)

		constants = append(constants, toConstantName(col.Name))
	}
	for i := range getters {
		class.AddMethod(getters[i])
		class.AddMethod(setters[i])
	}

	enum := dom.NewEnum(className+"Column", constants...)
	class.AddEnum(enum)
	gen.OnEnum(enum, table)

	toString := toStringMethod(class)
	class.AddMethod(toString)
	gen.OnGeneralMethod(toString, table)

	unit.Imports = imports(class)

	mapper := buildMapper(gen, table, opts.Package, className)

	r := Result{Table: table, Unit: unit, Class: class, Mapper: mapper}
	r.Commented = traceElements(opts.Lines, r)
	return r
}

func withDefaults(opts Options) Options {
	if opts.Package == "" {
		opts.Package = DefaultPackage
	}
	if opts.Lines == nil {
		opts.Lines = log.NewLines(nil)
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return opts
}

func toStringMethod(class *dom.Class) *dom.Method {
	m := dom.NewMethod("toString")
	m.ReturnType = "String"
	m.Body = append(m.Body,
		"StringBuilder sb = new StringBuilder();",
		`sb.append(getClass().getSimpleName()).append(" [");`)
	first := true
	for _, f := range class.Fields {
		if f.Static {
			continue
		}
		sep := ", "
		if first {
			sep = ""
			first = false
		}
		m.Body = append(m.Body, `sb.append("`+sep+f.Name+`=").append(`+f.Name+`);`)
	}
	m.Body = append(m.Body, `sb.append("]");`, "return sb.toString();")
	return m
}

func imports(class *dom.Class) []string {
	set := map[string]bool{"java.io.Serializable": true}
	for _, f := range class.Fields {
		switch f.Type {
		case "Date":
			set["java.util.Date"] = true
		case "BigDecimal":
			set["java.math.BigDecimal"] = true
		}
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func buildMapper(gen comment.Generator, table *schema.IntrospectedTable, pkg, className string) *dom.XmlElement {
	modelType := pkg + "." + className
	root := dom.NewXmlElement("mapper")
	root.AddAttribute("namespace", mapperNamespace(pkg, className))
	gen.OnXmlRoot(root)

	resultMap := dom.NewXmlElement("resultMap")
	resultMap.AddAttribute("id", "BaseResultMap")
	resultMap.AddAttribute("type", modelType)
	columns := make([]string, 0, len(table.Columns))
	for _, col := range table.Columns {
		r := dom.NewXmlElement("result")
		r.AddAttribute("column", col.Name)
		r.AddAttribute("property", toCamelCase(col.Name))
		r.AddAttribute("jdbcType", jdbcType(col.Type))
		resultMap.AddElement(r)
		columns = append(columns, xmlText(col.Name))
	}

	columnList := dom.NewXmlElement("sql")
	columnList.AddAttribute("id", "Base_Column_List")
	columnList.Text = strings.Join(columns, ", ")

	selectAll := dom.NewXmlElement("select")
	selectAll.AddAttribute("id", "selectAll")
	selectAll.AddAttribute("resultMap", "BaseResultMap")
	selectAll.Text = "select <include refid=\"Base_Column_List\" /> from " + xmlText(table.Name)

	insert := dom.NewXmlElement("insert")
	insert.AddAttribute("id", "insert")
	insert.AddAttribute("parameterType", modelType)
	placeholders := make([]string, 0, len(table.Columns))
	for _, col := range table.Columns {
		placeholders = append(placeholders, xmlText("#{"+toCamelCase(col.Name)+",jdbcType="+jdbcType(col.Type)+"}"))
	}
	insert.Text = "insert into " + xmlText(table.Name) + " (" + strings.Join(columns, ", ") + ") values (" + strings.Join(placeholders, ", ") + ")"

	deleteAll := dom.NewXmlElement("delete")
	deleteAll.AddAttribute("id", "deleteAll")
	deleteAll.Text = "delete from " + xmlText(table.Name)

	for _, child := range []*dom.XmlElement{resultMap, columnList, selectAll, insert, deleteAll} {
		root.AddElement(child)
		gen.OnXmlElement(child)
	}
	return root
}

func mapperNamespace(pkg, className string) string {
	base := pkg
	if i := strings.LastIndexByte(pkg, '.'); i >= 0 {
		base = pkg[:i]
	}
	return base + ".mapper." + className + "Mapper"
}

// traceElements reports every element to lines and counts the commented ones.
func traceElements(lines log.LineLogger, r Result) int {
	commented := 0
	emit := func(kind, name string, e dom.Element) {
		dl := e.DocLines()
		if len(dl) > 0 {
			commented++
		}
		lines.Log(kind, name, dl)
	}

	emit("unit", r.Unit.Package+"."+r.Class.Name, r.Unit)
	emit("class", r.Class.Name, r.Class)
	for _, f := range r.Class.Fields {
		emit("field", r.Class.Name+"."+f.Name, f)
	}
	for _, m := range r.Class.Methods {
		emit("method", r.Class.Name+"."+m.Name, m)
	}
	for _, e := range r.Class.Enums {
		emit("enum", r.Class.Name+"."+e.Name, e)
	}
	emit("xml", r.Mapper.Name, r.Mapper)
	for _, c := range r.Mapper.Children {
		id, _ := c.Attr("id")
		emit("xml", c.Name+"#"+id, c)
	}
	return commented
}

// xmlText escapes s for use as mapper element text. Element Text is written
// verbatim, so only the parts derived from schema names go through here.
func xmlText(s string) string {
	var sb strings.Builder
	_ = xml.EscapeText(&sb, []byte(s))
	return sb.String()
}
