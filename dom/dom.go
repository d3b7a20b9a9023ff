// Package dom holds the object model of generated source artifacts.
//
// Every element carries an ordered sequence of documentation lines. Comment
// generators only ever append to that sequence; rendering the model to text
// happens elsewhere.
package dom

// Element is a generated artifact that accepts documentation lines.
type Element interface {
	AddDocLine(line string)
	DocLines() []string
}

// docLines is embedded by every element kind.
type docLines struct {
	lines []string
}

func (d *docLines) AddDocLine(line string) {
	d.lines = append(d.lines, line)
}

// DocLines returns a copy of the lines appended so far.
func (d *docLines) DocLines() []string {
	if len(d.lines) == 0 {
		return nil
	}
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}

// CompilationUnit is one generated source file.
type CompilationUnit struct {
	docLines
	Package string
	Imports []string
	Types   []*Class
}

// Class is a generated class (top level or inner).
type Class struct {
	docLines
	Name    string
	Fields  []*Field
	Methods []*Method
	Enums   []*Enum
}

func NewClass(name string) *Class {
	return &Class{Name: name}
}

func (c *Class) AddField(f *Field)   { c.Fields = append(c.Fields, f) }
func (c *Class) AddMethod(m *Method) { c.Methods = append(c.Methods, m) }
func (c *Class) AddEnum(e *Enum)     { c.Enums = append(c.Enums, e) }

// Field is a member variable of a generated class.
type Field struct {
	docLines
	Name string
	Type string
	// Static and Final are only used for constants such as serialVersionUID.
	Static bool
	Final  bool
	Init   string
}

func NewField(name, typ string) *Field {
	return &Field{Name: name, Type: typ}
}

// Parameter is a single method parameter.
type Parameter struct {
	Name string
	Type string
}

// Method is a generated method. An empty ReturnType means void.
type Method struct {
	docLines
	Name       string
	ReturnType string
	Params     []Parameter
	Body       []string
}

func NewMethod(name string) *Method {
	return &Method{Name: name}
}

func (m *Method) AddParameter(name, typ string) {
	m.Params = append(m.Params, Parameter{Name: name, Type: typ})
}

// Enum is a generated enum type.
type Enum struct {
	docLines
	Name      string
	Constants []string
}

func NewEnum(name string, constants ...string) *Enum {
	return &Enum{Name: name, Constants: constants}
}

// Attribute is a single XML attribute. Order is preserved.
type Attribute struct {
	Name  string
	Value string
}

// XmlElement is a node of a generated mapper document.
type XmlElement struct {
	docLines
	Name       string
	Attributes []Attribute
	Children   []*XmlElement
	// Text is character data rendered before the children.
	Text string
}

func NewXmlElement(name string) *XmlElement {
	return &XmlElement{Name: name}
}

func (x *XmlElement) AddAttribute(name, value string) {
	x.Attributes = append(x.Attributes, Attribute{Name: name, Value: value})
}

func (x *XmlElement) AddElement(child *XmlElement) {
	x.Children = append(x.Children, child)
}

// Attr returns the value of the named attribute and whether it was set.
func (x *XmlElement) Attr(name string) (string, bool) {
	for _, a := range x.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

var (
	_ Element = (*CompilationUnit)(nil)
	_ Element = (*Class)(nil)
	_ Element = (*Field)(nil)
	_ Element = (*Method)(nil)
	_ Element = (*Enum)(nil)
	_ Element = (*XmlElement)(nil)
)
