// Package comment decides which generated elements receive documentation
// comments and synthesizes the comment text from schema remarks.
//
// A code-generation pipeline calls one Generator method per generated
// element. Annotator is the remark-driven implementation: classes get a block
// comment with the table remark, author and date; fields get the column
// remarks when present; every other element kind is left uncommented.
package comment

import (
	"github.com/Alia5/remarkdoc/dom"
	"github.com/Alia5/remarkdoc/schema"
)

// Generator is the set of hooks a pipeline invokes while building the
// element model. Implementations append to the element's doc lines and never
// remove existing ones.
type Generator interface {
	// Configure merges properties into the generator configuration.
	Configure(props Properties)

	OnFileHeader(unit *dom.CompilationUnit)
	OnClass(class *dom.Class, table *schema.IntrospectedTable)
	// OnClassMerge is the merge-aware class hook, called for classes whose
	// regeneration is tracked by a merge tool.
	OnClassMerge(class *dom.Class, table *schema.IntrospectedTable, markAsDoNotDelete bool)
	OnField(field *dom.Field, table *schema.IntrospectedTable, column *schema.IntrospectedColumn)
	// OnFieldNoColumn is called for fields that do not map to a column.
	OnFieldNoColumn(field *dom.Field, table *schema.IntrospectedTable)
	OnGetter(method *dom.Method, table *schema.IntrospectedTable, column *schema.IntrospectedColumn)
	OnSetter(method *dom.Method, table *schema.IntrospectedTable, column *schema.IntrospectedColumn)
	OnGeneralMethod(method *dom.Method, table *schema.IntrospectedTable)
	OnEnum(enum *dom.Enum, table *schema.IntrospectedTable)
	OnXmlElement(element *dom.XmlElement)
	OnXmlRoot(root *dom.XmlElement)
}

// Nop implements Generator without emitting anything. Embed it to override
// only the hooks of interest.
type Nop struct{}

func (Nop) Configure(Properties) {}

func (Nop) OnFileHeader(*dom.CompilationUnit) {}

func (Nop) OnClass(*dom.Class, *schema.IntrospectedTable) {}

func (Nop) OnClassMerge(*dom.Class, *schema.IntrospectedTable, bool) {}

func (Nop) OnField(*dom.Field, *schema.IntrospectedTable, *schema.IntrospectedColumn) {}

func (Nop) OnFieldNoColumn(*dom.Field, *schema.IntrospectedTable) {}

func (Nop) OnGetter(*dom.Method, *schema.IntrospectedTable, *schema.IntrospectedColumn) {}

func (Nop) OnSetter(*dom.Method, *schema.IntrospectedTable, *schema.IntrospectedColumn) {}

func (Nop) OnGeneralMethod(*dom.Method, *schema.IntrospectedTable) {}

func (Nop) OnEnum(*dom.Enum, *schema.IntrospectedTable) {}

func (Nop) OnXmlElement(*dom.XmlElement) {}

func (Nop) OnXmlRoot(*dom.XmlElement) {}

var (
	_ Generator = Nop{}
	_ Generator = (*Annotator)(nil)
)
