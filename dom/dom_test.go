package dom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alia5/remarkdoc/dom"
)

func TestDocLinesAppendOnly(t *testing.T) {
	f := dom.NewField("status", "String")
	assert.Nil(t, f.DocLines())

	f.AddDocLine("/**")
	f.AddDocLine(" * a")
	f.AddDocLine(" */")
	assert.Equal(t, []string{"/**", " * a", " */"}, f.DocLines())

	// Mutating the returned slice must not leak back into the element.
	lines := f.DocLines()
	lines[0] = "changed"
	assert.Equal(t, "/**", f.DocLines()[0])
}

func TestXmlElementAttributes(t *testing.T) {
	x := dom.NewXmlElement("select")
	x.AddAttribute("id", "selectByPrimaryKey")
	x.AddAttribute("resultMap", "BaseResultMap")

	v, ok := x.Attr("id")
	assert.True(t, ok)
	assert.Equal(t, "selectByPrimaryKey", v)

	_, ok = x.Attr("parameterType")
	assert.False(t, ok)

	root := dom.NewXmlElement("mapper")
	root.AddElement(x)
	assert.Len(t, root.Children, 1)
}

func TestClassMembers(t *testing.T) {
	c := dom.NewClass("Orders")
	c.AddField(dom.NewField("id", "Long"))
	m := dom.NewMethod("setId")
	m.AddParameter("id", "Long")
	c.AddMethod(m)
	c.AddEnum(dom.NewEnum("OrdersColumn", "ID"))

	assert.Len(t, c.Fields, 1)
	assert.Len(t, c.Methods, 1)
	assert.Equal(t, []dom.Parameter{{Name: "id", Type: "Long"}}, c.Methods[0].Params)
	assert.Equal(t, []string{"ID"}, c.Enums[0].Constants)
}
