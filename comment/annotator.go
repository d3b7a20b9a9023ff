package comment

import (
	"log/slog"
	"strings"
	"time"

	"github.com/Alia5/remarkdoc/dom"
	"github.com/Alia5/remarkdoc/schema"
)

const (
	// NewElementTag marks generated elements for the merge tool.
	NewElementTag = "@mbggenerated"
	// DoNotDeleteToken follows NewElementTag on elements the merge tool must keep.
	DoNotDeleteToken = "do_not_delete_during_merge"
	// Author is written into every class comment.
	Author = "licheng"

	// DateLayout formats the class comment date.
	DateLayout = "2006-01-02"
	// TimestampLayout formats merge tag timestamps, e.g. "Sun Oct 18 09:30:00 UTC 2026".
	TimestampLayout = "Mon Jan 02 15:04:05 MST 2006"
)

// Annotator writes remark-driven comments. Classes always receive a block
// with the table remark, the author and the current date; fields receive the
// column remarks when there are any. All other hooks emit nothing.
type Annotator struct {
	props        Properties
	suppressDate bool
	mergeTags    bool
	now          func() time.Time
	logger       *slog.Logger
}

type Option func(*Annotator)

// WithClock replaces time.Now as the source of dates and timestamps.
func WithClock(now func() time.Time) Option {
	return func(a *Annotator) { a.now = now }
}

// WithMergeTags switches the merge-aware class hook on. It is off by default,
// in which case OnClassMerge emits nothing.
func WithMergeTags(enabled bool) Option {
	return func(a *Annotator) { a.mergeTags = enabled }
}

func WithLogger(logger *slog.Logger) Option {
	return func(a *Annotator) { a.logger = logger }
}

// New returns an Annotator configured with props.
func New(props Properties, opts ...Option) *Annotator {
	a := &Annotator{
		props:  Properties{},
		now:    time.Now,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(a)
	}
	a.Configure(props)
	return a
}

// Configure merges props into the held configuration. The suppress-date
// flag is taken from props alone, so a call without the key clears it.
func (a *Annotator) Configure(props Properties) {
	a.props.Merge(props)
	a.suppressDate = props.Bool(PropSuppressDate)
}

// SuppressDate reports whether merge tags omit their timestamp.
func (a *Annotator) SuppressDate() bool { return a.suppressDate }

// Properties returns a copy of the merged configuration.
func (a *Annotator) Properties() Properties {
	out := make(Properties, len(a.props))
	out.Merge(a.props)
	return out
}

// OnFileHeader leaves generated files without a banner.
func (a *Annotator) OnFileHeader(unit *dom.CompilationUnit) {}

// OnClass writes the table remark, author and date. The date is always
// written; suppressDate only governs merge tag timestamps.
func (a *Annotator) OnClass(class *dom.Class, table *schema.IntrospectedTable) {
	if class == nil {
		return
	}
	class.AddDocLine("/**")
	class.AddDocLine(" * " + tableRemark(table))
	class.AddDocLine(" * ")
	class.AddDocLine(" * @author " + Author)
	class.AddDocLine(" * ")
	class.AddDocLine(" * @date " + a.DateString())
	class.AddDocLine(" */")
}

// OnClassMerge emits a merge-tagged class comment when merge tags are enabled.
func (a *Annotator) OnClassMerge(class *dom.Class, table *schema.IntrospectedTable, markAsDoNotDelete bool) {
	if !a.mergeTags || class == nil {
		return
	}
	class.AddDocLine("/**")
	if r := tableRemark(table); r != "" {
		class.AddDocLine(" * " + r)
	}
	class.AddDocLine(" *")
	class.AddDocLine(a.MergeTagLine(markAsDoNotDelete))
	class.AddDocLine(" */")
}

// OnField writes the column remarks, or nothing when the column has none.
func (a *Annotator) OnField(field *dom.Field, table *schema.IntrospectedTable, column *schema.IntrospectedColumn) {
	if field == nil || column == nil || column.Remarks == "" {
		if field != nil {
			a.logger.Debug("field has no remarks, skipping comment", "field", field.Name)
		}
		return
	}
	field.AddDocLine("/**")
	field.AddDocLine(" * " + column.Remarks)
	field.AddDocLine(" */")
}

func (a *Annotator) OnFieldNoColumn(field *dom.Field, table *schema.IntrospectedTable) {}

// OnGetter writes nothing; accessors stay uncommented.
func (a *Annotator) OnGetter(method *dom.Method, table *schema.IntrospectedTable, column *schema.IntrospectedColumn) {
}

func (a *Annotator) OnSetter(method *dom.Method, table *schema.IntrospectedTable, column *schema.IntrospectedColumn) {
}

func (a *Annotator) OnGeneralMethod(method *dom.Method, table *schema.IntrospectedTable) {}

func (a *Annotator) OnEnum(enum *dom.Enum, table *schema.IntrospectedTable) {}

// OnXmlElement writes nothing; mapper documents stay uncommented.
func (a *Annotator) OnXmlElement(element *dom.XmlElement) {}

func (a *Annotator) OnXmlRoot(root *dom.XmlElement) {}

// MergeTagLine composes the javadoc line recognized by the merge tool:
// " * @mbggenerated[ do_not_delete_during_merge][ <timestamp>]".
func (a *Annotator) MergeTagLine(doNotDelete bool) string {
	var sb strings.Builder
	sb.WriteString(" * ")
	sb.WriteString(NewElementTag)
	if doNotDelete {
		sb.WriteByte(' ')
		sb.WriteString(DoNotDeleteToken)
	}
	if ts := a.TimestampString(); ts != "" {
		sb.WriteByte(' ')
		sb.WriteString(ts)
	}
	return sb.String()
}

// TimestampString returns the merge tag timestamp, or "" when suppressed.
func (a *Annotator) TimestampString() string {
	if a.suppressDate {
		return ""
	}
	return a.now().Format(TimestampLayout)
}

// DateString returns the current date as YYYY-MM-DD.
func (a *Annotator) DateString() string {
	return a.now().Format(DateLayout)
}

func tableRemark(table *schema.IntrospectedTable) string {
	if table == nil {
		return ""
	}
	return table.Remark
}
