package pipeline

import (
	"strings"
	"unicode"
)

func toPascalCase(s string) string {
	if s == "" {
		return ""
	}

	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
	})

	var result strings.Builder
	for _, word := range words {
		if len(word) > 0 {
			result.WriteString(strings.ToUpper(string(word[0])))
			if len(word) > 1 {
				result.WriteString(strings.ToLower(word[1:]))
			}
		}
	}

	return sanitizeLeadingDigit(result.String())
}

func toCamelCase(s string) string {
	pascal := toPascalCase(s)
	if len(pascal) == 0 {
		return ""
	}
	return strings.ToLower(string(pascal[0])) + pascal[1:]
}

// toConstantName turns a column name into an enum constant, e.g.
// "internal_flag" -> "INTERNAL_FLAG".
func toConstantName(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
	})
	return sanitizeLeadingDigit(strings.ToUpper(strings.Join(words, "_")))
}

// sanitizeLeadingDigit prefixes names that start with a digit with "Num"
// to keep identifiers valid in Java.
func sanitizeLeadingDigit(name string) string {
	if name == "" {
		return ""
	}
	if name[0] >= '0' && name[0] <= '9' {
		return "Num" + name
	}
	return name
}

// javaType maps a JDBC type name to the Java type used for the field.
func javaType(jdbcType string) string {
	base := strings.ToUpper(strings.TrimSpace(jdbcType))
	if i := strings.IndexByte(base, '('); i >= 0 {
		base = base[:i]
	}
	switch base {
	case "VARCHAR", "CHAR", "TEXT", "LONGVARCHAR", "NVARCHAR", "NCHAR", "CLOB":
		return "String"
	case "INTEGER", "INT", "SMALLINT", "TINYINT":
		return "Integer"
	case "BIGINT":
		return "Long"
	case "BIT", "BOOLEAN":
		return "Boolean"
	case "DECIMAL", "NUMERIC":
		return "BigDecimal"
	case "DOUBLE", "FLOAT":
		return "Double"
	case "REAL":
		return "Float"
	case "DATE", "TIME", "TIMESTAMP", "DATETIME":
		return "Date"
	case "BLOB", "BINARY", "VARBINARY", "LONGVARBINARY":
		return "byte[]"
	default:
		return "Object"
	}
}

// jdbcType normalizes the declared type for mapper attributes.
func jdbcType(declared string) string {
	base := strings.ToUpper(strings.TrimSpace(declared))
	if i := strings.IndexByte(base, '('); i >= 0 {
		base = base[:i]
	}
	switch base {
	case "":
		return "OTHER"
	case "INT":
		return "INTEGER"
	case "TEXT":
		return "LONGVARCHAR"
	case "DATETIME":
		return "TIMESTAMP"
	default:
		return base
	}
}
