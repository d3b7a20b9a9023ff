// Package schema describes database tables and columns together with the
// remark metadata a comment generator reads.
package schema

import (
	"errors"
	"fmt"
)

// ErrMissingName is returned by Validate for tables or columns without a name.
var ErrMissingName = errors.New("missing name")

// Schema is a set of introspected tables.
type Schema struct {
	Tables []IntrospectedTable `json:"tables" yaml:"tables" toml:"tables"`
}

// IntrospectedTable is a database table and its remark. An empty Remark
// means the table carries no remark.
type IntrospectedTable struct {
	Name    string               `json:"name" yaml:"name" toml:"name"`
	Remark  string               `json:"remark,omitempty" yaml:"remark,omitempty" toml:"remark,omitempty"`
	Columns []IntrospectedColumn `json:"columns" yaml:"columns" toml:"columns"`
}

// IntrospectedColumn is a database column and its remarks. An empty Remarks
// means the column carries no remarks.
type IntrospectedColumn struct {
	Name    string `json:"name" yaml:"name" toml:"name"`
	Type    string `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
	Remarks string `json:"remarks,omitempty" yaml:"remarks,omitempty" toml:"remarks,omitempty"`
}

// Validate checks that every table and column is named.
func (s *Schema) Validate() error {
	for i, t := range s.Tables {
		if t.Name == "" {
			return fmt.Errorf("table #%d: %w", i, ErrMissingName)
		}
		for j, c := range t.Columns {
			if c.Name == "" {
				return fmt.Errorf("table %s: column #%d: %w", t.Name, j, ErrMissingName)
			}
		}
	}
	return nil
}

// Table returns the table with the given name, or nil.
func (s *Schema) Table(name string) *IntrospectedTable {
	for i := range s.Tables {
		if s.Tables[i].Name == name {
			return &s.Tables[i]
		}
	}
	return nil
}
