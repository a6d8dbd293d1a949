package model

import "github.com/gogf/gf/v2/container/gvar"

// ColumnMetadata is the canonical description of one field of a record type.
type ColumnMetadata struct {
	FieldName  string      `json:"fieldName"`
	ColumnName string      `json:"columnName"`
	TypeName   string      `json:"typeName"` // declared type after union resolution
	Type       LogicalType `json:"type"`
	Nullable   bool        `json:"nullable"`
	Default    *gvar.Var   `json:"default"`
	Primary    bool        `json:"primary"`
	Length     int         `json:"length"` // 0 means not set
	Precision  int         `json:"precision"`
	Scale      int         `json:"scale"`
}

// HasDefault reports whether a DEFAULT clause should be rendered for the column.
func (c ColumnMetadata) HasDefault() bool {
	return c.Default != nil && !c.Default.IsNil()
}

type TableMetadata struct {
	TableName string
	Charset   string
	Columns   []ColumnMetadata // field insertion order
}

// Column looks a column up by its field name.
func (t TableMetadata) Column(fieldName string) (ColumnMetadata, bool) {
	for _, col := range t.Columns {
		if col.FieldName == fieldName {
			return col, true
		}
	}
	return ColumnMetadata{}, false
}

// ByColumnName looks a column up by its database column name.
func (t TableMetadata) ByColumnName(name string) (ColumnMetadata, bool) {
	for _, col := range t.Columns {
		if col.ColumnName == name {
			return col, true
		}
	}
	return ColumnMetadata{}, false
}

// SqlType is the result of mapping a logical type onto a dialect.
type SqlType struct {
	Kind string // canonical kind, eg VARCHAR
	Sql  string // full spelling, eg VARCHAR(255)
}

// LiveColumn is one column of an already introspected table.
type LiveColumn struct {
	Name     string `json:"name"`
	SqlType  string `json:"sqlType"`
	Nullable bool   `json:"nullable"`
	Length   int    `json:"length"` // 0 when unknown
}

// LiveSchema is a snapshot of an existing table, columns in ordinal order.
type LiveSchema struct {
	TableName string       `json:"tableName"`
	Found     bool         `json:"found"` // set by loaders; a table may exist without columns
	Columns   []LiveColumn `json:"columns"`
}

func (s LiveSchema) Column(name string) (LiveColumn, bool) {
	for _, col := range s.Columns {
		if col.Name == name {
			return col, true
		}
	}
	return LiveColumn{}, false
}

// Exists reports whether the snapshot describes an existing table. Snapshots built by
// hand without Found count as existing once they have columns.
func (s LiveSchema) Exists() bool {
	return s.Found || len(s.Columns) > 0
}
