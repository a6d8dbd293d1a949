package database

import (
	"context"
	"sort"

	"github.com/glennliao/schema-sync/model"
	"github.com/gogf/gf/v2/database/gdb"
	"github.com/gogf/gf/v2/errors/gerror"
)

// Database is a SQL dialect: type spellings, quoting, statement shapes and the
// loader for live table snapshots.
type Database interface {
	// GetSqlType maps a logical type; length applies to string types only, 0 means default.
	GetSqlType(t model.LogicalType, length int) model.SqlType
	// IntegerKind is the base integer kind eligible for the auto-increment primary key.
	IntegerKind() string
	// NormalizeType folds an introspected type label onto a canonical kind.
	NormalizeType(label string) string
	Quote(ident string) string
	PrimaryKeyColumn(column string) string
	TableOptions(table model.TableMetadata) string

	DropColumnSql(table, column string) string
	AddColumnSql(table, column, definition string) string
	AlterTypeSql(table, column, sqlType string) string
	AlterNullableSql(table, column string, nullable bool) string

	LoadSchema(ctx context.Context, db gdb.DB, table string) (model.LiveSchema, error)
}

var RegMap = map[string]Database{}

func RegDatabase(name string, database Database) {
	RegMap[name] = database
}

// Get returns the registered dialect or a CodeUnsupportedDialect error.
func Get(dialect string) (Database, error) {
	if d, ok := RegMap[dialect]; ok {
		return d, nil
	}
	return nil, gerror.NewCodef(model.CodeUnsupportedDialect, "unsupported dialect %q, expected one of %v", dialect, Names())
}

func Names() []string {
	names := make([]string, 0, len(RegMap))
	for name := range RegMap {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
