package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/glennliao/schema-sync/database"
	"github.com/glennliao/schema-sync/model"
	"github.com/gogf/gf/v2/database/gdb"
	"github.com/gogf/gf/v2/errors/gerror"
)

func init() {
	database.RegDatabase(`pgsql`, &Pgsql{})
}

type Pgsql struct {
	schema string
}

// Schema sets the namespace LoadSchema reads from, public by default.
func (d *Pgsql) Schema(schema string) {
	d.schema = schema
}

const (
	defaultSchema = "public"
	defaultLength = 255
)

var typeMap = map[model.LogicalType]model.SqlType{
	model.LogicalInt:             {Kind: "INTEGER", Sql: "INTEGER"},
	model.LogicalFloat:           {Kind: "DOUBLE PRECISION", Sql: "DOUBLE PRECISION"},
	model.LogicalBool:            {Kind: "BOOLEAN", Sql: "BOOLEAN"},
	model.LogicalCollection:      {Kind: "JSONB", Sql: "JSONB"},
	model.LogicalObjectReference: {Kind: "JSONB", Sql: "JSONB"},
	model.LogicalUnknown:         {Kind: "TEXT", Sql: "TEXT"},
}

func (d *Pgsql) GetSqlType(t model.LogicalType, length int) model.SqlType {
	if t == model.LogicalString {
		if length <= 0 {
			length = defaultLength
		}
		return model.SqlType{Kind: "VARCHAR", Sql: "VARCHAR(" + strconv.Itoa(length) + ")"}
	}
	if v, exists := typeMap[t]; exists {
		return v
	}
	return typeMap[model.LogicalUnknown]
}

func (d *Pgsql) IntegerKind() string {
	return "INTEGER"
}

// information_schema and pg_type spellings of the kinds produced by GetSqlType
var synonymMap = map[string]string{
	"CHARACTER VARYING": "VARCHAR",
	"INT":               "INTEGER",
	"INT4":              "INTEGER",
	"SERIAL":            "INTEGER",
	"SERIAL4":           "INTEGER",
	"BOOL":              "BOOLEAN",
	"FLOAT8":            "DOUBLE PRECISION",
}

func (d *Pgsql) NormalizeType(label string) string {
	kind, _ := database.SplitTypeLabel(label)
	if v, exists := synonymMap[kind]; exists {
		return v
	}
	return kind
}

func (d *Pgsql) Quote(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

func (d *Pgsql) PrimaryKeyColumn(column string) string {
	return d.Quote(column) + " SERIAL PRIMARY KEY"
}

func (d *Pgsql) TableOptions(table model.TableMetadata) string {
	return ""
}

func (d *Pgsql) DropColumnSql(table, column string) string {
	return fmt.Sprintf(`ALTER TABLE %s DROP COLUMN %s;`, d.Quote(table), d.Quote(column))
}

func (d *Pgsql) AddColumnSql(table, column, definition string) string {
	return fmt.Sprintf(`ALTER TABLE %s ADD COLUMN %s %s;`, d.Quote(table), d.Quote(column), definition)
}

func (d *Pgsql) AlterTypeSql(table, column, sqlType string) string {
	return fmt.Sprintf(`ALTER TABLE %s ALTER COLUMN %s TYPE %s;`, d.Quote(table), d.Quote(column), sqlType)
}

func (d *Pgsql) AlterNullableSql(table, column string, nullable bool) string {
	if nullable {
		return fmt.Sprintf(`ALTER TABLE %s ALTER COLUMN %s DROP NOT NULL;`, d.Quote(table), d.Quote(column))
	}
	return fmt.Sprintf(`ALTER TABLE %s ALTER COLUMN %s SET NOT NULL;`, d.Quote(table), d.Quote(column))
}

type Column struct {
	Field    string `orm:"column_name"`
	Type     string `orm:"data_type"`
	Nullable string `orm:"is_nullable"` // YES/NO
	Length   int    `orm:"character_maximum_length"`
}

// LoadSchema 获取表结构. A missing table yields a snapshot that is not Found.
func (d *Pgsql) LoadSchema(ctx context.Context, db gdb.DB, table string) (schema model.LiveSchema, err error) {
	namespace := d.schema
	if namespace == "" {
		namespace = defaultSchema
	}

	found, err := d.tableExists(ctx, db, namespace, table)
	if err != nil || !found {
		return model.LiveSchema{TableName: table}, err
	}
	columns, err := d.loadColumns(ctx, db, namespace, table)
	if err != nil {
		return
	}
	schema = formatColumns(table, columns)
	schema.Found = true
	return schema, nil
}

func (d *Pgsql) tableExists(ctx context.Context, db gdb.DB, namespace, table string) (bool, error) {
	query := "SELECT COUNT(1) FROM information_schema.tables WHERE table_schema = ? AND table_name = ?"
	count, err := db.GetValue(ctx, query, namespace, table)
	if err != nil {
		return false, gerror.Wrapf(err, "check table %s.%s", namespace, table)
	}
	return count.Int() > 0, nil
}

func (d *Pgsql) loadColumns(ctx context.Context, db gdb.DB, namespace, table string) (columns []Column, err error) {
	query := `
SELECT
    column_name,
    data_type,
    is_nullable,
    character_maximum_length
FROM
    information_schema.columns
WHERE
    table_schema = ?
    AND table_name = ?
ORDER BY
    ordinal_position
`
	err = db.GetScan(ctx, &columns, query, namespace, table)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, gerror.Wrapf(err, "load columns of table %s.%s", namespace, table)
	}
	return columns, nil
}

func formatColumns(table string, columns []Column) model.LiveSchema {
	schema := model.LiveSchema{TableName: table}
	for _, column := range columns {
		schema.Columns = append(schema.Columns, model.LiveColumn{
			Name:     column.Field,
			SqlType:  strings.ToUpper(column.Type),
			Nullable: strings.EqualFold(column.Nullable, "YES"),
			Length:   column.Length,
		})
	}
	return schema
}
