package mysql

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
	database.RegDatabase("mysql", &Mysql{})
}

type Mysql struct {
}

const (
	defaultCharset = "utf8mb4"
	defaultLength  = 255
)

var typeMap = map[model.LogicalType]model.SqlType{
	model.LogicalInt:             {Kind: "INT", Sql: "INT"},
	model.LogicalFloat:           {Kind: "DOUBLE", Sql: "DOUBLE"},
	model.LogicalBool:            {Kind: "TINYINT", Sql: "TINYINT(1)"},
	model.LogicalCollection:      {Kind: "JSON", Sql: "JSON"},
	model.LogicalObjectReference: {Kind: "JSON", Sql: "JSON"},
	model.LogicalUnknown:         {Kind: "TEXT", Sql: "TEXT"},
}

func (d *Mysql) GetSqlType(t model.LogicalType, length int) model.SqlType {
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

func (d *Mysql) IntegerKind() string {
	return "INT"
}

var synonymMap = map[string]string{
	"INTEGER":           "INT",
	"BOOL":              "TINYINT",
	"BOOLEAN":           "TINYINT",
	"DOUBLE PRECISION":  "DOUBLE",
	"REAL":              "DOUBLE",
	"CHARACTER VARYING": "VARCHAR",
}

func (d *Mysql) NormalizeType(label string) string {
	kind, _ := database.SplitTypeLabel(label)
	if v, exists := synonymMap[kind]; exists {
		return v
	}
	return kind
}

func (d *Mysql) Quote(ident string) string {
	return "`" + strings.ReplaceAll(ident, "`", "``") + "`"
}

func (d *Mysql) PrimaryKeyColumn(column string) string {
	return d.Quote(column) + " INT AUTO_INCREMENT PRIMARY KEY"
}

func (d *Mysql) TableOptions(table model.TableMetadata) string {
	charset := table.Charset
	if charset == "" {
		charset = defaultCharset
	}
	return " ENGINE=InnoDB DEFAULT CHARSET=" + charset
}

func (d *Mysql) DropColumnSql(table, column string) string {
	return fmt.Sprintf("ALTER TABLE %s DROP COLUMN %s;", d.Quote(table), d.Quote(column))
}

func (d *Mysql) AddColumnSql(table, column, definition string) string {
	return fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s;", d.Quote(table), d.Quote(column), definition)
}

func (d *Mysql) AlterTypeSql(table, column, sqlType string) string {
	return fmt.Sprintf("ALTER TABLE %s MODIFY %s %s;", d.Quote(table), d.Quote(column), sqlType)
}

// AlterNullableSql returns an advisory comment: MODIFY needs the full column
// definition, which is left to the operator.
func (d *Mysql) AlterNullableSql(table, column string, nullable bool) string {
	return fmt.Sprintf("-- NOTE: adjust nullability manually for %s in table %s (MySQL needs full column definition) --",
		d.Quote(column), d.Quote(table))
}

type Column struct {
	Field    string `orm:"COLUMN_NAME"`
	Type     string `orm:"DATA_TYPE"`
	Nullable string `orm:"IS_NULLABLE"` // YES/NO
	Length   int    `orm:"CHARACTER_MAXIMUM_LENGTH"`
}

// LoadSchema reads the columns of table in the connection's current database.
// A missing table yields a snapshot that is not Found.
func (d *Mysql) LoadSchema(ctx context.Context, db gdb.DB, table string) (schema model.LiveSchema, err error) {
	found, err := d.tableExists(ctx, db, table)
	if err != nil || !found {
		return model.LiveSchema{TableName: table}, err
	}
	columns, err := d.loadColumns(ctx, db, table)
	if err != nil {
		return
	}
	schema = formatColumns(table, columns)
	schema.Found = true
	return schema, nil
}

func (d *Mysql) tableExists(ctx context.Context, db gdb.DB, table string) (bool, error) {
	query := "SELECT COUNT(1) FROM information_schema.TABLES WHERE table_schema = DATABASE() AND table_name = ?"
	count, err := db.GetValue(ctx, query, table)
	if err != nil {
		return false, gerror.Wrapf(err, "check table %s", table)
	}
	return count.Int() > 0, nil
}

func (d *Mysql) loadColumns(ctx context.Context, db gdb.DB, table string) (list []Column, err error) {
	query := "SELECT COLUMN_NAME, DATA_TYPE, IS_NULLABLE, CHARACTER_MAXIMUM_LENGTH FROM information_schema.COLUMNS WHERE table_schema = DATABASE() AND table_name = ? ORDER BY ORDINAL_POSITION"
	err = db.GetScan(ctx, &list, query, table)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, gerror.Wrapf(err, "load columns of table %s", table)
	}
	return list, nil
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
