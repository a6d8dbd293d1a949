package tablesync

import (
	"fmt"
	"strings"

	"github.com/glennliao/schema-sync/database"
	"github.com/glennliao/schema-sync/model"
)

// CreateTableSql renders the CREATE TABLE statement of meta, one line per column in
// field order.
func CreateTableSql(meta model.TableMetadata, dialect string) (string, error) {
	d, err := database.Get(dialect)
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(meta.Columns))
	for _, column := range meta.Columns {
		sqlType := d.GetSqlType(column.Type, column.Length)
		if column.Primary && sqlType.Kind == d.IntegerKind() {
			lines = append(lines, "\t"+d.PrimaryKeyColumn(column.ColumnName))
			continue
		}
		lines = append(lines, fmt.Sprintf("\t%s %s", d.Quote(column.ColumnName), columnDefinition(sqlType, column)))
	}

	return fmt.Sprintf("CREATE TABLE %s (\n%s\n)%s;", d.Quote(meta.TableName), strings.Join(lines, ",\n"), d.TableOptions(meta)), nil
}

// columnDefinition is the "<type> NULL|NOT NULL [DEFAULT x]" part of a column clause.
func columnDefinition(sqlType model.SqlType, column model.ColumnMetadata) string {
	def := sqlType.Sql
	if column.Nullable {
		def += " NULL"
	} else {
		def += " NOT NULL"
	}
	if column.HasDefault() {
		def += " DEFAULT " + ExportDefault(column.Default)
	}
	return def
}
