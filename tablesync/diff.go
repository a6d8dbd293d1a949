package tablesync

import (
	"fmt"

	"github.com/glennliao/schema-sync/database"
	"github.com/glennliao/schema-sync/model"
)

// Diff computes the operations migrating live to meta. Drops come first (live column
// order), then adds and per-column changes (meta column order).
func Diff(live model.LiveSchema, meta model.TableMetadata, dialect string) ([]model.DiffOperation, error) {
	d, err := database.Get(dialect)
	if err != nil {
		return nil, err
	}

	var (
		table = meta.TableName
		ops   []model.DiffOperation
	)

	for _, liveCol := range live.Columns {
		if _, exists := meta.ByColumnName(liveCol.Name); exists {
			continue
		}
		ops = append(ops, model.DiffOperation{
			Type:     model.ChangeDropColumn,
			Column:   liveCol.Name,
			Sql:      d.DropColumnSql(table, liveCol.Name),
			Severity: model.SeverityDanger,
			Reason:   fmt.Sprintf("column %s will be dropped (data loss)", liveCol.Name),
		})
	}

	for _, column := range meta.Columns {
		if _, exists := live.Column(column.ColumnName); exists {
			continue
		}
		sqlType := d.GetSqlType(column.Type, column.Length)
		ops = append(ops, model.DiffOperation{
			Type:     model.ChangeAddColumn,
			Column:   column.ColumnName,
			Sql:      d.AddColumnSql(table, column.ColumnName, columnDefinition(sqlType, column)),
			Severity: model.SeverityInfo,
			Reason:   fmt.Sprintf("add column %s", column.ColumnName),
		})
	}

	for _, column := range meta.Columns {
		liveCol, exists := live.Column(column.ColumnName)
		if !exists {
			continue
		}
		ops = append(ops, compareColumn(d, table, liveCol, column)...)
	}

	return ops, nil
}

// compareColumn checks type, nullability and length independently; every check may
// contribute one operation.
func compareColumn(d database.Database, table string, liveCol model.LiveColumn, column model.ColumnMetadata) []model.DiffOperation {
	var (
		ops      []model.DiffOperation
		name     = column.ColumnName
		sqlType  = d.GetSqlType(column.Type, column.Length)
		liveKind = d.NormalizeType(liveCol.SqlType)
	)

	if liveKind != sqlType.Kind {
		ops = append(ops, model.DiffOperation{
			Type:     model.ChangeAlterType,
			Column:   name,
			Sql:      d.AlterTypeSql(table, name, sqlType.Sql),
			Severity: model.SeverityWarning,
			Reason:   fmt.Sprintf("type change %s -> %s for %s", liveKind, sqlType.Kind, name),
		})
	}

	switch {
	case liveCol.Nullable && !column.Nullable:
		ops = append(ops, model.DiffOperation{
			Type:     model.ChangeSetNotNull,
			Column:   name,
			Sql:      d.AlterNullableSql(table, name, false),
			Severity: model.SeverityDanger,
			Reason:   fmt.Sprintf("column %s becomes NOT NULL (existing nulls may break)", name),
		})
	case !liveCol.Nullable && column.Nullable:
		ops = append(ops, model.DiffOperation{
			Type:     model.ChangeDropNotNull,
			Column:   name,
			Sql:      d.AlterNullableSql(table, name, true),
			Severity: model.SeverityInfo,
			Reason:   fmt.Sprintf("column %s becomes NULLABLE", name),
		})
	}

	// length only applies to string columns
	if size := liveLength(d, liveCol); column.Type == model.LogicalString && size > 0 && column.Length > 0 && column.Length < size {
		ops = append(ops, model.DiffOperation{
			Type:     model.ChangeShrinkLength,
			Column:   name,
			Sql:      d.AlterTypeSql(table, name, sqlType.Sql),
			Severity: model.SeverityDanger,
			Reason:   fmt.Sprintf("length shrink %d -> %d for %s (possible truncation)", size, column.Length, name),
		})
	}

	return ops
}

// liveLength falls back to the size spelled in the type label, eg VARCHAR(100), for
// character kinds when the snapshot carries no length.
func liveLength(d database.Database, liveCol model.LiveColumn) int {
	if liveCol.Length > 0 {
		return liveCol.Length
	}
	switch d.NormalizeType(liveCol.SqlType) {
	case "VARCHAR", "CHAR", "CHARACTER":
		_, size := database.SplitTypeLabel(liveCol.SqlType)
		return size
	}
	return 0
}
