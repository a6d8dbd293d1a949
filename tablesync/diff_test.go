package tablesync

import (
	"testing"

	"github.com/glennliao/schema-sync/model"
	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userMeta(t *testing.T) model.TableMetadata {
	t.Helper()
	meta, err := Extract(userDto(), nil)
	require.NoError(t, err)
	return meta
}

func TestDiff_UpToDate(t *testing.T) {
	live := model.LiveSchema{
		TableName: "user_dtos",
		Columns: []model.LiveColumn{
			{Name: "id", SqlType: "INT"},
			{Name: "email", SqlType: "VARCHAR", Length: 150},
			{Name: "name", SqlType: "VARCHAR", Nullable: true, Length: 255},
			{Name: "is_active", SqlType: "TINYINT"},
			{Name: "meta", SqlType: "JSON"},
		},
	}
	ops, err := Diff(live, userMeta(t), "mysql")
	require.NoError(t, err)
	assert.Empty(t, ops)

	pgLive := model.LiveSchema{
		TableName: "user_dtos",
		Columns: []model.LiveColumn{
			{Name: "id", SqlType: "INTEGER"},
			{Name: "email", SqlType: "CHARACTER VARYING", Length: 150},
			{Name: "name", SqlType: "CHARACTER VARYING", Nullable: true, Length: 255},
			{Name: "is_active", SqlType: "BOOLEAN"},
			{Name: "meta", SqlType: "JSONB"},
		},
	}
	ops, err = Diff(pgLive, userMeta(t), "pgsql")
	require.NoError(t, err)
	assert.Empty(t, ops)
}

func TestDiff_EmptyLiveSchema(t *testing.T) {
	for _, dialect := range []string{"mysql", "pgsql"} {
		t.Run(dialect, func(t *testing.T) {
			meta := userMeta(t)
			ops, err := Diff(model.LiveSchema{TableName: "user_dtos"}, meta, dialect)
			require.NoError(t, err)
			require.Len(t, ops, len(meta.Columns))
			for i, op := range ops {
				assert.Equal(t, model.ChangeAddColumn, op.Type)
				assert.Equal(t, model.SeverityInfo, op.Severity)
				assert.Equal(t, meta.Columns[i].ColumnName, op.Column)
			}
		})
	}
}

func TestDiff_ExampleMigration(t *testing.T) {
	live := model.LiveSchema{
		TableName: "user_dtos",
		Columns: []model.LiveColumn{
			{Name: "email", SqlType: "VARCHAR", Length: 100},
		},
	}
	ops, err := Diff(live, userMeta(t), "mysql")
	require.NoError(t, err)

	want := []model.DiffOperation{
		{
			Type:     model.ChangeAddColumn,
			Column:   "id",
			Sql:      "ALTER TABLE `user_dtos` ADD COLUMN `id` INT NOT NULL;",
			Severity: model.SeverityInfo,
			Reason:   "add column id",
		},
		{
			Type:     model.ChangeAddColumn,
			Column:   "name",
			Sql:      "ALTER TABLE `user_dtos` ADD COLUMN `name` VARCHAR(255) NULL;",
			Severity: model.SeverityInfo,
			Reason:   "add column name",
		},
		{
			Type:     model.ChangeAddColumn,
			Column:   "is_active",
			Sql:      "ALTER TABLE `user_dtos` ADD COLUMN `is_active` TINYINT(1) NOT NULL DEFAULT 1;",
			Severity: model.SeverityInfo,
			Reason:   "add column is_active",
		},
		{
			Type:     model.ChangeAddColumn,
			Column:   "meta",
			Sql:      "ALTER TABLE `user_dtos` ADD COLUMN `meta` JSON NOT NULL DEFAULT '[]';",
			Severity: model.SeverityInfo,
			Reason:   "add column meta",
		},
	}
	assert.Equal(t, want, ops)
}

func TestDiff_DropColumn(t *testing.T) {
	live := model.LiveSchema{
		TableName: "user_dtos",
		Columns: []model.LiveColumn{
			{Name: "legacy", SqlType: "TEXT", Nullable: true},
			{Name: "id", SqlType: "INTEGER"},
			{Name: "old_flag", SqlType: "BOOLEAN"},
		},
	}
	ops, err := Diff(live, userMeta(t), "pgsql")
	require.NoError(t, err)

	var drops []model.DiffOperation
	for _, op := range ops {
		if op.Type == model.ChangeDropColumn {
			drops = append(drops, op)
		}
	}
	require.Len(t, drops, 2)
	assert.Equal(t, ops[:2], drops, "drops come first")
	assert.Equal(t, `ALTER TABLE "user_dtos" DROP COLUMN "legacy";`, drops[0].Sql)
	assert.Equal(t, model.SeverityDanger, drops[0].Severity)
	assert.Equal(t, "column legacy will be dropped (data loss)", drops[0].Reason)
	assert.Equal(t, "old_flag", drops[1].Column)
}

func TestDiff_LengthShrink(t *testing.T) {
	desc := model.TypeDescriptor{
		Name: "Contact",
		Fields: []model.FieldDescriptor{
			model.Field("email", model.Named("string")).WithOverride(model.ColumnOverride{Length: 100}),
		},
	}
	meta, err := Extract(desc, nil)
	require.NoError(t, err)

	tests := []struct {
		name    string
		dialect string
		live    model.LiveColumn
		wantSql string
	}{
		{
			name:    "mysql with length",
			dialect: "mysql",
			live:    model.LiveColumn{Name: "email", SqlType: "VARCHAR", Length: 255},
			wantSql: "ALTER TABLE `contacts` MODIFY `email` VARCHAR(100);",
		},
		{
			name:    "pgsql length from label",
			dialect: "pgsql",
			live:    model.LiveColumn{Name: "email", SqlType: "VARCHAR(255)"},
			wantSql: `ALTER TABLE "contacts" ALTER COLUMN "email" TYPE VARCHAR(100);`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops, err := Diff(model.LiveSchema{TableName: "contacts", Columns: []model.LiveColumn{tt.live}}, meta, tt.dialect)
			require.NoError(t, err)
			require.Len(t, ops, 1)
			assert.Equal(t, model.ChangeShrinkLength, ops[0].Type)
			assert.Equal(t, model.SeverityDanger, ops[0].Severity)
			assert.Contains(t, ops[0].Reason, "truncation")
			assert.Equal(t, tt.wantSql, ops[0].Sql)
		})
	}
}

func TestDiff_LengthGrowthOrUnset(t *testing.T) {
	desc := model.TypeDescriptor{
		Name: "Contact",
		Fields: []model.FieldDescriptor{
			model.Field("email", model.Named("string")).WithOverride(model.ColumnOverride{Length: 150}),
			model.Field("nick", model.Named("string")),
		},
	}
	meta, err := Extract(desc, nil)
	require.NoError(t, err)

	live := model.LiveSchema{TableName: "contacts", Columns: []model.LiveColumn{
		{Name: "email", SqlType: "VARCHAR", Length: 100},
		{Name: "nick", SqlType: "VARCHAR", Length: 500},
	}}
	ops, err := Diff(live, meta, "mysql")
	require.NoError(t, err)
	assert.Empty(t, ops)
}

func TestDiff_LengthIgnoredForNonString(t *testing.T) {
	desc := model.TypeDescriptor{
		Name: "Counter",
		Fields: []model.FieldDescriptor{
			model.Field("n", model.Named("int")).WithOverride(model.ColumnOverride{Length: 5}),
		},
	}
	meta, err := Extract(desc, nil)
	require.NoError(t, err)

	for _, dialect := range []string{"mysql", "pgsql"} {
		t.Run(dialect, func(t *testing.T) {
			live := model.LiveSchema{TableName: "counters", Columns: []model.LiveColumn{
				{Name: "n", SqlType: "INTEGER", Length: 10},
			}}
			ops, err := Diff(live, meta, dialect)
			require.NoError(t, err)
			assert.Empty(t, ops)
		})
	}
}

func TestDiff_Nullability(t *testing.T) {
	desc := model.TypeDescriptor{
		Name: "Profile",
		Fields: []model.FieldDescriptor{
			model.Field("bio", model.Optional("string")),
			model.Field("nick", model.Named("string")),
		},
	}
	meta, err := Extract(desc, nil)
	require.NoError(t, err)

	live := model.LiveSchema{TableName: "profiles", Columns: []model.LiveColumn{
		{Name: "bio", SqlType: "VARCHAR", Nullable: false},
		{Name: "nick", SqlType: "VARCHAR", Nullable: true},
	}}

	t.Run("pgsql", func(t *testing.T) {
		ops, err := Diff(live, meta, "pgsql")
		require.NoError(t, err)
		require.Len(t, ops, 2)

		assert.Equal(t, model.ChangeDropNotNull, ops[0].Type)
		assert.Equal(t, model.SeverityInfo, ops[0].Severity)
		assert.Equal(t, `ALTER TABLE "profiles" ALTER COLUMN "bio" DROP NOT NULL;`, ops[0].Sql)

		assert.Equal(t, model.ChangeSetNotNull, ops[1].Type)
		assert.Equal(t, model.SeverityDanger, ops[1].Severity)
		assert.Equal(t, `ALTER TABLE "profiles" ALTER COLUMN "nick" SET NOT NULL;`, ops[1].Sql)
		assert.False(t, ops[1].IsAdvisory())
	})

	t.Run("mysql", func(t *testing.T) {
		ops, err := Diff(live, meta, "mysql")
		require.NoError(t, err)
		require.Len(t, ops, 2)
		assert.Equal(t, model.SeverityInfo, ops[0].Severity)
		assert.Equal(t, model.SeverityDanger, ops[1].Severity)
		assert.True(t, ops[1].IsAdvisory())
		assert.Contains(t, ops[1].Reason, "existing nulls")
	})
}

func TestDiff_TypeChangeCoOccurs(t *testing.T) {
	desc := model.TypeDescriptor{
		Name: "Metric",
		Fields: []model.FieldDescriptor{
			model.Field("value", model.Named("float")),
		},
	}
	meta, err := Extract(desc, nil)
	require.NoError(t, err)

	live := model.LiveSchema{TableName: "metrics", Columns: []model.LiveColumn{
		{Name: "value", SqlType: "varchar", Nullable: true, Length: 20},
	}}
	ops, err := Diff(live, meta, "pgsql")
	require.NoError(t, err)
	require.Len(t, ops, 2)

	assert.Equal(t, model.ChangeAlterType, ops[0].Type)
	assert.Equal(t, model.SeverityWarning, ops[0].Severity)
	assert.Equal(t, `ALTER TABLE "metrics" ALTER COLUMN "value" TYPE DOUBLE PRECISION;`, ops[0].Sql)
	assert.Equal(t, "type change VARCHAR -> DOUBLE PRECISION for value", ops[0].Reason)
	assert.Equal(t, model.ChangeSetNotNull, ops[1].Type)
	assert.Equal(t, model.SeverityDanger, model.MaxSeverity(ops))
}

func TestDiff_UnsupportedDialect(t *testing.T) {
	_, err := Diff(model.LiveSchema{}, userMeta(t), "mssql")
	assert.Equal(t, model.CodeUnsupportedDialect, gerror.Code(err))
}
