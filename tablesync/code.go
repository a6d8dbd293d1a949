package tablesync

import (
	"strings"

	"github.com/glennliao/schema-sync/model"
	"github.com/gogf/gf/v2/container/gvar"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/os/gstructs"
	"github.com/gogf/gf/v2/text/gstr"
)

// TableMeta carries table level options when embedded in a struct:
//
//	type Access struct {
//		tablesync.TableMeta `tableName:"_access" charset:"utf8mb4"`
//		Id   uint32 `ddl:"primaryKey"`
//		Name string `ddl:"size:32;not null"`
//	}
type TableMeta g.Meta

// DescriptorFromStruct builds a type descriptor from a struct value once, at
// registration time. Field names are snake cased, pointer fields are nullable and the
// ddl tag fills in the column override: column, size, precision, scale, not null,
// null, default, primaryKey. Fields tagged ddl:"-" are skipped.
func DescriptorFromStruct(object any) (model.TypeDescriptor, error) {
	var desc model.TypeDescriptor

	t, err := gstructs.StructType(object)
	if err != nil {
		return desc, err
	}
	fields, err := gstructs.Fields(gstructs.FieldsInput{
		Pointer:         object,
		RecursiveOption: gstructs.RecursiveOptionEmbedded,
	})
	if err != nil {
		return desc, err
	}

	desc.Name = t.Name()
	desc.TableName = GetTableMeta(object, "tableName").String()
	desc.Charset = GetTableMeta(object, "charset").String()

	for _, field := range fields {
		if !field.IsExported() {
			continue
		}
		tag := parseDdlTag(field.Tag("ddl"))
		if _, skip := tag["-"]; skip {
			continue
		}

		goType := field.Type().String()
		sig := model.Named(strings.TrimPrefix(goType, "*"))
		if strings.HasPrefix(goType, "*") {
			sig = model.Optional(goType[1:])
		}

		fd := model.Field(gstr.CaseSnakeFirstUpper(field.Name()), sig)
		if len(tag) > 0 {
			logicalType := model.Classify(strings.TrimPrefix(goType, "*"), nil)
			fd = fd.WithOverride(tagOverride(tag, logicalType))
		}
		desc.Fields = append(desc.Fields, fd)
	}
	return desc, nil
}

func tagOverride(tag map[string]string, logicalType model.LogicalType) model.ColumnOverride {
	o := model.ColumnOverride{
		ColumnName: tag["column"],
		Length:     gvar.New(tag["size"]).Int(),
		Precision:  gvar.New(tag["precision"]).Int(),
		Scale:      gvar.New(tag["scale"]).Int(),
	}
	if _, ok := tag["not null"]; ok {
		o.Nullable = model.Bool(false)
	} else if _, ok := tag["null"]; ok {
		o.Nullable = model.Bool(true)
	}
	if v, ok := tag["primaryKey"]; ok {
		o.Primary = model.Bool(gvar.New(v).Bool())
	}
	if v, ok := tag["default"]; ok {
		o.Default = typedDefault(v, logicalType)
	}
	return o
}

// typedDefault converts a tag default to the field's type so it renders as a literal
// of the right kind.
func typedDefault(v string, logicalType model.LogicalType) *gvar.Var {
	if strings.EqualFold(v, "null") {
		return gvar.New(nil)
	}
	if len(v) >= 2 && v[0] == '\'' && v[len(v)-1] == '\'' {
		v = v[1 : len(v)-1]
	}
	raw := gvar.New(v)
	switch logicalType {
	case model.LogicalInt:
		return gvar.New(raw.Int64())
	case model.LogicalFloat:
		return gvar.New(raw.Float64())
	case model.LogicalBool:
		return gvar.New(raw.Bool())
	}
	return raw
}

// GetTableMeta reads a tag of the embedded TableMeta field, nil when absent.
func GetTableMeta(object any, key string) *gvar.Var {
	reflectType, err := gstructs.StructType(object)
	if err != nil {
		return nil
	}
	field, ok := reflectType.FieldByName("TableMeta")
	if !ok || field.Type.String() != "tablesync.TableMeta" {
		return nil
	}
	tags := gstructs.ParseTag(string(field.Tag))
	v, ok := tags[key]
	if !ok {
		return nil
	}
	return gvar.New(v)
}
