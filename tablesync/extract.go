package tablesync

import (
	"strings"

	"github.com/glennliao/schema-sync/model"
	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/text/gstr"
)

// Extract builds the table metadata of desc. registry, which may be nil, is used to
// recognise field types that are themselves registered record types.
func Extract(desc model.TypeDescriptor, registry *model.Registry) (model.TableMetadata, error) {
	meta := model.TableMetadata{
		TableName: desc.TableName,
		Charset:   desc.Charset,
	}
	if meta.TableName == "" {
		meta.TableName = TableName(desc.Name)
	}

	seen := map[string]string{}
	for _, field := range desc.Fields {
		if field.Static {
			continue
		}
		col := extractColumn(field, registry)
		if other, ok := seen[col.ColumnName]; ok {
			return model.TableMetadata{}, gerror.NewCodef(model.CodeDuplicateColumn,
				"%s: fields %s and %s both map to column %s", desc.Name, other, field.Name, col.ColumnName)
		}
		if col.HasDefault() && !finiteDefault(col.Default) {
			return model.TableMetadata{}, gerror.NewCodef(model.CodeInvalidDescriptor,
				"%s: default of field %s is not a finite number", desc.Name, field.Name)
		}
		seen[col.ColumnName] = field.Name
		meta.Columns = append(meta.Columns, col)
	}
	return meta, nil
}

func extractColumn(field model.FieldDescriptor, registry *model.Registry) model.ColumnMetadata {
	typeName, nullable := field.Type.Resolve()
	col := model.ColumnMetadata{
		FieldName:  field.Name,
		ColumnName: field.Name,
		TypeName:   typeName,
		Type:       model.Classify(typeName, registry.Resolvable),
		Nullable:   nullable,
	}

	o := field.Override
	if o != nil {
		if o.ColumnName != "" {
			col.ColumnName = o.ColumnName
		}
		col.Length = o.Length
		col.Precision = o.Precision
		col.Scale = o.Scale
		if o.Nullable != nil {
			col.Nullable = *o.Nullable
		}
	}

	// a declared field default wins over the override, even when it is null
	if field.Default != nil {
		col.Default = field.Default
	} else if o != nil && o.Default != nil {
		col.Default = o.Default
	}

	if o != nil && o.Primary != nil {
		col.Primary = *o.Primary
	} else {
		col.Primary = field.Name == "id" && col.Type == model.LogicalInt
	}
	return col
}

// TableName derives a table name from a type name: UserDto -> user_dtos.
// Digits stay attached to the word before them: Base64Blob -> base64_blobs.
func TableName(typeName string) string {
	name := gstr.CaseSnakeFirstUpper(model.ShortName(typeName))
	if !strings.HasSuffix(name, "s") {
		name += "s"
	}
	return name
}
