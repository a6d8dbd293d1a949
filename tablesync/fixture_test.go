package tablesync

import (
	"github.com/glennliao/schema-sync/model"
	"github.com/gogf/gf/v2/container/gvar"
)

func userDto() model.TypeDescriptor {
	return model.TypeDescriptor{
		Name: `App\Dto\UserDto`,
		Fields: []model.FieldDescriptor{
			model.Field("id", model.Named("int")),
			model.Field("email", model.Named("string")).WithOverride(model.ColumnOverride{Length: 150}),
			model.Field("name", model.Optional("string")).WithDefault(nil),
			model.Field("is_active", model.Named("bool")).WithDefault(true),
			model.Field("meta", model.Named("array")).WithDefault([]any{}),
		},
	}
}

func gvarOf(v any) *gvar.Var {
	return gvar.New(v)
}
