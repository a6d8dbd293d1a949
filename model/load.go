package model

import (
	"github.com/gogf/gf/v2/container/gvar"
	"github.com/gogf/gf/v2/encoding/gjson"
	"github.com/gogf/gf/v2/errors/gerror"
)

// LoadDescriptors reads type descriptors from json, yaml, toml, ini or xml content:
//
//	types:
//	  - name: UserDto
//	    fields:
//	      - name: email
//	        type: string
//	        column: {length: 150}
//	      - name: is_active
//	        type: bool
//	        default: true
func LoadDescriptors(content []byte) ([]TypeDescriptor, error) {
	j, err := gjson.LoadContent(content)
	if err != nil {
		return nil, gerror.WrapCode(CodeInvalidDescriptor, err, "load descriptors")
	}

	var list []TypeDescriptor
	for i, item := range j.Get("types").Array() {
		t := gjson.New(item)
		desc := TypeDescriptor{
			Name:      t.Get("name").String(),
			TableName: t.Get("tableName").String(),
			Charset:   t.Get("charset").String(),
		}
		if desc.Name == "" {
			return nil, gerror.NewCodef(CodeInvalidDescriptor, "types[%d]: name is required", i)
		}

		for k, fieldItem := range t.Get("fields").Array() {
			f := gjson.New(fieldItem)
			field := FieldDescriptor{
				Name:   f.Get("name").String(),
				Type:   ParseSignature(f.Get("type").String()),
				Static: f.Get("static").Bool(),
			}
			if field.Name == "" {
				return nil, gerror.NewCodef(CodeInvalidDescriptor, "%s.fields[%d]: name is required", desc.Name, k)
			}
			if f.Contains("default") {
				field.Default = gvar.New(f.Get("default").Val())
			}
			if f.Contains("column") {
				field.Override = loadOverride(gjson.New(f.Get("column").Val()))
			}
			desc.Fields = append(desc.Fields, field)
		}
		list = append(list, desc)
	}
	return list, nil
}

func loadOverride(c *gjson.Json) *ColumnOverride {
	o := &ColumnOverride{
		ColumnName: c.Get("name").String(),
		Length:     c.Get("length").Int(),
		Precision:  c.Get("precision").Int(),
		Scale:      c.Get("scale").Int(),
	}
	if c.Contains("nullable") {
		o.Nullable = Bool(c.Get("nullable").Bool())
	}
	if c.Contains("primary") {
		o.Primary = Bool(c.Get("primary").Bool())
	}
	if c.Contains("default") {
		o.Default = gvar.New(c.Get("default").Val())
	}
	return o
}
