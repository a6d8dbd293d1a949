package model

import (
	"strings"

	"github.com/gogf/gf/v2/container/gvar"
)

// ColumnOverride carries the per-field column options. Zero values mean "not set".
type ColumnOverride struct {
	ColumnName string
	Length     int
	Precision  int // reserved
	Scale      int // reserved
	Nullable   *bool
	Default    *gvar.Var
	Primary    *bool
}

type FieldDescriptor struct {
	Name string
	Type TypeSignature
	// Default is the field-level default literal. A non-nil Var holding nil is an
	// explicit null default.
	Default  *gvar.Var
	Static   bool // type-level data, never mapped to a column
	Override *ColumnOverride
}

// TypeDescriptor is the registered description of a record type.
type TypeDescriptor struct {
	Name      string // may be qualified, eg app/model.UserDto
	TableName string // overrides the derived table name
	Charset   string
	Fields    []FieldDescriptor
}

// ShortName strips any package or namespace qualifier from the type name.
func (d TypeDescriptor) ShortName() string {
	return ShortName(d.Name)
}

func ShortName(name string) string {
	if i := strings.LastIndexAny(name, `./\`); i >= 0 {
		return name[i+1:]
	}
	return name
}

// Field starts a field descriptor; the With* helpers fill it in.
func Field(name string, sig TypeSignature) FieldDescriptor {
	return FieldDescriptor{Name: name, Type: sig}
}

func (f FieldDescriptor) WithDefault(v any) FieldDescriptor {
	f.Default = gvar.New(v)
	return f
}

func (f FieldDescriptor) WithOverride(o ColumnOverride) FieldDescriptor {
	f.Override = &o
	return f
}

func (f FieldDescriptor) AsStatic() FieldDescriptor {
	f.Static = true
	return f
}

func Bool(v bool) *bool {
	return &v
}
