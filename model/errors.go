package model

import "github.com/gogf/gf/v2/errors/gcode"

var (
	CodeDescriptorNotFound = gcode.New(10001, "descriptor not found", nil)
	CodeUnsupportedDialect = gcode.New(10002, "unsupported dialect", nil)
	CodeDuplicateColumn    = gcode.New(10003, "duplicate column name", nil)
	CodeInvalidDescriptor  = gcode.New(10004, "invalid descriptor", nil)
)
