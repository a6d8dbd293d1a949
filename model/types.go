package model

import "strings"

type LogicalType string

const (
	LogicalInt             LogicalType = "int"
	LogicalFloat           LogicalType = "float"
	LogicalBool            LogicalType = "bool"
	LogicalString          LogicalType = "string"
	LogicalCollection      LogicalType = "collection"
	LogicalObjectReference LogicalType = "object-reference"
	LogicalUnknown         LogicalType = "unknown"
)

var scalarTypeMap = map[string]LogicalType{
	"int":     LogicalInt,
	"integer": LogicalInt,
	"int8":    LogicalInt,
	"int16":   LogicalInt,
	"int32":   LogicalInt,
	"int64":   LogicalInt,
	"uint":    LogicalInt,
	"uint8":   LogicalInt,
	"uint16":  LogicalInt,
	"uint32":  LogicalInt,
	"uint64":  LogicalInt,
	"float":   LogicalFloat,
	"double":  LogicalFloat,
	"float32": LogicalFloat,
	"float64": LogicalFloat,
	"bool":    LogicalBool,
	"boolean": LogicalBool,
	"string":  LogicalString,
	"array":   LogicalCollection,
	"list":    LogicalCollection,
	"object":  LogicalObjectReference,
	"mixed":   LogicalUnknown,
}

// Classify maps a declared type name onto a logical type.
//
// Names that are not scalars are treated as structured references when they end in
// "Interface" or "able", or when resolvable reports them as a known complex type.
// Everything else is unknown. resolvable may be nil.
func Classify(typeName string, resolvable func(string) bool) LogicalType {
	if typeName == "" {
		return LogicalUnknown
	}
	if v, exists := scalarTypeMap[strings.ToLower(typeName)]; exists {
		return v
	}
	if strings.HasPrefix(typeName, "[]") || strings.HasPrefix(typeName, "map[") {
		return LogicalCollection
	}
	if strings.HasSuffix(typeName, "Interface") || strings.HasSuffix(typeName, "able") {
		return LogicalObjectReference
	}
	if resolvable != nil && resolvable(typeName) {
		return LogicalObjectReference
	}
	return LogicalUnknown
}

type SignatureKind int

const (
	SigAbsent SignatureKind = iota
	SigNamed
	SigUnion
)

// TypeSignature is the declared type of a field.
type TypeSignature struct {
	Kind     SignatureKind
	Names    []string
	Nullable bool // ?T, named signatures only
}

func Absent() TypeSignature {
	return TypeSignature{Kind: SigAbsent}
}

func Named(name string) TypeSignature {
	return TypeSignature{Kind: SigNamed, Names: []string{name}}
}

// Optional is a nullable named type, ?T.
func Optional(name string) TypeSignature {
	return TypeSignature{Kind: SigNamed, Names: []string{name}, Nullable: true}
}

func Union(members ...string) TypeSignature {
	return TypeSignature{Kind: SigUnion, Names: members}
}

// ParseSignature reads the textual form of a signature: "" (absent), "?T", "A|B|null" or "T".
func ParseSignature(s string) TypeSignature {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return Absent()
	case strings.Contains(s, "|"):
		var members []string
		for _, p := range strings.Split(s, "|") {
			if p = strings.TrimSpace(p); p != "" {
				members = append(members, p)
			}
		}
		return Union(members...)
	case strings.HasPrefix(s, "?"):
		return Optional(strings.TrimSpace(s[1:]))
	}
	return Named(s)
}

// Resolve returns the effective type name and nullability. A union resolves to its
// first non-null member; when there is none the name is empty and the type nullable.
func (s TypeSignature) Resolve() (typeName string, nullable bool) {
	switch s.Kind {
	case SigNamed:
		if len(s.Names) == 0 || isNull(s.Names[0]) {
			return "", true
		}
		return s.Names[0], s.Nullable || isMixed(s.Names[0])
	case SigUnion:
		for _, name := range s.Names {
			if isNull(name) {
				nullable = true
			} else if typeName == "" {
				typeName = name
			}
		}
		if typeName == "" {
			return "", true
		}
		return typeName, nullable || isMixed(typeName)
	}
	return "", true
}

func (s TypeSignature) String() string {
	switch s.Kind {
	case SigNamed:
		if s.Nullable {
			return "?" + strings.Join(s.Names, "")
		}
		return strings.Join(s.Names, "")
	case SigUnion:
		return strings.Join(s.Names, "|")
	}
	return ""
}

func isNull(name string) bool {
	return strings.EqualFold(name, "null")
}

func isMixed(name string) bool {
	return strings.EqualFold(name, "mixed")
}
