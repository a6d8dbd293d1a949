package database

import (
	"strconv"
	"strings"
)

// SplitTypeLabel splits "varchar(100)" into "VARCHAR" and its first parameter, 100.
// The size is 0 when the label carries none.
func SplitTypeLabel(label string) (kind string, size int) {
	label = strings.ToUpper(strings.TrimSpace(label))
	start := strings.Index(label, "(")
	if start < 0 {
		return label, 0
	}
	kind = strings.TrimSpace(label[:start])
	end := strings.Index(label[start:], ")")
	if end < 0 {
		return kind, 0
	}
	param := label[start+1 : start+end]
	if i := strings.Index(param, ","); i >= 0 {
		param = param[:i]
	}
	size, _ = strconv.Atoi(strings.TrimSpace(param))
	if rest := strings.TrimSpace(label[start+end+1:]); rest != "" {
		kind += " " + rest
	}
	return kind, size
}
