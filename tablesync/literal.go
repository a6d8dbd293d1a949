package tablesync

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/gogf/gf/v2/container/gvar"
	"github.com/gogf/gf/v2/encoding/gjson"
	"github.com/gogf/gf/v2/util/gconv"
)

var slashReplacer = strings.NewReplacer(`\`, `\\`, `'`, `\'`, `"`, `\"`, "\x00", `\0`)

// ExportDefault renders v as a SQL literal for a DEFAULT clause.
func ExportDefault(v any) string {
	if gv, ok := v.(*gvar.Var); ok {
		v = gv.Val()
	}
	switch value := v.(type) {
	case nil:
		return "NULL"
	case string:
		return quote(value)
	case bool:
		if value {
			return "1"
		}
		return "0"
	case float32:
		return exportFloat(float64(value))
	case float64:
		return exportFloat(value)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return gconv.String(value)
	case json.Number:
		return value.String()
	}
	return quote(gjson.MustEncodeString(v))
}

// exportFloat quotes NaN and the infinities, which have no bare SQL spelling.
func exportFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return quote("NaN")
	case math.IsInf(f, 1):
		return quote("Infinity")
	case math.IsInf(f, -1):
		return quote("-Infinity")
	}
	return gconv.String(f)
}

// finiteDefault reports whether v is not a NaN or infinite float.
func finiteDefault(v any) bool {
	if gv, ok := v.(*gvar.Var); ok {
		v = gv.Val()
	}
	var f float64
	switch value := v.(type) {
	case float32:
		f = float64(value)
	case float64:
		f = value
	default:
		return true
	}
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func quote(s string) string {
	return "'" + slashReplacer.Replace(s) + "'"
}
