package tablesync

import "strings"

// parseDdlTag splits `size:32;not null;default:'a:b'` into options. Keys are
// normalised (`NOT NULL`, `notnull` -> `not null`); flags without a value map to "true".
func parseDdlTag(tag string) map[string]string {
	options := make(map[string]string)
	for _, str := range strings.Split(tag, ";") {
		x := strings.Split(str, ":")
		key := strings.TrimSpace(x[0])
		if key == "" {
			continue
		}
		switch strings.ToLower(key) {
		case "not null", "notnull":
			key = "not null"
		case "null":
			key = "null"
		case "primarykey", "primary":
			key = "primaryKey"
		}
		if len(x) > 1 {
			options[key] = strings.Join(x[1:], ":")
		} else {
			options[key] = "true"
		}
	}
	return options
}
