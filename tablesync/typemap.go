package tablesync

import (
	"github.com/glennliao/schema-sync/database"
	_ "github.com/glennliao/schema-sync/database/mysql"
	_ "github.com/glennliao/schema-sync/database/pgsql"
	"github.com/glennliao/schema-sync/model"
)

// MapType maps a logical type onto dialect. length is honoured for strings, 0 selects
// the default length of 255.
func MapType(t model.LogicalType, dialect string, length int) (model.SqlType, error) {
	d, err := database.Get(dialect)
	if err != nil {
		return model.SqlType{}, err
	}
	return d.GetSqlType(t, length), nil
}
