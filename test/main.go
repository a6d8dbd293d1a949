package main

import (
	"context"
	"fmt"
	"time"

	"github.com/glennliao/schema-sync/model"
	"github.com/glennliao/schema-sync/tablesync"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/os/gfile"
)

type Access struct {
	tablesync.TableMeta `tableName:"_access" charset:"utf8mb4"`
	Id                  uint32     `ddl:"primaryKey"`
	Debug               int8       `ddl:"not null;default:0"`
	Name                string     `ddl:"size:32;not null"`
	Alias               string     `ddl:"size:32"`
	Get                 string     `ddl:"size:128;not null;default:'LOGIN,OWNER,ADMIN'"`
	Post                string     `ddl:"size:128;not null;default:'LOGIN,OWNER,ADMIN'"`
	CreatedAt           *time.Time `ddl:"not null"`
	FieldsGet           map[string]any
	Detail              string `ddl:"size:512"`
}

func main() {
	ctx := context.TODO()

	access, err := tablesync.DescriptorFromStruct(Access{})
	if err != nil {
		panic(err)
	}

	types, err := model.LoadDescriptors(gfile.GetBytes(gfile.Join(gfile.MainPkgPath(), "descriptors.yaml")))
	if err != nil {
		panic(err)
	}

	syncer := tablesync.NewSyncer(append(types, access)...)

	for _, dialect := range []string{"mysql", "pgsql"} {
		for _, name := range []string{"UserDto", "Access"} {
			createSql, err := syncer.GenerateCreate(ctx, name, dialect)
			if err != nil {
				panic(err)
			}
			fmt.Println(createSql)
		}
	}

	// what an existing users table from an older release would need
	live := model.LiveSchema{
		TableName: "user_dtos",
		Columns: []model.LiveColumn{
			{Name: "email", SqlType: "VARCHAR", Length: 255},
			{Name: "nickname", SqlType: "VARCHAR", Nullable: true, Length: 64},
		},
	}
	ops, err := syncer.GenerateDiff(ctx, "UserDto", live, "pgsql")
	if err != nil {
		panic(err)
	}
	for _, op := range ops {
		g.Log().Infof(ctx, "[%s] %s -- %s", op.Severity, op.Sql, op.Reason)
	}
}
