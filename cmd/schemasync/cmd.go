package main

import (
	"context"
	"fmt"

	"github.com/glennliao/schema-sync/model"
	"github.com/glennliao/schema-sync/tablesync"
	"github.com/gogf/gf/v2/errors/gcode"
	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/os/gcfg"
	"github.com/gogf/gf/v2/os/gcmd"
	"github.com/gogf/gf/v2/os/gfile"
)

var commonArguments = []gcmd.Argument{
	{Name: "file", Short: "f", Brief: "descriptor file, json/yaml/toml"},
	{Name: "type", Short: "t", Brief: "type name, full or short"},
	{Name: "dialect", Short: "d", Brief: "mysql or pgsql, defaults to schemasync.dialect in config"},
	{Name: "config", Short: "c", Brief: "config file"},
}

var Main = gcmd.Command{
	Name:  "schemasync",
	Usage: "schemasync COMMAND [OPTION]",
	Brief: "generate CREATE TABLE and ALTER TABLE statements from type descriptors",
}

var Create = gcmd.Command{
	Name:      "create",
	Usage:     "schemasync create -f descriptors.yaml -t UserDto -d mysql",
	Brief:     "print the CREATE TABLE statement of a type",
	Arguments: commonArguments,
	Func: func(ctx context.Context, parser *gcmd.Parser) error {
		syncer, name, dialect, err := prepare(ctx, parser)
		if err != nil {
			return err
		}
		createSql, err := syncer.GenerateCreate(ctx, name, dialect)
		if err != nil {
			return err
		}
		fmt.Println(createSql)
		return nil
	},
}

var Diff = gcmd.Command{
	Name:  "diff",
	Usage: "schemasync diff -f descriptors.yaml -t UserDto -d pgsql -g default",
	Brief: "compare a type with its live table and print the migration plan",
	Arguments: append(commonArguments,
		gcmd.Argument{Name: "group", Short: "g", Brief: "database config group"},
	),
	Func: func(ctx context.Context, parser *gcmd.Parser) error {
		syncer, name, dialect, err := prepare(ctx, parser)
		if err != nil {
			return err
		}
		plan, err := syncer.Plan(ctx, g.DB(parser.GetOpt("group").String()), name, dialect)
		if err != nil {
			return err
		}
		if !plan.HasChanges() {
			fmt.Printf("-- %s is up to date\n", plan.TableName)
			return nil
		}
		if plan.Create != "" {
			fmt.Println(plan.Create)
			return nil
		}
		for _, op := range plan.Operations {
			fmt.Printf("-- [%s] %s\n%s\n", op.Severity, op.Reason, op.Sql)
		}
		return nil
	},
}

func prepare(ctx context.Context, parser *gcmd.Parser) (syncer *tablesync.Syncer, name, dialect string, err error) {
	if configFile := parser.GetOpt("config").String(); configFile != "" {
		if adapter, ok := g.Cfg().GetAdapter().(*gcfg.AdapterFile); ok {
			adapter.SetFileName(configFile)
		}
	}

	file := parser.GetOpt("file").String()
	name = parser.GetOpt("type").String()
	if file == "" || name == "" {
		return nil, "", "", gerror.NewCode(gcode.CodeMissingParameter, "both --file and --type are required")
	}

	dialect = parser.GetOpt("dialect").String()
	if dialect == "" {
		dialect = g.Cfg().MustGet(ctx, "schemasync.dialect").String()
	}

	syncer, err = loadSyncer(ctx, file)
	return syncer, name, dialect, err
}

func loadSyncer(ctx context.Context, file string) (*tablesync.Syncer, error) {
	if !gfile.Exists(file) {
		return nil, gerror.NewCodef(gcode.CodeInvalidParameter, "descriptor file %s does not exist", file)
	}
	types, err := model.LoadDescriptors(gfile.GetBytes(file))
	if err != nil {
		return nil, gerror.Wrapf(err, "load %s", file)
	}
	g.Log().Debugf(ctx, "[tablesync] loaded %d types from %s", len(types), file)
	return tablesync.NewSyncer(types...), nil
}
