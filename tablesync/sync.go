package tablesync

import (
	"context"

	"github.com/glennliao/schema-sync/database"
	"github.com/glennliao/schema-sync/model"
	"github.com/gogf/gf/v2/database/gdb"
	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/frame/g"
)

type Syncer struct {
	Registry *model.Registry
}

func NewSyncer(types ...model.TypeDescriptor) *Syncer {
	return &Syncer{Registry: model.NewRegistry(types...)}
}

// Plan is what it takes to bring one table in line with its descriptor: either a
// CREATE TABLE statement or a list of diff operations.
type Plan struct {
	TableName  string
	Create     string
	Operations []model.DiffOperation
}

func (p Plan) HasChanges() bool {
	return p.Create != "" || len(p.Operations) > 0
}

// Statements returns the executable statements of the plan, advisory notes excluded.
func (p Plan) Statements() []string {
	if p.Create != "" {
		return []string{p.Create}
	}
	var list []string
	for _, op := range p.Operations {
		if !op.IsAdvisory() {
			list = append(list, op.Sql)
		}
	}
	return list
}

// Extract resolves a registered type and builds its table metadata.
func (s *Syncer) Extract(name string) (model.TableMetadata, error) {
	desc, ok := s.Registry.Lookup(name)
	if !ok {
		return model.TableMetadata{}, gerror.NewCodef(model.CodeDescriptorNotFound, "type %s not found (register it first)", name)
	}
	return Extract(desc, s.Registry)
}

func (s *Syncer) GenerateCreate(ctx context.Context, name string, dialect string) (string, error) {
	if _, err := database.Get(dialect); err != nil {
		return "", err
	}
	meta, err := s.Extract(name)
	if err != nil {
		return "", err
	}
	createSql, err := CreateTableSql(meta, dialect)
	if err != nil {
		return "", err
	}
	g.Log().Debugf(ctx, "[tablesync] %s(%s): %s", name, dialect, createSql)
	return createSql, nil
}

func (s *Syncer) GenerateDiff(ctx context.Context, name string, live model.LiveSchema, dialect string) ([]model.DiffOperation, error) {
	if _, err := database.Get(dialect); err != nil {
		return nil, err
	}
	meta, err := s.Extract(name)
	if err != nil {
		return nil, err
	}
	ops, err := Diff(live, meta, dialect)
	if err != nil {
		return nil, err
	}
	for _, op := range ops {
		g.Log().Debugf(ctx, "[tablesync] %s(%s) %s: %s", name, dialect, op.Severity, op.Sql)
	}
	return ops, nil
}

// Plan loads the live snapshot of the type's table through db and compares it with the
// descriptor. A table the loader did not find gets a CREATE TABLE statement.
func (s *Syncer) Plan(ctx context.Context, db gdb.DB, name string, dialect string) (plan Plan, err error) {
	d, err := database.Get(dialect)
	if err != nil {
		return
	}
	meta, err := s.Extract(name)
	if err != nil {
		return
	}
	plan.TableName = meta.TableName

	live, err := d.LoadSchema(ctx, db, meta.TableName)
	if err != nil {
		return plan, gerror.Wrapf(err, "introspect %s", meta.TableName)
	}
	return planFor(ctx, meta, live, dialect)
}

func planFor(ctx context.Context, meta model.TableMetadata, live model.LiveSchema, dialect string) (plan Plan, err error) {
	plan.TableName = meta.TableName
	if !live.Exists() {
		plan.Create, err = CreateTableSql(meta, dialect)
		if err == nil {
			g.Log().Info(ctx, "[tablesync]", plan.Create)
		}
		return
	}

	plan.Operations, err = Diff(live, meta, dialect)
	if err != nil {
		return
	}
	for _, op := range plan.Operations {
		g.Log().Infof(ctx, "[tablesync] %s %s", op.Severity, op.Sql)
	}
	if model.MaxSeverity(plan.Operations) == model.SeverityDanger {
		g.Log().Warningf(ctx, "[tablesync] %s: plan contains destructive operations, review before applying", meta.TableName)
	}
	return
}
