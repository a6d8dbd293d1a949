package main

import (
	_ "github.com/gogf/gf/contrib/drivers/mysql/v2"
	_ "github.com/gogf/gf/contrib/drivers/pgsql/v2"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/os/gctx"
)

func main() {
	ctx := gctx.GetInitCtx()
	if err := Main.AddCommand(&Create, &Diff); err != nil {
		g.Log().Fatal(ctx, err)
	}
	Main.Run(ctx)
}
