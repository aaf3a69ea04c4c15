package actions

import (
	"gitflow.dev/gitflow/internal/runtime"
)

// InitAction creates develop from master if needed and switches to it
func InitAction(ctx *runtime.Context) error {
	return ctx.Engine.Initialize(ctx)
}
