package actions

import (
	"strings"

	"gitflow.dev/gitflow/internal/config"
	"gitflow.dev/gitflow/internal/runtime"
)

// ConfigAction prints the effective workflow configuration
func ConfigAction(ctx *runtime.Context) error {
	rendered, err := ctx.Engine.Workflow().Marshal()
	if err != nil {
		return err
	}
	ctx.Splog.Debug("read from %s", config.FileName)
	ctx.Splog.Info(strings.TrimRight(rendered, "\n"))
	return nil
}
