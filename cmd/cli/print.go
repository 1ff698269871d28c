package cli

import (
	"fmt"

	"github.com/arnavsurve/tsconfig-init/pkg/tsconfig"
)

type PrintCmd struct {
	Answers Answers `embed:""`
}

func (c *PrintCmd) Run(rc *runContext) error {
	cmdLogger := rc.logger.With().Str("command", "print").Logger()

	opts, err := c.Answers.resolve(rc.cwd, cmdLogger)
	if err != nil {
		return err
	}
	logOptions(cmdLogger, opts)

	data, err := tsconfig.Render(tsconfig.Generate(opts))
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(rc.env.Stdout, "%s\n", data); err != nil {
		return fmt.Errorf("writing tsconfig to stdout: %w", err)
	}
	return nil
}
