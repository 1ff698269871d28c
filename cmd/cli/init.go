package cli

import (
	"fmt"

	"github.com/arnavsurve/tsconfig-init/pkg/prompt"
	"github.com/arnavsurve/tsconfig-init/pkg/tsconfig"
)

type InitCmd struct {
	Answers Answers `embed:""`

	Yes   bool `help:"Use the flag values without prompting." short:"y" env:"TSCONFIG_INIT_YES"`
	Force bool `help:"Overwrite an existing tsconfig.json." env:"TSCONFIG_INIT_FORCE"`
}

func (c *InitCmd) Run(rc *runContext) error {
	cmdLogger := rc.logger.With().Str("command", "init").Logger()

	opts, err := c.Answers.resolve(rc.cwd, cmdLogger)
	if err != nil {
		return err
	}

	if c.Yes || !rc.env.Interactive {
		cmdLogger.Debug().Bool("interactive", rc.env.Interactive).Msg("Skipping prompts")
	} else {
		opts, err = askOptions(prompt.New(rc.env.Stdin, rc.env.Stderr), opts)
		if err != nil {
			return fmt.Errorf("prompting for project options: %w", err)
		}
	}
	logOptions(cmdLogger, opts)

	if err := rc.ctx.Err(); err != nil {
		return err
	}

	projectDir := tsconfig.ProjectDir(rc.cwd, opts.ProjectName)
	path, err := tsconfig.Write(projectDir, tsconfig.Generate(opts), c.Force)
	if err != nil {
		return err
	}
	cmdLogger.Info().Str("path", path).Msg("Wrote tsconfig.json")

	fmt.Fprintf(rc.env.Stdout, "tsconfig.json has been generated in %s\n", projectDir)
	return nil
}
