package cli

import (
	"fmt"

	"github.com/arnavsurve/tsconfig-init/pkg/prompt"
	"github.com/arnavsurve/tsconfig-init/pkg/tsconfig"
	"github.com/arnavsurve/tsconfig-init/pkg/types"
)

// Answers are the project questions as flags. A preset, when given, wins over
// the flags for every key it sets.
type Answers struct {
	Name       string `help:"Project name; '.' is the current directory." default:"." env:"TSCONFIG_INIT_NAME"`
	Strictness string `help:"Compiler strictness: relaxed, balanced or rigorous." enum:"relaxed,balanced,rigorous" default:"balanced" env:"TSCONFIG_INIT_STRICTNESS"`
	Transpile  bool   `help:"Transpile using tsc." negatable:"" default:"true" env:"TSCONFIG_INIT_TRANSPILE"`
	Library    bool   `help:"Build a library." env:"TSCONFIG_INIT_LIBRARY"`
	Monorepo   bool   `help:"Build a library inside a monorepo." env:"TSCONFIG_INIT_MONOREPO"`
	DOM        bool   `name:"dom" help:"Target a DOM (browser) environment." env:"TSCONFIG_INIT_DOM"`
	Preset     string `help:"YAML file with answers." placeholder:"FILE" env:"TSCONFIG_INIT_PRESET"`
}

func (a *Answers) resolve(cwd string, logger types.Logger) (tsconfig.Options, error) {
	strictness, err := tsconfig.ParseStrictness(a.Strictness)
	if err != nil {
		return tsconfig.Options{}, err
	}

	opts := tsconfig.Options{
		ProjectName: a.Name,
		Strictness:  strictness,
		Transpile:   a.Transpile,
		Library:     a.Library,
		Monorepo:    a.Monorepo,
		DOM:         a.DOM,
	}

	if a.Preset == "" {
		return opts, nil
	}

	path := resolvePath(cwd, a.Preset)
	preset, err := tsconfig.LoadPreset(path)
	if err != nil {
		return tsconfig.Options{}, fmt.Errorf("loading preset: %w", err)
	}
	logger.Debug().Str("preset", path).Msg("Applying preset")
	return preset.Apply(opts), nil
}

// askOptions walks through the questions, offering defaults as the suggested answers.
func askOptions(p *prompt.Prompter, defaults tsconfig.Options) (tsconfig.Options, error) {
	name, err := p.Input("What is the name of your project?", defaults.ProjectName)
	if err != nil {
		return defaults, err
	}

	idx, err := p.Select("How strict should the typescript compiler be?", tsconfig.StrictnessLabels, int(defaults.Strictness))
	if err != nil {
		return defaults, err
	}
	strictness, err := tsconfig.StrictnessFromIndex(idx)
	if err != nil {
		return defaults, err
	}

	transpile, err := p.Confirm("Are you transpiling using tsc?", defaults.Transpile)
	if err != nil {
		return defaults, err
	}

	library, err := p.Confirm("Are you building a library?", defaults.Library)
	if err != nil {
		return defaults, err
	}

	monorepo, err := p.Confirm("Are you building for a library in a monorepo?", defaults.Monorepo)
	if err != nil {
		return defaults, err
	}

	dom, err := p.Confirm("Is your project for a dom (browser) environment?", defaults.DOM)
	if err != nil {
		return defaults, err
	}

	return tsconfig.Options{
		ProjectName: name,
		Strictness:  strictness,
		Transpile:   transpile,
		Library:     library,
		Monorepo:    monorepo,
		DOM:         dom,
	}, nil
}

func logOptions(logger types.Logger, opts tsconfig.Options) {
	logger.Debug().
		Str("project", opts.ProjectName).
		Str("strictness", opts.Strictness.String()).
		Bool("transpile", opts.Transpile).
		Bool("library", opts.Library).
		Bool("monorepo", opts.Monorepo).
		Bool("dom", opts.DOM).
		Msg("Resolved project options")
}
