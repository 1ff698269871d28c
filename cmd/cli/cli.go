package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/arnavsurve/tsconfig-init/pkg/types"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

const appName = "tsconfig-init"

// Version is stamped at build time with -ldflags "-X .../cmd/cli.Version=...".
var Version = "dev"

// CLI is the kong grammar of the program.
type CLI struct {
	Verbose bool             `help:"Show debug logging on stderr." short:"v" env:"TSCONFIG_INIT_VERBOSE"`
	LogDir  string           `help:"Also write JSON logs to DIR/<run-id>.json." placeholder:"DIR" env:"TSCONFIG_INIT_LOG_DIR"`
	Version kong.VersionFlag `help:"Print version and exit."`

	Init  InitCmd  `cmd:"" default:"withargs" help:"Initialize a TypeScript project (default)."`
	Print PrintCmd `cmd:"" help:"Print the generated tsconfig.json instead of writing it."`
}

// Env is the slice of the operating system a command run sees.
type Env struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Getwd  func() (string, error)
	// Interactive is false when stdin is not a terminal; prompts are skipped then.
	Interactive bool
}

// DefaultEnv wires Env to the current process.
func DefaultEnv() *Env {
	fd := os.Stdin.Fd()
	return &Env{
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Getwd:       os.Getwd,
		Interactive: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}
}

// runContext is bound into every command's Run method by kong.
type runContext struct {
	ctx    context.Context
	env    *Env
	logger types.Logger
	cwd    string
}

// Run executes the command line of the current process.
func Run(ctx context.Context) error {
	return Execute(ctx, DefaultEnv(), os.Args[1:])
}

// exitRequest carries a kong exit (--help, --version) back to Execute.
type exitRequest struct {
	code int
}

// Execute parses args and runs the selected command against env.
func Execute(ctx context.Context, env *Env, args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			req, ok := r.(exitRequest)
			if !ok {
				panic(r)
			}
			if req.code != 0 {
				err = fmt.Errorf("%s exited with status %d", appName, req.code)
			}
		}
	}()

	cwd, err := env.Getwd()
	if err != nil {
		return fmt.Errorf("determining working directory: %w", err)
	}

	// .env has to be in the environment before kong resolves env tags.
	dotenvErr := godotenv.Load(filepath.Join(cwd, ".env"))

	var grammar CLI
	parser, err := kong.New(&grammar,
		kong.Name(appName),
		kong.Description("Initialize a TypeScript project."),
		kong.Writers(env.Stdout, env.Stderr),
		kong.Exit(func(code int) { panic(exitRequest{code: code}) }),
		kong.Vars{"version": Version},
	)
	if err != nil {
		return fmt.Errorf("building command line parser: %w", err)
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return fmt.Errorf("parsing arguments: %w", err)
	}

	logger, router, runID, err := newLogger(env, grammar.Verbose, resolvePath(cwd, grammar.LogDir))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := router.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing log sinks: %w", cerr)
		}
	}()

	switch {
	case dotenvErr == nil:
		logger.Debug().Msg("Loaded .env")
	case errors.Is(dotenvErr, fs.ErrNotExist):
		logger.Debug().Msg("No .env file found, relying on existing ENV")
	default:
		logger.Warn().Err(dotenvErr).Msg("Could not load .env")
	}

	logger.Debug().Str("command", kctx.Command()).Str("run_id", runID).Msg("Starting")

	return kctx.Run(&runContext{
		ctx:    ctx,
		env:    env,
		logger: logger,
		cwd:    cwd,
	})
}

// resolvePath makes a user-supplied path relative to cwd. Empty stays empty.
func resolvePath(cwd, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(cwd, p)
}
