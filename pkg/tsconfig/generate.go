// Package tsconfig builds tsconfig.json documents from a handful of project answers.
package tsconfig

import (
	"encoding/json"
	"fmt"
)

// Config is the top-level tsconfig.json document.
type Config struct {
	CompilerOptions map[string]any `json:"compilerOptions"`
}

// Generate builds the compiler options for opts.
func Generate(opts Options) Config {
	co := map[string]any{
		"esModuleInterop":      true,
		"skipLibCheck":         true,
		"target":               "es2022",
		"allowJs":              true,
		"resolveJsonModule":    true,
		"moduleDetection":      "force",
		"isolatedModules":      true,
		"verbatimModuleSyntax": true,
	}

	switch opts.Strictness {
	case StrictnessStrict:
		co["strict"] = true
		co["noUncheckedIndexedAccess"] = true
		co["noImplicitOverride"] = true
	case StrictnessOn:
		co["strict"] = true
	}

	if opts.Transpile {
		co["module"] = "NodeNext"
		co["outDir"] = "dist"
		co["sourceMap"] = true
	} else {
		co["module"] = "preserve"
		co["noEmit"] = true
	}

	if opts.Library {
		co["declaration"] = true
	}

	if opts.Monorepo {
		co["composite"] = true
		co["declarationMap"] = true
	}

	if opts.DOM {
		co["lib"] = []string{"es2022", "dom", "dom.iterable"}
	} else {
		co["lib"] = []string{"es2022"}
	}

	return Config{CompilerOptions: co}
}

// Render pretty-prints cfg with two-space indentation and sorted keys.
func Render(cfg Config) ([]byte, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding tsconfig: %w", err)
	}
	return data, nil
}
