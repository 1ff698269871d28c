package tsconfig_test

import (
	"os"
	"strings"
	"testing"

	"github.com/arnavsurve/tsconfig-init/pkg/tsconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		opts    tsconfig.Options
		want    map[string]any
		missing []string
	}{
		{
			name: "relaxed without transpiling",
			opts: tsconfig.Options{Strictness: tsconfig.StrictnessOff},
			want: map[string]any{
				"module": "preserve",
				"noEmit": true,
				"lib":    []string{"es2022"},
			},
			missing: []string{"strict", "noUncheckedIndexedAccess", "outDir", "sourceMap", "declaration", "composite"},
		},
		{
			name: "balanced transpiled",
			opts: tsconfig.Options{Strictness: tsconfig.StrictnessOn, Transpile: true},
			want: map[string]any{
				"strict":    true,
				"module":    "NodeNext",
				"outDir":    "dist",
				"sourceMap": true,
			},
			missing: []string{"noUncheckedIndexedAccess", "noImplicitOverride", "noEmit"},
		},
		{
			name: "rigorous monorepo library for the browser",
			opts: tsconfig.Options{
				Strictness: tsconfig.StrictnessStrict,
				Transpile:  true,
				Library:    true,
				Monorepo:   true,
				DOM:        true,
			},
			want: map[string]any{
				"strict":                   true,
				"noUncheckedIndexedAccess": true,
				"noImplicitOverride":       true,
				"declaration":              true,
				"composite":                true,
				"declarationMap":           true,
				"lib":                      []string{"es2022", "dom", "dom.iterable"},
			},
		},
		{
			name: "monorepo without library",
			opts: tsconfig.Options{Monorepo: true},
			want: map[string]any{
				"composite":      true,
				"declarationMap": true,
			},
			missing: []string{"declaration"},
		},
	}

	base := map[string]any{
		"esModuleInterop":      true,
		"skipLibCheck":         true,
		"target":               "es2022",
		"allowJs":              true,
		"resolveJsonModule":    true,
		"moduleDetection":      "force",
		"isolatedModules":      true,
		"verbatimModuleSyntax": true,
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			co := tsconfig.Generate(tt.opts).CompilerOptions

			for k, v := range base {
				assert.Equal(t, v, co[k], "base option %s", k)
			}
			for k, v := range tt.want {
				assert.Equal(t, v, co[k], "option %s", k)
			}
			for _, k := range tt.missing {
				assert.NotContains(t, co, k)
			}
		})
	}
}

func TestRender_DefaultOptions(t *testing.T) {
	want, err := os.ReadFile("testdata/default.json")
	require.NoError(t, err)

	got, err := tsconfig.Render(tsconfig.Generate(tsconfig.DefaultOptions()))
	require.NoError(t, err)

	assert.Equal(t, strings.TrimSuffix(string(want), "\n"), string(got))
}

func TestParseStrictness(t *testing.T) {
	tests := []struct {
		in      string
		want    tsconfig.Strictness
		wantErr bool
	}{
		{in: "relaxed", want: tsconfig.StrictnessOff},
		{in: "off", want: tsconfig.StrictnessOff},
		{in: "Balanced", want: tsconfig.StrictnessOn},
		{in: " rigorous ", want: tsconfig.StrictnessStrict},
		{in: "strict", want: tsconfig.StrictnessStrict},
		{in: "paranoid", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := tsconfig.ParseStrictness(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, tsconfig.ErrUnknownStrictness)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()), "String round-trips")
		})
	}
}

func TestStrictnessFromIndex(t *testing.T) {
	for i := range tsconfig.StrictnessLabels {
		s, err := tsconfig.StrictnessFromIndex(i)
		require.NoError(t, err)
		assert.Equal(t, tsconfig.Strictness(i), s)
	}

	_, err := tsconfig.StrictnessFromIndex(len(tsconfig.StrictnessLabels))
	assert.ErrorIs(t, err, tsconfig.ErrUnknownStrictness)
	_, err = tsconfig.StrictnessFromIndex(-1)
	assert.ErrorIs(t, err, tsconfig.ErrUnknownStrictness)
}

func mustParse(t *testing.T, s string) tsconfig.Strictness {
	t.Helper()
	got, err := tsconfig.ParseStrictness(s)
	require.NoError(t, err)
	return got
}
