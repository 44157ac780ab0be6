package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/mccutchen/styledterm/internal/testing/assert"
)

func TestCLI(t *testing.T) {
	testCases := map[string]struct {
		args       []string
		env        map[string]string
		wantErr    bool
		wantStderr string
	}{
		// basic functionality
		"no command": {
			args:       []string{},
			wantErr:    false, // help is shown, no error
			wantStderr: "",
		},
		"help flag works": {
			args:       []string{"--help"},
			wantErr:    false,
			wantStderr: "",
		},
		"version flag works": {
			args:       []string{"--version"},
			wantErr:    false,
			wantStderr: "",
		},
		"subcommand help works": {
			args:       []string{"header", "--help"},
			wantErr:    false,
			wantStderr: "",
		},
		// arg validation
		"invalid command": {
			args:       []string{"invalid"},
			wantErr:    true,
			wantStderr: "Error: unknown command \"invalid\" for \"styledterm\"\nRun 'styledterm --help' for usage.",
		},
		"invalid color flag": {
			args:       []string{"rule", "--color", "invalid"},
			wantErr:    true,
			wantStderr: "Error: --color must be one of: auto, always, never",
		},
		"invalid COLOR env var": {
			args:       []string{"rule"},
			env:        map[string]string{"COLOR": "invalid"},
			wantErr:    true,
			wantStderr: "Error: --color must be one of: auto, always, never",
		},
		"negative width": {
			args:       []string{"rule", "--width", "-1"},
			wantErr:    true,
			wantStderr: "Error: --width/-w must not be negative",
		},
		"invalid header kind": {
			args:       []string{"header", "--kind", "H9", "title"},
			wantErr:    true,
			wantStderr: `Error: --kind/-k must be one of H1, H2, H3, H4, HF, got "H9"`,
		},
		"invalid header align": {
			args:       []string{"header", "--align", "right", "title"},
			wantErr:    true,
			wantStderr: `Error: --align must be one of "center" or "left", got "right"`,
		},
		"invalid header color": {
			args:       []string{"header", "--header-color", "purple", "title"},
			wantErr:    true,
			wantStderr: `Error: invalid --header-color: invalid color name: "purple"`,
		},
		"invalid header color kind": {
			args:       []string{"header", "--header-color", "H7=red", "title"},
			wantErr:    true,
			wantStderr: `Error: invalid --header-color: invalid header kind "H7", expected one of H, H1, H2, H3, H4, HF`,
		},
		"invalid fg": {
			args:       []string{"p", "--color", "always", "--fg", "purple", "text"},
			wantErr:    true,
			wantStderr: `Error: invalid color name: "purple"`,
		},
		"unknown format code": {
			args:       []string{"print", "--color", "never", "a [xyz]b"},
			wantErr:    true,
			wantStderr: "Error: unknown formatting code: 'xyz'",
		},
		"zero workers": {
			args:       []string{"render", "--workers", "0", "doc.txt"},
			wantErr:    true,
			wantStderr: "Error: --workers must be at least 1",
		},
		"missing config file": {
			args:       []string{"rule", "--config", filepath.Join(t.TempDir(), "missing.toml")},
			wantErr:    true,
			wantStderr: "Error: failed to read config file: open ",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// use fake env for testing to ensure we don't accidentally pick
			// up a real COLOR or NO_COLOR setting.
			getenv := func(key string) string {
				return tc.env[key]
			}
			app, _, stderr := newTestApp(getenv)

			err := RunApp(app, tc.args)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error but got none for args: %v", tc.args)
			} else if !tc.wantErr {
				assert.NilError(t, err)
			}
			got := strings.TrimSpace(stderr.String())
			if strings.HasSuffix(tc.wantStderr, " ") {
				assert.True(t, strings.HasPrefix(got, tc.wantStderr), "stderr %q should start with %q", got, tc.wantStderr)
				return
			}
			assert.Equal(t, got, tc.wantStderr, "stderr should match expected output for args: %v", tc.args)
		})
	}
}

func TestVersion(t *testing.T) {
	app, stdout, _ := newTestApp(noEnv)
	assert.NilError(t, RunApp(app, []string{"--version"}))
	assert.Equal(t, stdout.String(), "styledterm version test\n", "incorrect version output")
}

func TestCommandOutput(t *testing.T) {
	testCases := map[string]struct {
		args  []string
		stdin string
		want  string
	}{
		"print plain": {
			args: []string{"print", "--color", "never", "a [red]b[/] c"},
			want: "a b c\n",
		},
		"print styled": {
			args: []string{"print", "--color", "always", "a [red]b[/] c", "[green][bold]d"},
			want: "a \x1b[31mb\x1b[0m c\n\x1b[32;1md\x1b[0m\n",
		},
		"p with leading tag": {
			args: []string{"p", "--color", "always", "[red bold]Pay Attention!"},
			want: "\x1b[31;1mPay Attention!\x1b[0m\n",
		},
		"p with flags": {
			args: []string{"p", "--color", "always", "--fg", "green", "-s", "underline", "-b", "hi"},
			want: "\x1b[32;4;1mhi\x1b[0m\n",
		},
		"p with flags leaves tags alone": {
			args: []string{"p", "--color", "always", "--fg", "cyan", "[red]x"},
			want: "\x1b[36m[red]x\x1b[0m\n",
		},
		"header H1": {
			args: []string{"header", "--color", "never", "-w", "10", "Doc"},
			want: "\n==========\n   Doc\n==========\n\n",
		},
		"header H3 centered with kind color": {
			args: []string{"header", "--color", "always", "-w", "9", "--center", "--header-color", "H3=red", "-k", "h3", "x"},
			want: "\n\x1b[31;1m=== x ===\x1b[0m\n\n",
		},
		"header HF": {
			args: []string{"header", "--color", "always", "-w", "6", "-k", "HF", "x"},
			want: "\n\x1b[90;7m   x  \x1b[0m\n\n",
		},
		"header without autonewlines": {
			args: []string{"header", "--color", "never", "-w", "8", "--no-autonewlines", "-k", "H4", "x"},
			want: "-- x ---\n",
		},
		"rule": {
			args: []string{"rule", "--color", "never", "-w", "10"},
			want: "\n----------\n\n",
		},
		"rule with char": {
			args: []string{"rule", "--color", "never", "-w", "4", "--char", "*", "--no-autonewlines"},
			want: "****\n",
		},
		"json from stdin": {
			args:  []string{"json", "--color", "never", "--indent", "2"},
			stdin: `{"b": [1, 2], "a": "x"}`,
			want:  "\n{\n  \"a\": \"x\",\n  \"b\": [\n    1,\n    2\n  ]\n}\n\n",
		},
		"json compact": {
			args:  []string{"json", "--color", "never", "--indent", "-1", "--no-autonewlines", "-"},
			stdin: `[1, 2, 3]`,
			want:  "[1,2,3]\n",
		},
		"yaml from stdin": {
			args:  []string{"yaml", "--color", "never", "--no-autonewlines"},
			stdin: "b: 1\na: x\n",
			want:  "a: x\nb: 1\n",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			app, stdout, stderr := newTestApp(noEnv)
			app.SetIn(strings.NewReader(tc.stdin))
			err := RunApp(app, tc.args)
			assert.NilError(t, err)
			assert.Equal(t, stderr.String(), "", "stderr should be empty")
			assert.Equal(t, stdout.String(), tc.want, "incorrect output for args: %v", tc.args)
		})
	}
}

func TestJSONFromFile(t *testing.T) {
	path := writeFile(t, "in.json", `{"k": true}`)
	app, stdout, _ := newTestApp(noEnv)
	assert.NilError(t, RunApp(app, []string{"json", "--color", "never", "--no-autonewlines", path}))
	assert.Equal(t, stdout.String(), "{\n    \"k\": true\n}\n", "incorrect output")
}

func TestJSONInvalid(t *testing.T) {
	app, _, stderr := newTestApp(noEnv)
	app.SetIn(strings.NewReader("{nope"))
	err := RunApp(app, []string{"json"})
	assert.True(t, err != nil, "expected error for invalid JSON")
	assert.Contains(t, stderr.String(), "Error: failed to parse JSON: ", "stderr")
}

func TestOutFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	app, stdout, _ := newTestApp(noEnv)
	assert.NilError(t, RunApp(app, []string{"print", "--color", "never", "--out", path, "hello [red]world"}))
	assert.Equal(t, stdout.String(), "", "stdout should be empty when writing to --out")

	got, err := os.ReadFile(path)
	assert.NilError(t, err)
	assert.Equal(t, string(got), "hello world\n", "incorrect --out file contents")
}

func TestConfigFile(t *testing.T) {
	cfgPath := writeFile(t, "styledterm.toml", `
width = 10
color = "always"
autonewlines = false

[header_colors]
H = "blue"
H4 = "yellow"
`)

	testCases := map[string]struct {
		args []string
		env  map[string]string
		want string
	}{
		"config flag": {
			args: []string{"rule", "--config", cfgPath},
			want: "----------\n",
		},
		"config env var": {
			args: []string{"rule"},
			env:  map[string]string{"STYLEDTERM_CONFIG": cfgPath},
			want: "----------\n",
		},
		"flags override config": {
			args: []string{"rule", "--config", cfgPath, "-w", "4", "--color", "never"},
			want: "----\n",
		},
		"config color beats COLOR env": {
			args: []string{"p", "--config", cfgPath, "[red]x"},
			env:  map[string]string{"COLOR": "never"},
			want: "\x1b[31mx\x1b[0m\n",
		},
		"per kind header colors": {
			args: []string{"header", "--config", cfgPath, "-k", "H4", "x"},
			want: "\x1b[33;1m-- x -----\x1b[0m\n",
		},
		"header color fallback": {
			args: []string{"header", "--config", cfgPath, "-k", "H3", "x"},
			want: "\x1b[34;1m== x =====\x1b[0m\n",
		},
		"header color flag overrides config": {
			args: []string{"header", "--config", cfgPath, "--header-color", "green", "-k", "H3", "x"},
			want: "\x1b[32;1m== x =====\x1b[0m\n",
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			app, stdout, _ := newTestApp(func(key string) string { return tc.env[key] })
			assert.NilError(t, RunApp(app, tc.args))
			assert.Equal(t, stdout.String(), tc.want, "incorrect output for args: %v", tc.args)
		})
	}
}

func TestConfigFileErrors(t *testing.T) {
	testCases := map[string]struct {
		config  string
		wantErr string
	}{
		"invalid toml": {
			config:  "width = ",
			wantErr: "failed to parse config file",
		},
		"both header color settings": {
			config:  "header_color = \"red\"\n[header_colors]\nH1 = \"blue\"\n",
			wantErr: "config file may set header_color or header_colors, not both",
		},
		"invalid header colors": {
			config:  "[header_colors]\nH9 = \"blue\"\n",
			wantErr: `invalid header_colors in config file: invalid header kind "H9"`,
		},
		"invalid color mode": {
			config:  "color = \"sometimes\"\n",
			wantErr: "--color must be one of: auto, always, never",
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, "styledterm.toml", tc.config)
			app, _, stderr := newTestApp(noEnv)
			err := RunApp(app, []string{"rule", "--config", path})
			assert.True(t, err != nil, "expected error")
			assert.Contains(t, stderr.String(), tc.wantErr, "stderr")
		})
	}
}

func TestUseStyles(t *testing.T) {
	var buf bytes.Buffer
	testCases := map[string]struct {
		mode string
		env  map[string]string
		want bool
	}{
		"always":             {mode: "always", want: true},
		"always ignores env": {mode: "always", env: map[string]string{"NO_COLOR": "1"}, want: true},
		"never":              {mode: "never", want: false},
		"auto non-terminal":  {mode: "auto", want: false},
		"auto NO_COLOR":      {mode: "auto", env: map[string]string{"NO_COLOR": "1"}, want: false},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got := useStyles(tc.mode, func(key string) string { return tc.env[key] }, &buf)
			assert.Equal(t, got, tc.want, "incorrect result for mode %q", tc.mode)
		})
	}
}

func TestDemo(t *testing.T) {
	app, stdout, stderr := newTestApp(noEnv)
	assert.NilError(t, RunApp(app, []string{"demo", "--color", "always", "-w", "40"}))
	assert.Equal(t, stderr.String(), "", "stderr should be empty")
	out := stdout.String()
	for _, want := range []string{
		"Example Set One",
		"\x1b[91mred2\x1b[0m",
		"\x1b[4munderline\x1b[0m",
		"\x1b[31;1mPay Attention!\x1b[0m",
		"From \x1b[32mhere\x1b[0m to \x1b[31mthere\x1b[0m we go",
		"\n                        bottom\n",
		"Back on top",
		`"name": "styledterm"`,
		"name: styledterm",
		"End of demo",
	} {
		assert.Contains(t, out, want, "demo output")
	}
}

func TestDemoKeepsHeaderSettings(t *testing.T) {
	app, stdout, _ := newTestApp(noEnv)
	assert.NilError(t, RunApp(app, []string{"demo", "--color", "always", "-w", "40", "--header-color", "red"}))
	out := stdout.String()
	rule := strings.Repeat("-", 40)
	assert.Contains(t, out, "\x1b[31;1m"+rule+"\n   Colors\n"+rule+"\x1b[0m", "demo output")
	// the opening tour uses its own colors
	assert.Contains(t, out, "\x1b[32;1m"+strings.Repeat("=", 40), "demo output")
}

func TestVerboseLogging(t *testing.T) {
	app, _, stderr := newTestApp(noEnv)
	assert.NilError(t, RunApp(app, []string{"rule", "-v", "--color", "never"}))
	assert.Contains(t, stderr.String(), "cli: resolved options", "debug logs")
	assert.Contains(t, stderr.String(), "command=rule", "debug logs")
}

func newTestApp(getenv func(string) string) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	var (
		stdin  = strings.NewReader("")
		stdout = &bytes.Buffer{}
		stderr = &bytes.Buffer{}
	)
	return NewApp(stdin, stdout, stderr, getenv, "styledterm version test"), stdout, stderr
}

func noEnv(string) string { return "" }

func writeFile(t *testing.T, name string, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	assert.NilError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}
