// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package cli_test

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.printburn.dev/burntuner/internal/cli"
	"go.printburn.dev/burntuner/internal/cli/clitest"
	"go.printburn.dev/burntuner/internal/logger"
	"go.printburn.dev/burntuner/internal/testutil"
)

type testApp struct {
	name    string
	gotCtx  context.Context
	profile string
}

func (a *testApp) Flags(fs *flag.FlagSet, env *cli.Env) {
	fs.StringVar(&a.name, "name", "world", "Greet `name`.")
}

func (a *testApp) Run(ctx context.Context) error {
	a.gotCtx = ctx
	env := cli.GetEnv(ctx)
	if len(env.Args) > 0 {
		return fmt.Errorf("%w: unexpected arguments %q", cli.ErrInvalidArgs, env.Args)
	}
	if a.name == "nobody" {
		return cli.Quiet(errors.New("nobody to greet"))
	}
	fmt.Fprintf(env.Stdout, "Hello, %s!\n", a.name)
	logger.Info(ctx, "greeted")
	return nil
}

func TestRun(t *testing.T) {
	t.Parallel()

	clitest.Run(t, func(t *testing.T) *testApp {
		return new(testApp)
	}, map[string]clitest.Case[*testApp]{
		"prints usage with help flag": {
			Args:         []string{"-h"},
			WantErr:      flag.ErrHelp,
			WantInStderr: "Available flags:",
		},
		"version": {
			Args:    []string{"-version"},
			WantErr: cli.ErrExitVersion,
		},
		"unknown flag": {
			Args:         []string{"-bogus"},
			WantInStderr: "flag provided but not defined",
			CheckFunc: func(t *testing.T, a *testApp) {
				if a.gotCtx != nil {
					t.Fatal("app must not run on flag parsing error")
				}
			},
		},
		"default": {
			WantInStdout: "Hello, world!",
		},
		"flag": {
			Args:         []string{"-name", "tuner"},
			WantInStdout: "Hello, tuner!",
		},
		"invalid args": {
			Args:    []string{"extra"},
			WantErr: cli.ErrInvalidArgs,
		},
		"logs with LOG_LEVEL": {
			Env:          map[string]string{"LOG_LEVEL": "info"},
			WantInStderr: "greeted",
		},
		"memory profile": {
			ArgsFunc: func(t *testing.T, a *testApp) []string {
				a.profile = filepath.Join(t.TempDir(), "mem.out")
				return []string{"-memprofile", a.profile}
			},
			WantInStdout: "Hello, world!",
			CheckFunc: func(t *testing.T, a *testApp) {
				fi, err := os.Stat(a.profile)
				if err != nil {
					t.Fatal(err)
				}
				if fi.Size() == 0 {
					t.Fatal("memory profile is empty")
				}
			},
		},
		"memory profile is created before the app runs": {
			ArgsFunc: func(t *testing.T, a *testApp) []string {
				return []string{"-memprofile", filepath.Join(t.TempDir(), "missing", "mem.out")}
			},
			WantErr: fs.ErrNotExist,
			CheckFunc: func(t *testing.T, a *testApp) {
				if a.gotCtx != nil {
					t.Fatal("app must not run when the memory profile can't be created")
				}
			},
		},
		"runs app": {
			CheckFunc: func(t *testing.T, a *testApp) {
				if a.gotCtx == nil {
					t.Fatal("app didn't run")
				}
			},
		},
	})
}

func TestQuiet(t *testing.T) {
	t.Parallel()

	base := errors.New("boom")
	err := cli.Quiet(fmt.Errorf("wrapped: %w", base))
	testutil.AssertEqual(t, errors.Is(err, base), true)
	testutil.AssertEqual(t, err.Error(), "wrapped: boom")
	testutil.AssertEqual(t, cli.Quiet(nil) == nil, true)
}

func TestGetEnvDefault(t *testing.T) {
	t.Parallel()

	env := cli.GetEnv(context.Background())
	testutil.AssertEqual(t, env.Getenv("HOME"), "")
	fmt.Fprintln(env.Stdout, "discarded")
}

func TestAppFunc(t *testing.T) {
	t.Parallel()

	var ran bool
	env := &cli.Env{Stdout: new(strings.Builder), Stderr: new(strings.Builder)}
	err := cli.Run(cli.WithEnv(context.Background(), env), cli.AppFunc(func(ctx context.Context) error {
		ran = true
		return nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, ran, true)
}
