// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"go.printburn.dev/burntuner/internal/cli"
	"go.printburn.dev/burntuner/internal/cli/envflag"
	"go.printburn.dev/burntuner/internal/restrict"
	"go.printburn.dev/burntuner/internal/web"
)

func main() { cli.Main(new(app)) }

type app struct {
	// configuration
	public  string
	port    int
	flagErr error

	// used in tests
	exeDir        func() (string, error)
	openBrowser   func(url string) error
	ready         func(url string)
	noServerStart bool
}

func (a *app) Flags(fs *flag.FlagSet, env *cli.Env) {
	a.flagErr = errors.Join(
		envflag.Var(fs, &a.public, "public", "BURNTUNER_PUBLIC", "public", "Path to the Vite public `folder` to install the tuner into and serve.", env.Getenv),
		envflag.Var(fs, &a.port, "port", "BURNTUNER_PORT", 8000, "Serve on 127.0.0.1:`port`.", env.Getenv),
	)
}

// config is resolved once from flags and never changes afterwards.
type config struct {
	publicDir string // absolute
	port      int
}

func newConfig(public string, port int) (config, error) {
	if port < 0 || port > 65535 {
		return config{}, fmt.Errorf("%w: port %d is out of range", cli.ErrInvalidArgs, port)
	}
	dir, err := filepath.Abs(public)
	if err != nil {
		return config{}, err
	}
	return config{publicDir: dir, port: port}, nil
}

// addr is the loopback address to listen on.
func (c config) addr() string {
	return net.JoinHostPort("127.0.0.1", strconv.Itoa(c.port))
}

func pageURL(addr net.Addr) string {
	return "http://" + addr.String() + "/" + pageName
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	if a.flagErr != nil {
		return fmt.Errorf("%w: %v", cli.ErrInvalidArgs, a.flagErr)
	}
	if len(env.Args) > 0 {
		return fmt.Errorf("%w: unexpected arguments %q, use -public to choose the folder", cli.ErrInvalidArgs, env.Args)
	}
	if a.exeDir == nil {
		a.exeDir = executableDir
	}
	if a.openBrowser == nil {
		a.openBrowser = openBrowser
	}

	cfg, err := newConfig(a.public, a.port)
	if err != nil {
		return err
	}

	srcDir, err := a.exeDir()
	if err != nil {
		return fmt.Errorf("locating the program: %w", err)
	}
	page, err := installPage(cfg.publicDir, srcDir)
	switch {
	case errors.Is(err, errNoPublicDir):
		fmt.Fprintf(env.Stderr, "[ERROR] %v\n", err)
		fmt.Fprintln(env.Stderr, "Run this from your project root, or pass -public path_to_public")
		return cli.Quiet(err)
	case errors.Is(err, errNoTemplate):
		fmt.Fprintf(env.Stderr, "[ERROR] %v\n", err)
		return cli.Quiet(err)
	case err != nil:
		return err
	}
	fmt.Fprintf(env.Stdout, "[OK] Wrote tuner page: %s\n", page)

	if a.noServerStart {
		return nil
	}

	if err := web.ListenAndServe(ctx, &web.ListenAndServeConfig{
		Addr:    cfg.addr(),
		Handler: newFileServer(os.DirFS(cfg.publicDir)),
		Ready: func(addr net.Addr) {
			url := pageURL(addr)
			fmt.Fprintf(env.Stdout, "[OK] Serving: %s\n", cfg.publicDir)
			fmt.Fprintf(env.Stdout, "[OK] Open:   %s\n", url)
			go a.launch(ctx, cfg, url)
			if a.ready != nil {
				a.ready(url)
			}
		},
	}); err != nil {
		return err
	}

	// The tuner page stays in the public folder.
	fmt.Fprintln(env.Stdout, "\n[OK] Stopped.")
	return nil
}

// launch opens url in a browser and then drops filesystem access down to
// reading what is served from cfg.publicDir.
func (a *app) launch(ctx context.Context, cfg config, url string) {
	// The URL is already printed, so a missing browser is not an error.
	_ = a.openBrowser(url)
	restrict.DoUnlessTesting(ctx, readRules(cfg.publicDir)...)
}

func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if realexe, err := filepath.EvalSymlinks(exe); err == nil {
		exe = realexe
	}
	return filepath.Dir(exe), nil
}
