// Command sauce drives the demo store from the command line: it logs in,
// lists the inventory and places orders, and serves the locator practice
// page.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime/trace"
	"strings"
	"time"

	"github.com/go-rod/rod/lib/proto"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/rusq/saucedemo"
	"github.com/rusq/saucedemo/internal/fixture"
)

var _ = godotenv.Load()

var version = "0.1.0"

const (
	flagBaseURL   = "base-url"
	flagHeadless  = "headless"
	flagTimeout   = "timeout"
	flagBrowser   = "browser"
	flagBundled   = "bundled"
	flagNoSandbox = "no-sandbox"
	flagBlock     = "block"
	flagDebug     = "debug"
	flagTrace     = "trace"
	flagUserAgent = "user-agent"
	flagFixture   = "fixture"
	flagUsername  = "username"
	flagPassword  = "password"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := &cli.App{
		Name:    "sauce",
		Usage:   "Sauce Labs demo store automation",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: flagBaseURL, Usage: "store `URL`", Value: saucedemo.DefaultBaseURL, EnvVars: []string{"SAUCE_BASE_URL"}},
			&cli.BoolFlag{Name: flagHeadless, Usage: "run the browser without a window", Value: true, EnvVars: []string{"SAUCE_HEADLESS"}},
			&cli.DurationFlag{Name: flagTimeout, Usage: "element wait timeout", Value: 10 * time.Second, EnvVars: []string{"SAUCE_TIMEOUT"}},
			&cli.StringFlag{Name: flagBrowser, Usage: "browser executable `path`", EnvVars: []string{"SAUCE_BROWSER"}},
			&cli.BoolFlag{Name: flagBundled, Usage: "use the browser bundled with rod"},
			&cli.BoolFlag{Name: flagNoSandbox, Usage: "disable the browser sandbox (containers)"},
			&cli.StringSliceFlag{Name: flagBlock, Usage: "resource `type`s to block, i.e. Image,Font"},
			&cli.BoolFlag{Name: flagDebug, Aliases: []string{"d"}, Usage: "enable debug logging", EnvVars: []string{"DEBUG"}},
			&cli.StringFlag{Name: flagTrace, Usage: "trace `filename`"},
			&cli.StringFlag{Name: flagUserAgent, Usage: "browser user agent `string`", Value: saucedemo.DefaultUserAgent(), EnvVars: []string{"SAUCE_USER_AGENT"}},
			&cli.StringFlag{Name: flagFixture, Usage: "test data `file`, overrides the built-in one", EnvVars: []string{"SAUCE_FIXTURE"}},
		},
		Before: setup,
		After:  teardown,
		Commands: []*cli.Command{
			browsersCommand(),
			loginCommand(),
			inventoryCommand(),
			orderCommand(),
			playgroundCommand(),
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

var traceStop = func() error { return nil }

func setup(c *cli.Context) error {
	if c.Bool(flagDebug) {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	if fn := c.String(flagTrace); fn != "" {
		f, err := os.Create(fn)
		if err != nil {
			return err
		}
		if err := trace.Start(f); err != nil {
			f.Close()
			return err
		}
		traceStop = func() error {
			trace.Stop()
			return f.Close()
		}
	}
	return nil
}

func teardown(*cli.Context) error {
	return traceStop()
}

// loadFixture returns the test data, either from the file given on the
// command line, or the built-in one.
func loadFixture(c *cli.Context) (*fixture.Data, error) {
	if fn := c.String(flagFixture); fn != "" {
		return fixture.Load(fn)
	}
	return fixture.Default()
}

func clientOptions(c *cli.Context) []saucedemo.Option {
	opts := []saucedemo.Option{
		saucedemo.WithHeadless(c.Bool(flagHeadless)),
		saucedemo.WithTimeout(c.Duration(flagTimeout)),
		saucedemo.WithNoSandbox(c.Bool(flagNoSandbox)),
		saucedemo.WithDebug(c.Bool(flagDebug)),
		saucedemo.WithUserAgent(c.String(flagUserAgent)),
	}
	if path := c.String(flagBrowser); path != "" {
		opts = append(opts, saucedemo.WithLocalBrowser(path))
	}
	if c.Bool(flagBundled) {
		opts = append(opts, saucedemo.WithBundledBrowser())
	}
	if block := c.StringSlice(flagBlock); len(block) > 0 {
		types := make([]proto.NetworkResourceType, 0, len(block))
		for _, b := range block {
			types = append(types, proto.NetworkResourceType(strings.TrimSpace(b)))
		}
		opts = append(opts, saucedemo.WithBlockedResources(types...))
	}
	return opts
}

// withTab runs fn on a fresh tab of the store.  The context passed to fn is
// cancelled if the user closes the browser window.
func withTab(c *cli.Context, fn func(ctx context.Context, tab *saucedemo.Tab) error) error {
	cl, err := saucedemo.New(c.String(flagBaseURL), clientOptions(c)...)
	if err != nil {
		return err
	}
	defer cl.Close()

	tab, err := cl.Open(c.Context)
	if err != nil {
		return err
	}
	defer tab.Close()

	ctx, cancel := tab.Guard(c.Context)
	defer cancel(nil)
	if err := fn(ctx, tab); err != nil {
		if cause := context.Cause(ctx); cause != nil && !errors.Is(cause, context.Canceled) {
			return fmt.Errorf("%w (%v)", err, cause)
		}
		return err
	}
	return nil
}
