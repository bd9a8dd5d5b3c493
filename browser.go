package saucedemo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"runtime/trace"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/devices"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

const debugDelay = 500 * time.Millisecond

// isLeaklessEnabled is false on windows, where the leakless helper binary is
// routinely quarantined by antivirus software.
var isLeaklessEnabled = runtime.GOOS != "windows"

// ErrNoBrowsers is returned by ListBrowsers if there are no browsers
// installed on the system.
var ErrNoBrowsers = errors.New("no browsers found")

// LocalBrowser is a browser found on the system.
type LocalBrowser struct {
	Name string
	Path string
}

// ListBrowsers returns the browsers installed on the system, in the order of
// preference.
func ListBrowsers() ([]LocalBrowser, error) {
	var (
		found []LocalBrowser
		seen  = make(map[string]bool)
	)
	for _, candidate := range browserCandidates(runtime.GOOS) {
		path, err := exec.LookPath(candidate)
		if err != nil || seen[path] {
			continue
		}
		seen[path] = true
		found = append(found, LocalBrowser{
			Name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
			Path: path,
		})
	}
	if len(found) == 0 {
		return nil, ErrNoBrowsers
	}
	return found, nil
}

// browserPath returns the browser binary the launcher should use.  If ok is
// false, the launcher falls back to the browser bundled with rod.
func (o options) browserPath() (path string, ok bool) {
	if o.localBrowser != "" {
		return o.localBrowser, true
	}
	if o.useBundledBrwsr {
		return "", false
	}
	return lookPath()
}

// newBrwsrLauncher creates a new browser launcher.
func (c *Client) newBrwsrLauncher() *launcher.Launcher {
	l := launcher.New().
		Headless(c.opts.headless).
		Leakless(isLeaklessEnabled).
		NoSandbox(c.opts.noSandbox).
		Devtools(false)
	if binpath, ok := c.opts.browserPath(); ok {
		l = l.Bin(binpath)
	}
	return l
}

// startBrowser returns the client browser, launching it on the first call.
// The browser outlives the context of the tab that caused it to start.
func (c *Client) startBrowser(ctx context.Context) (*rod.Browser, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.browser != nil {
		return c.browser, nil
	}

	ctx, task := trace.NewTask(ctx, "startBrowser")
	defer task.End()
	ctx = context.WithoutCancel(ctx)

	l := c.newBrwsrLauncher()
	url, err := l.Context(ctx).Launch()
	if err != nil {
		return nil, ErrBrowser{Err: err, FailedTo: "launch"}
	}
	c.atClose(toerrfn(l.Cleanup))

	var delay time.Duration
	if c.opts.debug {
		delay = debugDelay
	}

	browser := rod.New().
		Context(ctx).
		ControlURL(url).
		Trace(c.opts.debug).
		SlowMotion(delay)
	if err := browser.Connect(); err != nil {
		return nil, ErrBrowser{Err: err, FailedTo: "connect"}
	}
	browser = browser.DefaultDevice(devices.Clear)
	c.atClose(browser.Close)
	c.browser = browser
	c.opts.lg.Debug("browser started", "headless", c.opts.headless)
	return browser, nil
}

// lookPath is extended launcher.LookPath that includes support for Brave
// browser.
//
// (c) MIT license: Copyright 2019 Yad Smood
func lookPath() (found string, has bool) {
	for _, path := range browserCandidates(runtime.GOOS) {
		var err error
		found, err = exec.LookPath(path)
		has = err == nil
		if has {
			break
		}
	}

	return
}

func browserCandidates(goos string) []string {
	return map[string][]string{
		"darwin": {
			"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
			"/Applications/Chromium.app/Contents/MacOS/Chromium",
			"/Applications/Brave Browser.app/Contents/MacOS/Brave Browser",
			"/Applications/Microsoft Edge.app/Contents/MacOS/Microsoft Edge",
			"/usr/bin/google-chrome-stable",
			"/usr/bin/google-chrome",
			"/usr/bin/chromium",
			"/usr/bin/chromium-browser",
		},
		"linux": {
			"chrome",
			"google-chrome",
			"/usr/bin/google-chrome",
			"chromium",
			"chromium-browser",
			"/usr/bin/google-chrome-stable",
			"/usr/bin/chromium",
			"/usr/bin/chromium-browser",
			"/snap/bin/chromium",
			"brave-browser",
			"/usr/bin/brave-browser",
			"microsoft-edge",
			"/usr/bin/microsoft-edge",
		},
		"openbsd": {
			"chrome",
			"chromium",
		},
		"windows": append([]string{"chrome", "edge"}, expandWindowsExePaths(
			`Google\Chrome\Application\chrome.exe`,
			`Chromium\Application\chrome.exe`,
			`BraveSoftware\Brave-Browser\Application\brave.exe`,
			`Microsoft\Edge\Application\msedge.exe`,
		)...),
	}[goos]
}

// expandWindowsExePaths is a verbatim copy of the function from rod's
// browser.go.
//
// (c) MIT license: Copyright 2019 Yad Smood
func expandWindowsExePaths(list ...string) []string {
	newList := []string{}
	for _, p := range list {
		newList = append(
			newList,
			filepath.Join(os.Getenv("ProgramFiles"), p),
			filepath.Join(os.Getenv("ProgramFiles(x86)"), p),
			filepath.Join(os.Getenv("LocalAppData"), p),
		)
	}

	return newList
}

func setCookies(browser *rod.Browser, cookies []*http.Cookie) error {
	if len(cookies) == 0 {
		return nil
	}
	params := make([]*proto.NetworkCookieParam, 0, len(cookies))
	for _, c := range cookies {
		p := &proto.NetworkCookieParam{
			Name:   c.Name,
			Value:  c.Value,
			Domain: c.Domain,
			Path:   c.Path,
		}
		if !c.Expires.IsZero() {
			p.Expires = proto.TimeSinceEpoch(c.Expires.Unix())
		}
		params = append(params, p)
	}
	if err := browser.SetCookies(params); err != nil {
		return fmt.Errorf("failed to set cookies: %w", err)
	}
	return nil
}
