package saucedemo

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"regexp"
	"runtime/trace"
	"slices"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/google/uuid"
	"github.com/rusq/chttp"
)

// Tab is a single browser page on the store, living in its own browser
// context: tabs opened from the same client share no cookies or storage.
// Tab is not safe for concurrent use; use one tab per goroutine.
type Tab struct {
	id      string
	pg      pager
	base    *url.URL
	timeout time.Duration
	lg      Logger

	// set for tabs backed by a browser.
	browser   *rod.Browser
	targetID  proto.TargetTargetID
	cleanupFn []func() error
}

func newTab(pg pager, base *url.URL, timeout time.Duration, lg Logger) *Tab {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Tab{
		id:      uuid.NewString(),
		pg:      pg,
		base:    base,
		timeout: timeout,
		lg:      lg,
	}
}

// Open opens a new tab in a fresh browser context, starting the browser if
// necessary.  The tab is blank, use [Tab.Goto] or [LoginPage.Open] to load
// the store.
func (c *Client) Open(ctx context.Context) (*Tab, error) {
	ctx, task := trace.NewTask(ctx, "Open")
	defer task.End()

	browser, err := c.startBrowser(ctx)
	if err != nil {
		return nil, err
	}
	incognito, err := browser.Incognito()
	if err != nil {
		return nil, ErrBrowser{Err: err, FailedTo: "create browser context"}
	}
	t := newTab(nil, c.base, c.opts.timeout, c.opts.lg)
	t.browser = incognito
	t.atClose(func() error {
		return proto.TargetDisposeBrowserContext{BrowserContextID: incognito.BrowserContextID}.Call(browser)
	})

	if err := c.preparePage(ctx, t); err != nil {
		return nil, errors.Join(err, t.Close())
	}
	c.opts.lg.Debug("tab opened", "tab", t.id)
	return t, nil
}

func (c *Client) preparePage(ctx context.Context, t *Tab) error {
	if err := setCookies(t.browser, c.opts.cookies); err != nil {
		return err
	}
	page, err := t.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return ErrBrowser{Err: err, FailedTo: "open page"}
	}
	t.atClose(page.Close)
	t.pg = (*pageWrapper)(page)
	t.targetID = page.TargetID

	// patch the user agent if needed
	if err := c.opts.setUserAgent(page); err != nil {
		return ErrBrowser{Err: err, FailedTo: "set user agent"}
	}
	if len(c.opts.blocked) > 0 {
		b, err := newBlocker(ctx, page, c.opts.blocked, c.opts.lg)
		if err != nil {
			return ErrBrowser{Err: err, FailedTo: "block resources"}
		}
		t.atClose(b.Stop)
	}
	return nil
}

// ID returns the unique identifier of the tab, used in logs.
func (t *Tab) ID() string {
	return t.id
}

// BaseURL returns the store root address.
func (t *Tab) BaseURL() string {
	return t.base.String()
}

// Timeout returns the bounded wait of the tab locators and barriers.
func (t *Tab) Timeout() time.Duration {
	return t.timeout
}

// Locator returns a locator for s on the tab.
func (t *Tab) Locator(s Selector) Locator {
	return newLocator(t.pg, s, t.timeout)
}

// Close closes the page and disposes of its browser context.
func (t *Tab) Close() error {
	var errs error
	slices.Reverse(t.cleanupFn)
	for _, fn := range t.cleanupFn {
		if err := fn(); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	t.cleanupFn = nil
	return errs
}

func (t *Tab) atClose(fn func() error) {
	t.cleanupFn = append(t.cleanupFn, fn)
}

// abs resolves the store path p against the base URL.  Absolute addresses
// are returned unchanged.
func (t *Tab) abs(p string) string {
	u, err := url.Parse(p)
	if err != nil {
		return t.base.String() + p
	}
	if u.IsAbs() {
		return p
	}
	return t.base.ResolveReference(u).String()
}

// Goto navigates to the store path p, i.e. [PathInventory], and waits for the
// page to load.
func (t *Tab) Goto(ctx context.Context, p string) error {
	ctx, cancel := context.WithTimeoutCause(ctx, t.timeout, ErrTimeout)
	defer cancel()
	defer trace.StartRegion(ctx, "Goto").End()

	addr := t.abs(p)
	t.lg.Debug("navigate", "tab", t.id, "url", addr)
	if err := t.pg.Navigate(ctx, addr); err != nil {
		return ErrBrowser{Err: err, FailedTo: "navigate to " + addr}
	}
	return nil
}

// URL returns the current address of the tab.
func (t *Tab) URL(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeoutCause(ctx, t.timeout, ErrTimeout)
	defer cancel()
	u, err := t.pg.URL(ctx)
	if err != nil {
		return "", ErrBrowser{Err: err, FailedTo: "get url"}
	}
	return u, nil
}

// Title returns the document title.
func (t *Tab) Title(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeoutCause(ctx, t.timeout, ErrTimeout)
	defer cancel()
	s, err := t.pg.Title(ctx)
	if err != nil {
		return "", ErrBrowser{Err: err, FailedTo: "get title"}
	}
	return s, nil
}

// State returns the current state of the tab.  Addresses outside of the store
// are StateUnknown.
func (t *Tab) State(ctx context.Context) (State, error) {
	u, err := t.URL(ctx)
	if err != nil {
		return StateUnknown, err
	}
	return t.stateOf(u), nil
}

func (t *Tab) stateOf(addr string) State {
	u, err := url.Parse(addr)
	if err != nil || !strings.EqualFold(u.Host, t.base.Host) || u.Scheme != t.base.Scheme {
		return StateUnknown
	}
	return StateOf(addr)
}

// WaitURL waits until the tab address equals the store path or absolute
// address want.
func (t *Tab) WaitURL(ctx context.Context, want string) error {
	want = t.abs(want)
	return t.awaitURL(ctx, want, func(u string) bool { return u == want })
}

// WaitURLGlob waits until the tab address matches the glob pattern, where
// "**" matches any characters, and "*" matches anything except "/", i.e.
// "**/checkout-step-*.html".
func (t *Tab) WaitURLGlob(ctx context.Context, pattern string) error {
	re := globRegexp(pattern)
	return t.awaitURL(ctx, "matching "+pattern, re.MatchString)
}

func globRegexp(pattern string) *regexp.Regexp {
	var b strings.Builder
	b.WriteString("^")
	rs := []rune(pattern)
	for i := 0; i < len(rs); i++ {
		switch c := rs[i]; c {
		case '*':
			if i+1 < len(rs) && rs[i+1] == '*' {
				b.WriteString(".*")
				i++
			} else {
				b.WriteString("[^/]*")
			}
		case '?':
			b.WriteString("[^/]")
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	b.WriteString("$")
	return regexp.MustCompile(b.String())
}

// WaitState waits until the tab reaches the state.
func (t *Tab) WaitState(ctx context.Context, want State) error {
	return await(ctx, t.timeout, "tab "+t.id, want.String(), func(ctx context.Context) (string, bool, error) {
		u, err := t.pg.URL(ctx)
		if err != nil {
			return "", false, err
		}
		s := t.stateOf(u)
		return s.String(), s == want, nil
	})
}

func (t *Tab) awaitURL(ctx context.Context, want string, match func(string) bool) error {
	return await(ctx, t.timeout, "url of tab "+t.id, want, func(ctx context.Context) (string, bool, error) {
		u, err := t.pg.URL(ctx)
		if err != nil {
			return "", false, err
		}
		return u, match(u), nil
	})
}

// follow performs the navigation to the state to by clicking the trigger.
// The click is only made once the tab is in a state that has an edge to the
// target, otherwise, after the wait expires, it fails with a
// [TransitionError].  If wait is set, follow also waits for the target state
// to be reached.
func (t *Tab) follow(ctx context.Context, to State, trigger Locator, wait bool) error {
	ctx, task := trace.NewTask(ctx, "follow:"+to.String())
	defer task.End()

	from, err := t.awaitSource(ctx, to)
	if err != nil {
		return err
	}
	t.lg.Debug("transition", "tab", t.id, "from", from, "to", to)
	if err := trigger.Click(ctx); err != nil {
		return err
	}
	if wait {
		return t.WaitURL(ctx, to.Path())
	}
	return nil
}

// awaitSource waits until the tab is in a state that can move to the state
// to, and returns that state.
func (t *Tab) awaitSource(ctx context.Context, to State) (State, error) {
	var from State
	err := await(ctx, t.timeout, "tab "+t.id, "in a state leading to "+to.String(), func(ctx context.Context) (string, bool, error) {
		u, err := t.pg.URL(ctx)
		if err != nil {
			return "", false, err
		}
		from = t.stateOf(u)
		return from.String(), CanMove(from, to), nil
	})
	if err != nil {
		var ee *ExpectationError
		if errors.As(err, &ee) && ee.Err != nil {
			// the state could not be determined at all.
			return StateUnknown, ErrBrowser{Err: err, FailedTo: "determine tab state"}
		}
		return from, &TransitionError{From: from, To: to}
	}
	return from, nil
}

// Cookies returns the cookies of the tab browser context.
func (t *Tab) Cookies(ctx context.Context) ([]*http.Cookie, error) {
	if t.browser == nil {
		return nil, nil
	}
	cookies, err := convertCookies(t.browser.Context(ctx).GetCookies())
	if err != nil {
		return nil, ErrBrowser{Err: err, FailedTo: "extract cookies"}
	}
	return cookies, nil
}

// HTTPClient returns an http client that carries the cookies of the tab, so
// that the requests are made in the same session as the tab.
func (t *Tab) HTTPClient(ctx context.Context) (*http.Client, error) {
	cookies, err := t.Cookies(ctx)
	if err != nil {
		return nil, err
	}
	return chttp.New(t.base.String(), cookies)
}

// Guard returns a context that is cancelled when the tab page is closed, for
// example by the user closing the browser window.
func (t *Tab) Guard(ctx context.Context) (context.Context, context.CancelCauseFunc) {
	if t.browser == nil {
		return context.WithCancelCause(ctx)
	}
	return withTabGuard(ctx, t.browser, t.targetID, t.lg)
}

// withTabGuard creates a context that is cancelled when the target is
// destroyed.
func withTabGuard(parent context.Context, browser *rod.Browser, targetID proto.TargetTargetID, l Logger) (context.Context, context.CancelCauseFunc) {
	ctx, cancel := context.WithCancelCause(parent)
	go browser.Context(ctx).EachEvent(func(e *proto.TargetTargetDestroyed) {
		if e.TargetID != targetID {
			return
		}
		l.Debug("target destroyed", "target", e.TargetID)
		cancel(errors.New("tab is closed"))
	})()
	return ctx, cancel
}
