// Package saucedemo is a page-object toolkit for driving the Sauce Labs demo
// store (https://www.saucedemo.com) in a real browser.
//
// The scenario driver (a test, or the sauce command) opens a [Tab] from a
// [Client] and wraps it in page objects, such as [LoginPage] or
// [InventoryPage].  Page objects never cache DOM state: every call resolves
// its locators anew.
package saucedemo

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/rusq/chttp"
)

// DefaultBaseURL is the address of the public demo store.
const DefaultBaseURL = "https://www.saucedemo.com"

const defaultTimeout = 10 * time.Second

type Option func(*options)

type options struct {
	cookies   []*http.Cookie
	userAgent string
	timeout   time.Duration
	headless  bool
	noSandbox bool

	useBundledBrwsr bool
	localBrowser    string

	// blocked lists the resource types that are failed before they hit the
	// network.
	blocked []proto.NetworkResourceType

	debug bool
	lg    Logger
}

func (o *options) apply(opts []Option) {
	for _, opt := range opts {
		opt(o)
	}
}

// WithCookie adds a cookie to every tab opened by the client.
func WithCookie(cookie ...*http.Cookie) Option {
	return func(o *options) {
		o.cookies = append(o.cookies, cookie...)
	}
}

// WithUserAgent sets the user agent for the tabs.
func WithUserAgent(ua string) Option {
	return func(o *options) {
		if ua != "" {
			o.userAgent = ua
		}
	}
}

// WithTimeout sets the bounded wait used by every locator operation and
// navigation barrier.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithHeadless controls whether the browser UI is shown.  Tabs are headless
// by default.
func WithHeadless(b bool) Option {
	return func(o *options) {
		o.headless = b
	}
}

// WithNoSandbox disables the chromium sandbox, which is required when
// running as root inside containers.
func WithNoSandbox(b bool) Option {
	return func(o *options) {
		o.noSandbox = b
	}
}

// WithBundledBrowser forces the use of the browser downloaded by rod, even
// if there's a browser installed on the system.
func WithBundledBrowser() Option {
	return func(o *options) {
		o.useBundledBrwsr = true
	}
}

// WithLocalBrowser sets the path to the browser executable.
func WithLocalBrowser(path string) Option {
	return func(o *options) {
		o.localBrowser = path
	}
}

// WithBlockedResources makes tabs fail requests for the given resource types,
// i.e. proto.NetworkResourceTypeImage.  Product images are irrelevant to the
// flows and blocking them makes the runs noticeably faster.
func WithBlockedResources(rt ...proto.NetworkResourceType) Option {
	return func(o *options) {
		o.blocked = append(o.blocked, rt...)
	}
}

// WithLogger sets the logger for the client and its tabs.  nil keeps the
// default, slog.Default().
func WithLogger(l Logger) Option {
	return func(o *options) {
		if l != nil {
			o.lg = l
		}
	}
}

// WithDebug enables rod tracing and slows down every browser action, so that
// it can be followed with the naked eye.  Implies non-headless mode.
func WithDebug(b bool) Option {
	return func(o *options) {
		o.debug = b
		if b {
			o.headless = false
		}
	}
}

// Client launches the browser and opens isolated tabs on the store.
type Client struct {
	base *url.URL
	opts options

	mu        sync.Mutex
	browser   *rod.Browser
	cleanupFn []func() error
}

// New creates a new client for the store at baseURL.  It checks that the
// store is reachable, but does not start the browser until the first tab is
// opened.
func New(baseURL string, opt ...Option) (*Client, error) {
	u, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	opts := options{
		lg:       slog.Default(),
		timeout:  defaultTimeout,
		headless: true,
	}
	opts.apply(opt)

	if err := checkSiteURL(u.String(), opts.cookies); err != nil {
		return nil, err
	}

	return &Client{
		base: u,
		opts: opts,
	}, nil
}

// BaseURL returns the store root address.
func (c *Client) BaseURL() string {
	return c.base.String()
}

// Close closes the browser and removes the temporary profile.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	var errs error
	slices.Reverse(c.cleanupFn)
	for _, fn := range c.cleanupFn {
		if err := fn(); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	c.cleanupFn = nil
	c.browser = nil
	return errs
}

var (
	// ErrNotFound indicates that a locator did not match any element
	// before its wait expired.
	ErrNotFound = errors.New("target not found")
	// ErrTimeout indicates that a synchronisation barrier did not hold
	// before its wait expired.
	ErrTimeout = errors.New("wait timed out")
	// ErrItemNotFound indicates that there's no inventory item with the
	// given name.
	ErrItemNotFound = errors.New("item not found")
	// ErrInvalidTransition indicates that the requested navigation is not
	// an edge of the store's navigation graph.
	ErrInvalidTransition = errors.New("invalid navigation transition")
	// ErrSiteUnreachable indicates that the store did not respond with 200
	// to a HEAD request.
	ErrSiteUnreachable = errors.New("site unreachable")
)

// ErrBadBaseURL is returned when the store address is invalid.
type ErrBadBaseURL struct {
	URL string
}

func (e ErrBadBaseURL) Error() string {
	return fmt.Sprintf("invalid base url: %q", e.URL)
}

// ErrBrowser indicates the error with browser interaction.
type ErrBrowser struct {
	Err      error
	FailedTo string
}

func (e ErrBrowser) Error() string {
	return fmt.Sprintf("browser automation error: failed to %s: %v", e.FailedTo, e.Err)
}

func (e ErrBrowser) Unwrap() error {
	return e.Err
}

// Logger is the interface for the logger.
type Logger interface {
	// Debug logs a debug message.
	Debug(msg string, keyvals ...interface{})
}

func parseBaseURL(s string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, ErrBadBaseURL{URL: s}
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, ErrBadBaseURL{URL: s}
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

// checkSiteURL checks if the store responds.  The request carries the client
// cookies, so that the check sees the same site as the tabs.
func checkSiteURL(uri string, cookies []*http.Cookie) error {
	cl, err := chttp.New(uri, cookies)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSiteUnreachable, err)
	}
	resp, err := cl.Head(uri)
	if err != nil {
		return ErrSiteUnreachable
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return ErrSiteUnreachable
	}
	return nil
}

// convertCookies extracts cookies from the browser and returns them as a
// slice of http.Cookie.
func convertCookies(cook []*proto.NetworkCookie, err error) ([]*http.Cookie, error) {
	if err != nil {
		return nil, fmt.Errorf("browser error: %w", err)
	}
	var cookies = make([]*http.Cookie, 0, len(cook))
	for _, c := range cook {
		sameSite, ok := sameSiteMap[c.SameSite]
		if !ok {
			sameSite = http.SameSiteNoneMode
		}
		cookies = append(cookies, &http.Cookie{
			Name:     c.Name,
			Value:    c.Value,
			Domain:   c.Domain,
			Path:     c.Path,
			Expires:  c.Expires.Time(),
			Secure:   c.Secure,
			HttpOnly: c.HTTPOnly,
			SameSite: sameSite,
		})
	}
	return cookies, nil
}

var sameSiteMap = map[proto.NetworkCookieSameSite]http.SameSite{
	proto.NetworkCookieSameSiteNone:   http.SameSiteNoneMode,
	proto.NetworkCookieSameSiteLax:    http.SameSiteLaxMode,
	proto.NetworkCookieSameSiteStrict: http.SameSiteStrictMode,
}

// atClose must be called with c.mu held.
func (c *Client) atClose(fn func() error) {
	c.cleanupFn = append(c.cleanupFn, fn)
}

func toerrfn(fn func()) func() error {
	return func() error {
		fn()
		return nil
	}
}
