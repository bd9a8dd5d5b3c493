package saucedemo

import (
	"context"
	"errors"
	"runtime/trace"
	"strings"
	"time"

	"github.com/go-rod/rod/lib/input"
)

// Locator is a lazily-resolved reference to an element.  It holds no element
// handles: every operation resolves the selector against the live DOM from
// scratch, so a Locator survives re-rendering and navigation.
//
// Actions and value reads wait, up to the locator timeout, for the element to
// appear.  Immediate queries (Count, Exists, IsVisible, AllTexts) inspect the
// current DOM and do not wait.  On timeout, the error satisfies
// errors.Is(err, ErrNotFound).
type Locator struct {
	root    finder
	parent  *Locator
	sel     Selector
	timeout time.Duration
}

func newLocator(root finder, s Selector, timeout time.Duration) Locator {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return Locator{root: root, sel: s, timeout: timeout}
}

// Locator returns a locator for s, resolved within the first element matched
// by l.
func (l Locator) Locator(s Selector) Locator {
	parent := l
	return Locator{root: l.root, parent: &parent, sel: s, timeout: l.timeout}
}

// WithTimeout returns a copy of the locator with a different wait bound.
func (l Locator) WithTimeout(d time.Duration) Locator {
	if d > 0 {
		l.timeout = d
	}
	return l
}

// Selector returns the selector of the locator.
func (l Locator) Selector() Selector {
	return l.sel
}

func (l Locator) String() string {
	if l.parent != nil {
		return l.parent.String() + " >> " + l.sel.String()
	}
	return l.sel.String()
}

// resolve waits for the element to appear, resolving the parents first.
func (l Locator) resolve(ctx context.Context) (element, error) {
	f := l.root
	if l.parent != nil {
		el, err := l.parent.resolve(ctx)
		if err != nil {
			return nil, err
		}
		f = el
	}
	return f.Query(ctx, l.sel)
}

// queryAll returns the current matches.  The parents are not waited for: if
// the parent doesn't exist, there are no matches.
func (l Locator) queryAll(ctx context.Context) ([]element, error) {
	f := l.root
	if l.parent != nil {
		ps, err := l.parent.queryAll(ctx)
		if err != nil {
			return nil, err
		}
		if len(ps) == 0 {
			return nil, nil
		}
		f = ps[0]
	}
	return f.QueryAll(ctx, l.sel)
}

func (l Locator) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeoutCause(ctx, l.timeout, ErrTimeout)
}

// find waits for the element within the bounded ctx.
func (l Locator) find(ctx context.Context) (element, error) {
	el, err := l.resolve(ctx)
	if err != nil {
		if isExpired(ctx) {
			return nil, ErrBrowser{Err: ErrNotFound, FailedTo: "find " + l.String()}
		}
		return nil, ErrBrowser{Err: err, FailedTo: "find " + l.String()}
	}
	return el, nil
}

func isExpired(ctx context.Context) bool {
	return errors.Is(ctx.Err(), context.DeadlineExceeded)
}

// do resolves the element and runs fn on it, all within the locator timeout.
func (l Locator) do(ctx context.Context, what string, fn func(ctx context.Context, el element) error) error {
	ctx, cancel := l.bounded(ctx)
	defer cancel()
	defer trace.StartRegion(ctx, "locator."+what).End()

	el, err := l.find(ctx)
	if err != nil {
		return err
	}
	if err := fn(ctx, el); err != nil {
		if isExpired(ctx) {
			err = errors.Join(ErrTimeout, err)
		}
		return ErrBrowser{Err: err, FailedTo: what + " " + l.String()}
	}
	return nil
}

// get is do for operations that return a value.
func get[T any](ctx context.Context, l Locator, what string, fn func(ctx context.Context, el element) (T, error)) (T, error) {
	var v T
	err := l.do(ctx, what, func(ctx context.Context, el element) error {
		var err error
		v, err = fn(ctx, el)
		return err
	})
	return v, err
}

// Click clicks the element.
func (l Locator) Click(ctx context.Context) error {
	return l.do(ctx, "click", func(ctx context.Context, el element) error {
		return el.Click(ctx)
	})
}

// Fill replaces the contents of a text field with text.  Empty text clears
// the field.
func (l Locator) Fill(ctx context.Context, text string) error {
	return l.do(ctx, "fill", func(ctx context.Context, el element) error {
		return el.Fill(ctx, text)
	})
}

// Press presses a key with the element focused.
func (l Locator) Press(ctx context.Context, key input.Key) error {
	return l.do(ctx, "press", func(ctx context.Context, el element) error {
		return el.Press(ctx, key)
	})
}

// Check ticks a checkbox or radio button, if it's not ticked yet.
func (l Locator) Check(ctx context.Context) error {
	return l.do(ctx, "check", func(ctx context.Context, el element) error {
		checked, err := el.Checked(ctx)
		if err != nil {
			return err
		}
		if checked {
			return nil
		}
		return el.Click(ctx)
	})
}

// Select selects the options of a select element by value.
func (l Locator) Select(ctx context.Context, values ...string) error {
	return l.do(ctx, "select", func(ctx context.Context, el element) error {
		return el.Select(ctx, values)
	})
}

// SetFiles sets the files of a file input.
func (l Locator) SetFiles(ctx context.Context, paths ...string) error {
	return l.do(ctx, "set files", func(ctx context.Context, el element) error {
		return el.SetFiles(ctx, paths)
	})
}

// Text returns the visible text of the element, trimmed.
func (l Locator) Text(ctx context.Context) (string, error) {
	return get(ctx, l, "get text", func(ctx context.Context, el element) (string, error) {
		s, err := el.Text(ctx)
		return strings.TrimSpace(s), err
	})
}

// Attribute returns the value of the attribute, and whether it's set.
func (l Locator) Attribute(ctx context.Context, name string) (string, bool, error) {
	var ok bool
	v, err := get(ctx, l, "get attribute "+name, func(ctx context.Context, el element) (string, error) {
		var (
			v   string
			err error
		)
		v, ok, err = el.Attribute(ctx, name)
		return v, err
	})
	return v, ok, err
}

// Value returns the current value of a form control.
func (l Locator) Value(ctx context.Context) (string, error) {
	return get(ctx, l, "get value", func(ctx context.Context, el element) (string, error) {
		return el.Value(ctx)
	})
}

// Style returns the computed value of the css property.
func (l Locator) Style(ctx context.Context, prop string) (string, error) {
	return get(ctx, l, "get style "+prop, func(ctx context.Context, el element) (string, error) {
		return el.Style(ctx, prop)
	})
}

// IsEnabled reports whether the control is enabled.
func (l Locator) IsEnabled(ctx context.Context) (bool, error) {
	return get(ctx, l, "check enabled", func(ctx context.Context, el element) (bool, error) {
		disabled, err := el.Disabled(ctx)
		return !disabled, err
	})
}

// IsChecked reports whether a checkbox or radio button is ticked.
func (l Locator) IsChecked(ctx context.Context) (bool, error) {
	return get(ctx, l, "check checked", func(ctx context.Context, el element) (bool, error) {
		return el.Checked(ctx)
	})
}

// Count returns the number of elements currently matching.
func (l Locator) Count(ctx context.Context) (int, error) {
	els, err := l.now(ctx)
	return len(els), err
}

// Exists reports whether at least one element currently matches.
func (l Locator) Exists(ctx context.Context) (bool, error) {
	n, err := l.Count(ctx)
	return n > 0, err
}

// IsVisible reports whether the first current match is visible.  No match
// is not an error: the element is simply not visible.
func (l Locator) IsVisible(ctx context.Context) (bool, error) {
	els, err := l.now(ctx)
	if err != nil || len(els) == 0 {
		return false, err
	}
	ctx, cancel := l.bounded(ctx)
	defer cancel()
	vis, err := els[0].Visible(ctx)
	if err != nil {
		return false, ErrBrowser{Err: err, FailedTo: "check visibility of " + l.String()}
	}
	return vis, nil
}

// AllTexts returns the trimmed texts of all current matches, in document
// order.
func (l Locator) AllTexts(ctx context.Context) ([]string, error) {
	els, err := l.now(ctx)
	if err != nil {
		return nil, err
	}
	ctx, cancel := l.bounded(ctx)
	defer cancel()
	texts := make([]string, 0, len(els))
	for _, el := range els {
		s, err := el.Text(ctx)
		if err != nil {
			return nil, ErrBrowser{Err: err, FailedTo: "get text of " + l.String()}
		}
		texts = append(texts, strings.TrimSpace(s))
	}
	return texts, nil
}

// now returns the current matches.
func (l Locator) now(ctx context.Context) ([]element, error) {
	ctx, cancel := l.bounded(ctx)
	defer cancel()
	els, err := l.queryAll(ctx)
	if err != nil {
		return nil, ErrBrowser{Err: err, FailedTo: "query " + l.String()}
	}
	return els, nil
}

// elements waits for at least one match and returns all of them.
func (l Locator) elements(ctx context.Context) ([]element, error) {
	ctx, cancel := l.bounded(ctx)
	defer cancel()
	if _, err := l.find(ctx); err != nil {
		return nil, err
	}
	els, err := l.queryAll(ctx)
	if err != nil {
		return nil, ErrBrowser{Err: err, FailedTo: "query " + l.String()}
	}
	return els, nil
}

// in returns a locator for s rooted at the element.
func in(el element, s Selector, timeout time.Duration) Locator {
	return newLocator(el, s, timeout)
}
