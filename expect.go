package saucedemo

import (
	"context"
	"fmt"
	"regexp"
	"runtime/trace"
	"strconv"
	"strings"
	"time"

	"github.com/go-rod/rod/lib/utils"
)

// polling intervals of the synchronisation barriers.
const (
	pollMin = 50 * time.Millisecond
	pollMax = 500 * time.Millisecond
)

// ExpectationError is returned by the Wait* barriers when the condition did
// not hold before the wait expired.  It satisfies errors.Is(err, ErrTimeout).
type ExpectationError struct {
	// Subject is the locator or page that was examined.
	Subject string
	// Want describes the expected state.
	Want string
	// Got is the last observed state.
	Got string
	// Err is the last error encountered while probing, if any.
	Err error
}

func (e *ExpectationError) Error() string {
	msg := fmt.Sprintf("expected %s to be %s, got %s", e.Subject, e.Want, e.Got)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ExpectationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrTimeout}
	}
	return []error{ErrTimeout, e.Err}
}

// probeFunc observes the current state.  It returns the state description,
// and whether the condition holds.
type probeFunc func(ctx context.Context) (got string, ok bool, err error)

// await polls probe until it reports ok, or the timeout expires.  Probe
// errors are not fatal: the DOM is in flux, and elements may detach between
// the query and the read.
func await(ctx context.Context, timeout time.Duration, subject, want string, probe probeFunc) error {
	ctx, cancel := context.WithTimeoutCause(ctx, timeout, ErrTimeout)
	defer cancel()
	defer trace.StartRegion(ctx, "await").End()

	var (
		got     = "nothing"
		lastErr error
	)
	err := utils.Retry(ctx, utils.BackoffSleeper(pollMin, pollMax, nil), func() (bool, error) {
		g, ok, err := probe(ctx)
		if err != nil {
			lastErr = err
			return false, nil
		}
		got, lastErr = g, nil
		return ok, nil
	})
	if err != nil {
		return &ExpectationError{Subject: subject, Want: want, Got: got, Err: lastErr}
	}
	return nil
}

func (l Locator) await(ctx context.Context, want string, probe probeFunc) error {
	return await(ctx, l.timeout, l.String(), want, probe)
}

// first returns the first current match, or nil.
func (l Locator) first(ctx context.Context) (element, error) {
	els, err := l.queryAll(ctx)
	if err != nil || len(els) == 0 {
		return nil, err
	}
	return els[0], nil
}

const stateAbsent = "absent"

func visibility(v bool) string {
	if v {
		return "visible"
	}
	return "hidden"
}

// WaitVisible waits until the element is present and visible.
func (l Locator) WaitVisible(ctx context.Context) error {
	return l.await(ctx, "visible", func(ctx context.Context) (string, bool, error) {
		el, err := l.first(ctx)
		if err != nil || el == nil {
			return stateAbsent, false, err
		}
		v, err := el.Visible(ctx)
		return visibility(v), v, err
	})
}

// WaitHidden waits until the element is either absent, or not visible.
func (l Locator) WaitHidden(ctx context.Context) error {
	return l.await(ctx, "hidden", func(ctx context.Context) (string, bool, error) {
		el, err := l.first(ctx)
		if err != nil {
			return "", false, err
		}
		if el == nil {
			return stateAbsent, true, nil
		}
		v, err := el.Visible(ctx)
		return visibility(v), !v, err
	})
}

// WaitDetached waits until nothing matches.
func (l Locator) WaitDetached(ctx context.Context) error {
	return l.await(ctx, stateAbsent, func(ctx context.Context) (string, bool, error) {
		els, err := l.queryAll(ctx)
		return strconv.Itoa(len(els)) + " element(s)", len(els) == 0, err
	})
}

// WaitCount waits until exactly n elements match.
func (l Locator) WaitCount(ctx context.Context, n int) error {
	return l.await(ctx, fmt.Sprintf("%d element(s)", n), func(ctx context.Context) (string, bool, error) {
		els, err := l.queryAll(ctx)
		return strconv.Itoa(len(els)) + " element(s)", len(els) == n, err
	})
}

// normSpace collapses the runs of whitespace and trims the string.
func normSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func (l Locator) awaitText(ctx context.Context, want string, match func(string) bool) error {
	return l.await(ctx, want, func(ctx context.Context) (string, bool, error) {
		el, err := l.first(ctx)
		if err != nil || el == nil {
			return stateAbsent, false, err
		}
		s, err := el.Text(ctx)
		if err != nil {
			return "", false, err
		}
		s = normSpace(s)
		return strconv.Quote(s), match(s), nil
	})
}

// WaitText waits until the element text equals want, ignoring the
// differences in whitespace.
func (l Locator) WaitText(ctx context.Context, want string) error {
	want = normSpace(want)
	return l.awaitText(ctx, "text "+strconv.Quote(want), func(s string) bool {
		return s == want
	})
}

// WaitTextContains waits until the element text contains sub.
func (l Locator) WaitTextContains(ctx context.Context, sub string) error {
	sub = normSpace(sub)
	return l.awaitText(ctx, "text containing "+strconv.Quote(sub), func(s string) bool {
		return strings.Contains(s, sub)
	})
}

// WaitTextMatch waits until the element text matches re.
func (l Locator) WaitTextMatch(ctx context.Context, re *regexp.Regexp) error {
	return l.awaitText(ctx, "text matching "+re.String(), re.MatchString)
}

// WaitAttribute waits until the attribute is set to want.
func (l Locator) WaitAttribute(ctx context.Context, name, want string) error {
	return l.await(ctx, fmt.Sprintf("%s=%q", name, want), func(ctx context.Context) (string, bool, error) {
		el, err := l.first(ctx)
		if err != nil || el == nil {
			return stateAbsent, false, err
		}
		v, ok, err := el.Attribute(ctx, name)
		if err != nil {
			return "", false, err
		}
		if !ok {
			return name + " unset", false, nil
		}
		return fmt.Sprintf("%s=%q", name, v), v == want, nil
	})
}

// WaitValue waits until the form control value equals want.
func (l Locator) WaitValue(ctx context.Context, want string) error {
	return l.await(ctx, "value "+strconv.Quote(want), func(ctx context.Context) (string, bool, error) {
		el, err := l.first(ctx)
		if err != nil || el == nil {
			return stateAbsent, false, err
		}
		v, err := el.Value(ctx)
		return "value " + strconv.Quote(v), v == want, err
	})
}

// WaitEnabled waits until the control is enabled.
func (l Locator) WaitEnabled(ctx context.Context) error {
	return l.awaitDisabled(ctx, false)
}

// WaitDisabled waits until the control is disabled.
func (l Locator) WaitDisabled(ctx context.Context) error {
	return l.awaitDisabled(ctx, true)
}

func (l Locator) awaitDisabled(ctx context.Context, want bool) error {
	state := func(disabled bool) string {
		if disabled {
			return "disabled"
		}
		return "enabled"
	}
	return l.await(ctx, state(want), func(ctx context.Context) (string, bool, error) {
		el, err := l.first(ctx)
		if err != nil || el == nil {
			return stateAbsent, false, err
		}
		d, err := el.Disabled(ctx)
		return state(d), d == want, err
	})
}

// WaitStyle waits until the computed css property equals want.
func (l Locator) WaitStyle(ctx context.Context, prop, want string) error {
	return l.await(ctx, fmt.Sprintf("%s: %s", prop, want), func(ctx context.Context) (string, bool, error) {
		el, err := l.first(ctx)
		if err != nil || el == nil {
			return stateAbsent, false, err
		}
		v, err := el.Style(ctx, prop)
		return prop + ": " + v, v == want, err
	})
}
