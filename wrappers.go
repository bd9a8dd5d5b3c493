package saucedemo

import (
	"context"
	_ "embed"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/proto"
)

//go:generate mockgen -destination=wrappers_mocks_test.go -package=saucedemo -source wrappers.go

//go:embed resolve.js
var resolveJS string

// finder resolves selectors under some root, which is either the page, or an
// element.  It is the seam between the locators and rod, and is mocked in
// tests.
type finder interface {
	// Query waits until the selector matches and returns the first match.
	Query(ctx context.Context, s Selector) (element, error)
	// QueryAll returns all current matches without waiting.
	QueryAll(ctx context.Context, s Selector) ([]element, error)
}

// element is the subset of rod.Element used by locators.  All methods wait
// for the element to become actionable within ctx.
type element interface {
	finder
	Click(ctx context.Context) error
	Fill(ctx context.Context, text string) error
	Press(ctx context.Context, key input.Key) error
	Text(ctx context.Context) (string, error)
	Attribute(ctx context.Context, name string) (string, bool, error)
	Value(ctx context.Context) (string, error)
	Visible(ctx context.Context) (bool, error)
	Disabled(ctx context.Context) (bool, error)
	Checked(ctx context.Context) (bool, error)
	Style(ctx context.Context, prop string) (string, error)
	Select(ctx context.Context, values []string) error
	SetFiles(ctx context.Context, paths []string) error
}

// pager is the subset of rod.Page used by the tab.
type pager interface {
	finder
	Navigate(ctx context.Context, url string) error
	URL(ctx context.Context) (string, error)
	Title(ctx context.Context) (string, error)
}

type (
	pageWrapper    rod.Page
	elementWrapper rod.Element
)

func resolveOpts(first bool, s Selector) *rod.EvalOptions {
	return rod.Eval(resolveJS, first, s.kind.String(), s.css, s.text, s.role, s.exact)
}

func wrapElements(els rod.Elements) []element {
	ret := make([]element, 0, len(els))
	for _, el := range els {
		ret = append(ret, (*elementWrapper)(el))
	}
	return ret
}

func (p *pageWrapper) page(ctx context.Context) *rod.Page {
	return (*rod.Page)(p).Context(ctx)
}

func (p *pageWrapper) Query(ctx context.Context, s Selector) (element, error) {
	el, err := p.page(ctx).ElementByJS(resolveOpts(true, s))
	if err != nil {
		return nil, err
	}
	return (*elementWrapper)(el), nil
}

func (p *pageWrapper) QueryAll(ctx context.Context, s Selector) ([]element, error) {
	els, err := p.page(ctx).ElementsByJS(resolveOpts(false, s))
	if err != nil {
		return nil, err
	}
	return wrapElements(els), nil
}

func (p *pageWrapper) Navigate(ctx context.Context, url string) error {
	page := p.page(ctx)
	if err := page.Navigate(url); err != nil {
		return err
	}
	return page.WaitLoad()
}

func (p *pageWrapper) URL(ctx context.Context) (string, error) {
	return evalString(p.page(ctx).Eval(`() => location.href`))
}

func (p *pageWrapper) Title(ctx context.Context) (string, error) {
	return evalString(p.page(ctx).Eval(`() => document.title`))
}

func (e *elementWrapper) elem(ctx context.Context) *rod.Element {
	return (*rod.Element)(e).Context(ctx)
}

func (e *elementWrapper) Query(ctx context.Context, s Selector) (element, error) {
	el, err := e.elem(ctx).ElementByJS(resolveOpts(true, s))
	if err != nil {
		return nil, err
	}
	return (*elementWrapper)(el), nil
}

func (e *elementWrapper) QueryAll(ctx context.Context, s Selector) ([]element, error) {
	els, err := e.elem(ctx).ElementsByJS(resolveOpts(false, s))
	if err != nil {
		return nil, err
	}
	return wrapElements(els), nil
}

func (e *elementWrapper) Click(ctx context.Context) error {
	return e.elem(ctx).Click(proto.InputMouseButtonLeft, 1)
}

// Fill replaces the contents of a text field, the way the user does it:
// select all, delete, type.  Setting the value property directly would be
// invisible to the store's react components.
func (e *elementWrapper) Fill(ctx context.Context, text string) error {
	el := e.elem(ctx)
	if err := el.SelectAllText(); err != nil {
		return err
	}
	if err := el.Type(input.Backspace); err != nil {
		return err
	}
	if text == "" {
		return nil
	}
	return el.Input(text)
}

func (e *elementWrapper) Press(ctx context.Context, key input.Key) error {
	return e.elem(ctx).Type(key)
}

func (e *elementWrapper) Text(ctx context.Context) (string, error) {
	return e.elem(ctx).Text()
}

func (e *elementWrapper) Attribute(ctx context.Context, name string) (string, bool, error) {
	v, err := e.elem(ctx).Attribute(name)
	if err != nil {
		return "", false, err
	}
	if v == nil {
		return "", false, nil
	}
	return *v, true, nil
}

func (e *elementWrapper) Value(ctx context.Context) (string, error) {
	return evalString(e.elem(ctx).Eval(`() => this.value === undefined ? "" : String(this.value)`))
}

func (e *elementWrapper) Visible(ctx context.Context) (bool, error) {
	return e.elem(ctx).Visible()
}

func (e *elementWrapper) Disabled(ctx context.Context) (bool, error) {
	return e.elem(ctx).Disabled()
}

func (e *elementWrapper) Checked(ctx context.Context) (bool, error) {
	res, err := e.elem(ctx).Eval(`() => !!this.checked`)
	if err != nil {
		return false, err
	}
	return res.Value.Bool(), nil
}

func (e *elementWrapper) Style(ctx context.Context, prop string) (string, error) {
	return evalString(e.elem(ctx).Eval(`(p) => getComputedStyle(this).getPropertyValue(p)`, prop))
}

// Select selects the options of a select element by their values.
func (e *elementWrapper) Select(ctx context.Context, values []string) error {
	sels := make([]string, 0, len(values))
	for _, v := range values {
		sels = append(sels, "option[value="+cssQuote(v)+"]")
	}
	return e.elem(ctx).Select(sels, true, rod.SelectorTypeCSSSector)
}

func (e *elementWrapper) SetFiles(ctx context.Context, paths []string) error {
	return e.elem(ctx).SetFiles(paths)
}

func evalString(res *proto.RuntimeRemoteObject, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return res.Value.Str(), nil
}
