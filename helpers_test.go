package saucedemo

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"sync"
	"testing"
	"time"

	gomock "go.uber.org/mock/gomock"
)

const testTimeout = 300 * time.Millisecond

var testBase, _ = url.Parse("https://www.saucedemo.com")

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// fakeTab is a tab backed by a mock page, that is located at the address
// held in url.
type fakeTab struct {
	*Tab
	pg *Mockpager

	mu  sync.Mutex
	url string
}

func newFakeTab(t *testing.T, ctrl *gomock.Controller, path string) *fakeTab {
	t.Helper()
	pg := NewMockpager(ctrl)
	ft := &fakeTab{
		Tab: newTab(pg, testBase, testTimeout, discardLogger),
		pg:  pg,
		url: testBase.String() + path,
	}
	pg.EXPECT().URL(gomock.Any()).DoAndReturn(func(context.Context) (string, error) {
		ft.mu.Lock()
		defer ft.mu.Unlock()
		return ft.url, nil
	}).AnyTimes()
	return ft
}

// moveTo returns a function that moves the fake tab to the path, to be used
// in DoAndReturn of the click expectations.
func (ft *fakeTab) moveTo(path string) func(context.Context) error {
	return func(context.Context) error {
		ft.mu.Lock()
		defer ft.mu.Unlock()
		ft.url = testBase.String() + path
		return nil
	}
}

// blockUntilDone mimics rod's ElementByJS that never finds the element.
func blockUntilDone(ctx context.Context, _ Selector) (element, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

// textEl returns a mock element with the given text.
func textEl(ctrl *gomock.Controller, s string) *Mockelement {
	el := NewMockelement(ctrl)
	el.EXPECT().Text(gomock.Any()).Return(s, nil).AnyTimes()
	return el
}

// visibleEl returns a mock element with the given visibility.
func visibleEl(ctrl *gomock.Controller, v bool) *Mockelement {
	el := NewMockelement(ctrl)
	el.EXPECT().Visible(gomock.Any()).Return(v, nil).AnyTimes()
	return el
}

// productRow returns a mock inventory row.  add is the "Add to cart" button,
// and may be nil if it is not expected to be used.
func productRow(ctrl *gomock.Controller, name, price string, add element) *Mockelement {
	row := NewMockelement(ctrl)
	row.EXPECT().Query(gomock.Any(), ByCSS(clsItemName)).Return(textEl(ctrl, "  "+name+"\n"), nil).AnyTimes()
	row.EXPECT().Query(gomock.Any(), ByCSS(clsItemDesc)).Return(textEl(ctrl, "description of "+name), nil).AnyTimes()
	row.EXPECT().Query(gomock.Any(), ByCSS(clsItemPrice)).Return(textEl(ctrl, price), nil).AnyTimes()
	if add != nil {
		row.EXPECT().Query(gomock.Any(), ByText("button", captionAddToCart)).Return(add, nil).AnyTimes()
	}
	return row
}

func asElements[T element](els ...T) []element {
	ret := make([]element, 0, len(els))
	for _, el := range els {
		ret = append(ret, el)
	}
	return ret
}
