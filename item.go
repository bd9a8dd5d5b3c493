package saucedemo

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Item is a product row on the inventory page.  The attributes are read once,
// when the item is enumerated.  The actions are bound to the row element, and
// fail if the row has been detached since, i.e. after a navigation.
type Item struct {
	Name        string
	Description string
	Price       string

	row     element
	timeout time.Duration
}

func newItem(ctx context.Context, row element, timeout time.Duration) (Item, error) {
	it := Item{row: row, timeout: timeout}
	for _, f := range []struct {
		css string
		dst *string
	}{
		{clsItemName, &it.Name},
		{clsItemDesc, &it.Description},
		{clsItemPrice, &it.Price},
	} {
		s, err := in(row, ByCSS(f.css), timeout).Text(ctx)
		if err != nil {
			return Item{}, err
		}
		*f.dst = s
	}
	return it, nil
}

func (it Item) addButton() Locator {
	return in(it.row, ByText("button", captionAddToCart), it.timeout)
}

func (it Item) removeButton() Locator {
	return in(it.row, ByText("button", captionRemove), it.timeout)
}

// AddToCart clicks the "Add to cart" button of the item.
func (it Item) AddToCart(ctx context.Context) error {
	return it.addButton().Click(ctx)
}

// RemoveFromCart clicks the "Remove" button of the item.  If the item is not
// in the cart, there's no button, and the call does nothing.
func (it Item) RemoveFromCart(ctx context.Context) error {
	vis, err := it.removeButton().IsVisible(ctx)
	if err != nil || !vis {
		return err
	}
	return it.removeButton().Click(ctx)
}

// PriceValue returns the numeric price, i.e. 29.99 for "$29.99".
func (it Item) PriceValue() (float64, bool) {
	return parsePrice(it.Price)
}

var reNumber = regexp.MustCompile(`\d+\.?\d*`)

// parsePrice extracts the first number from s.
func parsePrice(s string) (float64, bool) {
	m := reNumber.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseAmount strips the prefix from the summary label and parses the rest.
// Any failure results in 0.
func parseAmount(label, prefix string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(label), prefix)), 64)
	if err != nil {
		return 0
	}
	return v
}

// ProductID returns the identifier the store derives from the product name,
// i.e. "sauce-labs-bolt-t-shirt" for "Sauce Labs Bolt T-Shirt".
func ProductID(name string) string {
	id := strings.Join(strings.Fields(strings.ToLower(name)), "-")
	return strings.NewReplacer("(", "", ")", "").Replace(id)
}
