package saucedemo

import (
	"context"
)

// CartItem is a line of the cart.
type CartItem struct {
	Name  string
	Price string
}

// PriceValue returns the numeric price of the line.
func (c CartItem) PriceValue() (float64, bool) {
	return parsePrice(c.Price)
}

// CartPage is the shopping cart.
type CartPage struct {
	tab *Tab

	Rows             Locator
	Checkout         Locator
	ContinueShopping Locator
}

// NewCartPage returns the cart page object of the tab.
func NewCartPage(t *Tab) *CartPage {
	return &CartPage{
		tab:              t,
		Rows:             t.Locator(ByCSS(clsCartItem)),
		Checkout:         t.Locator(ByTestID(tidCheckout)),
		ContinueShopping: t.Locator(ByTestID(tidContinueShopping)),
	}
}

// Open navigates the tab directly to the cart.
func (p *CartPage) Open(ctx context.Context) error {
	return p.tab.Goto(ctx, PathCart)
}

// GetCartItems returns the lines of the cart in the display order.  An empty
// cart is not an error.
func (p *CartPage) GetCartItems(ctx context.Context) ([]CartItem, error) {
	rows, err := p.Rows.now(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]CartItem, 0, len(rows))
	for _, row := range rows {
		name, err := in(row, ByCSS(clsItemName), p.tab.timeout).Text(ctx)
		if err != nil {
			return nil, err
		}
		price, err := in(row, ByCSS(clsItemPrice), p.tab.timeout).Text(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, CartItem{Name: name, Price: price})
	}
	return items, nil
}

// RemoveItemByName removes the line with the name.  It fails if there's no
// such line.
func (p *CartPage) RemoveItemByName(ctx context.Context, name string) error {
	return p.tab.Locator(Has(clsCartItem, name)).Locator(ByText("button", captionRemove)).Click(ctx)
}

// ClickCheckout proceeds to the checkout information form.  It does not wait
// for the form to load.
func (p *CartPage) ClickCheckout(ctx context.Context) error {
	return p.tab.follow(ctx, StateCheckoutInfo, p.Checkout, false)
}

// ClickContinueShopping returns to the inventory.
func (p *CartPage) ClickContinueShopping(ctx context.Context) error {
	return p.tab.follow(ctx, StateInventory, p.ContinueShopping, false)
}

// CartTotal returns the sum of the line prices.
func (p *CartPage) CartTotal(ctx context.Context) (float64, error) {
	items, err := p.GetCartItems(ctx)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, it := range items {
		if v, ok := it.PriceValue(); ok {
			total += v
		}
	}
	return total, nil
}
