package saucedemo

import (
	"context"
	"fmt"
	"runtime/trace"
	"strconv"
	"strings"
)

// InventoryPage is the product listing shown after the login.
type InventoryPage struct {
	tab *Tab

	Rows      Locator
	CartBadge Locator
	CartLink  Locator
	Title     Locator
}

// NewInventoryPage returns the inventory page object of the tab.
func NewInventoryPage(t *Tab) *InventoryPage {
	return &InventoryPage{
		tab:       t,
		Rows:      t.Locator(ByCSS(clsInventoryItem)),
		CartBadge: t.Locator(ByCSS(clsCartBadge)),
		CartLink:  t.Locator(ByCSS(clsCartLink)),
		Title:     t.Locator(ByCSS(clsTitle)),
	}
}

// Open navigates the tab directly to the inventory.  The store lets only the
// logged in users in.
func (p *InventoryPage) Open(ctx context.Context) error {
	return p.tab.Goto(ctx, PathInventory)
}

// Items waits for the listing and returns its items in the display order.
func (p *InventoryPage) Items(ctx context.Context) ([]Item, error) {
	defer trace.StartRegion(ctx, "Items").End()
	rows, err := p.Rows.elements(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		it, err := newItem(ctx, row, p.tab.timeout)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

// FindItemByName returns the item with the name, compared case-insensitively
// and regardless of the whitespace and brackets.  ok is false if there's no
// such item.
func (p *InventoryPage) FindItemByName(ctx context.Context, name string) (it Item, ok bool, err error) {
	items, err := p.Items(ctx)
	if err != nil {
		return Item{}, false, err
	}
	id := ProductID(name)
	for _, it := range items {
		if ProductID(it.Name) == id {
			return it, true, nil
		}
	}
	return Item{}, false, nil
}

// AddProductToCart adds the product with the name to the cart.  It returns
// ErrItemNotFound if there's no such product.
func (p *InventoryPage) AddProductToCart(ctx context.Context, name string) error {
	it, ok, err := p.FindItemByName(ctx, name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %q", ErrItemNotFound, name)
	}
	p.tab.lg.Debug("add to cart", "tab", p.tab.id, "item", it.Name)
	return it.AddToCart(ctx)
}

// AddMultipleProductsToCart adds the products in order.  The names that
// can't be found do not stop the others from being added, but are reported
// in the ErrItemNotFound error at the end.
func (p *InventoryPage) AddMultipleProductsToCart(ctx context.Context, names []string) error {
	ctx, task := trace.NewTask(ctx, "AddMultipleProductsToCart")
	defer task.End()

	var missing []string
	for _, name := range names {
		// the listing is enumerated for every product: adding to cart
		// re-renders the row.
		it, ok, err := p.FindItemByName(ctx, name)
		if err != nil {
			return err
		}
		if !ok {
			missing = append(missing, strconv.Quote(name))
			continue
		}
		if err := it.AddToCart(ctx); err != nil {
			return err
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrItemNotFound, strings.Join(missing, ", "))
	}
	return nil
}

// RemoveProduct removes the product with the name from the cart.  Unlike
// [Item.RemoveFromCart], it fails if the product is not in the cart.
func (p *InventoryPage) RemoveProduct(ctx context.Context, name string) error {
	it, ok, err := p.FindItemByName(ctx, name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %q", ErrItemNotFound, name)
	}
	return it.removeButton().Click(ctx)
}

// GetCartItemCount returns the cart badge text, or "0" if there's no badge.
func (p *InventoryPage) GetCartItemCount(ctx context.Context) (string, error) {
	vis, err := p.CartBadge.IsVisible(ctx)
	if err != nil {
		return "", err
	}
	if !vis {
		return "0", nil
	}
	s, err := p.CartBadge.Text(ctx)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "0", nil
	}
	return s, nil
}

// ClickCart opens the cart and waits for it to load.
func (p *InventoryPage) ClickCart(ctx context.Context) error {
	return p.tab.follow(ctx, StateCart, p.CartLink, true)
}
