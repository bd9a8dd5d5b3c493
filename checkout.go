package saucedemo

import (
	"context"
)

// CheckoutInfoPage is the first step of the checkout: the customer details
// form.
type CheckoutInfoPage struct {
	tab *Tab

	FirstName  Locator
	LastName   Locator
	PostalCode Locator
	Continue   Locator
	Cancel     Locator
	errMsg     Locator
}

// NewCheckoutInfoPage returns the checkout information form of the tab.
func NewCheckoutInfoPage(t *Tab) *CheckoutInfoPage {
	return &CheckoutInfoPage{
		tab:        t,
		FirstName:  t.Locator(ByTestID(tidFirstName)),
		LastName:   t.Locator(ByTestID(tidLastName)),
		PostalCode: t.Locator(ByTestID(tidPostalCode)),
		Continue:   t.Locator(ByTestID(tidContinue)),
		Cancel:     t.Locator(ByTestID(tidCancel)),
		errMsg:     t.Locator(ByTestID(tidError)),
	}
}

// FillCheckoutInfo fills in all three fields.  Empty values clear the field,
// to exercise the form validation.
func (p *CheckoutInfoPage) FillCheckoutInfo(ctx context.Context, firstName, lastName, postalCode string) error {
	p.tab.lg.Debug("checkout info", "tab", p.tab.id, "first", firstName, "last", lastName, "postal", postalCode)
	if err := p.FirstName.Fill(ctx, firstName); err != nil {
		return err
	}
	if err := p.LastName.Fill(ctx, lastName); err != nil {
		return err
	}
	return p.PostalCode.Fill(ctx, postalCode)
}

// ClickContinue submits the form.  The store stays on the form if the
// validation fails.
func (p *CheckoutInfoPage) ClickContinue(ctx context.Context) error {
	return p.tab.follow(ctx, StateCheckoutOverview, p.Continue, false)
}

// ClickCancel returns to the cart.
func (p *CheckoutInfoPage) ClickCancel(ctx context.Context) error {
	return p.tab.follow(ctx, StateCart, p.Cancel, false)
}

// ErrorMessage returns the locator of the validation error banner, for the
// caller's assertions.
func (p *CheckoutInfoPage) ErrorMessage() Locator {
	return p.errMsg
}

// GetErrorMessage waits for the validation error and returns its text, or an
// empty string if there's none.
func (p *CheckoutInfoPage) GetErrorMessage(ctx context.Context) (string, error) {
	return optionalText(ctx, p.errMsg)
}

// CheckoutOverviewPage is the second step of the checkout: the order summary.
type CheckoutOverviewPage struct {
	tab *Tab

	ItemNames      Locator
	Subtotal       Locator
	Tax            Locator
	Total          Locator
	Finish         Locator
	Cancel         Locator
	CompleteHeader Locator
}

// NewCheckoutOverviewPage returns the order summary page object of the tab.
func NewCheckoutOverviewPage(t *Tab) *CheckoutOverviewPage {
	return &CheckoutOverviewPage{
		tab:            t,
		ItemNames:      t.Locator(ByCSS(clsItemName)),
		Subtotal:       t.Locator(ByCSS(clsSubtotal)),
		Tax:            t.Locator(ByCSS(clsTax)),
		Total:          t.Locator(ByCSS(clsTotal)),
		Finish:         t.Locator(ByTestID(tidFinish)),
		Cancel:         t.Locator(ByTestID(tidCancel)),
		CompleteHeader: t.Locator(ByCSS(clsCompleteHeader)),
	}
}

func (p *CheckoutOverviewPage) amount(ctx context.Context, l Locator, prefix string) (float64, error) {
	s, err := l.Text(ctx)
	if err != nil {
		return 0, err
	}
	return parseAmount(s, prefix), nil
}

// GetItemTotal returns the amount of the "Item total" label, or 0 if the
// label can't be parsed.
func (p *CheckoutOverviewPage) GetItemTotal(ctx context.Context) (float64, error) {
	return p.amount(ctx, p.Subtotal, ItemTotalPrefix)
}

// GetTax returns the amount of the "Tax" label.
func (p *CheckoutOverviewPage) GetTax(ctx context.Context) (float64, error) {
	return p.amount(ctx, p.Tax, TaxPrefix)
}

// GetTotal returns the amount of the "Total" label.
func (p *CheckoutOverviewPage) GetTotal(ctx context.Context) (float64, error) {
	return p.amount(ctx, p.Total, TotalPrefix)
}

// GetItemNames returns the names of the ordered products in the display
// order.  It waits for the summary to render first.
func (p *CheckoutOverviewPage) GetItemNames(ctx context.Context) ([]string, error) {
	if err := p.Subtotal.WaitVisible(ctx); err != nil {
		return nil, err
	}
	return p.ItemNames.AllTexts(ctx)
}

// ClickFinish places the order.
func (p *CheckoutOverviewPage) ClickFinish(ctx context.Context) error {
	return p.tab.follow(ctx, StateCheckoutComplete, p.Finish, false)
}

// ClickCancel abandons the checkout and returns to the inventory.
func (p *CheckoutOverviewPage) ClickCancel(ctx context.Context) error {
	return p.tab.follow(ctx, StateInventory, p.Cancel, false)
}

// IsOrderComplete reports whether the order confirmation is visible right
// now.
func (p *CheckoutOverviewPage) IsOrderComplete(ctx context.Context) (bool, error) {
	return p.CompleteHeader.IsVisible(ctx)
}

// CheckoutCompletePage is the order confirmation.
type CheckoutCompletePage struct {
	tab *Tab

	HeaderText   Locator
	TitleText    Locator
	PonyExpress  Locator
	CartBadge    Locator
	backProducts Locator
}

// NewCheckoutCompletePage returns the order confirmation page object of the
// tab.
func NewCheckoutCompletePage(t *Tab) *CheckoutCompletePage {
	return &CheckoutCompletePage{
		tab:          t,
		HeaderText:   t.Locator(ByCSS(clsCompleteHeader)),
		TitleText:    t.Locator(ByCSS(clsTitle)),
		PonyExpress:  t.Locator(ByCSS(clsPonyExpress)),
		CartBadge:    t.Locator(ByTestID(tidCartBadge)),
		backProducts: t.Locator(ByTestID(tidBackToProducts)),
	}
}

// Header returns the confirmation header, i.e. [MsgThankYou].
func (p *CheckoutCompletePage) Header(ctx context.Context) (string, error) {
	return p.HeaderText.Text(ctx)
}

// Title returns the page title, i.e. [MsgCheckoutComplete].
func (p *CheckoutCompletePage) Title(ctx context.Context) (string, error) {
	return p.TitleText.Text(ctx)
}

// IsConfirmationVisible reports whether the confirmation image is visible.
func (p *CheckoutCompletePage) IsConfirmationVisible(ctx context.Context) (bool, error) {
	return p.PonyExpress.IsVisible(ctx)
}

// BackToProducts returns the locator of the "Back Home" button.  Clicking it
// leaves the terminal state of the flow, and is the caller's business.
func (p *CheckoutCompletePage) BackToProducts() Locator {
	return p.backProducts
}

// IsCartBadgePresent reports whether the cart badge is visible.  After the
// order is placed, the cart is empty, and there should be no badge.
func (p *CheckoutCompletePage) IsCartBadgePresent(ctx context.Context) (bool, error) {
	return p.CartBadge.IsVisible(ctx)
}
