package saucedemo

import (
	"context"
	"errors"
	"runtime/trace"
	"strings"
)

// LoginPage is the store entry page.
type LoginPage struct {
	tab *Tab

	Username    Locator
	Password    Locator
	LoginButton Locator
	// ErrorMessage is the banner shown when the login is rejected.
	ErrorMessage Locator
	// ErrorButton dismisses the error banner.
	ErrorButton Locator
}

// NewLoginPage returns the login page object of the tab.
func NewLoginPage(t *Tab) *LoginPage {
	return &LoginPage{
		tab:          t,
		Username:     t.Locator(ByTestID(tidUsername)),
		Password:     t.Locator(ByTestID(tidPassword)),
		LoginButton:  t.Locator(ByTestID(tidLoginButton)),
		ErrorMessage: t.Locator(ByTestID(tidError)),
		ErrorButton:  t.Locator(ByTestID(tidErrorButton)),
	}
}

// Open navigates the tab to the login page.
func (p *LoginPage) Open(ctx context.Context) error {
	return p.tab.Goto(ctx, PathLogin)
}

func (p *LoginPage) EnterUsername(ctx context.Context, username string) error {
	return p.Username.Fill(ctx, username)
}

func (p *LoginPage) EnterPassword(ctx context.Context, password string) error {
	return p.Password.Fill(ctx, password)
}

// ClickLogin submits the form.  It does not wait for the inventory: the login
// may be rejected, and the caller decides what to expect.
func (p *LoginPage) ClickLogin(ctx context.Context) error {
	return p.tab.follow(ctx, StateInventory, p.LoginButton, false)
}

// Authorize enters the credentials and submits the form.  Empty credentials
// are submitted as they are, to exercise the form validation.
func (p *LoginPage) Authorize(ctx context.Context, username, password string) error {
	ctx, task := trace.NewTask(ctx, "Authorize")
	defer task.End()

	p.tab.lg.Debug("authorize", "tab", p.tab.id, "username", username)
	if err := p.EnterUsername(ctx, username); err != nil {
		return err
	}
	if err := p.EnterPassword(ctx, password); err != nil {
		return err
	}
	return p.ClickLogin(ctx)
}

// GetErrorMessage waits for the error banner and returns its text.  If the
// banner does not appear, it returns an empty string.
func (p *LoginPage) GetErrorMessage(ctx context.Context) (string, error) {
	return optionalText(ctx, p.ErrorMessage)
}

// IsErrorDisplayed reports whether the error banner is visible right now.
func (p *LoginPage) IsErrorDisplayed(ctx context.Context) (bool, error) {
	return p.ErrorMessage.IsVisible(ctx)
}

// IsOnLoginPage reports whether the tab is on the store root.  Every store
// address starts with the root, so this only distinguishes the store from
// the foreign sites.
func (p *LoginPage) IsOnLoginPage(ctx context.Context) (bool, error) {
	u, err := p.tab.URL(ctx)
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(u, p.tab.BaseURL()), nil
}

// CloseErrorMessage dismisses the error banner and waits for both the dismiss
// button and the banner to disappear.  It fails if there's no banner to
// dismiss.
func (p *LoginPage) CloseErrorMessage(ctx context.Context) error {
	if err := p.ErrorButton.WaitVisible(ctx); err != nil {
		return err
	}
	if err := p.ErrorButton.Click(ctx); err != nil {
		return err
	}
	if err := p.ErrorButton.WaitHidden(ctx); err != nil {
		return err
	}
	return p.ErrorMessage.WaitHidden(ctx)
}

// optionalText returns the text of the element, or an empty string if the
// element does not appear within the locator timeout.
func optionalText(ctx context.Context, l Locator) (string, error) {
	s, err := l.Text(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return s, nil
}
