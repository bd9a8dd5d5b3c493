package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/rusq/saucedemo"
	"github.com/rusq/saucedemo/internal/fixture"
	"github.com/rusq/saucedemo/internal/playground"
)

func browsersCommand() *cli.Command {
	return &cli.Command{
		Name:  "browsers",
		Usage: "list the browsers found on the system",
		Action: func(c *cli.Context) error {
			b, err := saucedemo.ListBrowsers()
			if err != nil {
				if errors.Is(err, saucedemo.ErrNoBrowsers) {
					slog.Warn("no browsers found on the system, the bundled one will be used")
					return nil
				}
				return err
			}
			tw := tabwriter.NewWriter(os.Stdout, 0, 0, 1, ' ', 0)
			defer tw.Flush()
			fmt.Fprintln(tw, "Name\tPath")
			for _, br := range b {
				fmt.Fprintf(tw, "%s\t%s\n", br.Name, br.Path)
			}
			return nil
		},
	}
}

func credentialFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: flagUsername, Aliases: []string{"u"}, Usage: "account `name`, the standard user if empty", EnvVars: []string{"SAUCE_USERNAME"}},
		&cli.StringFlag{Name: flagPassword, Aliases: []string{"p"}, Usage: "account password", EnvVars: []string{"SAUCE_PASSWORD"}},
	}
}

// credentials returns the account to log in with.  The password of a known
// account is taken from the test data, if not given.
func credentials(c *cli.Context, data *fixture.Data) (username, password string) {
	username, password = c.String(flagUsername), c.String(flagPassword)
	if username == "" {
		acc := data.Standard()
		username = acc.Username
		if password == "" {
			password = acc.Password
		}
	}
	if password == "" {
		if acc, ok := data.Account(username); ok {
			password = acc.Password
		}
	}
	return username, password
}

// login logs in and waits for the inventory.  The store error message is
// returned as the error, if the login fails.
func login(ctx context.Context, tab *saucedemo.Tab, username, password string) (*saucedemo.InventoryPage, error) {
	lp := saucedemo.NewLoginPage(tab)
	if err := lp.Open(ctx); err != nil {
		return nil, err
	}
	start := time.Now()
	if err := lp.Authorize(ctx, username, password); err != nil {
		return nil, err
	}
	err := tab.WaitState(ctx, saucedemo.StateInventory)
	if err == nil {
		slog.Info("logged in", "user", username, "d", time.Since(start))
		return saucedemo.NewInventoryPage(tab), nil
	}
	msg, merr := lp.GetErrorMessage(ctx)
	if merr != nil || msg == "" {
		return nil, err
	}
	return nil, cli.Exit(msg, 1)
}

func loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "log in and report the outcome",
		Flags: credentialFlags(),
		Action: func(c *cli.Context) error {
			data, err := loadFixture(c)
			if err != nil {
				return err
			}
			username, password := credentials(c, data)
			return withTab(c, func(ctx context.Context, tab *saucedemo.Tab) error {
				if _, err := login(ctx, tab, username, password); err != nil {
					return err
				}
				u, err := tab.URL(ctx)
				if err != nil {
					return err
				}
				fmt.Println(u)
				return nil
			})
		},
	}
}

func inventoryCommand() *cli.Command {
	return &cli.Command{
		Name:  "inventory",
		Usage: "list the products of the store",
		Flags: credentialFlags(),
		Action: func(c *cli.Context) error {
			data, err := loadFixture(c)
			if err != nil {
				return err
			}
			username, password := credentials(c, data)
			return withTab(c, func(ctx context.Context, tab *saucedemo.Tab) error {
				inv, err := login(ctx, tab, username, password)
				if err != nil {
					return err
				}
				items, err := inv.Items(ctx)
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(os.Stdout, 0, 0, 1, ' ', 0)
				defer tw.Flush()
				fmt.Fprintln(tw, "ID\tName\tPrice")
				for _, it := range items {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", saucedemo.ProductID(it.Name), it.Name, it.Price)
				}
				return nil
			})
		},
	}
}

func orderCommand() *cli.Command {
	return &cli.Command{
		Name:      "order",
		Usage:     "place an order for the products",
		ArgsUsage: "[product name...]",
		Flags: append(credentialFlags(),
			&cli.IntFlag{Name: "customer", Usage: "customer `index` in the test data"},
		),
		Action: func(c *cli.Context) error {
			data, err := loadFixture(c)
			if err != nil {
				return err
			}
			username, password := credentials(c, data)
			products := c.Args().Slice()
			if len(products) == 0 {
				products = data.ProductNames(2)
			}
			cust := data.Customer(c.Int("customer"))
			return withTab(c, func(ctx context.Context, tab *saucedemo.Tab) error {
				inv, err := login(ctx, tab, username, password)
				if err != nil {
					return err
				}
				return placeOrder(ctx, tab, inv, products, cust)
			})
		},
	}
}

func placeOrder(ctx context.Context, tab *saucedemo.Tab, inv *saucedemo.InventoryPage, products []string, cust fixture.Customer) error {
	if err := inv.AddMultipleProductsToCart(ctx, products); err != nil {
		return err
	}
	if err := inv.ClickCart(ctx); err != nil {
		return err
	}
	if err := saucedemo.NewCartPage(tab).ClickCheckout(ctx); err != nil {
		return err
	}
	info := saucedemo.NewCheckoutInfoPage(tab)
	if err := info.FillCheckoutInfo(ctx, cust.FirstName, cust.LastName, cust.PostalCode); err != nil {
		return err
	}
	if err := info.ClickContinue(ctx); err != nil {
		return err
	}
	if err := tab.WaitState(ctx, saucedemo.StateCheckoutOverview); err != nil {
		if msg, _ := info.GetErrorMessage(ctx); msg != "" {
			return cli.Exit(msg, 1)
		}
		return err
	}

	ov := saucedemo.NewCheckoutOverviewPage(tab)
	names, err := ov.GetItemNames(ctx)
	if err != nil {
		return err
	}
	subtotal, err := ov.GetItemTotal(ctx)
	if err != nil {
		return err
	}
	tax, err := ov.GetTax(ctx)
	if err != nil {
		return err
	}
	total, err := ov.GetTotal(ctx)
	if err != nil {
		return err
	}
	if err := ov.ClickFinish(ctx); err != nil {
		return err
	}
	done := saucedemo.NewCheckoutCompletePage(tab)
	if err := done.HeaderText.WaitText(ctx, saucedemo.MsgThankYou); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 1, ' ', 0)
	defer tw.Flush()
	for _, n := range names {
		fmt.Fprintf(tw, "\t%s\n", n)
	}
	fmt.Fprintf(tw, "Item total:\t$%.2f\n", subtotal)
	fmt.Fprintf(tw, "Tax:\t$%.2f\n", tax)
	fmt.Fprintf(tw, "Total:\t$%.2f\n", total)
	fmt.Fprintf(tw, "Customer:\t%s %s, %s\n", cust.FirstName, cust.LastName, cust.PostalCode)
	return nil
}

func playgroundCommand() *cli.Command {
	return &cli.Command{
		Name:  "playground",
		Usage: "serve the locator practice page",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Usage: "listen `address`", Value: "127.0.0.1:8080"},
		},
		Action: func(c *cli.Context) error {
			l, err := net.Listen("tcp", c.String("addr"))
			if err != nil {
				return err
			}
			srv := &http.Server{
				Handler:           playground.Handler(),
				ReadHeaderTimeout: 5 * time.Second,
			}
			go func() {
				<-c.Context.Done()
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				srv.Shutdown(ctx)
			}()
			slog.Info("serving the practice page", "url", "http://"+l.Addr().String()+"/")
			if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
}
