// Package fixture provides the static test data of the demo store: the
// accounts, the products and the customer details for the checkout form.
package fixture

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

// StandardUser is the account that has no quirks.
const StandardUser = "standard_user"

// Account is a store account.
type Account struct {
	Username  string `yaml:"username"`
	Password  string `yaml:"password,omitempty"`
	LockedOut bool   `yaml:"locked_out,omitempty"`
}

// Product is a product of the inventory.
type Product struct {
	Name  string `yaml:"name"`
	Price string `yaml:"price"`
}

// Customer holds the details for the checkout information form.
type Customer struct {
	FirstName  string `yaml:"first_name"`
	LastName   string `yaml:"last_name"`
	PostalCode string `yaml:"postal_code"`
}

// Data is the test data set.  It must not be modified once loaded.
type Data struct {
	// Password is the password of the accounts that don't set their own.
	Password  string     `yaml:"password"`
	Accounts  []Account  `yaml:"accounts"`
	Products  []Product  `yaml:"products"`
	Customers []Customer `yaml:"customers"`
}

var (
	errNoAccounts  = errors.New("fixture has no accounts")
	errNoCustomers = errors.New("fixture has no customers")
)

// Parse decodes the data set from r.
func Parse(r io.Reader) (*Data, error) {
	var d Data
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}
	if len(d.Accounts) == 0 {
		return nil, errNoAccounts
	}
	if len(d.Customers) == 0 {
		return nil, errNoCustomers
	}
	for i := range d.Accounts {
		if d.Accounts[i].Password == "" {
			d.Accounts[i].Password = d.Password
		}
	}
	return &d, nil
}

// Load reads the data set from the file.
func Load(filename string) (*Data, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

var embedded = sync.OnceValues(func() (*Data, error) {
	return Parse(bytes.NewReader(fixturesYAML))
})

// Default returns the embedded data set.  It is decoded once.
func Default() (*Data, error) {
	return embedded()
}

// FromEnv returns the data set from the file named by the environment
// variable, or the embedded one if the variable is empty.
func FromEnv(name string) (*Data, error) {
	if fn := os.Getenv(name); fn != "" {
		return Load(fn)
	}
	return Default()
}

// Account returns the account with the username.
func (d *Data) Account(username string) (Account, bool) {
	for _, a := range d.Accounts {
		if a.Username == username {
			return a, true
		}
	}
	return Account{}, false
}

// Standard returns the standard user account, or the first account if
// there's no standard user in the data set.
func (d *Data) Standard() Account {
	if a, ok := d.Account(StandardUser); ok {
		return a
	}
	return d.Accounts[0]
}

// LockedOut returns the first locked out account.
func (d *Data) LockedOut() (Account, bool) {
	for _, a := range d.Accounts {
		if a.LockedOut {
			return a, true
		}
	}
	return Account{}, false
}

// Product returns the product with the name.
func (d *Data) Product(name string) (Product, bool) {
	for _, p := range d.Products {
		if p.Name == name {
			return p, true
		}
	}
	return Product{}, false
}

// ProductNames returns the names of the first n products, or of all products
// if n is out of range.
func (d *Data) ProductNames(n int) []string {
	if n <= 0 || n > len(d.Products) {
		n = len(d.Products)
	}
	names := make([]string, n)
	for i := range names {
		names[i] = d.Products[i].Name
	}
	return names
}

// Customer returns the i-th customer, wrapping around.  The same i always
// gives the same customer, so that the test runs are reproducible.
func (d *Data) Customer(i int) Customer {
	n := len(d.Customers)
	return d.Customers[((i%n)+n)%n]
}

// PriceValue returns the numeric price of the product, i.e. 29.99 for "$29.99".
func (p Product) PriceValue() (float64, error) {
	if len(p.Price) > 0 && p.Price[0] == '$' {
		return strconv.ParseFloat(p.Price[1:], 64)
	}
	return strconv.ParseFloat(p.Price, 64)
}
