package saucedemo

// Messages displayed by the store.  Assertions compare against them
// verbatim, so they must not be changed.
const (
	MsgFirstNameRequired  = "Error: First Name is required"
	MsgLastNameRequired   = "Error: Last Name is required"
	MsgPostalCodeRequired = "Error: Postal Code is required"

	MsgUsernameRequired    = "Epic sadface: Username is required"
	MsgPasswordRequired    = "Epic sadface: Password is required"
	MsgCredentialsMismatch = "Epic sadface: Username and password do not match any user in this service"
	MsgLockedOut           = "Epic sadface: Sorry, this user has been locked out."

	MsgThankYou         = "Thank you for your order!"
	MsgCheckoutComplete = "Checkout: Complete!"
	MsgProducts         = "Products"
)

// Summary label prefixes on the checkout overview.
const (
	ItemTotalPrefix = "Item total: $"
	TaxPrefix       = "Tax: $"
	TotalPrefix     = "Total: $"
)

// Store addresses, relative to the base URL.
const (
	PathLogin            = "/"
	PathInventory        = "/inventory.html"
	PathCart             = "/cart.html"
	PathCheckoutInfo     = "/checkout-step-one.html"
	PathCheckoutOverview = "/checkout-step-two.html"
	PathCheckoutComplete = "/checkout-complete.html"
)

const attrTestID = "data-test"

// data-test hooks.
const (
	tidUsername         = "username"
	tidPassword         = "password"
	tidLoginButton      = "login-button"
	tidError            = "error"
	tidErrorButton      = "error-button"
	tidFirstName        = "firstName"
	tidLastName         = "lastName"
	tidPostalCode       = "postalCode"
	tidContinue         = "continue"
	tidCancel           = "cancel"
	tidFinish           = "finish"
	tidCheckout         = "checkout"
	tidContinueShopping = "continue-shopping"
	tidBackToProducts   = "back-to-products"
	tidCartBadge        = "shopping-cart-badge"
)

// class hooks.
const (
	clsCartItem       = ".cart_item"
	clsInventoryItem  = ".inventory_item"
	clsItemName       = ".inventory_item_name"
	clsItemDesc       = ".inventory_item_desc"
	clsItemPrice      = ".inventory_item_price"
	clsCartBadge      = ".shopping_cart_badge"
	clsCartLink       = ".shopping_cart_link"
	clsCompleteHeader = ".complete-header"
	clsTitle          = ".title"
	clsPonyExpress    = ".pony_express"
	clsSubtotal       = ".summary_subtotal_label"
	clsTax            = ".summary_tax_label"
	clsTotal          = ".summary_total_label"
)

// button captions used by row-scoped actions.
const (
	captionAddToCart = "Add to cart"
	captionRemove    = "Remove"
)
