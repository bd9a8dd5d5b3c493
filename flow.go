package saucedemo

import (
	"fmt"
	"net/url"
	"strings"
)

// State is the position of a tab in the store's navigation graph.
type State uint8

const (
	StateUnknown State = iota
	StateLoggedOut
	StateInventory
	StateCart
	StateCheckoutInfo
	StateCheckoutOverview
	StateCheckoutComplete
)

var stateNames = [...]string{
	StateUnknown:          "Unknown",
	StateLoggedOut:        "LoggedOut",
	StateInventory:        "Inventory",
	StateCart:             "Cart",
	StateCheckoutInfo:     "CheckoutInfo",
	StateCheckoutOverview: "CheckoutOverview",
	StateCheckoutComplete: "CheckoutComplete",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", s)
}

// Path returns the store path of the state, or "" for StateUnknown.
func (s State) Path() string {
	return statePaths[s]
}

var statePaths = map[State]string{
	StateLoggedOut:        PathLogin,
	StateInventory:        PathInventory,
	StateCart:             PathCart,
	StateCheckoutInfo:     PathCheckoutInfo,
	StateCheckoutOverview: PathCheckoutOverview,
	StateCheckoutComplete: PathCheckoutComplete,
}

// transitions are the edges of the navigation graph that page objects may
// trigger.  CheckoutInfo loops back onto itself when the form fails
// validation.  CheckoutComplete is terminal.
var transitions = map[State][]State{
	StateLoggedOut:        {StateInventory},
	StateInventory:        {StateCart},
	StateCart:             {StateCheckoutInfo, StateInventory},
	StateCheckoutInfo:     {StateCheckoutOverview, StateCheckoutInfo, StateCart},
	StateCheckoutOverview: {StateCheckoutComplete, StateInventory},
}

// CanMove reports whether there's an edge from one state to the other.
func CanMove(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Sources returns the states that have an edge to the state.
func Sources(to State) []State {
	var ret []State
	for s := StateUnknown; int(s) < len(stateNames); s++ {
		if CanMove(s, to) {
			ret = append(ret, s)
		}
	}
	return ret
}

// StateOf returns the state corresponding to the address.  Only the path is
// considered, see [Tab.State] for the check that includes the host.
func StateOf(address string) State {
	u, err := url.Parse(address)
	if err != nil || u.Opaque != "" {
		return StateUnknown
	}
	p := u.Path
	if p == "" || p == "/index.html" {
		p = PathLogin
	}
	for s, sp := range statePaths {
		if strings.EqualFold(p, sp) {
			return s
		}
	}
	return StateUnknown
}

// TransitionError is returned when a page object action is attempted from a
// state that has no edge to the action's target.  It satisfies
// errors.Is(err, ErrInvalidTransition).
type TransitionError struct {
	From State
	To   State
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%v: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
