package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/pizzastore/internal/client/services"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isWorker() bool

	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Status(ctx context.Context) error

	Menu(ctx context.Context) error
	Pizzas(ctx context.Context) error
	Cart(ctx context.Context) error
	Checkout(ctx context.Context) error
	Orders(ctx context.Context) error
	Info(ctx context.Context) error

	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error

	Promotions(ctx context.Context) error
	AddPromotion(ctx context.Context) error
	EditPromotion(ctx context.Context) error
	DeletePromotion(ctx context.Context) error
	Reports(ctx context.Context) error
	Stats(ctx context.Context) error
}

const (
	helpAnonymous = "Available commands: login, register, menu, pizzas, info, status, exit"
	helpCustomer  = "Available commands: menu, pizzas, cart, checkout, orders, info, profile, editprofile, whoami, status, logout, exit"
	helpWorker    = "Available commands: stats, reports, promotions, addpromo, editpromo, deletepromo, orders, menu, pizzas, info, whoami, status, logout, exit"
)

func helpText(a execIface) string {
	switch {
	case !a.isLoggedIn():
		return helpAnonymous
	case a.isWorker():
		return helpWorker
	default:
		return helpCustomer
	}
}

func commands(a execIface) map[string]func(context.Context) error {
	return map[string]func(context.Context) error{
		"login":       a.Login,
		"register":    a.Register,
		"logout":      a.Logout,
		"whoami":      a.WhoAmI,
		"status":      a.Status,
		"menu":        a.Menu,
		"pizzas":      a.Pizzas,
		"cart":        a.Cart,
		"checkout":    a.Checkout,
		"orders":      a.Orders,
		"info":        a.Info,
		"profile":     a.Profile,
		"editprofile": a.EditProfile,
		"promotions":  a.Promotions,
		"addpromo":    a.AddPromotion,
		"editpromo":   a.EditPromotion,
		"deletepromo": a.DeletePromotion,
		"reports":     a.Reports,
		"stats":       a.Stats,
	}
}

// runREPL starts a simple read–eval–print loop for the pizza store CLI.
//
// It reads a line from reader, takes the first token as the command and
// dispatches to methods on a. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// A command that fails prints exactly one "Error: ..." line built with
// services.DisplayMessage; nothing else changes and the user may retry.
// The session store is not consulted for authorization: the backend decides.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	cmds := commands(a)

	for {
		printlnFn(fmt.Sprintf("pizza%s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])

		switch cmd {
		case "help":
			printlnFn(helpText(a))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			fn, ok := cmds[cmd]
			if !ok {
				printlnFn("Unknown command:", cmd)
				continue
			}
			if err := fn(ctx); err != nil {
				printlnFn("Error:", services.DisplayMessage(err, "Something went wrong. Please try again."))
			}
		}

		if ctx.Err() != nil {
			return
		}
	}
}
