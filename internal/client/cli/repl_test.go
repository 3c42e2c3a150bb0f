package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/pizzastore/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool
	worker   bool
	failWith error

	calls []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) isWorker() bool   { return f.worker }

func (f *fakeExec) call(name string) error {
	f.calls = append(f.calls, name)
	return f.failWith
}

func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.call("login")
}
func (f *fakeExec) Register(context.Context) error { return f.call("register") }
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.call("logout")
}
func (f *fakeExec) WhoAmI(context.Context) error          { return f.call("whoami") }
func (f *fakeExec) Status(context.Context) error          { return f.call("status") }
func (f *fakeExec) Menu(context.Context) error            { return f.call("menu") }
func (f *fakeExec) Pizzas(context.Context) error          { return f.call("pizzas") }
func (f *fakeExec) Cart(context.Context) error            { return f.call("cart") }
func (f *fakeExec) Checkout(context.Context) error        { return f.call("checkout") }
func (f *fakeExec) Orders(context.Context) error          { return f.call("orders") }
func (f *fakeExec) Info(context.Context) error            { return f.call("info") }
func (f *fakeExec) Profile(context.Context) error         { return f.call("profile") }
func (f *fakeExec) EditProfile(context.Context) error     { return f.call("editprofile") }
func (f *fakeExec) Promotions(context.Context) error      { return f.call("promotions") }
func (f *fakeExec) AddPromotion(context.Context) error    { return f.call("addpromo") }
func (f *fakeExec) EditPromotion(context.Context) error   { return f.call("editpromo") }
func (f *fakeExec) DeletePromotion(context.Context) error { return f.call("deletepromo") }
func (f *fakeExec) Reports(context.Context) error         { return f.call("reports") }
func (f *fakeExec) Stats(context.Context) error           { return f.call("stats") }

// capturePrint swaps printlnFn for the duration of the test.
func capturePrint(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesEveryCommand(t *testing.T) {
	capturePrint(t)

	all := []string{
		"login", "register", "logout", "whoami", "status", "menu", "pizzas", "cart",
		"checkout", "orders", "info", "profile", "editprofile", "promotions", "addpromo",
		"editpromo", "deletepromo", "reports", "stats",
	}
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, rdr(strings.Join(all, "\n")+"\nexit\n"))

	assert.Equal(t, all, exec.calls)
}

func TestRunREPL_HelpDependsOnState(t *testing.T) {
	lines := capturePrint(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("help\nlogin\nhelp\n"))
	exec.worker = true
	runREPL(context.Background(), exec, func() string { return "" }, rdr("help\n"))

	var helps []string
	for _, l := range *lines {
		if strings.HasPrefix(l, "Available commands") {
			helps = append(helps, l)
		}
	}
	require.Len(t, helps, 3)
	assert.Equal(t, helpAnonymous, helps[0])
	assert.Equal(t, helpCustomer, helps[1])
	assert.Equal(t, helpWorker, helps[2])
}

func TestRunREPL_UnknownBlankAndQuit(t *testing.T) {
	lines := capturePrint(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "(x)" }, rdr("\n   \nfoobar\nquit\nmenu\n"))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *lines, "Unknown command: foobar")
	assert.Contains(t, *lines, "Bye!")
	assert.Contains(t, *lines, "pizza(x)> ")
}

func TestRunREPL_ErrorsAreOneLine(t *testing.T) {
	lines := capturePrint(t)

	exec := &fakeExec{failWith: &validation.Error{Message: "Please enter both email and password."}}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("login\n"))
	assert.Contains(t, *lines, "Error: Please enter both email and password.")

	exec = &fakeExec{failWith: errors.New("boom")}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("menu\nmenu\n"))
	assert.Equal(t, []string{"menu", "menu"}, exec.calls)
}

func TestRunREPL_StopsWhenContextDone(t *testing.T) {
	capturePrint(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, rdr("menu\nmenu\n"))
	assert.Equal(t, []string{"menu"}, exec.calls)
}
