package cli

import (
	"context"
)

func (a *App) Menu(ctx context.Context) error {
	crusts, err := a.storeService.Menu(ctx)
	if err != nil {
		return failed(err, "Failed to load menu.")
	}
	renderCrusts(a.out, crusts)
	return nil
}

func (a *App) Pizzas(ctx context.Context) error {
	pizzas, err := a.storeService.Pizzas(ctx)
	if err != nil {
		return failed(err, "Failed to load pizzas.")
	}
	renderPizzas(a.out, pizzas)
	return nil
}

func (a *App) Cart(ctx context.Context) error {
	cart, err := a.storeService.Cart(ctx)
	if err != nil {
		return failed(err, "Failed to load cart.")
	}
	renderCart(a.out, cart)
	return nil
}

func (a *App) Checkout(ctx context.Context) error {
	sum, err := a.storeService.Checkout(ctx)
	if err != nil {
		return failed(err, "Failed to load checkout summary.")
	}
	renderCheckout(a.out, sum)
	return nil
}

func (a *App) Orders(ctx context.Context) error {
	orders, err := a.storeService.Orders(ctx)
	if err != nil {
		return failed(err, "Failed to load orders.")
	}
	renderOrders(a.out, orders)
	return nil
}

func (a *App) Stats(ctx context.Context) error {
	st, err := a.storeService.Stats(ctx)
	if err != nil {
		return failed(err, "Failed to load stats.")
	}
	renderStats(a.out, st)
	return nil
}

func (a *App) Reports(ctx context.Context) error {
	reports, err := a.storeService.Reports(ctx)
	if err != nil {
		return failed(err, "Failed to load reports.")
	}
	renderReports(a.out, reports)
	return nil
}

// Info always prints something; defaults stand in for what could not be loaded.
func (a *App) Info(ctx context.Context) error {
	d, err := a.storeService.RestaurantDetails(ctx)
	if err != nil {
		a.log.Debug(ctx, "showing fallback restaurant details", "error", err)
	}
	renderRestaurant(a.out, d)
	return nil
}
