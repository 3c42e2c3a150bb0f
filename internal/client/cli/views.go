package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/pizzastore/internal/client/models"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func renderUser(w io.Writer, u *models.CurrentUser) {
	fmt.Fprintf(w, "%s <%s>\n", u.DisplayName(), u.Email)
	if u.Role != "" {
		fmt.Fprintf(w, "Role: %s\n", u.Role)
	}
}

func renderCrusts(w io.Writer, crusts []models.CrustType) {
	if len(crusts) == 0 {
		fmt.Fprintln(w, "The menu is empty.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tCRUST\tPRICE")
	for _, c := range crusts {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", c.CrustID, c.CrustName, money(c.Price))
	}
	tw.Flush()
}

func renderPizzas(w io.Writer, pizzas []models.Pizza) {
	if len(pizzas) == 0 {
		fmt.Fprintln(w, "No pizzas available.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "PIZZA\tPRICE\tDESCRIPTION")
	for _, p := range pizzas {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Name, money(p.Price), p.Description)
	}
	tw.Flush()
}

func renderCart(w io.Writer, cart *models.Cart) {
	if len(cart.Items) == 0 {
		fmt.Fprintln(w, "Your cart is empty.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ITEM\tQTY\tPRICE")
	for _, it := range cart.Items {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", it.Name, it.Quantity, money(it.Price))
	}
	fmt.Fprintf(tw, "Total\t\t%s\n", money(cart.Total))
	tw.Flush()
}

func renderCheckout(w io.Writer, s *models.CheckoutSummary) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ITEM\tQTY\tLINE TOTAL")
	for _, it := range s.Items {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", it.Name, it.Quantity, money(it.LineTotal))
	}
	fmt.Fprintf(tw, "Subtotal\t\t%s\n", money(s.Subtotal))
	fmt.Fprintf(tw, "Tax\t\t%s\n", money(s.Tax))
	fmt.Fprintf(tw, "Total\t\t%s\n", money(s.Total))
	tw.Flush()
}

func renderOrders(w io.Writer, orders []models.Order) {
	if len(orders) == 0 {
		fmt.Fprintln(w, "No orders yet.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ORDER\tITEMS\tTOTAL\tSTATUS")
	for _, o := range orders {
		fmt.Fprintf(tw, "#%d\t%s\t%s\t%s\n", o.ID, o.Items, money(o.Total), o.Status)
	}
	tw.Flush()
}

func renderStats(w io.Writer, s *models.Stats) {
	tw := newTable(w)
	fmt.Fprintf(tw, "Orders today\t%d\n", s.OrdersToday)
	fmt.Fprintf(tw, "Revenue today\t%s\n", money(s.RevenueToday))
	fmt.Fprintf(tw, "Menu items\t%d\n", s.MenuItems)
	tw.Flush()
}

func renderReports(w io.Writer, reports []models.Report) {
	if len(reports) == 0 {
		fmt.Fprintln(w, "No reports available.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "REPORT\tVALUE")
	for _, r := range reports {
		fmt.Fprintf(tw, "%s\t%s\n", r.Name, r.Value)
	}
	tw.Flush()
}

func renderRestaurant(w io.Writer, d models.RestaurantDetails) {
	fmt.Fprintln(w, d.Name)
	if d.Description != "" {
		fmt.Fprintln(w, d.Description)
	}
	fmt.Fprintf(w, "Address: %s\n", d.Address)
	fmt.Fprintf(w, "Phone:   %s\n", d.Phone)
	fmt.Fprintln(w, "Hours:")
	for _, h := range d.Hours {
		fmt.Fprintf(w, "  %s\n", h)
	}
}

func renderProfile(w io.Writer, p *models.Profile) {
	tw := newTable(w)
	fmt.Fprintf(tw, "Name\t%s %s\n", p.FirstName, p.LastName)
	fmt.Fprintf(tw, "Email\t%s\n", p.Email)
	fmt.Fprintf(tw, "Phone\t%s\n", p.Phone)
	fmt.Fprintf(tw, "Address\t%s\n", p.Address.OneLine())
	tw.Flush()
}

func renderPromotions(w io.Writer, list []models.Promotion) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No promotions.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tCODE\tDISCOUNT\tMIN ORDER\tEXPIRES\tSUMMARY")
	for _, p := range list {
		fmt.Fprintf(tw, "%d\t%s\t%g\t%s\t%s\t%s\n", p.PromotionID, p.Code, p.DiscountValue, money(p.MinOrderAmt), p.ExpDt, p.PromotionSummary)
	}
	tw.Flush()
}
