package catalog

// NewDemo returns a Catalog filled with the storefront demo data.
func NewDemo() *Catalog {
	c := &Catalog{
		crusts: []CrustType{
			{CrustID: 1, CrustName: "Thin", Price: 0},
			{CrustID: 2, CrustName: "Hand Tossed", Price: 0},
			{CrustID: 3, CrustName: "Deep Dish", Price: 2.5},
			{CrustID: 4, CrustName: "Gluten Free", Price: 3},
		},
		pizzas: []Pizza{
			{Name: "Margherita", Description: "Fresh mozzarella, tomato sauce, basil", Price: 12.99},
			{Name: "Pepperoni", Description: "Pepperoni, mozzarella, tomato sauce", Price: 14.99},
			{Name: "Supreme", Description: "Pepperoni, sausage, peppers, onions, olives", Price: 16.99},
			{Name: "BBQ Chicken", Description: "Grilled chicken, BBQ sauce, red onion, cilantro", Price: 15.99},
		},
		cart: Cart{
			Items: []CartItem{
				{Name: "Margherita", Quantity: 2, Price: 12.99},
				{Name: "Pepperoni", Quantity: 1, Price: 14.99},
			},
			Total: 40.97,
		},
		checkout: CheckoutSummary{
			Items: []SummaryItem{
				{Name: "Margherita", Quantity: 2, LineTotal: 25.98},
				{Name: "Pepperoni", Quantity: 1, LineTotal: 14.99},
			},
			Subtotal: 40.97,
			Tax:      3.28,
			Total:    44.25,
		},
		orders: []Order{
			{ID: 1042, Items: "2x Margherita, 1x Pepperoni", Total: 40.97, Status: "Delivered"},
			{ID: 1043, Items: "1x Supreme, 1x BBQ Chicken", Total: 32.98, Status: "In Progress"},
		},
		stats: Stats{OrdersToday: 127, RevenueToday: 3842.00, MenuItems: 12},
		reports: []Report{
			{Name: "Total Orders", Value: 1248},
			{Name: "Revenue This Month", Value: 38420},
			{Name: "Average Order Value", Value: 30.79},
			{Name: "Top Selling Pizza", Value: "Margherita"},
			{Name: "Active Customers", Value: 342},
		},
	}

	c.SetRestaurant(&RestaurantInfo{
		ID:          1,
		Name:        "Pizza Store",
		StreetAddr1: "123 Main Street",
		City:        "Springfield",
		State:       "IL",
		ZipCode:     "62701",
		PhoneNumber: "(555) 123-4567",
		Description: "Hand-stretched dough, house-made sauce and fresh toppings since 1998.",
	}, []RestaurantHours{
		{ID: 1, RestaurantID: 1, DisplayText: "Mon-Thu: 11:00 AM - 10:00 PM", SortOrder: 1},
		{ID: 2, RestaurantID: 1, DisplayText: "Fri-Sat: 11:00 AM - 11:00 PM", SortOrder: 2},
		{ID: 3, RestaurantID: 1, DisplayText: "Sun: 12:00 PM - 9:00 PM", SortOrder: 3},
	})
	return c
}
