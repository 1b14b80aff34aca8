package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/brewpos/terminal/internal/enum"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ── Add-on groups ──

var MilkOptions = []AddOn{
	{ID: "whole-milk", Name: "Whole Milk", Price: price("0")},
	{ID: "oat-milk", Name: "Oat Milk", Price: price("0.60")},
	{ID: "almond-milk", Name: "Almond Milk", Price: price("0.60")},
	{ID: "soy-milk", Name: "Soy Milk", Price: price("0.50")},
	{ID: "coconut-milk", Name: "Coconut Milk", Price: price("0.60")},
	{ID: "skim-milk", Name: "Skim Milk", Price: price("0")},
}

var ExtraOptions = []AddOn{
	{ID: "extra-shot", Name: "Extra Shot", Price: price("0.75")},
	{ID: "double-shot", Name: "Double Shot", Price: price("1.25")},
	{ID: "decaf", Name: "Decaf", Price: price("0")},
}

var SyrupOptions = []AddOn{
	{ID: "vanilla-syrup", Name: "Vanilla", Price: price("0.50")},
	{ID: "caramel-syrup", Name: "Caramel", Price: price("0.50")},
	{ID: "hazelnut-syrup", Name: "Hazelnut", Price: price("0.50")},
	{ID: "mocha-syrup", Name: "Mocha", Price: price("0.50")},
	{ID: "sugar-free-vanilla", Name: "Sugar-Free Vanilla", Price: price("0.50")},
}

var ToppingOptions = []AddOn{
	{ID: "whipped-cream", Name: "Whipped Cream", Price: price("0.50")},
	{ID: "caramel-drizzle", Name: "Caramel Drizzle", Price: price("0.50")},
	{ID: "chocolate-drizzle", Name: "Chocolate Drizzle", Price: price("0.50")},
	{ID: "cinnamon", Name: "Cinnamon", Price: price("0")},
	{ID: "cocoa-powder", Name: "Cocoa Powder", Price: price("0")},
}

func concat(groups ...[]AddOn) []AddOn {
	var out []AddOn
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// ── Menu ──

var Products = []Product{
	// Coffee
	{
		ID:          "cappuccino",
		Name:        "Cappuccino",
		Description: "The combination of coffee, milk, and palm sugar makes this drink have a delicious",
		Price:       price("4.98"),
		Image:       "https://images.unsplash.com/photo-1572442388796-11668a67e53d?w=200&h=200&fit=crop",
		Category:    enum.CategoryCoffee,
		HasSizes:    true,
		AddOns:      concat(ExtraOptions, SyrupOptions[:2], ToppingOptions[:2]),
	},
	{
		ID:          "coffee-latte",
		Name:        "Coffee Latte",
		Description: "This caffe latte or coffee latte is one of the popular types of milk coffee",
		Price:       price("5.98"),
		Image:       "https://images.unsplash.com/photo-1561882468-9110e03e0f78?w=200&h=200&fit=crop",
		Category:    enum.CategoryCoffee,
		HasSizes:    true,
		AddOns:      concat(ExtraOptions, SyrupOptions[:2], ToppingOptions[:2]),
	},
	{
		ID:          "americano",
		Name:        "Americano",
		Description: "Americano coffee is espresso drinks combined with hot water",
		Price:       price("5.98"),
		Image:       "https://images.unsplash.com/photo-1521302080334-4bebac2763a6?w=200&h=200&fit=crop",
		Category:    enum.CategoryCoffee,
		HasSizes:    true,
		AddOns:      concat(ExtraOptions, SyrupOptions[:2]),
	},
	{
		ID:          "v60",
		Name:        "V60",
		Description: "The V60 technique is one of the most used techniques by barista",
		Price:       price("5.98"),
		Image:       "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?w=200&h=200&fit=crop",
		Category:    enum.CategoryCoffee,
		HasSizes:    true,
		AddOns:      concat(ExtraOptions),
	},
	{
		ID:          "espresso",
		Name:        "Espresso",
		Description: "A concentrated form of coffee served in small, strong shots",
		Price:       price("3.98"),
		Image:       "https://images.unsplash.com/photo-1510707577719-ae7c14805e3a?w=200&h=200&fit=crop",
		Category:    enum.CategoryCoffee,
		HasSizes:    true,
		AddOns:      concat(ExtraOptions),
	},
	{
		ID:          "mocha",
		Name:        "Mocha",
		Description: "A chocolate-flavoured variant of a caffè latte with cocoa powder",
		Price:       price("6.48"),
		Image:       "https://images.unsplash.com/photo-1578314675249-a6910f80cc4e?w=200&h=200&fit=crop",
		Category:    enum.CategoryCoffee,
		HasSizes:    true,
		AddOns:      concat(ExtraOptions, SyrupOptions[:2], ToppingOptions),
	},
	// Non Coffee
	{
		ID:          "matcha-latte",
		Name:        "Matcha Latte",
		Description: "Creamy and smooth Japanese green tea latte",
		Price:       price("5.48"),
		Image:       "https://images.unsplash.com/photo-1515823064-d6e0c04616a7?w=200&h=200&fit=crop",
		Category:    enum.CategoryNonCoffee,
		HasSizes:    true,
		AddOns:      concat(ToppingOptions[:2]),
	},
	{
		ID:          "chai-latte",
		Name:        "Chai Latte",
		Description: "Spiced tea concentrate combined with steamed milk",
		Price:       price("4.98"),
		Image:       "https://images.unsplash.com/photo-1557006021-b85faa2bc5e2?w=200&h=200&fit=crop",
		Category:    enum.CategoryNonCoffee,
		HasSizes:    true,
		AddOns:      concat(SyrupOptions[:2], ToppingOptions[:2]),
	},
	{
		ID:          "hot-chocolate",
		Name:        "Hot Chocolate",
		Description: "Rich and creamy chocolate drink topped with marshmallows",
		Price:       price("4.48"),
		Image:       "https://images.unsplash.com/photo-1542990253-0d0f5be5f0ed?w=200&h=200&fit=crop",
		Category:    enum.CategoryNonCoffee,
		HasSizes:    true,
		AddOns:      concat(ToppingOptions),
	},
	{
		ID:          "fresh-orange-juice",
		Name:        "Fresh Orange Juice",
		Description: "Freshly squeezed orange juice, no added sugar",
		Price:       price("4.98"),
		Image:       "https://images.unsplash.com/photo-1621506289937-a8e4df240d0b?w=200&h=200&fit=crop",
		Category:    enum.CategoryNonCoffee,
	},
	// Food
	{
		ID:          "avocado-toast",
		Name:        "Avocado Toast",
		Description: "Smashed avocado on sourdough with cherry tomatoes and feta",
		Price:       price("9.98"),
		Image:       "https://images.unsplash.com/photo-1541519227354-08fa5d50c44d?w=200&h=200&fit=crop",
		Category:    enum.CategoryFood,
	},
	{
		ID:          "eggs-benedict",
		Name:        "Eggs Benedict",
		Description: "Poached eggs on English muffin with hollandaise sauce",
		Price:       price("12.98"),
		Image:       "https://images.unsplash.com/photo-1608039829572-f0a9ccba7dc9?w=200&h=200&fit=crop",
		Category:    enum.CategoryFood,
	},
	{
		ID:          "club-sandwich",
		Name:        "Club Sandwich",
		Description: "Triple decker with turkey, bacon, lettuce, and tomato",
		Price:       price("11.48"),
		Image:       "https://images.unsplash.com/photo-1528735602780-2552fd46c7af?w=200&h=200&fit=crop",
		Category:    enum.CategoryFood,
	},
	{
		ID:          "caesar-salad",
		Name:        "Caesar Salad",
		Description: "Crisp romaine, parmesan, croutons, and caesar dressing",
		Price:       price("10.48"),
		Image:       "https://images.unsplash.com/photo-1546793665-c74683f339c1?w=200&h=200&fit=crop",
		Category:    enum.CategoryFood,
	},
	// Snacks
	{
		ID:          "croissant",
		Name:        "Butter Croissant",
		Description: "Flaky, buttery French pastry baked fresh daily",
		Price:       price("3.98"),
		Image:       "https://images.unsplash.com/photo-1555507036-ab1f4038808a?w=200&h=200&fit=crop",
		Category:    enum.CategorySnack,
	},
	{
		ID:          "almond-croissant",
		Name:        "Almond Croissant",
		Description: "Croissant filled with almond cream and topped with sliced almonds",
		Price:       price("4.48"),
		Image:       "https://images.unsplash.com/photo-1623334044303-241021148842?w=200&h=200&fit=crop",
		Category:    enum.CategorySnack,
	},
	{
		ID:          "banana-bread",
		Name:        "Banana Bread",
		Description: "Moist banana bread slice with walnuts",
		Price:       price("3.48"),
		Image:       "https://images.unsplash.com/photo-1605090930428-796f0deafc67?w=200&h=200&fit=crop",
		Category:    enum.CategorySnack,
	},
	{
		ID:          "cookie",
		Name:        "Chocolate Chip Cookie",
		Description: "Freshly baked cookie with dark chocolate chips",
		Price:       price("2.98"),
		Image:       "https://images.unsplash.com/photo-1499636136210-6f4ee915583e?w=200&h=200&fit=crop",
		Category:    enum.CategorySnack,
	},
	// Desserts
	{
		ID:          "tiramisu",
		Name:        "Tiramisu",
		Description: "Classic Italian dessert with coffee-soaked ladyfingers",
		Price:       price("7.98"),
		Image:       "https://images.unsplash.com/photo-1571877227200-a0d98ea607e9?w=200&h=200&fit=crop",
		Category:    enum.CategoryDessert,
	},
	{
		ID:          "cheesecake",
		Name:        "New York Cheesecake",
		Description: "Creamy cheesecake with graham cracker crust",
		Price:       price("6.98"),
		Image:       "https://images.unsplash.com/photo-1524351199678-941a58a3df50?w=200&h=200&fit=crop",
		Category:    enum.CategoryDessert,
	},
	{
		ID:          "brownie",
		Name:        "Fudge Brownie",
		Description: "Rich chocolate brownie with a fudgy center",
		Price:       price("4.98"),
		Image:       "https://images.unsplash.com/photo-1606313564200-e75d5e30476c?w=200&h=200&fit=crop",
		Category:    enum.CategoryDessert,
	},
	{
		ID:          "affogato",
		Name:        "Affogato",
		Description: "Vanilla gelato drowned in a shot of hot espresso",
		Price:       price("5.98"),
		Image:       "https://images.unsplash.com/photo-1579954115545-a95591f28bfc?w=200&h=200&fit=crop",
		Category:    enum.CategoryDessert,
	},
}
