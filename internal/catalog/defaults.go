package catalog

// DefaultItems is the built-in grocery catalog. Prices are per unit in
// shillings and reflect typical open-air market rates.
func DefaultItems() []FoodItem {
	return []FoodItem{
		{ID: 1, Name: "Maize Flour", Price: 180, Unit: "2kg bale", Category: CategoryStaple},
		{ID: 2, Name: "Rice", Price: 160, Unit: "kg", Category: CategoryStaple},
		{ID: 3, Name: "Wheat Flour", Price: 175, Unit: "2kg bale", Category: CategoryStaple},
		{ID: 4, Name: "Bread", Price: 65, Unit: "loaf", Category: CategoryStaple},
		{ID: 5, Name: "Spaghetti", Price: 120, Unit: "500g pack", Category: CategoryStaple},
		{ID: 6, Name: "Potatoes", Price: 80, Unit: "kg", Category: CategoryVegetable},
		{ID: 7, Name: "Beans", Price: 150, Unit: "kg", Category: CategoryProtein},
		{ID: 8, Name: "Green Grams", Price: 190, Unit: "kg", Category: CategoryProtein},
		{ID: 9, Name: "Eggs", Price: 450, Unit: "tray", Category: CategoryProtein},
		{ID: 10, Name: "Beef", Price: 550, Unit: "kg", Category: CategoryProtein},
		{ID: 11, Name: "Chicken", Price: 650, Unit: "kg", Category: CategoryProtein},
		{ID: 12, Name: "Tilapia", Price: 400, Unit: "kg", Category: CategoryProtein},
		{ID: 13, Name: "Omena", Price: 250, Unit: "kg", Category: CategoryProtein},
		{ID: 14, Name: "Milk", Price: 60, Unit: "500ml packet", Category: CategoryProtein},
		{ID: 15, Name: "Tomatoes", Price: 100, Unit: "kg", Category: CategoryVegetable},
		{ID: 16, Name: "Onions", Price: 120, Unit: "kg", Category: CategoryVegetable},
		{ID: 17, Name: "Cabbage", Price: 50, Unit: "head", Category: CategoryVegetable},
		{ID: 18, Name: "Sukuma Wiki", Price: 30, Unit: "bunch", Category: CategoryVegetable},
		{ID: 19, Name: "Spinach", Price: 40, Unit: "bunch", Category: CategoryVegetable},
		{ID: 20, Name: "Carrots", Price: 90, Unit: "kg", Category: CategoryVegetable},
		{ID: 21, Name: "Green Peppers", Price: 150, Unit: "kg", Category: CategoryVegetable},
		{ID: 22, Name: "Bananas", Price: 100, Unit: "bunch", Category: CategoryFruit},
		{ID: 23, Name: "Oranges", Price: 120, Unit: "kg", Category: CategoryFruit},
		{ID: 24, Name: "Mangoes", Price: 150, Unit: "kg", Category: CategoryFruit},
		{ID: 25, Name: "Avocado", Price: 30, Unit: "piece", Category: CategoryFruit},
		{ID: 26, Name: "Cooking Oil", Price: 350, Unit: "litre", Category: CategoryUtility},
		{ID: 27, Name: "Salt", Price: 40, Unit: "500g pack", Category: CategoryUtility},
		{ID: 28, Name: "Sugar", Price: 210, Unit: "kg", Category: CategoryUtility},
		{ID: 29, Name: "Tea Leaves", Price: 95, Unit: "250g pack", Category: CategoryUtility},
		{ID: 30, Name: "Curry Powder", Price: 85, Unit: "100g tin", Category: CategoryUtility},
	}
}

// DefaultRecipes is the built-in recipe book. Ingredient quantities are in
// catalog units per person per meal.
func DefaultRecipes() []Recipe {
	return []Recipe{
		{ID: 1, Name: "Ugali with Sukuma Wiki", MealType: MealDinner, FrequencyWeight: 5, Ingredients: []Ingredient{
			{Item: "Maize Flour", QuantityPerPerson: 0.25},
			{Item: "Sukuma Wiki", QuantityPerPerson: 0.5},
			{Item: "Tomatoes", QuantityPerPerson: 0.1},
			{Item: "Onions", QuantityPerPerson: 0.05},
			{Item: "Cooking Oil", QuantityPerPerson: 0.03},
			{Item: "Salt", QuantityPerPerson: 0.01},
		}},
		{ID: 2, Name: "Githeri", MealType: MealLunch, FrequencyWeight: 4, Ingredients: []Ingredient{
			{Item: "Beans", QuantityPerPerson: 0.15},
			{Item: "Potatoes", QuantityPerPerson: 0.2},
			{Item: "Carrots", QuantityPerPerson: 0.1},
			{Item: "Onions", QuantityPerPerson: 0.05},
			{Item: "Cooking Oil", QuantityPerPerson: 0.03},
			{Item: "Salt", QuantityPerPerson: 0.01},
		}},
		{ID: 3, Name: "Rice and Beans", MealType: MealLunch, FrequencyWeight: 4, Ingredients: []Ingredient{
			{Item: "Rice", QuantityPerPerson: 0.15},
			{Item: "Beans", QuantityPerPerson: 0.1},
			{Item: "Tomatoes", QuantityPerPerson: 0.1},
			{Item: "Onions", QuantityPerPerson: 0.05},
			{Item: "Cooking Oil", QuantityPerPerson: 0.03},
			{Item: "Salt", QuantityPerPerson: 0.01},
		}},
		{ID: 4, Name: "Ugali with Omena", MealType: MealDinner, FrequencyWeight: 3, Ingredients: []Ingredient{
			{Item: "Maize Flour", QuantityPerPerson: 0.25},
			{Item: "Omena", QuantityPerPerson: 0.1},
			{Item: "Tomatoes", QuantityPerPerson: 0.1},
			{Item: "Onions", QuantityPerPerson: 0.05},
			{Item: "Cooking Oil", QuantityPerPerson: 0.03},
			{Item: "Salt", QuantityPerPerson: 0.01},
		}},
		{ID: 5, Name: "Chapati with Beans", MealType: MealDinner, FrequencyWeight: 3, Ingredients: []Ingredient{
			{Item: "Wheat Flour", QuantityPerPerson: 0.2},
			{Item: "Beans", QuantityPerPerson: 0.15},
			{Item: "Onions", QuantityPerPerson: 0.05},
			{Item: "Cooking Oil", QuantityPerPerson: 0.05},
			{Item: "Salt", QuantityPerPerson: 0.01},
		}},
		{ID: 6, Name: "Beef Stew with Rice", MealType: MealDinner, FrequencyWeight: 2, Ingredients: []Ingredient{
			{Item: "Beef", QuantityPerPerson: 0.2},
			{Item: "Rice", QuantityPerPerson: 0.15},
			{Item: "Tomatoes", QuantityPerPerson: 0.1},
			{Item: "Onions", QuantityPerPerson: 0.05},
			{Item: "Carrots", QuantityPerPerson: 0.05},
			{Item: "Cooking Oil", QuantityPerPerson: 0.03},
			{Item: "Salt", QuantityPerPerson: 0.01},
		}},
		{ID: 7, Name: "Chicken Stew with Potatoes", MealType: MealDinner, FrequencyWeight: 1, Ingredients: []Ingredient{
			{Item: "Chicken", QuantityPerPerson: 0.25},
			{Item: "Potatoes", QuantityPerPerson: 0.2},
			{Item: "Tomatoes", QuantityPerPerson: 0.1},
			{Item: "Onions", QuantityPerPerson: 0.05},
			{Item: "Cooking Oil", QuantityPerPerson: 0.03},
			{Item: "Salt", QuantityPerPerson: 0.01},
		}},
		{ID: 8, Name: "Fried Tilapia with Ugali", MealType: MealDinner, FrequencyWeight: 2, Ingredients: []Ingredient{
			{Item: "Tilapia", QuantityPerPerson: 0.25},
			{Item: "Maize Flour", QuantityPerPerson: 0.25},
			{Item: "Sukuma Wiki", QuantityPerPerson: 0.3},
			{Item: "Tomatoes", QuantityPerPerson: 0.1},
			{Item: "Cooking Oil", QuantityPerPerson: 0.05},
			{Item: "Salt", QuantityPerPerson: 0.01},
		}},
		{ID: 9, Name: "Spaghetti with Vegetables", MealType: MealLunch, FrequencyWeight: 2, Ingredients: []Ingredient{
			{Item: "Spaghetti", QuantityPerPerson: 0.15},
			{Item: "Tomatoes", QuantityPerPerson: 0.15},
			{Item: "Onions", QuantityPerPerson: 0.05},
			{Item: "Green Peppers", QuantityPerPerson: 0.05},
			{Item: "Carrots", QuantityPerPerson: 0.05},
			{Item: "Cooking Oil", QuantityPerPerson: 0.03},
			{Item: "Salt", QuantityPerPerson: 0.01},
		}},
		{ID: 10, Name: "Potato and Cabbage Mash", MealType: MealLunch, FrequencyWeight: 3, Ingredients: []Ingredient{
			{Item: "Potatoes", QuantityPerPerson: 0.3},
			{Item: "Cabbage", QuantityPerPerson: 0.3},
			{Item: "Onions", QuantityPerPerson: 0.05},
			{Item: "Cooking Oil", QuantityPerPerson: 0.02},
			{Item: "Salt", QuantityPerPerson: 0.01},
		}},
		{ID: 11, Name: "Fried Eggs with Bread", MealType: MealBreakfast, FrequencyWeight: 3, Ingredients: []Ingredient{
			{Item: "Eggs", QuantityPerPerson: 0.07},
			{Item: "Bread", QuantityPerPerson: 0.25},
			{Item: "Cooking Oil", QuantityPerPerson: 0.01},
			{Item: "Salt", QuantityPerPerson: 0.005},
		}},
		{ID: 12, Name: "Uji", MealType: MealBreakfast, FrequencyWeight: 4, Ingredients: []Ingredient{
			{Item: "Maize Flour", QuantityPerPerson: 0.1},
			{Item: "Milk", QuantityPerPerson: 0.5},
			{Item: "Sugar", QuantityPerPerson: 0.03},
		}},
		{ID: 13, Name: "Pancakes", MealType: MealBreakfast, FrequencyWeight: 2, Ingredients: []Ingredient{
			{Item: "Wheat Flour", QuantityPerPerson: 0.15},
			{Item: "Eggs", QuantityPerPerson: 0.03},
			{Item: "Milk", QuantityPerPerson: 0.4},
			{Item: "Sugar", QuantityPerPerson: 0.04},
			{Item: "Cooking Oil", QuantityPerPerson: 0.02},
		}},
		{ID: 14, Name: "Fruit Salad", MealType: MealBreakfast, FrequencyWeight: 1, Ingredients: []Ingredient{
			{Item: "Bananas", QuantityPerPerson: 0.2},
			{Item: "Oranges", QuantityPerPerson: 0.15},
			{Item: "Mangoes", QuantityPerPerson: 0.15},
			{Item: "Avocado", QuantityPerPerson: 0.5},
		}},
		{ID: 15, Name: "Tea with Bread", MealType: MealBreakfast, FrequencyWeight: 5, Ingredients: []Ingredient{
			{Item: "Tea Leaves", QuantityPerPerson: 0.02},
			{Item: "Milk", QuantityPerPerson: 0.4},
			{Item: "Sugar", QuantityPerPerson: 0.03},
			{Item: "Bread", QuantityPerPerson: 0.25},
		}},
		{ID: 16, Name: "Ndengu Curry with Rice", MealType: MealLunch, FrequencyWeight: 3, Ingredients: []Ingredient{
			{Item: "Green Grams", QuantityPerPerson: 0.15},
			{Item: "Rice", QuantityPerPerson: 0.15},
			{Item: "Tomatoes", QuantityPerPerson: 0.1},
			{Item: "Onions", QuantityPerPerson: 0.05},
			{Item: "Curry Powder", QuantityPerPerson: 0.05},
			{Item: "Cooking Oil", QuantityPerPerson: 0.03},
			{Item: "Salt", QuantityPerPerson: 0.01},
		}},
	}
}
