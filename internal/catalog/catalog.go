package catalog

// Category classifies a food item for budget-priority purposes.
type Category string

const (
	CategoryStaple    Category = "staple"
	CategoryProtein   Category = "protein"
	CategoryVegetable Category = "vegetable"
	CategoryFruit     Category = "fruit"
	CategoryUtility   Category = "utility"
)

// MealType identifies which slot of the day a recipe is meant for.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
)

// FoodItem is a single priced entry in the grocery catalog.
type FoodItem struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Unit     string   `json:"unit"`
	Category Category `json:"category"`
}

// Ingredient references a catalog item by name with a per-person quantity.
// The reference is resolved against a Lookup at costing time; an
// unresolvable name makes the owning recipe infeasible.
type Ingredient struct {
	Item              string  `json:"item"`
	QuantityPerPerson float64 `json:"quantity_per_person"`
}

// Recipe is a dish with its ingredient list and sampling weight.
// FrequencyWeight (1-5) biases random selection: the recipe appears that
// many times in the weighted sampling pool.
type Recipe struct {
	ID              int          `json:"id"`
	Name            string       `json:"name"`
	Ingredients     []Ingredient `json:"ingredients"`
	MealType        MealType     `json:"meal_type"`
	FrequencyWeight int          `json:"frequency_weight"`
}

// Lookup is a name-indexed view over the currently selected food items.
type Lookup map[string]FoodItem

// NewLookup indexes every given item by name.
func NewLookup(items []FoodItem) Lookup {
	l := make(Lookup, len(items))
	for _, it := range items {
		l[it.Name] = it
	}
	return l
}

// Select indexes only the items whose names appear in the selection set.
// Names that match no catalog item are ignored.
func Select(items []FoodItem, selected map[string]bool) Lookup {
	l := make(Lookup, len(selected))
	for _, it := range items {
		if selected[it.Name] {
			l[it.Name] = it
		}
	}
	return l
}

// Resolve returns the item for an ingredient reference.
func (l Lookup) Resolve(name string) (FoodItem, bool) {
	it, ok := l[name]
	return it, ok
}
