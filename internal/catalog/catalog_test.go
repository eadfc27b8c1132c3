package catalog

import "testing"

func TestDefaultCatalogIntegrity(t *testing.T) {
	items := DefaultItems()
	recipes := DefaultRecipes()

	if len(items) != 30 {
		t.Errorf("Expected 30 food items, got %d", len(items))
	}
	if len(recipes) != 16 {
		t.Errorf("Expected 16 recipes, got %d", len(recipes))
	}

	t.Run("UniqueIDsAndNames", func(t *testing.T) {
		ids := map[int]bool{}
		names := map[string]bool{}
		for _, it := range items {
			if ids[it.ID] {
				t.Errorf("Duplicate item id %d", it.ID)
			}
			if names[it.Name] {
				t.Errorf("Duplicate item name %q", it.Name)
			}
			ids[it.ID] = true
			names[it.Name] = true
			if it.Price < 0 {
				t.Errorf("Item %q has negative price", it.Name)
			}
		}

		recipeIDs := map[int]bool{}
		for _, r := range recipes {
			if recipeIDs[r.ID] {
				t.Errorf("Duplicate recipe id %d", r.ID)
			}
			recipeIDs[r.ID] = true
		}
	})

	t.Run("EveryIngredientResolves", func(t *testing.T) {
		lookup := NewLookup(items)
		for _, r := range recipes {
			if len(r.Ingredients) == 0 {
				t.Errorf("Recipe %q has no ingredients", r.Name)
			}
			for _, ing := range r.Ingredients {
				if _, ok := lookup.Resolve(ing.Item); !ok {
					t.Errorf("Recipe %q references unknown item %q", r.Name, ing.Item)
				}
				if ing.QuantityPerPerson <= 0 {
					t.Errorf("Recipe %q has non-positive quantity for %q", r.Name, ing.Item)
				}
			}
		}
	})

	t.Run("WeightsInRange", func(t *testing.T) {
		for _, r := range recipes {
			if r.FrequencyWeight < 1 || r.FrequencyWeight > 5 {
				t.Errorf("Recipe %q has frequency weight %d outside 1-5", r.Name, r.FrequencyWeight)
			}
		}
	})

	t.Run("EveryMealTypeCovered", func(t *testing.T) {
		byType := map[MealType]int{}
		for _, r := range recipes {
			byType[r.MealType]++
		}
		for _, mt := range []MealType{MealBreakfast, MealLunch, MealDinner} {
			if byType[mt] == 0 {
				t.Errorf("No recipes for meal type %s", mt)
			}
		}
	})
}

func TestSelect(t *testing.T) {
	items := DefaultItems()

	selected := Select(items, map[string]bool{"Salt": true, "Bread": true, "No Such Item": true})
	if len(selected) != 2 {
		t.Fatalf("Expected 2 selected items, got %d", len(selected))
	}
	if _, ok := selected.Resolve("Salt"); !ok {
		t.Error("Expected Salt to be selected")
	}
	if _, ok := selected.Resolve("Maize Flour"); ok {
		t.Error("Expected Maize Flour to be excluded")
	}
}
