// Package recipe defines the recipe data served by the /recipe API.
package recipe

// Recipe is a named dish with a serving yield and an ingredient list.
// Title is the unique key; two recipes are the same recipe when their
// titles are equal.
type Recipe struct {
	Title       string   `json:"title"`
	Yield       int      `json:"yield"`
	Ingredients []string `json:"ingredients"`
}

// Instructions is the ordered list of steps for one recipe.
type Instructions []string

// SameRecipe reports whether a and b refer to the same recipe.
// A nil pointer never matches.
func SameRecipe(a, b *Recipe) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Title == b.Title
}

// Find returns the recipe whose title matches exactly, or nil.
func Find(recipes []Recipe, title string) *Recipe {
	for i := range recipes {
		if recipes[i].Title == title {
			r := recipes[i]
			return &r
		}
	}
	return nil
}

// Titles returns the titles of recipes in order.
func Titles(recipes []Recipe) []string {
	titles := make([]string, len(recipes))
	for i, r := range recipes {
		titles[i] = r.Title
	}
	return titles
}
