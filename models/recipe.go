package models

import "strings"

// Recipe is a single search result as returned by the recipe API.
// URI is unique within one result set and is used as the rendering key.
// All other fields are opaque display data.
type Recipe struct {
	URI             string       `json:"uri" msgpack:"uri"`
	Label           string       `json:"label" msgpack:"label"`
	Image           string       `json:"image" msgpack:"image"`
	IngredientLines []string     `json:"ingredientLines" msgpack:"ingredient_lines"`
	Ingredients     []Ingredient `json:"ingredients" msgpack:"ingredients"`
	URL             string       `json:"url" msgpack:"url"`
}

// Ingredient is a sub-record of a recipe holding descriptive text
type Ingredient struct {
	Text string `json:"text" msgpack:"text"`
}

// IngredientPreview joins the ingredient lines for the card preview
func (r Recipe) IngredientPreview() string {
	return strings.Join(r.IngredientLines, ", ")
}

// Hit wraps one recipe in the search response
type Hit struct {
	Recipe Recipe `json:"recipe"`
}

// SearchResponse is the payload of the recipe search endpoint.
// Hits is a pointer so a body without the key can be told apart from an empty list.
type SearchResponse struct {
	Hits *[]Hit `json:"hits"`
}

// Recipes unwraps the hit list in order. Never returns nil.
func (sr SearchResponse) Recipes() []Recipe {
	if sr.Hits == nil {
		return []Recipe{}
	}
	recipes := make([]Recipe, 0, len(*sr.Hits))
	for _, hit := range *sr.Hits {
		recipes = append(recipes, hit.Recipe)
	}
	return recipes
}

// Credentials identify the application to the recipe API.
// They are passed into every search call rather than read from the environment there.
type Credentials struct {
	AppID  string
	AppKey string
}

// ExampleQueries are the suggested searches offered as quick-fill chips
var ExampleQueries = []string{
	"Biryani",
	"Chicken Karahi",
	"Nihari",
	"Haleem",
	"Chapli Kabab",
}

// IsExampleQuery reports whether q is one of the ExampleQueries
func IsExampleQuery(q string) bool {
	for _, example := range ExampleQueries {
		if example == q {
			return true
		}
	}
	return false
}
