package models

import (
	"github.com/rohanthewiz/serr"
	"github.com/vmihailenco/msgpack/v5"
)

// MsgPackContentType is the media type clients send in Accept to get msgpack search results
const MsgPackContentType = "application/msgpack"

// RecipeResults is the msgpack envelope for an API search response.
// Msgpack keeps the ingredient-heavy payload smaller than the JSON equivalent.
type RecipeResults struct {
	Query   string   `msgpack:"query"`
	Count   int      `msgpack:"count"`
	Recipes []Recipe `msgpack:"recipes"`
}

// EncodeRecipesMsgPack encodes a result set for the msgpack API response
func EncodeRecipesMsgPack(query string, recipes []Recipe) ([]byte, error) {
	if recipes == nil {
		recipes = []Recipe{}
	}

	out, err := msgpack.Marshal(RecipeResults{
		Query:   query,
		Count:   len(recipes),
		Recipes: recipes,
	})
	if err != nil {
		return nil, serr.Wrap(err, "failed to msgpack encode recipes")
	}
	return out, nil
}

// DecodeRecipesMsgPack decodes a payload produced by EncodeRecipesMsgPack
func DecodeRecipesMsgPack(data []byte) (*RecipeResults, error) {
	if len(data) == 0 {
		return nil, serr.New("empty msgpack payload")
	}

	var results RecipeResults
	if err := msgpack.Unmarshal(data, &results); err != nil {
		return nil, serr.Wrap(err, "failed to unmarshal msgpack recipes")
	}
	return &results, nil
}
