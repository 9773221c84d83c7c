// Package recipe turns raw crafting records into canonical recipes.
//
// # Pipeline
//
// Collect flattens recipes.json, a mapping of recipe name to one record or
// an array of records, into an ordered slice of RawVariant. Each variant's
// shape is decoded once at this boundary into a tagged union:
//
//	Shaped{Rows}          // "inShape": rows of cells, at most 3x3 used
//	Shapeless{Ingredients} // "ingredients": at most 9 entries used
//
// A cell or ingredient is either a bare numeric id or an object carrying
// "id" and optional "metadata". Null and unusable cells decode to nil.
//
// Normalize binds a variant to an item catalog and returns a Recipe with a
// 3x3 matrix. Variants without a resolvable result, or without a shape, are
// dropped. Ingredients that do not resolve leave their cell empty.
//
// Ingredient metadata is decoded but not used for matching: every variant of
// an id resolves to the same catalog item.
//
// NewIndex normalizes a whole collection and answers lookups by result item:
//
//	raws, err := recipe.Collect(b)
//	if err != nil {
//	    return err
//	}
//	idx := recipe.NewIndex(raws, catalog)
//	r, ok := idx.LookupByResult(table)
//	fmt.Println(recipe.Format(r)) // 4xplanks
package recipe
