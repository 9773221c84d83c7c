// Package dataset builds immutable (platform, version) snapshots of the item
// catalog and recipe index and serves them.
//
// A Dataset is constructed eagerly by New: paths are resolved through the
// registry, items.json and recipes.json are read through the loader, items
// are decoded into a catalog and recipes are normalized into an index. Any
// configuration, resource or parse failure aborts construction; no partial
// dataset is ever returned. After New returns nothing is mutated, so a
// Dataset can be shared by any number of goroutines.
//
// Cache keeps recently used snapshots in an LRU keyed by platform@version
// and collapses concurrent builds of the same key into one.
//
// Handler exposes the read API over HTTP:
//
//	GET /v1/versions
//	GET /v1/versions/latest?platform=pc
//	GET /v1/items?platform=pc&version=1.8&q=plank&limit=10
//	GET /v1/item?platform=pc&version=1.8&token=58
//	GET /v1/recipe?platform=pc&version=1.8&item=crafting_table&all=true
package dataset
