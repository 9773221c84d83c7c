// Package registry maps (platform, version) pairs to the data directories
// holding their items and recipes.
//
// The table is read from dataPaths.json:
//
//	{
//	  "pc": {
//	    "1.8": {"items": "pc/1.8", "recipes": "pc/1.8", "blocks": "pc/1.8"}
//	  }
//	}
//
// Keys other than items and recipes are ignored. A Registry is built once
// with Load or Parse and passed to the components that need it; it is
// immutable and safe for concurrent use.
//
// Resolution fails with:
//   - UNKNOWN_PLATFORM when the platform has no table entry
//   - UNKNOWN_VERSION when the version is not listed for the platform
//   - UNSUPPORTED_VERSION when the recipes or items path is empty
package registry
