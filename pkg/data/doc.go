// Package data provides access to the bundled game data files and the
// loader that reads per-version items and recipes from them.
//
// Files are addressed by forward-slash paths relative to the data root,
// mirroring the minecraft-data layout:
//
//	dataPaths.json
//	pc/1.8/items.json
//	pc/1.8/recipes.json
//
// # Providers
//
// FSProvider serves files from any fs.FS. Embedded returns the provider
// over the data compiled into the binary.
//
// LayeredProvider overlays an external directory on top of another provider.
// External files replace embedded ones, except dataPaths.json which is merged
// per platform and version so an external tree can add versions without
// restating the bundled ones:
//
//	base := data.Embedded()
//	p, err := data.NewLayeredProvider(base, data.LayeredProviderConfig{
//	    ExternalDir: "/srv/minecraft-data",
//	})
//
// # Loader
//
// Loader reads items.json and recipes.json beneath the directory paths
// resolved from the version registry. Missing files fail with
// RESOURCE_NOT_FOUND.
package data
