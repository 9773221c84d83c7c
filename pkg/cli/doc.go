// Package cli implements the mcdata command-line interface.
//
// # Commands
//
// versions - List registered versions:
//
//	mcdata versions [--format yaml|json|table]
//
// latest - Newest version with recipes for a platform:
//
//	mcdata latest --platform pc
//
// items - Search items by name:
//
//	mcdata items --platform pc --version 1.17 --query planks [--limit 25]
//
// item - Look up one item by numeric id or name:
//
//	mcdata item --platform bedrock --version 1.16.201 stick
//
// recipe - Show the recipes producing an item:
//
//	mcdata recipe --platform pc --version 1.17 --format grid crafting_table
//
// --version defaults to "latest", the newest version of the platform that
// ships recipes.
//
// # Global Flags
//
//	--data-dir     Directory layered over the embedded data (env: MCDATA_DATA_DIR)
//	--log-level    Log level: debug, info, warn, error (env: LOG_LEVEL)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Command Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table; recipe also accepts grid
package cli
