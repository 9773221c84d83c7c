// Package serializer writes catalog data in multiple output formats.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, indented representation
//   - Used for HTTP responses and the CLI default
//
// YAML:
//   - Human-readable with preserved structure
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - Flattened FIELD/VALUE listing keyed by json tag names
//   - Suitable for terminal viewing
//
// # Usage
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, items); err != nil {
//		return err
//	}
//
// For HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, data)
//
// RespondJSON encodes into a buffer before writing headers, so an encoding
// failure produces a clean 500 instead of a truncated body.
package serializer
