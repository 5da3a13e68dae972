// Package manifest handles parsing and validation of catalog files. A catalog
// file is a YAML document carrying a schema version and an ordered list of
// automation categories; it is validated against the JSON Schema embedded in
// this package before being turned into an immutable catalog.
package manifest
