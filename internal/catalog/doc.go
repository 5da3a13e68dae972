// Package catalog holds the immutable, ordered list of automation categories
// that the view filters and renders. The default catalog is embedded in the
// binary and parsed once; an override file can replace it at startup.
package catalog
