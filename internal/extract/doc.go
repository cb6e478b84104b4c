// Package extract provides the extension-dispatched text extraction
// registry. Format-specific extractors live in subpackages.
package extract
