// Package domain contains the core types shared across the ingestion
// and retrieval pipeline: supported file formats, discovered documents,
// catalog entries, and sentinel errors.
package domain
