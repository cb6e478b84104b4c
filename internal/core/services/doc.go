// Package services contains the application core: the ingestion and
// query orchestrators composing the walker, extractors, segmenter,
// embedding service, and vector store.
package services
