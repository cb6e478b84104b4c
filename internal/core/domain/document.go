package domain

import "path/filepath"

// FileType identifies a supported document format, inferred from the
// file extension.
type FileType string

const (
	// FileTypePDF is a paginated PDF document.
	FileTypePDF FileType = "pdf"

	// FileTypeDOCX is an OOXML word-processing document.
	FileTypeDOCX FileType = "docx"

	// FileTypeText is a plain UTF-8 text file.
	FileTypeText FileType = "txt"

	// FileTypeMarkdown is a Markdown file.
	FileTypeMarkdown FileType = "md"
)

// SupportedExtensions lists the file extensions the pipeline ingests,
// in dispatch order. Matching is exact and case-sensitive.
var SupportedExtensions = []string{".pdf", ".docx", ".txt", ".md"}

// Document represents a discovered file to be ingested.
// It is a path reference only; content is never held on the document.
type Document struct {
	// Path is the location of the file on disk.
	Path string

	// Type is the format inferred from the extension.
	Type FileType
}

// NewDocument builds a Document for the given path.
// It returns false when the extension is not a supported type.
func NewDocument(path string) (Document, bool) {
	t, ok := TypeForExtension(filepath.Ext(path))
	if !ok {
		return Document{}, false
	}
	return Document{Path: path, Type: t}, true
}

// TypeForExtension maps a file extension (including the leading dot)
// to its FileType.
func TypeForExtension(ext string) (FileType, bool) {
	switch ext {
	case ".pdf":
		return FileTypePDF, true
	case ".docx":
		return FileTypeDOCX, true
	case ".txt":
		return FileTypeText, true
	case ".md":
		return FileTypeMarkdown, true
	default:
		return "", false
	}
}

// IngestedFile is one catalog entry: a file ingested during a run.
type IngestedFile struct {
	// ID is the unique identifier for this catalog entry.
	ID string

	// RunID identifies the ingest run that produced the entry.
	RunID string

	// Path is the ingested file's path, as stored with its vectors.
	Path string

	// Paragraphs is the number of paragraph vectors saved for the file.
	Paragraphs int

	// IngestedAt is when the file was saved to the vector store,
	// as a Unix timestamp in seconds.
	IngestedAt int64
}
