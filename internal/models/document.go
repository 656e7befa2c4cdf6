package models

// Document is one raw entry of a document-store collection.
type Document struct {
	ID     string
	Fields map[string]any
}
