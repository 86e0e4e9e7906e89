// Package distill turns HTML pages into clean, measured articles.
// It walks parsed documents, aggregates and measures their text, normalizes
// resource URLs against the page origin, and hands the result to pluggable
// content extractors and Markdown converters.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., html/, sqlite/, readability/).
package distill
