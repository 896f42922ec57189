// Package docsmcp provides a documentation harvesting and retrieval engine.
// It crawls documentation sites, walks local folders and converts binary
// documents to markdown, splits the result into overlapping chunks, and
// indexes the chunks for similarity search scoped by project, library,
// version and content type.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, gemini/).
package docsmcp
