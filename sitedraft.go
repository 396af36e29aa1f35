// Package sitedraft turns a language model's markdown response into a set of
// named HTML pages with shared CSS and JavaScript, and assembles a standalone
// preview document for every page.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, gemini/, chroma/).
package sitedraft
