// Package radreport extracts labeled sections from semi-structured report
// text (originally radiology reports) by locating configurable start and
// end marker patterns. It resolves section boundaries purely by pattern
// position: no persistence, no I/O, no natural-language understanding.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Pattern-engine implementations live in
// subdirectories named after their primary dependency (regexp/, re2/).
package radreport
