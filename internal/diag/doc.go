// Package diag defines the diagnostic model shared by the parser adapter,
// the translator, the indentation normalizer and the driver.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – Info, Warning or Error (severity.go).
//   - Code – numeric identifier with a stable string form (codes.go). Ranges:
//     PAR for parsing, TRN for translation, IND for indentation, IO, OBS.
//   - Message – short human text.
//   - Primary – the source.Span the finding points at.
//   - Notes – optional secondary spans.
//
// Only StructuralPrecondition and the IO codes are errors. Everything the
// translator can degrade around (passthrough output, unterminated literals,
// syntax errors recovered by the parser) is a warning; the driver decides
// whether warnings fail a file (strict mode).
//
// # Emitting diagnostics
//
// Phases receive a Reporter and either call Report directly or go through
// ReportError/ReportWarning and Emit. BagReporter stores into a Bag,
// DedupReporter filters repeats. Bag supports sorting and a size limit
// (--max-diagnostics).
//
// Package diag performs no IO. FormatShort and FormatContext render
// diagnostics for the CLI.
package diag
