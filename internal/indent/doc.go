// Package indent re-derives leading indentation of Swift text from its
// bracket structure.
//
// The pass knows nothing about Swift beyond its lexical shape: `{ [ (` open a
// level, `} ] )` close one, and delimiters inside string literals
// ("...", """...""", interpolations) and comments (//, nested /* */) are
// ignored. Each line's leading whitespace is replaced with the indent unit
// repeated (depth − closers at the start of the line) times. Everything after
// the leading whitespace is copied unchanged, so the pass is idempotent.
//
// Lines that begin inside a block comment or a multi-line string are copied
// verbatim. A string literal still open at the end of its line, or a comment
// or multi-line string still open at the end of the text, is malformed:
// everything from that point on is copied verbatim and Apply reports it.
//
// Назначение: нормализация отступов вывода транслятора.
// Не делает: разбор Swift, перенос строк, IO.
package indent
