// Package syntax defines the immutable C# syntax tree consumed by the
// translator.
//
// Invariants:
//   - The set of node types is closed. Every node implements Accept by calling
//     exactly one Visitor method, so a new node type does not compile until
//     every Visitor handles it.
//   - Nodes carry their original source text (Base.Text) for passthrough
//     rendering; the translator never re-lexes it.
//   - Comment trivia is attached to member- and statement-level nodes only.
//
// Назначение: общий формат дерева между парсером (internal/csharp) и
// транслятором (internal/translate).
// Не делает: разбор текста, семантику, IO.
package syntax
