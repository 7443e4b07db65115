package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("Program.cs", []byte("class A {}"), 0)
	id2 := fs.Add("Program.cs", []byte("class B {}"), 0)
	if id1 == id2 {
		t.Fatalf("expected distinct ids, got %d twice", id1)
	}

	// Старая версия остаётся доступной
	if got := string(fs.Get(id1).Content); got != "class A {}" {
		t.Errorf("first version content = %q", got)
	}
	if fs.Len() != 2 {
		t.Errorf("Len = %d, want 2", fs.Len())
	}
}

func TestGetUnknownID(t *testing.T) {
	fs := NewFileSet()
	if fs.Get(3) != nil {
		t.Fatal("expected nil for unknown id")
	}
}

func TestAddBytesNormalizesBOMAndCRLF(t *testing.T) {
	fs := NewFileSet()
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("using System;\r\nnamespace A {}\r\n")...)

	id := fs.AddBytes("a.cs", raw)
	file := fs.Get(id)

	if got := string(file.Content); got != "using System;\nnamespace A {}\n" {
		t.Fatalf("normalized content = %q", got)
	}
	if file.Flags&FileHadBOM == 0 {
		t.Error("expected FileHadBOM flag")
	}
	if file.Flags&FileNormalizedCRLF == 0 {
		t.Error("expected FileNormalizedCRLF flag")
	}
}

func TestLoneCarriageReturnIsKept(t *testing.T) {
	out, changed := normalizeCRLF([]byte("a\rb"))
	if changed {
		t.Error("lone \\r must not count as CRLF")
	}
	if string(out) != "a\rb" {
		t.Errorf("got %q", out)
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.cs", []byte("ab\ncd\n"))

	start, end := fs.Resolve(Span{File: id, Start: 3, End: 5})
	if start != (LineCol{Line: 2, Col: 1}) {
		t.Errorf("start = %+v", start)
	}
	if end != (LineCol{Line: 2, Col: 3}) {
		t.Errorf("end = %+v", end)
	}

	// Позиция самого перевода строки принадлежит первой строке
	nl, _ := fs.Resolve(Span{File: id, Start: 2, End: 2})
	if nl != (LineCol{Line: 1, Col: 3}) {
		t.Errorf("newline position = %+v", nl)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.cs", []byte("int x;\nint y;"))
	file := fs.Get(id)

	if got := file.GetLine(1); got != "int x;" {
		t.Errorf("GetLine(1) = %q", got)
	}
	if got := file.GetLine(2); got != "int y;" {
		t.Errorf("GetLine(2) = %q", got)
	}
	if got := file.GetLine(3); got != "" {
		t.Errorf("GetLine(3) = %q", got)
	}
	if got := file.GetLine(0); got != "" {
		t.Errorf("GetLine(0) = %q", got)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Foo.cs")
	if err := os.WriteFile(path, []byte("class Foo {}\r\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := string(fs.Get(id).Content); got != "class Foo {}\n" {
		t.Errorf("content = %q", got)
	}

	if _, err := fs.Load(filepath.Join(dir, "missing.cs")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSpanHelpers(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	if a.Len() != 4 {
		t.Errorf("Len = %d", a.Len())
	}
	if (Span{Start: 8, End: 4}).Len() != 0 {
		t.Error("inverted span must have zero length")
	}
	if a.String() != "1:4-8" {
		t.Errorf("String = %q", a.String())
	}
}
