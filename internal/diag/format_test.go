package diag

import (
	"testing"

	"sharpswift/internal/source"
)

func TestFormatShort(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("src/Foo.cs", []byte("class A {}\ngoto x;\n"))

	diags := []Diagnostic{
		NewWarning(UnsupportedConstruct, source.Span{File: id, Start: 11, End: 18}, "goto\nstatement").
			WithNote(source.Span{File: id, Start: 0, End: 5}, "inside"),
		NewError(StructuralPrecondition, source.Span{File: id}, "no namespace"),
	}

	want := "src/Foo.cs:2:1: warning TRN2002 goto statement\n" +
		"src/Foo.cs:1:1: note TRN2002 inside\n" +
		"src/Foo.cs:1:1: error TRN2001 no namespace"
	if got := FormatShort(diags, fs, true); got != want {
		t.Fatalf("unexpected output:\nwant:\n%s\n\ngot:\n%s", want, got)
	}

	if got := FormatShort(diags[:1], fs, false); got != "src/Foo.cs:2:1: warning TRN2002 goto statement" {
		t.Fatalf("notes not skipped: %q", got)
	}
}

func TestFormatShortUnknownFile(t *testing.T) {
	got := FormatShort([]Diagnostic{NewWarning(ParseSyntaxError, source.Span{File: 7}, "x")}, nil, false)
	if got != "<unknown>:0:0: warning PAR1001 x" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatContext(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("Foo.cs", []byte("class A {\n\tgoto x;\n}\n"))

	diags := []Diagnostic{
		NewWarning(UnsupportedConstruct, source.Span{File: id, Start: 11, End: 18}, "goto statement"),
	}
	want := "Foo.cs:2:2: warning TRN2002 goto statement\n" +
		"    | \tgoto x;\n" +
		"    | \t^^^^^^^"
	if got := FormatContext(diags, fs); got != want {
		t.Fatalf("unexpected output:\nwant:\n%s\n\ngot:\n%s", want, got)
	}
}
