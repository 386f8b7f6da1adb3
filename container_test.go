package ucf

import (
	"errors"
	"reflect"
	"testing"
)

func TestTableGetSetDelete(t *testing.T) {
	c := New()

	if _, err := c.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := c.Delete("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := c.Set("a.txt", []byte("one")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Set("b.txt", []byte("two")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if !c.Has("a.txt") || c.Has("c.txt") {
		t.Fatal("Has mismatch")
	}
	if c.Len() != 3 { // mimetype seeded by New
		t.Fatalf("Len = %d", c.Len())
	}

	data, err := c.Get("a.txt")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(data) != "one" {
		t.Fatalf("payload = %q", data)
	}

	if err := c.Delete("a.txt"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if c.Has("a.txt") {
		t.Fatal("a.txt still present after delete")
	}
	want := []string{MimetypePath, "b.txt"}
	if !reflect.DeepEqual(c.Names(), want) {
		t.Fatalf("names = %v", c.Names())
	}
}

func TestReplaceKeepsPosition(t *testing.T) {
	c := New()
	for _, name := range []string{"a", "b", "c"} {
		if err := c.Set(name, []byte(name)); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}
	if err := c.Set("b", []byte("replaced")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	want := []string{MimetypePath, "a", "b", "c"}
	if !reflect.DeepEqual(c.Names(), want) {
		t.Fatalf("names = %v", c.Names())
	}
	entries := c.Entries()
	if entries[2].Path != "b" || string(entries[2].Data) != "replaced" {
		t.Fatalf("entries[2] = %#v", entries[2])
	}
}

func TestSetRejectsInvalidNames(t *testing.T) {
	c := New()
	for _, name := range []string{"", "name.", `a*b`, "a:b", "a<b", "a>b", "a?b", `a"b`, `a\b`, "a\x01b", "a\x7fb"} {
		if err := c.Set(name, nil); !errors.Is(err, ErrInvalidName) {
			t.Fatalf("%q: expected ErrInvalidName, got %v", name, err)
		}
	}
	// Non-ASCII names are fine; only specific characters are reserved.
	if err := c.Set("abcdé", nil); err != nil {
		t.Fatalf("unicode name: %v", err)
	}
}

func TestMimetypeAccessor(t *testing.T) {
	c := New()
	mt, err := c.Mimetype()
	if err != nil {
		t.Fatalf("Mimetype: %v", err)
	}
	if string(mt) != DefaultMimetype {
		t.Fatalf("default mimetype = %q", mt)
	}

	if err := c.SetMimetype("application/epub+zip"); err != nil {
		t.Fatalf("SetMimetype: %v", err)
	}
	mt, _ = c.Mimetype()
	if string(mt) != "application/epub+zip" {
		t.Fatalf("mimetype = %q", mt)
	}

	if err := c.SetMimetype("application/épub"); !errors.Is(err, ErrEncoding) {
		t.Fatalf("expected ErrEncoding, got %v", err)
	}

	if err := c.Delete(MimetypePath); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := c.Mimetype(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNewWithMimetypeRejectsNonASCII(t *testing.T) {
	if _, err := NewWithMimetype("text/é"); !errors.Is(err, ErrEncoding) {
		t.Fatalf("expected ErrEncoding, got %v", err)
	}
}

func TestMetaViewSharesStorage(t *testing.T) {
	c := New()
	meta := c.Meta()

	if err := meta.Set(ContainerFile, []byte("<container/>")); err != nil {
		t.Fatalf("meta.Set: %v", err)
	}
	data, err := c.Get(ContainerPath)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(data) != "<container/>" {
		t.Fatalf("payload = %q", data)
	}

	// Writes through the table are visible in the view and vice versa.
	if err := c.Set("META-INF/signatures.xml", []byte("<sig/>")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if !meta.Has("signatures.xml") {
		t.Fatal("view does not see table write")
	}
	want := []string{ContainerFile, "signatures.xml"}
	if !reflect.DeepEqual(meta.Names(), want) {
		t.Fatalf("meta names = %v", meta.Names())
	}

	if err := meta.Delete("signatures.xml"); err != nil {
		t.Fatalf("meta.Delete: %v", err)
	}
	if c.Has("META-INF/signatures.xml") {
		t.Fatal("table still has member deleted through view")
	}
	if _, err := meta.Get("signatures.xml"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRootfilesStaging(t *testing.T) {
	c := New()
	c.AddRootfile("OPS/a.opf", "application/oebps-package+xml")
	c.AddRootfile("OPS/b.opf", "application/oebps-package+xml")

	// Mutating rootfiles does not touch the container.xml member yet.
	if c.Has(ContainerPath) {
		t.Fatal("container.xml materialized before save")
	}

	if err := c.RemoveRootfile("OPS/a.opf"); err != nil {
		t.Fatalf("RemoveRootfile: %v", err)
	}
	if err := c.RemoveRootfile("OPS/a.opf"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	got := c.Rootfiles()
	want := []Rootfile{{FullPath: "OPS/b.opf", MediaType: "application/oebps-package+xml"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("rootfiles = %#v", got)
	}

	// Rootfiles returns a copy; mutating it must not affect the container.
	got[0].FullPath = "clobbered"
	if c.Rootfiles()[0].FullPath != "OPS/b.opf" {
		t.Fatal("Rootfiles returned shared storage")
	}

	c.SetRootfiles(nil)
	if len(c.Rootfiles()) != 0 {
		t.Fatalf("rootfiles = %#v", c.Rootfiles())
	}
}
