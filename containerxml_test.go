package ucf

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestContainerXMLRoundTrip(t *testing.T) {
	in := []Rootfile{
		{FullPath: "OPS/package.opf", MediaType: "application/oebps-package+xml"},
		{FullPath: "alt/package.opf", MediaType: "application/oebps-package+xml"},
		{FullPath: "designmap.xml", MediaType: "text/xml"},
	}
	body, err := buildContainerXML(in)
	if err != nil {
		t.Fatalf("buildContainerXML: %v", err)
	}
	out, err := parseRootfiles(body)
	if err != nil {
		t.Fatalf("parseRootfiles: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip mismatch\nwant: %#v\ngot:  %#v", in, out)
	}
}

func TestBuildContainerXMLShape(t *testing.T) {
	body, err := buildContainerXML([]Rootfile{{FullPath: "OPS/a.opf", MediaType: "application/oebps-package+xml"}})
	if err != nil {
		t.Fatalf("buildContainerXML: %v", err)
	}
	doc := string(body)
	for _, want := range []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`xmlns="` + ContainerNS + `"`,
		`version="1.0"`,
		`full-path="OPS/a.opf"`,
		`media-type="application/oebps-package+xml"`,
		"<rootfiles>",
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("document missing %q:\n%s", want, doc)
		}
	}
}

func TestBuildContainerXMLEmpty(t *testing.T) {
	body, err := buildContainerXML(nil)
	if err != nil {
		t.Fatalf("buildContainerXML: %v", err)
	}
	out, err := parseRootfiles(body)
	if err != nil {
		t.Fatalf("parseRootfiles: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("records = %#v", out)
	}
}

func TestParseRealWorldContainer(t *testing.T) {
	// As produced by common EPUB tooling: namespaced, self-closing
	// rootfile, surrounding whitespace.
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
   <rootfiles>
      <rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
   </rootfiles>
</container>`
	out, err := parseRootfiles([]byte(doc))
	if err != nil {
		t.Fatalf("parseRootfiles: %v", err)
	}
	want := []Rootfile{{FullPath: "OEBPS/content.opf", MediaType: "application/oebps-package+xml"}}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("records = %#v", out)
	}
}

func TestParseMalformedContainer(t *testing.T) {
	for _, doc := range []string{
		"",
		"not xml at all",
		"<container><rootfiles>",
		"<container><rootfile full-path='x'</container>",
	} {
		if _, err := parseRootfiles([]byte(doc)); !errors.Is(err, ErrMalformedContainer) {
			t.Fatalf("%q: expected ErrMalformedContainer, got %v", doc, err)
		}
	}
}
