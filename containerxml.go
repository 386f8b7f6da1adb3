package ucf

import (
	"encoding/xml"
	"fmt"
)

// xmlContainer mirrors the container.xml document shape for decoding.
// Matching is namespace-lenient: locating rootfile elements with full-path
// and media-type attributes is all the codec needs.
type xmlContainer struct {
	XMLName   xml.Name      `xml:"container"`
	Rootfiles []xmlRootfile `xml:"rootfiles>rootfile"`
}

type xmlRootfile struct {
	FullPath  string `xml:"full-path,attr"`
	MediaType string `xml:"media-type,attr"`
}

// outContainer is the canonical encoding shape, with the OASIS namespace
// declared on the root element.
type outContainer struct {
	XMLName   xml.Name     `xml:"container"`
	Xmlns     string       `xml:"xmlns,attr"`
	Version   string       `xml:"version,attr"`
	Rootfiles outRootfiles `xml:"rootfiles"`
}

type outRootfiles struct {
	Rootfiles []xmlRootfile `xml:"rootfile"`
}

// parseRootfiles extracts the ordered rootfile records from a container.xml
// payload. It fails with ErrMalformedContainer when the payload is not
// well-formed markup.
func parseRootfiles(data []byte) ([]Rootfile, error) {
	var doc xmlContainer
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedContainer, err)
	}
	records := make([]Rootfile, 0, len(doc.Rootfiles))
	for _, rf := range doc.Rootfiles {
		records = append(records, Rootfile{FullPath: rf.FullPath, MediaType: rf.MediaType})
	}
	return records, nil
}

// buildContainerXML renders the canonical container.xml document for the
// given records, preserving their order.
func buildContainerXML(records []Rootfile) ([]byte, error) {
	doc := outContainer{Xmlns: ContainerNS, Version: "1.0"}
	for _, rf := range records {
		doc.Rootfiles.Rootfiles = append(doc.Rootfiles.Rootfiles, xmlRootfile{
			FullPath:  rf.FullPath,
			MediaType: rf.MediaType,
		})
	}
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
