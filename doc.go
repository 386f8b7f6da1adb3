// Package ucf reads and writes Universal Container Format (UCF) archives.
//
// UCF is the zip-based packaging convention used by EPUB (where it is
// profiled as OCF), Adobe InDesign IDML, and similar document formats. A
// UCF archive is an ordinary zip file with two structural requirements:
//
//   - The first member is named "mimetype", stored without compression and
//     without extra header fields, so the package media type is readable
//     at byte offset 38 by tools that do not understand zip.
//   - A META-INF/container.xml descriptor enumerates one or more
//     rootfiles: (full-path, media-type) pairs pointing at the package's
//     primary documents.
//
// The package models an archive as an ordered collection of named byte
// payloads plus three synchronized views: the mimetype accessor, the
// META-INF sub-view, and the rootfiles list. Member order is preserved
// across load and save, except that the mimetype member is moved to the
// front when writing.
//
// # Basic Usage
//
// To build and write a container:
//
//	c, err := ucf.NewWithMimetype("application/epub+zip")
//	if err != nil {
//		return err
//	}
//	_ = c.Set("OPS/chapter-1.xhtml", []byte("<html/>"))
//	c.AddRootfile("OPS/package.opf", "application/oebps-package+xml")
//	if err := c.SaveFile("book.epub"); err != nil {
//		return err
//	}
//
// To read an existing container:
//
//	c, err := ucf.Open("book.epub")
//	if err != nil {
//		return err
//	}
//	mt, _ := c.Mimetype()
//	for _, rf := range c.Rootfiles() {
//		// rf.FullPath, rf.MediaType
//	}
//
// Decode and Encode work against io.ReaderAt and io.Writer for in-memory
// or streaming use.
//
// # Compression
//
// Non-mimetype members are Deflate-compressed by default through the
// klauspost/compress implementation. WithCompression selects Store or
// Zstandard (zip method 93) instead, and WithStoredPatterns exempts
// already-compressed media from recompression by path rule. Zstandard
// members are always accepted on read.
//
// # Security Considerations
//
// Decode enforces configurable [Limits] on member count, name length, and
// declared and actual uncompressed sizes to protect against zip bombs and
// oversized allocations.
//
// # Specification
//
// OCF: http://idpf.org/epub/30/spec/epub30-ocf.html
//
// UCF: http://learn.adobe.com/wiki/display/PDFNAV/Universal+Container+Format
package ucf
