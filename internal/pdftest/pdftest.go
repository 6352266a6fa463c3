// Package pdftest writes small real PDF files for tests. Every page carries
// a unique text label, so tests can verify page identity and order through
// text extraction after an edit round-trip.
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

// PageLabel returns the text stamped on page index of a document written
// with WritePDF under the given prefix.
func PageLabel(prefix string, index int) string {
	return fmt.Sprintf("%s-%d", prefix, index)
}

// WritePDF writes a minimal but fully valid single-xref PDF with pageCount
// Letter-sized pages to path. Page i contains the single Helvetica text
// line PageLabel(prefix, i).
func WritePDF(path, prefix string, pageCount int) error {
	if pageCount < 1 {
		return fmt.Errorf("pageCount must be at least 1, got %d", pageCount)
	}

	// Object layout: 1 catalog, 2 page tree, 3..2+N pages, 3+N font,
	// 4+N..3+2N content streams.
	fontObj := 3 + pageCount
	offsets := make([]int, 4+2*pageCount)

	var buf bytes.Buffer
	writeObj := func(num int, body string) {
		offsets[num] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}

	buf.WriteString("%PDF-1.4\n")

	writeObj(1, "<</Type/Catalog/Pages 2 0 R>>")

	kids := make([]string, pageCount)
	for i := range kids {
		kids[i] = fmt.Sprintf("%d 0 R", 3+i)
	}
	writeObj(2, fmt.Sprintf("<</Type/Pages/Kids[%s]/Count %d>>", strings.Join(kids, " "), pageCount))

	for i := 0; i < pageCount; i++ {
		writeObj(3+i, fmt.Sprintf(
			"<</Type/Page/MediaBox[0 0 612 792]/Parent 2 0 R/Resources<</Font<</F1 %d 0 R>>>>/Contents %d 0 R>>",
			fontObj, fontObj+1+i))
	}

	writeObj(fontObj, "<</Type/Font/Subtype/Type1/BaseFont/Helvetica>>")

	for i := 0; i < pageCount; i++ {
		stream := fmt.Sprintf("BT /F1 24 Tf 72 700 Td (%s) Tj ET", PageLabel(prefix, i))
		writeObj(fontObj+1+i, fmt.Sprintf("<</Length %d>>\nstream\n%s\nendstream", len(stream), stream))
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets))
	// Each xref entry is exactly 20 bytes: offset, generation, type, CR LF.
	fmt.Fprintf(&buf, "%010d %05d f \r\n", 0, 65535)
	for num := 1; num < len(offsets); num++ {
		fmt.Fprintf(&buf, "%010d %05d n \r\n", offsets[num], 0)
	}

	fmt.Fprintf(&buf, "trailer\n<</Size %d/Root 1 0 R>>\nstartxref\n%d\n%%%%EOF\n", len(offsets), xrefOffset)

	return os.WriteFile(path, buf.Bytes(), 0644)
}
