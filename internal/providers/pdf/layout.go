package pdf

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Table geometry in millimetres. The six columns fill the printable width of
// an A4 page (210mm minus the 15mm margins).
const (
	pageMargin = 15.0
	lineHeight = 7.0

	textFontSize   = 8.0
	serialFontSize = 6.0
	headerFontSize = 9.0

	barcodeHeight = 6.0
	cellPadding   = 1.0

	ptToMM = 25.4 / 72.0

	// average glyph advance as a fraction of the font size, close enough to
	// Helvetica for line counting
	glyphAspect = 0.5
)

var (
	columnTitles = []string{"Pos.", "Menge", "Kategorie", "Produkt", "Serien-Nr", "BC"}
	columnWidths = []float64{10, 13, 27, 85, 35, 10}
)

// RowLayout carries the computed geometry of one table row.
type RowLayout struct {
	Texts        []string // pos, quantity, category, product
	SerialText   string   // comma-joined, "-" when empty
	TextLines    []int    // wrapped line count per text column
	SerialLines  int
	TextHeight   float64
	SerialHeight float64
	Height       float64 // final row height including padding
}

// serialLineHeight is the line advance of the serial column at its smaller
// font size.
func serialLineHeight() float64 {
	return serialFontSize * ptToMM
}

// wrapLines counts how many lines a string occupies when wrapped greedily
// into the given width at the given font size. Words longer than a line are
// broken mid-word, matching the renderer's behavior.
func wrapLines(text string, widthMM, fontSizePt float64) int {
	if strings.TrimSpace(text) == "" {
		return 1
	}

	charWidth := fontSizePt * ptToMM * glyphAspect
	perLine := int(widthMM / charWidth)
	if perLine < 1 {
		perLine = 1
	}

	lines := 1
	current := 0
	for _, word := range strings.Fields(text) {
		length := utf8.RuneCountInString(word)
		switch {
		case current == 0:
			current = length
		case current+1+length <= perLine:
			current += 1 + length
		default:
			lines++
			current = length
		}
		for current > perLine {
			lines++
			current -= perLine
		}
	}
	return lines
}

// ComputeRow lays out one item row: the row height is the maximum of the text
// block, the serial block and the barcode cell, plus padding on both sides.
func ComputeRow(position, quantity int, category, product string, serials []string) RowLayout {
	texts := []string{
		strconv.Itoa(position),
		strconv.Itoa(quantity),
		orDash(category),
		orDash(product),
	}

	layout := RowLayout{
		Texts:     texts,
		TextLines: make([]int, len(texts)),
	}

	maxLines := 1
	for i, text := range texts {
		lines := wrapLines(text, columnWidths[i], textFontSize)
		layout.TextLines[i] = lines
		if lines > maxLines {
			maxLines = lines
		}
	}
	layout.TextHeight = float64(maxLines) * lineHeight

	layout.SerialText = orDash(strings.Join(serials, ", "))
	layout.SerialLines = wrapLines(layout.SerialText, columnWidths[4], serialFontSize)
	layout.SerialHeight = float64(layout.SerialLines) * serialLineHeight()

	content := layout.TextHeight
	if layout.SerialHeight > content {
		content = layout.SerialHeight
	}
	if barcodeHeight > content {
		content = barcodeHeight
	}
	layout.Height = content + 2*cellPadding

	return layout
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

