package pdf

import (
	"strings"
	"testing"
)

func TestWrapLinesShortText(t *testing.T) {
	if got := wrapLines("Pos.", 10, textFontSize); got != 1 {
		t.Fatalf("lines = %d", got)
	}
	if got := wrapLines("", 10, textFontSize); got != 1 {
		t.Fatalf("empty text must still occupy one line, got %d", got)
	}
	if got := wrapLines("   ", 10, textFontSize); got != 1 {
		t.Fatalf("blank text must still occupy one line, got %d", got)
	}
}

func TestWrapLinesGrowsWithText(t *testing.T) {
	short := wrapLines("USB-C Kabel", columnWidths[3], textFontSize)
	long := wrapLines(strings.Repeat("Ganz langer Produktname ", 6), columnWidths[3], textFontSize)
	if long <= short {
		t.Fatalf("long text must wrap onto more lines: short=%d long=%d", short, long)
	}
}

func TestWrapLinesBreaksOversizedWord(t *testing.T) {
	// a single word wider than the column is broken mid-word, not clipped
	word := strings.Repeat("X", 200)
	if got := wrapLines(word, columnWidths[4], serialFontSize); got < 2 {
		t.Fatalf("oversized word must break: lines = %d", got)
	}
}

func TestComputeRowMinimumHeight(t *testing.T) {
	layout := ComputeRow(1, 1, "Kabel", "USB-C Kabel", nil)

	// one text line dominates serials and barcode
	if layout.Height != lineHeight+2*cellPadding {
		t.Fatalf("height = %f", layout.Height)
	}
	if layout.SerialText != "-" {
		t.Fatalf("empty serial list must render a dash, got %q", layout.SerialText)
	}
}

func TestComputeRowHeightCoversEveryBlock(t *testing.T) {
	serials := []string{"SN-2026-0001", "SN-2026-0002", "SN-2026-0003", "SN-2026-0004", "SN-2026-0005"}
	layout := ComputeRow(3, 5, "Monitore", strings.Repeat("iiyama ProLite XUB2493HSU ", 4), serials)

	content := layout.Height - 2*cellPadding
	if content < layout.TextHeight {
		t.Fatalf("row shorter than its text block: %f < %f", content, layout.TextHeight)
	}
	if content < layout.SerialHeight {
		t.Fatalf("row shorter than its serial block: %f < %f", content, layout.SerialHeight)
	}
	if content < barcodeHeight {
		t.Fatalf("row shorter than the barcode cell: %f", content)
	}
	if layout.SerialText != strings.Join(serials, ", ") {
		t.Fatalf("serial text = %q", layout.SerialText)
	}
}

func TestComputeRowDashesBlankColumns(t *testing.T) {
	layout := ComputeRow(1, 1, "", "  ", nil)
	if layout.Texts[2] != "-" || layout.Texts[3] != "-" {
		t.Fatalf("blank category/product must render a dash: %v", layout.Texts)
	}
}
