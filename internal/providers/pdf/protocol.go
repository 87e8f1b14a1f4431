package pdf

import (
	"context"
	"os"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appconfig "github.com/serialtrack/serialtrack/internal/config"
	slipdomain "github.com/serialtrack/serialtrack/internal/slip/domain"
)

// gridSize maps one grid unit to one millimetre of printable width
// (210mm page minus two 15mm margins).
const gridSize = 180

const addressBlockWidth = 60

type protocolRenderer struct {
	letterhead appconfig.Letterhead
	logoPath   string
}

func New(cfg appconfig.Config, letterhead appconfig.Letterhead) Provider {
	return &protocolRenderer{
		letterhead: letterhead,
		logoPath:   cfg.LogoPath,
	}
}

func (r *protocolRenderer) GenerateProtocol(ctx context.Context, doc *slipdomain.Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithMaxGridSize(gridSize).
		WithLeftMargin(pageMargin).
		WithTopMargin(pageMargin).
		WithRightMargin(pageMargin).
		WithPageNumber(props.PageNumber{
			Pattern: "Seite {current}/{total}",
			Place:   props.Bottom,
			Size:    7,
			Style:   fontstyle.Italic,
		}).
		Build()

	m := maroto.New(cfg)

	r.addLetterhead(m)
	r.addHeader(m, doc)
	r.addTableHeader(m)

	for _, row := range doc.Rows {
		layout := ComputeRow(row.Position, row.Quantity, row.Category, row.Product, row.Serials)
		m.AddRow(layout.Height, r.itemCells(layout)...)
	}

	rendered, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return rendered.GetBytes(), nil
}

func (r *protocolRenderer) addLetterhead(m core.Maroto) {
	left := col.New(addressBlockWidth)
	for i, lineText := range r.letterhead.AddressLeft {
		left.Add(text.New(lineText, props.Text{Size: 8, Top: float64(i) * 4, Align: align.Left}))
	}

	logoWidth := int(r.letterhead.LogoWidthMM)
	if logoWidth <= 0 || logoWidth > gridSize-2*addressBlockWidth {
		logoWidth = gridSize - 2*addressBlockWidth
	}
	spacer := (gridSize - 2*addressBlockWidth - logoWidth) / 2
	spacerRight := gridSize - 2*addressBlockWidth - logoWidth - spacer

	center := col.New(logoWidth)
	if _, err := os.Stat(r.logoPath); err == nil {
		center = image.NewFromFileCol(logoWidth, r.logoPath, props.Rect{
			Center:  true,
			Percent: 100,
		})
	}

	right := col.New(addressBlockWidth)
	for i, lineText := range r.letterhead.AddressRight {
		right.Add(text.New(lineText, props.Text{Size: 8, Top: float64(i) * 4, Align: align.Right}))
	}

	headerHeight := float64(4 * maxLen(r.letterhead.AddressLeft, r.letterhead.AddressRight))
	if headerHeight < 24 {
		headerHeight = 24
	}
	cells := []core.Col{left}
	if spacer > 0 {
		cells = append(cells, col.New(spacer))
	}
	cells = append(cells, center)
	if spacerRight > 0 {
		cells = append(cells, col.New(spacerRight))
	}
	cells = append(cells, right)
	m.AddRow(headerHeight, cells...)

	m.AddRow(2, line.NewCol(gridSize))
	m.AddRow(2, col.New(gridSize))
}

func (r *protocolRenderer) addHeader(m core.Maroto, doc *slipdomain.Document) {
	m.AddRow(8, text.NewCol(gridSize, r.letterhead.Title, props.Text{
		Size:  14,
		Style: fontstyle.Bold,
		Align: align.Left,
	}))

	metaRow := func(label, value string) {
		m.AddRow(6,
			text.NewCol(32, label, props.Text{Size: 11, Style: fontstyle.Bold}),
			text.NewCol(gridSize-32, orDash(value), props.Text{Size: 11, Style: fontstyle.Bold}),
		)
	}
	metaRow("Bestell-Nr.:", doc.OrderNo)
	metaRow("Kunde:", doc.Customer)
	metaRow("Datum:", doc.CreatedAt.Format("02.01.2006"))

	m.AddRow(4, col.New(gridSize))
}

func (r *protocolRenderer) addTableHeader(m core.Maroto) {
	headerStyle := &props.Cell{
		BackgroundColor: &props.Color{Red: 230, Green: 230, Blue: 230},
		BorderType:      border.Full,
	}

	cells := make([]core.Col, 0, len(columnTitles))
	for i, title := range columnTitles {
		cells = append(cells, text.NewCol(int(columnWidths[i]), title, props.Text{
			Size:  headerFontSize,
			Style: fontstyle.Bold,
			Align: align.Center,
			Top:   1.5,
		}).WithStyle(headerStyle))
	}
	m.AddRow(lineHeight, cells...)
}

func (r *protocolRenderer) itemCells(layout RowLayout) []core.Col {
	cellStyle := &props.Cell{BorderType: border.Full}

	cells := make([]core.Col, 0, 6)

	// four short text columns, left-aligned, each block vertically centered
	for i, value := range layout.Texts {
		blockHeight := float64(layout.TextLines[i]) * lineHeight
		top := (layout.Height - blockHeight) / 2
		cells = append(cells, text.NewCol(int(columnWidths[i]), value, props.Text{
			Size:  textFontSize,
			Align: align.Left,
			Left:  1,
			Top:   top + 1,
		}).WithStyle(cellStyle))
	}

	// serial column, smaller font, centered both ways
	serialTop := (layout.Height - layout.SerialHeight) / 2
	cells = append(cells, text.NewCol(int(columnWidths[4]), layout.SerialText, props.Text{
		Size:  serialFontSize,
		Align: align.Center,
		Top:   serialTop,
	}).WithStyle(cellStyle))

	// one DataMatrix per row over the comma-joined serial list; an empty list
	// encodes the "-" placeholder so every row carries a symbol
	percent := barcodeHeight / layout.Height * 100
	if percent > 100 {
		percent = 100
	}
	cells = append(cells, code.NewMatrixCol(int(columnWidths[5]), layout.SerialText, props.Rect{
		Center:  true,
		Percent: percent,
	}).WithStyle(cellStyle))

	return cells
}

func maxLen(a, b []string) int {
	if len(a) > len(b) {
		return len(a)
	}
	return len(b)
}
