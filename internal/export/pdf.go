package export

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/Haze-32/tjk/internal/calendar"
	"github.com/Haze-32/tjk/internal/session"
)

var (
	pdfHeaderColor  = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor   = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor    = props.Color{Red: 200, Green: 200, Blue: 200}
	pdfSuccessColor = props.Color{Red: 39, Green: 174, Blue: 96}
	pdfFailureColor = props.Color{Red: 231, Green: 76, Blue: 60}
)

// Grid columns of a week row: label, five days, rollup.
const (
	pdfLabelCols  = 4
	pdfDayCols    = 1
	pdfRollupCols = 1
)

// PDF renders the document as an A4 sheet. The built-in PDF fonts have no
// check marks, so marks print as "ok" and "x".
func PDF(doc Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	m.AddRow(14,
		text.NewCol(12, doc.Title, props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, doc.Range(), props.Text{
			Size:  12,
			Color: &pdfMutedColor,
		}),
	)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(4)

	cols := session.Columns(doc.WeekMode)
	for _, month := range doc.Months {
		m.AddRow(9,
			text.NewCol(12, fmt.Sprintf("%s %d", month.Label, month.Year), props.Text{
				Style: fontstyle.Bold,
				Size:  11,
				Color: &pdfHeaderColor,
			}),
		)

		header := []core.Col{text.NewCol(pdfLabelCols, "Week", pdfSmallBold())}
		for _, c := range cols {
			header = append(header, text.NewCol(pdfDayCols, c, pdfCentered(pdfSmallBold())))
		}
		header = append(header, text.NewCol(pdfRollupCols, "", pdfSmallBold()))
		m.AddRow(6, header...)

		for _, w := range month.Weeks {
			row := []core.Col{text.NewCol(pdfLabelCols, w.Label, props.Text{Size: 9})}
			for _, slot := range w.Slots(doc.WeekMode) {
				row = append(row, text.NewCol(pdfDayCols, pdfDayText(slot), pdfDayProps(slot)))
			}
			row = append(row, text.NewCol(pdfRollupCols, pdfRollupText(w.Rollup), pdfRollupProps(w.Rollup)))
			m.AddRow(6, row...)
		}

		m.AddRow(4)
	}

	s := doc.Summary
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(8,
		text.NewCol(12, fmt.Sprintf("Success: %d   Failure: %d   Unset: %d   Full weeks: %d",
			s.Success, s.Failure, s.Unset, s.FullWeeks), props.Text{
			Style: fontstyle.Bold,
			Size:  10,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(6,
		text.NewCol(12, "* locked: always counts as success", props.Text{
			Size:  8,
			Color: &pdfMutedColor,
		}),
	)

	document, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generating PDF: %w", err)
	}
	return document.GetBytes(), nil
}

func pdfSmallBold() props.Text {
	return props.Text{Style: fontstyle.Bold, Size: 8, Color: &pdfMutedColor}
}

func pdfCentered(p props.Text) props.Text {
	p.Align = align.Center
	return p
}

func pdfDayText(day *session.DayView) string {
	if day == nil {
		return ""
	}
	label := fmt.Sprintf("%d", day.Date.Day)
	switch day.Mark {
	case calendar.Success:
		label += " ok"
	case calendar.Failure:
		label += " x"
	}
	if day.Locked {
		label += "*"
	}
	return label
}

func pdfDayProps(day *session.DayView) props.Text {
	p := props.Text{Size: 8, Align: align.Center}
	if day == nil {
		return p
	}
	switch day.Mark {
	case calendar.Success:
		p.Color = &pdfSuccessColor
	case calendar.Failure:
		p.Color = &pdfFailureColor
	}
	return p
}

func pdfRollupText(sym calendar.Symbol) string {
	if sym == calendar.SymbolFailure {
		return "x"
	}
	return sym.String()
}

func pdfRollupProps(sym calendar.Symbol) props.Text {
	p := props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Center}
	switch sym {
	case calendar.SymbolSuccess:
		p.Color = &pdfSuccessColor
	case calendar.SymbolFailure:
		p.Color = &pdfFailureColor
	}
	return p
}
