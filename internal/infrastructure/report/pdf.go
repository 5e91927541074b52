package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/vulnscan/internal/domain"
)

const (
	recommendationLimit = 600
	charsPerLine        = 110
	lineHeight          = 4.0
)

var (
	titleProps  = props.Text{Size: 14, Style: fontstyle.Bold, Align: align.Center}
	headerProps = props.Text{Size: 9, Style: fontstyle.Bold, Top: 1}
	cellProps   = props.Text{Size: 9, Top: 1}
	noteProps   = props.Text{Size: 8, Top: 1, Left: 2}
)

func (g *Generator) pdf(w io.Writer, scan *domain.Scan) error {
	cfg := config.NewBuilder().
		WithLeftMargin(10).
		WithTopMargin(15).
		WithRightMargin(10).
		Build()

	m := maroto.New(cfg)

	m.AddRows(
		text.NewRow(12, "Vulnerability report", titleProps),
		text.NewRow(6, "Scan "+scan.ID, cellProps),
		text.NewRow(6, "Generated "+scan.Timestamp.Format(time.RFC3339), cellProps),
		text.NewRow(8, summaryLine(scan), headerProps),
	)

	m.AddRow(7,
		text.NewCol(3, "IP", headerProps),
		text.NewCol(1, "Port", headerProps),
		text.NewCol(2, "Service", headerProps),
		text.NewCol(3, "Version", headerProps),
		text.NewCol(2, "Severity", headerProps),
		text.NewCol(1, "CVEs", headerProps),
	)

	for _, r := range records(scan) {
		m.AddRow(6,
			text.NewCol(3, r.IP, cellProps),
			text.NewCol(1, r.Port, cellProps),
			text.NewCol(2, r.Service, cellProps),
			text.NewCol(3, r.Version, cellProps),
			text.NewCol(2, r.Severity, cellProps),
			text.NewCol(1, strconv.Itoa(r.CVECount), cellProps),
		)

		if note := shorten(r.Recommendation, recommendationLimit); note != "" {
			m.AddRows(text.NewRow(noteHeight(note), note, noteProps))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate pdf: %w", err)
	}

	if _, err := w.Write(doc.GetBytes()); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}

	return nil
}

func shorten(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

func noteHeight(s string) float64 {
	lines := len([]rune(s))/charsPerLine + 1
	return float64(lines)*lineHeight + 2
}
