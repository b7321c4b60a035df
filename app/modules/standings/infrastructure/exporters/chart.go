package exporters

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	standingstypes "github.com/Black-And-White-Club/league-ranker/app/modules/standings/domain/types"
)

// ChartPalette holds the colours used for the standings chart.
type ChartPalette struct {
	Background drawing.Color
	Bar        drawing.Color
	BarStroke  drawing.Color
	TextColor  drawing.Color
}

// DefaultChartPalette returns a light palette.
func DefaultChartPalette() ChartPalette {
	return ChartPalette{
		Background: drawing.ColorWhite,
		Bar:        drawing.ColorFromHex("2d6a4f"),
		BarStroke:  drawing.ColorFromHex("1b4332"),
		TextColor:  drawing.ColorFromHex("212529"),
	}
}

const (
	barWidth   = 50
	barSpacing = 30
)

// ChartExporter renders points per team as a PNG bar chart, in ranking order.
type ChartExporter struct {
	palette ChartPalette
}

func NewChartExporter(palette ChartPalette) *ChartExporter {
	return &ChartExporter{palette: palette}
}

func (e *ChartExporter) Export(entries []standingstypes.RankingEntry) ([]byte, error) {
	maxPoints := 0
	for _, entry := range entries {
		if entry.Points > maxPoints {
			maxPoints = entry.Points
		}
	}
	// A bar chart needs a non-zero range.
	if maxPoints == 0 {
		msg := standingstypes.NoTeamsToRank
		if len(entries) > 0 {
			msg = "No points scored yet"
		}
		return e.renderPlaceholder(msg)
	}

	bars := make([]chart.Value, len(entries))
	for i, entry := range entries {
		bars[i] = chart.Value{
			Value: float64(entry.Points),
			Label: fmt.Sprintf("%d. %s", entry.Rank, entry.TeamName),
			Style: chart.Style{
				FillColor:   e.palette.Bar,
				StrokeColor: e.palette.BarStroke,
				StrokeWidth: 1,
			},
		}
	}

	width := 800
	if w := len(entries)*(barWidth+barSpacing) + 200; w > width {
		width = w
	}

	graph := chart.BarChart{
		Title:      "League Ranking Table",
		Width:      width,
		Height:     480,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: chart.Style{
			FillColor: e.palette.Background,
			Padding:   chart.Box{Top: 50},
		},
		Canvas: chart.Style{
			FillColor: e.palette.Background,
		},
		XAxis: chart.Style{
			FontColor: e.palette.TextColor,
		},
		YAxis: chart.YAxis{
			Name: "Points",
			Style: chart.Style{
				FontColor: e.palette.TextColor,
			},
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: float64(maxPoints),
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render standings chart: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *ChartExporter) renderPlaceholder(msg string) ([]byte, error) {
	const (
		width  = 400
		height = 200
	)

	r, err := chart.PNG(width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	r.SetFillColor(e.palette.Background)
	r.MoveTo(0, 0)
	r.LineTo(width, 0)
	r.LineTo(width, height)
	r.LineTo(0, height)
	r.Close()
	r.Fill()

	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	r.SetFont(font)
	r.SetFontColor(e.palette.TextColor)
	r.SetFontSize(12.0)
	tb := r.MeasureText(msg)
	r.Text(msg, (width-tb.Width())/2, (height+tb.Height())/2)

	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode placeholder: %w", err)
	}
	return buf.Bytes(), nil
}
