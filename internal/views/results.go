package views

import (
	"github.com/abhisek/learnpath/internal/session"
)

// Chart series labels.
const (
	SeriesScore       = "Your Score"
	SeriesRecommended = "Recommended Level"
)

// Series is one named data series of a chart.
type Series struct {
	Name   string
	Values []float64
}

// ChartData is a category chart: one value per label in every series.
type ChartData struct {
	Labels []string
	Series []Series
}

// AreaCard is the feedback card of one knowledge area.
type AreaCard struct {
	Name             string
	Score            float64
	Recommended      float64
	ScoreLabel       string
	RecommendedLabel string
	Feedback         string

	// Fill is the bar fill fraction, 0..1.
	Fill float64
}

// Results is the results panel.
type Results struct {
	Overall string
	Chart   ChartData
	Cards   []AreaCard
}

// BuildResults builds the results panel from an evaluation. It returns false
// when there is nothing to show.
func BuildResults(e *session.Evaluation) (Results, bool) {
	if e == nil {
		return Results{}, false
	}

	r := Results{
		Overall: Percent(e.Score),
		Chart: ChartData{
			Labels: make([]string, 0, len(e.Areas)),
			Series: []Series{
				{Name: SeriesScore, Values: make([]float64, 0, len(e.Areas))},
				{Name: SeriesRecommended, Values: make([]float64, 0, len(e.Areas))},
			},
		},
		Cards: make([]AreaCard, 0, len(e.Areas)),
	}

	for _, a := range e.Areas {
		name := Sanitize(a.Name)
		r.Chart.Labels = append(r.Chart.Labels, name)
		r.Chart.Series[0].Values = append(r.Chart.Series[0].Values, a.Score)
		r.Chart.Series[1].Values = append(r.Chart.Series[1].Values, a.Recommended)
		r.Cards = append(r.Cards, AreaCard{
			Name:             name,
			Score:            a.Score,
			Recommended:      a.Recommended,
			ScoreLabel:       "Your score: " + Percent(a.Score),
			RecommendedLabel: "Recommended: " + Percent(a.Recommended),
			Feedback:         Sanitize(a.Feedback),
			Fill:             clamp01(a.Score / 100),
		})
	}
	return r, true
}

// Percent formats a 0-100 score as "80%".
func Percent(v float64) string {
	return session.FormatNumber(v) + "%"
}

func clamp01(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
