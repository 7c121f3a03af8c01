package report

import (
	"io"
	"sort"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/gsushant/task-reminder-api/internal/model"
)

const (
	KindLine = "line"
	KindPie  = "pie"
	KindBar  = "bar"
)

// RenderChart writes one PNG chart for the task set. Unrecognized
// kinds fall through to the completion-time-vs-priority plot.
func RenderChart(w io.Writer, kind string, tasks []model.Task) error {
	tasks = Preprocess(tasks)

	switch kind {
	case KindLine:
		return renderCompletionTrend(w, tasks)
	case KindPie:
		return renderPriorityDistribution(w, tasks)
	case KindBar:
		return renderCompletedPerDay(w, tasks)
	default:
		return renderTimeVsPriority(w, tasks)
	}
}

// completionsByDay buckets completed tasks by the calendar day of
// their completed_date, in day order.
func completionsByDay(tasks []model.Task) ([]time.Time, []float64) {
	counts := make(map[time.Time]float64)
	for _, t := range tasks {
		if t.CompletedDate == nil {
			continue
		}
		day := t.CompletedDate.Truncate(24 * time.Hour)
		counts[day]++
	}

	days := make([]time.Time, 0, len(counts))
	for day := range counts {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	values := make([]float64, len(days))
	for i, day := range days {
		values[i] = counts[day]
	}
	return days, values
}

func renderCompletionTrend(w io.Writer, tasks []model.Task) error {
	days, values := completionsByDay(tasks)
	if len(days) == 0 {
		return ErrNoData
	}
	// go-chart refuses series with a single point; a lone day still
	// renders as a flat line.
	if len(days) == 1 {
		days = append(days, days[0].Add(24*time.Hour))
		values = append(values, values[0])
	}

	c := chart.Chart{
		Title: "Task Completion Trend",
		XAxis: chart.XAxis{
			Name:           "Date",
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Name:  "Completions",
			Range: paddedRange(values),
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "completions",
				XValues: days,
				YValues: values,
			},
		},
	}
	return c.Render(chart.PNG, w)
}

func renderPriorityDistribution(w io.Writer, tasks []model.Task) error {
	counts := make(map[string]float64)
	for _, t := range tasks {
		counts[t.Priority]++
	}
	if len(counts) == 0 {
		return ErrNoData
	}

	labels := make([]string, 0, len(counts))
	for p := range counts {
		labels = append(labels, p)
	}
	sort.Strings(labels)

	values := make([]chart.Value, 0, len(labels))
	for _, p := range labels {
		values = append(values, chart.Value{Value: counts[p], Label: p})
	}

	c := chart.PieChart{
		Title:  "Task Priority Distribution",
		Width:  512,
		Height: 512,
		Values: values,
	}
	return c.Render(chart.PNG, w)
}

func renderCompletedPerDay(w io.Writer, tasks []model.Task) error {
	days, values := completionsByDay(tasks)
	if len(days) == 0 {
		return ErrNoData
	}

	bars := make([]chart.Value, len(days))
	for i, day := range days {
		bars[i] = chart.Value{
			Value: values[i],
			Label: day.Format("2006-01-02"),
		}
	}

	c := chart.BarChart{
		Title:    "Tasks Completed Per Day",
		Width:    512,
		Height:   512,
		BarWidth: 40,
		YAxis: chart.YAxis{
			Range: paddedRange(values),
		},
		Bars: bars,
	}
	return c.Render(chart.PNG, w)
}

// paddedRange gives an axis a non-zero span even when every value is
// identical, which go-chart cannot scale on its own.
func paddedRange(values []float64) *chart.ContinuousRange {
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return &chart.ContinuousRange{Min: min - 1, Max: max + 1}
}

// priorityRank orders the conventional priority labels on an axis.
// Unknown labels land at zero.
func priorityRank(priority string) float64 {
	switch priority {
	case "Low":
		return 1
	case "Medium":
		return 2
	case "High":
		return 3
	default:
		return 0
	}
}

func renderTimeVsPriority(w io.Writer, tasks []model.Task) error {
	var xs, ys []float64
	for _, t := range tasks {
		hours, ok := CompletionHours(t)
		if !ok {
			continue
		}
		xs = append(xs, priorityRank(t.Priority))
		ys = append(ys, hours)
	}
	if len(xs) == 0 {
		return ErrNoData
	}
	if len(xs) == 1 {
		xs = append(xs, xs[0])
		ys = append(ys, ys[0])
	}

	c := chart.Chart{
		Title: "Completion Time vs Priority",
		XAxis: chart.XAxis{
			Name:  "Priority",
			Range: &chart.ContinuousRange{Min: -0.5, Max: 3.5},
		},
		YAxis: chart.YAxis{
			Name:  "Completion Time (hours)",
			Range: paddedRange(ys),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "tasks",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    5,
				},
			},
		},
	}
	return c.Render(chart.PNG, w)
}
