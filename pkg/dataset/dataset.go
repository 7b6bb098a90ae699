// Package dataset holds the sample Uber pricing series rendered by the page.
package dataset

import "github.com/samber/lo"

// Marker describes how the points of a series are drawn
type Marker struct {
	Color  string  `json:"color"`
	Size   float64 `json:"size"`
	Symbol string  `json:"symbol"`
}

// Line describes the segment joining consecutive points
type Line struct {
	Color string  `json:"color"`
	Width float64 `json:"width"`
}

// Record is one plot-ready series (a Plotly trace)
type Record struct {
	X      []string  `json:"x"`
	Y      []float64 `json:"y"`
	Type   string    `json:"type"`
	Mode   string    `json:"mode"`
	Name   string    `json:"name"`
	Marker Marker    `json:"marker"`
	Line   Line      `json:"line"`
}

var hours = []string{
	"00:00", "02:00", "04:00", "06:00", "08:00", "10:00",
	"12:00", "14:00", "16:00", "18:00", "20:00", "22:00",
}

// Average UberX fare in USD for a 5 mile ride, by pickup hour.
var records = []Record{
	{
		X:      hours,
		Y:      []float64{18.40, 16.95, 15.10, 17.80, 24.60, 19.75, 18.90, 19.30, 23.15, 27.40, 22.80, 21.05},
		Type:   "scatter",
		Mode:   "lines+markers",
		Name:   "Brooklyn",
		Marker: Marker{Color: "#1f77b4", Size: 8, Symbol: "circle"},
		Line:   Line{Color: "#1f77b4", Width: 2},
	},
	{
		X:      hours,
		Y:      []float64{24.10, 21.35, 19.20, 23.55, 33.80, 26.40, 25.15, 26.90, 31.75, 36.20, 30.45, 28.60},
		Type:   "scatter",
		Mode:   "lines+markers",
		Name:   "Manhattan",
		Marker: Marker{Color: "#ff7f0e", Size: 8, Symbol: "diamond"},
		Line:   Line{Color: "#ff7f0e", Width: 2},
	},
}

// Records returns the fixed dataset. Every call hands out a fresh copy so the
// package level series stay untouched whatever the caller does with them.
func Records() []Record {
	return lo.Map(records, func(r Record, _ int) Record {
		return r.clone()
	})
}

// Series looks a record up by its name.
func Series(name string) (Record, bool) {
	r, ok := lo.Find(records, func(r Record) bool {
		return r.Name == name
	})
	if !ok {
		return Record{}, false
	}
	return r.clone(), true
}

// Names lists the series names in dataset order.
func Names() []string {
	return lo.Map(records, func(r Record, _ int) string {
		return r.Name
	})
}

func (r Record) clone() Record {
	r.X = append([]string(nil), r.X...)
	r.Y = append([]float64(nil), r.Y...)
	return r
}
