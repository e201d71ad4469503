package weather

import "strings"

// Place is one geocoding result.
type Place struct {
	Name    string  `json:"name"`
	State   string  `json:"state"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Label renders the human-readable location as "city, region, country",
// omitting the region when the geocoder has none.
func (p Place) Label() string {
	parts := []string{p.Name}
	if p.State != "" {
		parts = append(parts, p.State)
	}
	parts = append(parts, p.Country)
	return strings.Join(parts, ", ")
}

// Summary is the fixed response shape the frontend renders. Daily always has
// 7 entries and Hourly 24; Tips is the static advisory list.
type Summary struct {
	Location string   `json:"location"`
	Current  Current  `json:"current"`
	Daily    []Day    `json:"daily"`
	Hourly   []Hour   `json:"hourly"`
	Tips     []string `json:"tips"`
}

type Current struct {
	Temp          int     `json:"temp"`
	Humidity      int     `json:"humidity"`
	Precipitation int     `json:"precipitation"`
	Wind          float64 `json:"wind"` // km/h, one decimal
}

type Day struct {
	Date     string `json:"date"`
	DayName  string `json:"day_name"` // abbreviated weekday
	MaxTemp  int    `json:"max_temp"`
	MinTemp  int    `json:"min_temp"`
	Humidity int    `json:"humidity"`
}

type Hour struct {
	Hour string `json:"hour"` // "HH:00"
	Temp int    `json:"temp"`
}
