package entities

// CityReference is one serviceable city as published by the carrier, with the
// sectors it routes through. The full set is refreshed and swapped as a whole.
type CityReference struct {
	ID      int64
	Name    string
	Sectors []string
}
