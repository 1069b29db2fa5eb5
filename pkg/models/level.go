package models

const (
	// UnitDB labels a sound power level
	UnitDB = "dB"
	// UnitDBA labels an A-weighted sound pressure level
	UnitDBA = "dBA"
)

// Level represents a single computed sound level
type Level struct {
	Name  string  `json:"name" doc:"Level name (e.g. Lw, Lp1)"`
	Value float64 `json:"value" doc:"Level value at full precision"`
	Unit  string  `json:"unit" enum:"dB,dBA" doc:"Level unit"`
}
