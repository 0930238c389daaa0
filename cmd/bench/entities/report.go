package entities

// Report is the final benchmark summary. Min/Avg/Max are defined as zero
// when no measured run completed.
type Report struct {
	MinSeconds   float64 `json:"min_seconds"`
	AvgSeconds   float64 `json:"avg_seconds"`
	MaxSeconds   float64 `json:"max_seconds"`
	TotalSeconds float64 `json:"total_seconds"`
	Runs         int64   `json:"runs"`
	Fails        int64   `json:"fails"`
	Warmups      int     `json:"warmups"`
}
