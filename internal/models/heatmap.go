package models

// HeatmapCell represents a single occupied bin in the heatmap response
type HeatmapCell struct {
	BX        int     `json:"bx"`        // Bin X coordinate
	BZ        int     `json:"bz"`        // Bin Z coordinate
	Density   float64 `json:"density"`   // Raw accumulated density
	Intensity float64 `json:"intensity"` // Normalized 0-1
}

// HeatmapResponse represents the heatmap API response
type HeatmapResponse struct {
	BinsX      int           `json:"bins_x"`
	BinsZ      int           `json:"bins_z"`
	MaxDensity float64       `json:"max_density"`
	Count      int           `json:"count"`
	Cells      []HeatmapCell `json:"cells"`
}

// CellProvenance represents the sessions contributing to one grid cell
type CellProvenance struct {
	BX           int      `json:"bx"`
	BZ           int      `json:"bz"`
	SessionIDs   []string `json:"session_ids"`
	SessionNames []string `json:"session_names"`
}
