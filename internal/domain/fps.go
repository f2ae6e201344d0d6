package domain

// FPSReference is the optional GPU → game → resolution → expected frame
// rate table used to annotate product cards. It never participates in
// filtering or scoring.
type FPSReference struct {
	LastUpdated string                           `json:"last_updated,omitempty"`
	GPUs        map[string]map[string]map[string]int `json:"gpus"`
}
