package domain

// Product represents a single pre-built PC as crawled into the catalog
// snapshot. It is a read-only input row: nothing in the engine ever mutates
// a Product after decoding.
type Product struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Subtitle          string     `json:"subtitle,omitempty"`
	Price             int        `json:"price"`
	PriceMonthly      int        `json:"price_monthly,omitempty"`
	InstallmentMonths int        `json:"installment_months,omitempty"`
	InStock           bool       `json:"in_stock"`
	CaseColor         string     `json:"case_color,omitempty"`
	URL               string     `json:"url,omitempty"`
	Image             string     `json:"image,omitempty"`
	Specs             Specs      `json:"specs"`
	Categories        Categories `json:"categories"`
}

// Specs holds the free-text spec strings parsed by the crawler.
// Any field may be empty; the engine treats absence as the common case.
type Specs struct {
	CPU      string `json:"cpu,omitempty"`
	CPUShort string `json:"cpu_short,omitempty"`
	GPU      string `json:"gpu,omitempty"`
	GPUShort string `json:"gpu_short,omitempty"`
	GPUKey   string `json:"gpu_key,omitempty"`
	RAM      string `json:"ram,omitempty"`
	SSD      string `json:"ssd,omitempty"`
	Case     string `json:"case,omitempty"`
}

// Categories holds the crawler's structured classification of a product.
type Categories struct {
	Usage      []string `json:"usage,omitempty"`
	Games      []string `json:"games,omitempty"`
	Tier       string   `json:"tier,omitempty"`
	PriceRange string   `json:"price_range,omitempty"`
}

// Catalog is one point-in-time snapshot of the product list. The whole
// structure is replaced on refresh, never patched in place.
type Catalog struct {
	LastUpdated string    `json:"last_updated"`
	Products    []Product `json:"products"`
}

// CanonicalTags is the normalized tag set derived from one Product for the
// duration of a single filter/recommend call. It is never attached to the
// Product itself; recomputing on the same input yields identical sets.
type CanonicalTags struct {
	Games            map[string]bool
	Usage            map[string]bool
	Design           string // 블랙, 화이트, or "" when unknown/contradictory
	LongNoInterest   bool
	LongNoInterest24 bool
	LongNoInterest36 bool
}
