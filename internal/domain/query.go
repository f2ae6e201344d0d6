package domain

// InstallmentChoice is the installment constraint of a query. It is a
// one-of-several value: no constraint, any no-interest plan, a specific
// month count, or a soft preference that never filters and only scores.
type InstallmentChoice int

const (
	InstallmentNone InstallmentChoice = iota
	InstallmentAnyNoInterest
	Installment24
	Installment36
	InstallmentPreferNoInterest
)

// FilterQuery is the structured filter vocabulary shared by the manual
// filter UI and the wizard compiler. Zero values mean "no constraint".
type FilterQuery struct {
	Game        string
	Tier        string
	PriceRange  string
	Usage       string
	Installment InstallmentChoice
	CaseColor   string
	Search      string
}

// Wizard purpose values.
const (
	PurposeGaming    = "gaming"
	PurposeOffice    = "office"
	PurposeEditing   = "editing"
	Purpose3D        = "3d"
	PurposeAI        = "ai"
	PurposeStreaming = "streaming"
)

// Wizard budget bands.
const (
	BudgetUnder100 = "budget_under100"
	Budget100To200 = "budget_100_200"
	Budget200To300 = "budget_200_300"
	BudgetOver300  = "budget_over300"
)

// Wizard design preferences.
const (
	DesignBlack = "black"
	DesignWhite = "white"
	DesignRGB   = "rgb"
)

// WizardIntent is the raw wizard selection. Purpose is required; Game is
// only meaningful when Purpose is gaming.
type WizardIntent struct {
	Purpose     string            `json:"purpose"`
	Game        string            `json:"game,omitempty"`
	Budget      string            `json:"budget,omitempty"`
	Design      string            `json:"design,omitempty"`
	Installment InstallmentChoice `json:"-"`
}

// ScoredCandidate pairs a product with its relevance score and the reason
// tokens that produced it. Ephemeral: built fresh per recommendation call.
type ScoredCandidate struct {
	Product Product
	Score   int
	Reasons []string
}

// Reason codes carried on an empty or degraded recommendation.
const (
	ReasonImpossibleBudget     = "impossible_budget"
	ReasonNoProductsUnderPrice = "no_products_under_budget"
	NoticeInstallmentRelaxed   = "installment_relaxed"
)

// MatchReasons exposes per-product scoring reasons for debug display only.
type MatchReasons struct {
	ProductID string   `json:"productId"`
	Reasons   []string `json:"reasons"`
}

// RecommendationResult is the wizard's final recommendation bundle.
type RecommendationResult struct {
	Recommended     []Product      `json:"recommended"`
	NoResultsReason string         `json:"noResultsReason,omitempty"`
	FallbackNotice  string         `json:"fallbackNotice,omitempty"`
	MatchReasons    []MatchReasons `json:"matchReasons,omitempty"`
}
