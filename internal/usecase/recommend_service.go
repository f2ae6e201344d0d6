package usecase

import (
	"sort"

	"github.com/pcpick/backend/internal/domain"
)

// purposeToUsage maps a wizard purpose to the canonical usage category.
var purposeToUsage = map[string]string{
	domain.PurposeGaming:    "게이밍",
	domain.PurposeOffice:    "사무/디자인",
	domain.PurposeEditing:   "영상편집",
	domain.Purpose3D:        "3D 모델링",
	domain.PurposeAI:        "AI/딥러닝",
	domain.PurposeStreaming: "방송/스트리밍",
}

// budgetToRange maps a wizard budget band to its price-range label.
var budgetToRange = map[string]string{
	domain.BudgetUnder100: "100만 원 이하",
	domain.Budget100To200: "100~200만 원",
	domain.Budget200To300: "200~300만 원",
	domain.BudgetOver300:  "300만 원 이상",
}

// designToColor maps a design choice to the structured case-color filter.
// RGB maps to no color filter: RGB styling is a text-pattern property, not
// a case-color field.
var designToColor = map[string]string{
	domain.DesignBlack: "블랙",
	domain.DesignWhite: "화이트",
	domain.DesignRGB:   "",
}

// highEndGames combined with the lowest budget band is declared structurally
// unsatisfiable by policy: the budget is never relaxed to fake a result.
var highEndGames = map[string]bool{
	"로스트아크":      true,
	"배틀그라운드":     true,
	"스팀 AAA급 게임": true,
	"오버워치2":      true,
}

// RecommendConfig holds configuration for the recommendation service.
type RecommendConfig struct {
	Limit              int
	EnableDebugReasons bool
}

// RecommendService turns wizard intent into a bounded, diversity-capped
// recommendation list with progressively relaxed retries on empty results.
type RecommendService struct {
	limit              int
	enableDebugReasons bool
}

// RecommendOptions are per-request options.
type RecommendOptions struct {
	Debug bool
}

// NewRecommendService creates a recommendation service with the given
// configuration.
func NewRecommendService(config RecommendConfig) *RecommendService {
	limit := config.Limit
	if limit <= 0 {
		limit = 6
	}
	return &RecommendService{
		limit:              limit,
		enableDebugReasons: config.EnableDebugReasons,
	}
}

// CompileIntent maps a wizard intent onto the structured filter vocabulary.
// The game passes through only for a gaming purpose; an RGB design yields
// no structured color constraint.
func CompileIntent(intent domain.WizardIntent) domain.FilterQuery {
	q := domain.FilterQuery{
		PriceRange:  budgetToRange[intent.Budget],
		Usage:       purposeToUsage[intent.Purpose],
		Installment: intent.Installment,
		CaseColor:   designToColor[intent.Design],
	}
	if intent.Purpose == domain.PurposeGaming && intent.Game != "" {
		q.Game = ResolveGameToCanonical(intent.Game)
	}
	return q
}

// Recommend runs the full pipeline: compile, filter, relax, score, select.
//
// The relaxation ladder order is fixed policy: the installment constraint is
// surrendered first, RGB text-filtering is reapplied after every retry, the
// price range goes next (never for the lowest band), and the usage category
// is surrendered last before giving up entirely.
func (s *RecommendService) Recommend(
	products []domain.Product,
	intent domain.WizardIntent,
	opts RecommendOptions,
) domain.RecommendationResult {
	if intent.Purpose == "" {
		return domain.RecommendationResult{Recommended: []domain.Product{}}
	}

	query := CompileIntent(intent)

	isImpossibleBudget := intent.Purpose == domain.PurposeGaming &&
		intent.Game != "" &&
		highEndGames[ResolveGameToCanonical(intent.Game)] &&
		intent.Budget == domain.BudgetUnder100

	filtered := FilterProducts(products, query)
	fallbackNotice := ""

	// A hard 24/36-month constraint that matched nothing is dropped rather
	// than returning an empty wizard result.
	if len(filtered) == 0 && (query.Installment == domain.Installment24 || query.Installment == domain.Installment36) {
		relaxed := query
		relaxed.Installment = domain.InstallmentNone
		filtered = FilterProducts(products, relaxed)
		if intent.Design == domain.DesignRGB {
			filtered = filterRGBStyle(filtered)
		}
		if len(filtered) > 0 {
			fallbackNotice = domain.NoticeInstallmentRelaxed
		}
	}

	if intent.Design == domain.DesignRGB {
		filtered = filterRGBStyle(filtered)
	}

	if len(filtered) == 0 && isImpossibleBudget {
		return domain.RecommendationResult{
			Recommended:     []domain.Product{},
			NoResultsReason: domain.ReasonImpossibleBudget,
		}
	}

	// The lowest band is never silently loosened: recommending over-budget
	// builds to a user who picked "cheapest" breaks the stated constraint.
	if len(filtered) == 0 && intent.Budget == domain.BudgetUnder100 {
		return domain.RecommendationResult{
			Recommended:     []domain.Product{},
			NoResultsReason: domain.ReasonNoProductsUnderPrice,
		}
	}

	if len(filtered) == 0 {
		relaxed := query
		relaxed.PriceRange = ""
		filtered = FilterProducts(products, relaxed)
		if intent.Design == domain.DesignRGB {
			filtered = filterRGBStyle(filtered)
		}
	}

	if len(filtered) == 0 && query.Usage != "" {
		relaxed := query
		relaxed.Usage = ""
		relaxed.PriceRange = budgetToRange[intent.Budget]
		filtered = FilterProducts(products, relaxed)
		if intent.Design == domain.DesignRGB {
			filtered = filterRGBStyle(filtered)
		}
	}

	// Scoring always runs against the original intent and compiled query,
	// not the relaxed copies, so relaxed survivors still rank by how much
	// of the stated intent they satisfy.
	withScore := make([]domain.ScoredCandidate, 0, len(filtered))
	for _, p := range filtered {
		score, reasons := ScoreCandidate(p, intent, query)
		withScore = append(withScore, domain.ScoredCandidate{Product: p, Score: score, Reasons: reasons})
	}

	sort.SliceStable(withScore, func(i, j int) bool {
		return withScore[i].Score > withScore[j].Score
	})

	top := SelectWithDiversity(withScore, s.limit)

	recommended := make([]domain.Product, 0, len(top))
	for _, c := range top {
		recommended = append(recommended, c.Product)
	}

	result := domain.RecommendationResult{
		Recommended:    recommended,
		FallbackNotice: fallbackNotice,
	}

	if opts.Debug || s.enableDebugReasons {
		result.MatchReasons = make([]domain.MatchReasons, 0, len(top))
		for _, c := range top {
			result.MatchReasons = append(result.MatchReasons, domain.MatchReasons{
				ProductID: c.Product.ID,
				Reasons:   c.Reasons,
			})
		}
	}

	return result
}

// filterRGBStyle keeps only products that read as RGB builds, preserving
// relative order.
func filterRGBStyle(products []domain.Product) []domain.Product {
	var out []domain.Product
	for _, p := range products {
		if MatchesRGBStyle(p) {
			out = append(out, p)
		}
	}
	return out
}
