package usecase

import (
	"math"
	"strings"

	"github.com/pcpick/backend/internal/domain"
)

// priceRange is a [Min, Max) band in won.
type priceRange struct {
	Min int
	Max int
}

// priceRanges maps the labeled price buckets to their bounds.
var priceRanges = map[string]priceRange{
	"100만 원 이하": {0, 1000000},
	"100~200만 원": {1000000, 2000000},
	"200~300만 원": {2000000, 3000000},
	"300만 원 이상": {3000000, math.MaxInt},
}

// FilterProducts applies a structured query against the product list and
// returns the matching products in their original relative order. A product
// must pass eligibility, installment plausibility, and every non-zero query
// field to be included.
func FilterProducts(products []domain.Product, q domain.FilterQuery) []domain.Product {
	var out []domain.Product
	for _, p := range products {
		if matchesQuery(p, q) {
			out = append(out, p)
		}
	}
	return out
}

func matchesQuery(p domain.Product, q domain.FilterQuery) bool {
	if !IsEligible(p) {
		return false
	}
	if !IsPlausibleInstallmentPrice(p) {
		return false
	}

	tags := NormalizeProduct(p)

	// Gaming intent can never be satisfied by integrated graphics, whatever
	// the tags say.
	if (q.Game != "" || q.Usage == "게이밍") && isIntegratedGPU(p) {
		return false
	}

	if q.Game != "" {
		if !tags.Games[ResolveGameToCanonical(q.Game)] {
			return false
		}
	}

	if q.Tier != "" && p.Categories.Tier != q.Tier {
		return false
	}

	if q.PriceRange != "" {
		if r, ok := priceRanges[q.PriceRange]; ok {
			if p.Price < r.Min || p.Price >= r.Max {
				return false
			}
		}
	}

	if q.Usage != "" && !tags.Usage[q.Usage] {
		return false
	}

	switch q.Installment {
	case domain.InstallmentAnyNoInterest:
		if !tags.LongNoInterest {
			return false
		}
	case domain.Installment24:
		if !tags.LongNoInterest24 {
			return false
		}
	case domain.Installment36:
		if !tags.LongNoInterest36 {
			return false
		}
	}

	// Color matching trusts only the cross-checked design tag; a product
	// with unknown design never matches a color filter.
	if q.CaseColor != "" && tags.Design != q.CaseColor {
		return false
	}

	// Free-text search is the last-resort filter, applied after every
	// structured constraint has passed.
	if q.Search != "" {
		target := strings.ToLower(strings.Join([]string{
			p.Name, p.Specs.CPU, p.Specs.GPU, p.Specs.RAM,
		}, " "))
		if !strings.Contains(target, strings.ToLower(q.Search)) {
			return false
		}
	}

	return true
}
