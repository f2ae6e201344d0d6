package usecase

import (
	"regexp"

	"github.com/pcpick/backend/internal/domain"
)

// Absolute floors separating legitimate low-end offers from placeholder or
// glitched prices left behind by the upstream crawl.
const (
	minPCPrice            = 500000 // cheapest plausible complete build
	minInstallmentTotal   = 800000 // cheapest plausible 24/36-month financed build
	minInstallmentMonthly = 30000  // lowest plausible monthly payment
)

// soldOutProductIDs lists items confirmed sold out before the upstream data
// reflects it. Kept until the next crawl catches up.
var soldOutProductIDs = map[string]bool{
	"2741770843": true,
}

// integratedGPUPattern marks machines that render with integrated graphics.
var integratedGPUPattern = regexp.MustCompile(`(?i)내장\s*그래픽|iGPU`)

// IsEligible reports whether a product may be surfaced at all. Ineligible
// products are excluded from every result path, never repaired.
func IsEligible(p domain.Product) bool {
	if !p.InStock {
		return false
	}
	if soldOutProductIDs[p.ID] {
		return false
	}
	// A near-zero price with no installment plan is a placeholder, not a deal.
	if p.Price > 0 && p.Price < minPCPrice && p.InstallmentMonths == 0 {
		return false
	}
	return true
}

// IsPlausibleInstallmentPrice rejects 24/36-month plans whose totals are too
// cheap to be a real financed PC, or whose monthly payment is a placeholder.
// Products without a long plan always pass.
func IsPlausibleInstallmentPrice(p domain.Product) bool {
	if p.InstallmentMonths != 24 && p.InstallmentMonths != 36 {
		return true
	}
	if p.Price < minInstallmentTotal {
		return false
	}
	if p.PriceMonthly > 0 && p.PriceMonthly < minInstallmentMonthly {
		return false
	}
	return true
}

// isIntegratedGPU reports whether the GPU fields indicate integrated
// graphics. Such machines are excluded from any gaming-intent query.
func isIntegratedGPU(p domain.Product) bool {
	g := p.Specs.GPUShort
	if g == "" {
		g = p.Specs.GPUKey
	}
	if g == "" {
		g = p.Specs.GPU
	}
	return integratedGPUPattern.MatchString(g)
}
