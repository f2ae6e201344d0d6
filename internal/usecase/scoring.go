package usecase

import (
	"regexp"
	"strings"

	"github.com/pcpick/backend/internal/domain"
)

// Additive relevance points. No normalization; ties are left to the stable
// sort and the diversity pass.
const (
	usageMatchPoints        = 30
	gameMatchPoints         = 25
	priceRangeMatchPoints   = 20
	installmentExactPoints  = 15
	installmentPreferPoints = 12
	designMatchPoints       = 10
	cpuPrefIntelNonFPoints  = 25
	cpuPrefIntelFPoints     = 3
	cpuPrefAMDPenalty       = -5
)

// CPU classification buckets for the non-gaming preference rule.
const (
	cpuIntelNonF = "intel_nonf"
	cpuIntelF    = "intel_f"
	cpuAMD       = "amd"
	cpuUnknown   = "unknown"
)

var (
	intelCPUPattern  = regexp.MustCompile(`(?i)인텔|intel|^i[3-9]-\d`)
	amdCPUPattern    = regexp.MustCompile(`(?i)amd|라이젠|^r[0-9]`)
	intelNoIGPSuffix = regexp.MustCompile(`(?i)\d+f\b|\d+kf\b`)
	rgbStylePattern  = regexp.MustCompile(`(?i)argb|rgb|icue|aura|sync`)
)

// nonGamingPurposes are the purposes where an included integrated GPU is an
// asset (passthrough display), so Intel non-F parts rank first.
var nonGamingPurposes = map[string]bool{
	domain.PurposeOffice:    true,
	domain.PurposeEditing:   true,
	domain.Purpose3D:        true,
	domain.PurposeAI:        true,
	domain.PurposeStreaming: true,
}

// classifyCPU buckets a product's CPU by vendor and integrated-graphics
// availability. An F/KF suffix on an Intel part means no integrated GPU.
func classifyCPU(p domain.Product) string {
	text := strings.ToLower(p.Specs.CPUShort)
	if text == "" {
		text = strings.ToLower(p.Specs.CPU)
	}
	if text == "" {
		return cpuUnknown
	}
	if intelCPUPattern.MatchString(text) {
		if intelNoIGPSuffix.MatchString(text) {
			return cpuIntelF
		}
		return cpuIntelNonF
	}
	if amdCPUPattern.MatchString(text) {
		return cpuAMD
	}
	return cpuUnknown
}

// MatchesRGBStyle reports whether a product reads as an RGB/tuning build,
// based on RGB-family keywords across its name, case, RAM and GPU text.
func MatchesRGBStyle(p domain.Product) bool {
	text := strings.Join([]string{p.Name, p.Specs.Case, p.Specs.RAM, p.Specs.GPU}, " ")
	return rgbStylePattern.MatchString(text)
}

// ScoreCandidate computes the relevance score of one product against the
// original wizard intent and the compiled query, collecting one reason
// token per applied rule for optional debug display.
func ScoreCandidate(p domain.Product, intent domain.WizardIntent, q domain.FilterQuery) (int, []string) {
	score := 0
	var reasons []string
	tags := NormalizeProduct(p)

	if q.Usage != "" && tags.Usage[q.Usage] {
		score += usageMatchPoints
		reasons = append(reasons, "usage:"+q.Usage)
	}

	if intent.Purpose == domain.PurposeGaming && q.Game != "" && tags.Games[q.Game] {
		score += gameMatchPoints
		reasons = append(reasons, "game:"+q.Game)
	}

	if q.PriceRange != "" && p.Categories.PriceRange == q.PriceRange {
		score += priceRangeMatchPoints
		reasons = append(reasons, "priceRange:"+q.PriceRange)
	}

	switch {
	case q.Installment == domain.Installment24 && tags.LongNoInterest24:
		score += installmentExactPoints
		reasons = append(reasons, "installment:24")
	case q.Installment == domain.Installment36 && tags.LongNoInterest36:
		score += installmentExactPoints
		reasons = append(reasons, "installment:36")
	case q.Installment == domain.InstallmentPreferNoInterest && tags.LongNoInterest:
		score += installmentPreferPoints
		reasons = append(reasons, "installment:24_36_priority")
	}

	if intent.Design == domain.DesignBlack && tags.Design == "블랙" {
		score += designMatchPoints
		reasons = append(reasons, "design:블랙")
	}
	if intent.Design == domain.DesignWhite && tags.Design == "화이트" {
		score += designMatchPoints
		reasons = append(reasons, "design:화이트")
	}
	if intent.Design == domain.DesignRGB && MatchesRGBStyle(p) {
		score += designMatchPoints
		reasons = append(reasons, "design:rgb")
	}

	// Non-gaming workloads benefit from the integrated GPU an Intel non-F
	// part includes; F/KF parts are deprioritized but never excluded.
	if nonGamingPurposes[intent.Purpose] {
		switch classifyCPU(p) {
		case cpuIntelNonF:
			score += cpuPrefIntelNonFPoints
			reasons = append(reasons, "cpu_pref:intel_nonf")
		case cpuIntelF:
			score += cpuPrefIntelFPoints
			reasons = append(reasons, "cpu_pref:intel_f_lower")
		case cpuAMD:
			score += cpuPrefAMDPenalty
			reasons = append(reasons, "cpu_pref:amd")
		}
	}

	return score, reasons
}
