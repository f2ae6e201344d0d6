package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pcpick/backend/internal/domain"
)

// fpsDisplayCap is the ceiling for displayed frame rates; anything at or
// above it renders as "300+" instead of the literal number.
const fpsDisplayCap = 300

// FormatPrice renders a won amount truncated to 만-won units, with 억
// grouping above 1억 (e.g. 790000 → "79만 원", 102000000 → "1억 200만 원").
func FormatPrice(won int) string {
	man := won / 10000
	if man >= 10000 {
		eok := man / 10000
		remain := man % 10000
		if remain == 0 {
			return fmt.Sprintf("%d억 원", eok)
		}
		return fmt.Sprintf("%d억 %d만 원", eok, remain)
	}
	return fmt.Sprintf("%d만 원", man)
}

// TierToResolution maps a performance tier label to its resolution key.
func TierToResolution(tier string) string {
	switch {
	case strings.Contains(tier, "FHD"):
		return "FHD"
	case strings.Contains(tier, "QHD"):
		return "QHD"
	case strings.Contains(tier, "4K"):
		return "4K"
	}
	return "FHD"
}

// MatchGPUFPS finds the FPS table entry for a product GPU key. Exact key
// match wins; otherwise a substring match in either direction recovers
// vendor-prefixed keys ("COLORFUL RTX 5060 8GB" → "RTX 5060"). Reference
// keys are walked in sorted order so the fallback is deterministic.
func MatchGPUFPS(gpuKey string, ref *domain.FPSReference) map[string]map[string]int {
	if gpuKey == "" || ref == nil || ref.GPUs == nil {
		return nil
	}
	if entry, ok := ref.GPUs[gpuKey]; ok {
		return entry
	}
	keys := make([]string, 0, len(ref.GPUs))
	for k := range ref.GPUs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if strings.Contains(gpuKey, k) || strings.Contains(k, gpuKey) {
			return ref.GPUs[k]
		}
	}
	return nil
}

// ExpectedFPS renders the expected frame-rate text for a product playing the
// given game at its tier's resolution. Returns "" when the product, game or
// resolution is not covered by the reference table.
func ExpectedFPS(p domain.Product, gameName string, ref *domain.FPSReference) string {
	if gameName == "" || ref == nil {
		return ""
	}
	gpuFPS := MatchGPUFPS(p.Specs.GPUKey, ref)
	if gpuFPS == nil {
		return ""
	}
	byResolution, ok := gpuFPS[gameName]
	if !ok {
		return ""
	}
	fps, ok := byResolution[TierToResolution(p.Categories.Tier)]
	if !ok || fps <= 0 {
		return ""
	}
	if fps >= fpsDisplayCap {
		return fmt.Sprintf("약 %d+ FPS", fpsDisplayCap)
	}
	return fmt.Sprintf("약 %d FPS", fps)
}

// badgeColors maps a badge color name to its CSS class string.
var badgeColors = map[string]string{
	"green":  "bg-emerald-500/20 text-emerald-400 border-emerald-500/30",
	"blue":   "bg-blue-500/20 text-blue-400 border-blue-500/30",
	"red":    "bg-red-500/20 text-red-400 border-red-500/30",
	"purple": "bg-purple-500/20 text-purple-400 border-purple-500/30",
	"gold":   "bg-yellow-500/20 text-yellow-400 border-yellow-500/30",
	"cyan":   "bg-cyan-500/20 text-cyan-400 border-cyan-500/30",
	"white":  "bg-slate-300/20 text-slate-300 border-slate-300/30",
}

// BadgeClass returns the CSS class string for a badge color, defaulting to
// blue for unknown colors.
func BadgeClass(color string) string {
	if class, ok := badgeColors[color]; ok {
		return class
	}
	return badgeColors["blue"]
}
