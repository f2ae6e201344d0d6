package usecase

import (
	"regexp"
	"strings"

	"github.com/pcpick/backend/internal/domain"
)

// aliasEntry maps one canonical label to its accepted spellings. Tables are
// ordered slices, not maps, so resolution order is fixed and deterministic.
type aliasEntry struct {
	canonical string
	aliases   []string
}

// gameAliases maps canonical game names to accepted spellings/abbreviations.
// Matched case-insensitively as exact equality against the structured
// categories.games entries and against filter input.
var gameAliases = []aliasEntry{
	{"몬스터헌터 와일드", []string{"몬헌", "몬스터헌터", "몬스터헌터 와일드", "MH", "Wilds", "몬스터헌터와일드"}},
	{"리그오브레전드", []string{"리그오브레전드", "롤", "LOL"}},
	{"배틀그라운드", []string{"배틀그라운드", "배그", "PUBG"}},
	{"로스트아크", []string{"로스트아크", "로아"}},
	{"스팀 AAA급 게임", []string{"스팀 AAA급 게임", "스팀 AAA", "AAA"}},
	{"발로란트", []string{"발로란트", "발로"}},
	{"오버워치2", []string{"오버워치2", "오버워치"}},
}

// safeGameFallbackAliases is the deliberately smaller alias set used for the
// name/subtitle substring fallback. It only exists to recover products whose
// structured game tags were never populated upstream, so it keeps ambiguous
// abbreviations (MH, AAA) out to avoid false positives.
var safeGameFallbackAliases = []aliasEntry{
	{"몬스터헌터 와일드", []string{"몬헌", "몬스터헌터", "몬스터헌터 와일드", "몬스터헌터와일드", "wilds", "와일즈"}},
	{"아이온2", []string{"아이온2", "아이온 2"}},
	{"배틀그라운드", []string{"배그", "배틀그라운드"}},
	{"로스트아크", []string{"로아", "로스트아크"}},
	{"리그오브레전드", []string{"롤", "리그오브레전드"}},
	{"발로란트", []string{"발로", "발로란트"}},
	{"오버워치2", []string{"오버워치2", "오버워치"}},
}

// usageAliases absorbs data-entry variance in the usage labels.
var usageAliases = []aliasEntry{
	{"게이밍", []string{"게이밍"}},
	{"사무/디자인", []string{"사무/디자인", "사무용", "사무", "오피스", "업무"}},
	{"영상편집", []string{"영상편집", "영상 편집", "프리미어", "애프터이펙트", "에펙", "편집"}},
	{"3D 모델링", []string{"3d 모델링", "3d/모델링", "3d", "모델링", "cad", "블렌더", "스케치업", "렌더링", "maya"}},
	{"AI/딥러닝", []string{"ai/딥러닝", "ai", "딥러닝", "머신러닝", "생성형"}},
	{"방송/스트리밍", []string{"방송/스트리밍", "방송·스트리밍", "방송", "스트리밍", "동시송출", "obs", "송출"}},
}

// designWhiteConflict / designBlackConflict reject a labeled case color when
// the free-text case spec names the opposite color.
var (
	designWhiteConflict = regexp.MustCompile(`(?i)화이트|WHITE`)
	designBlackConflict = regexp.MustCompile(`(?i)블랙|BLACK`)
)

// ResolveGameToCanonical resolves a raw game label to its canonical name.
// Unknown labels pass through unchanged so an exotic filter value still
// fails closed in the filter rather than matching everything.
func ResolveGameToCanonical(input string) string {
	s := strings.TrimSpace(input)
	if s == "" {
		return ""
	}
	for _, entry := range gameAliases {
		for _, alias := range entry.aliases {
			if strings.EqualFold(alias, s) {
				return entry.canonical
			}
		}
	}
	return s
}

// CanonicalizeUsage resolves one structured usage label to a canonical
// category. Structured labels are noisy in both directions ("사무" vs
// "사무/디자인 추천"), so containment is checked both ways.
func CanonicalizeUsage(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return ""
	}
	for _, entry := range usageAliases {
		for _, alias := range entry.aliases {
			a := strings.ToLower(alias)
			if strings.Contains(s, a) || strings.Contains(a, s) {
				return entry.canonical
			}
		}
	}
	return ""
}

// inferUsageFromText collects every canonical usage whose alias appears as a
// substring of the given free-text blob. One-directional on purpose: text
// blobs are long, so only alias-in-text counts.
func inferUsageFromText(text string) []string {
	t := strings.ToLower(text)
	var hits []string
	for _, entry := range usageAliases {
		for _, alias := range entry.aliases {
			if strings.Contains(t, strings.ToLower(alias)) {
				hits = append(hits, entry.canonical)
				break
			}
		}
	}
	return hits
}

// NormalizeProduct derives the canonical tag set for a product. Pure and
// total: any field may be absent and the result is a neutral tag, never an
// error.
func NormalizeProduct(p domain.Product) domain.CanonicalTags {
	tags := domain.CanonicalTags{
		Games: make(map[string]bool),
		Usage: make(map[string]bool),
	}

	for _, u := range p.Categories.Usage {
		if canonical := CanonicalizeUsage(u); canonical != "" {
			tags.Usage[canonical] = true
		}
	}
	// Sparse usage tagging is common upstream; backfill from the wider
	// name/subtitle/spec text.
	usageText := strings.Join([]string{
		p.Name, p.Subtitle, p.Specs.CPU, p.Specs.GPU, p.Specs.RAM, p.Specs.SSD,
	}, " ")
	for _, canonical := range inferUsageFromText(usageText) {
		tags.Usage[canonical] = true
	}

	for _, g := range p.Categories.Games {
		tags.Games[ResolveGameToCanonical(g)] = true
	}
	// categories.games can be missing entirely; the title fallback uses only
	// the safe alias table to keep false positives out.
	fallbackText := strings.ToLower(p.Name + " " + p.Subtitle)
	for _, entry := range safeGameFallbackAliases {
		for _, alias := range entry.aliases {
			if strings.Contains(fallbackText, strings.ToLower(alias)) {
				tags.Games[entry.canonical] = true
				break
			}
		}
	}

	// Design uses only the case_color + specs.case cross-check. The two can
	// disagree on mistagged crawls; disagreement resolves to unknown.
	caseName := strings.TrimSpace(p.Specs.Case)
	switch p.CaseColor {
	case "블랙":
		if !designWhiteConflict.MatchString(caseName) {
			tags.Design = "블랙"
		}
	case "화이트":
		if !designBlackConflict.MatchString(caseName) {
			tags.Design = "화이트"
		}
	}

	m := p.InstallmentMonths
	tags.LongNoInterest = m == 24 || m == 36
	tags.LongNoInterest24 = m == 24
	tags.LongNoInterest36 = m == 36

	return tags
}
