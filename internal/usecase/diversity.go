package usecase

import "github.com/pcpick/backend/internal/domain"

// maxPerCombo caps how many admitted results may share one CPU+GPU
// combination in the first selection pass.
const maxPerCombo = 1

// comboKey identifies the core hardware build of a product. Case-color
// variants of the same build collapse onto one key.
func comboKey(p domain.Product) string {
	cpu := p.Specs.CPUShort
	if cpu == "" {
		cpu = p.Specs.CPU
	}
	gpu := p.Specs.GPUKey
	if gpu == "" {
		gpu = p.Specs.GPUShort
	}
	return cpu + "|" + gpu
}

// SelectWithDiversity walks a score-descending candidate list and admits at
// most one product per CPU+GPU combination until limit is reached. If that
// leaves open slots, the cap is relaxed and the remaining slots are filled
// from the same ordered list, skipping already-admitted ids.
func SelectWithDiversity(candidates []domain.ScoredCandidate, limit int) []domain.ScoredCandidate {
	selected := make([]domain.ScoredCandidate, 0, limit)
	comboCount := make(map[string]int)

	for _, c := range candidates {
		if len(selected) >= limit {
			break
		}
		key := comboKey(c.Product)
		if comboCount[key] >= maxPerCombo {
			continue
		}
		selected = append(selected, c)
		comboCount[key]++
	}

	if len(selected) < limit {
		pickedIDs := make(map[string]bool, len(selected))
		for _, s := range selected {
			pickedIDs[s.Product.ID] = true
		}
		for _, c := range candidates {
			if len(selected) >= limit {
				break
			}
			if pickedIDs[c.Product.ID] {
				continue
			}
			selected = append(selected, c)
			pickedIDs[c.Product.ID] = true
		}
	}

	return selected
}
