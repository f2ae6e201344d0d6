package usecase

import (
	"testing"

	"github.com/pcpick/backend/internal/domain"
)

// gamingProduct builds an in-stock gaming build used across filter tests.
func gamingProduct(id string, price int) domain.Product {
	return domain.Product{
		ID:      id,
		Name:    "조립PC " + id,
		Price:   price,
		InStock: true,
		Specs: domain.Specs{
			CPU:      "인텔 코어 i5-14400F",
			CPUShort: "i5-14400F",
			GPU:      "GIGABYTE RTX 5060 8GB",
			GPUShort: "RTX 5060",
			GPUKey:   "RTX 5060",
			RAM:      "DDR5 16GB",
		},
		Categories: domain.Categories{
			Usage:      []string{"게이밍"},
			Games:      []string{"리그오브레전드"},
			Tier:       "가성비(FHD)",
			PriceRange: "100~200만 원",
		},
	}
}

func TestFilterProducts(t *testing.T) {
	t.Run("includes a product matching usage and price range", func(t *testing.T) {
		p1 := gamingProduct("p1", 1450000)
		got := FilterProducts([]domain.Product{p1}, domain.FilterQuery{
			Usage:      "게이밍",
			PriceRange: "100~200만 원",
		})
		if len(got) != 1 || got[0].ID != "p1" {
			t.Fatalf("got %d results, want p1 included", len(got))
		}
	})

	t.Run("excludes on game mismatch", func(t *testing.T) {
		p1 := gamingProduct("p1", 1450000)
		got := FilterProducts([]domain.Product{p1}, domain.FilterQuery{
			Usage:      "게이밍",
			PriceRange: "100~200만 원",
			Game:       "발로란트",
		})
		if len(got) != 0 {
			t.Fatalf("got %d results, want 0 on game mismatch", len(got))
		}
	})

	t.Run("resolves the query game through aliases", func(t *testing.T) {
		p1 := gamingProduct("p1", 1450000)
		got := FilterProducts([]domain.Product{p1}, domain.FilterQuery{Game: "롤"})
		if len(got) != 1 {
			t.Fatalf("got %d results, want alias 롤 to match 리그오브레전드", len(got))
		}
	})

	t.Run("ineligible products never appear", func(t *testing.T) {
		soldOut := gamingProduct("p2", 1450000)
		soldOut.InStock = false
		placeholder := gamingProduct("p3", 450000)
		blocked := gamingProduct("2741770843", 1450000)
		implausible := gamingProduct("p4", 700000)
		implausible.InstallmentMonths = 24

		got := FilterProducts(
			[]domain.Product{soldOut, placeholder, blocked, implausible},
			domain.FilterQuery{},
		)
		if len(got) != 0 {
			t.Fatalf("got %d results, want 0 for ineligible products", len(got))
		}
	})

	t.Run("gaming intent rejects integrated graphics", func(t *testing.T) {
		igpu := gamingProduct("p5", 1450000)
		igpu.Specs.GPU = "내장그래픽"
		igpu.Specs.GPUShort = ""
		igpu.Specs.GPUKey = ""

		if got := FilterProducts([]domain.Product{igpu}, domain.FilterQuery{Usage: "게이밍"}); len(got) != 0 {
			t.Error("usage=게이밍 matched an integrated-graphics machine")
		}
		if got := FilterProducts([]domain.Product{igpu}, domain.FilterQuery{Game: "리그오브레전드"}); len(got) != 0 {
			t.Error("game filter matched an integrated-graphics machine")
		}
		// Non-gaming queries keep it.
		if got := FilterProducts([]domain.Product{igpu}, domain.FilterQuery{}); len(got) != 1 {
			t.Error("unconstrained query dropped an eligible product")
		}
	})

	t.Run("tier is exact equality", func(t *testing.T) {
		p1 := gamingProduct("p1", 1450000)
		if got := FilterProducts([]domain.Product{p1}, domain.FilterQuery{Tier: "퍼포먼스(QHD)"}); len(got) != 0 {
			t.Error("tier filter matched a different tier")
		}
		if got := FilterProducts([]domain.Product{p1}, domain.FilterQuery{Tier: "가성비(FHD)"}); len(got) != 1 {
			t.Error("tier filter rejected an exact match")
		}
	})

	t.Run("price range bounds are half-open", func(t *testing.T) {
		atMin := gamingProduct("p1", 1000000)
		atMax := gamingProduct("p2", 2000000)
		got := FilterProducts([]domain.Product{atMin, atMax}, domain.FilterQuery{PriceRange: "100~200만 원"})
		if len(got) != 1 || got[0].ID != "p1" {
			t.Fatalf("got %v, want only p1: [min, max) bounds", ids(got))
		}
	})

	t.Run("installment constraints match the specific plan", func(t *testing.T) {
		plan24 := gamingProduct("p24", 1450000)
		plan24.InstallmentMonths = 24
		plan36 := gamingProduct("p36", 1450000)
		plan36.InstallmentMonths = 36
		noPlan := gamingProduct("p0", 1450000)
		products := []domain.Product{plan24, plan36, noPlan}

		if got := FilterProducts(products, domain.FilterQuery{Installment: domain.Installment24}); len(got) != 1 || got[0].ID != "p24" {
			t.Errorf("installment=24: got %v, want [p24]", ids(got))
		}
		if got := FilterProducts(products, domain.FilterQuery{Installment: domain.Installment36}); len(got) != 1 || got[0].ID != "p36" {
			t.Errorf("installment=36: got %v, want [p36]", ids(got))
		}
		if got := FilterProducts(products, domain.FilterQuery{Installment: domain.InstallmentAnyNoInterest}); len(got) != 2 {
			t.Errorf("installment=nointerest: got %v, want [p24 p36]", ids(got))
		}
		// The soft preference never filters.
		if got := FilterProducts(products, domain.FilterQuery{Installment: domain.InstallmentPreferNoInterest}); len(got) != 3 {
			t.Errorf("installment=priority: got %v, want all three", ids(got))
		}
	})

	t.Run("ambiguous design never matches a color filter", func(t *testing.T) {
		black := gamingProduct("pb", 1450000)
		black.CaseColor = "블랙"
		black.Specs.Case = "3RSYS S400"
		ambiguous := gamingProduct("pa", 1450000)
		ambiguous.CaseColor = "블랙"
		ambiguous.Specs.Case = "darkFlash WHITE"

		got := FilterProducts([]domain.Product{black, ambiguous}, domain.FilterQuery{CaseColor: "블랙"})
		if len(got) != 1 || got[0].ID != "pb" {
			t.Fatalf("got %v, want only the cross-checked black build", ids(got))
		}
	})

	t.Run("search is a case-insensitive substring over name and specs", func(t *testing.T) {
		p1 := gamingProduct("p1", 1450000)
		if got := FilterProducts([]domain.Product{p1}, domain.FilterQuery{Search: "rtx 5060"}); len(got) != 1 {
			t.Error("search missed a GPU substring")
		}
		if got := FilterProducts([]domain.Product{p1}, domain.FilterQuery{Search: "4090"}); len(got) != 0 {
			t.Error("search matched an absent substring")
		}
	})

	t.Run("preserves input order", func(t *testing.T) {
		a := gamingProduct("a", 1900000)
		b := gamingProduct("b", 1100000)
		c := gamingProduct("c", 1500000)
		got := FilterProducts([]domain.Product{a, b, c}, domain.FilterQuery{PriceRange: "100~200만 원"})
		want := []string{"a", "b", "c"}
		for i, id := range ids(got) {
			if id != want[i] {
				t.Fatalf("order = %v, want %v", ids(got), want)
			}
		}
	})

	t.Run("adding a constraint never grows the result set", func(t *testing.T) {
		products := []domain.Product{
			gamingProduct("a", 900000),
			gamingProduct("b", 1450000),
			gamingProduct("c", 2500000),
		}
		base := domain.FilterQuery{Usage: "게이밍"}
		narrowed := base
		narrowed.PriceRange = "100~200만 원"

		baseCount := len(FilterProducts(products, base))
		narrowedCount := len(FilterProducts(products, narrowed))
		if narrowedCount > baseCount {
			t.Errorf("narrowed query grew results: %d > %d", narrowedCount, baseCount)
		}
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		if got := FilterProducts(nil, domain.FilterQuery{Usage: "게이밍"}); len(got) != 0 {
			t.Errorf("got %d results from empty catalog", len(got))
		}
	})
}

func ids(products []domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}
