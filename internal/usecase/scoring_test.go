package usecase

import (
	"reflect"
	"testing"

	"github.com/pcpick/backend/internal/domain"
)

func TestClassifyCPU(t *testing.T) {
	cases := []struct {
		specs domain.Specs
		want  string
	}{
		{domain.Specs{CPUShort: "i5-14400F"}, cpuIntelF},
		{domain.Specs{CPUShort: "i7-14700KF"}, cpuIntelF},
		{domain.Specs{CPUShort: "i7-14700"}, cpuIntelNonF},
		{domain.Specs{CPU: "인텔 코어 울트라5 225"}, cpuIntelNonF},
		{domain.Specs{CPU: "AMD 라이젠5 7500F"}, cpuAMD},
		{domain.Specs{CPUShort: "r5-7600"}, cpuAMD},
		{domain.Specs{}, cpuUnknown},
		{domain.Specs{CPU: "퀄컴 스냅드래곤"}, cpuUnknown},
	}
	for _, tt := range cases {
		got := classifyCPU(domain.Product{Specs: tt.specs})
		if got != tt.want {
			t.Errorf("classifyCPU(%+v) = %q, want %q", tt.specs, got, tt.want)
		}
	}
}

func TestMatchesRGBStyle(t *testing.T) {
	rgb := domain.Product{Specs: domain.Specs{RAM: "DDR5 32GB ARGB"}}
	if !MatchesRGBStyle(rgb) {
		t.Error("MatchesRGBStyle = false for ARGB RAM")
	}

	icue := domain.Product{Name: "커세어 iCUE 감성 PC"}
	if !MatchesRGBStyle(icue) {
		t.Error("MatchesRGBStyle = false for iCUE build")
	}

	plain := domain.Product{Name: "사무용 조립 데스크탑", Specs: domain.Specs{RAM: "DDR5 16GB"}}
	if MatchesRGBStyle(plain) {
		t.Error("MatchesRGBStyle = true for a plain build")
	}
}

func TestScoreCandidate(t *testing.T) {
	t.Run("sums gaming rule points with reasons", func(t *testing.T) {
		p := gamingProduct("p1", 1450000)
		p.CaseColor = "블랙"
		p.Specs.Case = "3RSYS S400"

		intent := domain.WizardIntent{
			Purpose: domain.PurposeGaming,
			Game:    "리그오브레전드",
			Budget:  domain.Budget100To200,
			Design:  domain.DesignBlack,
		}
		query := CompileIntent(intent)

		score, reasons := ScoreCandidate(p, intent, query)
		// usage 30 + game 25 + price range 20 + design 10
		if score != 85 {
			t.Errorf("score = %d, want 85", score)
		}
		wantReasons := []string{"usage:게이밍", "game:리그오브레전드", "priceRange:100~200만 원", "design:블랙"}
		if !reflect.DeepEqual(reasons, wantReasons) {
			t.Errorf("reasons = %v, want %v", reasons, wantReasons)
		}
	})

	t.Run("installment exact beats soft preference", func(t *testing.T) {
		p := gamingProduct("p1", 1450000)
		p.InstallmentMonths = 24

		intent := domain.WizardIntent{Purpose: domain.PurposeGaming, Installment: domain.Installment24}
		exact, _ := ScoreCandidate(p, intent, CompileIntent(intent))

		intent.Installment = domain.InstallmentPreferNoInterest
		soft, _ := ScoreCandidate(p, intent, CompileIntent(intent))

		if exact-soft != installmentExactPoints-installmentPreferPoints {
			t.Errorf("exact=%d soft=%d, want a %d point gap", exact, soft,
				installmentExactPoints-installmentPreferPoints)
		}
	})

	t.Run("non-gaming purposes prefer Intel with integrated graphics", func(t *testing.T) {
		intent := domain.WizardIntent{Purpose: domain.PurposeOffice}
		query := CompileIntent(intent)

		nonF := domain.Product{InStock: true, Price: 900000, Specs: domain.Specs{CPUShort: "i5-14400"}}
		f := domain.Product{InStock: true, Price: 900000, Specs: domain.Specs{CPUShort: "i5-14400F"}}
		amd := domain.Product{InStock: true, Price: 900000, Specs: domain.Specs{CPUShort: "라이젠5 7600"}}

		nonFScore, nonFReasons := ScoreCandidate(nonF, intent, query)
		fScore, _ := ScoreCandidate(f, intent, query)
		amdScore, amdReasons := ScoreCandidate(amd, intent, query)

		if nonFScore != cpuPrefIntelNonFPoints {
			t.Errorf("non-F score = %d, want %d", nonFScore, cpuPrefIntelNonFPoints)
		}
		if fScore != cpuPrefIntelFPoints {
			t.Errorf("F score = %d, want %d", fScore, cpuPrefIntelFPoints)
		}
		if amdScore != cpuPrefAMDPenalty {
			t.Errorf("AMD score = %d, want %d", amdScore, cpuPrefAMDPenalty)
		}
		if nonFReasons[len(nonFReasons)-1] != "cpu_pref:intel_nonf" {
			t.Errorf("non-F reasons = %v, want cpu_pref:intel_nonf last", nonFReasons)
		}
		if amdReasons[len(amdReasons)-1] != "cpu_pref:amd" {
			t.Errorf("AMD reasons = %v, want cpu_pref:amd last", amdReasons)
		}
	})

	t.Run("gaming purpose skips the CPU preference", func(t *testing.T) {
		p := domain.Product{InStock: true, Price: 900000, Specs: domain.Specs{CPUShort: "i5-14400"}}
		intent := domain.WizardIntent{Purpose: domain.PurposeGaming}
		score, _ := ScoreCandidate(p, intent, CompileIntent(intent))
		if score != 0 {
			t.Errorf("score = %d, want 0 without matching rules", score)
		}
	})

	t.Run("rgb design scores via text pattern", func(t *testing.T) {
		p := gamingProduct("p1", 1450000)
		p.Specs.RAM = "DDR5 32GB RGB"
		intent := domain.WizardIntent{Purpose: domain.PurposeGaming, Design: domain.DesignRGB}
		_, reasons := ScoreCandidate(p, intent, CompileIntent(intent))
		found := false
		for _, r := range reasons {
			if r == "design:rgb" {
				found = true
			}
		}
		if !found {
			t.Errorf("reasons = %v, want design:rgb", reasons)
		}
	})
}
