package finance

import "testing"

func TestAnalyzePlanRisky(t *testing.T) {
	a := AnalyzePlan("education", 800)
	if !a.Risky {
		t.Fatalf("balance 800 should be risky")
	}
	if a.SuggestedLimit != 160.00 {
		t.Fatalf("limit = %v, want 160.00", a.SuggestedLimit)
	}
	if a.Score != 45 {
		t.Fatalf("score = %d, want 45", a.Score)
	}
	if a.Warning == "" {
		t.Fatalf("risky analysis must carry a warning")
	}
}

func TestAnalyzePlanSafe(t *testing.T) {
	a := AnalyzePlan("investment", 5000)
	if a.Risky {
		t.Fatalf("balance 5000 should be safe")
	}
	if a.SuggestedLimit != 1000.00 {
		t.Fatalf("limit = %v, want 1000.00", a.SuggestedLimit)
	}
	if a.Score != 85 {
		t.Fatalf("score = %d, want 85", a.Score)
	}
	if a.Warning != "" {
		t.Fatalf("safe analysis should not warn, got %q", a.Warning)
	}
}

func TestAnalyzePlanThresholdBoundary(t *testing.T) {
	if a := AnalyzePlan("savings", 1000); a.Risky {
		t.Fatalf("balance exactly at threshold is safe")
	}
	if a := AnalyzePlan("savings", 999.99); !a.Risky {
		t.Fatalf("balance just under threshold is risky")
	}
}

func TestAnalyzePlanNegativeBalance(t *testing.T) {
	a := AnalyzePlan("emergency", -500)
	if !a.Risky {
		t.Fatalf("negative balance should be risky")
	}
	if a.SuggestedLimit != 0 {
		t.Fatalf("limit = %v, want floored at 0", a.SuggestedLimit)
	}
}
