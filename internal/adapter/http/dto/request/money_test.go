package request

import "testing"

func TestToCents(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{150.50, 15050},
		{0, 0},
		{99.99, 9999},
		// 0.1+0.2 style float noise must not shift the cent.
		{0.30000000000000004, 30},
		{1234.565, 123457},
	}
	for _, tc := range cases {
		if got := toCents(tc.amount); got != tc.want {
			t.Fatalf("toCents(%v): expected %d, got %d", tc.amount, tc.want, got)
		}
	}
}

func TestToCentsPtr(t *testing.T) {
	if got := toCentsPtr(nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
	amount := 42.10
	got := toCentsPtr(&amount)
	if got == nil || *got != 4210 {
		t.Fatalf("expected 4210, got %v", got)
	}
}

func TestPercentToBps(t *testing.T) {
	if got := percentToBps(35); got != 3500 {
		t.Fatalf("expected 3500, got %d", got)
	}
	if got := percentToBps(42.5); got != 4250 {
		t.Fatalf("expected 4250, got %d", got)
	}
	if got := percentToBps(0); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestCreateProjectRequest_ToEntity(t *testing.T) {
	override := 80.0
	r := CreateProjectRequest{
		ClientName:            "ACME",
		EventName:             "Launch",
		IsUrgent:              true,
		MarginOverridePercent: &override,
	}

	p := r.ToEntity()
	if !p.IsUrgent {
		t.Fatal("expected urgent project")
	}
	if p.MarginOverrideBps == nil || *p.MarginOverrideBps != 8000 {
		t.Fatalf("expected override 8000 bps, got %v", p.MarginOverrideBps)
	}

	p2 := CreateProjectRequest{ClientName: "ACME", EventName: "Launch"}.ToEntity()
	if p2.MarginOverrideBps != nil {
		t.Fatalf("expected no override, got %v", *p2.MarginOverrideBps)
	}
}

func TestAddTeamMemberRequest_ToEntity(t *testing.T) {
	rate := 150.50
	r := AddTeamMemberRequest{Role: "sound technician", Quantity: 2, DurationDays: 3, DailyRate: &rate}

	item := r.ToEntity("prj-1")
	if item.ProjectID != "prj-1" {
		t.Fatalf("expected prj-1, got %q", item.ProjectID)
	}
	if item.DailyRateCents == nil || *item.DailyRateCents != 15050 {
		t.Fatalf("expected 15050 cents, got %v", item.DailyRateCents)
	}

	unrated := AddTeamMemberRequest{Role: "rigger", Quantity: 1, DurationDays: 1}.ToEntity("prj-1")
	if unrated.DailyRateCents != nil {
		t.Fatalf("expected nil rate, got %v", *unrated.DailyRateCents)
	}
}
