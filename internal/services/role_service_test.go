package services

import (
	"testing"

	"github.com/sevasetu/ngo-backend/internal/models"
)

func TestDeriveCapabilities(t *testing.T) {
	tests := []struct {
		name  string
		roles []string
		want  Capabilities
	}{
		{"no roles", nil, Capabilities{}},
		{"empty slice", []string{}, Capabilities{}},
		{"volunteer only", []string{models.RoleVolunteer}, Capabilities{IsStaff: true}},
		{"auditor only", []string{models.RoleAuditor}, Capabilities{IsStaff: true}},
		{"finance only", []string{models.RoleFinance}, Capabilities{IsStaff: true, IsFinance: true}},
		{"admin implies finance", []string{models.RoleAdmin}, Capabilities{IsStaff: true, IsFinance: true, IsAdmin: true}},
		{"multiple roles", []string{models.RoleVolunteer, models.RoleFinance}, Capabilities{IsStaff: true, IsFinance: true}},
		{"admin plus others", []string{models.RoleProjectManager, models.RoleAdmin}, Capabilities{IsStaff: true, IsFinance: true, IsAdmin: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveCapabilities(tt.roles)
			if got != tt.want {
				t.Fatalf("DeriveCapabilities(%v) = %+v, want %+v", tt.roles, got, tt.want)
			}
		})
	}
}

func TestDeriveCapabilitiesUnknownRole(t *testing.T) {
	// An unknown role still counts as "has a role" for staff access but
	// grants nothing beyond that.
	got := DeriveCapabilities([]string{"intern"})
	want := Capabilities{IsStaff: true}
	if got != want {
		t.Fatalf("DeriveCapabilities unknown role = %+v, want %+v", got, want)
	}
}

func TestCapabilitiesZeroValueDeniesAll(t *testing.T) {
	var caps Capabilities
	if caps.IsStaff || caps.IsFinance || caps.IsAdmin {
		t.Fatal("zero Capabilities must deny everything")
	}
}
