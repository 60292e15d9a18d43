package navigation

import (
	"testing"

	"github.com/sevasetu/ngo-backend/internal/services"
)

func titles(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Title)
	}
	return out
}

func find(items []Item, title string) *Item {
	for i := range items {
		if items[i].Title == title {
			return &items[i]
		}
	}
	return nil
}

func TestFilterNoCapabilities(t *testing.T) {
	visible := Filter(Menu(), services.Capabilities{})
	if len(visible) != 0 {
		t.Fatalf("user with no roles sees menu entries: %v", titles(visible))
	}
}

func TestFilterStaffOnly(t *testing.T) {
	visible := Filter(Menu(), services.Capabilities{IsStaff: true})

	if find(visible, "User Management") != nil {
		t.Fatal("staff user must not see User Management")
	}
	if find(visible, "Settings") != nil {
		t.Fatal("staff user must not see Settings")
	}

	finance := find(visible, "Finance")
	if finance == nil {
		t.Fatal("staff user must see the Finance group")
	}
	if find(finance.Children, "Income") != nil {
		t.Fatal("staff user must not see Income entry")
	}
	if find(finance.Children, "Fund Accounts") != nil {
		t.Fatal("staff user must not see Fund Accounts")
	}
	if find(finance.Children, "Expenses") == nil {
		t.Fatal("staff user must see Expenses")
	}
}

func TestFilterFinance(t *testing.T) {
	visible := Filter(Menu(), services.Capabilities{IsStaff: true, IsFinance: true})

	finance := find(visible, "Finance")
	if finance == nil {
		t.Fatal("finance user must see the Finance group")
	}
	if find(finance.Children, "Income") == nil {
		t.Fatal("finance user must see Income entry")
	}
	if find(finance.Children, "Fund Accounts") == nil {
		t.Fatal("finance user must see Fund Accounts")
	}
	if find(visible, "User Management") != nil {
		t.Fatal("finance user must not see User Management")
	}
}

func TestFilterAdminSeesEverything(t *testing.T) {
	caps := services.Capabilities{IsStaff: true, IsFinance: true, IsAdmin: true}
	visible := Filter(Menu(), caps)

	if len(visible) != len(Menu()) {
		t.Fatalf("admin sees %d top-level entries, want %d", len(visible), len(Menu()))
	}
	finance := find(visible, "Finance")
	if finance == nil || len(finance.Children) != 5 {
		t.Fatalf("admin must see all finance entries, got %+v", finance)
	}
}

func TestFilterDropsEmptyGroups(t *testing.T) {
	tree := []Item{
		{Title: "Restricted", Path: "/x", Children: []Item{
			{Title: "Only Admin", Path: "/x/y", Access: AccessAdmin},
		}},
	}
	visible := Filter(tree, services.Capabilities{IsStaff: true})
	if len(visible) != 0 {
		t.Fatalf("group with no visible children must disappear, got %v", titles(visible))
	}
}

func TestFilterDoesNotMutateMenu(t *testing.T) {
	before := len(Menu()[1].Children)
	_ = Filter(Menu(), services.Capabilities{IsStaff: true})
	after := len(Menu()[1].Children)
	if before != after {
		t.Fatalf("Filter mutated the shared menu: %d -> %d children", before, after)
	}
}
