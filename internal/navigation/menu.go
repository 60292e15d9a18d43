// Package navigation holds the admin panel's menu tree and the capability
// gating that decides which entries a given user sees. The tree is static;
// only the filtering is per-user.
package navigation

import "github.com/sevasetu/ngo-backend/internal/services"

// Access is the minimum capability an entry requires.
type Access int

const (
	AccessStaff Access = iota
	AccessFinance
	AccessAdmin
)

type Item struct {
	Title    string `json:"title"`
	Path     string `json:"path"`
	Access   Access `json:"-"`
	Children []Item `json:"children,omitempty"`
}

// Menu returns the full admin menu tree. Everything requires at least one
// assigned role; income entry and fund accounts are finance-gated, user and
// settings management admin-gated.
func Menu() []Item {
	return []Item{
		{Title: "Dashboard", Path: "/admin"},
		{Title: "Finance", Path: "/admin/finance", Children: []Item{
			{Title: "Overview", Path: "/admin/finance"},
			{Title: "Income", Path: "/admin/finance/income", Access: AccessFinance},
			{Title: "Expenses", Path: "/admin/finance/expenses"},
			{Title: "Fund Accounts", Path: "/admin/finance/funds", Access: AccessFinance},
			{Title: "Reports", Path: "/admin/finance/reports"},
		}},
		{Title: "Inventory", Path: "/admin/inventory", Children: []Item{
			{Title: "Food Inventory", Path: "/admin/inventory/food"},
			{Title: "Medicine Inventory", Path: "/admin/inventory/medicine"},
		}},
		{Title: "Staff", Path: "/admin/staff", Children: []Item{
			{Title: "Staff Management", Path: "/admin/staff"},
			{Title: "Attendance", Path: "/admin/staff/attendance"},
		}},
		{Title: "User Management", Path: "/admin/users", Access: AccessAdmin},
		{Title: "Settings", Path: "/admin/settings", Access: AccessAdmin},
	}
}

func allowed(access Access, caps services.Capabilities) bool {
	switch access {
	case AccessAdmin:
		return caps.IsAdmin
	case AccessFinance:
		return caps.IsFinance
	default:
		return caps.IsStaff
	}
}

// Filter returns the subtree visible to a user with the given capabilities.
// Groups whose children are all filtered out disappear with them.
func Filter(items []Item, caps services.Capabilities) []Item {
	visible := make([]Item, 0, len(items))
	for _, item := range items {
		if !allowed(item.Access, caps) {
			continue
		}
		if len(item.Children) > 0 {
			children := Filter(item.Children, caps)
			if len(children) == 0 {
				continue
			}
			item.Children = children
		}
		visible = append(visible, item)
	}
	return visible
}
