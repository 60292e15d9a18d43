package database

import (
	"log/slog"

	"github.com/sevasetu/ngo-backend/internal/models"
)

var defaultIncomeCategories = []string{
	"Donations", "Grants", "Fundraising Events", "CSR Contributions", "Interest",
}

var defaultExpenseCategories = []string{
	"Food & Groceries", "Medicine & Healthcare", "Education", "Salaries",
	"Utilities", "Transport", "Maintenance",
}

var defaultSiteSettings = []models.SiteSetting{
	{Key: "hero_title", Value: "Serving Communities with Compassion", Type: "string"},
	{Key: "hero_subtitle", Value: "Food, healthcare and education for those who need it most", Type: "string"},
	{Key: "impact_meals_served", Value: "250000", Type: "int"},
	{Key: "impact_children_educated", Value: "1200", Type: "int"},
	{Key: "impact_medical_camps", Value: "85", Type: "int"},
	{Key: "impact_volunteers", Value: "340", Type: "int"},
	{Key: "contact_email", Value: "hello@sevasetu.org", Type: "string"},
}

// Seed inserts default categories and site settings. Existing rows are left
// untouched so operator edits survive restarts.
func Seed() {
	for _, name := range defaultIncomeCategories {
		var existing models.IncomeCategory
		if err := DB.Where("name = ?", name).First(&existing).Error; err != nil {
			if err := DB.Create(&models.IncomeCategory{Name: name}).Error; err != nil {
				slog.Error("failed to seed income category", "name", name, "error", err)
			}
		}
	}

	for _, name := range defaultExpenseCategories {
		var existing models.ExpenseCategory
		if err := DB.Where("name = ?", name).First(&existing).Error; err != nil {
			if err := DB.Create(&models.ExpenseCategory{Name: name}).Error; err != nil {
				slog.Error("failed to seed expense category", "name", name, "error", err)
			}
		}
	}

	for _, setting := range defaultSiteSettings {
		var existing models.SiteSetting
		if err := DB.Where("key = ?", setting.Key).First(&existing).Error; err != nil {
			if err := DB.Create(&setting).Error; err != nil {
				slog.Error("failed to seed site setting", "key", setting.Key, "error", err)
			}
		}
	}
}
