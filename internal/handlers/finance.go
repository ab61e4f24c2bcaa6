package handlers

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/URTS404/UMKM-AWP-UAS/internal/middleware"
	"github.com/URTS404/UMKM-AWP-UAS/internal/models"
)

// FinanceRecordRequest defines the structure for creating a ledger entry
type FinanceRecordRequest struct {
	Type        models.FinanceType `json:"type" validate:"required,oneof=income expense"`
	Description string             `json:"description"`
	Amount      float64            `json:"amount" validate:"required,gt=0"`
}

// FinanceSummary holds the aggregated ledger totals
type FinanceSummary struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Profit       float64 `json:"profit"`
}

// ProfitMargin returns the margin as a percentage string with two
// decimals, "0" when there is no income.
func (s FinanceSummary) ProfitMargin() string {
	if s.TotalIncome <= 0 {
		return "0"
	}
	return fmt.Sprintf("%.2f", s.Profit/s.TotalIncome*100)
}

func validFinanceType(t models.FinanceType) bool {
	return t == models.FinanceIncome || t == models.FinanceExpense
}

// parseDateFilter parses YYYY-MM-DD query values; endOfDay pushes the
// bound to the end of that day so the filter is inclusive.
func parseDateFilter(s string, endOfDay bool) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}

func sumByType(db *gorm.DB, t models.FinanceType, start, end time.Time) float64 {
	var total float64
	query := db.Model(&models.FinanceRecord{}).Where("type = ?", t)
	if !start.IsZero() {
		query = query.Where("created_at >= ?", start)
	}
	if !end.IsZero() {
		query = query.Where("created_at <= ?", end)
	}
	query.Select("coalesce(sum(amount), 0)").Row().Scan(&total)
	return total
}

// GetFinanceRecords handles fetching the ledger with optional ?type=,
// ?start_date= and ?end_date= filters, plus the all-time summary
func GetFinanceRecords(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := db.Model(&models.FinanceRecord{})

		if t := c.Query("type"); t != "" {
			query = query.Where("type = ?", t)
		}
		if s := c.Query("start_date"); s != "" {
			start, err := parseDateFilter(s, false)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"success": false,
					"message": "Invalid start_date format. Use YYYY-MM-DD",
				})
			}
			query = query.Where("created_at >= ?", start)
		}
		if e := c.Query("end_date"); e != "" {
			end, err := parseDateFilter(e, true)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"success": false,
					"message": "Invalid end_date format. Use YYYY-MM-DD",
				})
			}
			query = query.Where("created_at <= ?", end)
		}

		var records []models.FinanceRecord
		if err := query.Order("created_at desc").Find(&records).Error; err != nil {
			log.Printf("Error fetching finance records: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Internal server error",
			})
		}

		if records == nil {
			records = []models.FinanceRecord{}
		}

		// Ringkasan selalu all-time, mengikuti perilaku lama
		summary := FinanceSummary{
			TotalIncome:  sumByType(db, models.FinanceIncome, time.Time{}, time.Time{}),
			TotalExpense: sumByType(db, models.FinanceExpense, time.Time{}, time.Time{}),
		}
		summary.Profit = summary.TotalIncome - summary.TotalExpense

		return c.JSON(fiber.Map{
			"success": true,
			"records": records,
			"summary": summary,
		})
	}
}

// CreateFinanceRecord handles adding a ledger entry (admin only)
func CreateFinanceRecord(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req FinanceRecordRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid request body",
			})
		}

		if req.Amount <= 0 || !validFinanceType(req.Type) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Type (income/expense) and amount are required",
			})
		}

		var userID *uint
		if id, _, err := middleware.GetUserFromContext(c); err == nil {
			userID = &id
		}

		record := models.FinanceRecord{
			UserID:      userID,
			Type:        req.Type,
			Description: req.Description,
			Amount:      req.Amount,
		}

		if err := db.Create(&record).Error; err != nil {
			log.Printf("Error creating finance record: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Internal server error",
			})
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": true,
			"message": "Financial record created successfully",
			"record":  record,
		})
	}
}

// GetFinanceSummary handles the date-ranged totals (admin only)
func GetFinanceSummary(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var start, end time.Time
		var err error

		if s := c.Query("start_date"); s != "" {
			start, err = parseDateFilter(s, false)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"success": false,
					"message": "Invalid start_date format. Use YYYY-MM-DD",
				})
			}
		}
		if e := c.Query("end_date"); e != "" {
			end, err = parseDateFilter(e, true)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"success": false,
					"message": "Invalid end_date format. Use YYYY-MM-DD",
				})
			}
		}

		summary := FinanceSummary{
			TotalIncome:  sumByType(db, models.FinanceIncome, start, end),
			TotalExpense: sumByType(db, models.FinanceExpense, start, end),
		}
		summary.Profit = summary.TotalIncome - summary.TotalExpense

		return c.JSON(fiber.Map{
			"success": true,
			"summary": fiber.Map{
				"total_income":  summary.TotalIncome,
				"total_expense": summary.TotalExpense,
				"profit":        summary.Profit,
				"profit_margin": summary.ProfitMargin(),
			},
		})
	}
}

// DeleteFinanceRecord handles removing a ledger entry (admin only)
func DeleteFinanceRecord(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid record ID",
			})
		}

		result := db.Delete(&models.FinanceRecord{}, id)
		if result.Error != nil {
			log.Printf("Error deleting finance record: %v", result.Error)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Internal server error",
			})
		}

		if result.RowsAffected == 0 {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Financial record not found",
			})
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Financial record deleted successfully",
		})
	}
}
