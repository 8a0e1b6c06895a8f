package handlers

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/citylib/library-api/internal/dto"
	"github.com/citylib/library-api/internal/httperr"
	"github.com/citylib/library-api/internal/models"
)

// Book valuation used by the asset report: a flat 500 per copy.
const assetValuePerCopy = 500

type ReportHandler struct {
	db *gorm.DB
}

func NewReportHandler(db *gorm.DB) *ReportHandler {
	return &ReportHandler{db: db}
}

// ======================================================
// ASSET REPORT
// ======================================================

func (h *ReportHandler) AssetReports(c *gin.Context) {
	var row struct {
		Quantity   int64
		TotalValue float64
	}

	err := h.db.Model(&models.Book{}).
		Select("COUNT(*) AS quantity, COALESCE(SUM(total_copies * ?), 0) AS total_value", assetValuePerCopy).
		Scan(&row).Error
	if err != nil {
		logrus.WithError(err).Error("reports: asset query failed")
		httperr.Internal(c, "Failed to load asset reports")
		return
	}

	c.JSON(http.StatusOK, []dto.AssetReportRow{{
		AssetType:      "Books",
		Quantity:       row.Quantity,
		TotalValue:     row.TotalValue,
		AssetCondition: "Good",
	}})
}

// ======================================================
// FINANCIAL REPORT
// ======================================================

// FinancialReports groups revenue by calendar month. Fine and membership
// revenue are classified by description prefix, the only category signal
// the payments table carries.
func (h *ReportHandler) FinancialReports(c *gin.Context) {
	var payments []models.Payment
	err := h.db.
		Select("amount", "description", "payment_date").
		Find(&payments).Error
	if err != nil {
		logrus.WithError(err).Error("reports: financial query failed")
		httperr.Internal(c, "Failed to load financial reports")
		return
	}

	type monthKey struct {
		year  int
		month time.Month
	}

	totals := map[monthKey]*dto.FinancialReportRow{}
	keys := []monthKey{}

	for _, p := range payments {
		k := monthKey{p.PaymentDate.Year(), p.PaymentDate.Month()}
		row, ok := totals[k]
		if !ok {
			row = &dto.FinancialReportRow{
				Month: p.PaymentDate.Format("January 2006"),
			}
			totals[k] = row
			keys = append(keys, k)
		}

		row.Revenue += p.Amount
		switch {
		case strings.HasPrefix(p.Description, "Late fine"):
			row.Fines += p.Amount
		case strings.HasPrefix(p.Description, "Membership fee"):
			row.Membership += p.Amount
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year > keys[j].year
		}
		return keys[i].month > keys[j].month
	})

	rows := make([]dto.FinancialReportRow, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, *totals[k])
	}

	c.JSON(http.StatusOK, rows)
}

// ======================================================
// COLLECTION / INVENTORY
// ======================================================

func (h *ReportHandler) CollectionReports(c *gin.Context) {
	var rows []dto.GenreReportRow
	if err := h.genreTotals(&rows); err != nil {
		logrus.WithError(err).Error("reports: collection query failed")
		httperr.Internal(c, "Failed to load collection reports")
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (h *ReportHandler) SubjectWiseInventory(c *gin.Context) {
	var rows []dto.SubjectInventoryRow
	err := h.db.Model(&models.Book{}).
		Select(
			"genre AS subject, COUNT(*) AS total, " +
				"COALESCE(SUM(available_copies), 0) AS available, " +
				"COALESCE(SUM(total_copies - available_copies), 0) AS borrowed",
		).
		Group("genre").
		Scan(&rows).Error
	if err != nil {
		logrus.WithError(err).Error("reports: inventory query failed")
		httperr.Internal(c, "Failed to load inventory")
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (h *ReportHandler) genreTotals(rows *[]dto.GenreReportRow) error {
	return h.db.Model(&models.Book{}).
		Select(
			"genre, COUNT(*) AS total, " +
				"COALESCE(SUM(available_copies), 0) AS available, " +
				"COALESCE(SUM(total_copies - available_copies), 0) AS borrowed",
		).
		Group("genre").
		Scan(rows).Error
}

// ======================================================
// USER STATISTICS
// ======================================================

func (h *ReportHandler) UserStatistics(c *gin.Context) {
	now := time.Now()

	var total, active, expired int64

	if err := h.db.Model(&models.User{}).
		Where("role = ?", models.RoleMember).
		Count(&total).Error; err != nil {
		logrus.WithError(err).Error("reports: user stats failed")
		httperr.Internal(c, "Failed to load user statistics")
		return
	}

	h.db.Model(&models.User{}).
		Where("role = ? AND membership_expiry >= ?", models.RoleMember, now).
		Count(&active)
	h.db.Model(&models.User{}).
		Where("role = ? AND membership_expiry < ?", models.RoleMember, now).
		Count(&expired)

	c.JSON(http.StatusOK, []dto.UserStatisticRow{
		{Metric: "Total Members", Value: total},
		{Metric: "Active Members", Value: active},
		{Metric: "Expired Memberships", Value: expired},
	})
}

// ======================================================
// OWNER DASHBOARD
// ======================================================

func (h *ReportHandler) OwnerDashboard(c *gin.Context) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	nextMonth := monthStart.AddDate(0, 1, 0)

	var out dto.OwnerDashboard

	err := h.db.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("payment_date >= ? AND payment_date < ?", monthStart, nextMonth).
		Scan(&out.Revenue).Error
	if err != nil {
		logrus.WithError(err).Error("reports: dashboard revenue failed")
		httperr.Internal(c, "Failed to load dashboard data")
		return
	}

	h.db.Model(&models.User{}).
		Where("role = ? AND membership_expiry >= ?", models.RoleMember, now).
		Count(&out.ActiveMembers)

	h.db.Model(&models.Book{}).
		Select("COALESCE(SUM(total_copies - available_copies), 0)").
		Scan(&out.BooksInCirculation)

	h.db.Model(&models.Borrowing{}).
		Select("COALESCE(SUM(fine), 0)").
		Where("fine > 0").
		Scan(&out.OutstandingFines)

	c.JSON(http.StatusOK, out)
}
