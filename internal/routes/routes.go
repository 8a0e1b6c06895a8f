package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/citylib/library-api/internal/config"
	"github.com/citylib/library-api/internal/handlers"
	infraRepo "github.com/citylib/library-api/internal/infra/repository"
	"github.com/citylib/library-api/internal/middleware"
	"github.com/citylib/library-api/internal/models"
	"github.com/citylib/library-api/internal/notify"
	ucCirculation "github.com/citylib/library-api/internal/usecase/circulation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, rdb *redis.Client) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	circulationRepo := infraRepo.NewCirculationGormRepository(db)

	mailer := notify.NewMailer()
	mailDispatcher := notify.NewDispatcher(mailer)

	// ======================================================
	// USE CASES — CIRCULATION
	// ======================================================
	borrowUC := ucCirculation.NewBorrow(circulationRepo, nil)
	returnUC := ucCirculation.NewReturn(circulationRepo, nil)
	payFineUC := ucCirculation.NewPayFine(circulationRepo, nil)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, mailDispatcher)
	profileHandler := handlers.NewProfileHandler(db)
	bookHandler := handlers.NewBookHandler(db)
	circulationHandler := handlers.NewCirculationHandler(db, borrowUC, returnUC, payFineUC)
	paymentHandler := handlers.NewPaymentHandler(db, mailDispatcher)
	reportHandler := handlers.NewReportHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH (rate limited)
		// ------------------------------
		authAPI := api.Group("/")
		authAPI.Use(middleware.RateLimit(rdb, 10))
		{
			authAPI.POST("/register", authHandler.Register)
			authAPI.POST("/login", authHandler.Login)
			authAPI.POST("/forgot-password", authHandler.ForgotPassword)
		}

		// ------------------------------
		// PUBLIC CATALOG
		// ------------------------------
		api.GET("/books/search", bookHandler.Search)
		api.GET("/books/:id", bookHandler.GetByID)
		api.GET("/available-copies", bookHandler.AvailableCopies)
		api.GET("/book-wise-copies", bookHandler.BookWiseCopies)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/profile", profileHandler.Get)
			secured.PUT("/profile", profileHandler.Update)
			secured.PUT("/change-password", profileHandler.ChangePassword)

			secured.GET("/payment-methods", paymentHandler.ListMethods)
			secured.POST("/process-payment", paymentHandler.Process)
			secured.GET("/payment-history", paymentHandler.History)

			// ------------------------------
			// MEMBERS — CIRCULATION
			// ------------------------------
			member := secured.Group("/")
			member.Use(middleware.RequireRole(models.RoleMember))
			{
				member.POST("/borrow", circulationHandler.Borrow)
				member.POST("/return/:borrowingId", circulationHandler.Return)
				member.POST("/pay-fine/:fineId", circulationHandler.PayFine)

				member.GET("/outstanding-fines", circulationHandler.OutstandingFines)
				member.GET("/borrowed-books", circulationHandler.BorrowedBooks)
				member.GET("/borrowing-history", circulationHandler.BorrowingHistory)
			}

			// ------------------------------
			// OWNERS — CATALOG + REPORTS
			// ------------------------------
			owner := secured.Group("/")
			owner.Use(middleware.RequireRole(models.RoleOwner))
			{
				owner.POST("/books", bookHandler.Create)

				owner.GET("/asset-reports", reportHandler.AssetReports)
				owner.GET("/financial-reports", reportHandler.FinancialReports)
				owner.GET("/collection-reports", reportHandler.CollectionReports)
				owner.GET("/subject-wise-inventory", reportHandler.SubjectWiseInventory)
				owner.GET("/user-statistics", reportHandler.UserStatistics)
				owner.GET("/owner-dashboard", reportHandler.OwnerDashboard)
			}
		}
	}
}
