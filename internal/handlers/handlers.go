package handlers

import (
	"net/http"

	_ "github.com/brunodmn/betoffice/docs"
	accountshandlers "github.com/brunodmn/betoffice/internal/handlers/accounts"
	authhandlers "github.com/brunodmn/betoffice/internal/handlers/auth"
	betshandlers "github.com/brunodmn/betoffice/internal/handlers/bets"
	cataloghandlers "github.com/brunodmn/betoffice/internal/handlers/catalog"
	depositshandlers "github.com/brunodmn/betoffice/internal/handlers/deposits"
	financehandlers "github.com/brunodmn/betoffice/internal/handlers/finance"
	reportshandlers "github.com/brunodmn/betoffice/internal/handlers/reports"
	usershandlers "github.com/brunodmn/betoffice/internal/handlers/users"
	"github.com/brunodmn/betoffice/internal/metrics"
	"github.com/brunodmn/betoffice/internal/service"
	"github.com/brunodmn/betoffice/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type BetHandler interface {
	AddBet(w http.ResponseWriter, r *http.Request)
	GetBets(w http.ResponseWriter, r *http.Request)
	UpdateBet(w http.ResponseWriter, r *http.Request)
	DeleteBet(w http.ResponseWriter, r *http.Request)
}

type AccountHandler interface {
	AddAccount(w http.ResponseWriter, r *http.Request)
	GetAccounts(w http.ResponseWriter, r *http.Request)
	UpdateAccount(w http.ResponseWriter, r *http.Request)
	DeleteAccount(w http.ResponseWriter, r *http.Request)
}

type DepositHandler interface {
	AddDeposit(w http.ResponseWriter, r *http.Request)
	GetDeposits(w http.ResponseWriter, r *http.Request)
}

type FinanceHandler interface {
	AddTransaction(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	UpdateTransaction(w http.ResponseWriter, r *http.Request)
	DeleteTransaction(w http.ResponseWriter, r *http.Request)
	GetBanks(w http.ResponseWriter, r *http.Request)
	UpsertBank(w http.ResponseWriter, r *http.Request)
}

type CatalogHandler interface {
	GetBookmakers(w http.ResponseWriter, r *http.Request)
	AddBookmaker(w http.ResponseWriter, r *http.Request)
	UpdateBookmaker(w http.ResponseWriter, r *http.Request)
	GetSoftwareTools(w http.ResponseWriter, r *http.Request)
	AddSoftwareTool(w http.ResponseWriter, r *http.Request)
	UpdateSoftwareTool(w http.ResponseWriter, r *http.Request)
}

type ReportHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
	GetAnalytics(w http.ResponseWriter, r *http.Request)
	GetDRE(w http.ResponseWriter, r *http.Request)
	GetCaixa(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	CreateUser(w http.ResponseWriter, r *http.Request)
	DeleteUser(w http.ResponseWriter, r *http.Request)
	ChangeRole(w http.ResponseWriter, r *http.Request)
	GetOperators(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	BetHandler     BetHandler
	AccountHandler AccountHandler
	DepositHandler DepositHandler
	FinanceHandler FinanceHandler
	CatalogHandler CatalogHandler
	ReportHandler  ReportHandler
	UserHandler    UserHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		BetHandler:     betshandlers.New(s.BetService),
		AccountHandler: accountshandlers.New(s.AccountService),
		DepositHandler: depositshandlers.New(s.DepositService),
		FinanceHandler: financehandlers.New(s.FinanceService),
		CatalogHandler: cataloghandlers.New(s.CatalogService),
		ReportHandler:  reportshandlers.New(s.ReportService),
		UserHandler:    usershandlers.New(s.UserService),
		jwtService:     jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metrics.Middleware,
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:         300,
		}),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.AuthHandler.Register)
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.jwtService))

			r.Route("/bets", func(r chi.Router) {
				r.Post("/", h.BetHandler.AddBet)
				r.Get("/", h.BetHandler.GetBets)
				r.Put("/{id}", h.BetHandler.UpdateBet)
				r.Delete("/{id}", h.BetHandler.DeleteBet)
			})
			r.Route("/accounts", func(r chi.Router) {
				r.Post("/", h.AccountHandler.AddAccount)
				r.Get("/", h.AccountHandler.GetAccounts)
				r.Put("/{id}", h.AccountHandler.UpdateAccount)
				r.Delete("/{id}", h.AccountHandler.DeleteAccount)
			})
			r.Route("/deposits", func(r chi.Router) {
				r.Post("/", h.DepositHandler.AddDeposit)
				r.Get("/", h.DepositHandler.GetDeposits)
			})
			r.Get("/bookmakers", h.CatalogHandler.GetBookmakers)
			r.Get("/software", h.CatalogHandler.GetSoftwareTools)
			r.Get("/reports/dashboard", h.ReportHandler.GetDashboard)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireAdmin)

				r.Get("/reports/analytics", h.ReportHandler.GetAnalytics)
				r.Get("/reports/dre", h.ReportHandler.GetDRE)
				r.Get("/reports/caixa", h.ReportHandler.GetCaixa)

				r.Route("/transactions", func(r chi.Router) {
					r.Post("/", h.FinanceHandler.AddTransaction)
					r.Get("/", h.FinanceHandler.GetTransactions)
					r.Put("/{id}", h.FinanceHandler.UpdateTransaction)
					r.Delete("/{id}", h.FinanceHandler.DeleteTransaction)
				})
				r.Route("/banks", func(r chi.Router) {
					r.Get("/", h.FinanceHandler.GetBanks)
					r.Put("/", h.FinanceHandler.UpsertBank)
				})

				r.Post("/bookmakers", h.CatalogHandler.AddBookmaker)
				r.Put("/bookmakers/{id}", h.CatalogHandler.UpdateBookmaker)
				r.Post("/software", h.CatalogHandler.AddSoftwareTool)
				r.Put("/software/{id}", h.CatalogHandler.UpdateSoftwareTool)

				r.Route("/admin/users", func(r chi.Router) {
					r.Post("/", h.UserHandler.CreateUser)
					r.Get("/", h.UserHandler.GetOperators)
					r.Put("/{id}/role", h.UserHandler.ChangeRole)
					r.Delete("/{id}", h.UserHandler.DeleteUser)
				})
			})
		})
	})

	return r
}
