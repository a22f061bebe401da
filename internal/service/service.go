package service

import (
	accountsh "github.com/brunodmn/betoffice/internal/handlers/accounts"
	authh "github.com/brunodmn/betoffice/internal/handlers/auth"
	betsh "github.com/brunodmn/betoffice/internal/handlers/bets"
	catalogh "github.com/brunodmn/betoffice/internal/handlers/catalog"
	depositsh "github.com/brunodmn/betoffice/internal/handlers/deposits"
	financeh "github.com/brunodmn/betoffice/internal/handlers/finance"
	reportsh "github.com/brunodmn/betoffice/internal/handlers/reports"
	usersh "github.com/brunodmn/betoffice/internal/handlers/users"

	pkgauth "github.com/brunodmn/betoffice/pkg/auth"

	"github.com/brunodmn/betoffice/internal/pg"
	"github.com/brunodmn/betoffice/internal/repo"
	"github.com/brunodmn/betoffice/internal/service/accountservice"
	"github.com/brunodmn/betoffice/internal/service/authservice"
	"github.com/brunodmn/betoffice/internal/service/betservice"
	"github.com/brunodmn/betoffice/internal/service/catalogservice"
	"github.com/brunodmn/betoffice/internal/service/depositservice"
	"github.com/brunodmn/betoffice/internal/service/financeservice"
	"github.com/brunodmn/betoffice/internal/service/reportservice"
	"github.com/brunodmn/betoffice/internal/service/userservice"
)

type Services struct {
	AuthService    authh.Service
	UserService    usersh.Service
	BetService     betsh.Service
	AccountService accountsh.Service
	DepositService depositsh.Service
	FinanceService financeh.Service
	CatalogService catalogh.Service
	ReportService  reportsh.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, jwtService *pkgauth.JWTService, cache reportservice.Cache) *Services {
	hashService := &pkgauth.HashService{}

	return &Services{
		AuthService:    authservice.New(repo.UserRepo, repo.ProfileRepo, repo.RoleRepo, hashService, jwtService),
		UserService:    userservice.New(repo.UserRepo, repo.ProfileRepo, repo.RoleRepo, hashService),
		BetService:     betservice.New(repo.BetRepo, repo.AccountRepo),
		AccountService: accountservice.New(repo.AccountRepo),
		DepositService: depositservice.New(repo.DepositRepo, repo.AccountRepo, txManager),
		FinanceService: financeservice.New(repo.TransactionRepo, repo.BankRepo),
		CatalogService: catalogservice.New(repo.BookmakerRepo, repo.SoftwareRepo),
		ReportService: reportservice.New(
			repo.BetRepo, repo.ProfileRepo, repo.BookmakerRepo,
			repo.AccountRepo, repo.TransactionRepo, repo.DepositRepo, cache,
		),
	}
}
