package repo

import (
	"github.com/brunodmn/betoffice/internal/pg"
	accountrepo "github.com/brunodmn/betoffice/internal/repo/account-repo"
	bankrepo "github.com/brunodmn/betoffice/internal/repo/bank-repo"
	betrepo "github.com/brunodmn/betoffice/internal/repo/bet-repo"
	bookmakerrepo "github.com/brunodmn/betoffice/internal/repo/bookmaker-repo"
	depositrepo "github.com/brunodmn/betoffice/internal/repo/deposit-repo"
	profilerepo "github.com/brunodmn/betoffice/internal/repo/profile-repo"
	rolerepo "github.com/brunodmn/betoffice/internal/repo/role-repo"
	softwarerepo "github.com/brunodmn/betoffice/internal/repo/software-repo"
	transactionrepo "github.com/brunodmn/betoffice/internal/repo/transaction-repo"
	userrepo "github.com/brunodmn/betoffice/internal/repo/user-repo"
)

// Repositories holds the concrete repos; each service narrows them to its
// own interface at construction time.
type Repositories struct {
	UserRepo        *userrepo.Repository
	ProfileRepo     *profilerepo.Repository
	RoleRepo        *rolerepo.Repository
	BookmakerRepo   *bookmakerrepo.Repository
	SoftwareRepo    *softwarerepo.Repository
	AccountRepo     *accountrepo.Repository
	BetRepo         *betrepo.Repository
	DepositRepo     *depositrepo.Repository
	TransactionRepo *transactionrepo.Repository
	BankRepo        *bankrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		ProfileRepo:     profilerepo.New(conn),
		RoleRepo:        rolerepo.New(conn, txManager),
		BookmakerRepo:   bookmakerrepo.New(conn),
		SoftwareRepo:    softwarerepo.New(conn),
		AccountRepo:     accountrepo.New(conn),
		BetRepo:         betrepo.New(conn),
		DepositRepo:     depositrepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
		BankRepo:        bankrepo.New(conn),
	}
}
