package rest

import (
	"log"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"

	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/gorilla/mux"

	"github.com/niyordanova/Split-Tracker/contract"
	"github.com/niyordanova/Split-Tracker/repository"
	"github.com/niyordanova/Split-Tracker/service"
)

var jwtKey = []byte("secret")

type App struct {
	Router   *mux.Router
	Users    contract.UserRepo
	Ledgers  contract.LedgerRepo
	Requests contract.FriendRequestRepo
	Expenses contract.ExpenseRepo
	Ledger   *service.Ledger

	Validator  *validator.Validate
	Translator ut.Translator
}

func (a *App) Init(user, password, dbname string) {
	a.Users = repository.NewUserRepoMysql(user, password, dbname)
	a.Ledgers = repository.NewLedgerRepoMysql(user, password, dbname)
	a.Requests = repository.NewFriendRequestRepoMysql(user, password, dbname)
	a.Expenses = repository.NewExpenseRepoMysql(user, password, dbname)
	a.Ledger = service.NewLedger(a.Ledgers, a.Users)

	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		jwtKey = []byte(secret)
	}
	rand.Seed(time.Now().UnixNano())

	a.Validator = validator.New()
	eng := en.New()
	var uni *ut.UniversalTranslator
	uni = ut.New(eng, eng)

	var found bool
	a.Translator, found = uni.GetTranslator("en")
	if !found {
		log.Fatal("translator not found")
	}
	if err := en_translations.RegisterDefaultTranslations(a.Validator, a.Translator); err != nil {
		log.Fatal(err)
	}

	a.Router = mux.NewRouter()
	a.initializeRoutes()
}

func (a *App) Run(addr string) {
	log.Fatal(http.ListenAndServe(addr, a.Router))
}

func (a *App) initializeRoutes() {
	a.Router.HandleFunc("/signup", a.signup).Methods(http.MethodPost)
	a.Router.HandleFunc("/login", a.login).Methods(http.MethodPost)

	// Auth route
	s := a.Router.PathPrefix("/home").Subrouter()
	s.Use(JwtVerify)
	s.HandleFunc("/users", a.getAllUsers).Methods(http.MethodPost)
	s.HandleFunc("/friends", a.addFriend).Methods(http.MethodPost)
	s.HandleFunc("/friends/request", a.sendFriendRequest).Methods(http.MethodPost)
	s.HandleFunc("/friends/accept", a.acceptFriendRequest).Methods(http.MethodPost)
	s.HandleFunc("/expenses", a.addExpense).Methods(http.MethodPost)
	s.HandleFunc("/expenses/personal", a.savePersonalExpense).Methods(http.MethodPost)
	s.HandleFunc("/expenses/history", a.saveExpenseHistory).Methods(http.MethodPost)
	s.HandleFunc("/expenses/friends", a.getFriendExpenses).Methods(http.MethodPost)
	s.HandleFunc("/settle", a.settleAmount).Methods(http.MethodPost)
}
