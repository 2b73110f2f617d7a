package rest

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/go-playground/validator/v10"
	"github.com/niyordanova/Split-Tracker/model"
	"github.com/niyordanova/Split-Tracker/repository"
	"github.com/niyordanova/Split-Tracker/service"
	"golang.org/x/crypto/bcrypt"
)

// Users //

func (a *App) signup(w http.ResponseWriter, r *http.Request) {
	customer := &model.Customer{}

	// r.Body: {"username":"peter", "password": "123", "email": ..., "mobileNo": ..., "fullName": ...}
	if err := json.NewDecoder(r.Body).Decode(customer); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	// Validate Customer struct
	err := a.Validator.Struct(customer)
	if err != nil {
		// translate all errors at once
		errs := err.(validator.ValidationErrors)
		respondWithValidationError(errs.Translate(a.Translator), w)
		return
	}

	if taken, err := a.Users.UsernameExists(customer.Username); err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	} else if taken {
		respondWithFailure(w, "Username already exists")
		return
	}

	if taken, err := a.Users.MobileNoExists(customer.MobileNo); err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	} else if taken {
		respondWithFailure(w, "Phone number already exists")
		return
	}

	userID := generateUserID(customer.Username)

	// Hash the password with bcrypt
	pass, err := bcrypt.GenerateFromPassword([]byte(customer.Password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Println(err)
		respondWithError(w, http.StatusInternalServerError, "Password Encryption failed")
		return
	}

	inDB := &model.CustomerInDB{
		UserID:         userID,
		Username:       customer.Username,
		HashedPassword: string(pass),
		Email:          customer.Email,
		MobileNo:       customer.MobileNo,
		FullName:       customer.FullName,
	}
	if err := a.Users.Create(inDB); err != nil {
		respondWithFailure(w, "Not able to Sign Up")
		return
	}

	// Every customer starts with a ledger holding their own self-entry.
	if err := a.Ledgers.EnsureExists(userID, customer.Username, customer.FullName); err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithSuccess(w, "Customer signed up successfully")
}

func (a *App) login(w http.ResponseWriter, r *http.Request) {
	userCredentials := &model.UserLogin{}
	err := json.NewDecoder(r.Body).Decode(userCredentials)
	if err != nil {
		fmt.Printf("Error logging user %v: %v", userCredentials, err)
		respondWithFailure(w, "Invalid request")
		return
	}

	user, err := a.Users.FindByUsername(userCredentials.Username)
	if err != nil {
		respondWithFailure(w, "User not found")
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(userCredentials.Password))
	if err != nil { //Password does not match!
		respondWithFailure(w, "Invalid credentials")
		return
	}

	tokenString := a.createToken(user)

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"access_token": tokenString,
		"token_type":   "bearer",
		"Response":     statusSuccess,
		"CustomerData": model.CustomerData{
			UserID:   user.UserID,
			Username: user.Username,
			Email:    user.Email,
			MobileNo: user.MobileNo,
			FullName: user.FullName,
		},
	})
}

func (a *App) createToken(user *model.CustomerInDB) string {
	expiresAt := time.Now().Add(time.Minute * 30).Unix()

	claims := &model.UserToken{
		UserID:   user.UserID,
		Username: user.Username,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expiresAt,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtKey)
	if err != nil {
		fmt.Println(err)
	}
	return tokenString
}

// userId = username + 6 random digits
func generateUserID(username string) string {
	digits := ""
	for i := 0; i < 6; i++ {
		digits += strconv.Itoa(rand.Intn(10))
	}
	return username + digits
}

func (a *App) getAllUsers(w http.ResponseWriter, r *http.Request) {
	payload := struct {
		UserID string `json:"userId"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	customers, err := a.Users.FindAll()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	friends := map[string]bool{}
	if entries, err := a.Ledgers.Load(payload.UserID); err == nil {
		for _, entry := range entries {
			friends[entry.FriendUserID] = true
		}
	}

	// requestedOf: users who sent the caller a request
	// requestedBy: users the caller sent a request to
	requestedOf := map[string]bool{}
	requestedBy := map[string]bool{}
	requests, err := a.Requests.FindForUser(payload.UserID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	for _, request := range requests {
		if request.RequestedUserID == payload.UserID {
			requestedOf[request.RequesterUserID] = true
		} else {
			requestedBy[request.RequestedUserID] = true
		}
	}

	users := []model.CustomerWithStatus{}
	for _, customer := range customers {
		status := "not_friend"
		switch {
		case friends[customer.UserID]:
			status = "added_friend"
		case requestedOf[customer.UserID]:
			status = "pending_request"
		case requestedBy[customer.UserID]:
			status = "requested_friend"
		}

		users = append(users, model.CustomerWithStatus{
			CustomerData: model.CustomerData{
				UserID:   customer.UserID,
				Username: customer.Username,
				Email:    customer.Email,
				MobileNo: customer.MobileNo,
				FullName: customer.FullName,
			},
			FriendshipStatus: status,
		})
	}

	respondWithJSON(w, http.StatusOK, users)
}

// Friends //

func (a *App) addFriend(w http.ResponseWriter, r *http.Request) {
	payload := &model.AddFriend{}
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	if err := a.Validator.Struct(payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	if exists, err := a.Users.UsernameExists(payload.FriendUsername); err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	} else if !exists {
		respondWithError(w, http.StatusBadRequest, "Friend's username does not exist")
		return
	}

	if exists, err := a.Users.MobileNoExists(payload.MobileNo); err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	} else if !exists {
		respondWithError(w, http.StatusBadRequest, "Mobile number does not exist")
		return
	}

	entry := model.LedgerEntry{
		FriendUsername:      payload.FriendUsername,
		FriendUserID:        payload.FriendUserID,
		ExpenseAddedBy:      payload.UserID,
		TotalSplittedAmount: payload.TotalSplittedAmount,
		AmountFromFriend:    payload.AmountFromFriend,
		CalculatedMoney:     payload.CalculatedMoney,
	}
	if err := a.Ledgers.UpsertRow(payload.UserID, entry); err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Friend '%s' added successfully", payload.FriendUsername),
	})
}

func (a *App) sendFriendRequest(w http.ResponseWriter, r *http.Request) {
	request := &model.FriendRequest{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if !a.bothLedgersExist(w, request.RequesterUserID, request.RequestedUserID) {
		return
	}

	if err := a.Requests.Add(request.RequesterUserID, request.RequestedUserID); err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Friend request sent successfully"})
}

func (a *App) acceptFriendRequest(w http.ResponseWriter, r *http.Request) {
	request := &model.FriendRequest{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if !a.bothLedgersExist(w, request.RequesterUserID, request.RequestedUserID) {
		return
	}

	exists, err := a.Requests.Exists(request.RequesterUserID, request.RequestedUserID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !exists {
		respondWithError(w, http.StatusNotFound, "Friend request not found")
		return
	}

	// One row in each side's ledger, insert-if-absent on both.
	if err := a.connectUsers(request.RequesterUserID, request.RequestedUserID); err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := a.Requests.Delete(request.RequesterUserID, request.RequestedUserID); err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Friend request accepted successfully"})
}

func (a *App) connectUsers(userOne, userTwo string) error {
	one, err := a.Users.FindByUserID(userOne)
	if err != nil {
		return err
	}
	two, err := a.Users.FindByUserID(userTwo)
	if err != nil {
		return err
	}

	err = a.Ledgers.UpsertRow(userOne, model.LedgerEntry{
		FriendUsername: two.Username,
		FriendUserID:   two.UserID,
		ExpenseAddedBy: userOne,
	})
	if err != nil {
		return err
	}

	return a.Ledgers.UpsertRow(userTwo, model.LedgerEntry{
		FriendUsername: one.Username,
		FriendUserID:   one.UserID,
		ExpenseAddedBy: userTwo,
	})
}

func (a *App) bothLedgersExist(w http.ResponseWriter, userOne, userTwo string) bool {
	for _, userID := range []string{userOne, userTwo} {
		exists, err := a.Ledgers.Exists(userID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return false
		}
		if !exists {
			respondWithFailure(w, "User ID not found")
			return false
		}
	}
	return true
}

// Expenses //

func (a *App) addExpense(w http.ResponseWriter, r *http.Request) {
	payload := &model.SplitExpense{}
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if payload.UserID == "" || payload.Amount == nil || len(payload.Friends) == 0 {
		respondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	err := a.Ledger.AddExpense(payload.UserID, payload.Amount, payload.Friends)
	if err == service.ErrNoConnections {
		respondWithFailure(w, "You haven't added any friends yet")
		return
	}
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithSuccess(w, "Expense added successfully")
}

func (a *App) savePersonalExpense(w http.ResponseWriter, r *http.Request) {
	expense := &model.PersonalExpense{}
	if err := json.NewDecoder(r.Body).Decode(expense); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if expense.Username == "" || expense.Amount == 0 {
		respondWithError(w, http.StatusBadRequest, "Username and amount are required")
		return
	}

	if err := a.Expenses.SavePersonal(expense); err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Personal expense saved successfully"})
}

func (a *App) saveExpenseHistory(w http.ResponseWriter, r *http.Request) {
	history := &model.ExpenseHistory{}
	if err := json.NewDecoder(r.Body).Decode(history); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := a.Expenses.SaveHistory(history); err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithSuccess(w, "Expense history saved successfully")
}

func (a *App) getFriendExpenses(w http.ResponseWriter, r *http.Request) {
	payload := struct {
		UserID string `json:"userId"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.UserID == "" {
		respondWithFailure(w, "User ID is required in the payload")
		return
	}

	balances, err := a.Ledger.FriendBalances(payload.UserID)
	if err == repository.ErrNotFound {
		respondWithFailure(w, "No expenses found for the user")
		return
	}
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"customerData": balances,
		"Response":     statusSuccess,
	})
}

func (a *App) settleAmount(w http.ResponseWriter, r *http.Request) {
	payload := &model.Settle{}
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.UserID == "" || payload.FriendUserID == "" {
		respondWithFailure(w, "User ID and friend user Id are required in the payload")
		return
	}

	switch err := a.Ledger.Settle(payload.UserID, payload.FriendUserID); err {
	case nil:
		respondWithJSON(w, http.StatusOK, map[string]string{
			"message": fmt.Sprintf("Amount settled with friend '%s' successfully", payload.FriendUserID),
		})
	case repository.ErrNotFound:
		respondWithJSON(w, http.StatusOK, map[string]string{"message": "No expenses found for the user"})
	case service.ErrFriendNotFound:
		respondWithJSON(w, http.StatusOK, map[string]string{
			"message": fmt.Sprintf("Friend '%s' not found in the user's connections", payload.FriendUserID),
		})
	default:
		respondWithError(w, http.StatusInternalServerError, err.Error())
	}
}
