package steps

import (
	"fmt"
	"reflect"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lite-finance/backend/internal/integration/persistence/model"
)

func (t *testContext) iAmLoggedIn() error {
	t.currentUserID = uuid.New()
	token, err := signAccessToken(t.currentUserID, "user@example.com")
	if err != nil {
		return err
	}
	t.accessToken = token
	return nil
}

func (t *testContext) iAmNotAuthenticated() error {
	t.accessToken = ""
	return nil
}

func (t *testContext) anotherUserExists() error {
	t.otherUserID = uuid.New()
	return nil
}

func signAccessToken(userID uuid.UUID, email string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   userID.String(),
		"email": email,
		"exp":   jwt.NewNumericDate(now.Add(15 * time.Minute)),
		"iat":   jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

func (t *testContext) aCategoryExists(name, kind string) error {
	return t.createCategory(name, kind, t.currentUserID)
}

func (t *testContext) aCategoryExistsForTheOtherUser(name, kind string) error {
	return t.createCategory(name, kind, t.otherUserID)
}

func (t *testContext) createCategory(name, kind string, userID uuid.UUID) error {
	categoryModel := &model.CategoryModel{
		UserID:    userID,
		Name:      name,
		Kind:      kind,
		CreatedAt: time.Now().UTC(),
	}
	if err := t.db.DbConn.Create(categoryModel).Error; err != nil {
		return err
	}
	t.categoryIDs[name] = categoryModel.ID
	t.lastCategoryID = categoryModel.ID
	return nil
}

func (t *testContext) anAccountExists(name string) error {
	return t.createAccount(name, t.currentUserID)
}

func (t *testContext) anAccountExistsForTheOtherUser(name string) error {
	return t.createAccount(name, t.otherUserID)
}

func (t *testContext) createAccount(name string, userID uuid.UUID) error {
	accountModel := &model.AccountModel{
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := t.db.DbConn.Create(accountModel).Error; err != nil {
		return err
	}
	t.accountIDs[name] = accountModel.ID
	t.lastAccountID = accountModel.ID
	return nil
}

func (t *testContext) aTransactionExists(amount, date, categoryName string) error {
	return t.createTransaction(amount, date, categoryName, t.currentUserID)
}

func (t *testContext) aTransactionExistsForTheOtherUser(amount, date, categoryName string) error {
	return t.createTransaction(amount, date, categoryName, t.otherUserID)
}

func (t *testContext) createTransaction(amount, date, categoryName string, userID uuid.UUID) error {
	categoryID, ok := t.categoryIDs[categoryName]
	if !ok {
		return fmt.Errorf("category '%s' was not created by a setup step", categoryName)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date '%s': %w", date, err)
	}

	transactionModel := &model.TransactionModel{
		UserID:      userID,
		Amount:      value,
		Date:        day,
		Description: fmt.Sprintf("%s em %s", categoryName, date),
		CategoryID:  categoryID,
		Status:      "confirmado",
		CreatedAt:   time.Now().UTC(),
	}
	return t.db.DbConn.Create(transactionModel).Error
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
	if result.Error != nil {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}
