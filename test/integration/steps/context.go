// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lite-finance/backend/config"
	"github.com/lite-finance/backend/internal/infra/dependency"
	"github.com/lite-finance/backend/internal/integration/persistence/model"
	"github.com/lite-finance/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

// testContext holds the state of one scenario.
type testContext struct {
	uri     string
	client  *http.Client
	db      *mock.Db
	headers map[string]string

	accessToken   string
	currentUserID uuid.UUID
	otherUserID   uuid.UUID

	categoryIDs    map[string]int64
	lastCategoryID int64
	accountIDs     map[string]int64
	lastAccountID  int64

	response *response
}

type response struct {
	status int
	body   any
}

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:    fmt.Sprintf("http://localhost:%d", testServerPort),
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb(map[string]any{
			"categorias": &model.CategoryModel{},
			"contas":     &model.AccountModel{},
			"transacoes": &model.TransactionModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Auth steps
	ctx.Given(`^I am logged in$`, test.iAmLoggedIn)
	ctx.Given(`^I am not authenticated$`, test.iAmNotAuthenticated)
	ctx.Given(`^another user exists$`, test.anotherUserExists)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Data setup steps
	ctx.Given(`^a category named "([^"]*)" with kind "([^"]*)" exists$`, test.aCategoryExists)
	ctx.Given(`^a category named "([^"]*)" with kind "([^"]*)" exists for the other user$`, test.aCategoryExistsForTheOtherUser)
	ctx.Given(`^an account named "([^"]*)" exists$`, test.anAccountExists)
	ctx.Given(`^an account named "([^"]*)" exists for the other user$`, test.anAccountExistsForTheOtherUser)
	ctx.Given(`^a transaction of "([^"]*)" on "([^"]*)" in category "([^"]*)" exists$`, test.aTransactionExists)
	ctx.Given(`^a transaction of "([^"]*)" on "([^"]*)" in category "([^"]*)" exists for the other user$`, test.aTransactionExistsForTheOtherUser)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should be the current user id$`, test.theResponseFieldShouldBeTheCurrentUserID)
	ctx.Then(`^the response should have (\d+) items$`, test.theResponseShouldHaveItems)
	ctx.Then(`^the response list "([^"]*)" should have (\d+) items$`, test.theResponseListShouldHaveItems)
	ctx.Then(`^the summary for category "([^"]*)" should total "([^"]*)"$`, test.theSummaryForCategoryShouldTotal)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.currentUserID = uuid.Nil
	t.otherUserID = uuid.Nil
	t.categoryIDs = make(map[string]int64)
	t.lastCategoryID = 0
	t.accountIDs = make(map[string]int64)
	t.lastAccountID = 0
	t.response = nil

	if t.db != nil {
		if err := t.db.ClearDB(); err != nil {
			panic(fmt.Sprintf("failed to clear test database: %v", err))
		}
	}
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			cfg := config.Load()
			cfg.JWT.Secret = testJWTSecret
			cfg.Server.Environment = "test"

			injector := dependency.NewInjector(cfg, testDB.DbConn, mock.NewRedis())
			engine := injector.Router.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}
			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}
