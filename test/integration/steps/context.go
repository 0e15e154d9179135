// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/pocket-ledger/backend/config"
	"github.com/pocket-ledger/backend/internal/infra/dependency"
	"github.com/pocket-ledger/backend/internal/integration/adapters"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/pocket-ledger/backend/internal/integration/persistence/model"
	"github.com/pocket-ledger/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

type testContext struct {
	uri           string
	headers       map[string]string
	client        *http.Client
	response      *response
	db            *mock.Db
	redis         *redis.Client
	timeMock      *mock.Time
	accessToken   string
	currentUserID uuid.UUID
	remembered    map[string]string
}

type response struct {
	status int
	header http.Header
	raw    string
	body   any
}

var (
	serverInit sync.Once
	server     *httptest.Server
	serverErr  error
	testClock  = mock.NewTime()
)

// InitializeTestSuite sets up resources shared by every scenario.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		if err := dto.RegisterValidators(); err != nil {
			panic(err)
		}
	})

	ctx.AfterSuite(func() {
		if server != nil {
			server.Close()
		}
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client:   &http.Client{Timeout: 10 * time.Second},
		db:       mock.NewDb(model.All()...),
		redis:    mock.NewRedis(),
		timeMock: testClock,
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^the current time is "([^"]*)"$`, test.theCurrentTimeIs)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^I am signed up as "([^"]*)"$`, test.iAmSignedUpAs)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.When(`^I send (\d+) "([^"]*)" requests to "([^"]*)" with body:$`, test.iSendRequestsToWithBody)
	ctx.Step(`^I remember the response field "([^"]*)" as "([^"]*)"$`, test.iRememberTheResponseFieldAs)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)
	ctx.Then(`^the response header "([^"]*)" should be "([^"]*)"$`, test.theResponseHeaderShouldBe)
	ctx.Then(`^the response body should be:$`, test.theResponseBodyShouldBe)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
	ctx.Then(`^the db should contain (\d+) soft deleted objects in the "([^"]*)" table$`, test.theDbShouldContainSoftDeletedObjectsInTheTable)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.remembered = make(map[string]string)
	t.accessToken = ""
	t.currentUserID = uuid.Nil
	t.response = nil
	t.timeMock.Reset()

	if err := mock.ClearRedis(t.redis); err != nil {
		return err
	}
	return t.db.ClearDB()
}

func (t *testContext) startServer() error {
	serverInit.Do(func() {
		cfg := config.Load()
		cfg.JWT.Secret = testJWTSecret
		cfg.Ledger.TimeZone = "UTC"
		cfg.RateLimit.MaxAttempts = 5
		cfg.RateLimit.Window = 15 * time.Minute

		injector, err := dependency.NewInjector(cfg, t.db.DbConn, dependency.Options{
			Clock:           t.timeMock,
			RateLimiter:     adapters.NewRedisRateLimiter(t.redis, cfg.RateLimit.MaxAttempts, cfg.RateLimit.Window),
			PasswordService: adapters.NewPasswordServiceWithCost(bcrypt.MinCost),
		})
		if err != nil {
			serverErr = fmt.Errorf("failed to wire the api: %w", err)
			return
		}

		server = httptest.NewServer(injector.Router.Setup("test"))
	})
	if serverErr != nil {
		return serverErr
	}
	t.uri = server.URL
	return nil
}
