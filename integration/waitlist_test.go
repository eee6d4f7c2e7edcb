package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/evervow/leads-api/config"
	"github.com/evervow/leads-api/config/router"
	"github.com/evervow/leads-api/domain"
	"github.com/evervow/leads-api/internal/log"
	"github.com/evervow/leads-api/internal/models"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type WaitlistAPITestSuite struct {
	suite.Suite
	db        *gorm.DB
	server    *httptest.Server
	baseURL   string
	logger    *log.Logger
	appConfig *config.ApplicationConfig
}

func (suite *WaitlistAPITestSuite) SetupSuite() {
	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(models.ModelRegistry...)
	suite.Require().NoError(err)

	suite.logger = log.NewLoggerWithJSONOutput()

	suite.appConfig = &config.ApplicationConfig{
		DB:     suite.db,
		Logger: suite.logger,
	}

	suite.appConfig.RouterService = router.CreateRouterService(suite.logger, nil, &router.RouterConfig{
		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
		RequestTimeout:    30 * time.Second,
	})

	domain.SetupCoreDomain(suite.appConfig)

	suite.server = httptest.NewServer(suite.appConfig.RouterService.GetEngine())
	suite.baseURL = suite.server.URL
}

func (suite *WaitlistAPITestSuite) TearDownSuite() {
	if suite.server != nil {
		suite.server.Close()
	}
	if suite.db != nil {
		sqlDB, _ := suite.db.DB()
		sqlDB.Close()
	}
}

func (suite *WaitlistAPITestSuite) SetupTest() {
	suite.db.Exec("DELETE FROM waitlist_submissions")
	suite.db.Exec("DELETE FROM vendor_pre_registrations")
}

func (suite *WaitlistAPITestSuite) postJSON(path string, body any) (*http.Response, map[string]any) {
	jsonBody, err := json.Marshal(body)
	suite.Require().NoError(err)

	resp, err := http.Post(suite.baseURL+path, "application/json", bytes.NewBuffer(jsonBody))
	suite.Require().NoError(err)
	defer resp.Body.Close()

	var decoded map[string]any
	suite.Require().NoError(json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func (suite *WaitlistAPITestSuite) TestHealthCheck() {
	resp, err := http.Get(suite.baseURL + "/health")
	suite.Require().NoError(err)
	defer resp.Body.Close()

	suite.Equal(http.StatusOK, resp.StatusCode)

	var response map[string]any
	suite.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))

	suite.Equal(true, response["ok"])

	data := response["data"].(map[string]any)
	suite.Contains(data, "database")
	suite.Contains(data, "uptime")

	suite.Equal(float64(1), data["database"])
}

func (suite *WaitlistAPITestSuite) TestJoinWaitlistNormalizesSubmission() {
	resp, body := suite.postJSON("/v1/waitlist", map[string]string{
		"email":    "A@B.com",
		"fullName": " Jane Doe ",
		"role":     "Vendor",
	})

	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Equal(true, body["ok"])
	suite.NotContains(body, "error")

	var submissions []models.WaitlistSubmission
	suite.Require().NoError(suite.db.Find(&submissions).Error)
	suite.Require().Len(submissions, 1)

	suite.Equal("a@b.com", submissions[0].Email)
	suite.Require().NotNil(submissions[0].FullName)
	suite.Equal("Jane Doe", *submissions[0].FullName)
	suite.Equal(models.RoleVendor, submissions[0].Role)
}

func (suite *WaitlistAPITestSuite) TestJoinWaitlistCoercesUnknownRole() {
	resp, body := suite.postJSON("/v1/waitlist", map[string]string{
		"email": "guest@example.com",
		"role":  "Wedding Planner",
	})

	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Equal(true, body["ok"])

	var submission models.WaitlistSubmission
	suite.Require().NoError(suite.db.First(&submission).Error)
	suite.Equal(models.RoleOther, submission.Role)
}

func (suite *WaitlistAPITestSuite) TestJoinWaitlistRejectsBadEmail() {
	resp, body := suite.postJSON("/v1/waitlist", map[string]string{
		"email": "not-an-email",
	})

	suite.Equal(http.StatusBadRequest, resp.StatusCode)
	suite.Equal("Invalid email", body["error"])
	suite.NotContains(body, "ok")

	var count int64
	suite.db.Model(&models.WaitlistSubmission{}).Count(&count)
	suite.Equal(int64(0), count)
}

func (suite *WaitlistAPITestSuite) TestJoinWaitlistRejectsMalformedBody() {
	resp, err := http.Post(suite.baseURL+"/v1/waitlist", "application/json", bytes.NewBufferString("{not json"))
	suite.Require().NoError(err)
	defer resp.Body.Close()

	suite.Equal(http.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	suite.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	suite.Equal("Bad request", body["error"])
}

func (suite *WaitlistAPITestSuite) TestJoinWaitlistAllowsDuplicates() {
	payload := map[string]string{"email": "repeat@example.com", "role": "User"}

	resp, _ := suite.postJSON("/v1/waitlist", payload)
	suite.Equal(http.StatusOK, resp.StatusCode)

	resp, _ = suite.postJSON("/v1/waitlist", payload)
	suite.Equal(http.StatusOK, resp.StatusCode)

	// Two identical submissions mean two rows; dedup is explicitly not a
	// feature of the capture flow.
	var count int64
	suite.db.Model(&models.WaitlistSubmission{}).Count(&count)
	suite.Equal(int64(2), count)
}

func (suite *WaitlistAPITestSuite) TestJoinWaitlistStoresBlankNameAsNull() {
	resp, _ := suite.postJSON("/v1/waitlist", map[string]string{
		"email":    "guest@example.com",
		"fullName": "   ",
	})

	suite.Equal(http.StatusOK, resp.StatusCode)

	var submission models.WaitlistSubmission
	suite.Require().NoError(suite.db.First(&submission).Error)
	suite.Nil(submission.FullName)
}

func TestWaitlistAPITestSuite(t *testing.T) {
	suite.Run(t, new(WaitlistAPITestSuite))
}
