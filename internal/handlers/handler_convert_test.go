package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"hmrc-rates/internal/apperrors"
	"hmrc-rates/internal/core/domain"
	portssvc "hmrc-rates/internal/core/ports/services"
	"hmrc-rates/internal/dto"
	"hmrc-rates/internal/handlers"
	"hmrc-rates/internal/platform/config"
)

// --- Mock ConverterService ---
type MockConverterService struct {
	mock.Mock
}

func (m *MockConverterService) Convert(ctx context.Context, value string, date time.Time) (domain.GBP, error) {
	args := m.Called(ctx, value, date)
	return args.Get(0).(domain.GBP), args.Error(1)
}

func (m *MockConverterService) ConvertAmount(ctx context.Context, amount decimal.Decimal, currency string, date time.Time) (domain.GBP, error) {
	args := m.Called(ctx, amount, currency, date)
	return args.Get(0).(domain.GBP), args.Error(1)
}

func (m *MockConverterService) RateInForce(ctx context.Context, currency string, date time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, currency, date)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockConverterService) Periods(ctx context.Context) []time.Time {
	args := m.Called(ctx)
	return args.Get(0).([]time.Time)
}

// Ensure mock implements the interface
var _ portssvc.ConverterSvcFacade = (*MockConverterService)(nil)

// --- Test Suite ---
type ConvertHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockConverterService
}

func (suite *ConvertHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockService = new(MockConverterService)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &config.Config{}, &portssvc.ServiceContainer{
		Converter: suite.mockService,
	})
}

func (suite *ConvertHandlerTestSuite) postConvert(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/convert", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ConvertHandlerTestSuite) TestConvert_CombinedForm() {
	expectedDate := time.Date(2025, time.August, 15, 0, 0, 0, 0, time.UTC)
	gbp := domain.NewGBP(decimal.RequireFromString("73.85"))

	suite.mockService.On("Convert", mock.Anything, "100.00 USD", expectedDate).Return(gbp, nil).Once()

	w := suite.postConvert(`{"value":"100.00 USD","date":"2025-08-15"}`)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ConvertResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("£73.85", resp.GBP)
	suite.True(resp.Amount.Equal(decimal.RequireFromString("73.85")))
	suite.Equal("USD", resp.Currency)
	suite.Equal("2025-08-15", resp.Date)

	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ConvertHandlerTestSuite) TestConvert_SplitForm() {
	expectedDate := time.Date(2025, time.August, 15, 0, 0, 0, 0, time.UTC)
	gbp := domain.NewGBP(decimal.RequireFromString("73.85"))

	suite.mockService.On("ConvertAmount", mock.Anything, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.RequireFromString("100.00"))
	}), "USD", expectedDate).Return(gbp, nil).Once()

	w := suite.postConvert(`{"amount":"100.00","currency":"usd","date":"2025-08-15"}`)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ConvertResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("£73.85", resp.GBP)
	suite.Equal("USD", resp.Currency)

	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ConvertHandlerTestSuite) TestConvert_MissingDate() {
	w := suite.postConvert(`{"value":"100.00 USD"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ConvertHandlerTestSuite) TestConvert_InvalidDate() {
	w := suite.postConvert(`{"value":"100.00 USD","date":"15/08/2025"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "15/08/2025")
}

func (suite *ConvertHandlerTestSuite) TestConvert_NeitherForm() {
	w := suite.postConvert(`{"date":"2025-08-15"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ConvertHandlerTestSuite) TestConvert_InvalidInputFormat() {
	suite.mockService.On("Convert", mock.Anything, "100.00", mock.Anything).
		Return(domain.GBP{}, apperrors.ErrInvalidInputFormat).Once()

	w := suite.postConvert(`{"value":"100.00","date":"2025-08-15"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ConvertHandlerTestSuite) TestConvert_CurrencyNotFound() {
	suite.mockService.On("Convert", mock.Anything, "100.00 XXX", mock.Anything).
		Return(domain.GBP{}, apperrors.ErrCurrencyNotFound).Once()

	w := suite.postConvert(`{"value":"100.00 XXX","date":"2025-08-15"}`)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ConvertHandlerTestSuite) TestConvert_DateOutOfRange() {
	suite.mockService.On("Convert", mock.Anything, "100.00 USD", mock.Anything).
		Return(domain.GBP{}, apperrors.ErrDateOutOfRange).Once()

	w := suite.postConvert(`{"value":"100.00 USD","date":"2020-01-01"}`)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ConvertHandlerTestSuite) TestGetRate() {
	expectedDate := time.Date(2025, time.August, 15, 0, 0, 0, 0, time.UTC)
	rate := decimal.RequireFromString("1.3541")

	suite.mockService.On("RateInForce", mock.Anything, "USD", expectedDate).Return(rate, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rates/usd?date=2025-08-15", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.RateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("USD", resp.Currency)
	suite.True(resp.Rate.Equal(rate))
	suite.Equal("2025-08-15", resp.Date)

	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ConvertHandlerTestSuite) TestGetRate_NotFound() {
	suite.mockService.On("RateInForce", mock.Anything, "XXX", mock.Anything).
		Return(decimal.Decimal{}, apperrors.ErrCurrencyNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rates/XXX?date=2025-08-15", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ConvertHandlerTestSuite) TestGetRate_InvalidDate() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/rates/USD?date=yesterday", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ConvertHandlerTestSuite) TestListPeriods() {
	suite.mockService.On("Periods", mock.Anything).Return([]time.Time{
		time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC),
	}).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/periods", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.PeriodsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal([]string{"2025-07-01", "2025-08-01"}, resp.Periods)

	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ConvertHandlerTestSuite) TestHealth() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func TestConvertHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ConvertHandlerTestSuite))
}
