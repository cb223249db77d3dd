package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func doRequest(h http.Handler, target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, target, nil)

	h.ServeHTTP(recorder, request)

	return recorder
}

func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &apiErr))

	return apiErr
}

func TestBusinessSummary_MissingToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockReporter(ctrl)

	recorder := doRequest(BusinessSummary(service), "/v1/business/summary?business_id=999")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	apiErr := decodeError(t, recorder)
	assert.Equal(t, apiErrors.ErrMissingRequiredData, apiErr.Code)
	assert.Contains(t, apiErr.Message, "token")
}

func TestBusinessSummary_MissingBusinessID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockReporter(ctrl)

	recorder := doRequest(BusinessSummary(service), "/v1/business/summary?token=abc")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	apiErr := decodeError(t, recorder)
	assert.Equal(t, apiErrors.ErrMissingRequiredData, apiErr.Code)
	assert.Contains(t, apiErr.Message, "business_id")
}

func TestBusinessSummary_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockReporter(ctrl)
	service.EXPECT().
		BusinessSummary("abc", "999", "last_30d").
		Return([]domain.AccountSummary{
			{AccountID: "act_1", AccountName: "Loja A", Spend: 15},
		}, nil)

	recorder := doRequest(BusinessSummary(service), "/v1/business/summary?token=abc&business_id=999")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var response struct {
		Data []domain.AccountSummary `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Len(t, response.Data, 1)
	assert.Equal(t, "Loja A", response.Data[0].AccountName)
}

func TestBusinessSummary_ForwardsDatePreset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockReporter(ctrl)
	service.EXPECT().
		BusinessSummary("abc", "999", "last_7d").
		Return([]domain.AccountSummary{}, nil)

	recorder := doRequest(BusinessSummary(service), "/v1/business/summary?token=abc&business_id=999&date_preset=last_7d")

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestBusinessSummary_UpstreamErrorBecomesBadRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockReporter(ctrl)
	service.EXPECT().
		BusinessSummary("abc", "999", "last_30d").
		Return(nil, &metadomain.UpstreamError{
			Details: metadomain.ErrorDetails{
				Message: "Invalid OAuth access token.",
				Type:    "OAuthException",
				Code:    190,
			},
		})

	recorder := doRequest(BusinessSummary(service), "/v1/business/summary?token=abc&business_id=999")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	apiErr := decodeError(t, recorder)
	assert.Equal(t, apiErrors.ErrUpstreamAPI, apiErr.Code)
	assert.Equal(t, "Invalid OAuth access token.", apiErr.Message)
}

func TestBusinessSummary_InternalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockReporter(ctrl)
	service.EXPECT().
		BusinessSummary("abc", "999", "last_30d").
		Return(nil, errors.New("connection refused"))

	recorder := doRequest(BusinessSummary(service), "/v1/business/summary?token=abc&business_id=999")

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	apiErr := decodeError(t, recorder)
	assert.Equal(t, apiErrors.ErrInternalServer, apiErr.Code)
}

func TestAccountSummary_EmptyObjectWhenNoData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockReporter(ctrl)
	service.EXPECT().
		AccountSummary("abc", "123", "last_30d").
		Return(nil, nil)

	recorder := doRequest(AccountSummary(service), "/v1/account/summary?token=abc&account_id=123")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{}`, recorder.Body.String())
}

func TestAccountSummary_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockReporter(ctrl)
	service.EXPECT().
		AccountSummary("abc", "123", "last_30d").
		Return(&domain.AccountSummary{
			AccountID:   "act_123",
			AccountName: "Loja A",
			Spend:       15,
			Leads:       2,
			CPL:         7.5,
		}, nil)

	recorder := doRequest(AccountSummary(service), "/v1/account/summary?token=abc&account_id=123")

	assert.Equal(t, http.StatusOK, recorder.Code)

	var summary domain.AccountSummary
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &summary))
	assert.Equal(t, "act_123", summary.AccountID)
	assert.Equal(t, 7.5, summary.CPL)
}

func TestBusinessAccounts_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockReporter(ctrl)
	service.EXPECT().
		ListAccounts("abc", "999").
		Return([]domain.AdAccount{
			{ID: "act_1", Name: "Loja A", Currency: "BRL"},
		}, nil)

	recorder := doRequest(BusinessAccounts(service), "/v1/business/accounts?token=abc&business_id=999")

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Data []domain.AdAccount `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Len(t, response.Data, 1)
	assert.Equal(t, "act_1", response.Data[0].ID)
}

func TestAccountDaily_UsesDailyDefaultPreset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockReporter(ctrl)
	service.EXPECT().
		AccountDaily("abc", "123", "last_14d").
		Return([]domain.DailyRecord{
			{DateStart: "2024-01-10", Spend: 3},
		}, nil)

	recorder := doRequest(AccountDaily(service), "/v1/account/daily?token=abc&account_id=123")

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestAccountInfo_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockReporter(ctrl)
	service.EXPECT().
		AccountInfo("abc", "123").
		Return(&metadomain.AdAccountInfo{
			ID:       "act_123",
			Name:     "Loja A",
			Currency: "BRL",
			Balance:  "200",
		}, nil)

	recorder := doRequest(AccountInfo(service), "/v1/account?token=abc&account_id=123")

	assert.Equal(t, http.StatusOK, recorder.Code)

	var info metadomain.AdAccountInfo
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &info))
	assert.Equal(t, "act_123", info.ID)
	assert.Equal(t, "200", info.Balance)
}
