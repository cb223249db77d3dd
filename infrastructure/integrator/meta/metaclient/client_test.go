package metaclient

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
)

func newTestClient(serverURL string) Client {
	cfg := &config.Config{}
	cfg.Meta.URL = serverURL
	cfg.Meta.RequestTimeoutSeconds = 5

	return NewClient(cfg)
}

func TestGetAccountInsights_FollowsPagination(t *testing.T) {
	var requests []*http.Request

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.Clone(r.Context()))

		if r.URL.Query().Get("after") == "" {
			fmt.Fprint(w, `{
				"data": [{"spend": "10", "impressions": "1000"}],
				"paging": {"cursors": {"before": "aaa", "after": "bbb"}, "next": "https://graph.test/next"}
			}`)
			return
		}

		fmt.Fprint(w, `{
			"data": [{"spend": "5", "impressions": "500"}],
			"paging": {"cursors": {"before": "bbb", "after": "ccc"}}
		}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	rows, err := client.GetAccountInsights("token-123", "123", "last_30d")

	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "10", rows[0].Spend)
	assert.Equal(t, "5", rows[1].Spend)

	assert.Len(t, requests, 2)

	first := requests[0]
	assert.Equal(t, "/act_123/insights", first.URL.Path)
	assert.Equal(t, "token-123", first.URL.Query().Get("access_token"))
	assert.Equal(t, "last_30d", first.URL.Query().Get("date_preset"))
	assert.Equal(t, "500", first.URL.Query().Get("limit"))
	assert.Empty(t, first.URL.Query().Get("after"))

	second := requests[1]
	assert.Equal(t, "bbb", second.URL.Query().Get("after"))
}

func TestGetAccountInsights_StopsWithoutNextLink(t *testing.T) {
	var totalRequests int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		totalRequests++

		// Cursor after presente, mas sem "next": a paginação deve parar aqui.
		fmt.Fprint(w, `{
			"data": [{"spend": "1"}],
			"paging": {"cursors": {"before": "aaa", "after": "bbb"}}
		}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	rows, err := client.GetAccountInsights("token", "act_1", "last_7d")

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, 1, totalRequests)
}

func TestGetAdAccountsByBusinessID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/999/owned_ad_accounts", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("limit"))

		fmt.Fprint(w, `{
			"data": [
				{"id": "act_1", "name": "Loja A", "currency": "BRL"},
				{"id": "act_2", "name": "Loja B", "currency": "USD"}
			]
		}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	accounts, err := client.GetAdAccountsByBusinessID("token", "999")

	assert.NoError(t, err)
	assert.Len(t, accounts, 2)
	assert.Equal(t, "act_1", accounts[0].ID)
	assert.Equal(t, "Loja A", accounts[0].Name)
	assert.Equal(t, "USD", accounts[1].Currency)
}

func TestGetAdAccountInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/act_123", r.URL.Path)

		fmt.Fprint(w, `{
			"id": "act_123",
			"name": "Loja A",
			"currency": "BRL",
			"account_status": 1,
			"amount_spent": "1050",
			"balance": "200"
		}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	info, err := client.GetAdAccountInfo("token", "123")

	assert.NoError(t, err)
	assert.Equal(t, "act_123", info.ID)
	assert.Equal(t, "Loja A", info.Name)
	assert.Equal(t, 1, info.AccountStatus)
	assert.Equal(t, "200", info.Balance)
}

func TestGetCampaignInsights_SetsCampaignLevel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "campaign", r.URL.Query().Get("level"))

		fmt.Fprint(w, `{"data": [{"campaign_id": "c1", "campaign_name": "Campanha 1"}]}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	rows, err := client.GetCampaignInsights("token", "1", "last_30d")

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "c1", rows[0].CampaignID)
}

func TestGetDailyInsights_SetsTimeIncrement(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("time_increment"))

		fmt.Fprint(w, `{"data": [{"date_start": "2024-01-10", "spend": "3"}]}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	rows, err := client.GetDailyInsights("token", "1", "last_14d")

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "2024-01-10", rows[0].DateStart)
}

func TestGetAds(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/act_1/ads", r.URL.Path)

		fmt.Fprint(w, `{
			"data": [
				{"id": "ad1", "campaign_id": "c1", "creative": {"link_url": "https://x.test"}},
				{"id": "ad2", "campaign_id": "c2"}
			]
		}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	ads, err := client.GetAds("token", "1")

	assert.NoError(t, err)
	assert.Len(t, ads, 2)
	assert.Equal(t, "https://x.test", ads[0].Creative.DestinationURL())
	assert.Nil(t, ads[1].Creative)
}

func TestDoGet_UpstreamErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{
			"error": {
				"message": "Invalid OAuth access token.",
				"type": "OAuthException",
				"code": 190,
				"fbtrace_id": "AbCdEf"
			}
		}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	rows, err := client.GetAccountInsights("token-invalido", "1", "last_30d")

	assert.Nil(t, rows)
	assert.Error(t, err)

	var upstreamErr *metadomain.UpstreamError
	assert.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, "Invalid OAuth access token.", upstreamErr.Message())
	assert.Equal(t, 190, upstreamErr.Details.Code)
}

func TestDoGet_UnexpectedStatusWithoutEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, `upstream unavailable`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GetAdAccountInfo("token", "1")

	assert.Error(t, err)

	var upstreamErr *metadomain.UpstreamError
	assert.False(t, errors.As(err, &upstreamErr))
	assert.Contains(t, err.Error(), "unexpected status")
}
