package metaclient

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
)

// Client expõe as consultas da Graph API usadas pelo dashboard. O token de
// acesso é fornecido pelo chamador em cada requisição e repassado como query
// param, sem gestão de tokens no servidor.
type Client interface {
	GetAdAccountsByBusinessID(token, businessID string) ([]metadomain.AdAccount, error)
	GetAdAccountInfo(token, accountID string) (*metadomain.AdAccountInfo, error)
	GetAccountInsights(token, accountID, datePreset string) ([]metadomain.InsightRow, error)
	GetCampaignInsights(token, accountID, datePreset string) ([]metadomain.InsightRow, error)
	GetDailyInsights(token, accountID, datePreset string) ([]metadomain.InsightRow, error)
	GetAds(token, accountID string) ([]metadomain.Ad, error)
}

type MetaClient struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Meta.RequestTimeoutSeconds) * time.Second,
		},
	}
}

// doGet executa um GET único contra a Graph API e devolve o corpo bruto.
// Um envelope {"error": {...}} na resposta vira *metadomain.UpstreamError,
// independente do status HTTP.
func (c *MetaClient) doGet(token, path string, params url.Values) ([]byte, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("access_token", token)

	endpoint := c.cfg.Meta.URL + "/" + path + "?" + params.Encode()

	resp, err := c.httpClient.Get(endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "meta: request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "meta: error reading response body")
	}

	var errResponse metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errResponse); err == nil && errResponse.Error != nil {
		return nil, &metadomain.UpstreamError{Details: *errResponse.Error}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("meta: unexpected status %s", resp.Status)
	}

	return body, nil
}
