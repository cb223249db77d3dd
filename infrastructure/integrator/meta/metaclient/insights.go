package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
)

const (
	accountInsightFields  = "spend,impressions,reach,clicks,actions"
	campaignInsightFields = "campaign_name,campaign_id,spend,impressions,reach,clicks,actions,cpm,ctr,cpc"
	dailyInsightFields    = "spend,impressions,clicks,actions,date_start"

	insightsPageLimit = 500
)

// GetAccountInsights busca as linhas de insights agregadas no nível da conta
// para a janela relativa informada (date_preset é repassado sem interpretação).
func (c *MetaClient) GetAccountInsights(token, accountID, datePreset string) ([]metadomain.InsightRow, error) {
	params := url.Values{}
	params.Add("fields", accountInsightFields)
	params.Add("date_preset", datePreset)

	return c.getInsights(token, accountID, params)
}

// GetCampaignInsights busca insights com quebra por campanha.
func (c *MetaClient) GetCampaignInsights(token, accountID, datePreset string) ([]metadomain.InsightRow, error) {
	params := url.Values{}
	params.Add("fields", campaignInsightFields)
	params.Add("level", "campaign")
	params.Add("date_preset", datePreset)

	return c.getInsights(token, accountID, params)
}

// GetDailyInsights busca insights com granularidade de um dia por linha.
func (c *MetaClient) GetDailyInsights(token, accountID, datePreset string) ([]metadomain.InsightRow, error) {
	params := url.Values{}
	params.Add("fields", dailyInsightFields)
	params.Add("date_preset", datePreset)
	params.Add("time_increment", "1")

	return c.getInsights(token, accountID, params)
}

func (c *MetaClient) getInsights(token, accountID string, params url.Values) ([]metadomain.InsightRow, error) {
	path := fmt.Sprintf("%s/insights", metadomain.NormalizeAccountID(accountID))
	params.Add("limit", strconv.Itoa(insightsPageLimit))

	rows := make([]metadomain.InsightRow, 0)
	err := c.fetchAllPages(token, path, params, func(data json.RawMessage) error {
		var page []metadomain.InsightRow
		if err := json.Unmarshal(data, &page); err != nil {
			return errors.Wrap(err, "meta: error decoding insights page")
		}

		rows = append(rows, page...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rows, nil
}
