package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
)

const adCreativeFields = "campaign_id,creative{object_story_spec,asset_feed_spec,link_url}"

// GetAds lista os anúncios da conta com o criativo expandido, usado para
// resolver a URL de destino de cada campanha.
func (c *MetaClient) GetAds(token, accountID string) ([]metadomain.Ad, error) {
	path := fmt.Sprintf("%s/ads", metadomain.NormalizeAccountID(accountID))

	params := url.Values{}
	params.Add("fields", adCreativeFields)
	params.Add("limit", strconv.Itoa(insightsPageLimit))

	ads := make([]metadomain.Ad, 0)
	err := c.fetchAllPages(token, path, params, func(data json.RawMessage) error {
		var page []metadomain.Ad
		if err := json.Unmarshal(data, &page); err != nil {
			return errors.Wrap(err, "meta: error decoding ads page")
		}

		ads = append(ads, page...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ads, nil
}
