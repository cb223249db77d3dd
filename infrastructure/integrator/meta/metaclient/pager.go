package metaclient

import (
	"encoding/json"
	"net/url"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
)

// pageEnvelope é o envelope padrão das listagens da Graph API.
type pageEnvelope struct {
	Data   json.RawMessage    `json:"data"`
	Paging *metadomain.Paging `json:"paging"`
}

// fetchAllPages percorre a paginação por cursor de um endpoint de listagem,
// entregando o array "data" de cada página ao callback. A iteração continua
// apenas enquanto o envelope trouxer "paging.next" e um cursor "after"; a
// ausência de qualquer um dos dois encerra o loop. Um erro remoto interrompe
// a operação inteira.
func (c *MetaClient) fetchAllPages(token, path string, params url.Values, onPage func(data json.RawMessage) error) error {
	for {
		body, err := c.doGet(token, path, params)
		if err != nil {
			return err
		}

		var envelope pageEnvelope
		if err := json.Unmarshal(body, &envelope); err != nil {
			return errors.Wrap(err, "meta: error decoding page envelope")
		}

		if envelope.Data != nil {
			if err := onPage(envelope.Data); err != nil {
				return err
			}
		}

		if envelope.Paging == nil || envelope.Paging.Next == "" {
			return nil
		}

		after := envelope.Paging.Cursors.After
		if after == "" {
			return nil
		}

		params.Set("after", after)
	}
}
