package metadomain

// Ad é um anúncio com o criativo expandido, usado para resolver a URL de
// destino de cada campanha.
type Ad struct {
	ID         string    `json:"id"`
	CampaignID string    `json:"campaign_id"`
	Creative   *Creative `json:"creative"`
}

type Creative struct {
	LinkURL         string           `json:"link_url"`
	ObjectStorySpec *ObjectStorySpec `json:"object_story_spec"`
	AssetFeedSpec   *AssetFeedSpec   `json:"asset_feed_spec"`
}

type ObjectStorySpec struct {
	LinkData  *LinkData  `json:"link_data"`
	VideoData *VideoData `json:"video_data"`
}

type LinkData struct {
	Link string `json:"link"`
}

type VideoData struct {
	CallToAction *CallToAction `json:"call_to_action"`
}

type CallToAction struct {
	Value *CallToActionValue `json:"value"`
}

type CallToActionValue struct {
	Link string `json:"link"`
}

type AssetFeedSpec struct {
	LinkURLs []LinkURL `json:"link_urls"`
}

type LinkURL struct {
	WebsiteURL string `json:"website_url"`
}

// DestinationURL resolve a URL de destino do criativo. Ordem de prioridade:
// link_url direto, link de link_data, link do call_to_action de video_data e,
// por último, a primeira URL do asset_feed_spec. Retorna vazio quando o
// criativo não carrega URL em nenhum dos campos.
func (c *Creative) DestinationURL() string {
	if c == nil {
		return ""
	}

	if c.LinkURL != "" {
		return c.LinkURL
	}

	if spec := c.ObjectStorySpec; spec != nil {
		if spec.LinkData != nil && spec.LinkData.Link != "" {
			return spec.LinkData.Link
		}

		if spec.VideoData != nil && spec.VideoData.CallToAction != nil &&
			spec.VideoData.CallToAction.Value != nil && spec.VideoData.CallToAction.Value.Link != "" {
			return spec.VideoData.CallToAction.Value.Link
		}
	}

	if c.AssetFeedSpec != nil && len(c.AssetFeedSpec.LinkURLs) > 0 {
		return c.AssetFeedSpec.LinkURLs[0].WebsiteURL
	}

	return ""
}
