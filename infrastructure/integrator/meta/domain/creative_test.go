package metadomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreative_DestinationURL(t *testing.T) {
	tests := []struct {
		name     string
		creative *Creative
		expected string
	}{
		{
			name:     "Criativo nil retorna vazio",
			creative: nil,
			expected: "",
		},
		{
			name:     "Criativo sem nenhuma URL retorna vazio",
			creative: &Creative{},
			expected: "",
		},
		{
			name: "link_url direto tem prioridade máxima",
			creative: &Creative{
				LinkURL: "https://direct.test",
				ObjectStorySpec: &ObjectStorySpec{
					LinkData: &LinkData{Link: "https://linkdata.test"},
				},
			},
			expected: "https://direct.test",
		},
		{
			name: "link_data vem antes do call_to_action de vídeo",
			creative: &Creative{
				ObjectStorySpec: &ObjectStorySpec{
					LinkData: &LinkData{Link: "https://linkdata.test"},
					VideoData: &VideoData{
						CallToAction: &CallToAction{
							Value: &CallToActionValue{Link: "https://video.test"},
						},
					},
				},
			},
			expected: "https://linkdata.test",
		},
		{
			name: "call_to_action de vídeo vem antes do asset_feed_spec",
			creative: &Creative{
				ObjectStorySpec: &ObjectStorySpec{
					VideoData: &VideoData{
						CallToAction: &CallToAction{
							Value: &CallToActionValue{Link: "https://video.test"},
						},
					},
				},
				AssetFeedSpec: &AssetFeedSpec{
					LinkURLs: []LinkURL{{WebsiteURL: "https://feed.test"}},
				},
			},
			expected: "https://video.test",
		},
		{
			name: "asset_feed_spec é o último recurso",
			creative: &Creative{
				AssetFeedSpec: &AssetFeedSpec{
					LinkURLs: []LinkURL{
						{WebsiteURL: "https://x.test"},
						{WebsiteURL: "https://second.test"},
					},
				},
			},
			expected: "https://x.test",
		},
		{
			name: "object_story_spec sem links cai no asset_feed_spec",
			creative: &Creative{
				ObjectStorySpec: &ObjectStorySpec{
					LinkData:  &LinkData{},
					VideoData: &VideoData{},
				},
				AssetFeedSpec: &AssetFeedSpec{
					LinkURLs: []LinkURL{{WebsiteURL: "https://feed.test"}},
				},
			},
			expected: "https://feed.test",
		},
		{
			name: "asset_feed_spec com lista vazia retorna vazio",
			creative: &Creative{
				AssetFeedSpec: &AssetFeedSpec{LinkURLs: []LinkURL{}},
			},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.creative.DestinationURL())
		})
	}
}
