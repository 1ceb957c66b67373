package utils

import (
	"fmt"
	"log"
	"time"

	"educa/config"

	"github.com/go-resty/resty/v2"
	"gorm.io/datatypes"
)

// FetchVideoMeta resolves oEmbed metadata (title, provider, thumbnail) for a
// video URL. Callers treat failures as non-fatal: the video item is stored
// without metadata.
func FetchVideoMeta(videoURL string) (datatypes.JSON, error) {
	client := resty.New()
	client.SetTimeout(5 * time.Second)

	resp, err := client.R().
		SetQueryParam("url", videoURL).
		Get(config.AppConfig.OEmbedEndpoint)
	if err != nil {
		log.Printf("Error fetching video metadata for %s: %v", videoURL, err)
		return nil, err
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("oembed lookup failed, code: %d", resp.StatusCode())
	}

	return datatypes.JSON(resp.Body()), nil
}
