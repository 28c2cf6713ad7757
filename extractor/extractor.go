// Package extractor talks to the external text model that turns a story into
// a musical FeatureSet. The model is allowed to be down, slow, or wrong: any
// failure degrades to the fixed default FeatureSet and is never surfaced.
package extractor

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mager/cochlea/cochlea"
	"github.com/mager/cochlea/config"
	"go.uber.org/zap"
)

type Client struct {
	http    *resty.Client
	log     *zap.SugaredLogger
	offline bool
}

type analyzeRequest struct {
	Text string `json:"text"`
}

func New(host string, offline bool, timeout time.Duration, log *zap.SugaredLogger) *Client {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		http:    resty.New().SetBaseURL(host).SetTimeout(timeout),
		log:     log,
		offline: offline,
	}
}

func ProvideExtractor(cfg config.Config, log *zap.SugaredLogger) *Client {
	return New(cfg.ExtractorHost, cfg.ExtractorOffline, time.Duration(cfg.RequestTimeoutSec)*time.Second, log)
}

var Options = ProvideExtractor

// ExtractFeatures returns the FeatureSet for text. It never returns an
// error: unavailability, a bad status, a malformed payload, or an empty
// extraction all fall back to cochlea.DefaultFeatureSet.
func (c *Client) ExtractFeatures(ctx context.Context, text string) cochlea.FeatureSet {
	if c.offline || c.http.BaseURL == "" {
		c.log.Debugw("extractor offline: using default feature set")
		return cochlea.DefaultFeatureSet()
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(analyzeRequest{Text: text}).
		Post("/analyze")
	if err != nil {
		c.log.Infow("extractor unavailable, using defaults", "err", err)
		return cochlea.DefaultFeatureSet()
	}
	if resp.StatusCode() != http.StatusOK {
		c.log.Infow("extractor bad status, using defaults", "status", resp.StatusCode())
		return cochlea.DefaultFeatureSet()
	}

	var features cochlea.FeatureSet
	if err := json.Unmarshal(resp.Body(), &features); err != nil {
		c.log.Infow("extractor malformed payload, using defaults", "err", err)
		return cochlea.DefaultFeatureSet()
	}
	if features.Empty() {
		return cochlea.DefaultFeatureSet()
	}
	return features
}
