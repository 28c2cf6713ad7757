package config

import (
	"log"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port int `default:"8080"`

	SaavnBaseURL  string `default:"https://saavn.me"`
	ExtractorHost string

	// ThrottleMs is the fixed delay awaited before every outward catalog call.
	ThrottleMs int `default:"100"`
	// MaxInflight caps concurrent catalog requests across the process.
	MaxInflight       int `default:"10"`
	SearchCacheSize   int `default:"256"`
	DetailCacheSize   int `default:"512"`
	RequestTimeoutSec int `default:"20"`
	TopN              int `default:"10"`

	// SaavnOffline and ExtractorOffline replace network access with fixture
	// data for deterministic runs.
	SaavnOffline     bool
	ExtractorOffline bool
}

func ProvideConfig() Config {
	var cfg Config
	err := envconfig.Process("cochlea", &cfg)
	if err != nil {
		log.Fatal(err.Error())
	}
	return cfg
}

var Options = ProvideConfig
