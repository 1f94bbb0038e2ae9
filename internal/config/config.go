package config

import (
	"fmt"

	"github.com/Onwuagba/Telinga/pkg/gemini"
	"github.com/Onwuagba/Telinga/pkg/mq"
	"github.com/Onwuagba/Telinga/pkg/mysql"
	"github.com/Onwuagba/Telinga/pkg/nylas"
	"github.com/Onwuagba/Telinga/pkg/twilio"
	"github.com/spf13/viper"
)

type Config struct {
	API      API           `mapstructure:"api"`
	Database mysql.Config  `mapstructure:"database"`
	RabbitMQ mq.Config     `mapstructure:"rabbitmq"`
	Twilio   twilio.Config `mapstructure:"twilio"`
	Nylas    nylas.Config  `mapstructure:"nylas"`
	Gemini   gemini.Config `mapstructure:"gemini"`
	Webhooks Webhooks      `mapstructure:"webhooks"`
	Respond  Respond       `mapstructure:"respond"`
}

type API struct {
	Port string `mapstructure:"port"`
}

type Webhooks struct {
	// SiteDomain is the externally reachable base URL callbacks are
	// registered under, e.g. "https://app.example.com/".
	SiteDomain string `mapstructure:"site_domain"`
	// SkipVerify disables signature verification. Development only.
	SkipVerify bool `mapstructure:"skip_verify"`
}

type Respond struct {
	DefaultLanguage  string `mapstructure:"default_language"`
	EscalationNumber string `mapstructure:"escalation_number"`
}

func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	err = viper.ReadInConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Respond.DefaultLanguage == "" {
		cfg.Respond.DefaultLanguage = "english"
	}

	return cfg, nil
}
