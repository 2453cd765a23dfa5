// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress  string  `mapstructure:"SERVER_ADDRESS"`
	Environment    string  `mapstructure:"GO_ENV"`
	InterestRate   float64 `mapstructure:"INTEREST_RATE"`
	MinimumBalance float64 `mapstructure:"MINIMUM_BALANCE"`
	AdminPassword  string  `mapstructure:"ADMIN_PASSWORD"`
	SeedDemoClient bool    `mapstructure:"SEED_DEMO_CLIENT"`
}

// Load reads configuration from file or environment variables.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("GO_ENV", "production")
	v.SetDefault("INTEREST_RATE", 0.02)
	v.SetDefault("MINIMUM_BALANCE", 100)
	v.SetDefault("SEED_DEMO_CLIENT", false)

	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = v.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, nil
}

// InterestTerms returns the savings interest rate and the minimum balance
// below which no interest accrues.
func (c Config) InterestTerms() (rate, minimumBalance decimal.Decimal) {
	return decimal.NewFromFloat(c.InterestRate), decimal.NewFromFloat(c.MinimumBalance)
}
