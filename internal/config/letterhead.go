package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Letterhead describes the static document header printed on every protocol.
type Letterhead struct {
	AddressLeft  []string `mapstructure:"addressLeft"`
	AddressRight []string `mapstructure:"addressRight"`
	LogoWidthMM  float64  `mapstructure:"logoWidthMM"`
	Title        string   `mapstructure:"title"`
}

func DefaultLetterhead() Letterhead {
	return Letterhead{
		AddressLeft: []string{
			"<FIRMENNAME>",
			"<STANDORT-BEZEICHNUNG>",
			"<STRASSE> <HAUSNUMMER>",
			"<PLZ> <ORT>",
			"Tel.: <LAENDERVORWAHL> <TELEFONNUMMER>",
		},
		AddressRight: []string{
			"<FIRMENNAME>",
			"<STANDORT-BEZEICHNUNG>",
			"<STRASSE> <HAUSNUMMER>",
			"<PLZ> <ORT>",
			"Tel.: <LAENDERVORWAHL> <TELEFONNUMMER>",
		},
		LogoWidthMM: 40,
		Title:       "Seriennummernprotokoll",
	}
}

// LoadLetterhead reads the letterhead YAML file referenced by the application
// config. A missing file falls back to the placeholder defaults.
func LoadLetterhead(cfg Config) (Letterhead, error) {
	v := viper.New()

	if cfg.LetterheadFile != "" {
		v.SetConfigFile(cfg.LetterheadFile)
	} else {
		v.SetConfigName("letterhead")
		v.SetConfigType("yml")
		v.AddConfigPath("/etc/serialtrack")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("SERIALTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultLetterhead(), nil
		}
		if os.IsNotExist(err) {
			return DefaultLetterhead(), nil
		}
		return Letterhead{}, err
	}

	lh := DefaultLetterhead()
	if err := v.UnmarshalKey("letterhead", &lh); err != nil {
		return Letterhead{}, err
	}
	return lh, nil
}
