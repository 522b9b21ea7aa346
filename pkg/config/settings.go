package config

// Settings configures form controllers and the formcheck CLI.
type Settings struct {
	// ScrollToField asks the focuser to bring a failing field into view.
	ScrollToField bool `env:"FORMKIT_SCROLL_TO_FIELD" envDefault:"false"`

	// Language selects the message catalog language.
	Language string `env:"FORMKIT_LANGUAGE" envDefault:"en"`

	// MessagesPath is a file or directory with localized message catalogs.
	MessagesPath string `env:"FORMKIT_MESSAGES_PATH"`

	LogLevel  string `env:"FORMKIT_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"FORMKIT_LOG_FORMAT" envDefault:"text"`

	// Environment picks logger defaults: development, staging or production.
	Environment string `env:"FORMKIT_ENV" envDefault:"development"`
}

// LoadSettings returns the Settings parsed from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := Load(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}
