package config

type TelegramConfig struct {
	ApiToken string `yaml:"token"`
	Owner    int64  `yaml:"owner-id"`
}

func (t *TelegramConfig) Token() string {
	return t.ApiToken
}

// OwnerID is the only telegram user the bot answers. Zero serves everyone.
func (t *TelegramConfig) OwnerID() int64 {
	return t.Owner
}
