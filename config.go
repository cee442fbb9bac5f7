package ettndcsdk

type Config struct {
	ApiKey       string
	BaseURL      string
	AuthURL      string
	BotToken     string
	AccountIds   []string
	FunctionName string
}

func (cfg *Config) SetApiKey(apiKey string) {
	cfg.ApiKey = apiKey
}

func (cfg *Config) SetBaseUrl(url string) {
	cfg.BaseURL = url
}

func (cfg *Config) SetAuthUrl(url string) {
	cfg.AuthURL = url
}

func (cfg *Config) SetBotToken(token string) {
	cfg.BotToken = token
}

func (cfg *Config) SetAccountIds(accountIds []string) {
	cfg.AccountIds = accountIds
}

func (cfg *Config) SetFunctionName(functionName string) {
	cfg.FunctionName = functionName
}
