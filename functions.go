package ettndcsdk

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cast"
	tgbotapiK "gopkg.in/telegram-bot-api.v4"
)

type ApiFunction struct {
	Cfg    *Config
	Logger *FaasLogger
}

func New(cfg *Config) *ApiFunction {
	return &ApiFunction{
		Cfg:    cfg,
		Logger: NewLoggerFunction(cfg.FunctionName),
	}
}

func (o *ApiFunction) SendTelegram(text string) error {
	client := &http.Client{}

	if ContainsLike(Mode, text) {
		text = strings.Replace(text, "\n", "", -1)
	} else {
		text = o.Cfg.FunctionName + " >>> " + time.Now().Format(time.RFC3339) + " >>>>> " + text
	}

	for _, e := range o.Cfg.AccountIds {
		botUrl := fmt.Sprintf("https://api.telegram.org/bot"+o.Cfg.BotToken+"/sendMessage?chat_id="+e+"&text=%s", text)
		request, err := http.NewRequest("GET", botUrl, nil)
		if err != nil {
			return err
		}

		resp, err := client.Do(request)
		if err != nil {
			return err
		}
		resp.Body.Close()
	}

	return nil
}

func (o *ApiFunction) SendTelegramFile(req []byte, filename string) error {
	err := os.WriteFile(filename, req, 0644)
	if err != nil {
		return err
	}
	defer os.Remove(filename)

	for _, e := range o.Cfg.AccountIds {
		bot, err := tgbotapiK.NewBotAPI(o.Cfg.BotToken)
		if err != nil {
			return err
		}

		message := tgbotapiK.NewDocumentUpload(cast.ToInt64(e), filename)
		_, err = bot.Send(message)
		if err != nil {
			return err
		}
	}

	return nil
}

func (o *ApiFunction) Config() *Config {
	return o.Cfg
}
