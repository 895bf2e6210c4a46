package apierrors

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"

	"github.com/Tarunkashyap6665/taskify-bhatiyani/pkg/translator"
)

// APIError is the wire shape of every error response: {"detail": "..."}.
type APIError struct {
	Detail string `json:"detail"`
}

func (e APIError) Error() string {
	return e.Detail
}

// CreateError builds an APIError with the message translated for lang.
func CreateError(msgKey string, lang string) APIError {
	return APIError{Detail: GetTransErrorMsg(msgKey, lang)}
}

// GetTransErrorMsg retrieves the translated error message, falling back to
// the key itself when no translation exists.
func GetTransErrorMsg(msgKey string, lang string) string {
	l := i18n.NewLocalizer(translator.Translator, lang, translator.LanguageEn)
	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: msgKey})
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
