package assistant

import "errors"

var ErrAssistantUnavailable = errors.New("the HR assistant is temporarily unavailable")
