package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/zephyrtronium/scicalc"
	"github.com/zephyrtronium/scicalc/keypad"
)

// logger instances
var (
	log        = logrus.New()
	sessionLog = logrus.New() // keypad sessions
)

// logger names
const (
	CORE     = "core"
	SESSIONS = "core/sessions"
	ENGINE   = "engine"
	KEYPAD   = "keypad"
)

// DoLoggingLevel handles the /logging/level endpoint: changes logger levels
// given in the query as logger=level and reports the current levels.
func (s *Server) DoLoggingLevel(ctx *gin.Context) {
	defer RecoverFromPanic(ctx)

	for key, vals := range ctx.Request.URL.Query() {
		for _, level := range vals {
			if err := setLoggingLevel(key, level); err != nil {
				panic(NewError(http.StatusBadRequest, err.Error()).
					WithDetails("failed to change logging level"))
			}
		}
	}

	writeResponse(ctx, http.StatusOK, getLoggingLevels())
}

// get current logging levels
func getLoggingLevels() map[string]string {
	return map[string]string{
		CORE:     log.GetLevel().String(),
		SESSIONS: sessionLog.GetLevel().String(),
		ENGINE:   scicalc.GetLogLevel().String(),
		KEYPAD:   keypad.GetLogLevel().String(),
	}
}

// set logging level
func setLoggingLevel(logger string, level string) error {
	ll, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse level: %s", err)
	}

	switch strings.ToLower(logger) {
	case CORE:
		log.SetLevel(ll)
	case SESSIONS:
		sessionLog.SetLevel(ll)
	case ENGINE:
		scicalc.SetLogLevel(ll)
	case KEYPAD:
		keypad.SetLogLevel(ll)
	default:
		return fmt.Errorf("'%s' is unknown logger name", logger)
	}

	return nil // OK
}

// make logging options with the same level
func makeDefaultLoggingOptions(level string) map[string]string {
	return map[string]string{
		CORE:     level,
		SESSIONS: level,
		ENGINE:   level,
		KEYPAD:   level,
	}
}
