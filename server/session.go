package server

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/zephyrtronium/scicalc/keypad"
)

// sessions holds keypad states by session id.
type sessions struct {
	sync.Mutex
	states map[string]keypad.State
}

func newSessions() *sessions {
	return &sessions{states: make(map[string]keypad.State)}
}

// get a session's state
func (ss *sessions) get(id string) (keypad.State, bool) {
	ss.Lock()
	defer ss.Unlock()
	st, ok := ss.states[id]
	return st, ok
}

// update applies f to a session's state, starting from init if the session
// does not exist yet.
func (ss *sessions) update(id string, init keypad.State, f func(keypad.State) keypad.State) keypad.State {
	ss.Lock()
	defer ss.Unlock()
	st, ok := ss.states[id]
	if !ok {
		st = init
	}
	st = f(st)
	ss.states[id] = st
	return st
}

// delete a session, reporting whether it existed
func (ss *sessions) delete(id string) bool {
	ss.Lock()
	defer ss.Unlock()
	_, ok := ss.states[id]
	delete(ss.states, id)
	return ok
}

// ActionsParams contains the bound parameters for the session actions
// endpoint.
type ActionsParams struct {
	Keys []string `form:"key" json:"keys" msgpack:"keys"`
}

// SessionResult is a session's state.
type SessionResult struct {
	ID string `json:"id" msgpack:"id"`
	keypad.State
}

// HistoryResult is a session's history.
type HistoryResult struct {
	ID      string         `json:"id" msgpack:"id"`
	History []keypad.Entry `json:"history" msgpack:"history"`
}

// DoSessionActions handles POST /session/:id/actions: feeds key and button
// names through the keypad and reports the new state. The session is created
// on first use.
func (s *Server) DoSessionActions(ctx *gin.Context) {
	defer RecoverFromPanic(ctx)

	id := ctx.Param("id")
	var params ActionsParams
	if ctx.ContentType() == binding.MIMEJSON {
		if err := binding.JSON.Bind(ctx.Request, &params); err != nil {
			panic(NewError(http.StatusBadRequest, err.Error()).
				WithDetails("failed to parse request JSON parameters"))
		}
	}
	if err := binding.Form.Bind(ctx.Request, &params); err != nil {
		panic(NewError(http.StatusBadRequest, err.Error()).
			WithDetails("failed to parse request parameters"))
	}

	actions, err := keypad.Parse(params.Keys)
	if err != nil {
		panic(NewError(http.StatusBadRequest, err.Error()).
			WithDetails("failed to parse keys"))
	}

	init := keypad.New()
	init.Degrees = s.Config.Degrees
	st := s.sessions.update(id, init, func(st keypad.State) keypad.State {
		st = keypad.ReduceAll(st, actions, s.opts...)
		return keypad.TrimHistory(st, s.Config.HistoryLimit)
	})

	sessionLog.WithFields(map[string]interface{}{
		"session": id,
		"keys":    params.Keys,
		"display": st.Display,
	}).Debug("keys applied")

	writeResponse(ctx, http.StatusOK, SessionResult{ID: id, State: st})
}

// get an existing session or report 404
func (s *Server) mustGetSession(id string) keypad.State {
	st, ok := s.sessions.get(id)
	if !ok {
		panic(NewError(http.StatusNotFound, "session not found").
			WithDetails(id))
	}
	return st
}

// DoSessionGet handles GET /session/:id.
func (s *Server) DoSessionGet(ctx *gin.Context) {
	defer RecoverFromPanic(ctx)

	id := ctx.Param("id")
	writeResponse(ctx, http.StatusOK, SessionResult{ID: id, State: s.mustGetSession(id)})
}

// DoSessionHistory handles GET /session/:id/history.
func (s *Server) DoSessionHistory(ctx *gin.Context) {
	defer RecoverFromPanic(ctx)

	id := ctx.Param("id")
	st := s.mustGetSession(id)
	h := st.History
	if h == nil {
		h = []keypad.Entry{}
	}
	writeResponse(ctx, http.StatusOK, HistoryResult{ID: id, History: h})
}

// DoSessionDelete handles DELETE /session/:id.
func (s *Server) DoSessionDelete(ctx *gin.Context) {
	defer RecoverFromPanic(ctx)

	id := ctx.Param("id")
	if !s.sessions.delete(id) {
		panic(NewError(http.StatusNotFound, "session not found").
			WithDetails(id))
	}
	sessionLog.WithField("session", id).Debug("session deleted")

	writeResponse(ctx, http.StatusOK, map[string]interface{}{"id": id, "deleted": true})
}
