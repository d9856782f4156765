package main

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	sessionName   = "studybuddy-session"
	activeQuizKey = "quiz_file"
)

// Notice categories, matching the alert styles of base.html
const (
	noticeInfo    = "info"
	noticeWarning = "warning"
	noticeDanger  = "danger"
)

// Notice is a user-facing message shown above the page content
type Notice struct {
	Category string
	Message  string
}

func init() {
	gob.Register(Notice{})
}

// RequestState is the session as seen by one request. Handlers receive it explicitly
// and it is saved before the response is written.
type RequestState struct {
	session *sessions.Session

	// ActiveQuizFile names the quiz file available for answering, "" when there is none.
	ActiveQuizFile string
	// Notices are rendered on the page produced by this request.
	Notices []Notice
}

func (s *Server) loadState(r *http.Request) *RequestState {
	session, err := s.store.Get(r, sessionName)
	if err != nil {
		// An undecodable cookie yields a fresh session
		s.log.Warn("Discarding unreadable session", "error", err)
	}

	rs := &RequestState{session: session}
	if name, ok := session.Values[activeQuizKey].(string); ok {
		rs.ActiveQuizFile = name
	}
	for _, flash := range session.Flashes() {
		if notice, ok := flash.(Notice); ok {
			rs.Notices = append(rs.Notices, notice)
		}
	}
	return rs
}

// Notify adds a notice to the page rendered by this request
func (rs *RequestState) Notify(category, message string) {
	rs.Notices = append(rs.Notices, Notice{Category: category, Message: message})
}

// Flash queues a notice for the next rendered page, for use before a redirect
func (rs *RequestState) Flash(category, message string) {
	rs.session.AddFlash(Notice{Category: category, Message: message})
}

// SetActiveQuiz replaces the quiz file reference
func (rs *RequestState) SetActiveQuiz(name string) {
	rs.ActiveQuizFile = name
}

// ClearActiveQuiz drops the quiz file reference
func (rs *RequestState) ClearActiveQuiz() {
	rs.ActiveQuizFile = ""
}

// Save writes the state back to the session cookie
func (rs *RequestState) Save(r *http.Request, w http.ResponseWriter) error {
	if rs.ActiveQuizFile == "" {
		delete(rs.session.Values, activeQuizKey)
	} else {
		rs.session.Values[activeQuizKey] = rs.ActiveQuizFile
	}
	return rs.session.Save(r, w)
}
