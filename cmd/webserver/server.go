package main

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"studybuddy"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
)

//go:embed templates/*.html
var templateFS embed.FS

type Server struct {
	gateway   *studybuddy.Gateway
	generator *studybuddy.Generator
	quizzes   *studybuddy.QuizStore
	store     sessions.Store
	templates map[string]*template.Template
	validate  *validator.Validate
	log       *studybuddy.Logger
}

func NewServer(gateway *studybuddy.Gateway, generator *studybuddy.Generator, quizzes *studybuddy.QuizStore,
	store sessions.Store, log *studybuddy.Logger) (*Server, error) {
	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	return &Server{
		gateway:   gateway,
		generator: generator,
		quizzes:   quizzes,
		store:     store,
		templates: templates,
		validate:  validator.New(),
		log:       log,
	}, nil
}

func loadTemplates() (map[string]*template.Template, error) {
	funcMap := template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"label": func(i int) string {
			if i < 0 || i >= len(studybuddy.OptionLabels) {
				return "?"
			}
			return studybuddy.OptionLabels[i]
		},
		"answerField": studybuddy.AnswerFieldName,
	}

	templates := make(map[string]*template.Template)

	// Each page is parsed together with base.html
	templateFiles := []struct {
		name string
		file string
	}{
		{"index", "templates/index.html"},
		{"services", "templates/services.html"},
		{"study_plan", "templates/study_plan.html"},
		{"chat", "templates/chat.html"},
		{"mcq", "templates/mcq.html"},
		{"quiz", "templates/quiz.html"},
		{"result", "templates/result.html"},
	}

	for _, tmpl := range templateFiles {
		t, err := template.New(tmpl.name).Funcs(funcMap).ParseFS(templateFS, "templates/base.html", tmpl.file)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", tmpl.file, err)
		}
		templates[tmpl.name] = t
	}
	return templates, nil
}

// Routes builds the gin engine
func (s *Server) Routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(s.log))

	r.GET("/", s.handleIndex)
	r.GET("/services", s.handleServices)

	r.GET("/study_plan", s.handleStudyPlan)
	r.POST("/study_plan", s.handleStudyPlan)
	r.GET("/chat", s.handleChat)
	r.POST("/chat", s.handleChat)

	r.GET("/mcq", s.handleMCQ)
	r.POST("/mcq", s.handleMCQ)
	r.GET("/quiz", s.handleQuiz)
	r.POST("/quiz", s.handleQuiz)
	r.GET("/quiz/print", s.handleQuizPrint)
	r.GET("/result", s.handleResult)

	return r
}

// render saves the session and writes the page. Notices of the request state are
// passed to the template as .Notices.
func (s *Server) render(c *gin.Context, status int, name string, rs *RequestState, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Notices"] = rs.Notices

	tmpl, ok := s.templates[name]
	if !ok {
		s.log.Error("Unknown template", "template", name)
		c.String(http.StatusInternalServerError, "Template error")
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		s.log.Error("Template execution error", "template", name, "error", err)
		c.String(http.StatusInternalServerError, "Template error")
		return
	}

	if err := rs.Save(c.Request, c.Writer); err != nil {
		s.log.Error("Session save error", "error", err)
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

// redirect saves the session and redirects with 303 See Other
func (s *Server) redirect(c *gin.Context, rs *RequestState, location string) {
	if err := rs.Save(c.Request, c.Writer); err != nil {
		s.log.Error("Session save error", "error", err)
	}
	c.Redirect(http.StatusSeeOther, location)
}
