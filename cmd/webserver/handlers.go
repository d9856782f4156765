package main

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"studybuddy"

	"github.com/gin-gonic/gin"
)

const (
	msgAssistantUnavailable = "The assistant is unavailable right now. Please try again."
	msgGenerationFailed     = "Failed to generate MCQs."
	msgNoQuiz               = "No quiz file found. Please generate a quiz first."
	msgQuizUnavailable      = "Your quiz could not be loaded. Please generate a new one."
)

type studyPlanForm struct {
	Topic string `form:"topic" validate:"required"`
	Days  string `form:"days" validate:"required"`
}

type chatForm struct {
	Question string `form:"question" validate:"required"`
}

type mcqForm struct {
	Topic string `form:"topic" validate:"required"`
}

func (s *Server) handleIndex(c *gin.Context) {
	s.log.Debug("Rendering index page")
	s.render(c, http.StatusOK, "index", s.loadState(c.Request), nil)
}

func (s *Server) handleServices(c *gin.Context) {
	s.render(c, http.StatusOK, "services", s.loadState(c.Request), nil)
}

func (s *Server) handleStudyPlan(c *gin.Context) {
	rs := s.loadState(c.Request)
	if c.Request.Method != http.MethodPost {
		s.render(c, http.StatusOK, "study_plan", rs, nil)
		return
	}

	var form studyPlanForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Failed to parse form")
		return
	}
	data := gin.H{"Topic": form.Topic, "Days": form.Days}

	if err := s.validate.Struct(form); err != nil {
		data["Answer"] = studybuddy.RenderHTML(studybuddy.MsgStudyPlanMissingInput)
		s.render(c, http.StatusOK, "study_plan", rs, data)
		return
	}

	answer, err := s.gateway.StudyPlan(c.Request.Context(), form.Topic, form.Days)
	if err != nil {
		s.log.Error("Study plan generation failed", "error", err)
		rs.Notify(noticeDanger, msgAssistantUnavailable)
		s.render(c, http.StatusBadGateway, "study_plan", rs, data)
		return
	}

	data["Answer"] = studybuddy.RenderHTML(answer)
	s.render(c, http.StatusOK, "study_plan", rs, data)
}

func (s *Server) handleChat(c *gin.Context) {
	rs := s.loadState(c.Request)
	if c.Request.Method != http.MethodPost {
		s.render(c, http.StatusOK, "chat", rs, nil)
		return
	}

	var form chatForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Failed to parse form")
		return
	}
	data := gin.H{"Question": form.Question}

	if err := s.validate.Struct(form); err != nil {
		data["Answer"] = studybuddy.RenderHTML(studybuddy.MsgQuestionMissingInput)
		s.render(c, http.StatusOK, "chat", rs, data)
		return
	}

	answer, err := s.gateway.Summarize(c.Request.Context(), form.Question)
	if err != nil {
		s.log.Error("Summary generation failed", "error", err)
		rs.Notify(noticeDanger, msgAssistantUnavailable)
		s.render(c, http.StatusBadGateway, "chat", rs, data)
		return
	}

	data["Answer"] = studybuddy.RenderHTML(answer)
	s.render(c, http.StatusOK, "chat", rs, data)
}

func (s *Server) handleMCQ(c *gin.Context) {
	rs := s.loadState(c.Request)
	if c.Request.Method != http.MethodPost {
		s.render(c, http.StatusOK, "mcq", rs, nil)
		return
	}

	var form mcqForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Failed to parse form")
		return
	}

	if err := s.validate.Struct(form); err != nil {
		rs.Notify(noticeWarning, studybuddy.MsgTopicMissingInput)
		s.render(c, http.StatusOK, "mcq", rs, nil)
		return
	}

	result, err := s.generator.Generate(c.Request.Context(), form.Topic)
	if err != nil {
		status := http.StatusOK
		if !errors.Is(err, studybuddy.ErrNoUsableOutput) {
			s.log.Error("MCQ generation failed", "topic", form.Topic, "error", err)
			status = http.StatusBadGateway
		}
		// The previous quiz reference, if any, stays in place
		rs.Notify(noticeDanger, msgGenerationFailed)
		s.render(c, status, "mcq", rs, gin.H{"Topic": form.Topic})
		return
	}

	rs.SetActiveQuiz(result.FileName)
	if n := len(result.Rejected); n > 0 {
		rs.Flash(noticeInfo, fmt.Sprintf("%d rows were discarded because they were malformed or repeated.", n))
	}
	s.redirect(c, rs, "/quiz")
}

func (s *Server) handleQuiz(c *gin.Context) {
	rs := s.loadState(c.Request)
	if rs.ActiveQuizFile == "" {
		rs.Flash(noticeWarning, msgNoQuiz)
		s.redirect(c, rs, "/mcq")
		return
	}

	questions, err := s.quizzes.Load(rs.ActiveQuizFile)
	if err != nil {
		s.log.Warn("Failed to load quiz file", "file", rs.ActiveQuizFile, "error", err)
		rs.ClearActiveQuiz()
		rs.Flash(noticeWarning, msgQuizUnavailable)
		s.redirect(c, rs, "/mcq")
		return
	}

	if c.Request.Method != http.MethodPost {
		s.render(c, http.StatusOK, "quiz", rs, gin.H{
			"Topic":     s.generator.Topic(c.Request.Context(), rs.ActiveQuizFile),
			"Questions": questions,
		})
		return
	}

	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "Failed to parse form")
		return
	}

	result := studybuddy.Grade(questions, studybuddy.AnswersFromForm(c.Request.PostForm, len(questions)))
	s.log.Info("Quiz graded", "file", rs.ActiveQuizFile, "score", result.Score, "total", result.Total)

	query := url.Values{}
	query.Set("score", strconv.Itoa(result.Score))
	query.Set("feedback", result.Feedback)
	s.redirect(c, rs, "/result?"+query.Encode())
}

func (s *Server) handleQuizPrint(c *gin.Context) {
	rs := s.loadState(c.Request)
	if rs.ActiveQuizFile == "" {
		rs.Flash(noticeWarning, msgNoQuiz)
		s.redirect(c, rs, "/mcq")
		return
	}

	questions, err := s.quizzes.Load(rs.ActiveQuizFile)
	if err != nil {
		s.log.Warn("Failed to load quiz file", "file", rs.ActiveQuizFile, "error", err)
		rs.ClearActiveQuiz()
		rs.Flash(noticeWarning, msgQuizUnavailable)
		s.redirect(c, rs, "/mcq")
		return
	}

	var buf bytes.Buffer
	topic := s.generator.Topic(c.Request.Context(), rs.ActiveQuizFile)
	if err := studybuddy.WriteQuizPDF(&buf, topic, questions); err != nil {
		s.log.Error("Failed to render quiz PDF", "file", rs.ActiveQuizFile, "error", err)
		c.String(http.StatusInternalServerError, "Failed to render PDF")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pdf"`, rs.ActiveQuizFile))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func (s *Server) handleResult(c *gin.Context) {
	rs := s.loadState(c.Request)
	data := gin.H{"Feedback": c.Query("feedback")}
	if score, err := strconv.Atoi(c.Query("score")); err == nil {
		data["Score"] = score
		data["HasScore"] = true
	}
	s.render(c, http.StatusOK, "result", rs, data)
}
