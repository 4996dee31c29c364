package ui

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"skillprep/domain/bank"
	"skillprep/models"
)

type indexData struct {
	Questions  []models.Question
	Role       string
	Category   string
	Difficulty string
	Roles      []string
	Categories []string
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	filter := bank.Filter{
		Role:       r.URL.Query().Get("role"),
		Category:   r.URL.Query().Get("category"),
		Difficulty: r.URL.Query().Get("difficulty"),
	}

	a.renderTemplate(w, "index.html", indexData{
		Questions:  a.bank.Select(filter),
		Role:       filter.Role,
		Category:   filter.Category,
		Difficulty: filter.Difficulty,
		Roles:      models.Roles,
		Categories: models.Categories,
	})
}

type questionData struct {
	Question models.Question
}

func (a *App) handleQuestionDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid question id", http.StatusBadRequest)
		return
	}

	question, ok := a.bank.Get(id)
	if !ok {
		http.Error(w, "Question not found", http.StatusNotFound)
		return
	}

	a.renderTemplate(w, "question.html", questionData{Question: question})
}
