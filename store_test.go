package studybuddy

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestQuizFileName(t *testing.T) {
	tests := map[string]string{
		"World War II!":  "World_War_II__mcqs.csv",
		"photosynthesis": "photosynthesis_mcqs.csv",
		"C++ / Go":       "C_____Go_mcqs.csv",
		"café":           "caf__mcqs.csv",
		"../etc/passwd":  "___etc_passwd_mcqs.csv",
	}
	for topic, want := range tests {
		if got := QuizFileName(topic); got != want {
			t.Fatalf("topic=%q: want=%q got=%q", topic, want, got)
		}
	}
}

func sampleQuestions() []Question {
	return []Question{
		{Text: "What is 2 + 2?", Options: []string{"3", "4", "5", "6"}, Correct: "B"},
		{Text: `A "quoted" question?`, Options: []string{"a", "b", "c", "d"}, Correct: "D"},
	}
}

func TestQuizStoreRoundTrip(t *testing.T) {
	store, err := NewQuizStore(filepath.Join(t.TempDir(), "quizzes"))
	if err != nil {
		t.Fatalf("NewQuizStore: %v", err)
	}

	name, err := store.Save("World War II!", sampleQuestions())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if name != "World_War_II__mcqs.csv" {
		t.Fatalf("unexpected file name %q", name)
	}

	got, err := store.Load(name)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := sampleQuestions()
	if len(got) != len(want) {
		t.Fatalf("want %d questions, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].Text != want[i].Text || got[i].Correct != want[i].Correct {
			t.Fatalf("question %d: want=%+v got=%+v", i, want[i], got[i])
		}
		for j := range want[i].Options {
			if got[i].Options[j] != want[i].Options[j] {
				t.Fatalf("question %d option %d: want=%q got=%q", i, j, want[i].Options[j], got[i].Options[j])
			}
		}
	}
}

func TestQuizStoreSaveOverwrites(t *testing.T) {
	store, err := NewQuizStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewQuizStore: %v", err)
	}

	if _, err := store.Save("math", sampleQuestions()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	name, err := store.Save("math", sampleQuestions()[:1])
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Load(name)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("want 1 question after overwrite, got %d", len(got))
	}
}

func TestQuizStoreLoadSkipsShortRows(t *testing.T) {
	dir := t.TempDir()
	store, err := NewQuizStore(dir)
	if err != nil {
		t.Fatalf("NewQuizStore: %v", err)
	}
	content := "Q1?,a,b,c,d,A\nbroken,row\nQ2?,a,b,c,d,C\n"
	if err := os.WriteFile(filepath.Join(dir, "x_mcqs.csv"), []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := store.Load("x_mcqs.csv")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 || got[1].Correct != "C" {
		t.Fatalf("unexpected questions: %+v", got)
	}
}

func TestQuizStoreRejectsPaths(t *testing.T) {
	store, err := NewQuizStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewQuizStore: %v", err)
	}
	for _, name := range []string{"", "..", "../secret.csv", "a/b.csv"} {
		if _, err := store.Load(name); !errors.Is(err, ErrInvalidQuizFile) {
			t.Fatalf("name=%q: want ErrInvalidQuizFile, got %v", name, err)
		}
	}
}

func TestQuizStoreMissingFile(t *testing.T) {
	store, err := NewQuizStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewQuizStore: %v", err)
	}
	if _, err := store.Load("nothing_mcqs.csv"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("want fs.ErrNotExist, got %v", err)
	}
	if err := store.Remove("nothing_mcqs.csv"); err != nil {
		t.Fatalf("Remove of a missing file: %v", err)
	}
}
