package studybuddy

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidQuizFile is returned for quiz file names that would escape the store directory
var ErrInvalidQuizFile = errors.New("invalid quiz file name")

const quizFileSuffix = "_mcqs.csv"

// QuizFileName derives the quiz file name for a topic: every rune outside [A-Za-z0-9]
// becomes an underscore.
func QuizFileName(topic string) string {
	var sb strings.Builder
	for _, r := range topic {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('_')
		}
	}
	sb.WriteString(quizFileSuffix)
	return sb.String()
}

// QuizStore keeps one CSV file per generated quiz in a directory.
// There is no locking: concurrent saves for the same topic race and the last writer wins.
type QuizStore struct {
	dir string
}

// NewQuizStore creates the store directory if needed
func NewQuizStore(dir string) (*QuizStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create quiz directory: %w", err)
	}
	return &QuizStore{dir: dir}, nil
}

// Dir returns the store directory
func (s *QuizStore) Dir() string {
	return s.dir
}

func (s *QuizStore) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidQuizFile, name)
	}
	return filepath.Join(s.dir, name), nil
}

// Save writes the questions for a topic, replacing any previous file for that topic.
// It returns the file name.
func (s *QuizStore) Save(topic string, questions []Question) (string, error) {
	name := QuizFileName(topic)
	path, err := s.path(name)
	if err != nil {
		return "", err
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create quiz file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	for _, q := range questions {
		if err := w.Write(q.Fields()); err != nil {
			return "", fmt.Errorf("failed to write quiz file: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to write quiz file: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close quiz file: %w", err)
	}
	return name, nil
}

// Load reads a quiz file. Rows that do not have exactly 6 fields are ignored.
func (s *QuizStore) Load(name string) ([]Question, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open quiz file: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	var questions []Question
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read quiz file: %w", err)
		}
		if len(rec) != mcqFieldCount {
			continue
		}
		questions = append(questions, questionFromFields(rec))
	}
	return questions, nil
}

// Remove deletes a quiz file. Removing a file that does not exist is not an error.
func (s *QuizStore) Remove(name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove quiz file: %w", err)
	}
	return nil
}
