package studybuddy

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNoUsableOutput is returned when the model produced no acceptable question rows
var ErrNoUsableOutput = errors.New("no usable MCQ rows in model output")

// Generator orchestrates MCQ generation, extraction and persistence
type Generator struct {
	gateway *Gateway
	store   *QuizStore
	db      *DB // optional catalog
	log     *Logger
	now     func() time.Time
}

// NewGenerator creates a new generator. db may be nil.
func NewGenerator(gateway *Gateway, store *QuizStore, db *DB, log *Logger) *Generator {
	if log == nil {
		log = NewNopLogger()
	}
	return &Generator{
		gateway: gateway,
		store:   store,
		db:      db,
		log:     log,
		now:     time.Now,
	}
}

// Generate asks the model for MCQs on a topic and writes the accepted rows to the
// topic's quiz file. Nothing is written when no row is usable.
func (g *Generator) Generate(ctx context.Context, topic string) (*GenerationResult, error) {
	log := g.log.With("topic", topic)
	log.Info("Starting quiz generation")

	raw, transcript, err := g.gateway.generateMCQs(ctx, topic)
	if transcript != nil {
		defer transcript.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to generate MCQs: %w", err)
	}
	if strings.TrimSpace(raw) == "" {
		return nil, ErrNoUsableOutput
	}

	extracted := ExtractMCQs(raw)
	if transcript != nil {
		transcript.LogExtraction(extracted)
	}
	for _, rej := range extracted.Rejected {
		log.Debug("Dropped MCQ row", "line", rej.Line, "reason", rej.Reason)
	}

	if len(extracted.Records) == 0 {
		log.Warn("No usable MCQ rows", "rejected", len(extracted.Rejected), "skipped", extracted.Skipped)
		return nil, ErrNoUsableOutput
	}

	name, err := g.store.Save(topic, extracted.Records)
	if err != nil {
		return nil, err
	}

	if g.db != nil {
		now := g.now()
		rec := &QuizFileRecord{
			FileName:      name,
			Topic:         topic,
			QuestionCount: len(extracted.Records),
			RejectedCount: len(extracted.Rejected),
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := g.db.RecordQuizFile(ctx, rec); err != nil {
			// The quiz file is usable without its catalog entry
			log.Error("Failed to record quiz file", "file", name, "error", err)
		}
	}

	log.Info("Quiz generation complete",
		"file", name,
		"questions", len(extracted.Records),
		"rejected", len(extracted.Rejected))

	return &GenerationResult{
		FileName:  name,
		Topic:     topic,
		Questions: extracted.Records,
		Rejected:  extracted.Rejected,
	}, nil
}

// Topic returns the topic a quiz file was generated for, falling back to the file name
// when the catalog has no entry.
func (g *Generator) Topic(ctx context.Context, fileName string) string {
	if g.db != nil {
		rec, err := g.db.GetQuizFile(ctx, fileName)
		if err == nil {
			return rec.Topic
		}
		if !errors.Is(err, ErrQuizFileNotFound) {
			g.log.Warn("Failed to look up quiz file", "file", fileName, "error", err)
		}
	}
	return strings.ReplaceAll(strings.TrimSuffix(fileName, quizFileSuffix), "_", " ")
}

// Prune deletes quiz files whose last generation is older than maxAge, together with
// their catalog entries. It returns the number of files removed.
func (g *Generator) Prune(ctx context.Context, maxAge time.Duration) (int, error) {
	if g.db == nil {
		return 0, errors.New("pruning requires the quiz catalog")
	}

	stale, err := g.db.StaleQuizFiles(ctx, g.now().Add(-maxAge))
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, rec := range stale {
		if err := g.store.Remove(rec.FileName); err != nil {
			g.log.Error("Failed to remove quiz file", "file", rec.FileName, "error", err)
			continue
		}
		if err := g.db.DeleteQuizFile(ctx, rec.FileName); err != nil {
			return removed, err
		}
		removed++
	}

	if removed > 0 {
		g.log.Info("Pruned quiz files", "removed", removed, "max_age", maxAge.String())
	}
	return removed, nil
}
