package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"studybuddy"
)

func main() {
	var (
		topic      = flag.String("topic", "", "Quiz topic")
		outputFile = flag.String("output", "", "Output file for the quiz JSON (default: stdout)")
		playMode   = flag.Bool("play", false, "Play the generated quiz interactively")
		prune      = flag.Duration("prune", 0, "Delete quiz files older than this and exit")
		list       = flag.Int("list", 0, "List the N most recently generated quiz files and exit")
		verbose    = flag.Bool("verbose", false, "Enable verbose debugging output")
	)

	flag.Parse()

	studybuddy.LoadEnv()
	cfg := studybuddy.LoadConfig()

	log, err := studybuddy.NewLogger(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	log.SetVerbose(*verbose || cfg.Verbose)

	if *topic == "" && *prune == 0 && *list == 0 {
		log.Fatal("Topic is required. Use -topic flag.")
	}

	quizzes, err := studybuddy.NewQuizStore(cfg.QuizDir)
	if err != nil {
		log.Fatal("Failed to open quiz directory", "dir", cfg.QuizDir, "error", err)
	}

	db, err := studybuddy.OpenDB(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open database", "path", cfg.DBPath, "error", err)
	}
	defer db.CloseDB()

	if err := db.CreateTables(); err != nil {
		log.Fatal("Failed to create tables", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if *list > 0 {
		records, err := db.ListQuizFiles(ctx, *list)
		if err != nil {
			log.Fatal("Failed to list quiz files", "error", err)
		}
		for _, rec := range records {
			fmt.Printf("%-40s %-30s %2d questions  %s\n",
				rec.FileName, rec.Topic, rec.QuestionCount, rec.UpdatedAt.Local().Format(time.DateTime))
		}
		return
	}

	if *prune > 0 {
		generator := studybuddy.NewGenerator(nil, quizzes, db, log)
		removed, err := generator.Prune(ctx, *prune)
		if err != nil {
			log.Fatal("Failed to prune quiz files", "error", err)
		}
		fmt.Printf("Removed %d quiz files\n", removed)
		return
	}

	gateway, err := studybuddy.NewGateway(cfg.GatewayConfig(), log)
	if err != nil {
		log.Fatal("GROQ_APIKEY environment variable is required", "error", err)
	}
	generator := studybuddy.NewGenerator(gateway, quizzes, db, log)

	log.Debug("Starting quiz generation", "topic", *topic, "model", cfg.MCQModel)

	result, err := generator.Generate(ctx, *topic)
	if err != nil {
		log.Fatal("Failed to generate quiz", "topic", *topic, "error", err)
	}

	if *playMode {
		playQuiz(os.Stdin, os.Stdout, result)
		return
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatal("Failed to marshal quiz", "error", err)
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, output, 0644); err != nil {
			log.Fatal("Failed to write output file", "path", *outputFile, "error", err)
		}
		log.Info("Quiz saved", "path", *outputFile, "quiz_file", result.FileName)
	} else {
		fmt.Println(string(output))
	}
}

// playQuiz asks every question on in, then prints the score and feedback
func playQuiz(in io.Reader, out io.Writer, result *studybuddy.GenerationResult) studybuddy.ScoreResult {
	fmt.Fprintf(out, "🎯 Quiz on: %s\n", result.Topic)
	fmt.Fprintf(out, "📝 Questions: %d\n\n", len(result.Questions))

	scanner := bufio.NewScanner(in)
	answers := make(studybuddy.AnswerSet, len(result.Questions))

	for i, q := range result.Questions {
		fmt.Fprintf(out, "Question %d/%d:\n", i+1, len(result.Questions))
		fmt.Fprintf(out, "%s\n\n", q.Text)
		for j, option := range q.Options {
			fmt.Fprintf(out, "%s) %s\n", studybuddy.OptionLabels[j], option)
		}
		fmt.Fprintln(out)

		answer, ok := readAnswer(scanner, out)
		if !ok {
			fmt.Fprintln(out, "\nInput closed, grading the answers given so far.")
			break
		}
		answers[i+1] = answer

		if answer == q.Correct {
			fmt.Fprintln(out, "✅ Correct!")
		} else {
			fmt.Fprintf(out, "❌ Incorrect. The correct answer is %s\n", q.Correct)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, strings.Repeat("─", 50))
		fmt.Fprintln(out)
	}

	graded := studybuddy.Grade(result.Questions, answers)
	fmt.Fprintln(out, "🎉 Quiz completed!")
	fmt.Fprintf(out, "🏆 Score: %d/%d\n", graded.Score, graded.Total)
	fmt.Fprintln(out, graded.Feedback)
	return graded
}

func readAnswer(scanner *bufio.Scanner, out io.Writer) (string, bool) {
	for {
		fmt.Fprint(out, "Your answer (A/B/C/D): ")
		if !scanner.Scan() {
			return "", false
		}
		answer := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		if slices.Contains(studybuddy.OptionLabels, answer) {
			return answer, true
		}
		fmt.Fprintln(out, "Please enter A, B, C, or D")
	}
}
