// Manually seeds the question bank.
//
// The server seeds on startup already; this is for preparing a fresh database
// ahead of a deployment. With -dump the bank is also written out as YAML for
// review.
//
// Usage: go run scripts/seed_questions.go [-config configs] [-dump bank.yaml]

package main

import (
	"flag"
	"log"
	"os"
	"recruit_backend/internal/config"
	"recruit_backend/internal/psych"
	"recruit_backend/internal/repository"
	"recruit_backend/internal/service"
	"recruit_backend/pkg/database"
	"recruit_backend/pkg/logger"

	"gopkg.in/yaml.v3"
)

type dumpedQuestion struct {
	Number        int            `yaml:"number"`
	Text          string         `yaml:"text"`
	Instrument    string         `yaml:"instrument"`
	Trait         string         `yaml:"trait"`
	ReverseScored bool           `yaml:"reverse_scored,omitempty"`
	Options       map[int]string `yaml:"options"`
}

func main() {
	configDir := flag.String("config", "configs", "directory containing config.yaml")
	dump := flag.String("dump", "", "write the question bank as YAML to this file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.ForceMigrate = true

	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	catalog := psych.DefaultCatalog()
	questions := service.NewQuestionService(catalog, repository.NewQuestionRepository(db))
	if err := questions.SeedQuestionBank(); err != nil {
		log.Fatalf("Failed to seed question bank: %v", err)
	}

	count, err := questions.Repo.Count()
	if err != nil {
		log.Fatalf("Failed to count questions: %v", err)
	}
	log.Printf("Question bank holds %d questions", count)

	if *dump == "" {
		return
	}

	var out []dumpedQuestion
	for _, q := range catalog.Questions("") {
		opts := make(map[int]string, len(q.Options))
		for _, o := range q.Options {
			opts[o.Value] = o.Label
		}
		out = append(out, dumpedQuestion{
			Number:        q.Number,
			Text:          q.Text,
			Instrument:    string(q.Instrument),
			Trait:         string(q.Trait),
			ReverseScored: q.ReverseScored,
			Options:       opts,
		})
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		log.Fatalf("Failed to encode question bank: %v", err)
	}
	if err := os.WriteFile(*dump, data, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *dump, err)
	}
	log.Printf("Question bank written to %s", *dump)
}
