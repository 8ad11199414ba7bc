package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/cloudprep/dailyquiz/internal/llm"
	"github.com/cloudprep/dailyquiz/internal/quizgen"
	"github.com/cloudprep/dailyquiz/internal/store"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one daily replenishment cycle",
	Long: `Run one daily cycle: for every exam type with a subscriber, claim one
unused question from the bank, generating a fresh batch first when the bank
is empty. Claimed questions are written to stdout as JSON lines for the
dispatch collaborator.`,
	RunE: runCycle,
}

func init() {
	runCmd.Flags().StringArray("exam", nil, "Exam type to process (repeatable; default: all subscribed exam types)")
}

func runCycle(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()

	namespace, _ := cmd.Flags().GetString("namespace")

	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		return err
	}

	events := s.Events()
	primaries, err := llm.NewPrimaryProviders(ctx, cfg, events)
	if err != nil {
		return err
	}
	fallback, err := llm.NewFallbackProvider(cfg, events)
	if err != nil {
		return err
	}

	genCfg := quizgen.DefaultConfig()
	orch := quizgen.NewOrchestrator(
		quizgen.NewPrimaryClient(primaries, genCfg),
		quizgen.NewFallbackClient(fallback, genCfg),
	)
	svc := quizgen.NewService(s.Bank(namespace), orch, cfg.Budget)

	examTypes, _ := cmd.Flags().GetStringArray("exam")
	if len(examTypes) == 0 {
		examTypes, err = s.Subscribers(namespace).ExamTypes(ctx)
		if err != nil {
			return fmt.Errorf("list exam types: %w", err)
		}
	}
	if len(examTypes) == 0 {
		log.Printf("no subscribed exam types; nothing to do")
		return nil
	}

	enc := json.NewEncoder(os.Stdout)
	var claimed, skipped int
	for _, res := range svc.RunCycle(ctx, examTypes) {
		if res.Err != nil {
			log.Printf("%s: %v", res.ExamType, res.Err)
			skipped++
			continue
		}
		if err := enc.Encode(newClaimedQuestion(res.Record)); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		claimed++
	}

	log.Printf("cycle done: %d claimed, %d skipped", claimed, skipped)
	return nil
}

// claimedQuestion is the stdout shape the dispatch collaborator consumes.
type claimedQuestion struct {
	ExamType     string   `json:"examType"`
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
	Topic        string   `json:"topic"`
}

func newClaimedQuestion(rec *store.Record) claimedQuestion {
	return claimedQuestion{
		ExamType:     rec.ExamType,
		Question:     rec.Question,
		Options:      rec.Options,
		CorrectIndex: rec.CorrectIndex,
		Explanation:  rec.Explanation,
		Topic:        rec.Topic,
	}
}
