package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"certtrack/internal/catalog"
	"certtrack/internal/delivery/http/dto"
	"certtrack/internal/domain/matching"
	"certtrack/internal/usecase"

	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match skills against a catalog document offline",
	Long:  "Scores the given skills against every job of a YAML catalog document and prints the matches as JSON. With --job it prints the gap analysis and credential recommendations for that job.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runMatch(cmd.Context(), cmd.OutOrStdout(), matchOpts)
	},
}

type matchOptions struct {
	File   string
	Skills []string
	JobID  string
	Limit  int
	Now    float64
	Next   float64
}

var matchOpts matchOptions

func init() {
	f := matchCmd.Flags()
	f.StringVarP(&matchOpts.File, "file", "f", "", "Path to the catalog YAML document (required)")
	f.StringArrayVarP(&matchOpts.Skills, "skill", "s", nil, "Skill held by the candidate; repeatable")
	f.StringVar(&matchOpts.JobID, "job", "", "Job id to analyse in detail")
	f.IntVar(&matchOpts.Limit, "limit", matching.DefaultRecommendationLimit, "Maximum recommendations for --job; 0 for all")
	f.Float64Var(&matchOpts.Now, "now", matching.DefaultNowThreshold, "Minimum score for the now tier")
	f.Float64Var(&matchOpts.Next, "next", matching.DefaultNextThreshold, "Minimum score for the next tier")
	if err := matchCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}
	rootCmd.AddCommand(matchCmd)
}

func runMatch(ctx context.Context, out io.Writer, opts matchOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	doc, err := catalog.LoadFile(opts.File)
	if err != nil {
		return err
	}

	thresholds := matching.Thresholds{Now: opts.Now, Next: opts.Next}
	if err := thresholds.Validate(); err != nil {
		return err
	}
	if opts.Limit < 0 {
		return fmt.Errorf("--limit must not be negative")
	}

	skills := opts.Skills
	if skills == nil {
		skills = []string{}
	}

	loader := usecase.NewCatalogLoader(catalog.NewStatic(doc), nil, 1, nil)
	uc := usecase.NewMatchingUsecase(loader, matching.NewEngine(thresholds), opts.Limit)

	var res any
	if opts.JobID != "" {
		d, err := uc.MatchJob(ctx, opts.JobID, skills, 0)
		if err != nil {
			return fmt.Errorf("match job %q: %w", opts.JobID, err)
		}
		res = dto.NewJobDetailResponse(d)
	} else {
		matches, err := uc.MatchJobs(ctx, skills)
		if err != nil {
			return err
		}
		res = dto.NewJobMatchResponses(matches)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
