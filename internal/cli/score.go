package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/gdugdh24/roommate-backend/internal/matching"
)

type penaltyOut struct {
	Reason string `yaml:"reason"`
	Points int    `yaml:"points"`
}

type scoreOut struct {
	Viewer       string       `yaml:"viewer"`
	Candidate    string       `yaml:"candidate"`
	Score        int          `yaml:"score"`
	Tier         string       `yaml:"tier"`
	TotalPenalty int          `yaml:"totalPenalty"`
	Penalties    []penaltyOut `yaml:"penalties,omitempty"`
}

func newScoreCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score VIEWER CANDIDATE",
		Short: "Explain how well CANDIDATE suits VIEWER",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fx, err := loadFixtures(rt.v.GetString("fixtures"))
			if err != nil {
				return err
			}
			rt.log.Debug("fixtures loaded", zap.Int("profiles", len(fx.profiles)))

			pairs := [][2]string{{args[0], args[1]}}
			if both, _ := cmd.Flags().GetBool("both"); both {
				pairs = append(pairs, [2]string{args[1], args[0]})
			}

			results := make([]scoreOut, 0, len(pairs))
			for _, pair := range pairs {
				viewer, err := fx.get(pair[0])
				if err != nil {
					return err
				}
				candidate, err := fx.get(pair[1])
				if err != nil {
					return err
				}
				results = append(results, toScoreOut(pair[0], pair[1], matching.Explain(viewer, candidate)))
			}

			return rt.printScores(results)
		},
	}
	cmd.Flags().Bool("both", false, "also score the reverse direction")
	return cmd
}

func toScoreOut(viewer, candidate string, b matching.Breakdown) scoreOut {
	out := scoreOut{
		Viewer:       viewer,
		Candidate:    candidate,
		Score:        b.Score,
		Tier:         string(b.Tier),
		TotalPenalty: b.Total,
	}
	for _, p := range b.Penalties {
		out.Penalties = append(out.Penalties, penaltyOut{Reason: p.Reason, Points: p.Points})
	}
	return out
}

func (rt *runtime) printScores(results []scoreOut) error {
	if rt.v.GetString("output") == "yaml" {
		return yaml.NewEncoder(rt.out).Encode(results)
	}

	w := tabwriter.NewWriter(rt.out, 0, 4, 2, ' ', 0)
	for _, r := range results {
		fmt.Fprintf(w, "%s -> %s\t%d\t%s\n", r.Viewer, r.Candidate, r.Score, r.Tier)
		for _, p := range r.Penalties {
			fmt.Fprintf(w, "  %s\t-%d\t\n", p.Reason, p.Points)
		}
		fmt.Fprintf(w, "  total penalty\t-%d\t\n", r.TotalPenalty)
	}
	return w.Flush()
}
