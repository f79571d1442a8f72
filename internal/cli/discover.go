package cli

import (
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/gdugdh24/roommate-backend/internal/domain"
	"github.com/gdugdh24/roommate-backend/internal/matching"
)

type resultOut struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Age    *int   `yaml:"age,omitempty"`
	Score  *int   `yaml:"score,omitempty"`
	Shared int    `yaml:"sharedHobbies"`
}

func newDiscoverCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Filter and rank the fixture profiles for a viewer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fx, err := loadFixtures(rt.v.GetString("fixtures"))
			if err != nil {
				return err
			}

			viewerID, _ := cmd.Flags().GetString("viewer")
			if viewerID == "" {
				viewerID = fx.viewer
			}
			if viewerID == "" {
				return errors.New("no viewer: pass --viewer or set viewer in the fixture file")
			}

			viewer, err := fx.get(viewerID)
			if errors.Is(err, domain.ErrProfileNotFound) {
				rt.log.Debug("viewer not in fixtures, using default preferences", zap.String("viewer", viewerID))
				viewer = domain.DefaultProfile(viewerID)
			}

			q, err := queryFromFlags(cmd)
			if err != nil {
				return err
			}

			candidates := make([]*domain.Profile, 0, len(fx.profiles))
			for _, p := range fx.profiles {
				if p.ID != viewerID && p.IsComplete() {
					candidates = append(candidates, p)
				}
			}

			results := matching.Run(candidates, viewer, q)
			rt.log.Debug("query finished",
				zap.String("viewer", viewerID),
				zap.String("sort", string(q.Sort)),
				zap.Int("candidates", len(candidates)),
				zap.Int("results", len(results)),
			)

			return rt.printResults(viewer, results)
		},
	}

	flags := cmd.Flags()
	flags.String("viewer", "", "viewer profile ID (default: viewer from the fixture file)")
	flags.StringP("query", "q", "", "free text over name, program and bio")
	flags.Int("min-age", 0, "minimum age")
	flags.Int("max-age", 0, "maximum age")
	flags.String("lease", "", "lease duration or 'any'")
	flags.StringP("sort", "s", string(matching.SortDefault), "default|match|name|age-asc|age-desc|hobbies")
	flags.Bool("show-score", false, "print match scores")
	flags.String("locale", "", "BCP 47 tag used for name collation")
	return cmd
}

func queryFromFlags(cmd *cobra.Command) (matching.QuerySpec, error) {
	flags := cmd.Flags()
	text, _ := flags.GetString("query")
	lease, _ := flags.GetString("lease")
	sortKey, _ := flags.GetString("sort")
	showScore, _ := flags.GetBool("show-score")

	q := matching.QuerySpec{
		Text:         text,
		Lease:        domain.LeaseDuration(lease),
		Sort:         matching.ParseSortKey(sortKey),
		IncludeScore: showScore,
	}
	if flags.Changed("min-age") {
		v, _ := flags.GetInt("min-age")
		q.MinAge = &v
	}
	if flags.Changed("max-age") {
		v, _ := flags.GetInt("max-age")
		q.MaxAge = &v
	}
	if locale, _ := flags.GetString("locale"); locale != "" {
		tag, err := language.Parse(locale)
		if err != nil {
			return q, fmt.Errorf("invalid locale %q: %w", locale, err)
		}
		q.Locale = tag
	}
	return q, nil
}

func (rt *runtime) printResults(viewer *domain.Profile, results []matching.Result) error {
	out := make([]resultOut, 0, len(results))
	for _, r := range results {
		out = append(out, resultOut{
			ID:     r.Profile.ID,
			Name:   r.Profile.FirstName,
			Age:    r.Profile.Age,
			Score:  r.Score,
			Shared: matching.SharedHobbies(viewer, r.Profile),
		})
	}

	if rt.v.GetString("output") == "yaml" {
		return yaml.NewEncoder(rt.out).Encode(out)
	}

	w := tabwriter.NewWriter(rt.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tID\tNAME\tAGE\tSCORE\tSHARED")
	for i, r := range out {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\n", i+1, r.ID, r.Name, optional(r.Age), optional(r.Score), r.Shared)
	}
	return w.Flush()
}

func optional(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}
