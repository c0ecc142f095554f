package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"git.home.luguber.info/inful/docdraft/internal/pipeline"
)

// PlanCmd implements the 'plan' command.
type PlanCmd struct {
	DraftFlags `embed:""`
	JSON       bool `name:"json" help:"Print the plan as JSON"`
}

// PagePlan is the classification of one page.
type PagePlan struct {
	ID    string `json:"id"`
	Draft bool   `json:"draft"`
}

// Plan is the machine-readable result of 'docdraft plan --json'.
type Plan struct {
	BuildID  string             `json:"build_id"`
	Decision *pipeline.Decision `json:"decision"`
	Pages    []PagePlan         `json:"pages"`
}

func (p *PlanCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root, &p.DraftFlags)
	if err != nil {
		return err
	}
	configureLogging(g, root, cfg)

	s, err := newSession(g, root, cfg)
	if err != nil {
		return err
	}
	if err := s.run(context.Background()); err != nil {
		return err
	}

	plan := newPlan(s.bc)
	if p.JSON {
		enc := json.NewEncoder(g.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	}
	return writePlanText(g.Out, plan)
}

func newPlan(bc *pipeline.BuildContext) Plan {
	plan := Plan{BuildID: bc.BuildID, Decision: bc.Decision, Pages: make([]PagePlan, 0, len(bc.Pages))}
	for _, page := range bc.Pages {
		plan.Pages = append(plan.Pages, PagePlan{ID: page.ID, Draft: page.IsDraft()})
	}
	return plan
}

func writePlanText(w io.Writer, plan Plan) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	d := plan.Decision
	if d != nil {
		outcome := d.Outcome
		if d.Provider != "" {
			outcome += " (" + d.Provider + ")"
		}
		fmt.Fprintf(tw, "outcome:\t%s\n", outcome)
		if d.DevBranch != "" {
			fmt.Fprintf(tw, "devbranch:\t%s\n", d.DevBranch)
		}
		if d.Repository != "" {
			fmt.Fprintf(tw, "repository:\t%s\n", d.Repository)
		}
		if d.Drafting() {
			fmt.Fprintf(tw, "modified:\t%s\n", strings.Join(d.Modified, ", "))
		}
		fmt.Fprintln(tw)
	}

	drafts := 0
	for _, page := range plan.Pages {
		mode := "full"
		if page.Draft {
			mode = "draft"
			drafts++
		}
		fmt.Fprintf(tw, "%s\t%s\n", mode, page.ID)
	}
	fmt.Fprintf(tw, "\n%d pages, %d draft\n", len(plan.Pages), drafts)
	return tw.Flush()
}
