package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/osiris-intel/osiris/internal/tui"
	"github.com/osiris-intel/osiris/internal/view"
)

type renderOptions struct {
	view      string
	page      int
	pageSet   bool
	tab       string
	modal     bool
	collapsed bool
}

// events replays the flags in the order a user would click them.
func (o renderOptions) events() []view.Event {
	evs := []view.Event{view.Navigate{To: view.ViewID(o.view)}}
	if o.collapsed {
		evs = append(evs, view.ToggleSidebar{})
	}
	// Any explicit page is replayed, including zero and negatives.
	if o.pageSet {
		evs = append(evs, view.ChangePage{Page: o.page})
	}
	if o.tab != "" {
		evs = append(evs, view.SelectTab{Tab: view.Tab(o.tab)})
	}
	if o.modal {
		evs = append(evs, view.OpenModal{})
	}
	return evs
}

func newRenderCmd() *cobra.Command {
	var opts renderOptions
	var asJSON bool
	var width int

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one screen to stdout",
		Example: `  osiris render --view breachedAccounts --page 2
  osiris render --view aiWorkflows --modal --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			_, cat, err := loadCatalog(cfg)
			if err != nil {
				return err
			}

			opts.pageSet = cmd.Flags().Changed("page")
			state := view.New(cat)
			for _, ev := range opts.events() {
				state.Dispatch(ev)
			}
			sc := view.Render(state)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(sc)
			}

			if width == 0 {
				if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
					width = w
				}
			}
			heading := color.New(color.FgHiMagenta, color.Bold).SprintfFunc()
			fmt.Fprintln(out, heading("%s (%s)", sc.Title, sc.View))
			fmt.Fprintln(out, tui.RenderScreen(sc, width))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.view, "view", string(view.ViewDashboard), "view id to navigate to")
	cmd.Flags().IntVar(&opts.page, "page", 0, "page number for paginated views")
	cmd.Flags().StringVar(&opts.tab, "tab", "", "dashboard tab (alerts|history)")
	cmd.Flags().BoolVar(&opts.modal, "modal", false, "open the workflow creation modal")
	cmd.Flags().BoolVar(&opts.collapsed, "collapsed", false, "collapse the sidebar")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the screen as JSON")
	cmd.Flags().IntVar(&width, "width", 0, "output width (default: terminal width)")
	return cmd
}
