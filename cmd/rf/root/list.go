package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ryoumen0412/RollForge/internal/ui"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all characters",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			all, err := svc.List(ctx)
			if err != nil {
				return err
			}
			if len(all) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No characters yet. Try: rf create"))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconScroll, fmt.Sprintf("Characters (%d)", len(all))))
			for _, c := range all {
				profCount := len(c.Proficiencies())
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s\n",
					ui.Key.Render(c.Name()),
					ui.Muted.Render(fmt.Sprintf("(%s, %d proficiencies)", c.Class(), profCount)),
					ui.Muted.Render(shortID(c.ID())),
				)
			}
			return nil
		},
	}

	return cmd
}

func shortID(id string) string {
	if len(id) > 8 {
		return "[" + id[:8] + "]"
	}
	return "[" + id + "]"
}
