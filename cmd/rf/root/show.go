package root

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ryoumen0412/RollForge/internal/dnd"
	"github.com/ryoumen0412/RollForge/internal/ui"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <character>",
		Short: "Show a character sheet (by id or name)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("character id or name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			c, err := svc.Find(ctx, args[0])
			if err != nil {
				return err
			}
			printSheet(cmd.OutOrStdout(), c)
			return nil
		},
	}

	return cmd
}

func printSheet(out io.Writer, c *dnd.Character) {
	fmt.Fprintln(out, ui.Heading(ui.IconSword, fmt.Sprintf("%s — %s", c.Name(), c.Class())))
	fmt.Fprintln(out, ui.LabelValue("ID", c.ID()))
	if c.PortraitPath() != "" {
		fmt.Fprintln(out, ui.LabelValue("Portrait", c.PortraitPath()))
	}
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, ui.H2.Render("Stats"))
	for _, stat := range dnd.Stats() {
		score, _ := c.StatScore(stat)
		mod, _ := c.Modifier(stat)
		fmt.Fprintf(out, "- %s %2d (%s)\n", ui.Key.Render(string(stat)), score, ui.Mod(mod))
	}
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, ui.H2.Render("Skills"))
	for _, stat := range dnd.Stats() {
		skills, _ := dnd.SkillsByStat(stat)
		for _, skill := range skills {
			fmt.Fprintf(out, "%s %s %s\n",
				ui.ProficiencyMark(c.HasProficiency(skill)),
				skill,
				ui.Muted.Render("("+string(stat)+")"),
			)
		}
	}
}
