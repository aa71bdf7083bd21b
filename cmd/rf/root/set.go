package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ryoumen0412/RollForge/internal/dnd"
	"github.com/ryoumen0412/RollForge/internal/ui"
)

func newSetCmd() *cobra.Command {
	var statFlags []string
	var class string
	var name string
	var portrait string
	var addProfs []string
	var rmProfs []string

	cmd := &cobra.Command{
		Use:   "set <character>",
		Short: "Edit a character (stats, class, name, proficiencies, portrait)",
		Example: `  rf set Shadow --stat DEX=18
  rf set Shadow --class rogue --add-prof stealth
  rf set Shadow --name "Shadow the Second"`,
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
			id := c.ID()
			changed := 0

			stats, err := parseStatFlags(statFlags)
			if err != nil {
				return err
			}
			for stat, score := range stats {
				if c, err = svc.SetStat(ctx, id, stat, score); err != nil {
					return err
				}
				changed++
			}

			if class != "" {
				parsed, err := dnd.ParseClass(class)
				if err != nil {
					return err
				}
				if c, err = svc.SetClass(ctx, id, parsed); err != nil {
					return err
				}
				changed++
			}

			if name != "" {
				if c, err = svc.Rename(ctx, id, name); err != nil {
					return err
				}
				changed++
			}

			for _, raw := range addProfs {
				skill, err := dnd.ParseSkill(raw)
				if err != nil {
					return err
				}
				if c, err = svc.AddProficiency(ctx, id, skill); err != nil {
					return err
				}
				changed++
			}
			for _, raw := range rmProfs {
				skill, err := dnd.ParseSkill(raw)
				if err != nil {
					return err
				}
				if c, err = svc.RemoveProficiency(ctx, id, skill); err != nil {
					return err
				}
				changed++
			}

			if portrait != "" {
				if c, err = svc.AttachPortrait(ctx, id, portrait); err != nil {
					return err
				}
				changed++
			}

			if changed == 0 {
				return errors.New("nothing to change (see rf set --help)")
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconSparkle+" Updated "+c.Name()))
			printSheet(cmd.OutOrStdout(), c)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&statFlags, "stat", "s", nil, "Stat score as NAME=VALUE (repeatable)")
	cmd.Flags().StringVarP(&class, "class", "c", "", "New character class")
	cmd.Flags().StringVarP(&name, "name", "n", "", "New character name")
	cmd.Flags().StringVar(&portrait, "portrait", "", "Path to a new portrait image")
	cmd.Flags().StringArrayVar(&addProfs, "add-prof", nil, "Add a skill proficiency (repeatable)")
	cmd.Flags().StringArrayVar(&rmProfs, "rm-prof", nil, "Remove a skill proficiency (repeatable)")

	return cmd
}
