package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ryoumen0412/RollForge/internal/roster"
	"github.com/ryoumen0412/RollForge/internal/ui"
)

func newCreateCmd() *cobra.Command {
	var class string
	var statFlags []string
	var profs []string
	var portrait string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a character",
		Example: `  rf create "Shadow" --class rogue \
      --stat STR=8 --stat DEX=16 --stat CON=12 --stat INT=13 --stat WIS=10 --stat CHA=14 \
      --prof stealth --prof acrobatics`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
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

			stats, err := parseStatFlags(statFlags)
			if err != nil {
				return err
			}

			c, err := svc.Create(ctx, roster.CreateInput{
				Name:          args[0],
				Class:         class,
				Stats:         stats,
				Proficiencies: profs,
				PortraitPath:  portrait,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconPlus, "Created "+c.Name()))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("ID", c.ID()))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Class", c.Class()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&class, "class", "c", "Fighter", "Character class (one of the 12 D&D 5e classes)")
	cmd.Flags().StringArrayVarP(&statFlags, "stat", "s", nil, "Stat score as NAME=VALUE (all six required)")
	cmd.Flags().StringArrayVarP(&profs, "prof", "p", nil, "Skill proficiency (repeatable)")
	cmd.Flags().StringVar(&portrait, "portrait", "", "Path to a portrait image to copy in")

	return cmd
}
