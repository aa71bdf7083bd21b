package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ryoumen0412/RollForge/internal/ui"
)

func newRollCmd() *cobra.Command {
	var expertise bool

	cmd := &cobra.Command{
		Use:   "roll <character> <skill-or-stat> <die>",
		Short: "Total an ability check from a physical die result",
		Example: `  rf roll Shadow stealth 15
  rf roll Shadow stealth 15 --expertise
  rf roll Shadow STR 10`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				return errors.New("expected: <character> <skill-or-stat> <die>")
			}
			if _, err := strconv.Atoi(args[2]); err != nil {
				return errors.New("die result must be an integer")
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
			die, _ := strconv.Atoi(args[2])

			b, _, err := svc.Roll(ctx, c.ID(), die, args[1], expertise)
			if err != nil {
				return err
			}

			check := args[1]
			if b.IsSkill {
				check = fmt.Sprintf("%s (%s)", check, b.Stat)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconDie, fmt.Sprintf("%s — %s", c.Name(), check)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Die", b.DieResult))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue(fmt.Sprintf("%s modifier", b.Stat), ui.Mod(b.StatModifier)))
			if b.IsSkill {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Proficiency", ui.Mod(b.ProficiencyBonus)))
			}
			if b.ExpertiseBonus != 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Expertise", ui.Mod(b.ExpertiseBonus)))
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Total", ui.Gold.Render(strconv.Itoa(b.Total))))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&expertise, "expertise", "e", false, "Apply expertise (Rogues only, proficient skills only)")

	return cmd
}
