package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var weaponsCmd = &cobra.Command{
	Use:   "weapons",
	Short: "List the weapon catalog and aiming profiles",
	RunE: func(cmd *cobra.Command, _ []string) error {
		catalog, profiles, err := loadAssets(context.Background(), cfg)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SLOT\tNAME\tTRIGGER\tCOST\tRESOURCE\tPER SHOT\tINTERVAL\tMUZZLES")
		for slot := 0; slot < catalog.Len(); slot++ {
			wc, err := catalog.Resolve(slot)
			if err != nil {
				fmt.Fprintf(w, "%d\t%s\t-\t-\t-\t-\t-\t-\n", slot+1, catalog.Name(slot))
				continue
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%g\t%s\t%d\n",
				slot+1, wc.Name, wc.Trigger, wc.Cost, wc.Resource, wc.PerShot, wc.FireInterval, len(wc.Muzzles))
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout())
		for i := 0; i < profiles.Len(); i++ {
			st, _ := profiles.At(i)
			fmt.Fprintf(cmd.OutOrStdout(), "aim %d %-10s fov=%g arm=%g walk=%g\n", i, profiles.Name(i), st.FieldOfView, st.ArmLength, st.MaxWalkSpeed)
		}
		return nil
	},
}
