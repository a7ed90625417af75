package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mcoot/auctionclerk/internal/model"
	"github.com/mcoot/auctionclerk/internal/services/catalog"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Summarize the player salary CSV without starting a draft",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Load(cfg.CSVPath, logger)
			if err != nil {
				return err
			}

			fmt.Printf("Players: %d\n", cat.Size())
			fmt.Printf("Total base value: $%d\n", cat.RemainingValue(nil))

			counts := cat.InitialCountByPosition()
			positions := make([]string, 0, len(counts))
			for pos := range counts {
				positions = append(positions, string(pos))
			}
			sort.Strings(positions)

			fmt.Println("By position:")
			for _, pos := range positions {
				fmt.Printf("  %-8s %d\n", pos, counts[model.Position(pos)])
			}
			return nil
		},
	}
}
