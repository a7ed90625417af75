package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/auctionclerk/internal/factory"
)

func newDraftCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "draft",
		Short: "Run an interactive auction draft session",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("Starting new draft. Reading %s ...\n", cfg.CSVPath)

			app, err := factory.New(factory.Config{
				CSVPath: cfg.CSVPath,
				Budget:  cfg.Budget,
				MyTeam:  cfg.MyTeam,
				Logger:  logger,
				Input:   os.Stdin,
				Output:  os.Stdout,
			})
			if err != nil {
				return err
			}

			return app.Controller.Run()
		},
	}
}
