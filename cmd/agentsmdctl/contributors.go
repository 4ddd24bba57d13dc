package main

import (
	"fmt"

	"github.com/m-zajac/agentsmd/internal/api/grpc"
	"github.com/m-zajac/agentsmd/internal/app"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	grpcLib "google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var contributorsCmd = &cobra.Command{
	Use:   "contributors",
	Short: "Fetch contributors of example repositories and print them as a table.",
	Long: `Runs a single fetch cycle against github api and prints avatars and totals per repository.
Repositories whose data couldn't be fetched completely are marked as degraded.

With --grpc the data is taken from a running agentsmd server instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		l, err := newLogger()
		if err != nil {
			return err
		}

		var contributors app.ContributorsPage
		if addr := viper.GetString("grpc"); addr != "" {
			conn, err := grpcLib.NewClient(addr, grpcLib.WithTransportCredentials(insecure.NewCredentials()))
			if err != nil {
				return fmt.Errorf("connecting to %s: %w", addr, err)
			}
			defer conn.Close()

			contributors, err = grpc.NewClient(conn).Load(cmd.Context())
			if err != nil {
				return err
			}
		} else {
			loader, _, err := newLoader(l)
			if err != nil {
				return err
			}
			contributors, err = loader.Load(cmd.Context())
			if err != nil {
				return err
			}
		}

		return printContributors(cmd.OutOrStdout(), contributors, !viper.GetBool("no-color"))
	},
}
