package main

import (
	"github.com/m-zajac/agentsmd/internal/page"
	"github.com/m-zajac/agentsmd/internal/publish"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the static site and publish it to a directory and/or s3.",
	Long: `Fetches contributors data once, renders index.html and contributors.json
and writes them to --out directory. With --s3-bucket the files are uploaded too.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		l, err := newLogger()
		if err != nil {
			return err
		}

		loader, repos, err := newLoader(l)
		if err != nil {
			return err
		}
		renderer, err := page.NewRenderer(page.DefaultMeta, repos, nil)
		if err != nil {
			return err
		}

		var publishers []publish.Publisher
		if out := viper.GetString("out"); out != "" {
			publishers = append(publishers, publish.NewDirPublisher(out))
		}
		if bucket := viper.GetString("s3-bucket"); bucket != "" {
			client, err := publish.NewS3Client(cmd.Context(), viper.GetString("region"))
			if err != nil {
				return err
			}
			p, err := publish.NewS3Publisher(client, bucket, viper.GetString("s3-prefix"))
			if err != nil {
				return err
			}
			publishers = append(publishers, p)
		}

		contributors, err := publish.Build(cmd.Context(), loader, renderer, l.WithField("component", "publish"), publishers...)
		if err != nil {
			return err
		}

		return printContributors(cmd.OutOrStdout(), contributors, !viper.GetBool("no-color"))
	},
}
