package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/sunwei/hugo-taxonomy/common/loggers"
	"github.com/sunwei/hugo-taxonomy/deps"
	"github.com/sunwei/hugo-taxonomy/hugolib"
	"github.com/sunwei/hugo-taxonomy/resources/page"
	"github.com/urfave/cli/v3"
)

func run(ctx context.Context, cmd *cli.Command) error {
	threshold := jww.LevelWarn
	if cmd.Bool("verbose") {
		threshold = jww.LevelInfo
	}
	logger := loggers.NewBasicLogger(threshold)

	fs := afero.NewOsFs()

	cfg, _, err := hugolib.LoadConfig(hugolib.ConfigSourceDescriptor{
		Fs:         fs,
		Filename:   cmd.String("config"),
		WorkingDir: cmd.String("source"),
	})
	if err != nil {
		return err
	}

	pages, err := hugolib.CollectPages(afero.NewBasePathFs(fs, cmd.String("source")), cmd.String("pages"))
	if err != nil {
		return fmt.Errorf("failed to read pages: %w", err)
	}

	s, err := hugolib.NewSite(deps.DepsCfg{Cfg: cfg, Logger: logger})
	if err != nil {
		return err
	}

	if err := s.Build(pages); err != nil {
		return fmt.Errorf("failed to build site: %w", err)
	}

	for _, p := range s.Taxonomies().Pages() {
		switch p.Kind() {
		case page.KindTaxonomy:
			logger.Printf("/%s/ %q (%d terms)", p.Pathname(), p.Title(), len(p.Param(page.VarTerms).([]*hugolib.Term)))
		default:
			members := p.Param(page.VarPages).(page.Pages)
			logger.Printf("/%s/ %q %v", p.Pathname(), p.Title(), members.IDs())
		}
	}

	stats := s.Stats()
	logger.Printf("%d pages scanned, %d tagged, %d terms, %d pages generated, %d omitted",
		stats.PagesScanned, stats.PagesTagged, stats.TermsCreated, stats.PagesGenerated, stats.PagesOmitted)

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:   "hugo-taxonomy",
		Usage:  "Build the taxonomy list pages of a site from its config and page data",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "source",
				Aliases: []string{"s"},
				Usage:   "Site directory",
				Value:   ".",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file, relative to the site directory",
				Value:   "config.toml",
				Sources: cli.EnvVars("HUGO_TAXONOMY_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "pages",
				Aliases: []string{"p"},
				Usage:   "Page data file (TOML or YAML), relative to the site directory",
				Value:   "pages.yaml",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log build progress",
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
