package main

import (
	"fmt"

	"github.com/0xdevcult/blog"
)

var contentDir string

func init() {
	rootCmd.PersistentFlags().StringVar(&contentDir, "content", "", "docs collection root (default $CONTENT_DIR or src/content/docs)")
}

// newApp builds the App from the environment, letting flags override it.
func newApp(override func(*blog.SiteConfig)) (*blog.App, error) {
	cfg, err := blog.ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	if contentDir != "" {
		cfg.ContentDir = contentDir
	}
	if override != nil {
		override(&cfg)
	}
	app, err := blog.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create app: %w", err)
	}
	return app, nil
}
