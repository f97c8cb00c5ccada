package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/weisyn/wallet/internal/cli/about"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "关于本程序",
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, err := loadProvider()
		if err != nil {
			return err
		}
		return about.NewView(os.Stdout, newComponents(provider), language(provider)).Render()
	},
}
