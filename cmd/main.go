package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gorlea-ink/gorlea/cmd/service"
)

func main() {
	root := &cobra.Command{
		Use:   "gorlea",
		Short: "gorlea journal service",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("empty command")
		},
	}

	root.AddCommand(service.NewCommand(), service.NewInitCommand(), service.NewTokenCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
