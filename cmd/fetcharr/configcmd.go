package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/fetcharr/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage fetcharr configuration",
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the config file for errors",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.LoadAndValidate(configPath); err != nil {
			return err
		}
		fmt.Printf("%s: OK\n", configPath)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an example config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.WriteExample(configPath); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", configPath)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configValidateCmd, configInitCmd)
	rootCmd.AddCommand(configCmd)
}
