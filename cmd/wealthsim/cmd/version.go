package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the wealthsim CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wealthsim version %s\n", version)
		fmt.Println("A UK wealth tax impact simulator")
		fmt.Println("https://github.com/openfiscal/wealthsim")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
