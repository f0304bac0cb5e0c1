package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stratus-io/stratus/internal/cloud"
)

var providersCmd = &cobra.Command{
	Use:   "providers [tag]",
	Short: "List supported providers or show one provider's offering",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := cloud.NewRegistry()
		if len(args) == 0 {
			for _, tag := range reg.Providers() {
				fmt.Println(tag)
			}
			return nil
		}

		factory, err := reg.Resolve(args[0])
		if err != nil {
			return err
		}
		info := factory.Info()

		fmt.Printf("%s (%s)\n", info.Name, info.Code)
		if len(info.Regions) == 0 {
			fmt.Println("regions: any")
		} else {
			fmt.Printf("regions: %s\n", strings.Join(info.Regions, ", "))
		}

		services := make([]string, 0, len(info.Services))
		for kind := range info.Services {
			services = append(services, kind)
		}
		sort.Strings(services)
		fmt.Println("services:")
		for _, kind := range services {
			fmt.Printf("  %-14s %s\n", kind, info.Services[kind])
		}
		return nil
	},
}
