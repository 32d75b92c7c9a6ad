package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/hookcfg/config"
	"github.com/grovetools/hookcfg/schema"
)

// NewSchemaCmd creates the `schema` command.
func NewSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the configuration JSON schema",
		Long: `Prints the JSON schema that hookcfg validates configurations against.
By default this is the embedded schema shipped with the binary; --generate
reflects it freshly from the configuration types instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			generate, _ := cmd.Flags().GetBool("generate")
			if generate {
				out, err := config.GenerateSchema()
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			}

			fmt.Println(string(schema.EmbeddedSchema()))
			return nil
		},
	}

	cmd.Flags().Bool("generate", false, "Reflect the schema from the configuration types")

	return cmd
}
