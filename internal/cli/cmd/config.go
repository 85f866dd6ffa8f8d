package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/floatdesk/internal/application/usecase"
	"github.com/bnema/floatdesk/internal/cli/styles"
	"github.com/bnema/floatdesk/internal/infrastructure/config"
)

var (
	configKeysJSON    bool
	configKeysSection string
	configSchemaPrint bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show where the configuration lives and which settings it accepts.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys [prefix]",
	Short: "List every configuration key with its default",
	Long: `List every configuration key grouped by section, with its type,
default value, valid range and description.

Examples:
  floatdesk config keys
  floatdesk config keys --section keyboard
  floatdesk config keys layout.fit --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigKeys,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write the JSON schema of the config file",
	Long: `Write config.schema.json next to the config file so editors with
TOML schema support can validate and complete settings.

Use --print to write the schema to stdout instead.`,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configKeysCmd)
	configCmd.AddCommand(configSchemaCmd)
	configKeysCmd.Flags().BoolVar(&configKeysJSON, "json", false, "output as JSON")
	configKeysCmd.Flags().StringVarP(&configKeysSection, "section", "s", "", "only keys of this section")
	configSchemaCmd.Flags().BoolVar(&configSchemaPrint, "print", false, "print the schema instead of writing it")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	path := ""
	if app.ConfigManager != nil {
		path = app.ConfigManager.GetConfigFile()
	}
	if path == "" {
		if path, err = config.GetConfigFile(); err != nil {
			return err
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func runConfigKeys(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	uc := usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider())
	input := usecase.GetConfigSchemaInput{Section: configKeysSection}
	if len(args) == 1 {
		input.Prefix = args[0]
	}
	out, err := uc.Execute(app.Ctx(), input)
	if err != nil {
		return err
	}

	renderer := styles.NewConfigSchemaRenderer(app.Theme)
	if configKeysJSON {
		js, err := renderer.RenderJSON(out.Keys)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), js)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(out.Keys))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	if configSchemaPrint {
		data, err := config.JSONSchema()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	path, err := config.GenerateSchemaFile()
	if err != nil {
		return fmt.Errorf("write schema: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), app.Theme.SuccessStyle.Render(styles.IconCheck+" Schema written to "+path))
	return nil
}
