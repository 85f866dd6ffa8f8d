package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/floatdesk/internal/application/usecase"
	"github.com/bnema/floatdesk/internal/cli/styles"
)

var (
	layoutShowJSON bool
	layoutYes      bool
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Inspect and manage stored layouts",
	Long: `Inspect, export, import and reset the layout floatdesk restores on start.

The layout slot comes from persistence.slot in the config file.

Examples:
  floatdesk layout show
  floatdesk layout export ~/backups
  floatdesk layout import floatdesk-layout-2026-01-02.json`,
}

var layoutShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored layout",
	RunE:  runLayoutShow,
}

var layoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored layout slots",
	RunE:  runLayoutList,
}

var layoutExportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Write the stored layout to a JSON file",
	Long: `Write the stored layout to a JSON file. Without a path, or with a
directory, the file is named floatdesk-layout-YYYY-MM-DD.json.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLayoutExport,
}

var layoutImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the stored layout with a JSON file",
	Long: `Validate a layout file and store it as the current layout. The file
must carry the current layout version. The desk shows it on next start.`,
	Args: cobra.ExactArgs(1),
	RunE: runLayoutImport,
}

var layoutResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the stored layout",
	RunE:  runLayoutReset,
}

var layoutSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of layout files",
	RunE:  runLayoutSchema,
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	layoutCmd.AddCommand(layoutShowCmd, layoutListCmd, layoutExportCmd, layoutImportCmd, layoutResetCmd, layoutSchemaCmd)

	layoutShowCmd.Flags().BoolVar(&layoutShowJSON, "json", false, "output the raw layout JSON")
	layoutImportCmd.Flags().BoolVarP(&layoutYes, "yes", "y", false, "skip confirmation prompt")
	layoutResetCmd.Flags().BoolVarP(&layoutYes, "yes", "y", false, "skip confirmation prompt")
}

func runLayoutShow(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	out, err := app.LoadLayoutUC.Execute(app.Ctx(), nil)
	if err != nil {
		return err
	}
	slot := app.Config.Persistence.Slot
	if out.Layout == nil {
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render("No stored layout in slot "+slot))
		return nil
	}
	if layoutShowJSON {
		return usecase.EncodeLayout(cmd.OutOrStdout(), out.Layout)
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewLayoutRenderer(app.Theme).RenderLayout(slot, out.Layout))
	return nil
}

func runLayoutList(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	infos, err := app.ListLayoutsUC.Execute(app.Ctx())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprint(out, styles.NewLayoutRenderer(app.Theme).RenderList(infos, app.Config.Persistence.Slot))
	fmt.Fprintln(out, app.Theme.Subtle.Render("  stored in "+app.DB.Path()))
	return nil
}

func runLayoutExport(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	loaded, err := app.LoadLayoutUC.Execute(app.Ctx(), nil)
	if err != nil {
		return err
	}
	if loaded.Layout == nil {
		return fmt.Errorf("no stored layout in slot %s", app.Config.Persistence.Slot)
	}

	input := usecase.ExportLayoutInput{Layout: loaded.Layout}
	if len(args) == 1 {
		input.Path = args[0]
	}
	_, err = app.ExportLayoutUC.Execute(app.Ctx(), input)
	return err
}

func runLayoutImport(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	_, err = app.ImportLayoutUC.Execute(app.Ctx(), usecase.ImportLayoutInput{Path: args[0], AssumeYes: layoutYes})
	if errors.Is(err, usecase.ErrImportCanceled) {
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render("Import canceled"))
		return nil
	}
	return err
}

func runLayoutReset(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	if !layoutYes {
		ok, err := app.Confirmer.Confirm(app.Ctx(), "Delete the stored layout for slot "+app.Config.Persistence.Slot+"?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render("Reset canceled"))
			return nil
		}
	}

	if err := app.ResetLayoutUC.Execute(app.Ctx()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), app.Theme.SuccessStyle.Render(styles.IconCheck+" Stored layout cleared"))
	return nil
}

func runLayoutSchema(cmd *cobra.Command, _ []string) error {
	data, err := usecase.LayoutSchema()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
