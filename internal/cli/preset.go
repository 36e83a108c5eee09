package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"bnbstat/internal/filter"
)

func newPresetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage saved filter presets",
	}

	cmd.AddCommand(
		newPresetSaveCmd(),
		newPresetListCmd(),
		newPresetDeleteCmd(),
	)

	return cmd
}

func newPresetSaveCmd() *cobra.Command {
	var ff filterFlags

	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save the given filter flags as a named preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			spec, err := ff.spec()
			if err != nil {
				return err
			}
			if spec.IsZero() {
				return fmt.Errorf("refusing to save an empty preset; pass at least one filter flag")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.Presets == nil {
				cfg.Presets = make(map[string]filter.Spec)
			}
			cfg.Presets[name] = spec

			if err := saveConfig(cfg); err != nil {
				return err
			}
			fmt.Printf("Saved preset %q\n", name)
			return nil
		},
	}

	addFilterFlags(cmd, &ff)
	return cmd
}

func newPresetListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(cfg.Presets)
			}
			if len(cfg.Presets) == 0 {
				fmt.Println("No presets saved.")
				return nil
			}

			names := make([]string, 0, len(cfg.Presets))
			for name := range cfg.Presets {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}
}

func newPresetDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if _, ok := cfg.Presets[name]; !ok {
				return fmt.Errorf("unknown filter preset %q", name)
			}
			delete(cfg.Presets, name)

			if err := saveConfig(cfg); err != nil {
				return err
			}
			fmt.Printf("Deleted preset %q\n", name)
			return nil
		},
	}
}
