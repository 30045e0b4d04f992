package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/matsci-go/compat/internal/logging"
	"github.com/matsci-go/compat/pkg/corrections"
)

var schemeBuilders = map[string]func(corrections.SchemeOptions) (*corrections.Compatibility, error){
	"mp":            corrections.NewMaterialsProjectCompatibility,
	"mp2020":        corrections.NewMaterialsProject2020Compatibility,
	"mit":           corrections.NewMITCompatibility,
	"mitaqueous":    corrections.NewMITAqueousCompatibility,
	"mpaqueous":     corrections.NewMaterialsProjectAqueousCompatibility,
	"mpaqueous2020": corrections.NewMaterialsProjectAqueous2020Compatibility,
}

func buildScheme() (*corrections.Compatibility, error) {
	name := strings.ToLower(viper.GetString("scheme"))
	build, ok := schemeBuilders[name]
	if !ok {
		names := make([]string, 0, len(schemeBuilders))
		for n := range schemeBuilders {
			names = append(names, n)
		}
		return nil, fmt.Errorf("unknown scheme %q (known: %s)", name, strings.Join(names, ", "))
	}
	return build(corrections.SchemeOptions{
		CompatType:      corrections.CompatType(viper.GetString("compat-type")),
		DisablePeroxide: viper.GetBool("no-peroxide"),
		CheckPotcarHash: viper.GetBool("check-potcar-hash"),
	})
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "compat",
		Short:         "Apply energy-correction compatibility schemes to computed entries",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.NewLogger(viper.GetInt("verbosity"), false)
		},
	}

	pf := root.PersistentFlags()
	pf.String("scheme", "mp2020", "correction scheme: mp, mp2020, mit, mitaqueous, mpaqueous, mpaqueous2020")
	pf.String("compat-type", "Advanced", "GGA excludes +U runs; Advanced mixes GGA and GGA+U")
	pf.Bool("no-peroxide", false, "disable peroxide/superoxide/ozonide detection")
	pf.Bool("check-potcar-hash", false, "validate pseudopotentials by content hash")
	pf.IntP("verbosity", "v", 0, "log verbosity (1=debug, 2=trace)")
	cobra.CheckErr(viper.BindPFlags(pf))
	viper.SetEnvPrefix("COMPAT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	root.AddCommand(newProcessCmd(), newExplainCmd())
	return root
}

func newProcessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "process <entries.json>",
		Short: "Adjust entries, dropping incompatible ones, and print the results as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scheme, err := buildScheme()
			if err != nil {
				return err
			}
			entries, err := loadEntries(args[0])
			if err != nil {
				return err
			}
			adjusted := scheme.ProcessEntries(entries)
			logging.Log.Info("processed entries",
				"scheme", scheme.Name(), "in", len(entries), "out", len(adjusted))

			results := make([]resultJSON, 0, len(adjusted))
			for _, entry := range adjusted {
				results = append(results, toResult(entry))
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(results)
		},
	}
}

func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <entries.json>",
		Short: "Print a per-correction breakdown for every entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scheme, err := buildScheme()
			if err != nil {
				return err
			}
			entries, err := loadEntries(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, entry := range entries {
				if err := scheme.Explain(out, entry); err != nil {
					fmt.Fprintf(out, "entry %s: %v\n", entry.EntryID, err)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
