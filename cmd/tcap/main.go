package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/HelpPal/tcap/internal/certify"
	"github.com/HelpPal/tcap/internal/config"
	"github.com/HelpPal/tcap/internal/limits"
	"github.com/HelpPal/tcap/internal/output"
	"github.com/HelpPal/tcap/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "tcap",
	Short: "LIHTC tenant income certification engine",
	Long: "Computes tenant income certifications for LIHTC properties: " +
		"annualized household income under the greater-of rule, income from " +
		"assets, and eligibility against published county limits.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	},
}

// loadEngine builds the certification engine from the command's
// --regulatory and --limits flags. A missing limits file leaves limit
// lookups empty, reported as "no limit published".
func loadEngine(cmd *cobra.Command) (*certify.Engine, error) {
	regulatoryFile, _ := cmd.Flags().GetString("regulatory")
	rules, err := config.LoadRules(regulatoryFile)
	if err != nil {
		return nil, err
	}
	limitsFile, _ := cmd.Flags().GetString("limits")
	var store *limits.Store
	if limitsFile != "" {
		if store, err = limits.Load(limitsFile); err != nil {
			return nil, err
		}
	} else {
		store = &limits.Store{}
		log.Warn().Msg("no limits file: eligibility will report no published limit")
	}
	return certify.NewEngine(rules, store), nil
}

var certifyCmd = &cobra.Command{
	Use:   "certify [input-file]",
	Short: "Compute a household income certification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		app, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		return output.GenerateReport(os.Stdout, engine.Certify(app), format)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file...]",
	Short: "Validate application input files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		failed := false
		for _, inputFile := range args {
			if _, err := parser.LoadFromFile(inputFile); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", inputFile, err)
				failed = true
				continue
			}
			fmt.Printf("%s: OK\n", inputFile)
		}
		if failed {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}

var limitsCmd = &cobra.Command{
	Use:   "limits",
	Short: "Manage the published county limit tables",
}

// effectiveDate parses the --effective flag, defaulting to now. The date
// stamps imported limits (their publication date) and selects the limits
// in force on export.
func effectiveDate(cmd *cobra.Command) (time.Time, error) {
	effective, _ := cmd.Flags().GetString("effective")
	if effective == "" {
		return time.Now().UTC(), nil
	}
	at, err := time.Parse("2006-01-02", effective)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad --effective date %q: %w", effective, err)
	}
	return at, nil
}

// loadOrCreateStore reads the --limits file, starting empty when the file
// does not exist yet.
func loadOrCreateStore(limitsFile string) (*limits.Store, error) {
	if _, err := os.Stat(limitsFile); os.IsNotExist(err) {
		return &limits.Store{}, nil
	}
	return limits.Load(limitsFile)
}

var importIncomeCmd = &cobra.Command{
	Use:   "import-income [dataset-file...]",
	Short: "Import HUD Section 8 income limits (CSV or XLSX)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		createdAt, err := effectiveDate(cmd)
		if err != nil {
			return err
		}
		limitsFile, _ := cmd.Flags().GetString("limits")
		store, err := loadOrCreateStore(limitsFile)
		if err != nil {
			return err
		}
		for _, dataset := range args {
			if err := store.ImportIncomeLevelsFile(dataset, createdAt); err != nil {
				return err
			}
		}
		return store.Save(limitsFile)
	},
}

var importRentCmd = &cobra.Command{
	Use:   "import-rent [dataset-file...]",
	Short: "Import HUD MTSP rent limits for California (CSV or XLSX)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		createdAt, err := effectiveDate(cmd)
		if err != nil {
			return err
		}
		computeLimits, _ := cmd.Flags().GetBool("compute-limits")
		limitsFile, _ := cmd.Flags().GetString("limits")
		store, err := loadOrCreateStore(limitsFile)
		if err != nil {
			return err
		}
		for _, dataset := range args {
			if err := store.ImportRentLevelsFile(dataset, createdAt, computeLimits); err != nil {
				return err
			}
		}
		return store.Save(limitsFile)
	},
}

var exportLimitsCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the income and rent levels in force per county",
	RunE: func(cmd *cobra.Command, args []string) error {
		at, err := effectiveDate(cmd)
		if err != nil {
			return err
		}
		limitsFile, _ := cmd.Flags().GetString("limits")
		store, err := limits.Load(limitsFile)
		if err != nil {
			return err
		}
		regulatoryFile, _ := cmd.Flags().GetString("regulatory")
		rules, err := config.LoadRules(regulatoryFile)
		if err != nil {
			return err
		}
		if err := store.ExportIncomeLevels(os.Stdout, at); err != nil {
			return err
		}
		return store.ExportRentLevels(os.Stdout, at, &rules.RentRounding)
	},
}

var reportCmd = &cobra.Command{
	Use:   "report [input-file...]",
	Short: "One-line-per-application income report",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		parser := config.NewInputParser()
		output.WriteSummaryHeader(os.Stdout)
		for _, inputFile := range args {
			app, err := parser.LoadFromFile(inputFile)
			if err != nil {
				return fmt.Errorf("%s: %w", inputFile, err)
			}
			output.WriteSummaryLine(os.Stdout, engine.Certify(app))
		}
		return nil
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui [input-file]",
	Short: "Browse a certification interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		app, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}
		program := tea.NewProgram(
			tui.NewModel(engine.Certify(app)), tea.WithAltScreen())
		_, err = program.Run()
		return err
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "tcap %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Version)
			}
		},
	}
}

func addEngineFlags(cmd *cobra.Command) {
	cmd.Flags().String("regulatory", "",
		"Path to the regulatory rules file (built-in CTCAC rules if unset)")
	cmd.Flags().String("limits", "", "Path to the limits YAML file")
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	certifyCmd.Flags().StringP("format", "f", "console",
		"Output format (console, csv, json)")
	addEngineFlags(certifyCmd)
	addEngineFlags(reportCmd)
	addEngineFlags(tuiCmd)

	importIncomeCmd.Flags().String("effective", "",
		"Publication date of the dataset (YYYY-MM-DD, default today)")
	importIncomeCmd.Flags().String("limits", "limits.yaml",
		"Limits YAML file to update")
	importRentCmd.Flags().String("effective", "",
		"Publication date of the dataset (YYYY-MM-DD, default today)")
	importRentCmd.Flags().String("limits", "limits.yaml",
		"Limits YAML file to update")
	importRentCmd.Flags().Bool("compute-limits", false,
		"Derive rent limits from per-person income levels instead of direct 60% figures")
	exportLimitsCmd.Flags().String("effective", "",
		"Date the levels should be in force (YYYY-MM-DD, default today)")
	exportLimitsCmd.Flags().String("limits", "limits.yaml",
		"Limits YAML file to read")
	exportLimitsCmd.Flags().String("regulatory", "",
		"Path to the regulatory rules file (built-in CTCAC rules if unset)")

	limitsCmd.AddCommand(importIncomeCmd)
	limitsCmd.AddCommand(importRentCmd)
	limitsCmd.AddCommand(exportLimitsCmd)

	rootCmd.AddCommand(certifyCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(limitsCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
