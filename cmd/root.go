package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/osa/recipes/internal/app"
	"github.com/osa/recipes/internal/client"
	"github.com/osa/recipes/internal/config"
	"github.com/osa/recipes/internal/logger"
	"github.com/spf13/cobra"
)

var (
	debugMode             bool
	quietMode             bool
	logFile               string
	configPath            string
	baseURL               string
	theme                 string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "recipes",
	Short: "Terminal browser for recipes and their generated instructions",
	Long: `Recipes lists the recipes served by a recipe backend and shows the
ingredients and step-by-step instructions of the one you pick.

Instructions are generated by the backend on demand; press g to ask for a
fresh set.`,
	Args:          cobra.NoArgs,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", logger.DefaultLogPath, "File to write the debug log to")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.recipes/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Recipe backend URL (overrides config and RECIPES_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "", "Color theme (overrides config and RECIPES_THEME)")
}

func initConfig() {
	if err := logger.Init(logFile); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Warning: %v\n", err)
	}
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("recipes %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("recipes %s\n", version)
}

// loadConfig loads the config file and environment, then applies any
// flags the user set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("base-url") {
		cfg.SetBaseURL(baseURL)
	}
	if flags.Changed("theme") {
		cfg.SetTheme(theme)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Debug("Config loaded: path=%s base_url=%s theme=%s", cfg.Path(), cfg.GetBaseURL(), cfg.GetTheme())
	return cfg, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	// Create and run the app
	m := app.New(cfg, client.New(cfg.GetBaseURL()), version)
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
