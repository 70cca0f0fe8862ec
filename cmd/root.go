package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nephila016/fakefilter/internal/debug"
	"github.com/nephila016/fakefilter/matcher"
)

var (
	cfgFile     string
	domainsFile string
	debugLevel  int
	debugFile   string
	quiet       bool
	noColor     bool
	version     string
	buildTime   string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fakefilter",
	Short: "Disposable email and domain detection tool",
	Long: `fakefilter classifies email addresses and domains against a list of
known disposable (fake) domains, entirely offline.

Features:
  - Disposable domain detection with subdomain matching
  - Plus addressing (subaddressing) detection
  - Role account and free provider classification
  - Custom domain datasets (YAML/JSON)
  - Concurrent bulk classification
  - Multiple output formats (JSON, JSONL, CSV, TXT)

Examples:
  fakefilter check user@tempmail.com
  fakefilter domain mail.yopmail.com
  fakefilter bulk -f signups.txt -o results.csv`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize debug logging
		level := debug.Level(debugLevel)
		if err := debug.Init(level, debugFile, !noColor); err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		debug.Close()
	},
}

// Execute adds all child commands to the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersionInfo sets version information
func SetVersionInfo(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default $HOME/.fakefilter.yaml)")
	rootCmd.PersistentFlags().StringVar(&domainsFile, "domains", "", "Domain dataset file overriding the bundled list")
	rootCmd.PersistentFlags().CountVarP(&debugLevel, "debug", "d", "Enable debug mode (use -d, -dd, -ddd for more detail)")
	rootCmd.PersistentFlags().StringVar(&debugFile, "debug-file", "", "Write debug output to file")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - minimal output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	// Bind flags to viper
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("domains", rootCmd.PersistentFlags().Lookup("domains"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".fakefilter")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()
	viper.ReadInConfig() // Ignore error if config doesn't exist
}

// loadDomainConfig resolves the domain dataset for a command run. With
// no override it returns nil, which makes the matcher fall back to the
// bundled dataset. The dataset file shape is a "domains" map from
// domain name to opaque metadata:
//
//	domains:
//	  tempmail.com: {}
//	  10minutemail.com: {source: "abuse-report"}
func loadDomainConfig() (*matcher.Config, error) {
	log := debug.GetLogger()

	path := domainsFile
	if path == "" {
		path = viper.GetString("domains")
	}
	if path == "" {
		log.Detail("CONFIG", "No dataset override, using bundled domains (%d)", matcher.DefaultDomainCount())
		return nil, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read domain dataset %s: %w", path, err)
	}

	raw := v.GetStringMap("domains")
	if len(raw) == 0 {
		return nil, fmt.Errorf("domain dataset %s has no \"domains\" entries", path)
	}

	domains := make(map[string]matcher.Metadata, len(raw))
	for domain, meta := range raw {
		m, _ := meta.(map[string]interface{})
		domains[domain] = matcher.Metadata(m)
	}

	log.Info("CONFIG", "Loaded %d domains from %s", len(domains), path)
	return matcher.NewConfig(domains), nil
}
