package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nephila016/fakefilter/internal/classify"
	"github.com/nephila016/fakefilter/internal/debug"
)

var domainJSON bool

var domainCmd = &cobra.Command{
	Use:   "domain <domain>",
	Short: "Classify a bare domain",
	Long: `Classify a domain against the disposable domain dataset. Subdomains of
a listed domain match as well.

Examples:
  fakefilter domain tempmail.com
  fakefilter domain mail.yopmail.com
  fakefilter domain example.com --domains custom.yaml
  fakefilter domain example.com --json`,
	Args: cobra.ExactArgs(1),
	RunE: runDomain,
}

func init() {
	rootCmd.AddCommand(domainCmd)

	domainCmd.Flags().BoolVar(&domainJSON, "json", false, "Output as JSON")
}

func runDomain(cmd *cobra.Command, args []string) error {
	domain := args[0]
	log := debug.GetLogger()

	log.Info("DOMAIN", "Checking domain: %s", domain)

	cfg, err := loadDomainConfig()
	if err != nil {
		return err
	}

	c := classify.New(cfg, classify.DefaultOptions())
	result := c.ClassifyDomain(domain)

	if domainJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	return outputDomainConsole(result)
}

func outputDomainConsole(result *classify.Result) error {
	green := color.New(color.FgGreen, color.Bold)
	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	cyan := color.New(color.FgCyan)
	white := color.New(color.FgWhite, color.Bold)

	fmt.Println()
	white.Printf("Domain: %s\n", result.Domain)
	fmt.Println()

	cyan.Println("Classification:")
	if result.Fake {
		fmt.Printf("  Disposable:    %s (matched %s)\n", red.Sprint("Yes"), result.MatchedDomain)
	} else {
		fmt.Printf("  Disposable:    %s\n", green.Sprint("No"))
	}

	if result.FreeProvider {
		fmt.Printf("  Free Provider: %s\n", yellow.Sprint("Yes"))
	} else {
		fmt.Printf("  Free Provider: %s\n", green.Sprint("No"))
	}
	fmt.Println()

	return nil
}
