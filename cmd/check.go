package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nephila016/fakefilter/internal/classify"
	"github.com/nephila016/fakefilter/internal/debug"
	"github.com/nephila016/fakefilter/internal/output"
)

var (
	checkSkipRole bool
	checkSkipFree bool
	checkOutput   string
	checkJSON     bool
)

var checkCmd = &cobra.Command{
	Use:   "check <email>",
	Short: "Classify a single email address",
	Long: `Classify a single email address against the disposable domain dataset.

The classification includes:
  1. Disposable domain match (exact and subdomain)
  2. Plus addressing detection
  3. Role account detection
  4. Free provider detection

Examples:
  fakefilter check user@tempmail.com
  fakefilter check user+promo@example.com --json
  fakefilter check user@example.com --domains custom.yaml
  fakefilter check user@example.com -o result.json`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkSkipRole, "skip-role", false, "Skip role account detection")
	checkCmd.Flags().BoolVar(&checkSkipFree, "skip-free", false, "Skip free provider detection")
	checkCmd.Flags().StringVarP(&checkOutput, "output", "o", "", "Output file")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Output as JSON to stdout")
}

func runCheck(cmd *cobra.Command, args []string) error {
	email := args[0]
	log := debug.GetLogger()

	log.Info("CHECK", "Classifying email: %s", email)

	cfg, err := loadDomainConfig()
	if err != nil {
		return err
	}

	c := classify.New(cfg, classify.Options{
		CheckRole:         !checkSkipRole,
		CheckFreeProvider: !checkSkipFree,
	})
	result := c.Classify(email)

	if checkJSON {
		return outputJSON(result)
	}

	if checkOutput != "" {
		return outputToFile(result, checkOutput)
	}

	return outputConsole(result)
}

func outputJSON(result *classify.Result) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func outputToFile(result *classify.Result, filename string) error {
	format := output.DetectFormat(filename)
	writer, err := output.NewWriter(filename, format)
	if err != nil {
		return err
	}
	defer writer.Close()

	if err := writer.Write(result); err != nil {
		return err
	}

	fmt.Printf("Result saved to: %s\n", filename)
	return nil
}

func outputConsole(result *classify.Result) error {
	green := color.New(color.FgGreen, color.Bold)
	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	cyan := color.New(color.FgCyan)
	white := color.New(color.FgWhite, color.Bold)

	fmt.Println()
	white.Printf("Email: %s\n", result.Email)
	fmt.Println()

	// Verdict
	fmt.Print("Verdict: ")
	switch result.Verdict {
	case classify.VerdictFake:
		red.Println("FAKE")
	case classify.VerdictSuspect:
		yellow.Println("SUSPECT")
	default:
		green.Println("CLEAN")
	}
	fmt.Printf("Summary: %s\n", result.Summary())

	fmt.Println()
	cyan.Println("Details:")

	if result.Domain != "" {
		fmt.Printf("  Local Part:    %s\n", result.LocalPart)
		fmt.Printf("  Domain:        %s\n", result.Domain)
	} else {
		fmt.Printf("  Domain:        %s\n", yellow.Sprint("Not extractable (no local part or @)"))
	}

	fmt.Println()
	cyan.Println("Classification:")

	if result.Fake {
		fmt.Printf("  Disposable:     %s (matched %s)\n", red.Sprint("Yes"), result.MatchedDomain)
	} else {
		fmt.Printf("  Disposable:     %s\n", green.Sprint("No"))
	}

	if result.PlusAddressing {
		fmt.Printf("  Plus Address:   %s\n", yellow.Sprint("Yes"))
	} else {
		fmt.Printf("  Plus Address:   %s\n", green.Sprint("No"))
	}

	if result.RoleAccount {
		fmt.Printf("  Role Account:   %s\n", yellow.Sprint("Yes"))
	} else {
		fmt.Printf("  Role Account:   %s\n", green.Sprint("No"))
	}

	if result.FreeProvider {
		fmt.Printf("  Free Provider:  %s\n", yellow.Sprint("Yes"))
	} else {
		fmt.Printf("  Free Provider:  %s\n", green.Sprint("No"))
	}

	fmt.Println()
	return nil
}
