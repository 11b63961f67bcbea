// Package cli implements the guru command tree.
package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mavenly/guru/internal/config"
	"github.com/mavenly/guru/internal/observability"
	"github.com/mavenly/guru/internal/persona"
	"github.com/mavenly/guru/internal/profile"
	"github.com/mavenly/guru/internal/recommend"
)

var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "guru",
	Short: "Chat with legendary marketing experts and research your audience",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("guru %s\n", Version)
	},
}

var personasCmd = &cobra.Command{
	Use:   "personas",
	Short: "List the expert catalogue",
	RunE:  runPersonas,
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank the experts against your business profile",
	RunE:  runRecommend,
}

var (
	flagVerbose bool

	flagCompany   string
	flagIndustry  string
	flagAudience  string
	flagGoal      string
	flagChallenge string
	flagProducts  string
	flagTopN      int
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(personasCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(enrichCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpServerCmd)

	for _, cmd := range []*cobra.Command{recommendCmd, enrichCmd} {
		cmd.Flags().StringVar(&flagCompany, "company", "", "Company name")
		cmd.Flags().StringVar(&flagIndustry, "industry", "", "Industry, e.g. ecommerce, luxury, coaching")
		cmd.Flags().StringVar(&flagAudience, "audience", "", "Who the business sells to")
		cmd.Flags().StringVar(&flagGoal, "goal", "", "Primary marketing goal, e.g. growth, brand, leads")
		cmd.Flags().StringVar(&flagChallenge, "challenge", "", "Biggest current marketing problem")
		cmd.Flags().StringVar(&flagProducts, "products", "", "What the business sells")
	}
	recommendCmd.Flags().IntVar(&flagTopN, "top", 0, "Limit results to the top N experts")
}

func Execute() error {
	return rootCmd.Execute()
}

// setup loads configuration and builds the process logger. Every command
// goes through here so logging behaves the same everywhere.
func setup() (config.Config, *slog.Logger) {
	cfg := config.Load()
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	log := observability.InitLogger(level)
	slog.SetDefault(log)
	return cfg, log
}

func profileFromFlags() profile.BusinessProfile {
	return profile.BusinessProfile{
		CompanyName:    flagCompany,
		Industry:       flagIndustry,
		TargetAudience: flagAudience,
		PrimaryGoal:    flagGoal,
		MainChallenge:  flagChallenge,
		MainProducts:   flagProducts,
	}
}

func runPersonas(cmd *cobra.Command, args []string) error {
	setup()
	reg := persona.Default()

	fmt.Println("\nAvailable experts:")
	for _, p := range reg.All() {
		fmt.Printf("\n  %s\n", p.Name)
		fmt.Printf("  %s\n", strings.Repeat("─", 50))
		fmt.Printf("  %s (%s)\n", p.Title, p.ActiveYears)
		fmt.Printf("  Expertise: %s\n", strings.Join(p.Expertise, ", "))
	}
	fmt.Println()
	return nil
}

func runRecommend(cmd *cobra.Command, args []string) error {
	setup()
	bp := profileFromFlags()
	if bp == (profile.BusinessProfile{}) {
		return fmt.Errorf("describe your business with at least one of --industry, --goal, --challenge, --audience, --products")
	}

	recs := recommend.Recommendations(persona.Default().All(), bp, flagTopN)

	fmt.Println()
	for i, r := range recs {
		fmt.Printf("%d. %s (%s)\n", i+1, r.Persona, r.Title)
		fmt.Printf("   %s  score %d/100\n", strings.Repeat("★", r.Stars)+strings.Repeat("☆", 5-r.Stars), r.Score)
		fmt.Printf("   %s\n\n", r.Reason)
	}
	return nil
}
