// Command securepass is a thin CLI over the analysis, generation and breach
// checking core. It reads input, calls into internal packages and prints
// JSON; no analysis logic lives here.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/securepass/securepass-go/internal/analyzer"
	"github.com/securepass/securepass-go/internal/breach"
	"github.com/securepass/securepass-go/internal/config"
	"github.com/securepass/securepass-go/internal/estimator"
	"github.com/securepass/securepass-go/internal/generator"
	"github.com/securepass/securepass-go/internal/model"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	root := &cobra.Command{
		Use:           "securepass",
		Short:         "Password strength analysis, generation and breach checking",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(analyzeCmd(), generateCmd(), breachCmd(), suggestCmd())

	if err := root.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [password]",
		Short: "Analyze password strength",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := passwordFromArgsOrStdin(args)
			if err != nil {
				return err
			}
			a := analyzer.NewWithEstimator(estimator.Zxcvbn{})
			return printJSON(a.Analyze(password))
		},
	}
}

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate passwords",
	}
	cmd.AddCommand(generateRandomCmd(), generateMemorableCmd(), generatePronounceableCmd(), generatePassphraseCmd(), generatePatternCmd())
	return cmd
}

func generateRandomCmd() *cobra.Command {
	var (
		spec    model.RandomSpec
		noLower bool
		noUpper bool
		noDigit bool
		noSym   bool
		count   int
	)
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate random passwords",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := false
			if noLower {
				spec.Lowercase = &f
			}
			if noUpper {
				spec.Uppercase = &f
			}
			if noDigit {
				spec.Digits = &f
			}
			if noSym {
				spec.Symbols = &f
			}
			passwords, err := generator.Batch(model.BatchSpec{Count: count, Random: spec})
			if err != nil {
				return err
			}
			for _, p := range passwords {
				fmt.Println(p)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&spec.Length, "length", "l", generator.DefaultLength, "password length")
	cmd.Flags().BoolVar(&noLower, "no-lowercase", false, "exclude lowercase letters")
	cmd.Flags().BoolVar(&noUpper, "no-uppercase", false, "exclude uppercase letters")
	cmd.Flags().BoolVar(&noDigit, "no-digits", false, "exclude digits")
	cmd.Flags().BoolVar(&noSym, "no-symbols", false, "exclude symbols")
	cmd.Flags().BoolVar(&spec.ExcludeAmbiguous, "exclude-ambiguous", false, "exclude ambiguous characters (0O1lIo)")
	cmd.Flags().StringVar(&spec.ExcludeChars, "exclude", "", "characters to exclude from the pool")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of passwords to generate")
	return cmd
}

func generateMemorableCmd() *cobra.Command {
	spec := model.MemorableSpec{WordCount: 4, AddNumbers: true, AddSymbols: true, Capitalize: true}
	cmd := &cobra.Command{
		Use:   "memorable",
		Short: "Generate a memorable word-combination password",
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := generator.Memorable(spec)
			if err != nil {
				return err
			}
			fmt.Println(password)
			return nil
		},
	}
	cmd.Flags().IntVarP(&spec.WordCount, "words", "w", spec.WordCount, "number of words")
	cmd.Flags().BoolVar(&spec.AddNumbers, "numbers", spec.AddNumbers, "append random digits")
	cmd.Flags().BoolVar(&spec.AddSymbols, "symbols", spec.AddSymbols, "append random symbols")
	cmd.Flags().BoolVar(&spec.Capitalize, "capitalize", spec.Capitalize, "capitalize alternating words")
	return cmd
}

func generatePronounceableCmd() *cobra.Command {
	spec := model.PronounceableSpec{Length: 12, AddNumbers: true}
	cmd := &cobra.Command{
		Use:   "pronounceable",
		Short: "Generate a pronounceable syllable-based password",
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := generator.Pronounceable(spec)
			if err != nil {
				return err
			}
			fmt.Println(password)
			return nil
		},
	}
	cmd.Flags().IntVarP(&spec.Length, "length", "l", spec.Length, "target length")
	cmd.Flags().BoolVar(&spec.AddNumbers, "numbers", spec.AddNumbers, "append random digits")
	cmd.Flags().BoolVar(&spec.AddSymbols, "symbols", spec.AddSymbols, "append random symbols")
	return cmd
}

func generatePassphraseCmd() *cobra.Command {
	spec := model.PassphraseSpec{WordCount: 6, Separator: "-"}
	cmd := &cobra.Command{
		Use:   "passphrase",
		Short: "Generate a word passphrase",
		RunE: func(cmd *cobra.Command, args []string) error {
			passphrase, err := generator.Passphrase(spec)
			if err != nil {
				return err
			}
			fmt.Println(passphrase)
			return nil
		},
	}
	cmd.Flags().IntVarP(&spec.WordCount, "words", "w", spec.WordCount, "number of words")
	cmd.Flags().StringVarP(&spec.Separator, "separator", "s", spec.Separator, "word separator")
	cmd.Flags().BoolVar(&spec.CapitalizeWords, "capitalize", false, "capitalize each word")
	return cmd
}

func generatePatternCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pattern <template>",
		Short: "Generate from a template (l/L/d/s/a/* map to classes, others are literal)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := generator.FromPattern(args[0])
			if err != nil {
				return err
			}
			fmt.Println(password)
			return nil
		},
	}
}

func breachCmd() *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "breach [password]",
		Short: "Check a password (and optionally an email) against known breaches",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := passwordFromArgsOrStdin(args)
			if err != nil {
				return err
			}
			cfg := config.Load()
			client := breach.NewClient(cfg.BreachOptions())
			report, err := client.GenerateReport(cmd.Context(), password, email, cfg.HIBPAPIKey)
			if err != nil {
				return err
			}
			return printJSON(report)
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "email address to check (requires HIBP_API_KEY)")
	return cmd
}

func suggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest [purpose]",
		Short: "Suggest generator settings for a purpose (general, high_security, memorable, passphrase, pin)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			purpose := "general"
			if len(args) == 1 {
				purpose = args[0]
			}
			suggestion, err := generator.SuggestionFor(purpose)
			if err != nil {
				return err
			}
			return printJSON(suggestion)
		},
	}
}

// passwordFromArgsOrStdin returns the single positional argument, or reads
// one line from stdin so passwords can be piped in without showing up in
// shell history.
func passwordFromArgsOrStdin(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("no password provided")
	}
	return scanner.Text(), nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
