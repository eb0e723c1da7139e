package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/gogpu/starrating"
)

var fillsCmd = &cobra.Command{
	Use:   "fills",
	Short: "Print how a rating is split across the stars",
	Long: `Fills prints the fill fraction of each star for --rating, formatted
for the language given by --lang (a BCP 47 tag such as "en" or "de").`,
	Example: `  starrating fills --rating 0.5
  starrating fills --rating 0.8 --lang de`,
	RunE: runFills,
}

var (
	fillsRating float64
	fillsLang   string
)

func init() {
	fillsCmd.Flags().Float64Var(&fillsRating, "rating", 0, "rating in [0, 1]")
	fillsCmd.Flags().StringVar(&fillsLang, "lang", "en", "language tag for number formatting")
	rootCmd.AddCommand(fillsCmd)
}

func runFills(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}

	tag, err := language.Parse(fillsLang)
	if err != nil {
		return fmt.Errorf("invalid --lang %q: %w", fillsLang, err)
	}
	p := message.NewPrinter(tag)

	rating := starrating.NewRating(starrating.WithStarOptions(starrating.WithAnimator(starrating.Instant)))
	rating.SetRating(fillsRating)

	out := cmd.OutOrStdout()
	p.Fprintf(out, "rating %v\n", number.Decimal(rating.Rating(), number.MaxFractionDigits(2)))
	for i, f := range rating.Fills() {
		p.Fprintf(out, "star %d  %v\n", i+1, number.Percent(f, number.MaxFractionDigits(0)))
	}
	return nil
}
