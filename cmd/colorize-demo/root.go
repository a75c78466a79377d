package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/colorize/pkg/colorize"
	"github.com/arthur-debert/colorize/pkg/colorize/theme"
	"github.com/arthur-debert/colorize/pkg/logging"
)

// Set via ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	verbosity   int
	noTermCheck bool

	rootCmd = &cobra.Command{
		Use:   "colorize-demo",
		Short: "Showcase terminal styling with the colorize library",
		Long: `colorize-demo prints the full styling palette: basic, bright and
background colors, text styles, truecolor RGB, HSL and hex colors, and
style chaining. Styling honors NO_COLOR and terminal detection; pass
--no-term-check to force escape sequences when piping.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			if noTermCheck {
				colorize.SetTermCheck(false)
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd)
		},
		SilenceUsage: true,
	}
)

// Execute runs the root command. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().BoolVar(&noTermCheck, "no-term-check", false,
		"Emit escape sequences even when output is not a terminal")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(themeCmd)
}

func runDemo(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "\nBasic colors:")
	fmt.Fprintln(out, colorize.Red("Red text"))
	fmt.Fprintln(out, colorize.Green("Green text"))
	fmt.Fprintln(out, colorize.Blue("Blue text"))
	fmt.Fprintln(out, colorize.Yellow("Yellow text"))
	fmt.Fprintln(out, colorize.Magenta("Magenta text"))
	fmt.Fprintln(out, colorize.Cyan("Cyan text"))
	fmt.Fprintln(out, colorize.White("White text"))
	fmt.Fprintln(out, colorize.Black("Black text"))

	fmt.Fprintln(out, "\nBright colors:")
	fmt.Fprintln(out, colorize.BrightRed("Bright red text"))
	fmt.Fprintln(out, colorize.BrightGreen("Bright green text"))
	fmt.Fprintln(out, colorize.BrightBlue("Bright blue text"))

	fmt.Fprintln(out, "\nBackground colors:")
	fmt.Fprintln(out, colorize.OnRed("Red background"))
	fmt.Fprintln(out, colorize.OnGreen("Green background"))
	fmt.Fprintln(out, colorize.OnBlue("Blue background"))

	fmt.Fprintln(out, "\nText styles:")
	fmt.Fprintln(out, colorize.Bold("Bold text"))
	fmt.Fprintln(out, colorize.Dim("Dim text"))
	fmt.Fprintln(out, colorize.Italic("Italic text"))
	fmt.Fprintln(out, colorize.Underline("Underlined text"))
	fmt.Fprintln(out, colorize.Inverse("Inverse text"))
	fmt.Fprintln(out, colorize.Strikethrough("Strikethrough text"))

	fmt.Fprintln(out, "\nRGB, HSL and hex colors:")
	fmt.Fprintln(out, colorize.RGB("Custom RGB color", 255, 128, 0))
	fmt.Fprintln(out, colorize.OnRGB("Custom RGB background", 0, 128, 255))
	fmt.Fprintln(out, colorize.HSL("HSL color (30, 100, 50)", 30, 100, 50))
	fmt.Fprintln(out, colorize.Hex("Hex color (#ff8000)", "#ff8000"))
	fmt.Fprintln(out, colorize.OnHex("Hex background (#0080ff)", "#0080ff"))

	fmt.Fprintln(out, "\nChained styles:")
	fmt.Fprintln(out, colorize.Bold(colorize.Red("Bold red text")))
	fmt.Fprintln(out, colorize.OnYellow(colorize.Italic(colorize.Blue("Italic blue text on yellow background"))))
	fmt.Fprintln(out, colorize.OnBlue(colorize.RGB("RGB text with background", 255, 128, 0)))

	fmt.Fprintln(out, "\nMixing styles:")
	fmt.Fprintf(out, "%s. %s %s %s!\n",
		colorize.Bold(colorize.Red("Notice")),
		colorize.Blue("This"),
		colorize.Green("is"),
		colorize.Underline(colorize.Yellow("important")))

	return nil
}

var themeCmd = &cobra.Command{
	Use:   "theme [file]",
	Short: "Render the semantic theme styles",
	Long: `Render a sample line for every style in the theme. With no argument
the built-in theme is used; pass a YAML file to preview a custom one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := colorize.Default()

		var th *theme.Theme
		if len(args) == 1 {
			loaded, err := theme.Load(args[0], st)
			if err != nil {
				return err
			}
			th = loaded
		} else {
			th = theme.Default(st)
		}

		out := cmd.OutOrStdout()
		for _, name := range th.Names() {
			fmt.Fprintf(out, "%-16s %s\n", name, th.Render(name, "The quick brown fox"))
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("colorize-demo version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}
