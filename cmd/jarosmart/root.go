package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yusufkecer/jarosmart-backend/internal/domain"
	"github.com/yusufkecer/jarosmart-backend/internal/ingredients"
	"github.com/yusufkecer/jarosmart-backend/internal/logging"
	"github.com/yusufkecer/jarosmart-backend/internal/prefs"
	"github.com/yusufkecer/jarosmart-backend/internal/units"
)

type app struct {
	store   prefs.Store
	logger  *zap.Logger
	verbose bool

	themePref *prefs.Preference[domain.Theme]
	unitPref  *prefs.Preference[domain.WeightUnit]
}

func (a *app) theme() *prefs.Preference[domain.Theme] {
	if a.themePref == nil {
		a.themePref = prefs.NewThemePreference(a.store, a.logger)
	}
	return a.themePref
}

func (a *app) unit() *prefs.Preference[domain.WeightUnit] {
	if a.unitPref == nil {
		a.unitPref = prefs.NewUnitPreference(a.store, a.logger)
	}
	return a.unitPref
}

// refresh re-reads any mirror already created from the store.
func (a *app) refresh() {
	if a.themePref != nil {
		a.themePref.Reload()
	}
	if a.unitPref != nil {
		a.unitPref.Reload()
	}
}

// announce reports changes to p on stderr when --verbose is set.
func announce[T ~string](a *app, cmd *cobra.Command, name string, p *prefs.Preference[T]) func() {
	if !a.verbose {
		return func() {}
	}
	return p.Subscribe(func(v T) {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s changed to %s\n", name, v)
	})
}

// newRootCmd builds the CLI. A nil logger is replaced by one built from the
// --verbose flag before any command runs.
func newRootCmd(store prefs.Store, logger *zap.Logger) *cobra.Command {
	a := &app{store: store, logger: logger}

	root := &cobra.Command{
		Use:           "jarosmart",
		Short:         "JaroSmart local preferences and weight tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger == nil {
				level := "warn"
				if a.verbose {
					level = "debug"
				}
				l, err := logging.New(level)
				if err != nil {
					return err
				}
				a.logger = l
			}
			if fs, ok := a.store.(*prefs.FileStore); ok && a.verbose {
				fmt.Fprintf(cmd.ErrOrStderr(), "preferences file: %s\n", fs.Path())
			}
			a.refresh()
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.themeCmd(),
		a.unitCmd(),
		a.convertCmd(),
		a.ingredientsCmd(),
		a.planCmd(),
	)
	return root
}

func (a *app) themeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "theme [toggle]",
		Short:     "Show or toggle the color theme",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.theme()
			defer announce(a, cmd, "theme", p)()
			v := p.Get()
			if len(args) == 1 {
				v = p.Toggle()
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

func (a *app) unitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unit [toggle|lb|kg]",
		Short: "Show, set or toggle the weight display unit",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.unit()
			defer announce(a, cmd, "unit", p)()
			v := p.Get()
			if len(args) == 1 {
				if args[0] == "toggle" {
					v = p.Toggle()
				} else {
					u, err := units.ParseUnit(args[0])
					if err != nil {
						return err
					}
					p.Set(u)
					v = u
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

func (a *app) convertCmd() *cobra.Command {
	var noSuffix, reverse bool
	cmd := &cobra.Command{
		Use:   "convert <weight>",
		Short: "Show a stored kilogram weight in the display unit",
		Long: `Converts a canonical (kilogram) weight to the selected display unit.
With --reverse the value is read in the display unit and printed in kilograms.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid weight %q", args[0])
			}
			c := units.NewConverter(a.unit())
			if reverse {
				fmt.Fprintln(cmd.OutOrStdout(), units.FormatWeight(c.ToCanonicalWeight(value), units.Canonical, !noSuffix))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), c.Format(value, !noSuffix))
			return nil
		},
	}
	cmd.Flags().BoolVar(&noSuffix, "no-suffix", false, "omit the unit symbol")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "convert from the display unit to kilograms")
	return cmd
}

func (a *app) ingredientsCmd() *cobra.Command {
	var toggles []string
	var all bool
	cmd := &cobra.Command{
		Use:   "ingredients [meal]",
		Short: "Preview the default ingredient selection for a meal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel := ingredients.NewSelection()
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(out, strings.Join(sel.Meals(), "\n"))
				return nil
			}

			meal := args[0]
			if sel.Candidates(meal) == nil {
				return fmt.Errorf("unknown meal %q", meal)
			}
			if all {
				sel.ToggleAll(meal)
			}
			for _, name := range toggles {
				if !sel.Toggle(meal, name) {
					return fmt.Errorf("unknown ingredient %q for %s", name, meal)
				}
			}
			for _, c := range sel.Candidates(meal) {
				mark := " "
				if c.Selected {
					mark = "x"
				}
				fmt.Fprintf(out, "[%s] %s\n", mark, c.Name)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&toggles, "toggle", nil, "toggle one ingredient (repeatable)")
	cmd.Flags().BoolVar(&all, "all", false, "toggle every ingredient of the meal")
	return cmd
}

func (a *app) planCmd() *cobra.Command {
	var clearPlan bool
	cmd := &cobra.Command{
		Use:   "plan [name]",
		Short: "Show, select or clear the plan chosen before signing up",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch {
			case clearPlan:
				return a.store.Delete(prefs.KeySelectedPlan)
			case len(args) == 1:
				return a.store.Set(prefs.KeySelectedPlan, args[0])
			}
			plan, ok, err := a.store.Get(prefs.KeySelectedPlan)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(out, "none")
				return nil
			}
			fmt.Fprintln(out, plan)
			return nil
		},
	}
	cmd.Flags().BoolVar(&clearPlan, "clear", false, "forget the selected plan")
	return cmd
}
