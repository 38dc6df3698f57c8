package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ethwu/rn/internal/units"
)

var (
	cfgFile   string
	unitFiles []string
	Verbose   int

	// formats is assembled by PersistentPreRunE before any command
	// runs and is read-only afterwards.
	formats *units.Registry
)

var rootCmd = &cobra.Command{
	Use:   "rn",
	Short: "Render the time of day in seximal units",
	Long: `Render the current (or a given) time of day under the
	Misalian-Kunimunean seximal units, a conventional civil clock, or
	any unit system defined in a YAML file. Running rn with no
	subcommand prints the time now.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadFormats()
	},
}

func loadFormats() error {
	formats = units.NewRegistry()
	for _, path := range viper.GetStringSlice("units") {
		name, f, err := units.Load(path)
		if err != nil {
			return err
		}
		verbose("Registering format [%s] from [%s]", name, path)
		if err := formats.Register(name, f); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)

	viper.SetEnvPrefix("rn")

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.rn.yaml)")
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	rootCmd.PersistentFlags().StringSliceVar(&unitFiles, "units", nil, "unit system definition files")
	viper.BindPFlag("units", rootCmd.PersistentFlags().Lookup("units"))
	viper.SetDefault("units", []string{})
	viper.SetDefault("format", units.NameExtended)
	viper.SetDefault("local", false)

	rootCmd.PersistentFlags().CountVarP(&Verbose, "verbose", "v", "verbose output")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".rn")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		verbose("Using config file: %s", viper.ConfigFileUsed())
	}
}

func flagsContain(flags []string, contains ...string) bool {
	for _, flag := range contains {
		if slices.Contains(flags, flag) {
			return true
		}
	}
	return false
}

func setDefaultCommandIfNonePresent(defaultCommand string) {
	// Taken from cobra source code in command.go::ExecuteC()
	var cmd *cobra.Command
	var err error
	var flags []string
	if rootCmd.TraverseChildren {
		cmd, flags, err = rootCmd.Traverse(os.Args[1:])
	} else {
		cmd, flags, err = rootCmd.Find(os.Args[1:])
	}

	// If no command was on the CLI, then cmd will return with
	// the value of rootCmd.Use (which would run the help output
	// in the full Execute() command). The default command goes in
	// front so bare times like `rn 13:37` stay positional args.
	if err != nil || cmd.Use == rootCmd.Use {
		if !flagsContain(flags, "-v", "-h", "--version", "--help") && !slices.Contains(os.Args[1:], "help") {
			rootCmd.SetArgs(append([]string{defaultCommand}, os.Args[1:]...))
		}
	}
}

func Execute() {
	setDefaultCommandIfNonePresent("now")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errStyle.Render(err.Error()))
		os.Exit(1)
	}
}
