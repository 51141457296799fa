package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tagirov/rusk/store"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool
	// debugMode routes persistence to the fixed development path.
	debugMode bool
	// version is the application version.
	version = "0.3.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "rusk",
	Short:   "rusk is a small command-line task tracker.",
	Long: `rusk keeps short text tasks with optional due dates in a local JSON file.
Add, list, edit, mark and delete tasks; every change is saved atomically with
a one-generation backup you can restore from.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			_ = cmd.Help()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.rusk.yaml or ./.rusk.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "use the development task file instead of the real one")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

// getFileStore resolves the task file location and wraps it in a file store.
func getFileStore() (*store.FileStore, error) {
	path, err := resolveTaskFilePath(GlobalAppConfig)
	if err != nil {
		return nil, err
	}
	return store.NewFileStore(path), nil
}

// getStore opens the task store backed by the resolved task file.
func getStore() (*store.Store, error) {
	fileStore, err := getFileStore()
	if err != nil {
		return nil, err
	}
	return store.Open(fileStore)
}
