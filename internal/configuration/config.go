package configuration

import (
	"dirdiff/internal/logging"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const DefaultConfigFileName = "dirdiff.yaml"

type Configuration struct {
	Original  string          `json:"original"`
	Modified  string          `json:"modified"`
	Output    OutputConfig    `json:"output"`
	Filter    FilterConfig    `json:"filter"`
	Profiling ProfilingConfig `json:"profiling"`
}

type OutputConfig struct {
	Html         bool   `json:"html"`
	HtmlPath     string `json:"html_path" mapstructure:"html_path"`
	Color        bool   `json:"color"`
	ShowContent  bool   `json:"show_content" mapstructure:"show_content"`
	ContextLines int    `json:"context_lines" mapstructure:"context_lines"`
	MaxDiffLines int    `json:"max_diff_lines" mapstructure:"max_diff_lines"`
}

type FilterConfig struct {
	IgnoreDirs  []string `json:"ignore_dirs" mapstructure:"ignore_dirs"`
	IgnoreFiles []string `json:"ignore_files" mapstructure:"ignore_files"`
	Extensions  []string `json:"extensions"`
}

type ProfilingConfig struct {
	Enabled bool   `json:"enabled"`
	Host    string `json:"host"`
	Port    int    `json:"port"`
}

var CurrentConfig Configuration

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName("dirdiff")
	viper.SetConfigType("yaml")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			logging.Error("Couldn't detect home directory: %v", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
	}

	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
}

func setDefaultValues() {
	viper.SetDefault("Output.Html", false)
	viper.SetDefault("Output.Html_Path", "./diff-report.html")
	viper.SetDefault("Output.Color", true)
	viper.SetDefault("Output.Show_Content", true)
	viper.SetDefault("Output.Context_Lines", 3)
	viper.SetDefault("Output.Max_Diff_Lines", 10000)

	viper.SetDefault("Filter.Ignore_Dirs", []string{
		"node_modules", ".next", "dist", "build", ".git",
		"__pycache__", ".cache", ".turbo", "target", "out",
		".idea", ".vscode",
	})
	viper.SetDefault("Filter.Ignore_Files", []string{
		".DS_Store", "Thumbs.db", "*.pyc",
	})
	viper.SetDefault("Filter.Extensions", []string{})

	viper.SetDefault("Profiling.Enabled", false)
	viper.SetDefault("Profiling.Host", "localhost")
	viper.SetDefault("Profiling.Port", 6060)
}

// DetectAndReadConfigFile detects the path of the first existing config file
func DetectAndReadConfigFile() string {
	err := readInConfig()
	if err != nil {
		logging.Debug("Error reading config file: %s", err.Error())
	}
	return GetFilePath()
}

// readInConfig reads and parses the config file
func readInConfig() error {
	return viper.ReadInConfig()
}

// GetFilePath this is only populated _after_ readInConfig()
func GetFilePath() string {
	return viper.ConfigFileUsed()
}

func LoadConfig() {
	// load default configuration values
	err := viper.Unmarshal(&CurrentConfig)
	if err != nil {
		logging.Fatal("unable to decode into struct, %v", err)
	}
}
