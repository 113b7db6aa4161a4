package kv

import (
	"log"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config exposes the settings satchel needs from the environment or a
// .satchel config file: where the local database lives and how to reach
// the remote materials service.
type Config interface {
	BasePath() string
	APIURL() string
	APIKey() string
	RootFolderID() string
}

func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.satchel.db")
	viper.SetConfigName(".satchel") // .yaml is implicit
	viper.SetEnvPrefix("SATCHEL")
	viper.AutomaticEnv()

	if override := os.Getenv("SATCHEL_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path := viper.GetString("path")
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}

	return &fileConfig{
		Path:   path,
		URL:    viper.GetString("api_url"),
		Key:    viper.GetString("api_key"),
		RootID: viper.GetString("root_folder_id"),
	}, nil
}

type fileConfig struct {
	Path   string `json:"path"`
	URL    string `json:"api_url"`
	Key    string `json:"api_key"`
	RootID string `json:"root_folder_id"`
}

func (f *fileConfig) BasePath() string     { return f.Path }
func (f *fileConfig) APIURL() string       { return f.URL }
func (f *fileConfig) APIKey() string       { return f.Key }
func (f *fileConfig) RootFolderID() string { return f.RootID }
