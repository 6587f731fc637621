package options

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// LoadConfig points viper at cfgFile, or searches the working directory and
// $HOME/.<name> for "<name>.{yaml,json,...}" when cfgFile is empty. A missing
// config file is not an error. $OPENAI_MODEL is bound to models.default-model.
func LoadConfig(v *viper.Viper, cfgFile, name string) error {
	if err := v.BindEnv("models.default-model", ModelEnvVar); err != nil {
		return err
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, "."+name))
		}
		v.SetConfigName(name)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}
