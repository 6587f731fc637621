package options

import (
	"errors"
	"io"

	"github.com/kiosk404/chronos/internal/pkg/options"
	"github.com/kiosk404/chronos/pkg/logger"
	"github.com/kiosk404/chronos/pkg/utils/json"
	"github.com/spf13/pflag"
)

// Options is everything chronos reads from flags, config file and environment.
type Options struct {
	Models *options.ModelOptions `json:"models" mapstructure:"models"`
	Agent  *options.AgentOptions `json:"agent" mapstructure:"agent"`
	Log    *options.LogOptions   `json:"log" mapstructure:"log"`
}

func NewOptions() *Options {
	return &Options{
		Models: options.NewModelOptions(),
		Agent:  options.NewAgentOptions(),
		Log:    options.NewLogOptions(),
	}
}

func (o *Options) AddFlags(fs *pflag.FlagSet) {
	o.Models.AddFlags(fs)
	o.Agent.AddFlags(fs)
	o.Log.AddFlags(fs)
}

// Validate checks every option group and joins the failures.
func (o *Options) Validate() error {
	var errs []error
	errs = append(errs, o.Models.Validate()...)
	errs = append(errs, o.Agent.Validate()...)
	errs = append(errs, o.Log.Validate()...)
	return errors.Join(errs...)
}

// Complete applies the log options to the process logger. Without a log
// file, logs go to logOut.
func (o *Options) Complete(logOut io.Writer) error {
	if err := logger.SetLevel(o.Log.Level); err != nil {
		return err
	}
	if err := logger.SetFormat(o.Log.Format); err != nil {
		return err
	}
	if o.Log.File == "" {
		if logOut != nil {
			logger.SetOutput(logOut)
		}
		return nil
	}
	return logger.InitLog(o.Log.File)
}

func (o *Options) String() string {
	data, _ := json.MarshalIndent(o, "", "  ")
	return string(data)
}
