package main

import (
	"os"
	"strings"

	"fyne.io/fyne/v2/app"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ytget/former/internal/config"
	"github.com/ytget/former/internal/ui"
)

const appID = "io.github.ytget.former-demo"

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "former-demo",
		Short:        "Show a grouped form built with former",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(*cobra.Command, []string) error {
			return run(v)
		},
	}

	flags := cmd.Flags()
	flags.String("form", "", "form file to show (YAML)")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.String("lang", "", "interface language: system, en, ru or pt")
	flags.Bool("recycle", config.DefaultRecycleCells, "purge the cells of rows whose list slot is reused")
	flags.Float32("row-height", 0, "row height in points")

	v.SetEnvPrefix("FORMER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		log.Fatal("bind flags", "err", err)
	}
	return cmd
}

// applyOverrides stores flags and FORMER_* variables that were given in the
// persisted settings.
func applyOverrides(v *viper.Viper, settings *config.Settings) {
	if v.IsSet("log-level") {
		settings.SetLogLevel(v.GetString("log-level"))
	}
	if v.IsSet("lang") {
		settings.SetLanguage(v.GetString("lang"))
	}
	if v.IsSet("recycle") {
		settings.SetRecycleCells(v.GetBool("recycle"))
	}
	if v.IsSet("row-height") {
		settings.SetRowHeight(float32(v.GetFloat64("row-height")))
	}
}

func run(v *viper.Viper) error {
	a := app.NewWithID(appID)
	a.Settings().SetTheme(ui.NewFormTheme())

	settings := config.NewSettings(a)
	applyOverrides(v, settings)
	if err := ui.ApplyLogLevel(settings.GetLogLevel()); err != nil {
		log.Warn("log level not applied", "err", err)
	}

	w := a.NewWindow("Former Demo")
	w.Resize(ui.WindowSize)
	root := ui.NewRootUI(w, a)

	path := v.GetString("form")
	if path == "" {
		path = settings.GetFormPath()
	}
	if path != "" {
		if err := root.LoadForm(path); err != nil {
			if v.IsSet("form") {
				return err
			}
			log.Warn("last form not restored", "path", path, "err", err)
		}
	}

	w.ShowAndRun()
	return nil
}
