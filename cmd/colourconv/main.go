package main

import (
	"os"

	"github.com/kpfaulkner/colourwheel/options"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	req := &request{}
	var configPath string
	opt := &options.ConverterOptions{}

	cmd := &cobra.Command{
		Use:   "colourconv --from MODEL --to MODEL c1 c2 c3 [c4]",
		Short: "Convert a colour value between colour models",
		Example: `  colourconv --from RGB --to Lab 1 0.5 0
  colourconv --from Lab --to RGB --source-white D50 50 20 -30
  colourconv --from XYZ --to Luv --white D50 0.3 0.4 0.2`,
		Args:          cobra.MinimumNArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				loaded, err := options.LoadConverterOptions(configPath)
				if err != nil {
					return err
				}
				// flags given on the command line win over the file
				flags := cmd.Flags()
				if flags.Changed("working-space") {
					loaded.WorkingSpace = opt.WorkingSpace
				}
				if flags.Changed("adaptation") {
					loaded.Adaptation = opt.Adaptation
				}
				if flags.Changed("white") {
					loaded.TargetWhitePoint = opt.TargetWhitePoint
				}
				if flags.Changed("debug") {
					loaded.Debug = opt.Debug
				}
				req.options = loaded
			} else {
				req.options = opt
			}
			if req.options.Debug {
				log.SetLevel(log.DebugLevel)
			}
			req.components = args

			res, err := req.run()
			if err != nil {
				return err
			}
			res.print(cmd.OutOrStdout(), req.swatch)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&req.from, "from", "f", "RGB", "model of the input components")
	flags.StringVarP(&req.to, "to", "t", "Lab", "model to convert to")
	flags.StringVar(&req.sourceWhite, "source-white", "", "illuminant of the input value, default D65")
	flags.BoolVar(&req.swatch, "swatch", true, "print a terminal swatch of the colour")
	flags.StringVarP(&configPath, "config", "c", "", "TOML file with converter options")
	flags.StringVar(&opt.WorkingSpace, "working-space", options.DEFAULT_WORKING_SPACE, "RGB working space")
	flags.StringVar(&opt.Adaptation, "adaptation", options.DEFAULT_ADAPTATION, "chromatic adaptation method")
	flags.StringVarP(&opt.TargetWhitePoint, "white", "w", "", "illuminant to adapt results to, empty keeps the source white")
	flags.BoolVar(&opt.Debug, "debug", false, "debug logging")
	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Errorf("colourconv: %v", err)
		os.Exit(1)
	}
}
