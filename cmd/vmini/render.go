package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vmini/internal/config"
	"github.com/vango-dev/vmini/pkg/datafile"
	"github.com/vango-dev/vmini/pkg/dom"
	"github.com/vango-dev/vmini/pkg/snapshot"
)

// renderOptions are the flags of the render command.
type renderOptions struct {
	app  string
	data string
	sets []string
	out  string
	name string
}

func renderCmd(flags *globalFlags) *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render an app and print its HTML",
		Long: `Mount an app, then apply a data file and each --set in order.
The HTML is printed after every step, so each write's re-render is visible.

With --out the final HTML is published to a directory or an S3 bucket.
S3 credentials are read from AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY.

Examples:
  vmini render --app counter
  vmini render --app counter --set count=5 --set label=Clicks
  vmini render --app todo --data todo.yaml --out s3://pages/todo`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			applyRenderOverrides(cfg, cmd, opts)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runRender(cmd.Context(), cmd.OutOrStdout(), flags, cfg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.app, "app", "a", "", "App to render (default from vmini.yaml, else counter)")
	cmd.Flags().StringVarP(&opts.data, "data", "d", "", "YAML or JSON data file applied after mount")
	cmd.Flags().StringArrayVarP(&opts.sets, "set", "s", nil, "Write key=value after mount (repeatable)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Publish the final HTML to a directory or s3://bucket[/prefix]")
	cmd.Flags().StringVar(&opts.name, "name", "", "Snapshot file name (default <app>.html)")

	return cmd
}

// applyRenderOverrides copies explicitly set flags over config values.
func applyRenderOverrides(cfg *config.Config, cmd *cobra.Command, opts renderOptions) {
	if cmd.Flags().Changed("app") {
		cfg.App = opts.app
	}
	if cmd.Flags().Changed("data") {
		cfg.Data = opts.data
	}
	if cmd.Flags().Changed("out") {
		cfg.Snapshot.Out = opts.out
	}
}

func runRender(ctx context.Context, w io.Writer, flags *globalFlags, cfg *config.Config, opts renderOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := flags.newLogger(cfg)
	logDataSignals(logger)

	inst, doc, err := mountApp(ctx, cfg.App, logger, nil)
	if err != nil {
		return err
	}
	step := func(label string) {
		fmt.Fprintf(w, "<!-- %s -->\n%s\n", label, doc.Body().InnerHTML())
	}
	step("mount")

	if path := cfg.DataPath(); path != "" {
		values, err := datafile.Load(path)
		if err != nil {
			return err
		}
		if _, err := datafile.Apply(inst.Store(), values); err != nil {
			return err
		}
		step("data " + path)
	}

	for _, set := range opts.sets {
		key, value, err := datafile.ParseAssignment(set)
		if err != nil {
			return err
		}
		if err := inst.Store().Set(key, value); err != nil {
			return fmt.Errorf("set %s: %w", key, err)
		}
		step("set " + set)
	}

	if cfg.Snapshot.Out == "" {
		return nil
	}
	return publish(ctx, cfg, doc.Body(), snapshotName(opts.name, cfg.App))
}

func snapshotName(name, app string) string {
	if name != "" {
		return name
	}
	return app + ".html"
}

// publish writes the rendered body to the configured snapshot target.
func publish(ctx context.Context, cfg *config.Config, body *dom.Node, name string) error {
	target, err := cfg.SnapshotTarget()
	if err != nil {
		return err
	}
	pub := snapshot.Open(target, cfg.S3())
	if err := pub.Publish(ctx, name, []byte(body.InnerHTML())); err != nil {
		return err
	}

	where := target.Dir
	if target.IsS3() {
		where = "s3://" + target.Bucket + "/" + target.Key(name)
	}
	success("Published %s to %s", name, where)
	return nil
}
