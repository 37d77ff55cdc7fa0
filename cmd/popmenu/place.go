package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/popmenu/internal/menu/position"
)

type placeOptions struct {
	Anchor    string
	Explicit  string
	Panel     string
	Viewport  string
	Align     string
	Gap       int
	Inset     int
	MinWidth  int
	MaxHeight int
}

type placeReport struct {
	Top          int  `yaml:"top"`
	Left         int  `yaml:"left"`
	Width        int  `yaml:"width"`
	Height       int  `yaml:"height"`
	FlippedAbove bool `yaml:"flipped_above"`
}

func newPlaceCmd(root *rootFlags) *cobra.Command {
	opts := placeOptions{}

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Resolve where a panel lands against an anchor",
		Long: `Resolve the placement of a panel of the given size against an anchor
rectangle (or an explicit point) inside a viewport and print it as YAML.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := root.newLogger(cmd.ErrOrStderr(), "place")
			if err != nil {
				return err
			}

			trackerOpts, panel, err := opts.trackerOptions()
			if err != nil {
				return err
			}
			trackerOpts.Logger = log

			tracker := position.NewTracker(trackerOpts)
			tracker.SetPanelSize(panel)
			placement, err := tracker.Recompute(position.TriggerOpen)
			if err != nil {
				return err
			}

			size := tracker.PanelSize()
			out, err := yaml.Marshal(placeReport{
				Top:          placement.Top,
				Left:         placement.Left,
				Width:        size.W,
				Height:       size.H,
				FlippedAbove: placement.FlippedAbove,
			})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	defaults := position.DefaultOffsets()
	cmd.Flags().StringVar(&opts.Anchor, "anchor", "", "Anchor rectangle as x,y,w,h")
	cmd.Flags().StringVar(&opts.Explicit, "at", "", "Explicit position as x,y (overrides --anchor)")
	cmd.Flags().StringVar(&opts.Panel, "panel", "", "Panel size as w,h")
	cmd.Flags().StringVar(&opts.Viewport, "viewport", "80,24", "Viewport size as w,h")
	cmd.Flags().StringVar(&opts.Align, "align", "left", "Horizontal alignment (left, center, right)")
	cmd.Flags().IntVar(&opts.Gap, "gap", defaults.Gap, "Gap between anchor and panel")
	cmd.Flags().IntVar(&opts.Inset, "inset", defaults.Inset, "Minimum distance from the viewport edges")
	cmd.Flags().IntVar(&opts.MinWidth, "min-width", 0, "Minimum panel width")
	cmd.Flags().IntVar(&opts.MaxHeight, "max-height", 0, "Maximum panel height")
	cmd.MarkFlagRequired("panel") //nolint:errcheck

	return cmd
}

func (o placeOptions) trackerOptions() (position.TrackerOptions, position.Size, error) {
	var opts position.TrackerOptions

	panel, err := parseInts("panel", o.Panel, 2)
	if err != nil {
		return opts, position.Size{}, err
	}
	viewport, err := parseInts("viewport", o.Viewport, 2)
	if err != nil {
		return opts, position.Size{}, err
	}
	align, ok := position.ParseAlign(o.Align)
	if !ok {
		return opts, position.Size{}, fmt.Errorf("--align: unknown alignment %q", o.Align)
	}

	opts.Viewport = position.Size{W: viewport[0], H: viewport[1]}
	opts.Align = align
	opts.Offsets = position.Offsets{Gap: o.Gap, Inset: o.Inset}
	opts.Constraints = position.Constraints{MinWidth: o.MinWidth, MaxHeight: o.MaxHeight}

	switch {
	case o.Explicit != "":
		at, err := parseInts("at", o.Explicit, 2)
		if err != nil {
			return opts, position.Size{}, err
		}
		opts.Explicit = &position.Point{X: at[0], Y: at[1]}
	case o.Anchor != "":
		anchor, err := parseInts("anchor", o.Anchor, 4)
		if err != nil {
			return opts, position.Size{}, err
		}
		opts.Anchor = position.StaticAnchor{X: anchor[0], Y: anchor[1], W: anchor[2], H: anchor[3]}
	default:
		return opts, position.Size{}, fmt.Errorf("either --anchor or --at is required")
	}

	return opts, position.Size{W: panel[0], H: panel[1]}, nil
}
