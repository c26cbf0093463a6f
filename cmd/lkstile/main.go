// Command lkstile converts between WGS84 coordinates and LKS92 / Latvia TM
// tile pixels, and prints the tile pyramid.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/tzneal/lks92"
	"gopkg.in/yaml.v3"
)

func main() {
	cobra.CheckErr(NewCmd().ExecuteContext(context.Background()))
}

func NewCmd() *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "lkstile [command] [flags]",
		Short:         "lkstile converts coordinates for the LKS92 / Latvia TM tile pyramid",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			setupLogger(cmd.ErrOrStderr(), verbose)
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Print(cmd.UsageString())
		},
	}
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log intermediate values to stderr")

	pixelCmd := &cobra.Command{
		Use:   "pixel [flags]",
		Short: "Convert a WGS84 position to a pixel address",
		RunE:  doPixel,
	}
	pixelCmd.Flags().Float64("lat", 0, "`<Latitude>` in degrees")
	pixelCmd.Flags().Float64("lng", 0, "`<Longitude>` in degrees")
	pixelCmd.Flags().IntP("zoom", "z", 0, "`<Zoom>` level")
	pixelCmd.MarkFlagRequired("lat")
	pixelCmd.MarkFlagRequired("lng")

	latlngCmd := &cobra.Command{
		Use:   "latlng [flags]",
		Short: "Convert a pixel address to a WGS84 position",
		RunE:  doLatLng,
	}
	latlngCmd.Flags().Int("x", 0, "pixel `<X>`")
	latlngCmd.Flags().Int("y", 0, "pixel `<Y>`")
	latlngCmd.Flags().IntP("zoom", "z", 0, "`<Zoom>` level")
	latlngCmd.MarkFlagRequired("x")
	latlngCmd.MarkFlagRequired("y")

	tileCmd := &cobra.Command{
		Use:   "tile [flags]",
		Short: "Print the outline of a tile as GeoJSON",
		RunE:  doTile,
	}
	tileCmd.Flags().Int("x", 0, "tile `<X>`")
	tileCmd.Flags().Int("y", 0, "tile `<Y>`")
	tileCmd.Flags().IntP("zoom", "z", 0, "`<Zoom>` level")
	tileCmd.MarkFlagRequired("x")
	tileCmd.MarkFlagRequired("y")

	levelsCmd := &cobra.Command{
		Use:   "levels [flags]",
		Short: "Print the tile matrix set",
		RunE:  doLevels,
	}
	levelsCmd.Flags().StringP("format", "f", "yaml", "output `<Format>`, yaml, json or table")

	rootCmd.AddCommand(
		pixelCmd,
		latlngCmd,
		tileCmd,
		levelsCmd,
	)
	return rootCmd
}

func setupLogger(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func doPixel(cmd *cobra.Command, args []string) error {
	lat, err := cmd.Flags().GetFloat64("lat")
	if err != nil {
		return err
	}
	lng, err := cmd.Flags().GetFloat64("lng")
	if err != nil {
		return err
	}
	zoom, err := cmd.Flags().GetInt("zoom")
	if err != nil {
		return err
	}
	proj := lks92.DefaultLKS92
	if !proj.ValidLatLonBounds().Contains(lks92.GeodeticCoord{Lon: lng, Lat: lat}.Point()) {
		slog.Warn("position outside the valid domain, clamping", "lat", lat, "lng", lng)
	}
	if res := proj.Resolution(zoom); res == 0 {
		slog.Warn("zoom level outside the pyramid", "zoom", zoom)
	}
	easting, northing := proj.FromWGS84(lng, lat)
	slog.Debug("projected", "easting", easting, "northing", northing)

	px := proj.ToPixel(lat, lng, zoom)
	tx, ty := px.Tile(lks92.TileSize)
	fmt.Fprintf(cmd.OutOrStdout(), "pixel %d %d tile %d %d\n", px.X, px.Y, tx, ty)
	return nil
}

func doLatLng(cmd *cobra.Command, args []string) error {
	x, err := cmd.Flags().GetInt("x")
	if err != nil {
		return err
	}
	y, err := cmd.Flags().GetInt("y")
	if err != nil {
		return err
	}
	zoom, err := cmd.Flags().GetInt("zoom")
	if err != nil {
		return err
	}
	slog.Debug("resolution", "zoom", zoom, "res", lks92.DefaultLKS92.Resolution(zoom))
	lat, lng, err := lks92.DefaultLKS92.ToLatLng(x, y, zoom)
	if err != nil {
		return fmt.Errorf("pixel %d %d at zoom %d: %w", x, y, zoom, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "lat %.8f lng %.8f\n", lat, lng)
	return nil
}

func doTile(cmd *cobra.Command, args []string) error {
	x, err := cmd.Flags().GetInt("x")
	if err != nil {
		return err
	}
	y, err := cmd.Flags().GetInt("y")
	if err != nil {
		return err
	}
	zoom, err := cmd.Flags().GetInt("zoom")
	if err != nil {
		return err
	}
	f, err := lks92.DefaultLKS92.TileFeature(x, y, zoom)
	if err != nil {
		return fmt.Errorf("tile %d/%d/%d: %w", zoom, x, y, err)
	}
	slog.Debug("tile", "projected", lks92.DefaultLKS92.TileProjectedBounds(x, y, zoom))
	b, err := json.Marshal(f)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}

func doLevels(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	set := lks92.DefaultLKS92.TileMatrixSet()
	out := cmd.OutOrStdout()
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(set)
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(set)
	case "table":
		w := table.NewWriter()
		w.SetOutputMirror(out)
		w.SetStyle(table.StyleLight)
		w.AppendHeader(table.Row{"ZOOM", "RESOLUTION", "SCALE", "MIN TILE", "MAX TILE"})
		for _, m := range set {
			w.AppendRow(table.Row{
				m.Level,
				fmt.Sprintf("%.6f", m.Resolution),
				fmt.Sprintf("1:%.0f", m.Scale),
				fmt.Sprintf("%d/%d", m.MinTileX, m.MinTileY),
				fmt.Sprintf("%d/%d", m.MaxTileX, m.MaxTileY),
			})
		}
		w.Render()
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
