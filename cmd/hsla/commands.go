// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"strings"

	"cogentcore.org/hsla/base/errors"
	"cogentcore.org/hsla/config"
	"cogentcore.org/hsla/hsla"
	"cogentcore.org/hsla/logx"
	"cogentcore.org/hsla/names"
	"cogentcore.org/hsla/palette"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// options are the command line options shared by all commands,
// and the state built from them before a command runs.
type options struct {
	configFile  string
	format      string
	swatch      bool
	watch       bool
	force       bool
	verbose     bool
	veryVerbose bool
	quiet       bool

	cfg    *config.Config
	parser *hsla.Parser
}

func newRoot() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:          "hsla",
		Short:        "Convert CSS colors to canonical hsla() strings",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&o.configFile, "config", "c", "", "the TOML config file to load")
	pf.StringVarP(&o.format, "format", "f", "text", "the output format: text, json, yaml or toml")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "whether to print verbose info messages")
	pf.BoolVar(&o.veryVerbose, "vv", false, "whether to print very verbose debug messages")
	pf.BoolVarP(&o.quiet, "quiet", "q", false, "whether to only print errors")

	convert := &cobra.Command{
		Use:   "convert [color...]",
		Short: "Convert colors given as arguments, or one per line on stdin",
		RunE:  o.convert,
	}
	convert.Flags().BoolVarP(&o.swatch, "swatch", "s", false, "whether to print a colored swatch next to each color")

	pal := &cobra.Command{
		Use:   "palette <file>",
		Short: "Normalize the colors of a TOML, YAML, JSON, CSS or text palette file",
		Args:  cobra.ExactArgs(1),
		RunE:  o.palette,
	}
	pal.Flags().BoolVarP(&o.swatch, "swatch", "s", false, "whether to print a colored swatch next to each color")
	pal.Flags().BoolVarP(&o.watch, "watch", "w", false, "whether to keep running and print the palette again when the file changes")

	nms := &cobra.Command{
		Use:   "names [prefix]",
		Short: "List the named colors, optionally only those starting with prefix",
		Args:  cobra.MaximumNArgs(1),
		RunE:  o.names,
	}
	nms.Flags().BoolVarP(&o.swatch, "swatch", "s", false, "whether to print a colored swatch next to each color")

	cfg := &cobra.Command{
		Use:   "config",
		Short: "Manage the TOML config file",
	}
	cfgInit := &cobra.Command{
		Use:   "init [file]",
		Short: "Write the current settings to a new TOML config file, hsla.toml by default",
		Args:  cobra.MaximumNArgs(1),
		RunE:  o.configInit,
	}
	cfgInit.Flags().BoolVar(&o.force, "force", false, "whether to overwrite an existing file")
	cfg.AddCommand(cfgInit)

	root.AddCommand(convert, pal, nms, cfg)
	return root
}

// setup configures logging, loads the config file, applies the flags
// that were explicitly set on top of it, and builds the parser.
func (o *options) setup(cmd *cobra.Command) error {
	if o.veryVerbose || o.verbose || o.quiet {
		logx.UserLevel = logx.LevelFromFlags(o.veryVerbose, o.verbose, o.quiet)
	}
	logx.SetDefaultLogger()

	o.cfg = config.New()
	if o.configFile != "" {
		if err := o.cfg.Open(o.configFile); err != nil {
			return err
		}
		slog.Debug("loaded config", "file", o.configFile)
	}
	if cmd.Flags().Changed("format") {
		o.cfg.Format = o.format
	}
	if cmd.Flags().Changed("swatch") {
		o.cfg.Swatch = o.swatch
	}
	if err := o.cfg.Validate(); err != nil {
		return err
	}
	tbl, err := o.cfg.NameTable()
	if err != nil {
		slog.Warn("skipping invalid custom names", "err", err)
	}
	o.parser = hsla.NewParser(tbl)
	return nil
}

func (o *options) convert(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		sc := bufio.NewScanner(cmd.InOrStdin())
		for sc.Scan() {
			if line := strings.TrimSpace(sc.Text()); line != "" {
				args = append(args, line)
			}
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}
	pal := make(palette.Palette, 0, len(args))
	for _, arg := range args {
		c, kind, ok := o.parser.Detect(arg)
		if !ok {
			slog.Info("could not parse color", "color", arg)
		} else {
			slog.Debug("parsed color", "color", arg, "kind", kind)
		}
		pal = append(pal, palette.Entry{Name: arg, Color: c})
	}
	return o.write(cmd.OutOrStdout(), pal, false)
}

func (o *options) palette(cmd *cobra.Command, args []string) error {
	file := args[0]
	if !o.watch {
		pal, err := palette.Open(file, o.parser)
		if pal == nil {
			return err
		}
		errors.Log(err)
		return o.write(cmd.OutOrStdout(), pal, true)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	return palette.Watch(ctx, file, o.parser, func(pal palette.Palette, err error) {
		errors.Log(err)
		if pal != nil {
			errors.Log(o.write(cmd.OutOrStdout(), pal, true))
		}
	})
}

func (o *options) names(cmd *cobra.Command, args []string) error {
	prefix := ""
	if len(args) > 0 {
		prefix = strings.ToLower(args[0])
	}
	all := names.CSSNames()
	for nm := range o.cfg.Names {
		all = append(all, strings.ToLower(nm))
	}
	slices.Sort(all)
	all = slices.Compact(all)

	pal := palette.Palette{}
	for _, nm := range all {
		if !strings.HasPrefix(nm, prefix) {
			continue
		}
		if c, _, ok := o.parser.Detect(nm); ok {
			pal = append(pal, palette.Entry{Name: nm, Color: c})
		}
	}
	return o.write(cmd.OutOrStdout(), pal, true)
}

func (o *options) configInit(cmd *cobra.Command, args []string) error {
	file := "hsla.toml"
	if len(args) > 0 {
		file = args[0]
	}
	if !o.force {
		if _, err := os.Stat(file); err == nil {
			return fmt.Errorf("config file %q already exists; use --force to overwrite it", file)
		}
	}
	if err := o.cfg.Save(file); err != nil {
		return err
	}
	slog.Info("wrote config", "file", file)
	return nil
}

// write writes the colors in the configured format. Text output has
// one color per line, preceded by its name if named is set and by a
// swatch if enabled.
func (o *options) write(w io.Writer, pal palette.Palette, named bool) error {
	format := palette.Format(o.cfg.Format)
	if format != palette.Text {
		return pal.Write(w, format)
	}
	if named && !o.cfg.Swatch {
		return pal.Write(w, palette.Text)
	}
	out := termenv.NewOutput(w)
	for _, e := range pal {
		line := e.Color.String()
		if named {
			line = e.Name + ": " + line
		}
		if o.cfg.Swatch {
			line = swatch(out, e.Color) + " " + line
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// swatch returns two spaces with the given color as their background.
func swatch(out *termenv.Output, c hsla.HSLA) string {
	n := c.AsNRGBA()
	hex := names.AsHex(names.Pack(color.RGBA{R: n.R, G: n.G, B: n.B, A: 0xff}))
	return out.String("  ").Background(out.Color(hex)).String()
}
