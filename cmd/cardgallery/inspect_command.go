package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cardgallery/internal/gallery"
	"cardgallery/internal/services"
)

type regionView struct {
	Code         string `json:"code" yaml:"code"`
	Name         string `json:"name" yaml:"name"`
	Language     string `json:"language" yaml:"language"`
	LanguageName string `json:"language_name" yaml:"language_name"`
	NativeName   string `json:"native_name" yaml:"native_name"`
}

type inspectView struct {
	Token    string           `json:"token" yaml:"token"`
	Kind     gallery.Kind     `json:"kind" yaml:"kind"`
	Output   string           `json:"output" yaml:"output"`
	Filename gallery.Filename `json:"filename" yaml:"filename"`
	Caption  gallery.Caption  `json:"caption" yaml:"caption"`
	Region   *regionView      `json:"region,omitempty" yaml:"region,omitempty"`
}

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var format string
	var kindFlag string

	cmd := &cobra.Command{
		Use:   "inspect <token>",
		Short: "Show the fields decoded from a gallery token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			kind, err := resolveKind(cfg, kindFlag)
			if err != nil {
				return err
			}

			entry, err := gallery.ParseEntry(kind, args[0])
			if err != nil {
				return services.Wrap(services.ErrValidation, "inspect", "parse token", "", err)
			}
			view := newInspectView(entry, gallery.RenderOptions{DefaultExtension: cfg.Render.DefaultExtension})

			switch strings.ToLower(strings.TrimSpace(format)) {
			case "json":
				return writeJSON(cmd, view)
			case "yaml", "yml":
				return writeYAML(cmd, view)
			case "table":
				fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, view.rows(), nil))
				return nil
			case "plain":
				writePlain(cmd, view.rows())
				return nil
			case "", "auto":
				if isTerminal(cmd.OutOrStdout()) {
					fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, view.rows(), nil))
				} else {
					writePlain(cmd, view.rows())
				}
				return nil
			default:
				return services.Wrap(services.ErrValidation, "inspect", "parse flags",
					fmt.Sprintf("unknown --format %q (want auto, table, plain, json or yaml)", format), nil)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", "Output format: auto, table, plain, json or yaml")
	cmd.Flags().StringVar(&kindFlag, "kind", "", "Gallery kind: card or set (defaults to render.kind)")
	return cmd
}

func newInspectView(entry *gallery.Entry, opts gallery.RenderOptions) inspectView {
	view := inspectView{
		Token:    entry.Raw(),
		Kind:     entry.Kind(),
		Output:   entry.RenderWith(opts),
		Filename: entry.Filename(),
		Caption:  entry.Caption(),
	}
	if region, ok := gallery.LookupRegion(view.Filename.Region); ok {
		view.Region = &regionView{
			Code:         region.Code,
			Name:         region.Name,
			Language:     region.Language.String(),
			LanguageName: region.LanguageName(),
			NativeName:   region.NativeLanguageName(),
		}
	}
	return view
}

// rows lists the populated fields in display order.
func (v inspectView) rows() [][]string {
	var rows [][]string
	add := func(field, value string) {
		if value != "" {
			rows = append(rows, []string{field, value})
		}
	}

	f := v.Filename
	add("filename.name", f.Name)
	add("filename.set_code", f.SetCode)
	add("filename.region", f.Region)
	if v.Region != nil {
		add("filename.region_name", v.Region.Name)
		add("filename.language", fmt.Sprintf("%s (%s)", v.Region.LanguageName, v.Region.NativeName))
	}
	add("filename.release", f.Release)
	add("filename.rarity", f.Rarity)
	add("filename.edition", f.Edition)
	add("filename.alt", f.Alt)
	add("filename.extension", f.Extension)
	add("filename.proxy", yesNo(f.IsProxy))

	c := v.Caption
	add("caption.number", c.Number)
	add("caption.set_code", c.SetCode)
	add("caption.rarity", c.Rarity)
	add("caption.release", c.Release)
	add("caption.edition", c.Edition)
	add("caption.set", c.Set)
	add("caption.description", c.Description)

	add("output", v.Output)
	return rows
}

func writePlain(cmd *cobra.Command, rows [][]string) {
	out := cmd.OutOrStdout()
	for _, row := range rows {
		fmt.Fprintf(out, "%s: %s\n", row[0], row[1])
	}
}
