package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/provide-io/pixelprops/go/pixelprops/pkg/props"
)

type classification struct {
	Package  string             `json:"package" yaml:"package"`
	Class    props.PackageClass `json:"class" yaml:"class"`
	Eligible bool               `json:"eligible" yaml:"eligible"`
}

type applyResult struct {
	Package   string           `json:"package" yaml:"package"`
	Requested int              `json:"requested" yaml:"requested"`
	Applied   int              `json:"applied" yaml:"applied"`
	Before    []props.Override `json:"before" yaml:"before"`
	After     []props.Override `json:"after" yaml:"after"`
	Err       error            `json:"-" yaml:"-"`
	Errors    []string         `json:"errors,omitempty" yaml:"errors,omitempty"`
}

type profileView struct {
	Name      string           `json:"name" yaml:"name"`
	Fields    int              `json:"fields" yaml:"fields"`
	Overrides []props.Override `json:"overrides" yaml:"overrides"`
}

type printer struct {
	w     io.Writer
	key   *color.Color
	value *color.Color
	title *color.Color
	warn  *color.Color
}

func newPrinter(w io.Writer, noColor bool) *printer {
	p := &printer{
		w:     w,
		key:   color.New(color.FgCyan),
		value: color.New(color.FgGreen),
		title: color.New(color.Bold),
		warn:  color.New(color.FgYellow),
	}
	if noColor {
		for _, c := range []*color.Color{p.key, p.value, p.title, p.warn} {
			c.DisableColor()
		}
	}
	return p
}

// structured writes v as JSON or YAML. It reports false for text output.
func (p *printer) structured(format string, v interface{}) (bool, error) {
	switch format {
	case "json":
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	case "text", "":
		return false, nil
	default:
		return true, fmt.Errorf("unknown output format %q", format)
	}
}

func (p *printer) overrides(list []props.Override) {
	for _, o := range list {
		fmt.Fprintf(p.w, "  %s = %s\n", p.key.Sprintf("%-12s", o.Key), p.value.Sprint(o.Value))
	}
}

func (p *printer) decision(format string, d props.Decision) error {
	if done, err := p.structured(format, d); done {
		return err
	}

	fmt.Fprintf(p.w, "%s %s\n", p.title.Sprint("package:"), d.Package)
	fmt.Fprintf(p.w, "%s %s\n", p.title.Sprint("class:  "), d.Class)
	switch {
	case d.Profile() != nil:
		fmt.Fprintf(p.w, "%s %s\n", p.title.Sprint("profile:"), d.ProfileName)
	case d.Exempt:
		fmt.Fprintf(p.w, "%s %s\n", p.title.Sprint("profile:"), "none (device is already a current flagship)")
	default:
		fmt.Fprintf(p.w, "%s %s\n", p.title.Sprint("profile:"), "none")
	}
	fmt.Fprintln(p.w, p.title.Sprint("overrides:"))
	p.overrides(d.Overrides)
	for _, k := range d.Suppressed {
		fmt.Fprintf(p.w, "  %s\n", p.warn.Sprintf("%s suppressed", k))
	}
	return nil
}

func (p *printer) applied(format string, r applyResult) error {
	if r.Err != nil {
		r.Errors = []string{r.Err.Error()}
	}
	if done, err := p.structured(format, r); done {
		return err
	}

	fmt.Fprintf(p.w, "%s %s\n", p.title.Sprint("package:"), r.Package)
	fmt.Fprintf(p.w, "%s %d of %d overrides\n", p.title.Sprint("applied:"), r.Applied, r.Requested)

	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  FIELD\tBEFORE\tAFTER")
	for i, after := range r.After {
		before := r.Before[i]
		marker := ""
		if before.Value != after.Value {
			marker = " *"
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s%s\n", after.Key, before.Value, after.Value, marker)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if r.Err != nil {
		fmt.Fprintln(p.w, p.warn.Sprintf("⚠️ %v", r.Err))
	}
	return nil
}

func (p *printer) classifications(format string, rows []classification) error {
	if done, err := p.structured(format, rows); done {
		return err
	}

	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	for _, r := range rows {
		eligible := ""
		if r.Eligible {
			eligible = "eligible"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Package, r.Class, eligible)
	}
	return tw.Flush()
}

func (p *printer) profiles(format string, list []*props.Profile) error {
	views := make([]profileView, 0, len(list))
	for _, prof := range list {
		views = append(views, profileView{Name: prof.Name(), Fields: prof.Len(), Overrides: prof.Overrides()})
	}
	if done, err := p.structured(format, views); done {
		return err
	}

	for i, v := range views {
		if i > 0 {
			fmt.Fprintln(p.w)
		}
		fmt.Fprintf(p.w, "%s (%d fields)\n", p.title.Sprint(v.Name), v.Fields)
		p.overrides(v.Overrides)
	}
	return nil
}
