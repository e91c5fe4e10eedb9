package main

import (
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"godist/adapters/sample"
	"godist/internal/api"
	"godist/internal/config"
	"godist/internal/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func (a *app) render(w io.Writer, v interface{}) error {
	if a.cfg.Output.Format == config.FormatJSON {
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to encode output")
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}

	var b strings.Builder
	switch v := v.(type) {
	case []api.EntryView:
		for _, e := range v {
			names := make([]string, len(e.Params))
			for i, p := range e.Params {
				names[i] = fmt.Sprintf("%s=%g", p.Name, p.Default)
			}
			var caps []string
			if e.Composable {
				caps = append(caps, "compose")
			}
			if e.Refreshable {
				caps = append(caps, "refresh")
			}
			fmt.Fprintf(&b, "%-16s %-36s %s\n", e.Kind, strings.Join(names, " "), strings.Join(caps, ","))
		}
	case api.Snapshot:
		fmt.Fprintf(&b, "%s\nsupport: %s\n", v.Description, v.Support)
	case []api.PointView:
		for _, p := range v {
			fmt.Fprintf(&b, "pdf(%g) = %s\n", p.X, p.Density)
		}
	case sample.Summary:
		fmt.Fprintf(&b, "count: %d\nmean: %g\nstandard deviation: %g\nmin: %g\nq25: %g\nmedian: %g\nq75: %g\nmax: %g\nskewness: %g\noutliers: %d\n",
			v.Count, v.Mean, v.StdDev, v.Min, v.Q25, v.Median, v.Q75, v.Max, v.Skewness, v.Outliers)
	case api.ZScoreView:
		fmt.Fprintf(&b, "z(%g) = %g\n", v.X, v.ZScore)
	default:
		fmt.Fprintf(&b, "%v\n", v)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
