package metrics

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
)

// WriteText writes every metric of r in the Prometheus text exposition
// format. Dots and dashes in names become underscores and a non-empty
// namespace is prepended, so "rlp.decode.ok" under namespace "rrlp" is
// exported as "rrlp_rlp_decode_ok". A histogram becomes a summary with
// _count and _sum and, once observed, the gauges _min, _max and _mean.
func WriteText(w io.Writer, r *Registry, namespace string) error {
	var b strings.Builder
	r.Each(Visitor{
		Counter: func(c *Counter) {
			name := promName(namespace, c.Name())
			writeHeader(&b, name, "counter", c.Name())
			fmt.Fprintf(&b, "%s %d\n", name, c.Value())
		},
		Gauge: func(g *Gauge) {
			name := promName(namespace, g.Name())
			writeHeader(&b, name, "gauge", g.Name())
			fmt.Fprintf(&b, "%s %d\n", name, g.Value())
		},
		Histogram: func(h *Histogram) {
			name := promName(namespace, h.Name())
			s := h.Summary()
			writeHeader(&b, name, "summary", h.Name())
			fmt.Fprintf(&b, "%s_count %d\n", name, s.Count)
			fmt.Fprintf(&b, "%s_sum %s\n", name, formatFloat(s.Sum))
			if s.Count == 0 {
				return
			}
			for _, g := range []struct {
				suffix string
				value  float64
			}{{"min", s.Min}, {"max", s.Max}, {"mean", s.Mean}} {
				gname := name + "_" + g.suffix
				writeHeader(&b, gname, "gauge", h.Name()+" "+g.suffix)
				fmt.Fprintf(&b, "%s %s\n", gname, formatFloat(g.value))
			}
		},
	})
	_, err := io.WriteString(w, b.String())
	return err
}

// Handler serves WriteText output for GET and HEAD requests.
func Handler(r *Registry, namespace string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet && req.Method != http.MethodHead {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var buf bytes.Buffer
		if err := WriteText(&buf, r, namespace); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
		w.Write(buf.Bytes())
	})
}

func promName(namespace, name string) string {
	name = strings.NewReplacer(".", "_", "-", "_").Replace(name)
	if namespace != "" {
		return namespace + "_" + name
	}
	return name
}

func writeHeader(b *strings.Builder, name, typ, help string) {
	fmt.Fprintf(b, "# HELP %s %s\n", name, help)
	fmt.Fprintf(b, "# TYPE %s %s\n", name, typ)
}

func formatFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	case math.IsNaN(v):
		return "NaN"
	}
	return fmt.Sprintf("%g", v)
}
