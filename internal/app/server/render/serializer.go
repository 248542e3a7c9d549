package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mkarpov/metricserve/internal/app/server/metrics"
)

// vmSection is the top-level key of the process-metrics section. The
// literal is kept for wire compatibility with consumers of the
// original format; the same literal doubles as the reserved filter
// value meaning "process section only".
const vmSection = "jvm"

// Options are the per-request render parameters supplied by the
// transport layer.
type Options struct {
	// Class restricts output to metrics whose name starts with this
	// prefix (byte-wise, case-sensitive, no wildcards). Empty means
	// everything. The value "jvm" selects only the process section.
	Class string
	// Pretty indents the output for human eyes.
	Pretty bool
	// ShowFullSamples includes the raw reservoir samples of histograms
	// and timers.
	ShowFullSamples bool
}

// Serializer renders a registry, and optionally a process-level stats
// section, into a single JSON document. It only ever reads the
// registry; all dependencies are passed in explicitly.
type Serializer struct {
	registry *metrics.Registry
	vm       func() any
	logger   *logrus.Logger
	unit     DurationUnit
	showVM   bool
}

// NewSerializer wires a serializer. vm produces the opaque process
// stats document; pass nil (or showVM=false) to drop the section.
func NewSerializer(registry *metrics.Registry, vm func() any, logger *logrus.Logger, unit DurationUnit, showVM bool) *Serializer {
	return &Serializer{
		registry: registry,
		vm:       vm,
		logger:   logger,
		unit:     unit,
		showVM:   showVM && vm != nil,
	}
}

// WriteSnapshot renders one full document into w. Each entry is
// formatted into its own buffer and appended only once fully built, so
// a fault while formatting one metric discards that entry alone and
// the document stays well-formed. Only an unknown metric kind or a
// failing sink aborts the render.
func (s *Serializer) WriteSnapshot(w io.Writer, opts Options) error {
	ctx := Context{ShowFullSamples: opts.ShowFullSamples, Unit: s.unit}

	var buf bytes.Buffer
	buf.WriteByte('{')
	fields := 0
	appendField := func(name string, value []byte) {
		if fields > 0 {
			buf.WriteByte(',')
		}
		quoted, _ := json.Marshal(name)
		buf.Write(quoted)
		buf.WriteByte(':')
		buf.Write(value)
		fields++
	}

	if s.showVM && (opts.Class == "" || opts.Class == vmSection) {
		raw, err := json.Marshal(s.vm())
		if err != nil {
			s.logger.WithError(err).Warn("error writing out process metrics")
		} else {
			appendField(vmSection, raw)
		}
	}

	if opts.Class != vmSection {
		for _, entry := range s.registry.Entries() {
			if opts.Class != "" && !strings.HasPrefix(entry.Name, opts.Class) {
				continue
			}
			out, err := renderMetric(entry.Metric, ctx, s.logger)
			if err != nil {
				if errors.Is(err, ErrUnknownKind) {
					return fmt.Errorf("metric %q: %w", entry.Name, err)
				}
				s.logger.WithField("metric", entry.Name).WithError(err).Warn("error writing out metric")
				continue
			}
			raw, err := json.Marshal(out)
			if err != nil {
				s.logger.WithField("metric", entry.Name).WithError(err).Warn("error writing out metric")
				continue
			}
			appendField(entry.Name, raw)
		}
	}
	buf.WriteByte('}')

	if opts.Pretty {
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, buf.Bytes(), "", "  "); err != nil {
			return err
		}
		_, err := w.Write(pretty.Bytes())
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}
