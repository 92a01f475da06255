package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gogotex/docstore/internal/config"
	"github.com/gogotex/docstore/internal/document"
	"github.com/gogotex/docstore/internal/document/service"
	"github.com/gogotex/docstore/pkg/logger"
	"github.com/gogotex/docstore/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		logger.Fatalf("docstore: %v", err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := pflag.NewFlagSet("docstore", pflag.ContinueOnError)
	var (
		seedFile      = fs.String("seed", "", "Path to a JSON array of documents to load (overrides DOCSTORE_SEED_FILE)")
		id            = fs.String("id", "", "Look up a single document by id instead of searching")
		titlePrefixes = fs.StringArray("title-prefix", nil, "Title must start with one of these (repeatable)")
		contains      = fs.StringArray("contains", nil, "Content must contain all of these (repeatable)")
		authors       = fs.StringArray("author", nil, "Author id must be one of these (repeatable)")
		from          = fs.String("from", "", "Inclusive lower bound on creation time (RFC 3339)")
		to            = fs.String("to", "", "Inclusive upper bound on creation time (RFC 3339)")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Init(cfg.Log.Level)
	if err := logger.SetFormat(cfg.Log.Format); err != nil {
		return err
	}
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	reg := prometheus.NewRegistry()
	m := metrics.NewCollectors(cfg.Metrics.Namespace)
	if err := m.Register(reg); err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}
	svc := service.NewMemoryService(
		service.WithMetrics(m),
		service.WithLogger(logger.WithFields(logrus.Fields{"component": "docstore"})),
	)

	if *seedFile == "" {
		*seedFile = cfg.Store.SeedFile
	}
	if *seedFile != "" {
		n, err := loadSeed(svc, *seedFile)
		if err != nil {
			return err
		}
		logger.Infof("loaded %d documents from %s", n, *seedFile)
	}

	var out interface{}
	if *id != "" {
		d, ok := svc.FindByID(*id)
		if !ok {
			return fmt.Errorf("document with id %s not found", *id)
		}
		out = d
	} else {
		req := document.SearchRequest{
			TitlePrefixes:    *titlePrefixes,
			ContainsContents: *contains,
			AuthorIDs:        *authors,
		}
		if req.CreatedFrom, err = parseBound(*from); err != nil {
			return fmt.Errorf("invalid -from: %w", err)
		}
		if req.CreatedTo, err = parseBound(*to); err != nil {
			return fmt.Errorf("invalid -to: %w", err)
		}
		out = svc.Search(req)
	}

	logSummary(reg)

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func loadSeed(svc service.Service, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read seed file: %w", err)
	}
	var docs []document.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return 0, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	for i := range docs {
		if _, err := svc.Save(&docs[i]); err != nil {
			return i, fmt.Errorf("seed document %d: %w", i, err)
		}
	}
	return len(docs), nil
}

func parseBound(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func logSummary(reg prometheus.Gatherer) {
	families, err := reg.Gather()
	if err != nil {
		logger.Warnf("gather metrics: %v", err)
		return
	}
	for _, mf := range families {
		for _, mt := range mf.GetMetric() {
			switch {
			case mt.GetCounter() != nil:
				labels := logrus.Fields{"metric": mf.GetName()}
				for _, lp := range mt.GetLabel() {
					labels[lp.GetName()] = lp.GetValue()
				}
				logger.WithFields(labels).Debugf("%v", mt.GetCounter().GetValue())
			case mt.GetHistogram() != nil:
				logger.WithFields(logrus.Fields{"metric": mf.GetName()}).Debugf("count=%d sum=%v", mt.GetHistogram().GetSampleCount(), mt.GetHistogram().GetSampleSum())
			}
		}
	}
}
