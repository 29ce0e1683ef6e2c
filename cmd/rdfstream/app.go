package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/adamluzsi/rdfstream/internal/errorkit"
	"github.com/adamluzsi/rdfstream/internal/logger"
	"github.com/adamluzsi/rdfstream/nodestream"
	"github.com/adamluzsi/rdfstream/sources"
	"github.com/adamluzsi/rdfstream/statement"
	"github.com/adamluzsi/rdfstream/stream"
)

const (
	ErrNoSlot       errorkit.Error = "the template needs exactly one blank field"
	ErrNoNodes      errorkit.Error = "no nodes given"
	ErrUnknownLevel errorkit.Error = "unknown log level"
	ErrSourceClash  errorkit.Error = "only one node source can be used at a time"
)

const (
	defaultBucket    = "nodes"
	defaultNodeQuery = "SELECT term FROM nodes"
)

func setupLogger(w io.Writer, verbose bool, level string) error {
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		logger.Default.SetFormatter(&logrus.TextFormatter{
			ForceColors:     true,
			FullTimestamp:   true,
			TimestampFormat: time.DateTime,
		})
	} else {
		logger.Default.SetFormatter(&logrus.JSONFormatter{})
	}
	logger.Default.SetOutput(w)

	if level != "" {
		lvl, ok := logger.ParseLevel(level)
		if !ok {
			return ErrUnknownLevel.F("%q", level)
		}
		logger.Default.SetLevel(lvl)
	}
	if verbose {
		logger.Default.SetLevel(logrus.DebugLevel)
	}
	return nil
}

func newApp(stdout, stderr io.Writer) *cli.App {
	var (
		verbose  bool
		logLevel string
	)
	loggingFlags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "verbose",
			Aliases:     []string{"v"},
			Usage:       "verbose output (includes debug)",
			Destination: &verbose,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level: debug, info, warn, error",
			EnvVars:     []string{"LOG_LEVEL", "LOGGER_LEVEL", "LOGGING_LEVEL"},
			Destination: &logLevel,
		},
	}
	boltFlag := &cli.PathFlag{
		Name:    "bolt",
		Usage:   "bolt database holding node sequences",
		EnvVars: []string{"RDFSTREAM_BOLT"},
	}
	bucketFlag := &cli.StringFlag{
		Name:    "bucket",
		Usage:   "bucket of the node sequence in the bolt database",
		EnvVars: []string{"RDFSTREAM_BUCKET"},
		Value:   defaultBucket,
	}
	before := func(_ *cli.Context) error {
		return setupLogger(stderr, verbose, logLevel)
	}

	return &cli.App{
		Name:      "rdfstream",
		Usage:     "fill statement templates from node sequences",
		Version:   version,
		Writer:    stdout,
		ErrWriter: stderr,
		Suggest:   true,
		Commands: []*cli.Command{
			{
				Name:      "fill",
				Usage:     "print one statement per node, placing the node in the blank field of the template",
				ArgsUsage: "[node...]",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "subject", Aliases: []string{"s"}, Usage: "subject term, ? marks the blank field"},
					&cli.StringFlag{Name: "predicate", Aliases: []string{"p"}, Usage: "predicate term, ? marks the blank field"},
					&cli.StringFlag{Name: "object", Aliases: []string{"o"}, Usage: "object term, ? marks the blank field"},
					boltFlag,
					bucketFlag,
					&cli.StringFlag{
						Name:    "sqlite",
						Usage:   "sqlite database to read nodes from",
						EnvVars: []string{"RDFSTREAM_SQLITE"},
					},
					&cli.StringFlag{
						Name:    "query",
						Usage:   "query selecting one column of N-Triples terms",
						EnvVars: []string{"RDFSTREAM_QUERY"},
						Value:   defaultNodeQuery,
					},
					&cli.BoolFlag{Name: "distinct", Usage: "skip repeated statements"},
					&cli.IntFlag{Name: "limit", Usage: "print at most this many statements, skipped duplicates are not counted (0 means no limit)"},
				}, loggingFlags...),
				Before: before,
				Action: fill,
			},
			{
				Name:      "load",
				Usage:     "append nodes to a node sequence in a bolt database",
				ArgsUsage: "node...",
				Flags:     append([]cli.Flag{boltFlag, bucketFlag}, loggingFlags...),
				Before:    before,
				Action:    load,
			},
		},
	}
}

func fill(cCtx *cli.Context) (returnErr error) {
	ctx := cCtx.Context
	template, field, err := parseTemplate(cCtx)
	if err != nil {
		return err
	}
	nodes, err := openNodes(ctx, cCtx)
	if err != nil {
		return err
	}

	st, err := nodestream.New(nodes, template, field, nodestream.WithContext(ctx))
	if err != nil {
		return errors.Wrap(err, "failed to build statement stream")
	}
	defer errorkit.Finish(&returnErr, st.Close)

	if cCtx.Bool("distinct") {
		if err := st.SetMap(statement.Distinct()); err != nil {
			return err
		}
	}

	var (
		count int
		limit = cCtx.Int("limit")
		iter  = stream.Iterate(st)
	)
	for (limit <= 0 || count < limit) && iter.Next() {
		if _, err := fmt.Fprintln(cCtx.App.Writer, iter.Value().String()); err != nil {
			return errors.WithStack(err)
		}
		count++
	}
	if err := iter.Err(); err != nil {
		return errors.Wrapf(err, "stopped after %d statements", count)
	}
	logger.Debug(ctx, "statements written", logger.Field("count", count))
	return nil
}

func parseTemplate(cCtx *cli.Context) (statement.Statement, statement.Field, error) {
	var (
		template statement.Statement
		blank    []statement.Field
	)
	for _, f := range []statement.Field{statement.Subject, statement.Predicate, statement.Object} {
		n, err := statement.ParseNode(cCtx.String(f.String()))
		if err != nil {
			return statement.Statement{}, 0, errors.Wrapf(err, "invalid %s", f)
		}
		if n.IsZero() {
			blank = append(blank, f)
			continue
		}
		template.Set(f, n)
	}
	if len(blank) != 1 {
		return statement.Statement{}, 0, ErrNoSlot.F("blank fields: %v", blank)
	}
	return template, blank[0], nil
}

func openNodes(ctx context.Context, cCtx *cli.Context) (nodestream.Nodes, error) {
	var (
		boltPath   = cCtx.Path("bolt")
		sqlitePath = cCtx.String("sqlite")
	)
	switch {
	case boltPath != "" && sqlitePath != "":
		return nil, ErrSourceClash
	case boltPath != "":
		return openBoltNodes(boltPath, cCtx.String("bucket"))
	case sqlitePath != "":
		return openSQLiteNodes(ctx, sqlitePath, cCtx.String("query"))
	default:
		nodes, err := parseNodes(cCtx.Args().Slice())
		if err != nil {
			return nil, err
		}
		return stream.Slice(nodes), nil
	}
}

func parseNodes(args []string) ([]statement.Node, error) {
	if len(args) == 0 {
		return nil, ErrNoNodes
	}
	var nodes []statement.Node
	for _, arg := range args {
		n, err := statement.ParseNode(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid node %q", arg)
		}
		if n.IsZero() {
			return nil, errors.Errorf("invalid node %q: a node can not be blank", arg)
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// closingNodes closes an extra resource after the node sequence.
type closingNodes struct {
	nodestream.Nodes
	closer io.Closer
}

func (n closingNodes) Close() error {
	return errorkit.Merge(n.Nodes.Close(), n.closer.Close())
}

func (n closingNodes) Err() error {
	if ep, ok := n.Nodes.(interface{ Err() error }); ok {
		return ep.Err()
	}
	return nil
}

func openBoltNodes(path, bucket string) (nodestream.Nodes, error) {
	store, err := sources.Open(path)
	if err != nil {
		return nil, err
	}
	nodes, err := store.Nodes(bucket)
	if err != nil {
		return nil, errorkit.Merge(err, store.Close())
	}
	return closingNodes{Nodes: nodes, closer: store}, nil
}

func openSQLiteNodes(ctx context.Context, path, query string) (nodestream.Nodes, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening sqlite database %s", path)
	}
	nodes, err := sources.QueryNodes(ctx, db, query)
	if err != nil {
		return nil, errorkit.Merge(err, db.Close())
	}
	return closingNodes{Nodes: nodes, closer: db}, nil
}

func load(cCtx *cli.Context) (returnErr error) {
	path := cCtx.Path("bolt")
	if path == "" {
		return errors.New("--bolt is required")
	}
	nodes, err := parseNodes(cCtx.Args().Slice())
	if err != nil {
		return err
	}
	store, err := sources.Open(path)
	if err != nil {
		return err
	}
	defer errorkit.Finish(&returnErr, store.Close)

	bucket := cCtx.String("bucket")
	if err := store.Append(bucket, nodes...); err != nil {
		return errors.Wrapf(err, "failed to append to %s", bucket)
	}
	logger.Info(cCtx.Context, "nodes loaded",
		logger.Field("bucket", bucket),
		logger.Field("count", len(nodes)))
	return nil
}
