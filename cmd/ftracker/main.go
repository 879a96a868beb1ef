package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/bzimmer/ftracker"
)

func config(c *cli.Context) (*ftracker.Config, error) {
	var err error
	var val []byte
	switch c.IsSet("config") {
	case true:
		log.Info().Str("file", c.String("config")).Msg("config")
		var fp *os.File
		fp, err = os.Open(c.String("config"))
		if err != nil {
			return nil, err
		}
		defer fp.Close()
		val, err = io.ReadAll(fp)
		if err != nil {
			return nil, err
		}
	case false:
		log.Info().Str("file", "etc/packages.json").Msg("config")
		val, err = ftracker.Content.ReadFile("etc/packages.json")
		if err != nil {
			return nil, err
		}
	}
	var cfg ftracker.Config
	err = json.Unmarshal(val, &cfg)
	if err != nil {
		return nil, err
	}
	if c.IsSet("lang") {
		cfg.Language = ftracker.Language(c.String("lang"))
	}
	return &cfg, nil
}

// pkg parses `CODE v1 v2 ...` from the command line
func pkg(args cli.Args) (ftracker.Package, error) {
	p := ftracker.Package{Code: args.First()}
	for _, arg := range args.Tail() {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return ftracker.Package{}, err
		}
		p.Values = append(p.Values, v)
	}
	return p, nil
}

func summary(c *cli.Context) error {
	cfg, err := config(c)
	if err != nil {
		return err
	}
	tracker := ftracker.NewTracker(cfg)
	var sums []*ftracker.Summary
	switch c.NArg() {
	case 0:
		sums, err = tracker.Summaries(c.Context)
		if err != nil {
			return err
		}
	default:
		p, err := pkg(c.Args())
		if err != nil {
			return err
		}
		sum, err := tracker.Summarize(p)
		if err != nil {
			return err
		}
		sums = append(sums, sum)
	}
	if c.Bool("json") {
		enc := json.NewEncoder(c.App.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(sums)
	}
	for _, sum := range sums {
		fmt.Fprintln(c.App.Writer, sum.Message)
	}
	return nil
}

func newEngine(c *cli.Context) (*gin.Engine, error) {
	cfg, err := config(c)
	if err != nil {
		return nil, err
	}
	u, err := url.Parse(c.String("base-url"))
	if err != nil {
		return nil, err
	}
	gin.SetMode(gin.ReleaseMode)
	return ftracker.NewEngine(ftracker.NewTracker(cfg), u.Path), nil
}

func serve(c *cli.Context) error {
	engine, err := newEngine(c)
	if err != nil {
		return err
	}
	u, err := url.Parse(c.String("base-url"))
	if err != nil {
		return err
	}
	_, port, _ := net.SplitHostPort(u.Host)
	address := fmt.Sprintf("0.0.0.0:%s", port)
	log.Info().Str("address", address).Msg("serving")
	return http.ListenAndServe(address, engine)
}

func function(c *cli.Context) error {
	engine, err := newEngine(c)
	if err != nil {
		return err
	}
	log.Info().Msg("running function")
	gl := ginadapter.New(engine)
	lambda.Start(ftracker.LambdaHandler(gl))
	return nil
}

func main() {
	app := &cli.App{
		Name:     "ftracker",
		HelpName: "ftracker",
		Usage:    "Fitness tracker summaries",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "file with the packages to summarize",
			},
			&cli.StringFlag{
				Name:    "lang",
				Value:   string(ftracker.English),
				Usage:   "language of the summary labels (en, ru)",
				EnvVars: []string{"FTRACKER_LANG"},
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Value: false,
				Usage: "log at debug level",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "summary",
				Usage:     "Summarize the configured packages or a single package",
				ArgsUsage: "[SWM|RUN|WLK VALUE...]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Value: false,
						Usage: "encode the summaries as json",
					},
				},
				Action: summary,
			},
			{
				Name:  "serve",
				Usage: "Serve summaries over http",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "base-url",
						Value:   "http://localhost:9001",
						Usage:   "Base URL",
						EnvVars: []string{"BASE_URL"},
					},
					&cli.BoolFlag{
						Name:    "netlify",
						Value:   false,
						Usage:   "run as a netlify function",
						EnvVars: []string{"NETLIFY"},
					},
				},
				Action: func(c *cli.Context) error {
					if c.Bool("netlify") {
						return function(c)
					}
					return serve(c)
				},
			},
		},
		ExitErrHandler: func(c *cli.Context, err error) {
			if err == nil {
				return
			}
			log.Error().Err(err).Msg(c.App.Name)
		},
		Before: func(c *cli.Context) error {
			level := zerolog.InfoLevel
			if c.Bool("verbose") {
				level = zerolog.DebugLevel
			}
			zerolog.SetGlobalLevel(level)
			zerolog.DurationFieldUnit = time.Millisecond
			zerolog.DurationFieldInteger = false
			log.Logger = log.Output(
				zerolog.ConsoleWriter{
					Out:        c.App.ErrWriter,
					NoColor:    false,
					TimeFormat: time.RFC3339,
				},
			)
			return nil
		},
		Action: summary,
	}
	if err := app.RunContext(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
	os.Exit(0)
}
