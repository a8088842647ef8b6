package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	goerrors "github.com/gruntwork-io/go-commons/errors"
	"github.com/gruntwork-io/go-commons/logging"
	"github.com/gruntwork-io/hubcodec/apierror"
	"github.com/gruntwork-io/hubcodec/codec"
	"github.com/gruntwork-io/hubcodec/transport"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// This variable is set at build time using -ldflags parameters. For more info, see:
// http://stackoverflow.com/a/11355611/483528
var VERSION string

type DecodeOptions struct {
	Kind   string
	Status int
	List   bool
	Format string
	Input  string

	// Project logger
	Logger *logrus.Entry
}

type GetOptions struct {
	Kind             string
	Path             string
	All              bool
	Format           string
	GithubToken      string
	Host             string
	ApiUrl           string
	GithubApiVersion string

	// Project logger
	Logger *logrus.Entry
}

const optionKind = "kind"
const optionStatus = "status"
const optionList = "list"
const optionAll = "all"
const optionFormat = "format"
const optionGithubToken = "github-oauth-token"
const optionHost = "host"
const optionApiUrl = "api-url"
const optionGithubAPIVersion = "github-api-version"
const optionLogLevel = "log-level"

const envVarGithubToken = "GITHUB_OAUTH_TOKEN"

const formatDump = "dump"
const formatJson = "json"

// Create the hubcodec CLI App
func CreateHubcodecCli(version string, writer io.Writer, errwriter io.Writer) *cli.App {
	app := &cli.App{
		Name:      "hubcodec",
		Usage:     "hubcodec decodes GitHub REST API responses into typed resources and reports why a payload does not fit.",
		UsageText: "hubcodec [global options] command [command options] [arguments...]",
		Authors:   []*cli.Author{{Name: "Gruntwork", Email: "www.gruntwork.io"}},
		Version:   version,
		Writer:    writer,
		ErrWriter: errwriter,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  optionLogLevel,
				Value: DEFAULT_LOG_LEVEL.String(),
				Usage: "The logging level of the command. Acceptable values\n\tare \"trace\", \"debug\", \"info\", \"warn\", \"error\", \"fatal\" and \"panic\".",
			},
		},
		Before: initLogger,
		Commands: []*cli.Command{
			{
				Name:      "decode",
				Usage:     "Decode a saved response body read from a file or stdin.",
				ArgsUsage: "[file]",
				Flags: []cli.Flag{
					kindFlag(),
					&cli.IntFlag{
						Name:  optionStatus,
						Value: http.StatusOK,
						Usage: "The HTTP status the body was returned with. Non-2xx bodies are decoded as API errors.",
					},
					&cli.BoolFlag{
						Name:  optionList,
						Usage: "The body is a JSON array of the given kind.",
					},
					formatFlag(),
				},
				Action: runDecode,
			},
			{
				Name:      "get",
				Usage:     "GET a path from the GitHub API and decode the response.",
				ArgsUsage: "<path>",
				Flags: []cli.Flag{
					kindFlag(),
					&cli.BoolFlag{
						Name:  optionAll,
						Usage: "The path is a list endpoint. Follow every page and decode each element.",
					},
					formatFlag(),
					&cli.StringFlag{
						Name:    optionGithubToken,
						Usage:   "A GitHub Personal Access Token, which is required for private resources.\n\tPopulate by setting env var",
						EnvVars: []string{envVarGithubToken},
					},
					&cli.StringFlag{
						Name:  optionHost,
						Value: transport.PublicHost,
						Usage: "The GitHub host. Any host other than github.com is treated as GitHub Enterprise.",
					},
					&cli.StringFlag{
						Name:  optionApiUrl,
						Usage: "The full API location, overriding --host. For example https://ghe.mycompany.com/api/v3.",
					},
					&cli.StringFlag{
						Name:  optionGithubAPIVersion,
						Value: transport.DefaultApiVersion,
						Usage: "The api version of the GitHub instance. If left blank, v3 will be used.\n\tThis will only be used if the host is not github.com.",
					},
				},
				Action: runGet,
			},
			{
				Name:   "kinds",
				Usage:  "List the resource kinds hubcodec can decode.",
				Action: runKinds,
			},
			{
				Name:   "enums",
				Usage:  "List the registered enums with their values and unknown-value policy.",
				Action: runEnums,
			},
		},
	}

	return app
}

func kindFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     optionKind,
		Aliases:  []string{"k"},
		Required: true,
		Usage:    "The resource kind of the body. Run \"hubcodec kinds\" for the list.",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  optionFormat,
		Value: formatDump,
		Usage: "How to print the decoded value: \"dump\" or \"json\".",
	}
}

func main() {
	app := CreateHubcodecCli(VERSION, os.Stdout, os.Stderr)

	if err := app.Run(os.Args); err != nil {
		GetProjectLogger().Errorf("%s\n", err)
		os.Exit(exitCode(err))
	}
}

// initLogger initializes the Logger before any command is actually executed. This function will handle all the setup
// code, such as setting up the logger with the appropriate log level.
func initLogger(cliContext *cli.Context) error {
	// Set logging level
	logLevel := cliContext.String(optionLogLevel)
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("Error: %s", err)
	}
	logging.SetGlobalLogLevel(level)
	return nil
}

func runDecode(c *cli.Context) error {
	options := DecodeOptions{
		Kind:   c.String(optionKind),
		Status: c.Int(optionStatus),
		List:   c.Bool(optionList),
		Format: c.String(optionFormat),
		Input:  c.Args().First(),
		Logger: GetProjectLoggerWithWriter(c.App.ErrWriter),
	}
	if err := validateFormat(options.Format); err != nil {
		return err
	}
	if options.Status < 100 || options.Status > 599 {
		return newError(invalidStatusCode, fmt.Sprintf("--%s must be an HTTP status code, got %d", optionStatus, options.Status))
	}
	k, err := lookupKind(options.Kind)
	if err != nil {
		return err
	}

	body, err := readInput(c.App.Reader, options.Input)
	if err != nil {
		return wrapError(failedToReadInput, goerrors.WithStackTrace(err))
	}
	options.Logger.Debugf("Decoding %s of %s as %s (HTTP %d)", humanize.Bytes(uint64(len(body))), inputName(options.Input), k.name, options.Status)

	value, err := k.decode(options.Status, body, options.List)
	if err != nil {
		return classify(err)
	}
	return printValue(c.App.Writer, options.Format, value)
}

func runGet(c *cli.Context) error {
	options := GetOptions{
		Kind:             c.String(optionKind),
		Path:             c.Args().First(),
		All:              c.Bool(optionAll),
		Format:           c.String(optionFormat),
		GithubToken:      c.String(optionGithubToken),
		Host:             c.String(optionHost),
		ApiUrl:           c.String(optionApiUrl),
		GithubApiVersion: c.String(optionGithubAPIVersion),
		Logger:           GetProjectLoggerWithWriter(c.App.ErrWriter),
	}
	if options.Path == "" {
		return newError(failedToReadInput, "get requires the API path to fetch, for example repos/octocat/Hello-World")
	}
	if err := validateFormat(options.Format); err != nil {
		return err
	}
	k, err := lookupKind(options.Kind)
	if err != nil {
		return err
	}

	apiUrl := options.ApiUrl
	if apiUrl == "" {
		apiUrl = transport.ApiUrlForHost(options.Host, options.GithubApiVersion)
	}
	if options.Host != transport.PublicHost && options.ApiUrl == "" {
		options.Logger.Infof("Assuming GitHub Enterprise for host: %s", options.Host)
	}

	client := transport.NewClient(transport.Config{
		ApiUrl: apiUrl,
		Token:  options.GithubToken,
		Logger: options.Logger,
	})

	value, err := fetchKind(c.Context, client, k, options.Path, options.All, options.Logger)
	if err != nil {
		return classify(err)
	}
	return printValue(c.App.Writer, options.Format, value)
}

// fetchKind GETs path and decodes it as k. With all set, every page of a list endpoint is fetched
// and the decoded items are concatenated.
func fetchKind(ctx context.Context, client *transport.Client, k kind, path string, all bool, logger *logrus.Entry) (interface{}, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if all {
		logger.Debugf("Fetching every page of %s", path)
	}
	return k.fetch(ctx, client, path, all)
}

func runKinds(c *cli.Context) error {
	w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	for _, name := range kindNames() {
		fmt.Fprintf(w, "%s\t%s\n", name, kinds[name].description)
	}
	if err := w.Flush(); err != nil {
		return wrapError(failedToWriteOutput, err)
	}
	return nil
}

func runEnums(c *cli.Context) error {
	w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	for _, enum := range codec.Enums() {
		policy := "closed"
		if enum.Open {
			policy = "open"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", enum.Name, policy, strings.Join(enum.Values, ", "))
	}
	if err := w.Flush(); err != nil {
		return wrapError(failedToWriteOutput, err)
	}
	return nil
}

func validateFormat(format string) error {
	switch format {
	case formatDump, formatJson:
		return nil
	}
	return newError(invalidOutputFormat, fmt.Sprintf("--%s must be %q or %q, got %q", optionFormat, formatDump, formatJson, format))
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "" || path == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}
		buf := new(bytes.Buffer)
		_, err := buf.ReadFrom(stdin)
		return buf.Bytes(), err
	}
	return os.ReadFile(path)
}

func inputName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}

func printValue(w io.Writer, format string, value interface{}) error {
	if format == formatJson {
		encoded, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return wrapError(failedToWriteOutput, goerrors.WithStackTrace(err))
		}
		if _, err := fmt.Fprintln(w, string(encoded)); err != nil {
			return wrapError(failedToWriteOutput, goerrors.WithStackTrace(err))
		}
		return nil
	}

	config := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true, SortKeys: true}
	config.Fdump(w, value)
	return nil
}

// classify maps a decode or API failure to a cliError with a friendlier message.
func classify(err error) error {
	if clientErr, ok := apierror.As(err); ok {
		code := apiReturnedError
		switch {
		case apierror.IsRateLimited(err):
			code = rateLimitExceeded
		case clientErr.Status() == http.StatusUnauthorized, clientErr.Status() == http.StatusForbidden:
			code = invalidGithubTokenOrAccessDenied
		case apierror.IsNotFound(err):
			code = resourceDoesNotExistOrAccessDenied
		}
		return &cliError{errorCode: code, details: getErrorMessage(code, err.Error()), err: err}
	}

	var decodeErr *codec.DecodeError
	if errors.As(err, &decodeErr) {
		return wrapError(failedToDecodeResponse, err)
	}
	return wrapError(failedToReachApi, err)
}

func getErrorMessage(errorCode int, errorDetails string) string {
	switch errorCode {
	case invalidGithubTokenOrAccessDenied:
		return fmt.Sprintf(`
Received an HTTP 401 or 403 Response.

This means that your GitHub oAuth Token is invalid or lacks access to this resource. Pass a valid one with --github-oauth-token.

Underlying error message:
%s
`, errorDetails)
	case resourceDoesNotExistOrAccessDenied:
		return fmt.Sprintf(`
Received an HTTP 404 Response.

This means that either nothing exists at the path provided, or that you don't have permission to access it.
If the path is correct, you may need to pass in a --github-oauth-token.

Underlying error message:
%s
`, errorDetails)
	case rateLimitExceeded:
		return fmt.Sprintf(`
The GitHub API rate limit was exceeded. Run "hubcodec get --kind rate-limit rate_limit" to see when it resets.

Underlying error message:
%s
`, errorDetails)
	}

	return errorDetails
}
