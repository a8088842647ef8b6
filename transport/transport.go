// Package transport is a minimal GitHub API client used by the hubcodec CLI to feed live responses
// into the decoders. It performs plain GETs and follows Link pagination. It does not retry, cache,
// or throttle.
package transport

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gruntwork-io/hubcodec/codec"
	"github.com/gruntwork-io/hubcodec/response"
	"github.com/sirupsen/logrus"
)

const (
	PublicHost        = "github.com"
	PublicApiUrl      = "api.github.com"
	DefaultApiVersion = "v3"

	mediaType = "application/vnd.github+json"
	userAgent = "hubcodec"
)

var nextLinkRegex = regexp.MustCompile(`<(.+?)>;\s*rel="next"`)

// Config configures a Client. ApiUrl is a host with an optional path, such as "api.github.com" or
// "ghe.example.com/api/v3". A value with an explicit scheme is used as is.
type Config struct {
	ApiUrl     string
	Token      string
	HttpClient *http.Client
	Logger     *logrus.Entry
}

type Client struct {
	baseUrl    string
	token      string
	httpClient *http.Client
	logger     *logrus.Entry
}

// Response is a finished exchange. NextUrl is the next page from the Link header, if any.
type Response struct {
	StatusCode int
	Body       []byte
	NextUrl    string
}

func NewClient(config Config) *Client {
	apiUrl := config.ApiUrl
	if apiUrl == "" {
		apiUrl = PublicApiUrl
	}
	if !strings.Contains(apiUrl, "://") {
		apiUrl = "https://" + apiUrl
	}

	httpClient := config.HttpClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		baseUrl:    strings.TrimSuffix(apiUrl, "/"),
		token:      config.Token,
		httpClient: httpClient,
		logger:     config.Logger,
	}
}

// ApiUrlForHost returns the API location for a GitHub host. github.com maps to api.github.com;
// any other host is assumed to be GitHub Enterprise and serves the API under /api/<version>.
func ApiUrlForHost(host, apiVersion string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	if host == "" || host == PublicHost || host == "www."+PublicHost || host == PublicApiUrl {
		return PublicApiUrl
	}
	if apiVersion == "" {
		apiVersion = DefaultApiVersion
	}
	return host + "/api/" + apiVersion
}

// Get fetches path, which is either relative to the API location or an absolute URL such as a
// NextUrl. Any HTTP status is returned as a Response; only transport failures return an error.
func (c *Client) Get(ctx context.Context, path string) (Response, error) {
	url := c.resolve(path)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Response{}, err
	}
	request.Header.Set("Accept", mediaType)
	request.Header.Set("User-Agent", userAgent)
	if c.token != "" {
		request.Header.Set("Authorization", fmt.Sprintf("token %s", c.token))
	}

	resp, err := c.httpClient.Do(request)
	if err != nil {
		return Response{}, fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return Response{}, fmt.Errorf("reading response from %s: %w", url, err)
	}

	if c.logger != nil {
		c.logger.Debugf("GET %s: HTTP %d, %s", url, resp.StatusCode, humanize.Bytes(uint64(buf.Len())))
	}

	return Response{
		StatusCode: resp.StatusCode,
		Body:       buf.Bytes(),
		NextUrl:    getNextUrl(resp.Header.Get("Link")),
	}, nil
}

func (c *Client) resolve(path string) string {
	if strings.HasPrefix(path, "https://") || strings.HasPrefix(path, "http://") {
		return path
	}
	return c.baseUrl + "/" + strings.TrimPrefix(path, "/")
}

// Fetch GETs path and decodes the response with fn. A non-2xx response comes back as an
// apierror.ClientError.
func Fetch[T any](ctx context.Context, c *Client, path string, fn codec.DecodeFunc[T]) (T, error) {
	resp, err := c.Get(ctx, path)
	if err != nil {
		var zero T
		return zero, err
	}
	return response.Decode(resp.StatusCode, resp.Body, fn)
}

// FetchAll GETs a list endpoint and every following page, decoding each element with fn.
func FetchAll[T any](ctx context.Context, c *Client, path string, fn codec.DecodeFunc[T]) ([]T, error) {
	var items []T
	for url := path; url != ""; {
		resp, err := c.Get(ctx, url)
		if err != nil {
			return items, err
		}
		page, err := response.DecodeList(resp.StatusCode, resp.Body, fn)
		if err != nil {
			return items, err
		}
		items = append(items, page...)
		url = resp.NextUrl
	}
	return items, nil
}

// getNextUrl extracts the next page URL from a Link header.
func getNextUrl(links string) string {
	if len(links) == 0 {
		return ""
	}

	for _, link := range strings.Split(links, ",") {
		urlMatches := nextLinkRegex.FindStringSubmatch(link)
		if len(urlMatches) == 2 {
			return strings.TrimSpace(urlMatches[1])
		}
	}

	return ""
}
