package transport

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gruntwork-io/hubcodec/apierror"
	"github.com/gruntwork-io/hubcodec/internal/fixtures"
	"github.com/gruntwork-io/hubcodec/models/labels"
	"github.com/gruntwork-io/hubcodec/models/users"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApiUrlForHost(t *testing.T) {
	t.Parallel()

	cases := []struct {
		host     string
		version  string
		expected string
	}{
		{"github.com", "v3", "api.github.com"},
		{"www.github.com", "", "api.github.com"},
		{"GitHub.com", "v3", "api.github.com"},
		{"", "v3", "api.github.com"},
		{"ghe.mycompany.com", "v3", "ghe.mycompany.com/api/v3"},
		{"github.internal.com", "", "github.internal.com/api/v3"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, ApiUrlForHost(tc.host, tc.version), tc.host)
	}
}

func TestGetNextUrl(t *testing.T) {
	t.Parallel()

	cases := []struct {
		links    string
		expected string
	}{
		{``, ``},
		{`<https://api.github.com/repositories/1/labels?page=2>; rel="next", <https://api.github.com/repositories/1/labels?page=5>; rel="last"`, "https://api.github.com/repositories/1/labels?page=2"},
		{`<https://api.github.com/repositories/1/labels?page=1>; rel="prev", <https://api.github.com/repositories/1/labels?page=3>; rel="next"`, "https://api.github.com/repositories/1/labels?page=3"},
		{`<https://api.github.com/repositories/1/labels?page=1>; rel="first"`, ``},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, getNextUrl(tc.links))
	}
}

func TestGetSendsHeadersAndReturnsAnyStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "token secret", r.Header.Get("Authorization"))
		assert.Equal(t, mediaType, r.Header.Get("Accept"))
		assert.Equal(t, "/users/ghost", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"Not Found"}`)
	}))
	defer server.Close()

	client := NewClient(Config{ApiUrl: server.URL, Token: "secret", Logger: logrus.NewEntry(logrus.New())})

	resp, err := client.Get(context.Background(), "users/ghost")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, `{"message":"Not Found"}`, string(resp.Body))
	assert.Equal(t, "", resp.NextUrl)
}

func TestFetch(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/octocat":
			fmt.Fprint(w, fixtures.User)
		default:
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"message":"Not Found","documentation_url":"https://docs.github.com/rest"}`)
		}
	}))
	defer server.Close()

	client := NewClient(Config{ApiUrl: server.URL})

	user, err := Fetch(context.Background(), client, "/users/octocat", users.DecodeUser)
	require.NoError(t, err)
	assert.Equal(t, "octocat", user.Login)

	_, err = Fetch(context.Background(), client, "/users/ghost", users.DecodeUser)
	assert.True(t, apierror.IsNotFound(err))
}

func TestFetchAllFollowsPagination(t *testing.T) {
	t.Parallel()

	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "" {
			w.Header().Set("Link", fmt.Sprintf(`<%s/repos/octocat/Hello-World/labels?page=2>; rel="next"`, server.URL))
		}
		fmt.Fprint(w, `[`+fixtures.Label+`]`)
	}))
	defer server.Close()

	client := NewClient(Config{ApiUrl: server.URL})

	all, err := FetchAll(context.Background(), client, "repos/octocat/Hello-World/labels", labels.DecodeLabel)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetTransportFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewClient(Config{ApiUrl: url}).Get(context.Background(), "rate_limit")
	require.Error(t, err)
	_, isClientErr := apierror.As(err)
	assert.False(t, isClientErr)
}

func TestGetHonorsCancellation(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(Config{ApiUrl: server.URL}).Get(ctx, "rate_limit")
	assert.ErrorIs(t, err, context.Canceled)
}
