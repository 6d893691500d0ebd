package apiclient

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"github.com/Kaleth2216/FadeApp/internal/sessionstore"
)

const HeaderRequestID = "X-Request-ID"

// PublicPaths are reachable without a bearer token. Matching is by
// substring, the same way the API gateway classifies routes.
var PublicPaths = []string{"/barbershops", "/auth", "/clients/register"}

func IsPublic(path string) bool {
	for _, p := range PublicPaths {
		if strings.Contains(path, p) {
			return true
		}
	}
	return false
}

// authTransport attaches the persisted token to every non-public request.
// The token is read from the store on each request, never cached here.
type authTransport struct {
	base  http.RoundTripper
	store sessionstore.TokenReader
	log   zerolog.Logger
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	if req.Header.Get(HeaderRequestID) == "" {
		req.Header.Set(HeaderRequestID, uuid.NewString())
	}

	if !IsPublic(req.URL.Path) && req.Header.Get("Authorization") == "" {
		raw, ok, err := t.store.Get(req.Context(), sessionstore.KeyToken)
		switch {
		case err != nil:
			t.log.Warn().Err(err).Str("path", req.URL.Path).Msg("could not read token")
		case ok && raw != "":
			tok := &oauth2.Token{AccessToken: raw, TokenType: "Bearer"}
			tok.SetAuthHeader(req)
		}
	}

	return t.base.RoundTrip(req)
}
