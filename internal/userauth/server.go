package userauth

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/golden-vcr/server-common/entry"
	"github.com/golden-vcr/twitchapi"
	"github.com/golden-vcr/twitchapi/eventsub"
	"github.com/golden-vcr/twitchapi/internal/subscription"
	"github.com/gorilla/mux"
)

const twitchAuthorizeUrl = "https://id.twitch.tv/oauth2/authorize"

type Server struct {
	origin                string
	twitchClientId        string
	requiredSubscriptions []eventsub.Subscription
	csrf                  *csrfBuffer
}

func NewServer(origin, twitchClientId string, requiredSubscriptions []eventsub.Subscription) *Server {
	return &Server{
		origin:                origin,
		twitchClientId:        twitchClientId,
		requiredSubscriptions: requiredSubscriptions,
		csrf:                  newCsrfBuffer(),
	}
}

func (s *Server) RegisterRoutes(r *mux.Router) {
	r.Path("/userauth/start").Methods("GET").HandlerFunc(s.handleStartAuth)
	r.Path("/userauth/finish").Methods("GET").HandlerFunc(s.handleFinishAuth)
}

func (s *Server) handleStartAuth(res http.ResponseWriter, req *http.Request) {
	u, err := url.Parse(twitchAuthorizeUrl)
	if err != nil {
		panic(err)
	}
	scopes := make([]string, 0)
	for _, scope := range subscription.RequiredScopes(s.requiredSubscriptions) {
		scopes = append(scopes, string(scope))
	}
	q := u.Query()
	q.Add("response_type", "code")
	q.Add("client_id", s.twitchClientId)
	q.Add("redirect_uri", s.origin+"/userauth/finish")
	q.Add("scope", strings.Join(scopes, " "))
	q.Add("state", s.csrf.generate())
	u.RawQuery = q.Encode()

	res.Header().Set("location", u.String())
	res.WriteHeader(http.StatusSeeOther)
}

func (s *Server) handleFinishAuth(res http.ResponseWriter, req *http.Request) {
	logger := entry.Log(req)
	query := req.URL.Query()

	// If the broadcaster declined to authorize our app, Twitch redirects back to us
	// with an error in place of an authorization code
	if errorValue := query.Get("error"); errorValue != "" {
		logger.Warn("Authorization was not granted", "error", errorValue, "description", query.Get("error_description"))
		http.Error(res, fmt.Sprintf("authorization failed: %s", query.Get("error_description")), http.StatusBadRequest)
		return
	}

	// Verify the CSRF token carried in the 'state' parameter
	tokenValue := query.Get("state")
	if tokenValue == "" {
		http.Error(res, "'state' value not found in URL query params", http.StatusBadRequest)
		return
	}
	if !s.csrf.check(tokenValue) {
		http.Error(res, "CSRF token verification failed", http.StatusBadRequest)
		return
	}

	// Verify that the scopes we were granted are sufficient to create every required
	// subscription
	granted := twitchapi.ParseScopes(query.Get("scope"))
	for _, required := range s.requiredSubscriptions {
		validator := required.Scope()
		if missing := validator.Missing(granted); len(missing) > 0 {
			logger.Error("Granted scopes are insufficient",
				"subscriptionType", required.EventType(),
				"subscriptionVersion", required.Version(),
				"requiredScopes", validator.String(),
				"grantedScopes", granted,
			)
			http.Error(res, fmt.Sprintf("required scope '%s' was not granted", missing[0]), http.StatusBadRequest)
			return
		}
	}

	logger.Info("Broadcaster granted access", "grantedScopes", granted)
	res.Header().Set("Content-Type", "text/html; charset=utf-8")
	res.Write([]byte("<!DOCTYPE html><html><head><title>OK</title></head><body><h1>Success!</h1><p>Access granted. You may close this window.</p></body></html>"))
}
