package callback

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/golden-vcr/server-common/entry"
	"github.com/golden-vcr/twitchapi/eventsub"
	"github.com/golden-vcr/twitchapi/internal/metrics"
	"github.com/gorilla/mux"
	"github.com/nicklaw5/helix/v2"
	"golang.org/x/exp/slog"
)

type VerifyNotificationFunc func(header http.Header, message string) bool
type HandleEventFunc func(ctx context.Context, logger *slog.Logger, messageID string, ev *eventsub.Event) error

// Publisher is the subset of events.Producer functionality used to forward
// notifications
type Publisher interface {
	Publish(ctx context.Context, messageID string, ev *eventsub.Event) error
}

type Server struct {
	verifyNotification VerifyNotificationFunc
	handleEvent        HandleEventFunc
}

func NewServer(twitchWebhookSecret string, publisher Publisher) *Server {
	return &Server{
		verifyNotification: func(header http.Header, message string) bool {
			return helix.VerifyEventSubNotification(twitchWebhookSecret, header, message)
		},
		handleEvent: func(ctx context.Context, logger *slog.Logger, messageID string, ev *eventsub.Event) error {
			return publisher.Publish(ctx, messageID, ev)
		},
	}
}

func (s *Server) RegisterRoutes(r *mux.Router) {
	r.Path("/callback").Methods("POST").HandlerFunc(s.handlePostCallback)
}

func (s *Server) handlePostCallback(res http.ResponseWriter, req *http.Request) {
	logger := entry.Log(req)

	// Pre-emptively read the request body so we can verify its signature
	body, err := io.ReadAll(req.Body)
	if err != nil {
		logger.Error("Failed to read request body", "error", err)
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	defer req.Body.Close()

	// Verify that this event comes from Twitch: abort if phony
	if !s.verifyNotification(req.Header, string(body)) {
		logger.Error("Failed to verify signature")
		metrics.EventSubRejected.WithLabelValues("signature").Inc()
		http.Error(res, "Signature verification failed", http.StatusBadRequest)
		return
	}

	// Decode the message into a typed event. If Twitch sends us a subscription type or
	// version we don't know how to handle, we reject it: in the case of a verification
	// request, that prevents the subscription from being enabled until we support it
	ev, err := eventsub.ParseHTTP(req.Header, body)
	if err != nil {
		var unknownErr *eventsub.UnknownEventTypeError
		isRevocation := eventsub.MessageType(req.Header.Get(eventsub.HeaderMessageType)) == eventsub.MessageTypeRevocation
		if errors.As(err, &unknownErr) && isRevocation {
			// A revocation carries no event to decode, so we can acknowledge it even for
			// a subscription type that we don't support
			logger.Warn("EventSub subscription of unsupported type was revoked",
				"subscriptionType", unknownErr.Type,
				"subscriptionVersion", unknownErr.Version,
			)
			metrics.EventSubMessages.WithLabelValues(string(unknownErr.Type), unknownErr.Version, metrics.OutcomeRevoked).Inc()
			res.WriteHeader(http.StatusNoContent)
			return
		}
		if errors.As(err, &unknownErr) {
			logger.Error("Unsupported EventSub subscription type",
				"subscriptionType", unknownErr.Type,
				"subscriptionVersion", unknownErr.Version,
			)
			metrics.EventSubRejected.WithLabelValues("unknown_type").Inc()
		} else {
			logger.Error("Failed to decode request body", "error", err)
			metrics.EventSubRejected.WithLabelValues("malformed").Inc()
		}
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}
	eventType := string(ev.Subscription.Type)
	logger = logger.With(
		"subscriptionId", ev.Subscription.ID,
		"subscriptionType", eventType,
		"subscriptionVersion", ev.Subscription.Version,
	)

	switch ev.MessageType {
	case eventsub.MessageTypeVerification:
		// Twitch is sending us an initial request to confirm registration of this event
		// callback: responding with the same value will enable the event subscription
		logger.Info("Responding to challenge", "challenge", ev.Challenge)
		metrics.EventSubMessages.WithLabelValues(eventType, ev.Subscription.Version, metrics.OutcomeVerified).Inc()
		res.Header().Set("content-type", "text/plain")
		res.Write([]byte(ev.Challenge))

	case eventsub.MessageTypeRevocation:
		// Twitch will no longer send us events for this subscription, e.g. because the
		// broadcaster revoked our app's access: GET /subscriptions will report it
		logger.Warn("EventSub subscription was revoked", "status", ev.Subscription.Status)
		metrics.EventSubMessages.WithLabelValues(eventType, ev.Subscription.Version, metrics.OutcomeRevoked).Inc()
		res.WriteHeader(http.StatusNoContent)

	default:
		// Attempt to handle the event, using our HandleEventFunc: this should be
		// relatively lightweight, since we're doing it synchronously in the callback
		// handler and waiting to respond to Twitch until finished
		messageID := req.Header.Get(eventsub.HeaderMessageID)
		logger = logger.With("messageId", messageID, "event", string(ev.RawPayload))
		if err := s.handleEvent(req.Context(), logger, messageID, ev); err != nil {
			logger.Error("Failed to handle event", "error", err)
			metrics.EventSubMessages.WithLabelValues(eventType, ev.Subscription.Version, metrics.OutcomeFailed).Inc()
			http.Error(res, err.Error(), http.StatusInternalServerError)
			return
		}

		// If successful, write a 200 response and we're done
		logger.Info("Handled event")
		metrics.EventSubMessages.WithLabelValues(eventType, ev.Subscription.Version, metrics.OutcomeHandled).Inc()
		res.WriteHeader(http.StatusOK)
	}
}
