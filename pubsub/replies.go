package pubsub

import (
	"time"
)

// Image is a set of URLs for the same image at different scales
type Image struct {
	URL1x string `json:"url_1x"`
	URL2x string `json:"url_2x"`
	URL4x string `json:"url_4x"`
}

// RedemptionUser identifies the viewer who redeemed a reward
type RedemptionUser struct {
	ID          string `json:"id"`
	Login       string `json:"login"`
	DisplayName string `json:"display_name"`
}

type MaxPerStream struct {
	IsEnabled    bool  `json:"is_enabled"`
	MaxPerStream int64 `json:"max_per_stream"`
}

type MaxPerUserPerStream struct {
	IsEnabled           bool  `json:"is_enabled"`
	MaxPerUserPerStream int64 `json:"max_per_user_per_stream"`
}

type GlobalCooldown struct {
	IsEnabled             bool  `json:"is_enabled"`
	GlobalCooldownSeconds int64 `json:"global_cooldown_seconds"`
}

// Reward is a channel points custom reward as described by PubSub, which differs in
// a few field names from the EventSub and Helix representations
type Reward struct {
	ID                                string              `json:"id"`
	ChannelID                         string              `json:"channel_id"`
	Title                             string              `json:"title"`
	Prompt                            string              `json:"prompt"`
	Cost                              int64               `json:"cost"`
	IsUserInputRequired               bool                `json:"is_user_input_required"`
	IsSubOnly                         bool                `json:"is_sub_only"`
	Image                             *Image              `json:"image"`
	DefaultImage                      *Image              `json:"default_image"`
	BackgroundColor                   string              `json:"background_color"`
	IsEnabled                         bool                `json:"is_enabled"`
	IsPaused                          bool                `json:"is_paused"`
	IsInStock                         bool                `json:"is_in_stock"`
	MaxPerStream                      MaxPerStream        `json:"max_per_stream"`
	ShouldRedemptionsSkipRequestQueue bool                `json:"should_redemptions_skip_request_queue"`
	TemplateID                        *string             `json:"template_id"`
	UpdatedForIndicatorAt             *time.Time          `json:"updated_for_indicator_at"`
	MaxPerUserPerStream               MaxPerUserPerStream `json:"max_per_user_per_stream"`
	GlobalCooldown                    GlobalCooldown      `json:"global_cooldown"`
	RedemptionsRedeemedCurrentStream  *int64              `json:"redemptions_redeemed_current_stream"`
	CooldownExpiresAt                 *time.Time          `json:"cooldown_expires_at"`
}

// Redemption records a single viewer redeeming a reward. Status is "UNFULFILLED",
// "FULFILLED" or "ACTION_TAKEN".
type Redemption struct {
	ID         string         `json:"id"`
	User       RedemptionUser `json:"user"`
	ChannelID  string         `json:"channel_id"`
	RedeemedAt time.Time      `json:"redeemed_at"`
	Reward     Reward         `json:"reward"`
	UserInput  string         `json:"user_input,omitempty"`
	Status     string         `json:"status"`
}

// ChannelPointsReply is delivered on both community-points-channel-v1 and
// channel-points-channel-v1. Redemption is set when Type is "reward-redeemed" or
// "redemption-status-update"; Reward is set for "custom-reward-created",
// "custom-reward-updated" and "custom-reward-deleted".
type ChannelPointsReply struct {
	Type string `json:"type"`
	Data struct {
		Timestamp  time.Time   `json:"timestamp"`
		Redemption *Redemption `json:"redemption,omitempty"`
		Reward     *Reward     `json:"updated_reward,omitempty"`
	} `json:"data"`
}

type PointGain struct {
	UserID         string `json:"user_id"`
	ChannelID      string `json:"channel_id"`
	TotalPoints    int64  `json:"total_points"`
	BaselinePoints int64  `json:"baseline_points"`
	ReasonCode     string `json:"reason_code"`
}

type Balance struct {
	UserID    string `json:"user_id"`
	ChannelID string `json:"channel_id"`
	Balance   int64  `json:"balance"`
}

// CommunityPointsUserReply reports a change to the user's balance, e.g. with Type
// "points-earned"
type CommunityPointsUserReply struct {
	Type string `json:"type"`
	Data struct {
		Timestamp time.Time  `json:"timestamp"`
		ChannelID string     `json:"channel_id"`
		PointGain *PointGain `json:"point_gain,omitempty"`
		Balance   Balance    `json:"balance"`
	} `json:"data"`
}

type BadgeEntitlement struct {
	NewVersion      int64 `json:"new_version"`
	PreviousVersion int64 `json:"previous_version"`
}

// BitsEvent is the body of a cheer. UserID and UserName are null for anonymous cheers.
type BitsEvent struct {
	UserName         *string           `json:"user_name"`
	ChannelName      string            `json:"channel_name"`
	UserID           *string           `json:"user_id"`
	ChannelID        string            `json:"channel_id"`
	Time             time.Time         `json:"time"`
	ChatMessage      string            `json:"chat_message"`
	BitsUsed         int64             `json:"bits_used"`
	TotalBitsUsed    int64             `json:"total_bits_used"`
	Context          string            `json:"context"`
	BadgeEntitlement *BadgeEntitlement `json:"badge_entitlement"`
}

type ChannelBitsEventsV2Reply struct {
	Data        BitsEvent `json:"data"`
	Version     string    `json:"version"`
	MessageType string    `json:"message_type"`
	MessageID   string    `json:"message_id"`
	IsAnonymous bool      `json:"is_anonymous"`
}

type ChannelBitsBadgeUnlocksReply struct {
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	ChannelID   string    `json:"channel_id"`
	ChannelName string    `json:"channel_name"`
	BadgeTier   int64     `json:"badge_tier"`
	ChatMessage string    `json:"chat_message"`
	Time        time.Time `json:"time"`
}

type SubEmote struct {
	Start int64  `json:"start"`
	End   int64  `json:"end"`
	ID    string `json:"id"`
}

type SubMessage struct {
	Message string     `json:"message"`
	Emotes  []SubEmote `json:"emotes"`
}

// ChannelSubscribeEventsV1Reply describes a sub, resub or gift. Context is one of "sub",
// "resub", "subgift", "anonsubgift", "resubgift" or "anonresubgift"; the recipient
// fields are only set for gifts.
type ChannelSubscribeEventsV1Reply struct {
	UserName             string     `json:"user_name,omitempty"`
	DisplayName          string     `json:"display_name,omitempty"`
	ChannelName          string     `json:"channel_name"`
	UserID               string     `json:"user_id,omitempty"`
	ChannelID            string     `json:"channel_id"`
	Time                 time.Time  `json:"time"`
	SubPlan              string     `json:"sub_plan"`
	SubPlanName          string     `json:"sub_plan_name"`
	CumulativeMonths     int64      `json:"cumulative_months,omitempty"`
	StreakMonths         int64      `json:"streak_months,omitempty"`
	Months               int64      `json:"months,omitempty"`
	Context              string     `json:"context"`
	IsGift               bool       `json:"is_gift"`
	SubMessage           SubMessage `json:"sub_message"`
	RecipientID          string     `json:"recipient_id,omitempty"`
	RecipientUserName    string     `json:"recipient_user_name,omitempty"`
	RecipientDisplayName string     `json:"recipient_display_name,omitempty"`
	MultiMonthDuration   int64      `json:"multi_month_duration,omitempty"`
}

// ModerationAction describes a ban, timeout, message deletion, or other action taken
// by a moderator
type ModerationAction struct {
	Type             string   `json:"type"`
	ModerationAction string   `json:"moderation_action"`
	Args             []string `json:"args"`
	CreatedBy        string   `json:"created_by"`
	CreatedByUserID  string   `json:"created_by_user_id"`
	MsgID            string   `json:"msg_id"`
	TargetUserID     string   `json:"target_user_id"`
	TargetUserLogin  string   `json:"target_user_login"`
	FromAutomod      bool     `json:"from_automod"`
}

type ChatModeratorActionsReply struct {
	Type string           `json:"type"`
	Data ModerationAction `json:"data"`
}

type AutoModSender struct {
	UserID      string `json:"user_id"`
	Login       string `json:"login"`
	DisplayName string `json:"display_name"`
	ChatColor   string `json:"chat_color"`
}

type AutoModFragment struct {
	Text string `json:"text"`
}

type AutoModMessage struct {
	ID      string `json:"id"`
	Content struct {
		Text      string            `json:"text"`
		Fragments []AutoModFragment `json:"fragments"`
	} `json:"content"`
	Sender AutoModSender `json:"sender"`
	SentAt time.Time     `json:"sent_at"`
}

type ContentClassification struct {
	Category string `json:"category"`
	Level    int64  `json:"level"`
}

// AutoModQueueReply describes a message held by AutoMod, or the resolution of one
type AutoModQueueReply struct {
	Type string `json:"type"`
	Data struct {
		Message               AutoModMessage        `json:"message"`
		ContentClassification ContentClassification `json:"content_classification"`
		Status                string                `json:"status"`
		ReasonCode            string                `json:"reason_code"`
		ResolverID            string                `json:"resolver_id"`
		ResolverLogin         string                `json:"resolver_login"`
	} `json:"data"`
}

// UserModerationNotificationsReply tells a user what happened to their held message:
// Status is "PENDING", "ALLOWED", "DENIED" or "EXPIRED"
type UserModerationNotificationsReply struct {
	Type string `json:"type"`
	Data struct {
		MessageID string `json:"message_id"`
		Status    string `json:"status"`
	} `json:"data"`
}

type TopPredictor struct {
	ID              string    `json:"id"`
	EventID         string    `json:"event_id"`
	OutcomeID       string    `json:"outcome_id"`
	ChannelID       string    `json:"channel_id"`
	Points          int64     `json:"points"`
	PredictedAt     time.Time `json:"predicted_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	UserID          string    `json:"user_id"`
	UserDisplayName string    `json:"user_display_name"`
}

type PredictionOutcome struct {
	ID            string         `json:"id"`
	Color         string         `json:"color"`
	Title         string         `json:"title"`
	TotalPoints   int64          `json:"total_points"`
	TotalUsers    int64          `json:"total_users"`
	TopPredictors []TopPredictor `json:"top_predictors"`
}

// PredictionEvent is the state of a prediction. EndedAt, LockedAt and WinningOutcomeID
// are null until the prediction reaches the corresponding stage.
type PredictionEvent struct {
	ID                      string              `json:"id"`
	ChannelID               string              `json:"channel_id"`
	CreatedAt               time.Time           `json:"created_at"`
	EndedAt                 *time.Time          `json:"ended_at"`
	LockedAt                *time.Time          `json:"locked_at"`
	Outcomes                []PredictionOutcome `json:"outcomes"`
	PredictionWindowSeconds int64               `json:"prediction_window_seconds"`
	Status                  string              `json:"status"`
	Title                   string              `json:"title"`
	WinningOutcomeID        *string             `json:"winning_outcome_id"`
}

type PredictionsChannelV1Reply struct {
	Type string `json:"type"`
	Data struct {
		Timestamp time.Time       `json:"timestamp"`
		Event     PredictionEvent `json:"event"`
	} `json:"data"`
}

type PredictionResult struct {
	Type           string `json:"type"`
	PointsWon      *int64 `json:"points_won"`
	IsAcknowledged bool   `json:"is_acknowledged"`
}

type UserPrediction struct {
	ID          string            `json:"id"`
	EventID     string            `json:"event_id"`
	OutcomeID   string            `json:"outcome_id"`
	ChannelID   string            `json:"channel_id"`
	Points      int64             `json:"points"`
	PredictedAt time.Time         `json:"predicted_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	UserID      string            `json:"user_id"`
	Result      *PredictionResult `json:"result"`
}

type PredictionsUserV1Reply struct {
	Type string `json:"type"`
	Data struct {
		Timestamp  time.Time      `json:"timestamp"`
		Prediction UserPrediction `json:"prediction"`
	} `json:"data"`
}
