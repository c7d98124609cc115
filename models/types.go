package models

import "time"

// Post type constants
const (
	PostTypeText  = "text"
	PostTypeRadio = "radio"
	PostTypeScale = "scale"
)

// Heart target constants
const (
	TargetPost    = "post"
	TargetComment = "comment"
)

// Reserved response values, counted apart from normal tallies
const (
	SpecialPreferNotToSay = "prefer_not_to_say"
	SpecialNotApplicable  = "not_applicable"
)

// Domain types

type User struct {
	ID       int64  `json:"id"`
	Token    string `json:"-"` // Never expose in JSON
	Username string `json:"username"`
}

type Post struct {
	ID         int64       `json:"id"`
	UserID     int64       `json:"user_id"`
	Title      string      `json:"title"`
	Content    *string     `json:"content"`
	PostType   string      `json:"post_type"`
	PollConfig *PollConfig `json:"poll_config"`
	SortOrder  int64       `json:"sort_order"`
	Username   string      `json:"username,omitempty"`
}

type Comment struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	PostID   int64  `json:"post_id"`
	Content  string `json:"content"`
	Username string `json:"username,omitempty"`
}

type PollResponse struct {
	ID     int64        `json:"id"`
	UserID int64        `json:"user_id"`
	PostID int64        `json:"post_id"`
	Data   ResponseData `json:"response_data"`
}

type Heart struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"user_id"`
	TargetType string `json:"target_type"`
	TargetID   int64  `json:"target_id"`
}

type Session struct {
	ID        string    `json:"-"` // Derived from the token; never exposed
	UserID    int64     `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Feed view models

type CommentWithDetails struct {
	Comment
	HeartCount    int  `json:"heartCount"`
	ViewerHearted bool `json:"userHearted"`
}

type PostWithDetails struct {
	Post
	CommentCount  int                  `json:"comment_count"`
	ResponseCount int                  `json:"response_count"`
	Comments      []CommentWithDetails `json:"comments"`
	HeartCount    int                  `json:"heartCount"`
	ViewerHearted bool                 `json:"userHearted"`
	UserResponse  *ResponseData        `json:"userResponse,omitempty"`
	PollResults   PollAggregates       `json:"pollResults,omitempty"`
}

// Request types

type CreateIdentityRequest struct {
	Username string `json:"username"`
}

type VerifyTokenRequest struct {
	Token string `json:"token"`
}

type CreatePostRequest struct {
	Title      string      `json:"title"`
	Content    *string     `json:"content"`
	PostType   string      `json:"post_type"`
	PollConfig *PollConfig `json:"poll_config"`
}

type CreateCommentRequest struct {
	Content string `json:"content"`
}

type SubmitResponseRequest struct {
	ResponseData ResponseData `json:"responseData"`
}

type ToggleHeartRequest struct {
	TargetType string `json:"targetType"`
	TargetID   int64  `json:"targetId"`
}

type MovePostRequest struct {
	Position int `json:"position"`
}

// Response types

type IdentityResponse struct {
	Token        string `json:"token"`
	SessionToken string `json:"sessionToken"`
	Username     string `json:"username"`
	UserID       int64  `json:"userId"`
}

type SubmitResponseResponse struct {
	IsNewResponse bool           `json:"isNewResponse"`
	PollResults   PollAggregates `json:"pollResults,omitempty"`
}

type ToggleHeartResponse struct {
	Hearted bool `json:"hearted"`
}

type MovePostResponse struct {
	Moved   bool   `json:"moved"`
	Message string `json:"message,omitempty"`
}

type FeedResponse struct {
	Posts []PostWithDetails `json:"posts"`
}

type ExportResponse struct {
	RadioPolls []RadioExportSummary `json:"radioPolls"`
	ScalePolls []ScaleExportSummary `json:"scalePolls"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
