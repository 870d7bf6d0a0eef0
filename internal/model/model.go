package model

import "time"

type UserRole string

const (
	RoleEmployee       UserRole = "EMPLOYEE"
	RoleProjectManager UserRole = "PROJECT_MANAGER"
	RoleAdmin          UserRole = "ADMIN"
)

type User struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Role      UserRole   `json:"role"`
	AvatarURL string     `json:"avatarUrl,omitempty"`
	XPPoints  int        `json:"xpPoints"`
	Level     int        `json:"level"`
	IsActive  bool       `json:"isActive"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

type IdeaStatus string

const (
	StatusConcept    IdeaStatus = "CONCEPT"
	StatusInProgress IdeaStatus = "IN_PROGRESS"
	StatusCompleted  IdeaStatus = "COMPLETED"
)

type Idea struct {
	ID                   int64            `json:"id"`
	Title                string           `json:"title"`
	Description          string           `json:"description"`
	Category             string           `json:"category"`
	Status               IdeaStatus       `json:"status"`
	ProgressPercentage   int              `json:"progressPercentage"`
	Author               User             `json:"author"`
	Tags                 []string         `json:"tags"`
	LikeCount            int              `json:"likeCount"`
	CommentCount         int              `json:"commentCount"`
	ViewCount            int              `json:"viewCount"`
	IsFeatured           bool             `json:"isFeatured"`
	IsLikedByCurrentUser bool             `json:"isLikedByCurrentUser"`
	Attachments          []FileAttachment `json:"attachments,omitempty"`
	ChecklistItems       []ChecklistItem  `json:"checklistItems,omitempty"`
	CreatedAt            time.Time        `json:"createdAt"`
	UpdatedAt            time.Time        `json:"updatedAt"`
}

type ChecklistItem struct {
	ID              int64     `json:"id"`
	IdeaID          int64     `json:"ideaId"`
	Title           string    `json:"title"`
	IsCompleted     bool      `json:"isCompleted"`
	OrdinalPosition int       `json:"ordinalPosition"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type IdeaCreateRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

type IdeaUpdateRequest struct {
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	Category    *string     `json:"category,omitempty"`
	Tags        []string    `json:"tags,omitempty"`
	Status      *IdeaStatus `json:"status,omitempty"`
	Progress    *int        `json:"progressPercentage,omitempty"`
}

type FileAttachment struct {
	ID           int64     `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	MimeType     string    `json:"mimeType"`
	FileSize     int64     `json:"fileSize"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

// MaxCommentLen and MaxMessageLen are enforced client-side before any
// network call, not just by the server.
const (
	MaxCommentLen = 200
	MaxMessageLen = 2000
)

type Comment struct {
	ID            int64             `json:"id"`
	IdeaID        int64             `json:"ideaId"`
	Author        User              `json:"author"`
	Content       string            `json:"content"`
	ReactionCount int               `json:"reactionCount"`
	Reactions     []CommentReaction `json:"reactions"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// CommentReaction is an aggregate: one row per emoji with its total count.
// Whether the current viewer reacted is not tracked client-side; the add
// endpoint answers that with a conflict (see engage.ReactionToggler).
type CommentReaction struct {
	ID     int64  `json:"id"`
	Emoji  string `json:"emoji"`
	UserID int64  `json:"userId"`
	Count  int    `json:"count"`
}

type Survey struct {
	ID                 int64          `json:"id"`
	Creator            User           `json:"creator"`
	Question           string         `json:"question"`
	Description        string         `json:"description,omitempty"`
	Options            []SurveyOption `json:"options"`
	IsActive           bool           `json:"isActive"`
	IsAnonymous        bool           `json:"isAnonymous"`
	AllowMultipleVotes bool           `json:"allowMultipleVotes"`
	TotalVotes         int            `json:"totalVotes"`
	HasVoted           bool           `json:"hasVoted"`
	UserVotedOptionIDs []int64        `json:"userVotedOptionIds,omitempty"`
	ExpiresAt          *time.Time     `json:"expiresAt,omitempty"`
	CreatedAt          time.Time      `json:"createdAt"`
}

type SurveyOption struct {
	ID         int64  `json:"id"`
	OptionText string `json:"optionText"`
	VoteCount  int    `json:"voteCount"`
}

type SurveyCreateRequest struct {
	Question           string     `json:"question"`
	Description        string     `json:"description,omitempty"`
	Options            []string   `json:"options"`
	IsAnonymous        bool       `json:"isAnonymous,omitempty"`
	AllowMultipleVotes bool       `json:"allowMultipleVotes,omitempty"`
	ExpiresAt          *time.Time `json:"expiresAt,omitempty"`
}

type Message struct {
	ID        int64     `json:"id"`
	Sender    User      `json:"sender"`
	Recipient User      `json:"recipient"`
	IdeaID    *int64    `json:"ideaId,omitempty"`
	IdeaTitle string    `json:"ideaTitle,omitempty"`
	Content   string    `json:"content"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// Conversation is derived server-side by grouping direct messages by
// counterpart; it is not a stored entity. Listings order by LastMessageAt
// descending.
type Conversation struct {
	OtherUser     User      `json:"otherUser"`
	LastMessage   Message   `json:"lastMessage"`
	UnreadCount   int       `json:"unreadCount"`
	LastMessageAt time.Time `json:"lastMessageAt"`
}

type SendMessageRequest struct {
	RecipientID int64  `json:"recipientId"`
	Content     string `json:"content"`
	IdeaID      *int64 `json:"ideaId,omitempty"`
}

type Group struct {
	ID          int64     `json:"id"`
	IdeaID      int64     `json:"ideaId"`
	Name        string    `json:"name"`
	Members     []User    `json:"members,omitempty"`
	MemberCount int       `json:"memberCount"`
	UnreadCount int       `json:"unreadCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

type GroupMessage struct {
	ID        int64     `json:"id"`
	GroupID   int64     `json:"groupId"`
	Sender    User      `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Notification is read-only display data; delivery is the backend's concern.
type Notification struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	LinkID    *int64    `json:"linkId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Badge struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	DisplayName string     `json:"displayName,omitempty"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	XPReward    int        `json:"xpReward"`
	Earned      bool       `json:"earned"`
	EarnedAt    *time.Time `json:"earnedAt,omitempty"`
}

type LikeStatus struct {
	RemainingLikes  int `json:"remainingLikes"`
	WeeklyLikesUsed int `json:"weeklyLikesUsed"`
	MaxWeeklyLikes  int `json:"maxWeeklyLikes"`
}

type CategoryBreakdown struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type WeeklyActivity struct {
	Date  string `json:"date"`
	Ideas int    `json:"ideas"`
}

type DashboardStats struct {
	TotalIdeas        int                 `json:"totalIdeas"`
	TotalUsers        int                 `json:"totalUsers"`
	IdeasThisWeek     int                 `json:"ideasThisWeek"`
	PopularCategory   string              `json:"popularCategory"`
	CompletedIdeas    int                 `json:"completedIdeas"`
	InProgressIdeas   int                 `json:"inProgressIdeas"`
	ConceptIdeas      int                 `json:"conceptIdeas"`
	TotalLikes        int                 `json:"totalLikes"`
	TotalComments     int                 `json:"totalComments"`
	ActiveSurveys     int                 `json:"activeSurveys"`
	CategoryBreakdown []CategoryBreakdown `json:"categoryBreakdown"`
	WeeklyActivity    []WeeklyActivity    `json:"weeklyActivity"`
}

type TopIdea struct {
	Idea        Idea `json:"idea"`
	WeeklyLikes int  `json:"weeklyLikes"`
	Rank        int  `json:"rank"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type AuthResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	User         User   `json:"user"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// Page mirrors the server's paginated envelope.
type Page[T any] struct {
	Content       []T  `json:"content"`
	TotalElements int  `json:"totalElements"`
	TotalPages    int  `json:"totalPages"`
	Size          int  `json:"size"`
	Number        int  `json:"number"`
	First         bool `json:"first"`
	Last          bool `json:"last"`
}

type PageRequest struct {
	Page      int
	Size      int
	Sort      string
	Direction string
}

type IdeaFilter struct {
	PageRequest
	Category string
	Status   IdeaStatus
	AuthorID int64
	Search   string
	Tags     []string
}
