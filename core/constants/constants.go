package constants

import "time"

// Roles recognized by the platform. Role values are compared
// case-insensitively against JWT claims and request fields.
const (
	RoleAdmin        = "admin"
	RoleHeadChef     = "head_chef"
	RolePresales     = "presales"
	RoleSales        = "sales"
	RoleCulinaryTeam = "culinary_team"
)

// Token scopes
const (
	ScopeTokenAccess  = "access"
	ScopeTokenRefresh = "refresh"
)

// Echo context keys
const (
	ContextTokenData = "token_data"
)

// Request handling
const (
	DefaultRequestTimeout = 10 * time.Second
	DefaultTimeout        = 30 * time.Second
)

// Login throttling
const (
	MaxLoginAttempts = 5
	BlockDuration    = 15 * time.Minute
)

// Redis key prefixes
const (
	RedisKeyTokenBlacklist = "auth:blacklist:"
	RedisKeyLoginAttempts  = "auth:login_attempts:"
)

// Database pool defaults
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
	DatabaseSSLMode         = "disable"
)

// Member assignment strategies (config: scheduling.member_assignment)
const (
	MemberAssignRoundRobin = "round_robin"
	MemberAssignFullRoster = "full_roster"
)

// SlotTimeBufferMinutes is the tolerance applied on both sides of a slot
// window when checking whether a requested demo time fits the slot.
const SlotTimeBufferMinutes = 30

// Asynq task types
const (
	TaskTypeDemoPlaced    = "demo:placed"
	TaskTypeDemoCancelled = "demo:cancelled"
)
