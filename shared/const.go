package shared

const (
	UserID     = "user_id"
	ClientType = "client_type"

	// User client types (client_type column and JWT claim)
	ClientTypeAdmin  = 0
	ClientTypeNormal = 1
	ClientTypeBanned = -1
)
