package errorx

type Code uint64

const (
	// Common codes
	BadRequest       Code = 100001
	BadResponse      Code = 100002
	PermissionDenied Code = 100003
	NotFound         Code = 100004
	Unauthenticated  Code = 100005
	AlreadyExists    Code = 100006
	Internal         Code = 100007
	Unavailable      Code = 100008
	TooManyRequests  Code = 100009

	// Session codes
	TokenExpired  Code = 200001
	RefreshFailed Code = 200002
	ReloginForced Code = 200003

	// Wallet codes
	InsufficientPoints Code = 300001

	// Onboarding codes
	InvalidPhone      Code = 400001
	ProfileIncomplete Code = 400002
)
