package biz

import "time"

const (
	// SessionCacheKey is the redis key prefix for dialogue sessions.
	SessionCacheKey = "chat:session:"

	// SessionExpire bounds how long an idle dialogue session survives
	// before the expiry task closes it out.
	SessionExpire = time.Hour * 2
)
