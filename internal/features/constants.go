package features

// BucketCount is the number of rollout buckets; RolloutPercent maps onto it directly
const BucketCount = 100

// bucketSeparator joins flag key and user ID before hashing
const bucketSeparator = ":"

// Error messages
const (
	ErrMsgReadFileFailed  = "failed to read feature flag file %s: %w"
	ErrMsgParseFileFailed = "failed to parse feature flag file %s: %w"
	ErrMsgDuplicateFlag   = "duplicate feature flag %q"
)
