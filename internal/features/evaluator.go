package features

import (
	"hash/fnv"
	"slices"
	"sort"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
)

// Evaluator answers flag checks for a fixed Config. It holds no mutable state
// and is safe for concurrent use.
type Evaluator struct {
	flags map[string]domain.FeatureFlag
	keys  []string
}

// NewEvaluator builds an Evaluator from cfg. Later duplicates replace earlier ones.
func NewEvaluator(cfg Config) *Evaluator {
	e := &Evaluator{flags: make(map[string]domain.FeatureFlag, len(cfg.Flags))}
	for _, flag := range cfg.Flags {
		flag.AllowList = slices.Clone(flag.AllowList)
		e.flags[flag.Key] = flag
	}
	for key := range e.flags {
		e.keys = append(e.keys, key)
	}
	sort.Strings(e.keys)
	return e
}

// Bucket places userID in [0, BucketCount) for flagKey using FNV-1a. The same
// pair always lands in the same bucket, and different flags spread users
// independently.
func Bucket(flagKey, userID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(flagKey + bucketSeparator + userID))
	return int(h.Sum32() % BucketCount)
}

// IsEnabled reports whether flagKey is on for userID. Unknown flags are off.
func (e *Evaluator) IsEnabled(flagKey, userID string) bool {
	flag, ok := e.flags[flagKey]
	if !ok || !flag.Enabled {
		return false
	}
	if slices.Contains(flag.AllowList, userID) {
		return true
	}
	return Bucket(flagKey, userID) < flag.RolloutPercent
}

// Evaluate returns every known flag's state for userID
func (e *Evaluator) Evaluate(userID string) map[string]bool {
	result := make(map[string]bool, len(e.keys))
	for _, key := range e.keys {
		result[key] = e.IsEnabled(key, userID)
	}
	return result
}

// Flags returns the definitions sorted by key
func (e *Evaluator) Flags() []domain.FeatureFlag {
	out := make([]domain.FeatureFlag, 0, len(e.keys))
	for _, key := range e.keys {
		out = append(out, e.flags[key])
	}
	return out
}
