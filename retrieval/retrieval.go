package retrieval

// Outcome is the result of one retrieval adapter call. Adapters never return
// errors to the pipeline: a failed call carries a Degraded marker and a reason
// so callers can tell "legitimately empty" from "adapter failed" while treating
// both as non-fatal.
type Outcome[T any] struct {
	Data     T
	Degraded bool
	Reason   string
}

func Ok[T any](data T) Outcome[T] {
	return Outcome[T]{Data: data}
}

func Degrade[T any](data T, reason string) Outcome[T] {
	return Outcome[T]{Data: data, Degraded: true, Reason: reason}
}

// Sentinels substituted for live results when a search comes back empty.
const (
	SentinelNoMarketData   = "No market data found."
	SentinelNoPatentData   = "No patent data found."
	SentinelNoInternalData = "No relevant internal data found."
)
