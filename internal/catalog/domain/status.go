package domain

// LoadStatus tracks the most recent catalog fetch.
type LoadStatus int

const (
	LoadIdle LoadStatus = iota
	LoadInProgress
	LoadSucceeded
	LoadFailed
)

func (s LoadStatus) String() string {
	switch s {
	case LoadInProgress:
		return "loading"
	case LoadSucceeded:
		return "succeeded"
	case LoadFailed:
		return "failed"
	default:
		return "idle"
	}
}
