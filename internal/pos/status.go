package pos

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusServed     Status = "served"
	StatusPaid       Status = "paid"
)

// Forward-only lifecycle; no regression transition exists for any role.
var validNext = map[Status]map[Status]bool{
	StatusPending:    {StatusInProgress: true},
	StatusInProgress: {StatusServed: true},
	StatusServed:     {StatusPaid: true},
	StatusPaid:       {},
}

func CanTransition(from, to Status) bool {
	return validNext[from][to]
}

func (s Status) Valid() bool {
	_, ok := validNext[s]
	return ok
}

// Appendable reports whether new dishes may still be added to an order in
// this state ("add to open tab"): pending, or served but not yet paid.
func (s Status) Appendable() bool {
	return s == StatusPending || s == StatusServed
}
