package space

// Policy selects the booking discipline for a space.
//
// PolicyCapacityShared: a venue with a shared seat ceiling, bookable many
// times until full, independent of date/time.
// PolicySlotExclusive: a venue bookable at most once per distinct
// date+start-time combination.
type Policy string

const (
	PolicyCapacityShared Policy = "capacity_shared"
	PolicySlotExclusive  Policy = "slot_exclusive"
)

func (p Policy) String() string {
	return string(p)
}

func (p Policy) IsValid() bool {
	switch p {
	case PolicyCapacityShared, PolicySlotExclusive:
		return true
	default:
		return false
	}
}

func NewPolicy(value string) (Policy, error) {
	p := Policy(value)
	if !p.IsValid() {
		return "", ErrInvalidPolicy
	}
	return p, nil
}
