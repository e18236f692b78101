package bus

// DefaultBusName is used when no bus name is configured.
const DefaultBusName = "default"

// Priority represents event urgency (0-100, higher is more urgent).
// Using int8 provides sufficient range while keeping memory footprint minimal.
type Priority int8

const (
	PriorityMin     Priority = 0
	PriorityLow     Priority = 25
	PriorityMedium  Priority = 50
	PriorityHigh    Priority = 75
	PriorityMax     Priority = 100
	PriorityDefault Priority = PriorityMedium
)

// Valid checks if the priority is within the allowed range (0-100).
func (p Priority) Valid() bool {
	return p >= PriorityMin && p <= PriorityMax
}
