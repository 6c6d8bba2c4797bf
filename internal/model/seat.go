package model

// Seat type labels used by the floor layout.
const (
	SeatTypeStandard  = "Standard"
	SeatTypePCStation = "PC Station"
	SeatTypeQuietZone = "Quiet Zone"
)

// Seat describes a physical, positioned seat on the library floor.
// X, Y and Rotation exist only so the frontend can render the layout;
// the backend never interprets them.
//
// Fields:
//
//	ID            – caller-assigned unique identifier.
//	Label         – display name (e.g. "PC1", "T1-A").
//	Type          – Standard, PC Station or Quiet Zone.
//	IsMaintenance – seat is unavailable for booking while true.
//	X, Y          – grid coordinates.
//	Rotation      – rendering rotation in degrees.
type Seat struct {
	ID            string `json:"id"`
	Label         string `json:"label"`
	Type          string `json:"type"`
	IsMaintenance bool   `json:"isMaintenance"`
	X             int    `json:"x"`
	Y             int    `json:"y"`
	Rotation      int    `json:"rotation"`
}
