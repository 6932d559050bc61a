package former

import "fmt"

// Default sizes applied by NewRowFormer and NewViewFormer.
const (
	DefaultCellHeight         float32 = 44
	DefaultHeaderFooterHeight float32 = 10
	DefaultSeparatorLeftInset float32 = 15
)

// IndexPath locates a row inside a Former.
type IndexPath struct {
	Section int
	Row     int
}

func (ip IndexPath) String() string {
	return fmt.Sprintf("[%d, %d]", ip.Section, ip.Row)
}

// EdgeInsets are distances from each edge of a cell.
type EdgeInsets struct {
	Top    float32
	Left   float32
	Bottom float32
	Right  float32
}

// AccessoryType is the indicator drawn at the trailing edge of a cell.
type AccessoryType int

const (
	AccessoryNone AccessoryType = iota
	AccessoryDisclosureIndicator
	AccessoryDetailDisclosureButton
	AccessoryCheckmark
	AccessoryDetailButton
)

// String returns the name of the accessory type
func (a AccessoryType) String() string {
	switch a {
	case AccessoryNone:
		return "none"
	case AccessoryDisclosureIndicator:
		return "disclosure"
	case AccessoryDetailDisclosureButton:
		return "detail_disclosure"
	case AccessoryCheckmark:
		return "checkmark"
	case AccessoryDetailButton:
		return "detail"
	}
	return fmt.Sprintf("AccessoryType(%d)", int(a))
}

// ParseAccessoryType is the inverse of AccessoryType.String.
func ParseAccessoryType(s string) (AccessoryType, bool) {
	for a := AccessoryNone; a <= AccessoryDetailButton; a++ {
		if a.String() == s {
			return a, true
		}
	}
	return AccessoryNone, false
}

// SelectionStyle is how a cell highlights while selected.
type SelectionStyle int

const (
	SelectionStyleDefault SelectionStyle = iota
	SelectionStyleNone
	SelectionStyleBlue
	SelectionStyleGray
)

// String returns the name of the selection style
func (s SelectionStyle) String() string {
	switch s {
	case SelectionStyleNone:
		return "none"
	case SelectionStyleDefault:
		return "default"
	case SelectionStyleBlue:
		return "blue"
	case SelectionStyleGray:
		return "gray"
	}
	return fmt.Sprintf("SelectionStyle(%d)", int(s))
}
