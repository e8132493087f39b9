package diag

import "fmt"

// Code is a compact, stable numeric identifier for a diagnostic.
type Code uint16

// Type-system diagnostic codes. Reserved in the 1000 range; later layers
// (name resolution, expression checking) own their own ranges but those
// passes are out of scope for this core.
const (
	UnknownCode Code = 0

	TypeUnknownElementaryName Code = 1001
	TypeBadIntegerWidth       Code = 1002
	TypeBadFixedBytesLength   Code = 1003
	TypeBadFixedPointShape    Code = 1004
	TypeBadMappingKey         Code = 1005
	TypeInvalidLocationSuffix Code = 1006
)

func (c Code) String() string {
	switch c {
	case UnknownCode:
		return "UNKNOWN"
	case TypeUnknownElementaryName:
		return "TYPE1001"
	case TypeBadIntegerWidth:
		return "TYPE1002"
	case TypeBadFixedBytesLength:
		return "TYPE1003"
	case TypeBadFixedPointShape:
		return "TYPE1004"
	case TypeBadMappingKey:
		return "TYPE1005"
	case TypeInvalidLocationSuffix:
		return "TYPE1006"
	default:
		return fmt.Sprintf("CODE%d", uint16(c))
	}
}
