package court

// Type identifies a venue or scheduling category.
type Type string

const (
	// Shezi, Shuangyuan and Meiti are the three rentable tennis courts.
	Shezi      Type = "shezi"
	Shuangyuan Type = "shuangyuan"
	Meiti      Type = "meiti"
	// Pending marks slots where no court has been secured yet (interest poll).
	Pending Type = "pending"
	// Social marks player meetups. They show on the calendar but cannot be booked.
	Social Type = "social"
)

// Info carries the presentation metadata for a court type.
// The color fields are labels consumed by the front end, not behavior.
type Info struct {
	Type        Type   `json:"type"`
	Name        string `json:"name"`
	Code        string `json:"code"` // short code used in slot IDs
	Color       string `json:"color"`
	Description string `json:"description"`
}

var infos = map[Type]Info{
	Shezi: {
		Type:        Shezi,
		Name:        "社子網球場",
		Code:        "sz",
		Color:       "orange",
		Description: "橘色：租用完成，確定開課",
	},
	Shuangyuan: {
		Type:        Shuangyuan,
		Name:        "雙園網球場",
		Code:        "sy",
		Color:       "blue",
		Description: "藍色：租用完成，確定開課",
	},
	Meiti: {
		Type:        Meiti,
		Name:        "美堤網球場",
		Code:        "m",
		Color:       "rose",
		Description: "美：租用完成，確定開課",
	},
	Pending: {
		Type:        Pending,
		Name:        "待排課",
		Code:        "p",
		Color:       "white",
		Description: "白色：場地待租，意願調查",
	},
	Social: {
		Type:        Social,
		Name:        "球聚",
		Code:        "soc",
		Color:       "red",
		Description: "紅色：球友交流聚會",
	},
}

// ordered keeps a stable listing order for API responses and ID generation.
var ordered = []Type{Shezi, Shuangyuan, Meiti, Pending, Social}

// AllTypes returns every court type in a stable order.
func AllTypes() []Type {
	out := make([]Type, len(ordered))
	copy(out, ordered)
	return out
}

// GetInfo returns the metadata for the given court type.
// The second return value is false for unknown types.
func GetInfo(t Type) (Info, bool) {
	info, ok := infos[t]
	return info, ok
}

// Valid reports whether t is a member of the closed court type set.
func (t Type) Valid() bool {
	_, ok := infos[t]
	return ok
}

// Name returns the display name, or the raw type string for unknown types.
func (t Type) Name() string {
	if info, ok := infos[t]; ok {
		return info.Name
	}
	return string(t)
}

// Code returns the short code used to build slot identities.
func (t Type) Code() string {
	if info, ok := infos[t]; ok {
		return info.Code
	}
	return string(t)
}

// Bookable reports whether slots of this type accept student bookings.
// Social meetups are display-only.
func (t Type) Bookable() bool {
	return t.Valid() && t != Social
}
