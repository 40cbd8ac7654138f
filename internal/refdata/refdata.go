// Package refdata holds the process-wide constant tables: vehicle chassis
// types, vehicle statuses, user roles, and the allowed color and town sets.
// The tables are loaded once and never mutated at runtime.
package refdata

import "strings"

type VehicleType string
type VehicleStatus string
type UserRole string

const (
	TypeAutoRickshaw VehicleType = "AUTO_RICKSHAW"
	TypeSedan        VehicleType = "SEDAN"
	TypeHatchback    VehicleType = "HATCHBACK"
	TypeSUV          VehicleType = "SUV"
	TypeVan          VehicleType = "VAN"
	TypeHighRoof     VehicleType = "HIGH_ROOF"
	TypeMotorcycle   VehicleType = "MOTORCYCLE"

	StatusAvailable VehicleStatus = "AVAILABLE"
	StatusFull      VehicleStatus = "FULL"
	StatusInactive  VehicleStatus = "INACTIVE"
	StatusRemoved   VehicleStatus = "REMOVED"

	RoleOwner     UserRole = "OWNER"
	RoleCompanion UserRole = "COMPANION"
)

// VehicleTypeLabels maps each chassis type to its human-readable label.
var VehicleTypeLabels = map[VehicleType]string{
	TypeAutoRickshaw: "Auto Rickshaw",
	TypeSedan:        "Sedan",
	TypeHatchback:    "Hatch Back",
	TypeSUV:          "Sub-Urban Vehicle",
	TypeVan:          "Van",
	TypeHighRoof:     "High Roof",
	TypeMotorcycle:   "Moto cycle/Scooter",
}

var VehicleStatusLabels = map[VehicleStatus]string{
	StatusAvailable: "Available",
	StatusFull:      "Full",
	StatusInactive:  "Inactive",
	StatusRemoved:   "Removed",
}

var UserRoleLabels = map[UserRole]string{
	RoleOwner:     "Owner",
	RoleCompanion: "Companion",
}

// Colors is the allow-list for vehicle colors, keyed uppercase. Color
// membership checks are case-insensitive.
var Colors = map[string]bool{
	"WHITE":  true,
	"BLACK":  true,
	"SILVER": true,
	"GREY":   true,
	"RED":    true,
	"BLUE":   true,
	"GREEN":  true,
	"YELLOW": true,
	"BROWN":  true,
	"GOLD":   true,
	"MAROON": true,
	"BEIGE":  true,
}

// Towns is the fixed set of towns a profile may belong to.
var Towns = map[string]bool{
	"BALDIA":        true,
	"BIN QASIM":     true,
	"GADAP":         true,
	"GULBERG":       true,
	"GULSHAN":       true,
	"JAMSHED":       true,
	"KORANGI":       true,
	"LANDHI":        true,
	"LIAQUATABAD":   true,
	"LYARI":         true,
	"MALIR":         true,
	"NEW KARACHI":   true,
	"NORTH NAZIMABAD": true,
	"ORANGI":        true,
	"SADDAR":        true,
	"SHAH FAISAL":   true,
	"SITE":          true,
}

// ValidColor reports whether the color is in the allow-list, ignoring case.
func ValidColor(color string) bool {
	return Colors[strings.ToUpper(strings.TrimSpace(color))]
}

// ValidTown reports whether the town is in the configured town set,
// ignoring case.
func ValidTown(town string) bool {
	return Towns[strings.ToUpper(strings.TrimSpace(town))]
}

func ValidVehicleType(t VehicleType) bool {
	_, ok := VehicleTypeLabels[t]
	return ok
}

func ValidVehicleStatus(s VehicleStatus) bool {
	_, ok := VehicleStatusLabels[s]
	return ok
}

func ValidRole(r UserRole) bool {
	_, ok := UserRoleLabels[r]
	return ok
}

// ValidGender reports whether g is one of the single-letter gender codes.
func ValidGender(g string) bool {
	return g == "M" || g == "F"
}

// ColorNames returns the allowed colors in no particular order.
func ColorNames() []string {
	out := make([]string, 0, len(Colors))
	for c := range Colors {
		out = append(out, c)
	}
	return out
}

// TownNames returns the configured towns in no particular order.
func TownNames() []string {
	out := make([]string, 0, len(Towns))
	for t := range Towns {
		out = append(out, t)
	}
	return out
}
