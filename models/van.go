package models

// Van operating statuses.
const (
	VanAvailable   = "available"
	VanBusy        = "busy"
	VanMaintenance = "maintenance"
)

// Van is a mobile service unit. The booking engine only reads van state;
// assignment is advisory and does not reserve the van.
type Van struct {
	ID          string   `bson:"id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Driver      string   `bson:"driver,omitempty" json:"driver,omitempty"`
	Status      string   `bson:"status" json:"status"`
	Zones       []string `bson:"zones" json:"zones"` // zones this van is eligible to serve
	LastService string   `bson:"last_service,omitempty" json:"lastService,omitempty"`
	Capacity    string   `bson:"capacity,omitempty" json:"capacity,omitempty"`
}

// ServiceZones is the fixed set of areas clients can book in.
var ServiceZones = []string{
	"New Cairo",
	"El Rehab",
	"Tagmo3",
	"Sheikh Zayed",
}

// IsValidZone reports whether zone is a known service area.
func IsValidZone(zone string) bool {
	for _, z := range ServiceZones {
		if z == zone {
			return true
		}
	}
	return false
}
