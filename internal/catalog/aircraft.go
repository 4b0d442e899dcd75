package catalog

// AircraftType is an equipment type the synthesizer can schedule
type AircraftType struct {
	ID           string
	Model        string
	Manufacturer string
	Capacity     int
}

// The first entry is the fallback for unrecognized type ids.
var fleet = []AircraftType{
	{ID: "b777-300er", Model: "Boeing 777-300ER", Manufacturer: "Boeing", Capacity: 396},
	{ID: "b787-9", Model: "Boeing 787-9 Dreamliner", Manufacturer: "Boeing", Capacity: 290},
	{ID: "a350-900", Model: "Airbus A350-900", Manufacturer: "Airbus", Capacity: 325},
	{ID: "a330-300", Model: "Airbus A330-300", Manufacturer: "Airbus", Capacity: 277},
	{ID: "b737-max9", Model: "Boeing 737 MAX 9", Manufacturer: "Boeing", Capacity: 178},
	{ID: "a321neo", Model: "Airbus A321neo", Manufacturer: "Airbus", Capacity: 196},
}

// Fleet returns all schedulable aircraft types.
func Fleet() []AircraftType {
	out := make([]AircraftType, len(fleet))
	copy(out, fleet)
	return out
}

// DefaultAircraftType is used when a schedule names an unknown type.
func DefaultAircraftType() AircraftType {
	return fleet[0]
}

// LookupAircraftType finds a type by id.
func LookupAircraftType(id string) (AircraftType, bool) {
	for _, t := range fleet {
		if t.ID == id {
			return t, true
		}
	}
	return AircraftType{}, false
}

// AircraftTypeOrDefault resolves id, falling back to DefaultAircraftType.
func AircraftTypeOrDefault(id string) AircraftType {
	if t, ok := LookupAircraftType(id); ok {
		return t
	}
	return DefaultAircraftType()
}
