package aircraft

import "strings"

// DefaultName is shown when the feed gives no type code.
const DefaultName = "Plane"

// names maps ICAO type designators to what fits on the display.
var names = map[string]string{
	"A319": "A319",
	"A320": "A320",
	"A321": "A321",
	"A332": "A330",
	"A333": "A330",
	"A359": "A350",
	"B38M": "737 MAX",
	"B738": "737-800",
	"B739": "737-900",
	"B752": "757",
	"B753": "757",
	"B763": "767",
	"B764": "767",
	"B772": "777",
	"B773": "777",
	"B77W": "777",
	"B788": "787-8",
	"B789": "787-9",
	"B78X": "787-10",
	"E75L": "E175",
	"E75S": "E175",
	"CRJ2": "CRJ200",
	"CRJ7": "CRJ700",
	"CRJ9": "CRJ900",
	"MD11": "MD-11",
	"MD82": "MD-82",
	"MD83": "MD-83",
	"DC10": "DC-10",
	"C172": "Cessna 172",
	"C182": "Cessna 182",
	"C208": "Caravan",
	"PC12": "Pilatus PC-12",
	"SR22": "Cirrus SR22",
	"BE20": "King Air",
	"GLF4": "Gulfstream",
	"GLF5": "Gulfstream",
	"CL30": "Challenger",
	"CL60": "Challenger",
	"FA7X": "Falcon 7X",
	"A388": "A380",
	"A20N": "A320neo",
	"A21N": "A321neo",
	"BCS1": "A220",
	"BCS3": "A220",
	"E190": "E190",
	"E195": "E195",
	"AT75": "ATR-72",
	"AT76": "ATR-72",
	"DH8A": "Dash 8",
	"DH8B": "Dash 8",
	"DH8C": "Dash 8",
	"DH8D": "Dash 8 Q400",
	"B190": "Beech 1900",
	"SW4":  "Metroliner",
	"C130": "C-130",
	"C17":  "C-17",
	"C5M":  "C-5",
	"K35R": "KC-135",
	"V22":  "V-22",
	"P8":   "P-8",
	"E6":   "E-6",
	"E3TF": "AWACS",
	"B742": "747",
	"B744": "747-400",
	"B748": "747-8",
	"B74R": "747",
	"A310": "A310",
	"A306": "A300",
	"A30B": "A300",
	"A342": "A340",
	"A343": "A340",
	"A345": "A340",
	"A346": "A340",
	"CONC": "Concorde",
}

// Name returns a readable aircraft name for an ICAO type code. Blank codes
// give DefaultName, unknown codes come back normalized (trimmed, upper case).
func Name(typeCode string) string {
	code := strings.ToUpper(strings.TrimSpace(typeCode))
	if code == "" {
		return DefaultName
	}
	if name, ok := names[code]; ok {
		return name
	}
	return code
}
