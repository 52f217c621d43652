package nlp

import (
	"sort"
	"strings"
)

// AirportEntry is one canonical airport with its lookup aliases
type AirportEntry struct {
	Code    string
	Name    string
	Aliases []string
}

// AirlineEntry is one canonical airline with its lookup aliases
type AirlineEntry struct {
	Code    string
	Aliases []string
}

// Lexicon holds the immutable alias tables used for entity resolution.
// It is fully built by its constructor and never mutated afterwards, so
// concurrent lookups need no synchronization.
type Lexicon struct {
	airportAliases  map[string]string
	airportNames    map[string]string
	airlineAliases  map[string]string
	countryAirports map[string][]string

	sortedAirportAliases []string
	sortedAirlineAliases []string
}

// NewLexicon builds the lexicon from the built-in tables.
func NewLexicon() *Lexicon {
	return NewLexiconWithEntries(nil, nil)
}

// NewLexiconWithEntries builds the lexicon from the built-in tables plus
// optional reference-data rows (loaded from the reference database at
// startup). Extra entries are merged before alias ordering is fixed.
func NewLexiconWithEntries(airports []AirportEntry, airlines []AirlineEntry) *Lexicon {
	l := &Lexicon{
		airportAliases:  make(map[string]string),
		airportNames:    make(map[string]string),
		airlineAliases:  make(map[string]string),
		countryAirports: make(map[string][]string),
	}

	for _, a := range builtinAirports {
		l.addAirport(a)
	}
	for _, a := range airports {
		l.addAirport(a)
	}
	for _, a := range builtinAirlines {
		l.addAirline(a)
	}
	for _, a := range airlines {
		l.addAirline(a)
	}
	l.addCountries()

	// Fixed lexical alias order keeps fuzzy-match tie breaking reproducible.
	for alias := range l.airportAliases {
		l.sortedAirportAliases = append(l.sortedAirportAliases, alias)
	}
	sort.Strings(l.sortedAirportAliases)
	for alias := range l.airlineAliases {
		l.sortedAirlineAliases = append(l.sortedAirlineAliases, alias)
	}
	sort.Strings(l.sortedAirlineAliases)

	return l
}

func (l *Lexicon) addAirport(a AirportEntry) {
	code := strings.ToUpper(a.Code)
	l.airportNames[code] = a.Name
	l.airportAliases[strings.ToLower(code)] = code
	for _, alias := range a.Aliases {
		l.airportAliases[strings.ToLower(alias)] = code
	}
}

func (l *Lexicon) addAirline(a AirlineEntry) {
	code := strings.ToUpper(a.Code)
	l.airlineAliases[strings.ToLower(code)] = code
	for _, alias := range a.Aliases {
		l.airlineAliases[strings.ToLower(alias)] = code
	}
}

// ResolveAirportAlias returns the canonical IATA code for an exact alias.
// Callers must trim and lowercase the input first.
func (l *Lexicon) ResolveAirportAlias(alias string) (string, bool) {
	code, ok := l.airportAliases[alias]
	return code, ok
}

// ResolveAirlineAlias returns the canonical airline code for an exact alias.
func (l *Lexicon) ResolveAirlineAlias(alias string) (string, bool) {
	code, ok := l.airlineAliases[alias]
	return code, ok
}

// AirportName returns the display name for a canonical airport code.
func (l *Lexicon) AirportName(code string) string {
	return l.airportNames[strings.ToUpper(code)]
}

// AirportsForCountry returns the ordered airport codes for a country name or
// code, major airports first. Empty slice when the country is unknown.
func (l *Lexicon) AirportsForCountry(country string) []string {
	return l.countryAirports[strings.ToLower(strings.TrimSpace(country))]
}

// SortedAirportAliases returns all airport aliases in lexical order.
func (l *Lexicon) SortedAirportAliases() []string {
	return l.sortedAirportAliases
}

// SortedAirlineAliases returns all airline aliases in lexical order.
func (l *Lexicon) SortedAirlineAliases() []string {
	return l.sortedAirlineAliases
}

func airport(code, name string, aliases ...string) AirportEntry {
	return AirportEntry{Code: code, Name: name, Aliases: aliases}
}

func airline(code string, aliases ...string) AirlineEntry {
	return AirlineEntry{Code: code, Aliases: aliases}
}

var builtinAirports = []AirportEntry{
	// North America
	airport("JFK", "John F Kennedy International", "new york", "ny", "kennedy"),
	airport("LGA", "LaGuardia Airport", "new york laguardia", "laguardia"),
	airport("EWR", "Newark Liberty International", "newark", "new york newark"),
	airport("LAX", "Los Angeles International", "los angeles", "la"),
	airport("ORD", "O'Hare International", "chicago", "ohare", "o'hare"),
	airport("MDW", "Chicago Midway", "chicago midway", "midway"),
	airport("MIA", "Miami International", "miami"),
	airport("SFO", "San Francisco International", "san francisco", "sf"),
	airport("BOS", "Logan International", "boston", "logan"),
	airport("SEA", "Seattle-Tacoma International", "seattle", "tacoma"),
	airport("DEN", "Denver International", "denver"),
	airport("ATL", "Hartsfield-Jackson Atlanta International", "atlanta"),
	airport("DFW", "Dallas/Fort Worth International", "dallas", "fort worth"),
	airport("IAH", "George Bush Intercontinental", "houston"),
	airport("PHX", "Phoenix Sky Harbor", "phoenix", "sky harbor"),
	airport("LAS", "Harry Reid International", "las vegas", "vegas"),
	airport("YYZ", "Toronto Pearson", "toronto", "pearson"),
	airport("YVR", "Vancouver International", "vancouver"),
	airport("YUL", "Montreal-Trudeau", "montreal", "trudeau"),
	airport("MEX", "Mexico City International", "mexico city"),
	airport("CUN", "Cancun International", "cancun"),

	// Europe
	airport("LHR", "Heathrow Airport", "london", "heathrow", "london heathrow"),
	airport("LGW", "Gatwick Airport", "london gatwick", "gatwick"),
	airport("CDG", "Charles de Gaulle", "paris", "charles de gaulle"),
	airport("FRA", "Frankfurt am Main", "frankfurt"),
	airport("MUC", "Munich Airport", "munich"),
	airport("AMS", "Amsterdam Schiphol", "amsterdam", "schiphol"),
	airport("MAD", "Madrid-Barajas", "madrid", "barajas"),
	airport("BCN", "Barcelona-El Prat", "barcelona", "el prat"),
	airport("FCO", "Leonardo da Vinci-Fiumicino", "rome", "fiumicino"),
	airport("MXP", "Milan Malpensa", "milan", "malpensa"),
	airport("VIE", "Vienna International", "vienna"),
	airport("ZUR", "Zurich Airport", "zurich"),
	airport("CPH", "Copenhagen Airport", "copenhagen"),
	airport("OSL", "Oslo Airport", "oslo"),
	airport("ARN", "Stockholm Arlanda", "stockholm", "arlanda"),
	airport("HEL", "Helsinki-Vantaa", "helsinki", "vantaa"),
	airport("WAW", "Warsaw Chopin", "warsaw", "chopin"),
	airport("PRG", "Vaclav Havel Airport Prague", "prague"),
	airport("BUD", "Budapest Ferenc Liszt International", "budapest"),
	airport("ATH", "Athens International", "athens"),
	airport("IST", "Istanbul Airport", "istanbul"),
	airport("SVO", "Sheremetyevo International", "moscow", "sheremetyevo"),

	// Middle East
	airport("DXB", "Dubai International", "dubai"),
	airport("AUH", "Abu Dhabi International", "abu dhabi"),
	airport("DOH", "Hamad International", "doha"),
	airport("RUH", "King Khalid International", "riyadh"),
	airport("JED", "King Abdulaziz International", "jeddah"),
	airport("KWI", "Kuwait International", "kuwait", "kuwait city"),
	airport("BAH", "Bahrain International", "bahrain", "manama"),
	airport("MCT", "Muscat International", "muscat"),
	airport("TLV", "Ben Gurion Airport", "tel aviv", "ben gurion"),
	airport("AMM", "Queen Alia International", "amman"),
	airport("BEY", "Rafic Hariri International", "beirut"),

	// Asia-Pacific
	airport("NRT", "Narita International", "tokyo", "narita"),
	airport("HND", "Haneda Airport", "tokyo haneda", "haneda"),
	airport("ICN", "Incheon International", "seoul", "incheon"),
	airport("PEK", "Beijing Capital International", "beijing", "capital"),
	airport("PVG", "Shanghai Pudong International", "shanghai", "pudong"),
	airport("CAN", "Guangzhou Tianhe International", "guangzhou", "tianhe"),
	airport("HKG", "Hong Kong International", "hong kong", "hongkong"),
	airport("SIN", "Changi Airport", "singapore", "changi"),
	airport("KUL", "Kuala Lumpur International", "kuala lumpur"),
	airport("BKK", "Suvarnabhumi Airport", "bangkok", "suvarnabhumi"),
	airport("HKT", "Phuket International", "phuket"),
	airport("CGK", "Soekarno-Hatta International", "jakarta", "soekarno hatta"),
	airport("DPS", "Ngurah Rai International", "bali", "denpasar", "ngurah rai"),
	airport("MNL", "Ninoy Aquino International", "manila", "ninoy aquino"),
	airport("SGN", "Tan Son Nhat International", "ho chi minh", "saigon"),
	airport("HAN", "Noi Bai International", "hanoi", "noi bai"),
	airport("DEL", "Indira Gandhi International", "delhi", "new delhi"),
	airport("BOM", "Chhatrapati Shivaji International", "mumbai", "bombay"),
	airport("BLR", "Kempegowda International", "bangalore", "bengaluru"),
	airport("MAA", "Chennai International", "chennai", "madras"),
	airport("CCU", "Netaji Subhash Chandra Bose International", "kolkata", "calcutta"),
	airport("HYD", "Rajiv Gandhi International", "hyderabad"),
	airport("CMB", "Bandaranaike International", "colombo", "bandaranaike"),
	airport("DAC", "Hazrat Shahjalal International", "dhaka"),
	airport("KTM", "Tribhuvan International", "kathmandu", "tribhuvan"),
	airport("SYD", "Kingsford Smith Airport", "sydney", "kingsford smith"),
	airport("MEL", "Melbourne Airport", "melbourne", "tullamarine"),
	airport("BNE", "Brisbane Airport", "brisbane"),
	airport("PER", "Perth Airport", "perth"),
	airport("AKL", "Auckland Airport", "auckland"),

	// Africa
	airport("JNB", "OR Tambo International", "johannesburg", "or tambo", "joburg"),
	airport("CPT", "Cape Town International", "cape town", "capetown"),
	airport("DUR", "King Shaka International", "durban", "king shaka"),
	airport("CAI", "Cairo International", "cairo"),
	airport("CMN", "Mohammed V International", "casablanca"),
	airport("LOS", "Murtala Muhammed International", "lagos"),
	airport("ABV", "Nnamdi Azikiwe International", "abuja"),
	airport("ACC", "Kotoka International", "accra"),
	airport("NBO", "Jomo Kenyatta International", "nairobi"),
	airport("ADD", "Addis Ababa Bole International", "addis ababa"),
	airport("EBB", "Entebbe International", "entebbe", "kampala"),
	airport("DAR", "Julius Nyerere International", "dar es salaam"),

	// South America & Caribbean
	airport("GRU", "Sao Paulo/Guarulhos International", "sao paulo", "guarulhos"),
	airport("GIG", "Rio de Janeiro/Galeao International", "rio de janeiro", "galeao"),
	airport("EZE", "Ezeiza International", "buenos aires", "ezeiza"),
	airport("SCL", "Santiago International", "santiago"),
	airport("LIM", "Jorge Chavez International", "lima", "jorge chavez"),
	airport("BOG", "El Dorado International", "bogota", "el dorado"),
	airport("MDE", "Jose Maria Cordova International", "medellin"),
	airport("UIO", "Mariscal Sucre International", "quito"),
	airport("CCS", "Simon Bolivar International", "caracas"),
	airport("HAV", "Jose Marti International", "havana"),
	airport("SJU", "Luis Munoz Marin International", "san juan"),

	// Pacific
	airport("HNL", "Daniel K. Inouye International", "honolulu", "hawaii"),
	airport("NAN", "Nadi International", "nadi", "fiji"),
	airport("PPT", "Faa'a International", "tahiti", "papeete"),
}

var builtinAirlines = []AirlineEntry{
	// US carriers
	airline("AA", "american", "american airlines"),
	airline("DL", "delta", "delta airlines", "delta air lines"),
	airline("UA", "united", "united airlines"),
	airline("WN", "southwest", "southwest airlines"),
	airline("B6", "jetblue", "jet blue"),
	airline("AS", "alaska", "alaska airlines"),

	// International carriers
	airline("BA", "british airways"),
	airline("LH", "lufthansa"),
	airline("AF", "air france"),
	airline("KL", "klm", "klm royal dutch"),
	airline("EK", "emirates"),
	airline("QR", "qatar", "qatar airways"),
	airline("EY", "etihad", "etihad airways"),
	airline("SQ", "singapore airlines"),
	airline("CX", "cathay pacific", "cathay"),
	airline("JL", "japan airlines", "jal"),
	airline("NH", "ana", "all nippon"),
	airline("KE", "korean air"),
	airline("TK", "turkish airlines", "turkish"),
	airline("QF", "qantas"),
	airline("AC", "air canada"),
	airline("IB", "iberia"),
	airline("AZ", "ita airways", "alitalia"),
	airline("LX", "swiss", "swiss international"),
	airline("AI", "air india"),
	airline("GA", "garuda", "garuda indonesia"),
	airline("TG", "thai airways", "thai"),
	airline("MH", "malaysia airlines"),

	// African carriers
	airline("SA", "south african airways", "saa"),
	airline("ET", "ethiopian", "ethiopian airlines"),
	airline("KQ", "kenya airways"),
	airline("MS", "egyptair"),
	airline("AT", "royal air maroc"),
}

// countrySeed binds a country code, its name aliases, and its airports in
// major-first order.
type countrySeed struct {
	code     string
	aliases  []string
	airports []string
}

var builtinCountries = []countrySeed{
	{"us", []string{"united states", "usa", "america", "united states of america"},
		[]string{"JFK", "LAX", "ORD", "ATL", "DFW", "MIA", "SFO", "BOS", "SEA", "DEN"}},
	{"ca", []string{"canada"}, []string{"YYZ", "YVR", "YUL"}},
	{"mx", []string{"mexico"}, []string{"MEX", "CUN"}},
	{"gb", []string{"united kingdom", "uk", "britain", "england", "great britain"},
		[]string{"LHR", "LGW"}},
	{"fr", []string{"france"}, []string{"CDG"}},
	{"de", []string{"germany", "deutschland"}, []string{"FRA", "MUC"}},
	{"it", []string{"italy"}, []string{"FCO", "MXP"}},
	{"es", []string{"spain"}, []string{"MAD", "BCN"}},
	{"nl", []string{"netherlands", "holland"}, []string{"AMS"}},
	{"ch", []string{"switzerland"}, []string{"ZUR"}},
	{"at", []string{"austria"}, []string{"VIE"}},
	{"dk", []string{"denmark"}, []string{"CPH"}},
	{"se", []string{"sweden"}, []string{"ARN"}},
	{"no", []string{"norway"}, []string{"OSL"}},
	{"fi", []string{"finland"}, []string{"HEL"}},
	{"pl", []string{"poland"}, []string{"WAW"}},
	{"cz", []string{"czech republic", "czechia"}, []string{"PRG"}},
	{"hu", []string{"hungary"}, []string{"BUD"}},
	{"gr", []string{"greece"}, []string{"ATH"}},
	{"tr", []string{"turkey"}, []string{"IST"}},
	{"ru", []string{"russia"}, []string{"SVO"}},
	{"jp", []string{"japan"}, []string{"NRT", "HND"}},
	{"cn", []string{"china"}, []string{"PEK", "PVG", "CAN"}},
	{"kr", []string{"south korea", "korea"}, []string{"ICN"}},
	{"in", []string{"india"}, []string{"DEL", "BOM", "BLR", "MAA", "CCU", "HYD"}},
	{"sg", []string{"singapore"}, []string{"SIN"}},
	{"my", []string{"malaysia"}, []string{"KUL"}},
	{"th", []string{"thailand"}, []string{"BKK", "HKT"}},
	{"id", []string{"indonesia"}, []string{"CGK", "DPS"}},
	{"ph", []string{"philippines"}, []string{"MNL"}},
	{"vn", []string{"vietnam"}, []string{"SGN", "HAN"}},
	{"lk", []string{"sri lanka"}, []string{"CMB"}},
	{"bd", []string{"bangladesh"}, []string{"DAC"}},
	{"np", []string{"nepal"}, []string{"KTM"}},
	{"au", []string{"australia"}, []string{"SYD", "MEL", "BNE", "PER"}},
	{"nz", []string{"new zealand"}, []string{"AKL"}},
	{"ae", []string{"united arab emirates", "uae"}, []string{"DXB", "AUH"}},
	{"qa", []string{"qatar"}, []string{"DOH"}},
	{"sa", []string{"saudi arabia"}, []string{"RUH", "JED"}},
	{"kw", []string{"kuwait"}, []string{"KWI"}},
	{"bh", []string{"bahrain"}, []string{"BAH"}},
	{"om", []string{"oman"}, []string{"MCT"}},
	{"il", []string{"israel"}, []string{"TLV"}},
	{"jo", []string{"jordan"}, []string{"AMM"}},
	{"lb", []string{"lebanon"}, []string{"BEY"}},
	{"za", []string{"south africa"}, []string{"JNB", "CPT", "DUR"}},
	{"eg", []string{"egypt"}, []string{"CAI"}},
	{"ma", []string{"morocco"}, []string{"CMN"}},
	{"ng", []string{"nigeria"}, []string{"LOS", "ABV"}},
	{"gh", []string{"ghana"}, []string{"ACC"}},
	{"ke", []string{"kenya"}, []string{"NBO"}},
	{"et", []string{"ethiopia"}, []string{"ADD"}},
	{"ug", []string{"uganda"}, []string{"EBB"}},
	{"tz", []string{"tanzania"}, []string{"DAR"}},
	{"br", []string{"brazil"}, []string{"GRU", "GIG"}},
	{"ar", []string{"argentina"}, []string{"EZE"}},
	{"cl", []string{"chile"}, []string{"SCL"}},
	{"pe", []string{"peru"}, []string{"LIM"}},
	{"co", []string{"colombia"}, []string{"BOG", "MDE"}},
	{"ec", []string{"ecuador"}, []string{"UIO"}},
	{"ve", []string{"venezuela"}, []string{"CCS"}},
	{"cu", []string{"cuba"}, []string{"HAV"}},
	{"fj", []string{"fiji"}, []string{"NAN"}},
}

func (l *Lexicon) addCountries() {
	for _, c := range builtinCountries {
		l.countryAirports[c.code] = c.airports
		for _, alias := range c.aliases {
			l.countryAirports[strings.ToLower(alias)] = c.airports
		}
	}
}
