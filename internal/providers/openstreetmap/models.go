package openstreetmap

type LookupAPIResponse struct {
	PlaceId     int      `json:"place_id"`
	Licence     string   `json:"licence"`
	OsmType     string   `json:"osm_type"`
	OsmId       int      `json:"osm_id"`
	Lat         string   `json:"lat"`
	Lon         string   `json:"lon"`
	Class       string   `json:"class"`
	Type        string   `json:"type"`
	PlaceRank   int      `json:"place_rank"`
	Importance  float64  `json:"importance"`
	Addresstype string   `json:"addresstype"`
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Address     Address  `json:"address"`
	Boundingbox []string `json:"boundingbox"`

	// Set instead of the fields above when nothing is found, e.g. over open ocean
	Error string `json:"error"`
}

type Address struct {
	City         string `json:"city"`
	Town         string `json:"town"`
	Village      string `json:"village"`
	County       string `json:"county"`
	State        string `json:"state"`
	ISO31662Lvl4 string `json:"ISO3166-2-lvl4"`
	Country      string `json:"country"`
	CountryCode  string `json:"country_code"`
}

// Locality returns the most specific settlement name available
func (a Address) Locality() string {
	switch {
	case a.City != "":
		return a.City
	case a.Town != "":
		return a.Town
	case a.Village != "":
		return a.Village
	default:
		return a.County
	}
}
