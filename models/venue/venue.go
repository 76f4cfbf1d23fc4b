package venue

import "fmt"

// ART_ET_ESSAI_MARKER is the value of art_et_essai for classified cinemas.
const ART_ET_ESSAI_MARKER = "oui"

// Venue is one cinema of the static catalog. Field names follow the
// catalog file format.
type Venue struct {
	ID          ID     `json:"id"`
	Name        string `json:"nom"`
	Address     string `json:"adresse"`
	City        string `json:"ville"`
	Departement string `json:"departement"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	AveragePrice float64 `json:"prix_moyen"`
	Rating       float64 `json:"note"`
	ReviewCount  int     `json:"avis_count"`

	Accessible bool     `json:"accessibilite"`
	Parking    bool     `json:"parking"`
	ArtEtEssai string   `json:"art_et_essai,omitempty"`
	Genres     []string `json:"types_films"`
	Services   []string `json:"services"`
	Screens    int      `json:"salles"`

	Schedule WeeklySchedule `json:"horaires,omitempty"`

	Phone   string `json:"telephone,omitempty"`
	Website string `json:"site_web,omitempty"`
}

// HasService reports whether the venue offers the given service tag.
func (v *Venue) HasService(service string) bool {
	for _, s := range v.Services {
		if s == service {
			return true
		}
	}
	return false
}

// HasGenre reports whether the venue screens the given genre.
func (v *Venue) HasGenre(genre string) bool {
	for _, g := range v.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

func (v *Venue) ToString() string {
	return fmt.Sprintf("Venue(id=%s, name=%s, address=%s, lat=%f, lon=%f)",
		v.ID, v.Name, v.Address, v.Latitude, v.Longitude)
}
