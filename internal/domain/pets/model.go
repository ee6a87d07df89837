package pets

// Species define las especies que ofrece el formulario de registro.
// @Enum dog, cat, bird, rabbit, other
type Species string

const (
	SpeciesDog    Species = "dog"
	SpeciesCat    Species = "cat"
	SpeciesBird   Species = "bird"
	SpeciesRabbit Species = "rabbit"
	SpeciesOther  Species = "other"
)

// Pet representa una mascota registrada por un cliente.
// Los tags json definen el layout persistido de la colección "pets".
type Pet struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Species Species `json:"species"`
	Breed   string  `json:"breed"`
	Age     int     `json:"age"`
	OwnerID string  `json:"ownerId"`
}
